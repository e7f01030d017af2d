package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/bfscrawl"
	"github.com/fwojciec/bfscrawl/crawl"
	"gopkg.in/yaml.v3"
)

// Ensure FileStore implements bfscrawl.PageStore at compile time.
var _ bfscrawl.PageStore = (*FileStore)(nil)

// FileStore implements bfscrawl.PageStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string
	now     func() time.Time
	saved   map[string]string // relative path → page URL
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
		now:     time.Now,
		saved:   make(map[string]string),
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

func (s *FileStore) Save(ctx context.Context, page *bfscrawl.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(page.URL)
	if err != nil {
		return err
	}

	// Saving the same URL again replaces its file; another URL never may.
	if prev, ok := s.saved[relPath]; ok && prev != page.URL {
		return bfscrawl.Errorf(bfscrawl.EINVALID, "page %q maps to %s already used by %q", page.URL, relPath, prev)
	}

	fullPath := filepath.Join(s.tempDir(), filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := FormatPage(page, s.now())
	if err != nil {
		return err
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return err
	}
	s.saved[relPath] = page.URL
	return nil
}

// frontmatter is the YAML header written above each page's Markdown.
type frontmatter struct {
	Source  string `yaml:"source"`
	Depth   int    `yaml:"depth"`
	Hash    string `yaml:"hash"`
	Crawled string `yaml:"crawled"`
}

// FormatPage formats a page with YAML frontmatter.
func FormatPage(page *bfscrawl.Page, crawled time.Time) (string, error) {
	header, err := yaml.Marshal(frontmatter{
		Source:  page.URL,
		Depth:   page.Depth,
		Hash:    crawl.ComputeHash(page.Content),
		Crawled: crawled.Format("2006-01-02"),
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(page.Content)
	return b.String(), nil
}

func (s *FileStore) Commit() error {
	// A crawl that saved nothing still produces an empty output directory.
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
