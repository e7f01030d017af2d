// Package bfscrawl provides a bounded breadth-first web crawler.
// Given a start URL it fetches pages, converts them to readable text,
// discovers outbound links and follows them up to a configured depth
// and page budget.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package bfscrawl
