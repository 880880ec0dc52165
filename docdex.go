// Package docdex provides a local documentation search tool. It crawls a
// scoped set of reference pages, stores each page's extracted text in a
// compact SQLite document store, maintains a word-level inverted index over
// document titles and sections, and answers multi-term AND queries from a
// CLI, disambiguating between zero, one, or many matching documents.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, deflate/).
package docdex
