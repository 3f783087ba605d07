// Package bee provides an interactive viewer for semi-structured records.
// It loads JSON, CSV and XML files and search API results into a single
// in-memory store and renders them by key, recursively, to the screen or
// to a file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., etree/, jsoniter/, shodan/).
package bee
