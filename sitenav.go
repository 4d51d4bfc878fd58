// Package sitenav builds the sidebar navigation of a static learning site.
// It scans a tree of content directories, derives a display title and rank
// for each page, and groups the resulting tree into a fixed set of labeled
// sections (Fundamentals, Databases, and so on) for a rendering layer to
// draw.
//
// This package contains domain types and pure pipeline functions following
// Ben Johnson's Standard Package Layout. Implementations with dependencies
// live in subdirectories named after their primary dependency (e.g., fs/,
// goldmark/, goquery/).
package sitenav
