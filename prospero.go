// Package prospero converts Europresse HTML exports into the .txt/.ctx file
// pairs read by the Prospero text analysis tool.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, charmap/).
package prospero
