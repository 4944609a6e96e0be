// Package roadmap turns the exported roadmap sheet into records and renders
// those records into the generated sections of the target source files.
//
// Everything here is a pure function of its input: no I/O, no hidden state.
//
// # Sheet Layout
//
// The sheet is read positionally. Column B (index 1) holds the launch date and
// column D (index 3) the country. Header or column drift is not detected; a
// moved column silently yields wrong or no records.
//
// # Renderings
//
// Records are grouped by launch date and groups are emitted in ascending
// lexical date order. Within a group, array entries keep the order in which
// countries appeared in the sheet while map entries are sorted by country.
package roadmap
