// Package column provides the logical table model consumed by rowhash:
// typed columns with optional per-position nulls, assembled into
// equal-length tables.
//
// A Column pairs a DataType with a typed backing slice and a roaring
// bitmap of null positions. Nested types follow the columnar convention:
// lists are offsets plus a child column, structs are parallel field
// columns. Columns and tables are views over caller-owned slices and are
// immutable once constructed, so they can be shared across any number of
// concurrent readers without synchronization.
package column
