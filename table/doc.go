// Package table provides the small column-oriented table used by the
// formant packages.
//
// A [Table] is an ordered set of named columns holding one value per row.
// Rows are identified by position. Cells are either float64 or string;
// integer and float inputs are normalized to float64 on insertion, and NaN
// marks a missing numeric cell.
//
// Tables are treated as immutable by the analysis packages: derived columns
// are added with [Table.WithColumns], which returns a new table and leaves
// the receiver untouched.
package table
