package table

import "errors"

var (
	// ErrMissingColumn is returned when a referenced column does not exist.
	ErrMissingColumn = errors.New("table: missing column")
	// ErrColumnExists is returned when a column name is already in use.
	ErrColumnExists = errors.New("table: column already exists")
	// ErrEmptyColumnName is returned for a column named "".
	ErrEmptyColumnName = errors.New("table: empty column name")
	// ErrRowLength is returned when a row or column length does not match the table.
	ErrRowLength = errors.New("table: length mismatch")
	// ErrNotNumeric is returned when a numeric column is required but a text cell is present.
	ErrNotNumeric = errors.New("table: column is not numeric")
	// ErrUnsupportedValue is returned for cell values that are neither numbers nor strings.
	ErrUnsupportedValue = errors.New("table: unsupported cell value")
)
