package table

import (
	"fmt"
	"math"
)

// Kind describes the cell types found in a column.
type Kind int

const (
	// KindEmpty is reported for a column of a table without rows.
	KindEmpty Kind = iota
	// KindNumeric means every cell is a float64 (NaN included).
	KindNumeric
	// KindText means every cell is a string.
	KindText
	// KindMixed means the column holds both numbers and strings.
	KindMixed
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNumeric:
		return "numeric"
	case KindText:
		return "text"
	case KindMixed:
		return "mixed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Column is a named column of cell values, used to append derived data.
type Column struct {
	Name   string
	Values []any
}

// FloatColumn wraps numeric values as a [Column].
func FloatColumn(name string, values []float64) Column {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}

	return Column{Name: name, Values: cells}
}

// Table is an ordered collection of named columns with positional rows.
//
// The zero value is an empty table without columns.
type Table struct {
	names []string
	index map[string]int
	cols  [][]any
	rows  int
}

// New returns an empty table with the given columns.
func New(names ...string) (*Table, error) {
	t := &Table{index: make(map[string]int, len(names))}
	for _, name := range names {
		if err := t.addName(name); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// FromRecords builds a table from mapping-typed records. Columns appear in
// the order given by names; every record must contain every name.
func FromRecords(names []string, records []map[string]any) (*Table, error) {
	t, err := New(names...)
	if err != nil {
		return nil, err
	}

	row := make([]any, len(names))
	for i, rec := range records {
		for j, name := range names {
			v, ok := rec[name]
			if !ok {
				return nil, fmt.Errorf("record %d: %w: %q", i, ErrMissingColumn, name)
			}
			row[j] = v
		}

		if err := t.AppendRow(row...); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	return t, nil
}

func (t *Table) addName(name string) error {
	if name == "" {
		return ErrEmptyColumnName
	}

	if t.index == nil {
		t.index = make(map[string]int)
	}

	if _, ok := t.index[name]; ok {
		return fmt.Errorf("%w: %q", ErrColumnExists, name)
	}

	t.index[name] = len(t.names)
	t.names = append(t.names, name)
	t.cols = append(t.cols, make([]any, t.rows))

	return nil
}

// AppendRow appends one row. Values are given in column order.
func (t *Table) AppendRow(values ...any) error {
	if len(values) != len(t.names) {
		return fmt.Errorf("%w: row has %d values, table has %d columns", ErrRowLength, len(values), len(t.names))
	}

	cells := make([]any, len(values))
	for i, v := range values {
		c, err := normalize(v)
		if err != nil {
			return fmt.Errorf("column %q: %w", t.names[i], err)
		}
		cells[i] = c
	}

	for i, c := range cells {
		t.cols[i] = append(t.cols[i], c)
	}

	t.rows++

	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.rows }

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)

	return out
}

// Has reports whether the table has a column with the given name.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

func (t *Table) column(name string) ([]any, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}

	return t.cols[i], nil
}

// Value returns the cell at row in the named column.
func (t *Table) Value(row int, name string) (any, error) {
	col, err := t.column(name)
	if err != nil {
		return nil, err
	}

	if row < 0 || row >= t.rows {
		return nil, fmt.Errorf("table: row %d out of range [0,%d)", row, t.rows)
	}

	return col[row], nil
}

// Values returns a copy of the named column.
func (t *Table) Values(name string) ([]any, error) {
	col, err := t.column(name)
	if err != nil {
		return nil, err
	}

	out := make([]any, len(col))
	copy(out, col)

	return out, nil
}

// Float64s returns the named column as float64 values. Missing cells are
// NaN. It fails with [ErrNotNumeric] if any cell is text.
func (t *Table) Float64s(name string) ([]float64, error) {
	col, err := t.column(name)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(col))
	for i, c := range col {
		f, ok := c.(float64)
		if !ok {
			return nil, fmt.Errorf("%w: %q row %d holds %q", ErrNotNumeric, name, i, c)
		}
		out[i] = f
	}

	return out, nil
}

// Kind inspects every cell of the named column.
func (t *Table) Kind(name string) (Kind, error) {
	col, err := t.column(name)
	if err != nil {
		return KindEmpty, err
	}

	var numeric, text bool
	for _, c := range col {
		if _, ok := c.(string); ok {
			text = true
		} else {
			numeric = true
		}
	}

	switch {
	case numeric && text:
		return KindMixed, nil
	case text:
		return KindText, nil
	case numeric:
		return KindNumeric, nil
	default:
		return KindEmpty, nil
	}
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := &Table{
		names: make([]string, len(t.names)),
		index: make(map[string]int, len(t.names)),
		cols:  make([][]any, len(t.cols)),
		rows:  t.rows,
	}

	copy(c.names, t.names)

	for name, i := range t.index {
		c.index[name] = i
	}

	for i, col := range t.cols {
		c.cols[i] = make([]any, len(col))
		copy(c.cols[i], col)
	}

	return c
}

// WithColumns returns a new table holding the receiver's columns followed by
// cols. The receiver is not modified, and nothing is appended if any column
// is invalid.
func (t *Table) WithColumns(cols ...Column) (*Table, error) {
	seen := make(map[string]bool, len(cols))
	normalized := make([][]any, len(cols))

	for i, col := range cols {
		if col.Name == "" {
			return nil, ErrEmptyColumnName
		}

		if t.Has(col.Name) || seen[col.Name] {
			return nil, fmt.Errorf("%w: %q", ErrColumnExists, col.Name)
		}
		seen[col.Name] = true

		if len(col.Values) != t.rows {
			return nil, fmt.Errorf("%w: column %q has %d values, table has %d rows",
				ErrRowLength, col.Name, len(col.Values), t.rows)
		}

		cells := make([]any, len(col.Values))
		for j, v := range col.Values {
			c, err := normalize(v)
			if err != nil {
				return nil, fmt.Errorf("column %q row %d: %w", col.Name, j, err)
			}
			cells[j] = c
		}
		normalized[i] = cells
	}

	out := t.Clone()
	for i, col := range cols {
		out.index[col.Name] = len(out.names)
		out.names = append(out.names, col.Name)
		out.cols = append(out.cols, normalized[i])
	}

	return out, nil
}

// normalize maps supported Go values to the float64/string cell domain.
// nil becomes NaN.
//
//nolint:cyclop
func normalize(v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return math.NaN(), nil
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case string:
		return x, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}
