package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var errEmptyCSV = errors.New("table: csv input has no header")

// ReadCSV reads a table whose first record is the header.
//
// A column whose non-empty cells all parse as floats becomes numeric, with
// empty cells read as NaN. Any other column keeps every cell as text.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("table: read csv: %w", err)
	}

	if len(records) == 0 {
		return nil, errEmptyCSV
	}

	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	t, err := New(header...)
	if err != nil {
		return nil, err
	}

	body := records[1:]
	for i, rec := range body {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("%w: csv line %d has %d fields, header has %d",
				ErrRowLength, i+2, len(rec), len(header))
		}
	}

	for j := range header {
		t.cols[j] = parseCSVColumn(body, j)
	}
	t.rows = len(body)

	return t, nil
}

func parseCSVColumn(records [][]string, j int) []any {
	nums := make([]float64, len(records))
	numeric := true

	for i, rec := range records {
		s := strings.TrimSpace(rec[j])
		if s == "" {
			nums[i] = math.NaN()
			continue
		}

		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			numeric = false
			break
		}
		nums[i] = f
	}

	out := make([]any, len(records))
	for i, rec := range records {
		if numeric {
			out[i] = nums[i]
		} else {
			out[i] = rec[j]
		}
	}

	return out
}

// WriteCSV writes the header and all rows. NaN cells are written empty.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.names); err != nil {
		return fmt.Errorf("table: write csv: %w", err)
	}

	rec := make([]string, len(t.names))
	for row := 0; row < t.rows; row++ {
		for j, col := range t.cols {
			rec[j] = FormatValue(col[row])
		}

		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("table: write csv: %w", err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("table: write csv: %w", err)
	}

	return nil
}

// FormatValue renders a cell as text: strings verbatim, floats in the
// shortest representation, NaN as the empty string.
func FormatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		if math.IsNaN(x) {
			return ""
		}

		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
