package table

import "math"

// Group is one partition of a table: the shared key and the row indices
// holding it, in ascending order.
type Group struct {
	Key  any
	Rows []int
}

// Groups partitions rows by exact equality of the named column's value.
// Groups are returned in order of first appearance. Rows with a NaN key
// belong to no group.
func (t *Table) Groups(name string) ([]Group, error) {
	col, err := t.column(name)
	if err != nil {
		return nil, err
	}

	var groups []Group

	pos := make(map[any]int)

	for row, key := range col {
		if f, ok := key.(float64); ok && math.IsNaN(f) {
			continue
		}

		i, ok := pos[key]
		if !ok {
			i = len(groups)
			pos[key] = i
			groups = append(groups, Group{Key: key})
		}

		groups[i].Rows = append(groups[i].Rows, row)
	}

	return groups, nil
}
