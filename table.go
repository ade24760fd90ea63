package mdir

// Table is a pipe-delimited table. Rows may have a different number of
// cells than Headers; only AsDict enforces a shape.
type Table struct {
	Headers []string
	Rows    [][]string
}

// AsDict reads a two-column key/value table. The first cell of each row is
// the key and the second the value, in row order.
//
// It fails with a *ValidationError when a row has fewer than two cells,
// when a row has more than two cells and ignoreExtraColumns is false, or
// when a key repeats. Headers are not inspected.
func (t Table) AsDict(ignoreExtraColumns bool) (Fields, error) {
	out := make(Fields, 0, len(t.Rows))
	for i, row := range t.Rows {
		if len(row) < 2 {
			return nil, Invalid("table", "row %d has fewer than 2 columns: %q", i, row)
		}
		if len(row) > 2 && !ignoreExtraColumns {
			return nil, Invalid("table", "row %d has more than 2 columns: %q", i, row)
		}
		if out.Has(row[0]) {
			return nil, Invalid("table", "duplicate key %q at row %d", row[0], i)
		}
		out = append(out, Field{Key: row[0], Value: row[1]})
	}
	return out, nil
}

// AsMap is AsDict returning a Go map.
func (t Table) AsMap(ignoreExtraColumns bool) (map[string]string, error) {
	f, err := t.AsDict(ignoreExtraColumns)
	if err != nil {
		return nil, err
	}
	return f.Map(), nil
}
