package renderer

// RowBand is a half-open range of image rows [Start, End)
type RowBand struct {
	Start int
	End   int
}

// Len returns the number of rows in the band
func (b RowBand) Len() int {
	return b.End - b.Start
}

// DivideRows splits rows into at most workers contiguous bands whose sizes
// differ by at most one. Zero rows yields a single empty band.
func DivideRows(rows, workers int) []RowBand {
	if rows <= 0 {
		return []RowBand{{}}
	}
	workers = max(workers, 1)

	if rows <= workers {
		bands := make([]RowBand, rows)
		for i := range bands {
			bands[i] = RowBand{Start: i, End: i + 1}
		}
		return bands
	}

	size := rows / workers
	extra := rows % workers
	bands := make([]RowBand, workers)
	start := 0
	for i := range bands {
		n := size
		if i < extra {
			n++
		}
		bands[i] = RowBand{Start: start, End: start + n}
		start += n
	}
	return bands
}
