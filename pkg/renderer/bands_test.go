package renderer

import (
	"reflect"
	"testing"
)

func TestDivideRows(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		workers  int
		expected []RowBand
	}{
		{"no rows", 0, 4, []RowBand{{0, 0}}},
		{"fewer rows than workers", 3, 8, []RowBand{{0, 1}, {1, 2}, {2, 3}}},
		{"equal rows and workers", 2, 2, []RowBand{{0, 1}, {1, 2}}},
		{"even split", 8, 4, []RowBand{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{"remainder goes to first bands", 10, 4, []RowBand{{0, 3}, {3, 6}, {6, 8}, {8, 10}}},
		{"single worker", 5, 1, []RowBand{{0, 5}}},
		{"zero workers treated as one", 5, 0, []RowBand{{0, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DivideRows(tt.rows, tt.workers); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("DivideRows(%d, %d) = %v, expected %v", tt.rows, tt.workers, got, tt.expected)
			}
		})
	}
}

// Bands are balanced to within one row and tile [0, rows) in order
func TestDivideRows_Coverage(t *testing.T) {
	for rows := 1; rows <= 60; rows++ {
		for workers := 1; workers <= 16; workers++ {
			bands := DivideRows(rows, workers)

			if len(bands) != min(rows, workers) {
				t.Fatalf("rows=%d workers=%d: expected %d bands, got %d", rows, workers, min(rows, workers), len(bands))
			}

			next := 0
			smallest, largest := rows, 0
			for _, band := range bands {
				if band.Start != next {
					t.Fatalf("rows=%d workers=%d: gap or overlap at %d (band %v)", rows, workers, next, band)
				}
				smallest = min(smallest, band.Len())
				largest = max(largest, band.Len())
				next = band.End
			}
			if next != rows {
				t.Fatalf("rows=%d workers=%d: bands end at %d", rows, workers, next)
			}
			if largest-smallest > 1 {
				t.Fatalf("rows=%d workers=%d: band sizes range %d..%d", rows, workers, smallest, largest)
			}
		}
	}
}
