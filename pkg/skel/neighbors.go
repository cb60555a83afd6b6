package skel

// Edge joins two vertices by their 1-based indices.
type Edge struct {
	From, To int
}

// Close reports whether a and b lie in each other's 3x3x3 neighbourhood.
func Close(a, b Cell) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

// Neighbors compares every ordered pair of cells and calls emit for each
// close pair, outer index ascending then inner index ascending. Both
// directions of a pair are emitted. The scan is exhaustive, O(n²).
func Neighbors(cells []Cell, emit func(Edge) error) error {
	for i := range cells {
		for j := range cells {
			if i == j {
				continue
			}
			if !Close(cells[i], cells[j]) {
				continue
			}
			if err := emit(Edge{From: i + 1, To: j + 1}); err != nil {
				return err
			}
		}
	}
	return nil
}

// near reports |a-b| <= 1. A difference that overflows wraps negative.
func near(a, b int) bool {
	if a > b {
		a, b = b, a
	}
	d := b - a
	return d >= 0 && d <= 1
}
