package mines

import (
	"fmt"
	"iter"
)

// Coordinate addresses a cell by zero-based column (X) and row (Y).
type Coordinate struct {
	X, Y int
}

// [Coordinate] implements [fmt.Stringer]
func (c Coordinate) String() string {
	return fmt.Sprintf("%d:%d", c.X, c.Y)
}

// Neighbors yields the in-bounds Moore neighbours of c on a w*h grid.
func (c Coordinate) Neighbors(w, h int) iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				n := Coordinate{c.X + dx, c.Y + dy}
				if n.X < 0 || n.X >= w || n.Y < 0 || n.Y >= h {
					continue
				}
				if !yield(n) {
					return
				}
			}
		}
	}
}
