package mines

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// PlaceMines lays out the field's mines anywhere except safe and counts the
// mined neighbours of every other cell. It is run by the first [MineField.Reveal]
// and may be called directly only before that.
func (f *MineField) PlaceMines(safe Coordinate) error {
	if f.minesPlaced {
		return ErrAlreadyPlaced
	}
	if !f.InBounds(safe) {
		return fmt.Errorf(
			"%w: safe cell %s not within %dx%d", ErrOutOfBounds, safe, f.width, f.height,
		)
	}

	/*
	 * Rejection sampling: draw indices over the whole grid and throw away
	 * the safe cell and anything already mined.
	 */
	skip := f.index(safe)
	taken := make([]bool, len(f.cells))
	mines := make([]Coordinate, 0, f.mineCount)
	for len(mines) < f.mineCount {
		i := f.rnd.IntN(len(f.cells))
		if i == skip || taken[i] {
			continue
		}
		taken[i] = true
		mines = append(mines, f.coordinate(i))
	}

	f.plant(mines)

	Log.WithFields(logrus.Fields{
		"size":  fmt.Sprintf("%dx%d", f.width, f.height),
		"mines": f.mineCount,
		"safe":  safe.String(),
	}).Debug("mines placed")

	return nil
}

// plant marks mines and counts the mined neighbours of every safe cell.
func (f *MineField) plant(mines []Coordinate) {
	f.mines = mines
	for _, m := range mines {
		f.cells[f.index(m)].mine = true
	}

	for i := range f.cells {
		if f.cells[i].mine {
			continue
		}
		n := 0
		for nb := range f.coordinate(i).Neighbors(f.width, f.height) {
			if f.cells[f.index(nb)].mine {
				n++
			}
		}
		f.cells[i].nearby = n
	}

	f.minesPlaced = true
}

// NewWithMines creates a field with a fixed mine layout. The first reveal does
// not move mines, so it may hit one.
func NewWithMines(columns, rows int, mines []Coordinate) (*MineField, error) {
	f, err := New(columns, rows, len(mines), nil)
	if err != nil {
		return nil, err
	}
	seen := make(map[Coordinate]struct{}, len(mines))
	for _, m := range mines {
		if !f.InBounds(m) {
			return nil, fmt.Errorf("%w: mine %s not within %dx%d",
				ErrInvalidConfiguration, m, columns, rows)
		}
		if _, ok := seen[m]; ok {
			return nil, fmt.Errorf("%w: duplicate mine %s", ErrInvalidConfiguration, m)
		}
		seen[m] = struct{}{}
	}
	f.plant(append([]Coordinate(nil), mines...))
	return f, nil
}
