package mines

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Reveal opens the cell at c and returns every coordinate whose visible
// state changed, in the order it changed.
//
//   - a mine ends the game: the hit cell and every other mine are revealed
//     and the mine coordinates are returned;
//   - a cell with mined neighbours opens alone;
//   - a cell without mined neighbours opens its whole zero region together
//     with the numbered cells bordering it.
//
// When only mines stay covered afterwards the game is won, all mines are
// flagged and their coordinates are appended to the result.
//
// Reveal does not check for a finished game; callers stop revealing once
// [MineField.Terminal] reports true.
func (f *MineField) Reveal(c Coordinate) ([]Coordinate, error) {
	target, err := f.at(c)
	if err != nil {
		return nil, fmt.Errorf("reveal: %w", err)
	}
	if target.flagged {
		return nil, fmt.Errorf("reveal %s: %w", c, ErrCannotRevealFlagged)
	}
	if target.revealed {
		return nil, nil
	}

	if !f.minesPlaced {
		if err := f.PlaceMines(c); err != nil {
			return nil, fmt.Errorf("reveal %s: %w", c, err)
		}
	}

	if target.mine {
		target.hit = true
		// Flags stay on revealed mines so a finished field can tell correct
		// flags from missed mines.
		for _, m := range f.mines {
			mc := &f.cells[f.index(m)]
			mc.revealed = true
			mc.question = false
		}
		f.mineHit = true
		Log.WithField("cell", c.String()).Debug("mine hit")
		return f.MineCoordinates(), nil
	}

	changed := f.floodReveal(c)

	if !f.gameWon && f.covered == f.mineCount {
		for _, m := range f.mines {
			mc := &f.cells[f.index(m)]
			mc.flagged = true
			mc.question = false
		}
		f.flagsLeft = 0
		f.gameWon = true
		changed = appendUnique(changed, f.mines...)
		Log.WithFields(logrus.Fields{
			"cell":  c.String(),
			"mines": f.mineCount,
		}).Debug("field cleared")
	}

	return changed, nil
}

/*
floodReveal opens start and, through a worklist, every cell reachable from it
across cells with no mined neighbours. A cell already revealed or flagged is
skipped when taken off the list, so each cell is opened at most once and the
walk visits no more than width*height cells.
*/
func (f *MineField) floodReveal(start Coordinate) []Coordinate {
	var (
		opened []Coordinate
		todo   = []Coordinate{start}
	)

	for len(todo) > 0 {
		c := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		cl := &f.cells[f.index(c)]
		if cl.revealed || cl.flagged || cl.mine {
			continue
		}

		cl.revealed = true
		cl.question = false
		opened = append(opened, c)
		f.covered--

		if cl.nearby > 0 {
			continue
		}
		for nb := range c.Neighbors(f.width, f.height) {
			todo = append(todo, nb)
		}
	}

	return opened
}

func appendUnique(list []Coordinate, more ...Coordinate) []Coordinate {
	seen := make(map[Coordinate]struct{}, len(list)+len(more))
	for _, c := range list {
		seen[c] = struct{}{}
	}
	for _, c := range more {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		list = append(list, c)
	}
	return list
}
