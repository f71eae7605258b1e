package mines

import "fmt"

// SetFlag puts a flag on or takes it off the cell at c and returns the number
// of flags still available. Flags are limited to the field's mine count.
// Flagging an already flagged cell changes nothing. Flagging a cell drops its
// question mark.
func (f *MineField) SetFlag(c Coordinate, flagged bool) (int, error) {
	cl, err := f.at(c)
	if err != nil {
		return f.flagsLeft, fmt.Errorf("flag: %w", err)
	}

	if flagged {
		if cl.flagged {
			return f.flagsLeft, nil
		}
		if f.flagsLeft == 0 {
			return f.flagsLeft, fmt.Errorf("flag %s: %w", c, ErrNoFlagsLeft)
		}
		cl.flagged = true
		cl.question = false
		f.flagsLeft--
		return f.flagsLeft, nil
	}

	if f.flagsLeft == f.mineCount || !cl.flagged {
		return f.flagsLeft, fmt.Errorf("unflag %s: %w", c, ErrNoFlagToRemove)
	}
	cl.flagged = false
	f.flagsLeft++
	return f.flagsLeft, nil
}

// SetQuestionMark sets or clears the question mark on the cell at c. Marking
// a flagged cell gives its flag back.
func (f *MineField) SetQuestionMark(c Coordinate, marked bool) error {
	cl, err := f.at(c)
	if err != nil {
		return fmt.Errorf("question mark: %w", err)
	}
	if marked && cl.flagged {
		cl.flagged = false
		f.flagsLeft++
	}
	cl.question = marked
	return nil
}
