package game

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minefield/internal/mines"
)

var Log = logrus.New()

type Status int

const (
	On Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case On:
		return "on"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Update lists the cells whose look changed after one player action.
type Update struct {
	Cells  []mines.Coordinate
	Status Status
}

// Session applies the player-side rules on top of a [mines.MineField]:
// clicks on flagged cells and on finished games are ignored, and the
// secondary action cycles a covered cell through flag, question mark
// (when enabled) and nothing.
type Session struct {
	opts  Options
	rnd   *rand.Rand
	field *mines.MineField
	moves int
}

// New deals a field for opts. A nil r selects a randomly seeded source.
func New(opts Options, r *rand.Rand) (*Session, error) {
	s := &Session{opts: opts, rnd: r}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewWithField wraps a prepared field, e.g. one built by [mines.NewWithMines].
func NewWithField(opts Options, field *mines.MineField) *Session {
	return &Session{opts: opts, field: field}
}

// Restart throws the current field away and deals a new one with the same
// options.
func (s *Session) Restart() error {
	columns, rows, count, err := s.opts.Params()
	if err != nil {
		return err
	}
	field, err := mines.New(columns, rows, count, s.rnd)
	if err != nil {
		return fmt.Errorf("new field: %w", err)
	}
	s.field = field
	s.moves = 0
	Log.WithFields(logrus.Fields{
		"difficulty": s.opts.Difficulty,
		"columns":    columns,
		"rows":       rows,
		"mines":      count,
	}).Debug("new game")
	return nil
}

func (s *Session) Options() Options          { return s.opts }
func (s *Session) Field() mines.GameInfo     { return s.field.View() }
func (s *Session) FlagsRemaining() int       { return s.field.FlagsRemaining() }
func (s *Session) Moves() int                { return s.moves }
func (s *Session) String() string            { return s.field.String() }
func (s *Session) Grid() mines.Grid          { return s.field.Grid() }
func (s *Session) Dimensions() (int, int)    { return s.field.Dimensions() }
func (s *Session) Mines() []mines.Coordinate { return s.field.MineCoordinates() }

func (s *Session) Status() Status {
	switch {
	case s.field.WasMineHit():
		return Lost
	case s.field.IsGameWon():
		return Won
	default:
		return On
	}
}

func (s *Session) update(cells []mines.Coordinate) Update {
	return Update{Cells: cells, Status: s.Status()}
}

// Open reveals the cell at c. Flagged cells and finished games are left alone.
func (s *Session) Open(c mines.Coordinate) (Update, error) {
	info, err := s.field.CellInfo(c)
	if err != nil {
		return Update{}, err
	}
	if s.field.Terminal() || info.HasFlag() {
		return s.update(nil), nil
	}

	cells, err := s.field.Reveal(c)
	if err != nil {
		return Update{}, err
	}
	if len(cells) > 0 {
		s.moves++
	}

	upd := s.update(cells)
	if upd.Status != On {
		Log.WithFields(logrus.Fields{
			"status": upd.Status,
			"cell":   c.String(),
			"moves":  s.moves,
		}).Info("game over")
	}
	return upd, nil
}

// ToggleMark advances the secondary marker of a covered cell:
// nothing -> flag -> question mark -> nothing. Without question marks a flag
// goes straight back to nothing. Running out of flags leaves the cell as is.
func (s *Session) ToggleMark(c mines.Coordinate) (Update, error) {
	info, err := s.field.CellInfo(c)
	if err != nil {
		return Update{}, err
	}
	if s.field.Terminal() || info.Revealed() {
		return s.update(nil), nil
	}

	switch {
	case info.HasFlag():
		if _, err := s.field.SetFlag(c, false); err != nil {
			return Update{}, err
		}
		if s.opts.QuestionMarks {
			if err := s.field.SetQuestionMark(c, true); err != nil {
				return Update{}, err
			}
		}
	case info.HasQuestionMark():
		if err := s.field.SetQuestionMark(c, false); err != nil {
			return Update{}, err
		}
	default:
		_, err := s.field.SetFlag(c, true)
		if errors.Is(err, mines.ErrNoFlagsLeft) {
			return s.update(nil), nil
		}
		if err != nil {
			return Update{}, err
		}
	}

	return s.update([]mines.Coordinate{c}), nil
}

// Chord opens every unflagged covered neighbour of a revealed number once
// as many neighbours are flagged as the number says.
func (s *Session) Chord(c mines.Coordinate) (Update, error) {
	info, err := s.field.CellInfo(c)
	if err != nil {
		return Update{}, err
	}
	n, ok := info.NearbyMines()
	if s.field.Terminal() || !ok || n == 0 {
		return s.update(nil), nil
	}

	w, h := s.field.Dimensions()
	var (
		flags int
		todo  []mines.Coordinate
	)
	for nb := range c.Neighbors(w, h) {
		ni, _ := s.field.CellInfo(nb)
		switch {
		case ni.HasFlag():
			flags++
		case !ni.Revealed():
			todo = append(todo, nb)
		}
	}
	if flags != n {
		return s.update(nil), nil
	}

	var (
		cells []mines.Coordinate
		seen  = map[mines.Coordinate]struct{}{}
	)
	for _, nb := range todo {
		opened, err := s.field.Reveal(nb)
		if err != nil {
			return Update{}, err
		}
		for _, o := range opened {
			if _, dup := seen[o]; !dup {
				seen[o] = struct{}{}
				cells = append(cells, o)
			}
		}
		if s.field.Terminal() {
			break
		}
	}
	if len(cells) > 0 {
		s.moves++
	}
	return s.update(cells), nil
}
