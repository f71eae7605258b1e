package script

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minefield/internal/game"
)

var Log = logrus.New()

// Apply performs one move on s. Flag verbs go through the session's mark
// cycle so that they respect the same player rules; unflag and unquestion
// both leave the cell unmarked.
func Apply(s *game.Session, m Move) (game.Update, error) {
	switch m.Verb {
	case Reveal:
		return s.Open(m.At)
	case Chord:
		return s.Chord(m.At)
	case Mark:
		return s.ToggleMark(m.At)
	case Flag, Unflag, Question, Unquestion:
		return toggleUntil(s, m)
	default:
		return game.Update{}, fmt.Errorf("%w: unknown verb %q", ErrSyntax, m.Verb)
	}
}

func toggleUntil(s *game.Session, m Move) (game.Update, error) {
	if m.Verb == Question && !s.Options().QuestionMarks {
		return game.Update{Status: s.Status()}, nil
	}

	want := func() bool {
		info, err := s.Field().CellInfo(m.At)
		if err != nil || info.Revealed() {
			return true
		}
		switch m.Verb {
		case Flag:
			return info.HasFlag()
		case Question:
			return info.HasQuestionMark()
		default:
			return !info.HasFlag() && !info.HasQuestionMark()
		}
	}

	var upd game.Update
	// at most three steps walk the whole cycle
	for range 3 {
		if want() {
			break
		}
		next, err := s.ToggleMark(m.At)
		if err != nil {
			return game.Update{}, err
		}
		if len(next.Cells) == 0 {
			break
		}
		upd = next
	}
	upd.Status = s.Status()
	return upd, nil
}

// Result summarizes one replayed script.
type Result struct {
	Status         game.Status
	Moves          int
	Applied        int
	FlagsRemaining int
}

func (r Result) Fields() logrus.Fields {
	return logrus.Fields{
		"status":          r.Status.String(),
		"moves":           r.Moves,
		"applied":         r.Applied,
		"flags_remaining": r.FlagsRemaining,
	}
}

// Replay applies moves in order until they run out, the game ends or ctx is
// cancelled.
func Replay(ctx context.Context, s *game.Session, moves []Move) (Result, error) {
	res := Result{}
	for _, m := range moves {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		upd, err := Apply(s, m)
		if err != nil {
			return res, fmt.Errorf("line %d: %s: %w", m.Line, m, err)
		}
		res.Applied++
		Log.WithFields(logrus.Fields{
			"move":    m.String(),
			"changed": len(upd.Cells),
			"status":  upd.Status.String(),
		}).Debug("move applied")
		if upd.Status != game.On {
			break
		}
	}
	res.Status = s.Status()
	res.Moves = s.Moves()
	res.FlagsRemaining = s.FlagsRemaining()
	return res, nil
}
