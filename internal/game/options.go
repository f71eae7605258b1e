package game

import (
	"fmt"
	"strings"
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
	Custom Difficulty = "custom"
)

type preset struct {
	columns, rows, mines int
}

var presets = map[Difficulty]preset{
	Easy:   {9, 9, 10},
	Medium: {16, 16, 40},
	Hard:   {30, 16, 99},
}

func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := presets[d]; ok || d == Custom {
		return d, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Options describe the field a [Session] deals. Columns, Rows and Mines are
// only read for [Custom].
type Options struct {
	Difficulty    Difficulty
	Columns       int
	Rows          int
	Mines         int
	QuestionMarks bool
}

// DefaultOptions matches a fresh install: medium field, question marks on.
func DefaultOptions() Options {
	return Options{Difficulty: Medium, QuestionMarks: true}
}

func (o Options) Params() (columns, rows, mines int, err error) {
	if o.Difficulty == Custom {
		return o.Columns, o.Rows, o.Mines, nil
	}
	p, ok := presets[o.Difficulty]
	if !ok {
		return 0, 0, 0, fmt.Errorf("unknown difficulty %q", o.Difficulty)
	}
	return p.columns, p.rows, p.mines, nil
}
