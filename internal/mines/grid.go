package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellStatus int8

const (
	Question      CellStatus = -3
	Unknown       CellStatus = -2
	Flag          CellStatus = -1
	CorrectFlag   CellStatus = 64 // post-game-over
	ExplodedMine  CellStatus = 65
	UnflaggedMine CellStatus = 67
	// 0-8 for open cells with given number of mined neighbours
)

func (s CellStatus) String() string {
	switch s {
	case Question:
		return "?"
	case Unknown:
		return "."
	case Flag, CorrectFlag:
		return "F"
	case ExplodedMine:
		return "!"
	case UnflaggedMine:
		return "*"
	case 0, 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	default:
		return "#"
	}
}

// Grid is a row-major projection of a field's cell statuses.
type Grid []CellStatus

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprint(&b, g[y*width+x].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
