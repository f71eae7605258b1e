package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// GameInfo is the read-only face of a field handed to presentation code.
type GameInfo interface {
	Columns() int
	Rows() int
	CellInfo(c Coordinate) (CellInfo, error)
}

// MineField is the game state of one minesweeper round. Mines are placed
// lazily by the first reveal so that the first opened cell is always safe.
// A MineField is not safe for concurrent use.
type MineField struct {
	width, height int
	mineCount     int
	cells         []cell // row-major, y*width+x
	mines         []Coordinate
	minesPlaced   bool
	flagsLeft     int
	covered       int
	mineHit       bool
	gameWon       bool
	rnd           *rand.Rand
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// New creates an unplaced field. A nil r selects a randomly seeded source.
func New(columns, rows, mineCount int, r *rand.Rand) (*MineField, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidConfiguration, columns, rows)
	}
	if mineCount < 0 || mineCount >= columns*rows {
		return nil, fmt.Errorf(
			"%w: %d mines on %dx%d (want 0 <= mines < %d)",
			ErrInvalidConfiguration, mineCount, columns, rows, columns*rows,
		)
	}
	if r == nil {
		r = newRand()
	}

	cells := make([]cell, columns*rows)
	for i := range cells {
		cells[i].nearby = -1
	}

	return &MineField{
		width:     columns,
		height:    rows,
		mineCount: mineCount,
		cells:     cells,
		flagsLeft: mineCount,
		covered:   columns * rows,
		rnd:       r,
	}, nil
}

func (f *MineField) Columns() int           { return f.width }
func (f *MineField) Rows() int              { return f.height }
func (f *MineField) Dimensions() (int, int) { return f.width, f.height }
func (f *MineField) MineCount() int         { return f.mineCount }
func (f *MineField) FlagsRemaining() int    { return f.flagsLeft }
func (f *MineField) Covered() int           { return f.covered }
func (f *MineField) MinesPlaced() bool      { return f.minesPlaced }
func (f *MineField) IsGameWon() bool        { return f.gameWon }
func (f *MineField) WasMineHit() bool       { return f.mineHit }
func (f *MineField) Terminal() bool         { return f.gameWon || f.mineHit }

func (f *MineField) InBounds(c Coordinate) bool {
	return 0 <= c.X && c.X < f.width && 0 <= c.Y && c.Y < f.height
}

func (f *MineField) index(c Coordinate) int {
	return c.Y*f.width + c.X
}

func (f *MineField) coordinate(i int) Coordinate {
	return Coordinate{X: i % f.width, Y: i / f.width}
}

func (f *MineField) at(c Coordinate) (*cell, error) {
	if !f.InBounds(c) {
		return nil, fmt.Errorf(
			"%w: %s not within %dx%d", ErrOutOfBounds, c, f.width, f.height,
		)
	}
	return &f.cells[f.index(c)], nil
}

// MineCoordinates returns the placed mines in placement order.
func (f *MineField) MineCoordinates() []Coordinate {
	return append([]Coordinate(nil), f.mines...)
}

func (f *MineField) CellInfo(c Coordinate) (CellInfo, error) {
	cl, err := f.at(c)
	if err != nil {
		return CellInfo{}, err
	}
	return CellInfo{coord: c, c: *cl}, nil
}

type view struct{ f *MineField }

func (v view) Columns() int { return v.f.width }
func (v view) Rows() int    { return v.f.height }
func (v view) CellInfo(c Coordinate) (CellInfo, error) {
	return v.f.CellInfo(c)
}

// View returns a [GameInfo] that cannot be type-asserted back to the field.
func (f *MineField) View() GameInfo {
	return view{f}
}

func (f *MineField) Grid() Grid {
	g := make(Grid, len(f.cells))
	for i := range f.cells {
		g[i] = CellInfo{coord: f.coordinate(i), c: f.cells[i]}.Status()
	}
	return g
}

// [MineField] implements [fmt.Stringer]
func (f *MineField) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d mines=%d flags=%d covered=%d\n",
		f.width, f.height, f.mineCount, f.flagsLeft, f.covered)
	b.WriteString(f.Grid().ToString(f.width))
	return b.String()
}
