package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstRevealIsSafe(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	tests := []struct {
		name          string
		columns, rows int
		mines         int
	}{
		{"9x9(10)", 9, 9, 10},
		{"9x9(80)", 9, 9, 80},
		{"16x16(40)", 16, 16, 40},
		{"30x16(99)", 30, 16, 99},
		{"30x16(479)", 30, 16, 479},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := seeded(1)
			for sy := range test.rows {
				for sx := range test.columns {
					f, err := New(test.columns, test.rows, test.mines, r)
					require.NoError(t, err)
					_, err = f.Reveal(Coordinate{sx, sy})
					require.NoError(t, err)
					require.False(t, f.WasMineHit(), "%s @ %d:%d", test.name, sx, sy)
				}
			}
		})
	}
}

func TestRevealBeginnerCorner(t *testing.T) {
	f, err := New(9, 9, 10, seeded(1))
	require.NoError(t, err)

	changed, err := f.Reveal(Coordinate{0, 0})
	require.NoError(t, err)

	assert.True(t, f.MinesPlaced())
	assert.False(t, f.WasMineHit())
	assert.NotEmpty(t, changed)
	assert.Equal(t, Coordinate{0, 0}, changed[0])
	for _, m := range f.MineCoordinates() {
		assert.NotContains(t, changed, m)
	}
	assert.Equal(t, 81-len(changed), f.Covered())
}

func TestRevealSurroundedCell(t *testing.T) {
	var ring []Coordinate
	for nb := range (Coordinate{2, 2}).Neighbors(5, 5) {
		ring = append(ring, nb)
	}
	f, err := NewWithMines(5, 5, ring)
	require.NoError(t, err)

	changed, err := f.Reveal(Coordinate{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []Coordinate{{2, 2}}, changed)

	info, _ := f.CellInfo(Coordinate{2, 2})
	n, ok := info.NearbyMines()
	assert.True(t, ok)
	assert.Equal(t, 8, n)
	assert.Equal(t, CellStatus(8), info.Status())
	assert.False(t, f.Terminal())
}

// wall is a 5x3 field split by a column of mines at x=2.
func wall(t *testing.T) *MineField {
	t.Helper()
	f, err := NewWithMines(5, 3, []Coordinate{{2, 0}, {2, 1}, {2, 2}})
	require.NoError(t, err)
	return f
}

func TestRevealFloodFill(t *testing.T) {
	f := wall(t)

	changed, err := f.Reveal(Coordinate{0, 0})
	require.NoError(t, err)

	assert.ElementsMatch(t, []Coordinate{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
	}, changed)
	assert.Equal(t, 9, f.Covered())
	assert.False(t, f.Terminal())

	for y := range 3 {
		for x := 2; x < 5; x++ {
			info, _ := f.CellInfo(Coordinate{x, y})
			assert.False(t, info.Revealed(), "%d:%d", x, y)
		}
	}
}

func TestRevealClearsQuestionMark(t *testing.T) {
	f := wall(t)
	require.NoError(t, f.SetQuestionMark(Coordinate{1, 1}, true))

	_, err := f.Reveal(Coordinate{0, 0})
	require.NoError(t, err)

	info, _ := f.CellInfo(Coordinate{1, 1})
	assert.True(t, info.Revealed())
	assert.False(t, info.HasQuestionMark())
}

func TestRevealStopsAtFlag(t *testing.T) {
	f := wall(t)
	_, err := f.SetFlag(Coordinate{0, 2}, true)
	require.NoError(t, err)

	changed, err := f.Reveal(Coordinate{0, 0})
	require.NoError(t, err)
	assert.NotContains(t, changed, Coordinate{0, 2})
	assert.Len(t, changed, 5)

	info, _ := f.CellInfo(Coordinate{0, 2})
	assert.True(t, info.HasFlag())
	assert.False(t, info.Revealed())
}

func TestRevealTwice(t *testing.T) {
	f := wall(t)

	_, err := f.Reveal(Coordinate{0, 0})
	require.NoError(t, err)
	covered := f.Covered()

	changed, err := f.Reveal(Coordinate{0, 0})
	require.NoError(t, err)
	assert.Empty(t, changed)
	assert.Equal(t, covered, f.Covered())

	changed, err = f.Reveal(Coordinate{1, 2})
	require.NoError(t, err)
	assert.Empty(t, changed)
	assert.Equal(t, covered, f.Covered())
}

func TestRevealErrors(t *testing.T) {
	f, err := New(4, 4, 3, seeded(1))
	require.NoError(t, err)

	for _, c := range []Coordinate{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		_, err := f.Reveal(c)
		assert.ErrorIs(t, err, ErrOutOfBounds, c.String())
	}
	assert.False(t, f.MinesPlaced())

	_, err = f.SetFlag(Coordinate{1, 1}, true)
	require.NoError(t, err)
	_, err = f.Reveal(Coordinate{1, 1})
	assert.ErrorIs(t, err, ErrCannotRevealFlagged)
	assert.False(t, f.MinesPlaced())
	assert.Equal(t, 16, f.Covered())
}

func TestRevealMine(t *testing.T) {
	f := wall(t)

	_, err := f.Reveal(Coordinate{0, 0})
	require.NoError(t, err)
	_, err = f.SetFlag(Coordinate{2, 2}, true)
	require.NoError(t, err)
	covered := f.Covered()

	changed, err := f.Reveal(Coordinate{2, 1})
	require.NoError(t, err)

	assert.True(t, f.WasMineHit())
	assert.False(t, f.IsGameWon())
	assert.True(t, f.Terminal())
	assert.Equal(t, f.MineCoordinates(), changed)
	assert.Equal(t, covered, f.Covered())

	for _, m := range f.MineCoordinates() {
		info, _ := f.CellInfo(m)
		assert.True(t, info.Revealed())
		assert.Equal(t, m == Coordinate{2, 1}, info.MineWasHit())
	}

	hit, _ := f.CellInfo(Coordinate{2, 1})
	assert.Equal(t, ExplodedMine, hit.Status())
	flagged, _ := f.CellInfo(Coordinate{2, 2})
	assert.Equal(t, CorrectFlag, flagged.Status())
	other, _ := f.CellInfo(Coordinate{2, 0})
	assert.Equal(t, UnflaggedMine, other.Status())
}

func TestRevealWin(t *testing.T) {
	f := wall(t)
	_, err := f.SetFlag(Coordinate{2, 0}, true)
	require.NoError(t, err)

	_, err = f.Reveal(Coordinate{0, 0})
	require.NoError(t, err)
	require.False(t, f.IsGameWon())

	changed, err := f.Reveal(Coordinate{4, 1})
	require.NoError(t, err)

	assert.True(t, f.IsGameWon())
	assert.False(t, f.WasMineHit())
	assert.Equal(t, f.MineCount(), f.Covered())
	assert.Equal(t, 0, f.FlagsRemaining())
	assert.Len(t, changed, 6+3)
	for _, m := range f.MineCoordinates() {
		assert.Contains(t, changed, m)
		info, _ := f.CellInfo(m)
		assert.True(t, info.HasFlag())
		assert.False(t, info.Revealed())
	}
}

func TestRevealWinClearsQuestionMark(t *testing.T) {
	mine := Coordinate{1, 1}
	f, err := NewWithMines(2, 2, []Coordinate{mine})
	require.NoError(t, err)
	require.NoError(t, f.SetQuestionMark(mine, true))

	for _, c := range []Coordinate{{0, 0}, {1, 0}, {0, 1}} {
		_, err := f.Reveal(c)
		require.NoError(t, err)
	}
	require.True(t, f.IsGameWon())

	info, err := f.CellInfo(mine)
	require.NoError(t, err)
	assert.True(t, info.HasFlag())
	assert.False(t, info.HasQuestionMark())
	assert.Equal(t, 0, f.FlagsRemaining())
	assertBookkeeping(t, f)
}

func TestRevealWinOneByOne(t *testing.T) {
	f, err := NewWithMines(2, 2, []Coordinate{{1, 1}})
	require.NoError(t, err)

	changed, err := f.Reveal(Coordinate{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []Coordinate{{0, 0}}, changed)

	changed, err = f.Reveal(Coordinate{1, 0})
	require.NoError(t, err)
	assert.Equal(t, []Coordinate{{1, 0}}, changed)
	assert.False(t, f.IsGameWon())

	changed, err = f.Reveal(Coordinate{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []Coordinate{{0, 1}, {1, 1}}, changed)
	assert.True(t, f.IsGameWon())

	info, _ := f.CellInfo(Coordinate{1, 1})
	assert.True(t, info.HasFlag())
	assert.Equal(t, Flag, info.Status())
}

func TestRevealNoMines(t *testing.T) {
	f, err := New(4, 3, 0, seeded(1))
	require.NoError(t, err)

	changed, err := f.Reveal(Coordinate{3, 2})
	require.NoError(t, err)
	assert.Len(t, changed, 12)
	assert.True(t, f.IsGameWon())
	assert.Equal(t, 0, f.Covered())
}

// TestRandomGames plays random moves on seeded fields and checks the
// bookkeeping after each one.
func TestRandomGames(t *testing.T) {
	r := seeded(7)

	for game := range 200 {
		f, err := New(8, 8, 10, r)
		require.NoError(t, err)

		for step := 0; !f.Terminal(); step++ {
			c := Coordinate{r.IntN(8), r.IntN(8)}
			info, _ := f.CellInfo(c)

			switch {
			case info.Revealed():
				continue
			case r.IntN(8) == 0:
				require.NoError(t, f.SetQuestionMark(c, !info.HasQuestionMark()))
			case r.IntN(5) == 0 && f.MinesPlaced():
				if info.HasFlag() {
					_, err = f.SetFlag(c, false)
				} else if f.FlagsRemaining() > 0 {
					_, err = f.SetFlag(c, true)
				}
				require.NoError(t, err)
			case info.HasFlag():
				continue
			default:
				covered := f.Covered()
				changed, err := f.Reveal(c)
				require.NoError(t, err)
				require.NotEmpty(t, changed)
				if !f.Terminal() {
					require.Equal(t, covered-len(changed), f.Covered())
				}
			}

			assertBookkeeping(t, f)
			require.Less(t, step, 10000, "game %d does not end", game)
		}
	}
}

func assertBookkeeping(t *testing.T, f *MineField) {
	t.Helper()

	require.GreaterOrEqual(t, f.FlagsRemaining(), 0)
	require.LessOrEqual(t, f.FlagsRemaining(), f.MineCount())

	covered, flags := 0, 0
	for i, c := range f.cells {
		require.False(t, c.flagged && c.question, "cell %d flagged and marked", i)
		if c.flagged {
			flags++
		}
		if c.hit {
			require.True(t, c.mine && c.revealed)
		}
		if c.mine && c.revealed {
			require.True(t, f.WasMineHit(), "mine revealed without a loss")
		}
		if !c.mine && !c.revealed {
			covered++
		} else if c.mine {
			covered++
		}
	}
	require.Equal(t, f.Covered(), covered)
	require.Equal(t, f.MineCount()-f.FlagsRemaining(), flags)
	require.Equal(t, f.IsGameWon(), !f.WasMineHit() && f.Covered() == f.MineCount())
}
