package mines

type cell struct {
	mine     bool
	revealed bool
	flagged  bool
	question bool
	hit      bool
	nearby   int // -1 until counted, never counted for mines
}

// CellInfo is a read-only snapshot of one cell taken at query time.
type CellInfo struct {
	coord Coordinate
	c     cell
}

func (i CellInfo) Coordinate() Coordinate { return i.coord }
func (i CellInfo) Revealed() bool         { return i.c.revealed }
func (i CellInfo) HasMine() bool          { return i.c.mine }
func (i CellInfo) HasFlag() bool          { return i.c.flagged }
func (i CellInfo) HasQuestionMark() bool  { return i.c.question }
func (i CellInfo) MineWasHit() bool       { return i.c.hit }

// NearbyMines reports the mined neighbour count. ok is false unless the cell
// is revealed and holds no mine.
func (i CellInfo) NearbyMines() (n int, ok bool) {
	if !i.c.revealed || i.c.mine {
		return 0, false
	}
	return i.c.nearby, true
}

// Status folds the snapshot into a single player-facing code.
func (i CellInfo) Status() CellStatus {
	switch {
	case i.c.hit:
		return ExplodedMine
	case i.c.flagged && i.c.mine && i.c.revealed:
		return CorrectFlag
	case i.c.flagged:
		return Flag
	case i.c.revealed && i.c.mine:
		return UnflaggedMine
	case i.c.revealed:
		return CellStatus(i.c.nearby)
	case i.c.question:
		return Question
	default:
		return Unknown
	}
}
