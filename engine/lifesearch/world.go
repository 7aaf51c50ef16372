package lifesearch

import "fmt"

// World is the fixed cell arena and its wiring: neighbors, predecessor/
// successor links across generations (with the period-boundary
// transform and translation), and symmetry partners. Grounded on
// original_source/src/world.rs's World::new and its init_* helpers.
type World struct {
	Width, Height, Period int
	DX, DY                int
	Transform             Transform
	Symmetry              Symmetry
	Rule                  Rule
	ColumnFirst           bool

	Cells []cell

	// SearchList holds the arena indices of every free cell, in search
	// order, as determined at construction time.
	SearchList []int32

	Gen0CellCount  int
	FrontCellCount int

	MaxCellCount  *int
	NonEmptyFront bool
}

var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NewWorld parses cfg's rule string and builds a fully wired World ready
// for search.
func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rule, err := ParseRule(cfg.RuleString)
	if err != nil {
		return nil, err
	}

	columnFirst := cfg.SearchOrder == ColumnFirst
	if cfg.SearchOrder == Automatic {
		columnFirst = autoColumnFirst(cfg)
	}

	w := &World{
		Width: cfg.Width, Height: cfg.Height, Period: cfg.Period,
		DX: cfg.DX, DY: cfg.DY,
		Transform: cfg.Transform, Symmetry: cfg.Symmetry,
		Rule: rule, ColumnFirst: columnFirst,
		MaxCellCount: cfg.MaxCellCount, NonEmptyFront: cfg.NonEmptyFront,
	}

	size := (w.Width + 2) * (w.Height + 2) * w.Period
	w.Cells = make([]cell, size)

	w.allocateCells()
	w.wireNeighbors()
	w.wirePredSucc()
	w.wireSymmetry(cfg.Symmetry)
	w.retractFreeCells()
	w.buildSearchList()

	return w, nil
}

// autoColumnFirst mirrors world.rs's column_first heuristic: symmetric
// axes folded in half for D2Row/D2Col, then compare effective width to
// effective height, breaking ties on |dx| vs |dy|.
func autoColumnFirst(cfg Config) bool {
	width, height := cfg.Width, cfg.Height
	switch cfg.Symmetry {
	case D2Row:
		height = (height + 1) / 2
	case D2Col:
		width = (width + 1) / 2
	}
	if width == height {
		return abs(cfg.DX) >= abs(cfg.DY)
	}
	return width > height
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (w *World) background(t int) State {
	if w.Rule.B0() && t%2 == 1 {
		return Alive
	}
	return Dead
}

// index returns the arena slot for (x, y, t), or -1 if out of the
// one-cell border (or t out of range).
func (w *World) index(x, y, t int) int32 {
	if x < -1 || x > w.Width || y < -1 || y > w.Height || t < 0 || t >= w.Period {
		return noCell
	}
	if w.ColumnFirst {
		return int32(((x+1)*(w.Height+2)+(y+1))*w.Period + t)
	}
	return int32(((y+1)*(w.Width+2)+(x+1))*w.Period + t)
}

func (w *World) inRange(x, y int) bool {
	return x >= 0 && x < w.Width && y >= 0 && y < w.Height
}

func (w *World) allocateCells() {
	for x := -1; x <= w.Width; x++ {
		for y := -1; y <= w.Height; y++ {
			for t := 0; t < w.Period; t++ {
				idx := w.index(x, y, t)
				bg := w.background(t)
				c := newCell(Coord{x, y, t}, bg)
				if w.ColumnFirst {
					c.IsFront = x == 0
				} else {
					c.IsFront = y == 0
				}
				succBg := w.background((t + 1) % w.Period)
				c.Desc = w.Rule.NewDescriptor(bg, succBg)
				w.Cells[idx] = c
			}
		}
	}
}

func (w *World) wireNeighbors() {
	for x := -1; x <= w.Width; x++ {
		for y := -1; y <= w.Height; y++ {
			for t := 0; t < w.Period; t++ {
				idx := w.index(x, y, t)
				for i, off := range neighborOffsets {
					w.Cells[idx].Nbhd[i] = w.index(x+off[0], y+off[1], t)
				}
			}
		}
	}
}

// transformBackward applies transform to (x, y) within a width x height
// box, per world.rs's init_pred_succ match arms (the "backward" form,
// used to find a generation-0 cell's predecessor at period-1).
func transformBackward(tr Transform, x, y, width, height int) (int, int) {
	switch tr {
	case R90:
		return height - 1 - y, x
	case R180:
		return width - 1 - x, height - 1 - y
	case R270:
		return y, width - 1 - x
	case FlipRow:
		return x, height - 1 - y
	case FlipCol:
		return width - 1 - x, y
	case FlipDiag:
		return y, x
	case FlipAntidiag:
		return height - 1 - y, width - 1 - x
	default:
		return x, y
	}
}

// transformForward is the period-boundary transform applied to a
// generation-(period-1) cell's coordinates to find its successor's
// coordinates at generation 0.
func transformForward(tr Transform, x, y, width, height int) (int, int) {
	switch tr {
	case R90:
		return y, width - 1 - x
	case R180:
		return width - 1 - x, height - 1 - y
	case R270:
		return height - 1 - y, x
	case FlipRow:
		return x, height - 1 - y
	case FlipCol:
		return width - 1 - x, y
	case FlipDiag:
		return y, x
	case FlipAntidiag:
		return height - 1 - y, width - 1 - x
	default:
		return x, y
	}
}

func (w *World) wirePredSucc() {
	for x := -1; x <= w.Width; x++ {
		for y := -1; y <= w.Height; y++ {
			for t := 0; t < w.Period; t++ {
				idx := w.index(x, y, t)

				if t != 0 {
					w.Cells[idx].Pred = w.index(x, y, t-1)
				} else {
					nx, ny := transformBackward(w.Transform, x, y, w.Width, w.Height)
					pred := w.index(nx-w.DX, ny-w.DY, w.Period-1)
					w.Cells[idx].Pred = pred
					if pred == noCell && w.inRange(x, y) {
						w.Cells[idx].Free = false
					}
				}

				if t != w.Period-1 {
					w.Cells[idx].Succ = w.index(x, y, t+1)
				} else {
					fx, fy := x+w.DX, y+w.DY
					nx, ny := transformForward(w.Transform, fx, fy, w.Width, w.Height)
					w.Cells[idx].Succ = w.index(nx, ny, 0)
				}
			}
		}
	}
}

var symmetryCoords = map[Symmetry]func(x, y, width, height int) [][2]int{
	C1: func(x, y, width, height int) [][2]int { return nil },
	C2: func(x, y, width, height int) [][2]int {
		return [][2]int{{width - 1 - x, height - 1 - y}}
	},
	C4: func(x, y, width, height int) [][2]int {
		return [][2]int{
			{y, width - 1 - x},
			{width - 1 - x, height - 1 - y},
			{height - 1 - y, x},
		}
	},
	D2Row: func(x, y, width, height int) [][2]int {
		return [][2]int{{x, height - 1 - y}}
	},
	D2Col: func(x, y, width, height int) [][2]int {
		return [][2]int{{width - 1 - x, y}}
	},
	D2Diag: func(x, y, width, height int) [][2]int {
		return [][2]int{{y, x}}
	},
	D2Antidiag: func(x, y, width, height int) [][2]int {
		return [][2]int{{height - 1 - y, width - 1 - x}}
	},
	D4Ortho: func(x, y, width, height int) [][2]int {
		return [][2]int{
			{width - 1 - x, y},
			{x, height - 1 - y},
			{width - 1 - x, height - 1 - y},
		}
	},
	D4Diag: func(x, y, width, height int) [][2]int {
		return [][2]int{
			{y, x},
			{height - 1 - y, width - 1 - x},
			{width - 1 - x, height - 1 - y},
		}
	},
	D8: func(x, y, width, height int) [][2]int {
		return [][2]int{
			{y, width - 1 - x},
			{height - 1 - y, x},
			{width - 1 - x, y},
			{x, height - 1 - y},
			{y, x},
			{height - 1 - y, width - 1 - x},
			{width - 1 - x, height - 1 - y},
		}
	},
}

func (w *World) wireSymmetry(sym Symmetry) {
	coordsFn := symmetryCoords[sym]
	for x := 0; x < w.Width; x++ {
		for y := 0; y < w.Height; y++ {
			for t := 0; t < w.Period; t++ {
				idx := w.index(x, y, t)
				for _, coord := range coordsFn(x, y, w.Width, w.Height) {
					sx, sy := coord[0], coord[1]
					if !w.inRange(sx, sy) {
						w.Cells[idx].Free = false
						continue
					}
					partner := w.index(sx, sy, t)
					w.Cells[idx].Sym = append(w.Cells[idx].Sym, partner)
				}
			}
		}
	}
}

// retractFreeCells undoes the uniform-background assumption baked into
// every cell's descriptor at allocateCells time, for cells that are
// actually free to search over (in range, and not pinned to Background by
// wirePredSucc/wireSymmetry above). This is the one place a cell's
// state legitimately moves from Known back to Unknown.
func (w *World) retractFreeCells() {
	for x := 0; x < w.Width; x++ {
		for y := 0; y < w.Height; y++ {
			for t := 0; t < w.Period; t++ {
				idx := w.index(x, y, t)
				c := &w.Cells[idx]
				if !c.Free {
					continue // pinned to Background by an out-of-range pred/sym partner
				}
				old := c.State
				c.State = Unknown
				c.Level = -1
				w.applyDescriptorDelta(idx, old, Unknown)
				w.updateCounters(c, old, Unknown)
			}
		}
	}
}

// buildSearchList walks the arena in index order, which is the chosen
// axis first, then the other axis, then t; border and pinned cells are
// never Unknown, so only free cells are listed.
func (w *World) buildSearchList() {
	for idx := range w.Cells {
		if w.Cells[idx].State == Unknown {
			w.SearchList = append(w.SearchList, int32(idx))
		}
	}
}

// String renders a short identification of the world's shape and rule,
// used in log fields.
func (w *World) String() string {
	return fmt.Sprintf("%dx%dp%d dx=%d dy=%d %s %s %s", w.Width, w.Height, w.Period, w.DX, w.DY, w.Transform, w.Symmetry, w.Rule)
}
