package lifesearch

// noCell is the arena-index sentinel for "no such cell" (a border
// neighbor, a missing predecessor at generation 0 of an aperiodic
// search, and so on). Grounded on original_source/lib/src/cells.rs's
// Option<CellRef>, expressed as an index since Go has no
// lifetime-checked self-referential pointers.
const noCell int32 = -1

// Coord is a cell's position: a 2D grid coordinate plus the generation
// it belongs to within one period.
type Coord struct {
	X, Y, T int
}

// cell is one element of the World's fixed cell arena. All
// cross-references (pred, succ, nbhd, sym) are indices into the arena's
// cells slice rather than pointers, since the whole arena is allocated
// once up front and never resized.
type cell struct {
	Coord Coord

	// Background is the cell's state before anything is deduced: Dead for
	// rules without B0, alternating by generation parity for rules with
	// B0. State starts equal to Background.
	Background State
	State      State
	Desc       Descriptor

	Pred int32
	Succ int32
	Nbhd [8]int32
	Sym  []int32

	IsFront bool
	Reason  Reason
	// Level is the decision level at which State was assigned, or -1 if
	// State is Unknown.
	Level int

	// Free reports whether this cell is actually searched over. A cell
	// otherwise in range becomes permanently pinned to Background (Free
	// = false) when its predecessor or a symmetry partner would fall
	// outside the region.
	Free bool
}

func newCell(coord Coord, background State) cell {
	return cell{
		Coord:      coord,
		Background: background,
		State:      background,
		Pred:       noCell,
		Succ:       noCell,
		Nbhd:       [8]int32{noCell, noCell, noCell, noCell, noCell, noCell, noCell, noCell},
		Level:      -1,
		Free:       true,
	}
}
