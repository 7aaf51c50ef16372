package lifesearch

import "fmt"

// Transform is a spatial transform applied to the pattern once per
// period, before the (dx, dy) translation. Grounded on
// original_source/src/syms_trans.rs's Transform enum.
type Transform int

const (
	Id Transform = iota
	R90
	R180
	R270
	FlipRow   // F|  — (x, y) -> (x, height-1-y)
	FlipCol   // F-  — (x, y) -> (width-1-x, y)
	FlipDiag  // F\  — flip across the main diagonal
	FlipAntidiag // F/ — flip across the anti-diagonal
)

// Square reports whether this transform only makes sense on a square
// world, because it exchanges the x and y axes.
func (t Transform) Square() bool {
	switch t {
	case R90, R270, FlipDiag, FlipAntidiag:
		return true
	default:
		return false
	}
}

func (t Transform) String() string {
	switch t {
	case Id:
		return "Id"
	case R90:
		return "R90"
	case R180:
		return "R180"
	case R270:
		return "R270"
	case FlipRow:
		return "F|"
	case FlipCol:
		return "F-"
	case FlipDiag:
		return `F\`
	case FlipAntidiag:
		return "F/"
	default:
		return "Transform(?)"
	}
}

// ParseTransform parses the token spellings used on the command line.
func ParseTransform(s string) (Transform, error) {
	switch s {
	case "Id", "id":
		return Id, nil
	case "R90":
		return R90, nil
	case "R180":
		return R180, nil
	case "R270":
		return R270, nil
	case "F|":
		return FlipRow, nil
	case "F-":
		return FlipCol, nil
	case `F\`:
		return FlipDiag, nil
	case "F/":
		return FlipAntidiag, nil
	default:
		return Id, fmt.Errorf("lifesearch: unknown transform %q", s)
	}
}

// Symmetry is one of the ten symmetry groups a pattern can be
// constrained to. Grounded on original_source/src/syms_trans.rs's
// Symmetry enum.
type Symmetry int

const (
	C1 Symmetry = iota
	C2
	C4
	D2Row
	D2Col
	D2Diag
	D2Antidiag
	D4Ortho
	D4Diag
	D8
)

// Square reports whether this symmetry only makes sense on a square
// world, because one of its partner maps exchanges the x and y axes.
func (s Symmetry) Square() bool {
	switch s {
	case C4, D2Diag, D2Antidiag, D4Diag, D8:
		return true
	default:
		return false
	}
}

func (s Symmetry) String() string {
	switch s {
	case C1:
		return "C1"
	case C2:
		return "C2"
	case C4:
		return "C4"
	case D2Row:
		return "D2|"
	case D2Col:
		return "D2-"
	case D2Diag:
		return `D2\`
	case D2Antidiag:
		return "D2/"
	case D4Ortho:
		return "D4+"
	case D4Diag:
		return "D4x"
	case D8:
		return "D8"
	default:
		return "Symmetry(?)"
	}
}

// ParseSymmetry parses the token spellings used on the command line.
func ParseSymmetry(s string) (Symmetry, error) {
	switch s {
	case "C1":
		return C1, nil
	case "C2":
		return C2, nil
	case "C4":
		return C4, nil
	case "D2|":
		return D2Row, nil
	case "D2-":
		return D2Col, nil
	case `D2\`:
		return D2Diag, nil
	case "D2/":
		return D2Antidiag, nil
	case "D4+":
		return D4Ortho, nil
	case "D4x", "D4×":
		return D4Diag, nil
	case "D8":
		return D8, nil
	default:
		return C1, fmt.Errorf("lifesearch: unknown symmetry %q", s)
	}
}

// SearchOrder picks which axis the search list is built along first.
type SearchOrder int

const (
	Automatic SearchOrder = iota
	RowFirst
	ColumnFirst
)

func ParseSearchOrder(s string) (SearchOrder, error) {
	switch s {
	case "", "Automatic":
		return Automatic, nil
	case "RowFirst":
		return RowFirst, nil
	case "ColumnFirst":
		return ColumnFirst, nil
	default:
		return Automatic, fmt.Errorf("lifesearch: unknown search order %q", s)
	}
}

// NewState is the choice policy used when the search assumes a cell
// that propagation left undetermined.
type NewState int

const (
	ChooseAlive NewState = iota
	ChooseDead
	RandomState
)

func ParseNewState(s string) (NewState, error) {
	switch s {
	case "", "ChooseAlive":
		return ChooseAlive, nil
	case "ChooseDead":
		return ChooseDead, nil
	case "Random":
		return RandomState, nil
	default:
		return ChooseAlive, fmt.Errorf("lifesearch: unknown new-state policy %q", s)
	}
}

// Config is the full construction contract for a Search, §construction
// contract.
type Config struct {
	Width, Height, Period int
	DX, DY                int
	Transform             Transform
	Symmetry              Symmetry
	RuleString            string
	SearchOrder           SearchOrder
	NewState              NewState

	// MaxCellCount, when non-nil, bounds the live-cell count at
	// generation 0. A zero value is a valid bound (search for the empty
	// pattern or prove none smaller exists).
	MaxCellCount *int

	NonEmptyFront bool
	ReduceMax     bool

	// RandSeed seeds the PCG generator used by the Random choice policy.
	// Two Searches built from equal Config values (including RandSeed)
	// produce identical trails, per the determinism invariant.
	RandSeed uint64
}

// Validate checks the construction contract's failure conditions
// without building a World.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Period <= 0 {
		return fmt.Errorf("lifesearch: width, height and period must be positive, got %d x %d x %d", c.Width, c.Height, c.Period)
	}
	if c.Transform.Square() && c.Width != c.Height {
		return fmt.Errorf("lifesearch: transform %s requires a square world, got %d x %d", c.Transform, c.Width, c.Height)
	}
	if c.Symmetry.Square() && c.Width != c.Height {
		return fmt.Errorf("lifesearch: symmetry %s requires a square world, got %d x %d", c.Symmetry, c.Width, c.Height)
	}
	if c.MaxCellCount != nil && *c.MaxCellCount < 0 {
		return fmt.Errorf("lifesearch: max cell count must not be negative, got %d", *c.MaxCellCount)
	}
	return nil
}
