package lifesearch

import "math/rand/v2"

// Status is the search driver's state machine, §4.4.
type Status int

const (
	StatusInitial Status = iota
	StatusSearching
	StatusFound
	StatusExhausted
)

func (st Status) String() string {
	switch st {
	case StatusInitial:
		return "Initial"
	case StatusSearching:
		return "Searching"
	case StatusFound:
		return "Found"
	case StatusExhausted:
		return "Exhausted"
	default:
		return "Status(?)"
	}
}

// TrailEntry is one assignment recorded on the search trail: enough to
// revert it (descriptor deltas are self-inverse under XOR) and to
// explain it via --explain.
type TrailEntry struct {
	Cell   int32
	State  State
	Reason Reason
	Level  int
}

// Search drives the backtracking constraint search over a World. It
// owns the trail; World only owns the fixed cell graph. Grounded on
// §4.4's proceed/step/assume/backtrack pseudocode.
type Search struct {
	World *World

	Trail       []TrailEntry
	CheckIndex  int
	SearchIndex int
	Level       int

	ConflictCount int
	Status        Status

	Choice   NewState
	RandSeed uint64
	rng      *rand.Rand

	ReduceMax bool
}

// NewSearch builds the World for cfg and seeds the trail with every
// cell already known at construction time (border cells and cells
// pinned to Background by an out-of-range predecessor or symmetry
// partner), then propagates to a fixpoint.
func NewSearch(cfg Config) (*Search, error) {
	w, err := NewWorld(cfg)
	if err != nil {
		return nil, err
	}

	s := &Search{
		World:     w,
		Choice:    cfg.NewState,
		RandSeed:  cfg.RandSeed,
		ReduceMax: cfg.ReduceMax,
		rng:       rand.New(rand.NewPCG(cfg.RandSeed, cfg.RandSeed^0x9e3779b97f4a7c15)),
	}

	for idx := range w.Cells {
		c := &w.Cells[idx]
		if c.State == Unknown {
			continue
		}
		c.Level = 0
		c.Reason = Reason{Kind: ReasonInit}
		s.Trail = append(s.Trail, TrailEntry{Cell: int32(idx), State: c.State, Reason: Reason{Kind: ReasonInit}, Level: 0})
	}

	if s.proceed() {
		s.Status = StatusSearching
	} else {
		s.Status = StatusExhausted
	}
	return s, nil
}

// revertEntry reuses applyDescriptorDelta and updateCounters directly: XOR deltas are self-inverse, and the counter
// rules are symmetric under (old, new) = (known, Unknown).

func (s *Search) setCell(idx int32, state State, reason Reason) bool {
	c := &s.World.Cells[idx]
	if c.State == state {
		return true
	}
	if c.State.Known() {
		return false
	}
	old := c.State
	c.State = state
	c.Reason = reason
	c.Level = s.Level
	s.World.applyDescriptorDelta(idx, old, state)
	s.World.updateCounters(c, old, state)
	s.Trail = append(s.Trail, TrailEntry{Cell: idx, State: state, Reason: reason, Level: s.Level})

	if s.World.MaxCellCount != nil && c.Coord.T == 0 && s.World.Gen0CellCount > *s.World.MaxCellCount {
		return false
	}
	if s.World.NonEmptyFront && s.World.FrontCellCount == 0 {
		return false
	}

	for _, sym := range c.Sym {
		if !s.setCell(sym, state, Reason{Kind: ReasonSymmetry, Source: idx}) {
			return false
		}
	}
	return true
}

func (s *Search) consistify(c int32) bool {
	cell := &s.World.Cells[c]
	flags := s.World.Rule.Implications(cell.Desc)
	if flags.Conflict {
		return false
	}
	if flags.SuccForced && cell.Succ != noCell {
		if !s.setCell(cell.Succ, flags.SuccState, Reason{Kind: ReasonDeduce, Source: c}) {
			return false
		}
	}
	if flags.SelfForced {
		if !s.setCell(c, flags.SelfState, Reason{Kind: ReasonDeduce, Source: c}) {
			return false
		}
	}
	for i := 0; i < 8; i++ {
		if !flags.NbhdForced[i] {
			continue
		}
		nb := cell.Nbhd[i]
		if nb == noCell {
			continue
		}
		if !s.setCell(nb, flags.NbhdState[i], Reason{Kind: ReasonDeduce, Source: c}) {
			return false
		}
	}
	return true
}

// proceed walks the trail from CheckIndex to its (possibly growing)
// end, consistifying every entry's cell together with its predecessor
// and neighbors, whose descriptors the assignment also changed. FIFO
// order, not LIFO: check_index must process every forced assignment,
// including ones pushed by earlier entries in this same call.
func (s *Search) proceed() bool {
	for s.CheckIndex < len(s.Trail) {
		c := s.Trail[s.CheckIndex].Cell
		if !s.consistify(c) {
			return false
		}
		cell := &s.World.Cells[c]
		if cell.Pred != noCell && !s.consistify(cell.Pred) {
			return false
		}
		for _, nb := range cell.Nbhd {
			if nb != noCell && !s.consistify(nb) {
				return false
			}
		}
		s.CheckIndex++
	}
	return true
}

func (s *Search) revertEntry(e TrailEntry) {
	c := &s.World.Cells[e.Cell]
	s.World.applyDescriptorDelta(e.Cell, e.State, Unknown)
	s.World.updateCounters(c, e.State, Unknown)
	c.State = Unknown
	c.Reason = Reason{}
	c.Level = -1
}

// backtrack pops trail entries, reverting each, until it passes an
// Assume entry, then re-commits that cell to the opposite state as a
// Deduce. Popping the Assume entry and re-pushing the flip via setCell
// lands the new entry in the same trail slot the Assume held, since
// everything after it was already popped — equivalent to §4.4's
// "flip in place", expressed with the same revert/commit primitives
// used everywhere else. The flipped entry is the next one proceed
// checks. Returns false, leaving the remaining trail in place, when it
// holds no more Assume entries to flip (search Exhausted); Level counts
// the Assume entries on the trail.
func (s *Search) backtrack() bool {
	for len(s.Trail) > 0 && s.Level > 0 {
		last := s.Trail[len(s.Trail)-1]
		s.Trail = s.Trail[:len(s.Trail)-1]
		s.revertEntry(last)
		if last.Reason.Kind != ReasonAssume {
			continue
		}
		s.ConflictCount++
		s.Level--
		flipped := last.State.Opposite()
		before := len(s.Trail)
		ok := s.setCell(last.Cell, flipped, Reason{Kind: ReasonDeduce, Source: last.Cell})
		s.CheckIndex = before
		s.SearchIndex = last.Reason.AssumeIndex
		if !ok {
			continue
		}
		return true
	}
	return false
}

// nextUnknown scans the search list from SearchIndex (inclusive) for
// the next cell still Unknown.
func (s *Search) nextUnknown() (idx int32, pos int, ok bool) {
	for i := s.SearchIndex; i < len(s.World.SearchList); i++ {
		c := s.World.SearchList[i]
		if s.World.Cells[c].State == Unknown {
			return c, i, true
		}
	}
	return noCell, 0, false
}

func (s *Search) choose() State {
	switch s.Choice {
	case ChooseDead:
		return Dead
	case RandomState:
		if s.rng.Uint64()&1 == 0 {
			return Alive
		}
		return Dead
	default:
		return Alive
	}
}

func (s *Search) assume(idx int32, state State, pos int) bool {
	s.Level++
	return s.setCell(idx, state, Reason{Kind: ReasonAssume, AssumeIndex: pos})
}

// nontrivial requires at least one living cell at generation 0, and
// that the pattern not already repeat with a period strictly dividing
// Period (which would mean it was already found, trivially, at the
// smaller period).
func (s *Search) nontrivial() bool {
	if s.World.Gen0CellCount == 0 {
		return false
	}
	period := s.World.Period
	for d := 1; d < period; d++ {
		if period%d != 0 {
			continue
		}
		if s.repeatsAt(d) {
			return false
		}
	}
	return true
}

func (s *Search) repeatsAt(d int) bool {
	w := s.World
	for x := 0; x < w.Width; x++ {
		for y := 0; y < w.Height; y++ {
			if w.Cells[w.index(x, y, 0)].State != w.Cells[w.index(x, y, d)].State {
				return false
			}
		}
	}
	return true
}

// Step runs the search driver until it reaches Found or Exhausted and
// returns that status; it never returns Searching and takes no step
// budget. Hosts call it (or Resume) once per boundary and check Status
// between calls (§5's suspension-only-between-steps model: Step is the
// suspension point).
func (s *Search) Step() Status {
	if s.Status == StatusExhausted {
		return s.Status
	}
	for {
		if !s.proceed() {
			if !s.backtrack() {
				s.Status = StatusExhausted
				return s.Status
			}
			continue
		}

		idx, pos, ok := s.nextUnknown()
		if !ok {
			if s.nontrivial() {
				s.Status = StatusFound
				if s.ReduceMax {
					newMax := s.World.Gen0CellCount - 1
					s.World.MaxCellCount = &newMax
				}
				return s.Status
			}
			if !s.backtrack() {
				s.Status = StatusExhausted
				return s.Status
			}
			continue
		}

		state := s.choose()
		s.SearchIndex = pos
		if !s.assume(idx, state, pos) {
			if !s.backtrack() {
				s.Status = StatusExhausted
				return s.Status
			}
		}
	}
}

// Resume restarts a search that returned Found, to find the next
// solution (or a strictly smaller one, if ReduceMax is set — the max
// cell count was already tightened when the previous Found was
// reported).
func (s *Search) Resume() Status {
	if s.Status != StatusFound {
		return s.Status
	}
	if !s.backtrack() {
		s.Status = StatusExhausted
		return s.Status
	}
	s.Status = StatusSearching
	return s.Step()
}
