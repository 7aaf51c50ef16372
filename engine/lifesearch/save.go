package lifesearch

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// configSer is Config's on-disk shape: the enum fields round-trip
// through their string spellings instead of their raw ints, so a saved
// file stays readable and stable across any future reordering of the
// iota blocks. Grounded on original_source/lib/src/save.rs's WorldSer,
// which embeds its Config directly; yaml.v3 is this module's only
// serialization dependency, so this is its home (§11).
type configSer struct {
	Width                 int    `yaml:"width"`
	Height                int    `yaml:"height"`
	Period                int    `yaml:"period"`
	DX                    int    `yaml:"dx"`
	DY                    int    `yaml:"dy"`
	Transform             string `yaml:"transform"`
	Symmetry              string `yaml:"symmetry"`
	RuleString            string `yaml:"rule"`
	SearchOrder           string `yaml:"search_order"`
	NewState              string `yaml:"new_state"`
	MaxCellCount          *int   `yaml:"max_cell_count,omitempty"`
	NonEmptyFront         bool   `yaml:"non_empty_front"`
	ReduceMax             bool   `yaml:"reduce_max"`
	RandSeed              uint64 `yaml:"rand_seed"`
}

func (c Config) ser() configSer {
	return configSer{
		Width: c.Width, Height: c.Height, Period: c.Period,
		DX: c.DX, DY: c.DY,
		Transform: c.Transform.String(), Symmetry: c.Symmetry.String(),
		RuleString: c.RuleString, SearchOrder: searchOrderString(c.SearchOrder),
		NewState: newStateString(c.NewState), MaxCellCount: c.MaxCellCount,
		NonEmptyFront: c.NonEmptyFront, ReduceMax: c.ReduceMax, RandSeed: c.RandSeed,
	}
}

func searchOrderString(o SearchOrder) string {
	switch o {
	case RowFirst:
		return "RowFirst"
	case ColumnFirst:
		return "ColumnFirst"
	default:
		return "Automatic"
	}
}

func newStateString(n NewState) string {
	switch n {
	case ChooseDead:
		return "ChooseDead"
	case RandomState:
		return "Random"
	default:
		return "ChooseAlive"
	}
}

func (cs configSer) config() (Config, error) {
	tr, err := ParseTransform(cs.Transform)
	if err != nil {
		return Config{}, err
	}
	sym, err := ParseSymmetry(cs.Symmetry)
	if err != nil {
		return Config{}, err
	}
	order, err := ParseSearchOrder(cs.SearchOrder)
	if err != nil {
		return Config{}, err
	}
	newState, err := ParseNewState(cs.NewState)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Width: cs.Width, Height: cs.Height, Period: cs.Period,
		DX: cs.DX, DY: cs.DY,
		Transform: tr, Symmetry: sym, RuleString: cs.RuleString,
		SearchOrder: order, NewState: newState, MaxCellCount: cs.MaxCellCount,
		NonEmptyFront: cs.NonEmptyFront, ReduceMax: cs.ReduceMax, RandSeed: cs.RandSeed,
	}, nil
}

// setCellSer is one entry of the replay stack.
type setCellSer struct {
	Coord  Coord  `yaml:"coord"`
	State  State  `yaml:"state"`
	Reason Reason `yaml:"reason"`
}

// SavedSearch is the persisted form of a Search: its Config, trail, and
// cursors, enough to resume exactly where it left off without
// recomputing any propagation — replay just re-applies each recorded
// assignment in order.
type SavedSearch struct {
	Config        configSer    `yaml:"config"`
	Conflicts     int          `yaml:"conflicts"`
	SetStack      []setCellSer `yaml:"set_stack"`
	CheckIndex    int          `yaml:"check_index"`
	SearchIndex   int          `yaml:"search_index"`
}

// Save captures s as a SavedSearch.
func (s *Search) Save() SavedSearch {
	stack := make([]setCellSer, 0, len(s.Trail))
	for _, e := range s.Trail {
		stack = append(stack, setCellSer{
			Coord:  s.World.Cells[e.Cell].Coord,
			State:  e.State,
			Reason: e.Reason,
		})
	}
	return SavedSearch{
		Config:      s.config().ser(),
		Conflicts:   s.ConflictCount,
		SetStack:    stack,
		CheckIndex:  s.CheckIndex,
		SearchIndex: s.SearchIndex,
	}
}

// config reconstructs the Config that built s.World from its pieces;
// World doesn't keep cfg directly, so this reads its public fields.
func (s *Search) config() Config {
	w := s.World
	return Config{
		Width: w.Width, Height: w.Height, Period: w.Period,
		DX: w.DX, DY: w.DY, Transform: w.Transform, Symmetry: w.Symmetry,
		RuleString: w.Rule.String(), SearchOrder: explicitSearchOrder(w.ColumnFirst),
		NewState: s.Choice, MaxCellCount: w.MaxCellCount, NonEmptyFront: w.NonEmptyFront,
		ReduceMax: s.ReduceMax, RandSeed: s.RandSeed,
	}
}

func explicitSearchOrder(columnFirst bool) SearchOrder {
	if columnFirst {
		return ColumnFirst
	}
	return RowFirst
}

// MarshalYAML renders a SavedSearch to YAML text.
func (sv SavedSearch) MarshalYAML() (any, error) {
	type plain SavedSearch
	return plain(sv), nil
}

// SaveYAML serializes s directly to YAML bytes.
func (s *Search) SaveYAML() ([]byte, error) {
	return yaml.Marshal(s.Save())
}

// LoadSearch rebuilds a Search from YAML bytes previously produced by
// SaveYAML, by reconstructing the World from the embedded Config and
// replaying every recorded assignment in order — no propagation is
// recomputed, only reapplied.
func LoadSearch(data []byte) (*Search, error) {
	var saved SavedSearch
	if err := yaml.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("lifesearch: parsing saved search: %w", err)
	}
	cfg, err := saved.Config.config()
	if err != nil {
		return nil, err
	}

	s, err := NewSearch(cfg)
	if err != nil {
		return nil, err
	}

	for _, entry := range saved.SetStack {
		idx := s.World.index(entry.Coord.X, entry.Coord.Y, entry.Coord.T)
		if idx == noCell {
			return nil, &SetCellError{Coord: entry.Coord}
		}
		existing := s.World.Cells[idx].State
		if existing.Known() {
			if existing != entry.State {
				return nil, &SetCellError{Coord: entry.Coord}
			}
			continue
		}
		if entry.Reason.Kind == ReasonAssume {
			s.Level++
		}
		if !s.setCell(idx, entry.State, entry.Reason) {
			return nil, &SetCellError{Coord: entry.Coord}
		}
	}

	s.ConflictCount = saved.Conflicts
	s.CheckIndex = saved.CheckIndex
	s.SearchIndex = saved.SearchIndex
	s.Status = StatusSearching
	return s, nil
}

// SetCellError reports that a saved assignment could not be replayed:
// the coordinate fell outside the rebuilt world, or it already held a
// different state than the save file recorded. Grounded on
// original_source/lib/src/save.rs's SetCellErr.
type SetCellError struct {
	Coord Coord
}

func (e *SetCellError) Error() string {
	return fmt.Sprintf("lifesearch: unable to set cell at %+v", e.Coord)
}
