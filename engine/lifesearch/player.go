package lifesearch

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/telepair/lifesearch/pkg/ui"
)

var _ ui.StepEngine = (*Player)(nil)

// PlayerBoundary is how cells outside the pattern's bounding box behave
// during playback. Grounded on Telepair-go-playground's
// gameoflife.BoundaryType, generalized from Conway's fixed B3/S23
// neighbor count to an arbitrary Rule's descriptor lookup.
type PlayerBoundary int

const (
	// BoundaryFixed treats everything outside the box as the rule's
	// background state (Dead, or alternating by generation parity for a
	// B0 rule) — the same assumption World uses outside its one-cell
	// border.
	BoundaryFixed PlayerBoundary = iota
	// BoundaryPeriodic wraps each axis toroidally instead.
	BoundaryPeriodic
)

func (b PlayerBoundary) String(lang ui.Language) string {
	switch b {
	case BoundaryPeriodic:
		if lang == ui.Chinese {
			return "周期"
		}
		return "Periodic"
	default:
		if lang == ui.Chinese {
			return "固定"
		}
		return "Fixed"
	}
}

// PlayerConfig holds the rendering knobs for a Player, mirroring
// gameoflife.Config.
type PlayerConfig struct {
	AliveColor string
	DeadColor  string
	AliveChar  string
	DeadChar   string
}

// DefaultPlayerConfig matches gameoflife's defaults.
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		AliveColor: "#00FF00",
		DeadColor:  "#000000",
		AliveChar:  "█",
		DeadChar:   " ",
	}
}

// Player animates a solved or loaded pattern forward, one generation at
// a time, using the pattern's own Rule — it does not know Period, DX,
// DY or Transform at all, since a correct oscillator or spaceship
// reproduces its own periodic motion purely from Rule stepping once
// it's seeded with a real solution. Grounded on
// Telepair-go-playground/engine/gameoflife.ConwayGameOfLife, generalized
// from hard-coded B3/S23 neighbor counting to rule.Implications lookups
// over an exact (not uniform-background) neighborhood descriptor.
type Player struct {
	rule     Rule
	boundary PlayerBoundary
	width    int
	height   int

	initial    [][]State
	current    [][]State
	next       [][]State
	generation int
	paused     bool

	screen *ui.Screen
	buf    []rune
	config PlayerConfig
}

// NewPlayer adapts pattern (row-major, width x height, fully Alive/Dead)
// for playback under rule.
func NewPlayer(pattern [][]State, rule Rule, config PlayerConfig) *Player {
	height := len(pattern)
	width := 0
	if height > 0 {
		width = len(pattern[0])
	}
	slog.Debug("NewPlayer", "width", width, "height", height, "rule", rule)

	p := &Player{
		rule:     rule,
		boundary: BoundaryFixed,
		width:    width,
		height:   height,
		initial:  cloneGrid(pattern),
		config:   config,
	}
	p.initialize()
	return p
}

// PlayerFromSearch seeds a Player from s's generation-0 cells, for
// previewing a search result that reached StatusFound without first
// round-tripping it through Display/parse.
func PlayerFromSearch(s *Search, config PlayerConfig) *Player {
	w := s.World
	pattern := make([][]State, w.Height)
	for y := 0; y < w.Height; y++ {
		row := make([]State, w.Width)
		for x := 0; x < w.Width; x++ {
			row[x] = w.Cells[w.index(x, y, 0)].State
		}
		pattern[y] = row
	}
	return NewPlayer(pattern, w.Rule, config)
}

func cloneGrid(src [][]State) [][]State {
	dst := make([][]State, len(src))
	for i, row := range src {
		dst[i] = append([]State(nil), row...)
	}
	return dst
}

// View returns the rendered screen.
func (p *Player) View() string {
	return p.screen.View()
}

// Step advances playback by one generation unless paused.
func (p *Player) Step() (int, bool) {
	if p.paused {
		return p.generation, true
	}
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			self := p.current[y][x]
			nbhd := p.neighborStates(x, y)
			p.next[y][x] = p.nextState(self, nbhd)
		}
	}
	p.current, p.next = p.next, p.current
	p.generation++
	p.render()
	return p.generation, true
}

// nextState consults rule's own implication table on a descriptor built
// from the exact (not uniform) neighborhood, rather than reimplementing
// B3/S23-style counting by hand — the same lookup the search engine
// uses, run once per cell instead of incrementally.
func (p *Player) nextState(self State, nbhd [8]State) State {
	d := packSelfSucc(0, self, Unknown)
	for i, s := range nbhd {
		switch s {
		case Alive:
			d |= 1 << (aliveShift + uint(i))
		case Dead:
			d |= 1 << (deadShift + uint(i))
		}
	}
	flags := p.rule.Implications(d)
	if flags.Conflict || !flags.SuccForced {
		return Dead
	}
	return flags.SuccState
}

func (p *Player) neighborStates(x, y int) [8]State {
	var nbhd [8]State
	for i, off := range neighborOffsets {
		nbhd[i] = p.cellAt(x+off[0], y+off[1])
	}
	return nbhd
}

func (p *Player) cellAt(x, y int) State {
	if x >= 0 && x < p.width && y >= 0 && y < p.height {
		return p.current[y][x]
	}
	switch p.boundary {
	case BoundaryPeriodic:
		return p.current[((y%p.height)+p.height)%p.height][((x%p.width)+p.width)%p.width]
	default:
		if p.rule.B0() && p.generation%2 == 1 {
			return Alive
		}
		return Dead
	}
}

// Header returns the header text for the UI.
func (p *Player) Header(lang ui.Language) string {
	if lang == ui.Chinese {
		return "🔬 模式回放 🔬"
	}
	return "🔬 Pattern Playback 🔬"
}

// Status reports generation, rule, boundary and run state.
func (p *Player) Status(lang ui.Language) []ui.Status {
	pausedStr := "▶️ Running"
	genLabel, ruleLabel, boundaryLabel, statusLabel := "Generation", "Rule", "Boundary", "Status"
	if lang == ui.Chinese {
		pausedStr = "▶️ 运行中"
		genLabel, ruleLabel, boundaryLabel, statusLabel = "代数", "规则", "边界", "状态"
		if p.paused {
			pausedStr = "⏸️ 已暂停"
		}
	} else if p.paused {
		pausedStr = "⏸️ Paused"
	}
	return []ui.Status{
		{Label: genLabel, Value: strconv.Itoa(p.generation)},
		{Label: ruleLabel, Value: p.rule.String()},
		{Label: boundaryLabel, Value: p.boundary.String(lang)},
		{Label: statusLabel, Value: pausedStr},
	}
}

// HandleKeys returns the available keyboard controls.
func (p *Player) HandleKeys(lang ui.Language) []ui.Control {
	if lang == ui.Chinese {
		return []ui.Control{
			{Keys: []string{"Space"}, Label: "暂停/继续"},
			{Keys: []string{"B"}, Label: "切换边界"},
			{Keys: []string{"R"}, Label: "重置"},
		}
	}
	return []ui.Control{
		{Keys: []string{"Space"}, Label: "Pause/Resume"},
		{Keys: []string{"B"}, Label: "Toggle boundary"},
		{Keys: []string{"R"}, Label: "Reset"},
	}
}

// Handle handles a key press.
func (p *Player) Handle(key string) (bool, error) {
	switch strings.ToLower(key) {
	case " ", "space":
		p.paused = !p.paused
		return true, nil
	case "b":
		if p.boundary == BoundaryFixed {
			p.boundary = BoundaryPeriodic
		} else {
			p.boundary = BoundaryFixed
		}
		return true, nil
	case "r":
		p.initialize()
		return true, nil
	}
	return false, nil
}

// Reset restarts playback from the initial pattern at generation 0. The
// screen keeps the pattern's own size; height and width do not change it.
func (p *Player) Reset(height, width int) error {
	p.screen.SetSize(width, height)
	p.initialize()
	return nil
}

// IsFinished reports whether playback has finished: never, patterns run
// indefinitely.
func (p *Player) IsFinished() bool {
	return false
}

// Stop is a no-op; Player holds no resources beyond its screen buffer.
func (p *Player) Stop() {}

func (p *Player) initialize() {
	if p.screen == nil {
		p.screen = ui.NewScreen(p.height, p.width)
	} else {
		p.screen.SetSize(p.width, p.height)
		p.screen.Reset()
	}

	aliveRune := []rune(p.config.AliveChar)[0]
	deadRune := []rune(p.config.DeadChar)[0]
	p.screen.SetCharColor(aliveRune, lipgloss.Color(p.config.AliveColor))
	p.screen.SetCharColor(deadRune, lipgloss.Color(p.config.DeadColor))

	p.current = cloneGrid(p.initial)
	p.next = make([][]State, p.height)
	for i := range p.next {
		p.next[i] = make([]State, p.width)
	}
	p.buf = make([]rune, p.width)
	p.generation = 0
	p.render()
}

func (p *Player) render() {
	aliveRune := []rune(p.config.AliveChar)[0]
	deadRune := []rune(p.config.DeadChar)[0]
	p.screen.Reset()
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			if p.current[y][x] == Alive {
				p.buf[x] = aliveRune
			} else {
				p.buf[x] = deadRune
			}
		}
		p.screen.Append(p.buf)
	}
}
