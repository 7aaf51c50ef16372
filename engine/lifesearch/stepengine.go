package lifesearch

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/telepair/lifesearch/pkg/ui"
)

var _ ui.StepEngine = (*SearchView)(nil)

// SearchView adapts a *Search to ui.StepEngine for live visualization:
// each Step drives the search to its next Found or Exhausted boundary,
// then renders generation gen (normally 0) of the board the search
// holds. Grounded on the same gameoflife.ConwayGameOfLife adapter
// player.go generalizes, but wrapping Search instead of a plain grid,
// since a Search's board is only ever fully known at a Found boundary —
// between boundaries the display legitimately shows '?' for cells still
// Unknown.
type SearchView struct {
	search *Search
	gen    int
	paused bool
	screen *ui.Screen
	buf    []rune
	config PlayerConfig
}

// NewSearchView wraps search for display, rendering generation gen of
// its board (normally 0).
func NewSearchView(search *Search, gen int, config PlayerConfig) *SearchView {
	e := &SearchView{search: search, gen: gen, config: config}
	e.initialize()
	return e
}

// View returns the rendered screen.
func (e *SearchView) View() string {
	return e.screen.View()
}

// Step drives the search forward to its next Found or Exhausted
// boundary, unless paused, then renders the resulting board.
func (e *SearchView) Step() (int, bool) {
	if e.paused {
		return e.search.ConflictCount, true
	}
	var status Status
	if e.search.Status == StatusFound {
		status = e.search.Resume()
	} else {
		status = e.search.Step()
	}
	e.render()
	return e.search.ConflictCount, status != StatusExhausted
}

// Header returns the header text for the UI.
func (e *SearchView) Header(lang ui.Language) string {
	if lang == ui.Chinese {
		return "🔎 图样搜索 🔎"
	}
	return "🔎 Pattern Search 🔎"
}

// Status reports the search's status, conflict count, decision depth
// and rule.
func (e *SearchView) Status(lang ui.Language) []ui.Status {
	stats := e.search.Stats()
	statusLabel, conflictsLabel, depthLabel, ruleLabel := "Status", "Conflicts", "Depth", "Rule"
	if lang == ui.Chinese {
		statusLabel, conflictsLabel, depthLabel, ruleLabel = "状态", "冲突数", "深度", "规则"
	}
	return []ui.Status{
		{Label: statusLabel, Value: e.search.Status.String()},
		{Label: conflictsLabel, Value: strconv.Itoa(stats.Conflicts)},
		{Label: depthLabel, Value: strconv.Itoa(stats.Depth)},
		{Label: ruleLabel, Value: e.search.World.Rule.String()},
	}
}

// HandleKeys returns the available keyboard controls.
func (e *SearchView) HandleKeys(lang ui.Language) []ui.Control {
	if lang == ui.Chinese {
		return []ui.Control{
			{Keys: []string{"Space"}, Label: "暂停/继续"},
			{Keys: []string{"N"}, Label: "下一个解"},
		}
	}
	return []ui.Control{
		{Keys: []string{"Space"}, Label: "Pause/Resume"},
		{Keys: []string{"N"}, Label: "Next solution"},
	}
}

// Handle handles a key press.
func (e *SearchView) Handle(key string) (bool, error) {
	switch strings.ToLower(key) {
	case " ", "space":
		e.paused = !e.paused
		return true, nil
	case "n":
		if e.search.Status == StatusFound {
			e.search.Resume()
			e.render()
		}
		return true, nil
	}
	return false, nil
}

// Reset resizes the display screen; the search itself cannot be resized
// mid-run, so this only reshapes the viewport.
func (e *SearchView) Reset(height, width int) error {
	e.screen.SetSize(width, height)
	e.render()
	return nil
}

// IsFinished reports whether the search has exhausted its search space.
func (e *SearchView) IsFinished() bool {
	return e.search.Status == StatusExhausted
}

// Stop is a no-op; Search holds no external resources.
func (e *SearchView) Stop() {}

func (e *SearchView) initialize() {
	w := e.search.World
	e.screen = ui.NewScreen(w.Height, w.Width)
	aliveRune := []rune(e.config.AliveChar)[0]
	deadRune := []rune(e.config.DeadChar)[0]
	unknownRune := '?'
	e.screen.SetCharColor(aliveRune, lipgloss.Color(e.config.AliveColor))
	e.screen.SetCharColor(deadRune, lipgloss.Color(e.config.DeadColor))
	e.screen.SetCharColor(unknownRune, lipgloss.Color("#808080"))
	e.buf = make([]rune, w.Width)
	e.render()
}

func (e *SearchView) render() {
	w := e.search.World
	aliveRune := []rune(e.config.AliveChar)[0]
	deadRune := []rune(e.config.DeadChar)[0]
	e.screen.Reset()
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			switch w.Cells[w.index(x, y, e.gen)].State {
			case Alive:
				e.buf[x] = aliveRune
			case Dead:
				e.buf[x] = deadRune
			default:
				e.buf[x] = '?'
			}
		}
		e.screen.Append(e.buf)
	}
}
