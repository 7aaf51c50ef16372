package lifesearch

import "strings"

// Display renders generation gen as Plaintext-style rows terminated by
// '$', with a trailing '!' pattern terminator, per §6's output surface.
func (w *World) Display(gen int) string {
	var sb strings.Builder
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			sb.WriteString(w.Cells[w.index(x, y, gen)].State.String())
		}
		sb.WriteByte('$')
	}
	sb.WriteByte('!')
	return sb.String()
}

// Stats is the search progress summary from §6's output surface.
type Stats struct {
	Conflicts int
	Depth     int
}

// Stats reports the current conflict count and decision depth.
func (s *Search) Stats() Stats {
	return Stats{Conflicts: s.ConflictCount, Depth: s.Level}
}

// Explain renders cell (x, y) at generation gen's current state and the
// Reason recorded for it. It reports that one reason only; it does not
// follow Source back through earlier assignments. Grounded on
// state.go's Reason.String, surfaced behind --explain.
func (s *Search) Explain(x, y, gen int) string {
	idx := s.World.index(x, y, gen)
	if idx == noCell {
		return "out of range"
	}
	c := s.World.Cells[idx]
	if c.State == Unknown {
		return "Unknown"
	}
	return c.State.String() + " " + c.Reason.String()
}
