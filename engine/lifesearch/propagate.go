package lifesearch

// succDelta is the XOR delta neighborDelta's sibling applies to a
// predecessor's successor slot (shift 2, unlike the self slot at shift
// 0 that selfSuccDelta already computes unshifted).
func succDelta(old, new State) Descriptor {
	return selfSuccDelta(old, new) << succShift
}

// applyDescriptorDelta updates idx's own self slot, its predecessor's
// succ slot, and every live neighbor's reciprocal slot, to reflect idx's
// state changing from old to new. It does not touch idx.State itself or
// any counters — callers do that before or after, depending on
// direction (assignment vs. the one-time background retraction done at
// world construction).
func (w *World) applyDescriptorDelta(idx int32, old, new State) {
	c := &w.Cells[idx]
	c.Desc ^= selfSuccDelta(old, new)
	if c.Pred != noCell {
		w.Cells[c.Pred].Desc ^= succDelta(old, new)
	}
	for i := 0; i < 8; i++ {
		nb := c.Nbhd[i]
		if nb == noCell {
			continue
		}
		reciprocal := 7 - i
		w.Cells[nb].Desc ^= neighborDelta(reciprocal, old, new)
	}
}

func (w *World) updateCounters(c *cell, old, new State) {
	if c.Coord.T == 0 {
		switch {
		case new == Alive:
			w.Gen0CellCount++
		case old == Alive:
			w.Gen0CellCount--
		}
	}
	if c.IsFront {
		switch {
		case new == Dead:
			w.FrontCellCount--
		case old == Dead:
			w.FrontCellCount++
		}
	}
}
