package lifesearch

// Rule is a cellular automaton rule: a pair of birth/survival neighbor
// sets, exposed through the pure operations the search consumes.
// Implementations precompute their implication table once, at
// construction time, so Implications is a single indexed read. The
// descriptor update arithmetic itself (XOR deltas) is rule-independent
// and lives in descriptor.go.
type Rule interface {
	// B0 reports whether the rule contains the birth-on-zero-neighbors
	// transition, which forces the background state to alternate by
	// generation parity instead of staying Dead.
	B0() bool

	// NewDescriptor produces the descriptor of a freshly created cell
	// whose eight neighbors are all in the background state, which at
	// world-construction time is uniform across a generation and equal
	// to self (Dead, or alternating with parity for B0 rules).
	NewDescriptor(self, succ State) Descriptor

	// Implications looks up the precomputed table for descriptor d.
	Implications(d Descriptor) Flags

	// Totalistic reports whether this rule ignores neighbor identity
	// (outer-totalistic Life-like) as opposed to tracking each of the
	// eight neighbor positions individually (isotropic non-totalistic).
	Totalistic() bool

	// String renders the rule in its canonical B.../S... (or isotropic)
	// form.
	String() string
}

// neighborMasksWithCount gives, for a given alive-neighbor count 0..8, the
// set of 8-bit Moore-neighborhood bitmasks with that many bits set.
// Neither rule's implication-table construction calls it.
func neighborMasksWithCount(count int) []uint8 {
	var masks []uint8
	for m := 0; m <= 0xff; m++ {
		if popcount8(uint8(m)) == count {
			masks = append(masks, uint8(m))
		}
	}
	return masks
}

// contains8 reports whether set contains v.
func contains8(set []uint8, v uint8) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
