package lifesearch

// Descriptor is a bit-packed summary of a cell's own state, its
// successor's state, and the states of its eight neighbors.
//
// Layout (20 bits), grounded on original_source's NbhdDesc
// (0b_abcdefgh_ijklmnop_qr_st):
//
//	bits 19..12  deadMask  — bit i set iff neighbor i is known Dead
//	bits 11..4   aliveMask — bit i set iff neighbor i is known Alive
//	bits 3..2    succ      — 2-bit State of the successor
//	bits 1..0    self      — 2-bit State of the cell itself
//
// A neighbor with both bits clear is Unknown; exactly one of the two
// bits is ever set for a given neighbor at a given time. Splitting
// "known-alive" and "known-dead" into separate one-hot planes, rather
// than packing each neighbor into one 2-bit field, keeps every update a
// plain XOR: a transition flips exactly the bits that changed, with no
// shift computed at update time beyond the neighbor's fixed bit index
// (see neighborDelta and World.applyDescriptorDelta).
//
// Totalistic (outer-totalistic Life-like) rules use the same 20-bit
// layout so propagate.go can treat both rule families identically; they
// only care about popcount(aliveMask) and popcount(deadMask), and key
// their implication table by those counts instead of the literal masks,
// which is what keeps their table small (§4.1, "Rule table size").
type Descriptor uint32

const (
	selfShift  = 0
	succShift  = 2
	aliveShift = 4
	deadShift  = 12
	stateBits  = 0b11
)

func unpackSelf(d Descriptor) State {
	return State((d >> selfShift) & stateBits)
}

func unpackSucc(d Descriptor) State {
	return State((d >> succShift) & stateBits)
}

func unpackAliveMask(d Descriptor) uint8 {
	return uint8((d >> aliveShift) & 0xff)
}

func unpackDeadMask(d Descriptor) uint8 {
	return uint8((d >> deadShift) & 0xff)
}

func neighborState(d Descriptor, i int) State {
	bit := uint8(1) << uint(i)
	switch {
	case unpackAliveMask(d)&bit != 0:
		return Alive
	case unpackDeadMask(d)&bit != 0:
		return Dead
	default:
		return Unknown
	}
}

// selfSuccDelta is the XOR delta for a plain 2-bit State slot (self or
// successor): Unknown<->Known XORs the known pattern in, Alive<->Dead
// XORs 0b11.
func selfSuccDelta(oldState, newState State) Descriptor {
	return Descriptor(oldState) ^ Descriptor(newState)
}

// neighborDelta is the XOR delta a single neighbor's transition
// contributes to a descriptor's alive/dead planes, for neighbor index i.
func neighborDelta(i int, oldState, newState State) Descriptor {
	aliveBit := func(s State) Descriptor {
		if s == Alive {
			return 1
		}
		return 0
	}
	deadBit := func(s State) Descriptor {
		if s == Dead {
			return 1
		}
		return 0
	}
	d := (aliveBit(oldState) ^ aliveBit(newState)) << (aliveShift + uint(i))
	d |= (deadBit(oldState) ^ deadBit(newState)) << (deadShift + uint(i))
	return d
}

func newDescriptor(self, succ, nbhd State) Descriptor {
	var d Descriptor
	d = packSelfSucc(d, self, succ)
	if nbhd == Alive {
		d |= 0xff << aliveShift
	} else if nbhd == Dead {
		d |= 0xff << deadShift
	}
	return d
}

func packSelfSucc(d Descriptor, self, succ State) Descriptor {
	d &^= Descriptor(stateBits) << selfShift
	d &^= Descriptor(stateBits) << succShift
	d |= Descriptor(self) << selfShift
	d |= Descriptor(succ) << succShift
	return d
}

func popcount8(b uint8) int {
	n := 0
	for b != 0 {
		n += int(b & 1)
		b >>= 1
	}
	return n
}

// Flags is the normalized result of a rule-table lookup: what the cell
// itself, its successor, and its unknown neighbors are forced to become.
type Flags struct {
	Conflict bool

	SelfForced bool
	SelfState  State

	SuccForced bool
	SuccState  State

	// For non-totalistic rules, NbhdForced[i]/NbhdState[i] name neighbor i
	// individually. For totalistic rules NbhdUniform is true and every
	// currently-unknown neighbor i of the cell has NbhdForced[i] set with
	// the same NbhdState[i], since a totalistic rule can't tell neighbors
	// apart.
	NbhdForced  [8]bool
	NbhdState   [8]State
	NbhdUniform bool
}

// AnyNbhdForced reports whether any neighbor implication is present.
func (f Flags) AnyNbhdForced() bool {
	for _, v := range f.NbhdForced {
		if v {
			return true
		}
	}
	return false
}
