package lifesearch

import "fmt"

// ntLifeRule implements isotropic non-totalistic Life-like rules: B and S
// are subsets of the 256 possible 8-bit Moore-neighborhood bitmasks
// rather than of {0..8}. Grounded on
// original_source/lib/src/rules/ntlife/mod.rs, translated from its
// bitflags-based ImplFlags to the shared Flags/raw-uint32 split used
// throughout this package.
type ntLifeRule struct {
	b, s     []uint8 // sorted, deduped 8-bit neighbor masks
	hasB0    bool
	implFlat []uint32 // raw flags indexed by Descriptor, size 1<<20
}

// raw implication flag bits, mirroring original_source's ImplFlags.
const (
	flagConflict  uint32 = 1 << 0
	flagSuccAlive uint32 = 1 << 1
	flagSuccDead  uint32 = 1 << 2
	flagSelfAlive uint32 = 1 << 3
	flagSelfDead  uint32 = 1 << 4
	// Non-totalistic: two bits per neighbor starting at bit 5.
	flagNbhdBase = 5
)

func flagNbhdAlive(i int) uint32 { return 1 << uint(flagNbhdBase+2*i) }
func flagNbhdDead(i int) uint32  { return 1 << uint(flagNbhdBase+2*i+1) }

// newNtLifeRule builds the implication table for the given B/S neighbor
// masks. b containing the empty mask (0x00) means the rule has B0.
func newNtLifeRule(b, s []uint8) *ntLifeRule {
	r := &ntLifeRule{b: b, s: s, hasB0: contains8(b, 0x00)}
	r.implFlat = make([]uint32, 1<<20)
	r.initTrans()
	r.initConflict()
	r.initSelf()
	r.initNeighbors()
	return r
}

func (r *ntLifeRule) descIndex(deadMask, aliveMask uint8, succ, self State) int {
	return int(Descriptor(deadMask)<<deadShift | Descriptor(aliveMask)<<aliveShift |
		Descriptor(succ)<<succShift | Descriptor(self)<<selfShift)
}

// initTrans fills in SUCC_ALIVE/SUCC_DEAD for every descriptor, including
// those with unknown neighbors, by checking whether the outcome is
// already decided no matter how the unknown neighbors resolve.
func (r *ntLifeRule) initTrans() {
	for alive := 0; alive <= 0xff; alive++ {
		dead := 0xff &^ alive
		idx := r.descIndex(uint8(dead), uint8(alive), Unknown, Unknown)
		r.setTransAllKnown(uint8(alive))
		_ = idx
	}
	// Now handle descriptors with at least one unknown neighbor: the
	// transition is forced iff it is forced for both resolutions of some
	// unknown bit, for every self/succ combination. Brute force over all
	// (deadMask, aliveMask) pairs is 3^8 = 6561 combinations, cheap at
	// table-construction time and far simpler to get right than the
	// doubling trick in the original source.
	for dead := 0; dead <= 0xff; dead++ {
		for alive := 0; alive <= 0xff; alive++ {
			if dead&alive != 0 {
				continue // a neighbor can't be both known-dead and known-alive
			}
			unknown := 0xff &^ dead &^ alive
			if unknown == 0 {
				continue // fully known, already handled by setTransAllKnown
			}
			r.deriveTransWithUnknowns(uint8(dead), uint8(alive), uint8(unknown))
		}
	}
}

// setTransAllKnown fills SUCC_ALIVE/SUCC_DEAD for the three self states
// when all eight neighbors are known, using the B/S sets directly.
func (r *ntLifeRule) setTransAllKnown(aliveMask uint8) {
	dead := uint8(0xff) &^ aliveMask
	born := contains8(r.b, aliveMask)
	survives := contains8(r.s, aliveMask)

	set := func(self State, alive bool) {
		idx := r.descIndex(dead, aliveMask, Unknown, self)
		if alive {
			r.implFlat[idx] |= flagSuccAlive
		} else {
			r.implFlat[idx] |= flagSuccDead
		}
	}
	set(Dead, born)
	set(Alive, survives)
	// Unknown self: forced only if birth and survival agree.
	idx := r.descIndex(dead, aliveMask, Unknown, Unknown)
	if born == survives {
		if born {
			r.implFlat[idx] |= flagSuccAlive
		} else {
			r.implFlat[idx] |= flagSuccDead
		}
	}
}

// deriveTransWithUnknowns decides, for a descriptor with some unknown
// neighbors, whether the successor's state is forced regardless of how
// the unknown neighbors resolve, by checking every resolution (bounded by
// the number of unknown bits, at most 2^8).
func (r *ntLifeRule) deriveTransWithUnknowns(dead, alive, unknown uint8) {
	bits := bitPositions(unknown)
	var aliveForced, deadForced [3]bool // index by self: 0=Unknown,1=Alive(won't use),... use map instead
	_ = aliveForced
	_ = deadForced

	for _, self := range []State{Unknown, Alive, Dead} {
		possiblyAlive, possiblyDead := false, false
		for mask := 0; mask < (1 << len(bits)); mask++ {
			full := alive
			for i, b := range bits {
				if mask&(1<<uint(i)) != 0 {
					full |= b
				}
			}
			born := contains8(r.b, full)
			survives := contains8(r.s, full)
			var result State
			switch self {
			case Dead:
				result = boolState(born)
			case Alive:
				result = boolState(survives)
			default:
				if born == survives {
					result = boolState(born)
				} else {
					result = Unknown
				}
			}
			switch result {
			case Alive:
				possiblyAlive = true
			case Dead:
				possiblyDead = true
			default:
				possiblyAlive = true
				possiblyDead = true
			}
		}
		idx := r.descIndex(dead, alive, Unknown, self)
		if possiblyAlive && !possiblyDead {
			r.implFlat[idx] |= flagSuccAlive
		} else if possiblyDead && !possiblyAlive {
			r.implFlat[idx] |= flagSuccDead
		}
	}
}

func boolState(alive bool) State {
	if alive {
		return Alive
	}
	return Dead
}

func bitPositions(mask uint8) []uint8 {
	var bits []uint8
	for i := 0; i < 8; i++ {
		if mask&(1<<uint(i)) != 0 {
			bits = append(bits, 1<<uint(i))
		}
	}
	return bits
}

// initConflict marks CONFLICT where the successor slot disagrees with
// the already-derived SUCC_* implication.
func (r *ntLifeRule) initConflict() {
	for dead := 0; dead <= 0xff; dead++ {
		for alive := 0; alive <= 0xff; alive++ {
			if dead&alive != 0 {
				continue
			}
			for _, self := range []State{Unknown, Alive, Dead} {
				idx := r.descIndex(uint8(dead), uint8(alive), Unknown, self)
				flags := r.implFlat[idx]
				if flags&flagSuccAlive != 0 {
					r.implFlat[r.descIndex(uint8(dead), uint8(alive), Dead, self)] = flagConflict
				} else if flags&flagSuccDead != 0 {
					r.implFlat[r.descIndex(uint8(dead), uint8(alive), Alive, self)] = flagConflict
				}
			}
		}
	}
}

// initSelf back-implies the cell's own state from a known successor
// constraint: if the successor can only be reached from one self value
// (given the known neighbors), self is forced.
func (r *ntLifeRule) initSelf() {
	for dead := 0; dead <= 0xff; dead++ {
		for alive := 0; alive <= 0xff; alive++ {
			if dead&alive != 0 {
				continue
			}
			for _, succ := range []State{Alive, Dead} {
				deadOK := !r.conflictsWith(uint8(dead), uint8(alive), succ, Dead)
				aliveOK := !r.conflictsWith(uint8(dead), uint8(alive), succ, Alive)
				idx := r.descIndex(uint8(dead), uint8(alive), succ, Unknown)
				switch {
				case deadOK && !aliveOK:
					r.implFlat[idx] |= flagSelfDead
				case aliveOK && !deadOK:
					r.implFlat[idx] |= flagSelfAlive
				case !deadOK && !aliveOK:
					r.implFlat[idx] = flagConflict
				}
			}
		}
	}
}

func (r *ntLifeRule) conflictsWith(dead, alive uint8, succ, self State) bool {
	idx := r.descIndex(dead, alive, succ, self)
	return r.implFlat[idx]&(flagConflict) != 0
}

// initNeighbors back-implies a single unknown neighbor's state the same
// way initSelf back-implies self, for every unknown neighbor bit.
func (r *ntLifeRule) initNeighbors() {
	for dead := 0; dead <= 0xff; dead++ {
		for alive := 0; alive <= 0xff; alive++ {
			if dead&alive != 0 {
				continue
			}
			unknown := uint8(0xff) &^ uint8(dead) &^ uint8(alive)
			if unknown == 0 {
				continue
			}
			for i := 0; i < 8; i++ {
				bit := uint8(1) << uint(i)
				if unknown&bit == 0 {
					continue
				}
				for _, succ := range []State{Alive, Dead} {
					for _, self := range []State{Unknown, Alive, Dead} {
						deadOK := !r.conflictsWith(uint8(dead)|bit, uint8(alive), succ, self)
						aliveOK := !r.conflictsWith(uint8(dead), uint8(alive)|bit, succ, self)
						idx := r.descIndex(uint8(dead), uint8(alive), succ, self)
						switch {
						case deadOK && !aliveOK:
							r.implFlat[idx] |= flagNbhdDead(i)
						case aliveOK && !deadOK:
							r.implFlat[idx] |= flagNbhdAlive(i)
						case !deadOK && !aliveOK:
							r.implFlat[idx] = flagConflict
						}
					}
				}
			}
		}
	}
}

func (r *ntLifeRule) B0() bool { return r.hasB0 }

func (r *ntLifeRule) Totalistic() bool { return false }

func (r *ntLifeRule) NewDescriptor(self, succ State) Descriptor {
	return newDescriptor(self, succ, self)
}

func (r *ntLifeRule) Implications(d Descriptor) Flags {
	raw := r.implFlat[d]
	var f Flags
	if raw&flagConflict != 0 {
		f.Conflict = true
		return f
	}
	if raw&flagSuccAlive != 0 {
		f.SuccForced, f.SuccState = true, Alive
	} else if raw&flagSuccDead != 0 {
		f.SuccForced, f.SuccState = true, Dead
	}
	if raw&flagSelfAlive != 0 {
		f.SelfForced, f.SelfState = true, Alive
	} else if raw&flagSelfDead != 0 {
		f.SelfForced, f.SelfState = true, Dead
	}
	for i := 0; i < 8; i++ {
		if raw&flagNbhdAlive(i) != 0 {
			f.NbhdForced[i], f.NbhdState[i] = true, Alive
		} else if raw&flagNbhdDead(i) != 0 {
			f.NbhdForced[i], f.NbhdState[i] = true, Dead
		}
	}
	return f
}

func (r *ntLifeRule) String() string {
	return fmt.Sprintf("B%s/S%s (non-totalistic)", maskListString(r.b), maskListString(r.s))
}

func maskListString(masks []uint8) string {
	s := ""
	for _, m := range masks {
		s += fmt.Sprintf("%02x,", m)
	}
	return s
}
