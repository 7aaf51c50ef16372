package lifesearch

import (
	"fmt"
	"sort"
	"strings"
)

// totalisticRule implements outer-totalistic (Life-like) rules: B and S
// are subsets of {0..8} alive-neighbor counts, so the implication table
// only needs to be keyed by (aliveCount, deadCount, succ, self) rather
// than by the full 8-bit neighbor mask. Grounded on the same
// inside-out implication derivation as rule_ntlife.go — same shared
// Descriptor/Flags representation, smaller backing table — per §4.1's
// "~16 KiB" rule-table-size note.
type totalisticRule struct {
	b, s  []int // sorted, deduped alive-neighbor counts in 0..8
	hasB0 bool

	// flat is indexed by countIndex(aliveCount, deadCount, succ, self),
	// size 9*9*9 = 729.
	flat []uint32
}

func countIndex(aliveCount, deadCount int, succ, self State) int {
	return ((aliveCount*9)+deadCount)*9 + int(succ)*3 + int(self)
}

func newTotalisticRule(b, s []int) *totalisticRule {
	r := &totalisticRule{b: b, s: s, hasB0: containsInt(b, 0)}
	r.flat = make([]uint32, 9*9*9)
	r.build()
	return r
}

func (r *totalisticRule) outcome(selfActual State, total int) State {
	var born bool
	if selfActual == Dead {
		born = containsInt(r.b, total)
	} else {
		born = containsInt(r.s, total)
	}
	if born {
		return Alive
	}
	return Dead
}

func selfOptions(self State) []State {
	if self == Unknown {
		return []State{Dead, Alive}
	}
	return []State{self}
}

func (r *totalisticRule) build() {
	for aliveCount := 0; aliveCount <= 8; aliveCount++ {
		for deadCount := 0; deadCount <= 8-aliveCount; deadCount++ {
			unknownCount := 8 - aliveCount - deadCount
			r.buildSucc(aliveCount, deadCount, unknownCount)
			r.buildSelfAndNeighbors(aliveCount, deadCount, unknownCount)
		}
	}
}

// buildSucc fills SUCC_ALIVE/SUCC_DEAD for every self (including
// Unknown), keyed with succ itself left Unknown in the index.
func (r *totalisticRule) buildSucc(aliveCount, deadCount, unknownCount int) {
	for _, self := range []State{Dead, Alive, Unknown} {
		outcomes := map[State]bool{}
		for extra := 0; extra <= unknownCount; extra++ {
			total := aliveCount + extra
			for _, so := range selfOptions(self) {
				outcomes[r.outcome(so, total)] = true
			}
		}
		idx := countIndex(aliveCount, deadCount, Unknown, self)
		switch {
		case len(outcomes) == 0:
			r.flat[idx] = flagConflict
		case len(outcomes) == 1 && outcomes[Alive]:
			r.flat[idx] |= flagSuccAlive
		case len(outcomes) == 1 && outcomes[Dead]:
			r.flat[idx] |= flagSuccDead
		}
	}
	// Conflict entries for a succ slot that disagrees with the derived
	// forced outcome.
	for _, self := range []State{Dead, Alive, Unknown} {
		idx := countIndex(aliveCount, deadCount, Unknown, self)
		flags := r.flat[idx]
		if flags&flagSuccAlive != 0 {
			r.flat[countIndex(aliveCount, deadCount, Dead, self)] |= flagConflict
		} else if flags&flagSuccDead != 0 {
			r.flat[countIndex(aliveCount, deadCount, Alive, self)] |= flagConflict
		}
	}
}

// buildSelfAndNeighbors fills SELF_ALIVE/SELF_DEAD and the uniform
// neighbor-forcing flag for every (succ known, self maybe-unknown)
// combination.
func (r *totalisticRule) buildSelfAndNeighbors(aliveCount, deadCount, unknownCount int) {
	for _, succ := range []State{Alive, Dead} {
		for _, self := range []State{Unknown, Alive, Dead} {
			idx := countIndex(aliveCount, deadCount, succ, self)

			feasibleExtras := map[int]bool{}
			for extra := 0; extra <= unknownCount; extra++ {
				total := aliveCount + extra
				for _, so := range selfOptions(self) {
					if r.outcome(so, total) == succ {
						feasibleExtras[extra] = true
					}
				}
			}
			if len(feasibleExtras) == 0 {
				r.flat[idx] |= flagConflict
				continue
			}

			if self == Unknown {
				validSelf := map[State]bool{}
				for _, so := range []State{Dead, Alive} {
					allExtrasWork := true
					for extra := 0; extra <= unknownCount; extra++ {
						if r.outcome(so, aliveCount+extra) != succ {
							allExtrasWork = false
							break
						}
					}
					if allExtrasWork {
						validSelf[so] = true
					}
				}
				switch {
				case len(validSelf) == 1 && validSelf[Dead]:
					r.flat[idx] |= flagSelfDead
				case len(validSelf) == 1 && validSelf[Alive]:
					r.flat[idx] |= flagSelfAlive
				}
			}

			if unknownCount == 0 {
				continue
			}
			_, allDeadFeasible := feasibleExtras[0]
			_, allAliveFeasible := feasibleExtras[unknownCount]
			switch {
			case len(feasibleExtras) == 1 && allDeadFeasible:
				r.flat[idx] |= flagUniformDead
			case len(feasibleExtras) == 1 && allAliveFeasible:
				r.flat[idx] |= flagUniformAlive
			}
		}
	}
}

const (
	flagUniformAlive uint32 = 1 << 21
	flagUniformDead  uint32 = 1 << 22
)

func (r *totalisticRule) B0() bool { return r.hasB0 }

func (r *totalisticRule) Totalistic() bool { return true }

func (r *totalisticRule) NewDescriptor(self, succ State) Descriptor {
	return newDescriptor(self, succ, self)
}

func (r *totalisticRule) Implications(d Descriptor) Flags {
	aliveCount := popcount8(unpackAliveMask(d))
	deadCount := popcount8(unpackDeadMask(d))
	self := unpackSelf(d)
	succ := unpackSucc(d)
	raw := r.flat[countIndex(aliveCount, deadCount, succ, self)]

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
	if raw&(flagUniformAlive|flagUniformDead) != 0 {
		f.NbhdUniform = true
		state := Dead
		if raw&flagUniformAlive != 0 {
			state = Alive
		}
		aliveMask, deadMask := unpackAliveMask(d), unpackDeadMask(d)
		for i := 0; i < 8; i++ {
			bit := uint8(1) << uint(i)
			if aliveMask&bit == 0 && deadMask&bit == 0 {
				f.NbhdForced[i], f.NbhdState[i] = true, state
			}
		}
	}
	return f
}

func (r *totalisticRule) String() string {
	return fmt.Sprintf("B%s/S%s", countListString(r.b), countListString(r.s))
}

func countListString(counts []int) string {
	sorted := append([]int(nil), counts...)
	sort.Ints(sorted)
	var sb strings.Builder
	for _, c := range sorted {
		fmt.Fprintf(&sb, "%d", c)
	}
	return sb.String()
}
