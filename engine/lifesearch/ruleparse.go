package lifesearch

import (
	"fmt"
	"strings"
)

// charBuf is a rune reader with one character of pushback, so a parser
// that peeked one character too far can put it back. Grounded on
// original_source/src/search/rules/parse.rs's Chars wrapper.
type charBuf struct {
	runes  []rune
	pos    int
	pushed bool
	buf    rune
}

func newCharBuf(s string) *charBuf {
	return &charBuf{runes: []rune(s)}
}

func (c *charBuf) next() (rune, bool) {
	if c.pushed {
		c.pushed = false
		return c.buf, true
	}
	if c.pos >= len(c.runes) {
		return 0, false
	}
	r := c.runes[c.pos]
	c.pos++
	return r, true
}

func (c *charBuf) push(r rune) {
	c.buf = r
	c.pushed = true
}

// isotropicKeys maps, for each alive-neighbor count 2..7, each context
// letter to the set of 8-bit neighbor masks it names. Count 1 uses 'c'
// (corner) and 'e' (edge) only; counts 0 and 8 have a single mask each
// and take no letter. Transcribed from
// original_source/src/search/rules/parse.rs's parse_keys! tables, which
// in turn follow Golly's isotropic non-totalistic naming (c/e/k/a/i/n/y/
// q/j/r/t/w/z).
var isotropicKeys = map[int]map[rune][]uint8{
	1: {
		'c': {0x01, 0x04, 0x20, 0x80},
		'e': {0x02, 0x08, 0x10, 0x40},
	},
	2: {
		'c': {0x05, 0x21, 0x84, 0xa0},
		'e': {0x0a, 0x12, 0x48, 0x50},
		'k': {0x0c, 0x11, 0x22, 0x30, 0x41, 0x44, 0x82, 0x88},
		'a': {0x03, 0x06, 0x09, 0x14, 0x28, 0x60, 0x90, 0xc0},
		'i': {0x18, 0x42},
		'n': {0x24, 0x81},
	},
	3: {
		'c': {0x25, 0x85, 0xa1, 0xa4},
		'e': {0x1a, 0x4a, 0x52, 0x58},
		'k': {0x32, 0x4c, 0x51, 0x8a},
		'a': {0x0b, 0x16, 0x68, 0xd0},
		'i': {0x07, 0x29, 0x94, 0xe0},
		'n': {0x0d, 0x15, 0x23, 0x61, 0x86, 0xa8, 0xb0, 0xc4},
		'y': {0x31, 0x45, 0x8c, 0xa2},
		'q': {0x26, 0x2c, 0x34, 0x64, 0x83, 0x89, 0x91, 0xc1},
		'j': {0x0e, 0x13, 0x2a, 0x49, 0x54, 0x70, 0x92, 0xc8},
		'r': {0x19, 0x1c, 0x38, 0x43, 0x46, 0x62, 0x98, 0xc2},
	},
	4: {
		'c': {0xa5},
		'e': {0x5a},
		'k': {0x33, 0x4d, 0x55, 0x71, 0x8e, 0xaa, 0xb2, 0xcc},
		'a': {0x0f, 0x17, 0x2b, 0x69, 0x96, 0xd4, 0xe8, 0xf0},
		'i': {0x1d, 0x63, 0xb8, 0xc6},
		'n': {0x27, 0x2d, 0x87, 0x95, 0xa9, 0xb4, 0xe1, 0xe4},
		'y': {0x35, 0x65, 0x8d, 0xa3, 0xa6, 0xac, 0xb1, 0xc5},
		'q': {0x36, 0x6c, 0x8b, 0xd1},
		'j': {0x3a, 0x4e, 0x53, 0x59, 0x5c, 0x72, 0x9a, 0xca},
		'r': {0x1b, 0x1e, 0x4b, 0x56, 0x6a, 0x78, 0xd2, 0xd8},
		't': {0x39, 0x47, 0x9c, 0xe2},
		'w': {0x2e, 0x74, 0x93, 0xc9},
		'z': {0x3c, 0x66, 0x99, 0xc3},
	},
	5: {
		'c': {0x5b, 0x5e, 0x7a, 0xda},
		'e': {0xa7, 0xad, 0xb5, 0xe5},
		'k': {0x75, 0xae, 0xb3, 0xcd},
		'a': {0x2f, 0x97, 0xe9, 0xf4},
		'i': {0x1f, 0x6b, 0xd6, 0xf8},
		'n': {0x3b, 0x4f, 0x57, 0x79, 0x9e, 0xdc, 0xea, 0xf2},
		'y': {0x5d, 0x73, 0xba, 0xce},
		'q': {0x3e, 0x6e, 0x76, 0x7c, 0x9b, 0xcb, 0xd3, 0xd9},
		'j': {0x37, 0x6d, 0x8f, 0xab, 0xb6, 0xd5, 0xec, 0xf1},
		'r': {0x3d, 0x67, 0x9d, 0xb9, 0xbc, 0xc7, 0xe3, 0xe6},
	},
	6: {
		'c': {0x5f, 0x7b, 0xde, 0xfa},
		'e': {0xaf, 0xb7, 0xed, 0xf5},
		'k': {0x77, 0x7d, 0xbb, 0xbe, 0xcf, 0xdd, 0xee, 0xf3},
		'a': {0x3f, 0x6f, 0x9f, 0xd7, 0xeb, 0xf6, 0xf9, 0xfc},
		'i': {0xbd, 0xe7},
		'n': {0x7e, 0xdb},
	},
	7: {
		'c': {0x7f, 0xdf, 0xfb, 0xfe},
		'e': {0xbf, 0xef, 0xf7, 0xfd},
	},
}

// ParseRule parses a B.../S... rule string into a Rule. It first tries
// the plain outer-totalistic grammar (digits only); if that fails, it
// retries as isotropic non-totalistic (digits optionally followed by a
// '-' or a run of context letters). Mirrors original_source/lib/src/
// save.rs's try-Life-then-NtLife fallback. A trailing /G2 (two states,
// the classical case) is accepted and dropped; any other /G<n> suffix is
// rejected.
func ParseRule(input string) (Rule, error) {
	if i := strings.IndexAny(input, "Gg"); i > 0 && input[i-1] == '/' {
		if input[i+1:] != "2" {
			return nil, fmt.Errorf("lifesearch: Generations rules (/G<n> with n other than 2) are not supported")
		}
		input = input[:i-1]
	}

	if counts, err := parseTotalistic(input); err == nil {
		return newTotalisticRule(counts[0], counts[1]), nil
	}
	masks, err := parseNonTotalistic(input)
	if err != nil {
		return nil, fmt.Errorf("lifesearch: invalid rule %q: %w", input, err)
	}
	return newNtLifeRule(masks[0], masks[1]), nil
}

func parseTotalistic(input string) ([2][]int, error) {
	var result [2][]int
	c := newCharBuf(input)
	if !expectB(c) {
		return result, fmt.Errorf("expected B at start of rule")
	}
	b, err := parseDigitsOnly(c)
	if err != nil {
		return result, err
	}
	if err := expectSlash(c); err != nil {
		return result, err
	}
	if !expectS(c) {
		return result, fmt.Errorf("expected S after slash")
	}
	s, err := parseDigitsOnly(c)
	if err != nil {
		return result, err
	}
	if _, ok := c.next(); ok {
		return result, fmt.Errorf("extra unparsed junk at end of rule string")
	}
	result[0], result[1] = b, s
	return result, nil
}

func parseDigitsOnly(c *charBuf) ([]int, error) {
	var counts []int
	for {
		r, ok := c.next()
		if !ok {
			return counts, nil
		}
		switch {
		case r >= '0' && r <= '8':
			counts = append(counts, int(r-'0'))
		case r == '/' || r == 'S' || r == 's':
			c.push(r)
			return counts, nil
		default:
			return nil, fmt.Errorf("unexpected character %q in rule", r)
		}
	}
}

func parseNonTotalistic(input string) ([2][]uint8, error) {
	var result [2][]uint8
	c := newCharBuf(input)
	if !expectB(c) {
		return result, fmt.Errorf("expected B at start of rule")
	}
	b, err := parseBSIsotropic(c)
	if err != nil {
		return result, err
	}
	if err := expectSlash(c); err != nil {
		return result, err
	}
	if !expectS(c) {
		return result, fmt.Errorf("expected S after slash")
	}
	s, err := parseBSIsotropic(c)
	if err != nil {
		return result, err
	}
	if _, ok := c.next(); ok {
		return result, fmt.Errorf("extra unparsed junk at end of rule string")
	}
	result[0], result[1] = b, s
	return result, nil
}

func expectB(c *charBuf) bool {
	r, ok := c.next()
	return ok && (r == 'B' || r == 'b')
}

func expectS(c *charBuf) bool {
	r, ok := c.next()
	return ok && (r == 'S' || r == 's')
}

func expectSlash(c *charBuf) error {
	r, ok := c.next()
	if !ok {
		return fmt.Errorf("missing expected slash between B and S")
	}
	if r != '/' {
		c.push(r)
	}
	return nil
}

func parseBSIsotropic(c *charBuf) ([]uint8, error) {
	var masks []uint8
	for {
		r, ok := c.next()
		if !ok {
			return masks, nil
		}
		switch {
		case r == '0':
			masks = append(masks, 0x00)
		case r == '8':
			masks = append(masks, 0xff)
		case r >= '1' && r <= '7':
			keys, err := parseContextKeys(c, int(r-'0'))
			if err != nil {
				return nil, err
			}
			masks = append(masks, keys...)
		case r == '/' || r == 'S' || r == 's':
			c.push(r)
			return masks, nil
		default:
			return nil, fmt.Errorf("unexpected character %q in rule", r)
		}
	}
}

// parseContextKeys reads the run of context letters (or a leading '-'
// meaning "all except these") that follows a digit, and resolves it to
// the corresponding neighbor masks.
func parseContextKeys(c *charBuf, digit int) ([]uint8, error) {
	table := isotropicKeys[digit]
	allKeys := sortedKeys(table)

	negate := false
	r, ok := c.next()
	if ok && r == '-' {
		negate = true
	} else if ok {
		c.push(r)
	}

	var present []rune
	for {
		r, ok := c.next()
		if !ok {
			break
		}
		if _, known := table[r]; known {
			present = append(present, r)
			continue
		}
		c.push(r)
		break
	}

	chosen := present
	if negate || len(present) == 0 {
		chosen = nil
		for _, k := range allKeys {
			if !runeIn(present, k) {
				chosen = append(chosen, k)
			}
		}
	}

	var masks []uint8
	for _, k := range chosen {
		masks = append(masks, table[k]...)
	}
	return masks, nil
}

func runeIn(set []rune, r rune) bool {
	for _, v := range set {
		if v == r {
			return true
		}
	}
	return false
}

func sortedKeys(table map[rune][]uint8) []rune {
	keys := make([]rune, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}
