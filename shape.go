package gosigma

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// ============================================================
// Shape: canonical partition form
// ============================================================

// Shape names a monomial symmetric function by the multiset of exponents it
// sums over, written with successive alphabet symbols: "a2b" is the partition
// (2,1), "abc" is (1,1,1) and "" is the empty partition (the constant 1).
//
// Shapes built by ParseShape, ShapeOf and Monomial.Shape are canonical:
// exponents appear in descending order starting at 'a'.
type Shape string

type group struct {
	exp   int
	count int
}

// ParseShape reads "(symbol[exponent])*" text and returns its canonical form.
// Repeated symbols accumulate ("aa" is "a2"), full-width characters are
// folded to ASCII and the symbols themselves do not matter: "ba2", "a2b" and
// "c2a" all name the partition (2,1).
func ParseShape(text string) (Shape, error) {
	exps, err := parseExponents(width.Narrow.String(strings.TrimSpace(text)))
	if err != nil {
		return "", err
	}
	vals := make([]int, 0, len(exps))
	for _, e := range exps {
		vals = append(vals, e)
	}
	return canonicalShape(vals), nil
}

// MustShape is ParseShape that panics on error.
func MustShape(text string) Shape {
	s, err := ParseShape(text)
	if err != nil {
		panic(err)
	}
	return s
}

// ShapeOf builds the canonical shape of a partition. Zero parts are skipped.
func ShapeOf(parts ...int) Shape {
	vals := make([]int, 0, len(parts))
	for _, p := range parts {
		if p < 0 {
			panic(fmt.Sprintf("gosigma: negative partition part %d", p))
		}
		if p > 0 {
			vals = append(vals, p)
		}
	}
	if len(vals) > len(Alphabet) {
		panic(fmt.Sprintf("gosigma: partition has %d parts, alphabet has %d symbols", len(vals), len(Alphabet)))
	}
	return canonicalShape(vals)
}

func canonicalShape(exps []int) Shape {
	counts := map[int]int{}
	for _, e := range exps {
		counts[e]++
	}
	distinct := make([]int, 0, len(counts))
	for e := range counts {
		distinct = append(distinct, e)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(distinct)))

	var sb strings.Builder
	i := 0
	for _, e := range distinct {
		for j := 0; j < counts[e]; j++ {
			sb.WriteByte(Alphabet[i])
			if e != 1 {
				sb.WriteString(strconv.Itoa(e))
			}
			i++
		}
	}
	return Shape(sb.String())
}

// parseExponents reads "(symbol[digits])*" into a fresh symbol → exponent map.
func parseExponents(text string) (map[byte]int, error) {
	exps := map[byte]int{}
	for i := 0; i < len(text); {
		sym := text[i]
		if strings.IndexByte(Alphabet, sym) < 0 {
			return nil, fmt.Errorf("%w: %q: unexpected %q at offset %d", ErrInvalidShape, text, sym, i)
		}
		i++
		j := i
		for j < len(text) && text[j] >= '0' && text[j] <= '9' {
			j++
		}
		e := 1
		if j > i {
			n, err := strconv.Atoi(text[i:j])
			if err != nil {
				return nil, fmt.Errorf("%w: %q: exponent %q: %v", ErrInvalidShape, text, text[i:j], err)
			}
			if n < 1 {
				return nil, fmt.Errorf("%w: %q: exponent of %q must be at least 1", ErrInvalidShape, text, sym)
			}
			e = n
		}
		sum, ok := addExponents(exps[sym], e)
		if !ok {
			return nil, fmt.Errorf("%w: %q: exponent of %q overflows", ErrInvalidShape, text, sym)
		}
		exps[sym] = sum
		i = j
	}
	return exps, nil
}

// groups splits s into (exponent, count) groups in order of first appearance.
func (s Shape) groups() ([]group, error) {
	text := string(s)
	var gs []group
	index := map[int]int{}
	seen := map[byte]bool{}
	for i := 0; i < len(text); {
		sym := text[i]
		if strings.IndexByte(Alphabet, sym) < 0 {
			return nil, fmt.Errorf("%w: %q: unexpected %q at offset %d", ErrInvalidShape, text, sym, i)
		}
		if seen[sym] {
			return nil, fmt.Errorf("%w: %q: symbol %q repeated", ErrInvalidShape, text, sym)
		}
		seen[sym] = true
		i++
		j := i
		for j < len(text) && text[j] >= '0' && text[j] <= '9' {
			j++
		}
		e := 1
		if j > i {
			n, err := strconv.Atoi(text[i:j])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%w: %q: bad exponent %q", ErrInvalidShape, text, text[i:j])
			}
			e = n
		}
		if k, ok := index[e]; ok {
			gs[k].count++
		} else {
			index[e] = len(gs)
			gs = append(gs, group{exp: e, count: 1})
		}
		i = j
	}
	return gs, nil
}

func groupsWidth(gs []group) int {
	w := 0
	for _, g := range gs {
		w += g.count
	}
	return w
}

// Canonical returns the canonical spelling of s, or s unchanged if it does not parse.
func (s Shape) Canonical() Shape {
	c, err := ParseShape(string(s))
	if err != nil {
		return s
	}
	return c
}

// Partition returns the exponents of s in descending order. A malformed shape yields nil.
func (s Shape) Partition() []int {
	gs, err := s.groups()
	if err != nil {
		return nil
	}
	parts := make([]int, 0, groupsWidth(gs))
	for _, g := range gs {
		for i := 0; i < g.count; i++ {
			parts = append(parts, g.exp)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(parts)))
	return parts
}

// Width is the number of variables carrying a nonzero exponent.
func (s Shape) Width() int { return len(s.Partition()) }

// Degree is the total degree of every monomial of shape s.
func (s Shape) Degree() int {
	d := 0
	for _, p := range s.Partition() {
		d += p
	}
	return d
}

func (s Shape) IsEmpty() bool  { return s == "" }
func (s Shape) String() string { return string(s) }

// LaTeX renders s as a monomial symmetric function m_λ.
func (s Shape) LaTeX() string {
	parts := s.Partition()
	if len(parts) == 0 {
		return `m_{\emptyset}`
	}
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = strconv.Itoa(p)
	}
	return "m_{(" + strings.Join(strs, ",") + ")}"
}
