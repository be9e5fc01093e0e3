package gosigma

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ============================================================
// Monomial: concrete exponent assignment
// ============================================================

// Monomial maps variable symbols to positive exponents. Absent symbols have
// exponent 0; the zero value is the constant monomial 1. Monomials are never
// mutated after construction.
type Monomial struct{ exps map[byte]int }

// ParseMonomial reads "(symbol[exponent])*" text, e.g. "a2b" = a²b.
func ParseMonomial(text string) (Monomial, error) {
	exps, err := parseExponents(strings.TrimSpace(text))
	if err != nil {
		return Monomial{}, err
	}
	return Monomial{exps: exps}, nil
}

// MonomialOf builds a monomial from a symbol → exponent map. The map is
// copied and non-positive entries are dropped.
func MonomialOf(exps map[byte]int) Monomial {
	out := make(map[byte]int, len(exps))
	for sym, e := range exps {
		if e > 0 {
			out[sym] = e
		}
	}
	return Monomial{exps: out}
}

func (m Monomial) Exponent(sym byte) int { return m.exps[sym] }
func (m Monomial) Len() int              { return len(m.exps) }
func (m Monomial) IsConstant() bool      { return len(m.exps) == 0 }

func (m Monomial) Degree() int {
	d := 0
	for _, e := range m.exps {
		d += e
	}
	return d
}

// Mul multiplies pointwise: exponents of shared symbols add.
func (m Monomial) Mul(o Monomial) Monomial {
	out := make(map[byte]int, len(m.exps)+len(o.exps))
	for sym, e := range m.exps {
		out[sym] = e
	}
	for sym, e := range o.exps {
		sum, ok := addExponents(out[sym], e)
		if !ok {
			panic(fmt.Sprintf("gosigma: exponent overflow in %s·%s", m, o))
		}
		out[sym] = sum
	}
	return MonomialOf(out)
}

// addExponents adds two non-negative exponents and reports whether the sum fits in an int.
func addExponents(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// Pow scales every exponent by k. k = 0 yields the constant monomial.
func (m Monomial) Pow(k int) Monomial {
	if k < 0 {
		panic(fmt.Sprintf("gosigma: negative monomial power %d", k))
	}
	out := make(map[byte]int, len(m.exps))
	for sym, e := range m.exps {
		if k != 0 && e > math.MaxInt/k {
			panic(fmt.Sprintf("gosigma: exponent overflow in (%s)^%d", m, k))
		}
		out[sym] = e * k
	}
	return MonomialOf(out)
}

// Shape returns the canonical shape: the same for every permutation of the variables.
func (m Monomial) Shape() Shape {
	vals := make([]int, 0, len(m.exps))
	for _, e := range m.exps {
		vals = append(vals, e)
	}
	return canonicalShape(vals)
}

func (m Monomial) Equal(o Monomial) bool {
	if len(m.exps) != len(o.exps) {
		return false
	}
	for sym, e := range m.exps {
		if o.exps[sym] != e {
			return false
		}
	}
	return true
}

// String writes symbols in alphabet order, e.g. "a2c"; the constant is "1".
func (m Monomial) String() string {
	if len(m.exps) == 0 {
		return "1"
	}
	var sb strings.Builder
	for i := 0; i < len(Alphabet); i++ {
		e, ok := m.exps[Alphabet[i]]
		if !ok {
			continue
		}
		sb.WriteByte(Alphabet[i])
		if e != 1 {
			sb.WriteString(strconv.Itoa(e))
		}
	}
	return sb.String()
}

// LaTeX renders m with superscript exponents, e.g. "a^{2} c".
func (m Monomial) LaTeX() string {
	if len(m.exps) == 0 {
		return "1"
	}
	var parts []string
	for i := 0; i < len(Alphabet); i++ {
		e, ok := m.exps[Alphabet[i]]
		if !ok {
			continue
		}
		if e == 1 {
			parts = append(parts, string(Alphabet[i]))
		} else {
			parts = append(parts, fmt.Sprintf("%c^{%d}", Alphabet[i], e))
		}
	}
	return strings.Join(parts, " ")
}
