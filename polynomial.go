package gosigma

import (
	"math/big"
	"sort"
	"strings"
)

// ============================================================
// Polynomial: sum of terms
// ============================================================

// Polynomial is an ordered sum of Terms. Every operator returns a collected
// polynomial: one term per shape, in order of first appearance. Zero
// coefficients are kept; use Prune to drop them.
type Polynomial struct{ terms []Term }

// PolynomialOf flattens terms, polynomials and scalars into one term list
// without collecting.
func PolynomialOf(ops ...Operand) Polynomial {
	var terms []Term
	for _, op := range ops {
		terms = append(terms, op.flatten()...)
	}
	return Polynomial{terms: terms}
}

// Sum flattens ops and collects the result.
func Sum(ops ...Operand) Polynomial { return Collect(PolynomialOf(ops...)) }

// Identity is the multiplicative identity Σ (empty shape, coefficient 1).
func Identity() Polynomial {
	return Polynomial{terms: []Term{{shape: "", coeff: big.NewInt(1)}}}
}

// Collect merges terms of equal shape by summing their coefficients.
// It is idempotent.
func Collect(p Polynomial) Polynomial {
	sums := map[Shape]*big.Int{}
	var order []Shape
	for _, t := range p.terms {
		acc, ok := sums[t.shape]
		if !ok {
			acc = new(big.Int)
			sums[t.shape] = acc
			order = append(order, t.shape)
		}
		acc.Add(acc, t.c())
	}
	terms := make([]Term, len(order))
	for i, s := range order {
		terms[i] = Term{shape: s, coeff: sums[s]}
	}
	return Polynomial{terms: terms}
}

// Terms returns a copy of the term list.
func (p Polynomial) Terms() []Term { return p.flatten() }
func (p Polynomial) Len() int      { return len(p.terms) }

func (p Polynomial) Add(q Operand) Polynomial { return Sum(p, q) }
func (p Polynomial) Neg() Polynomial          { return p.Scale(-1) }
func (p Polynomial) Sub(q Operand) Polynomial { return Sum(p, PolynomialOf(q).Neg()) }

// Scale multiplies every coefficient by k. The shape set is unchanged, even for k = 0.
func (p Polynomial) Scale(k int64) Polynomial { return p.ScaleBig(big.NewInt(k)) }

func (p Polynomial) ScaleBig(k *big.Int) Polynomial {
	terms := make([]Term, len(p.terms))
	for i, t := range p.terms {
		terms[i] = t.ScaleBig(k)
	}
	return Polynomial{terms: terms}
}

// Coefficient returns the summed coefficient of shape s and whether s occurs.
func (p Polynomial) Coefficient(s Shape) (*big.Int, bool) {
	s = s.Canonical()
	acc := new(big.Int)
	found := false
	for _, t := range p.terms {
		if t.shape == s {
			acc.Add(acc, t.c())
			found = true
		}
	}
	return acc, found
}

// Prune drops zero-coefficient terms.
func (p Polynomial) Prune() Polynomial {
	terms := make([]Term, 0, len(p.terms))
	for _, t := range Collect(p).terms {
		if !t.IsZero() {
			terms = append(terms, t)
		}
	}
	return Polynomial{terms: terms}
}

// IsZero reports whether every coefficient is zero.
func (p Polynomial) IsZero() bool { return Collect(p).Prune().Len() == 0 }

// Equal reports whether p and q denote the same symmetric polynomial:
// their collected nonzero terms agree regardless of order.
func (p Polynomial) Equal(q Operand) bool {
	return sameTerms(p.Prune(), PolynomialOf(q).Prune())
}

// Identical is Equal without discarding zero-coefficient terms.
func (p Polynomial) Identical(q Operand) bool {
	return sameTerms(Collect(p), Collect(PolynomialOf(q)))
}

func sameTerms(a, b Polynomial) bool {
	if len(a.terms) != len(b.terms) {
		return false
	}
	idx := make(map[Shape]*big.Int, len(a.terms))
	for _, t := range a.terms {
		idx[t.shape] = t.c()
	}
	for _, t := range b.terms {
		c, ok := idx[t.shape]
		if !ok || c.Cmp(t.c()) != 0 {
			return false
		}
	}
	return true
}

// Degree is the largest total degree among nonzero terms, or -1 for zero.
func (p Polynomial) Degree() int {
	d := -1
	for _, t := range p.terms {
		if !t.IsZero() && t.shape.Degree() > d {
			d = t.shape.Degree()
		}
	}
	return d
}

// Sorted orders terms by descending degree, then by descending partition.
func (p Polynomial) Sorted() Polynomial {
	terms := p.flatten()
	sort.SliceStable(terms, func(i, j int) bool {
		di, dj := terms[i].shape.Degree(), terms[j].shape.Degree()
		if di != dj {
			return di > dj
		}
		return partitionLess(terms[j].shape.Partition(), terms[i].shape.Partition())
	})
	return Polynomial{terms: terms}
}

func partitionLess(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func (p Polynomial) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(p.terms))
	for i, t := range p.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

func (p Polynomial) LaTeX() string {
	if len(p.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(p.terms))
	for i, t := range p.terms {
		parts[i] = t.LaTeX()
	}
	return strings.Join(parts, " + ")
}
