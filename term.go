package gosigma

import (
	"fmt"
	"math/big"
)

// ============================================================
// Term: one scaled monomial symmetric function
// ============================================================

// Term is coefficient × Σshape, where Σshape is the sum of every distinct
// monomial over the ring's variables whose shape is shape. Zero-coefficient
// terms are valid and are never dropped implicitly.
type Term struct {
	shape Shape
	coeff *big.Int
}

// NewTerm returns coeff × Σs. s is canonicalized when it parses; a malformed
// shape is kept verbatim and rejected by the first Ring operation that needs it.
func NewTerm(s Shape, coeff int64) Term {
	return Term{shape: s.Canonical(), coeff: big.NewInt(coeff)}
}

// NewTermBig is NewTerm with an arbitrary-precision coefficient. c is copied.
func NewTermBig(s Shape, c *big.Int) Term {
	return Term{shape: s.Canonical(), coeff: new(big.Int).Set(c)}
}

// ParseTerm parses the shape text and returns coeff × Σshape.
func ParseTerm(text string, coeff int64) (Term, error) {
	s, err := ParseShape(text)
	if err != nil {
		return Term{}, err
	}
	return Term{shape: s, coeff: big.NewInt(coeff)}, nil
}

// Sigma is shorthand for 1 × Σshape; it panics on malformed shape text.
func Sigma(text string) Term { return Term{shape: MustShape(text), coeff: big.NewInt(1)} }

func (t Term) Shape() Shape { return t.shape }

// Coefficient returns a copy of the coefficient.
func (t Term) Coefficient() *big.Int { return new(big.Int).Set(t.c()) }

func (t Term) c() *big.Int {
	if t.coeff == nil {
		return new(big.Int)
	}
	return t.coeff
}

func (t Term) IsZero() bool { return t.c().Sign() == 0 }

func (t Term) Scale(k int64) Term { return t.ScaleBig(big.NewInt(k)) }

func (t Term) ScaleBig(k *big.Int) Term {
	return Term{shape: t.shape, coeff: new(big.Int).Mul(t.c(), k)}
}

func (t Term) Neg() Term { return Term{shape: t.shape, coeff: new(big.Int).Neg(t.c())} }

func (t Term) Equal(o Term) bool { return t.shape == o.shape && t.c().Cmp(o.c()) == 0 }

func (t Term) String() string {
	c := t.c()
	switch {
	case c.Sign() == 0:
		return "0"
	case c.IsInt64() && c.Int64() == 1:
		return "Σ" + string(t.shape)
	case c.IsInt64() && c.Int64() == -1:
		return "-Σ" + string(t.shape)
	}
	return c.String() + "Σ" + string(t.shape)
}

func (t Term) LaTeX() string {
	c := t.c()
	switch {
	case c.Sign() == 0:
		return "0"
	case c.IsInt64() && c.Int64() == 1:
		return t.shape.LaTeX()
	case c.IsInt64() && c.Int64() == -1:
		return "-" + t.shape.LaTeX()
	}
	return c.String() + " " + t.shape.LaTeX()
}

// ============================================================
// Term multiplication
// ============================================================

// MulTerms expands a·b back into the Σ basis.
//
// Both operands are enumerated, every pair of monomials is multiplied, and
// the products are tallied by shape. Every monomial of a product shape is
// reached equally often, so each tally is an exact multiple of that shape's
// multiplicity; the quotient is the coefficient of the shape in Σa·Σb. A
// tally that does not divide is a broken invariant and panics with
// *SymmetryError.
//
// The cost is Multiplicity(a) × Multiplicity(b) monomial products.
func (r *Ring) MulTerms(a, b Term) (Polynomial, error) {
	if err := r.Validate(a.shape); err != nil {
		return Polynomial{}, err
	}
	if err := r.Validate(b.shape); err != nil {
		return Polynomial{}, err
	}
	coeff := new(big.Int).Mul(a.c(), b.c())
	if coeff.Sign() == 0 {
		return Polynomial{terms: []Term{{shape: "", coeff: new(big.Int)}}}, nil
	}
	unit, err := r.unitProduct(a.shape, b.shape)
	if err != nil {
		return Polynomial{}, err
	}
	return unit.ScaleBig(coeff), nil
}

// unitProduct returns Σx·Σy, consulting the product cache when one is set.
func (r *Ring) unitProduct(x, y Shape) (Polynomial, error) {
	if r.cache != nil {
		if p, ok := r.cache.Load(r.n, x, y); ok {
			return p, nil
		}
	}

	left, err := r.Enumerate(x)
	if err != nil {
		return Polynomial{}, err
	}
	right, err := r.Monomials(y)
	if err != nil {
		return Polynomial{}, err
	}

	tally := map[Shape]int64{}
	var order []Shape
	for m1 := range left {
		for _, m2 := range right {
			s := m1.Mul(m2).Shape()
			if _, seen := tally[s]; !seen {
				order = append(order, s)
			}
			tally[s]++
		}
	}

	terms := make([]Term, 0, len(order))
	for _, s := range order {
		gs, err := s.groups()
		if err != nil {
			panic(fmt.Sprintf("gosigma: product shape %q does not parse: %v", string(s), err))
		}
		mult := multinomial(r.n, gs)
		count := big.NewInt(tally[s])
		q, rem := new(big.Int).QuoRem(count, mult, new(big.Int))
		if rem.Sign() != 0 {
			panic(&SymmetryError{Degree: r.n, Left: x, Right: y, Product: s, Tally: count, Multiplicity: mult})
		}
		terms = append(terms, Term{shape: s, coeff: q})
	}
	p := Polynomial{terms: terms}

	if r.cache != nil {
		r.cache.Store(r.n, x, y, p)
	}
	return p, nil
}
