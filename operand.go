package gosigma

import (
	"math/big"
	"strconv"
)

// Operand is the closed set of values the algebra combines:
// Term, Polynomial or Scalar.
type Operand interface {
	String() string
	LaTeX() string
	flatten() []Term
	toJSON() map[string]interface{}
}

// Scalar is an integer constant. As an addend it is k·Σ (the empty shape);
// as a factor it scales every term.
type Scalar int64

func (k Scalar) String() string  { return strconv.FormatInt(int64(k), 10) }
func (k Scalar) LaTeX() string   { return k.String() }
func (k Scalar) flatten() []Term { return []Term{{shape: "", coeff: big.NewInt(int64(k))}} }

func (t Term) flatten() []Term { return []Term{t} }

func (p Polynomial) flatten() []Term {
	out := make([]Term, len(p.terms))
	copy(out, p.terms)
	return out
}

// Mul multiplies two operands and returns the collected product.
//
//	Scalar × Scalar   constant term
//	Scalar × any      every term scaled, shapes unchanged
//	Term × Term       MulTerms
//	otherwise         every term pair through MulTerms, collected once
func (r *Ring) Mul(a, b Operand) (Polynomial, error) {
	switch x := a.(type) {
	case Scalar:
		if y, ok := b.(Scalar); ok {
			c := new(big.Int).Mul(big.NewInt(int64(x)), big.NewInt(int64(y)))
			return Polynomial{terms: []Term{{shape: "", coeff: c}}}, nil
		}
		return r.scaled(b, x)
	case Term:
		if y, ok := b.(Term); ok {
			return r.MulTerms(x, y)
		}
	}
	if y, ok := b.(Scalar); ok {
		return r.scaled(a, y)
	}

	var acc []Term
	for _, x := range a.flatten() {
		for _, y := range b.flatten() {
			p, err := r.MulTerms(x, y)
			if err != nil {
				return Polynomial{}, err
			}
			acc = append(acc, p.terms...)
		}
	}
	return Collect(Polynomial{terms: acc}), nil
}

// Product multiplies left to right. With no operands it returns Identity.
func (r *Ring) Product(ops ...Operand) (Polynomial, error) {
	if len(ops) == 0 {
		return Identity(), nil
	}
	acc := Sum(ops[0])
	if err := r.validateAll(acc); err != nil {
		return Polynomial{}, err
	}
	for _, op := range ops[1:] {
		var err error
		if acc, err = r.Mul(acc, op); err != nil {
			return Polynomial{}, err
		}
	}
	return acc, nil
}

// Pow raises p to e ≥ 0 by e−1 left-to-right multiplications. p^0 is Identity.
func (r *Ring) Pow(p Operand, e int) (Polynomial, error) {
	if e < 0 {
		return Polynomial{}, ErrNegativeExponent
	}
	if e == 0 {
		return Identity(), nil
	}
	base := Sum(p)
	if err := r.validateAll(base); err != nil {
		return Polynomial{}, err
	}
	acc := base
	for i := 1; i < e; i++ {
		var err error
		if acc, err = r.Mul(acc, base); err != nil {
			return Polynomial{}, err
		}
	}
	return acc, nil
}

// scaled multiplies every term of p by k after checking p fits the ring.
func (r *Ring) scaled(p Operand, k Scalar) (Polynomial, error) {
	q := Sum(p)
	if err := r.validateAll(q); err != nil {
		return Polynomial{}, err
	}
	return q.ScaleBig(big.NewInt(int64(k))), nil
}

func (r *Ring) validateAll(p Polynomial) error {
	for _, t := range p.terms {
		if err := r.Validate(t.shape); err != nil {
			return err
		}
	}
	return nil
}
