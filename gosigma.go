// Package gosigma provides exact arithmetic on monomial symmetric polynomials
// over a fixed number of variables.
//
// A polynomial is kept as a sum of scaled monomial symmetric functions
// (written Σ<shape>), never as an explicit list of monomials:
//
//	Σa    = a + b + c                  (N = 3)
//	Σa2b  = a²b + a²c + b²a + b²c + …
//
// Design goals:
//   - Exact integer coefficients (math/big.Int)
//   - Immutable values: every operation returns a fresh Term or Polynomial
//   - Explicit configuration: the variable count lives in a *Ring, never in globals
//   - Deterministic output and a JSON / MCP-ready tool interface
package gosigma

import (
	"fmt"
	"math/big"
)

// Alphabet is the fixed, ordered set of variable symbols. A ring of degree N
// uses its first N symbols; canonical shapes always start at 'a'.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ============================================================
// Ring: the variable alphabet of one configuration
// ============================================================

// Ring binds the number of variables N. It is immutable after NewRing and
// safe for concurrent use.
type Ring struct {
	n       int
	symbols string
	cache   ProductCache
}

// Option configures a Ring.
type Option func(*Ring)

// WithProductCache makes MulTerms consult c for unit term products.
func WithProductCache(c ProductCache) Option {
	return func(r *Ring) { r.cache = c }
}

// NewRing returns the ring of symmetric polynomials in n variables.
func NewRing(n int, opts ...Option) (*Ring, error) {
	if n < 0 || n > len(Alphabet) {
		return nil, fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidDegree, n, len(Alphabet))
	}
	r := &Ring{n: n, symbols: Alphabet[:n]}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// MustRing is NewRing that panics on error. Intended for tests and examples.
func MustRing(n int, opts ...Option) *Ring {
	r, err := NewRing(n, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Ring) Degree() int     { return r.n }
func (r *Ring) Symbols() string { return r.symbols }
func (r *Ring) String() string  { return fmt.Sprintf("Z[%s]^S%d", r.symbols, r.n) }

// Validate reports whether s fits in the ring's variables.
func (r *Ring) Validate(s Shape) error {
	gs, err := s.groups()
	if err != nil {
		return err
	}
	if w := groupsWidth(gs); w > r.n {
		return fmt.Errorf("%w: %q needs %d variables, ring has %d", ErrInvalidShape, string(s), w, r.n)
	}
	return nil
}

// Multiplicity returns the number of distinct monomials over the ring's
// variables whose shape is s, without enumerating them:
//
//	N! / (c₁! · c₂! · … · (N − Σcᵢ)!)
//
// where cᵢ is the number of variables sharing the i-th distinct exponent.
func (r *Ring) Multiplicity(s Shape) (*big.Int, error) {
	if err := r.Validate(s); err != nil {
		return nil, err
	}
	gs, _ := s.groups()
	return multinomial(r.n, gs), nil
}

func multinomial(n int, gs []group) *big.Int {
	acc := big.NewInt(1)
	left := int64(n)
	var b big.Int
	for _, g := range gs {
		acc.Mul(acc, b.Binomial(left, int64(g.count)))
		left -= int64(g.count)
	}
	return acc
}
