package gosigma

import (
	"errors"
	"fmt"
	"math/big"
)

// Sentinel errors. Callers match them with errors.Is; context is added by
// wrapping with fmt.Errorf("...: %w", ErrX).
var (
	// ErrInvalidDegree is returned by NewRing when N is outside [0, len(Alphabet)].
	ErrInvalidDegree = errors.New("gosigma: invalid variable count")

	// ErrInvalidShape covers malformed shape text and shapes that need more
	// variables than the ring has.
	ErrInvalidShape = errors.New("gosigma: invalid shape")

	// ErrNegativeExponent is returned by Pow for e < 0.
	ErrNegativeExponent = errors.New("gosigma: negative exponent")

	// ErrInvalidJSON is returned by FromJSON for structurally wrong documents.
	ErrInvalidJSON = errors.New("gosigma: invalid JSON expression")
)

// SymmetryError reports that a product tally was not an exact multiple of the
// multiplicity of its shape. MulTerms panics with it; it is never returned.
type SymmetryError struct {
	Degree       int
	Left, Right  Shape
	Product      Shape
	Tally        *big.Int
	Multiplicity *big.Int
}

func (e *SymmetryError) Error() string {
	return fmt.Sprintf("gosigma: symmetry invariant violated for Σ%s·Σ%s over %d variables: shape %q tallied %s times, multiplicity %s",
		e.Left, e.Right, e.Degree, string(e.Product), e.Tally, e.Multiplicity)
}
