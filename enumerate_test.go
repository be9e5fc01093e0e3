package gosigma_test

import (
	"errors"
	"testing"

	"github.com/njchilds90/gosigma"
)

// partitions returns every partition with parts in descending order whose
// sum is at most maxDegree.
func partitions(maxDegree int) [][]int {
	var out [][]int
	var walk func(prefix []int, left, maxPart int)
	walk = func(prefix []int, left, maxPart int) {
		out = append(out, append([]int(nil), prefix...))
		for p := min(left, maxPart); p >= 1; p-- {
			walk(append(prefix, p), left-p, p)
		}
	}
	walk(nil, maxDegree, maxDegree)
	return out
}

func TestEnumerate_TwoVariables(t *testing.T) {
	ms, err := gosigma.MustRing(2).Monomials("a")
	if err != nil {
		t.Fatalf("Monomials: %v", err)
	}
	if len(ms) != 2 || ms[0].String() != "a" || ms[1].String() != "b" {
		t.Errorf("want [a b], got %v", ms)
	}
}

func TestEnumerate_EmptyShape(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		ms, err := gosigma.MustRing(n).Monomials("")
		if err != nil {
			t.Fatalf("Monomials: %v", err)
		}
		if len(ms) != 1 || !ms[0].IsConstant() {
			t.Errorf("n=%d: want only the constant monomial, got %v", n, ms)
		}
	}
}

func TestEnumerate_TooWide(t *testing.T) {
	if _, err := gosigma.MustRing(2).Enumerate("abc"); !errors.Is(err, gosigma.ErrInvalidShape) {
		t.Errorf("want ErrInvalidShape, got %v", err)
	}
	if _, err := gosigma.MustRing(0).Enumerate("a"); !errors.Is(err, gosigma.ErrInvalidShape) {
		t.Errorf("want ErrInvalidShape, got %v", err)
	}
}

func TestEnumerate_CountMatchesMultiplicity(t *testing.T) {
	for n := 0; n <= 5; n++ {
		r := gosigma.MustRing(n)
		for _, parts := range partitions(5) {
			if len(parts) > n {
				continue
			}
			s := gosigma.ShapeOf(parts...)
			ms, err := r.Monomials(s)
			if err != nil {
				t.Fatalf("n=%d %q: %v", n, s, err)
			}
			want, _ := r.Multiplicity(s)
			if int64(len(ms)) != want.Int64() {
				t.Errorf("n=%d %q: enumerated %d, multiplicity %s", n, s, len(ms), want)
			}

			seen := map[string]bool{}
			for _, m := range ms {
				if seen[m.String()] {
					t.Errorf("n=%d %q: duplicate monomial %s", n, s, m)
				}
				seen[m.String()] = true
				if m.Shape() != s {
					t.Errorf("n=%d: monomial %s has shape %q, want %q", n, m, m.Shape(), s)
				}
			}
		}
	}
}

func TestEnumerate_Restartable(t *testing.T) {
	seq, err := gosigma.MustRing(4).Enumerate("a2bc")
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	var first, second []string
	for m := range seq {
		first = append(first, m.String())
	}
	for m := range seq {
		second = append(second, m.String())
	}
	if len(first) != 12 || len(first) != len(second) {
		t.Fatalf("want 12 monomials twice, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("position %d: %s then %s", i, first[i], second[i])
		}
	}
}

func TestEnumerate_EarlyStop(t *testing.T) {
	seq, _ := gosigma.MustRing(5).Enumerate("ab")
	count := 0
	for range seq {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("want 3, got %d", count)
	}
}
