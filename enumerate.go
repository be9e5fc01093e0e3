package gosigma

import "iter"

// Enumerate returns every monomial over the ring's variables whose shape is
// s. The sequence is lazy and restartable: ranging over it again recomputes
// the same monomials in the same order. Its length is Multiplicity(s).
//
// Exponent groups are placed one at a time. A group of k variables sharing
// exponent e takes each k-subset (not k-permutation) of the symbols still
// unused, so no monomial is produced twice.
func (r *Ring) Enumerate(s Shape) (iter.Seq[Monomial], error) {
	if err := r.Validate(s); err != nil {
		return nil, err
	}
	gs, _ := s.groups()
	n, symbols := r.n, r.symbols

	return func(yield func(Monomial) bool) {
		exps := make([]int, n)
		var place func(g int) bool
		var choose func(g, start, left int) bool

		place = func(g int) bool {
			if g == len(gs) {
				out := make(map[byte]int, groupsWidth(gs))
				for i, e := range exps {
					if e > 0 {
						out[symbols[i]] = e
					}
				}
				return yield(Monomial{exps: out})
			}
			return choose(g, 0, gs[g].count)
		}
		choose = func(g, start, left int) bool {
			if left == 0 {
				return place(g + 1)
			}
			for i := start; i <= n-left; i++ {
				if exps[i] != 0 {
					continue
				}
				exps[i] = gs[g].exp
				ok := choose(g, i+1, left-1)
				exps[i] = 0
				if !ok {
					return false
				}
			}
			return true
		}
		place(0)
	}, nil
}

// Monomials collects Enumerate(s) into a slice.
func (r *Ring) Monomials(s Shape) ([]Monomial, error) {
	seq, err := r.Enumerate(s)
	if err != nil {
		return nil, err
	}
	var out []Monomial
	for m := range seq {
		out = append(out, m)
	}
	return out, nil
}
