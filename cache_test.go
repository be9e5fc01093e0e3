package gosigma_test

import (
	"testing"

	"github.com/njchilds90/gosigma"
)

func TestMemoryCache_RingResultsUnchanged(t *testing.T) {
	cache := gosigma.NewMemoryCache()
	cached := gosigma.MustRing(4, gosigma.WithProductCache(cache))
	plain := gosigma.MustRing(4)

	for i := 0; i < 2; i++ {
		want, _ := plain.Pow(gosigma.Sigma("a"), 3)
		got, err := cached.Pow(gosigma.Sigma("a"), 3)
		if err != nil {
			t.Fatalf("Pow: %v", err)
		}
		if !got.Identical(want) {
			t.Errorf("round %d: want %s, got %s", i, want, got)
		}
	}

	hits, misses := cache.Stats()
	if misses == 0 || hits == 0 {
		t.Errorf("want both hits and misses, got %d/%d", hits, misses)
	}
	if cache.Len() != misses {
		t.Errorf("every miss should be stored once: %d entries, %d misses", cache.Len(), misses)
	}
}

func TestMemoryCache_Commutes(t *testing.T) {
	cache := gosigma.NewMemoryCache()
	r := gosigma.MustRing(3, gosigma.WithProductCache(cache))
	_, _ = r.MulTerms(gosigma.Sigma("a2"), gosigma.Sigma("a"))
	if _, ok := cache.Load(3, "a", "a2"); !ok {
		t.Error("reversed pair should hit")
	}
	if _, ok := cache.Load(2, "a", "a2"); ok {
		t.Error("different variable count should miss")
	}
}

func TestMemoryCache_ScaledResultDoesNotAlias(t *testing.T) {
	cache := gosigma.NewMemoryCache()
	r := gosigma.MustRing(2, gosigma.WithProductCache(cache))
	_, _ = r.MulTerms(gosigma.NewTerm("a", 5), gosigma.Sigma("a"))
	p, _ := r.MulTerms(gosigma.Sigma("a"), gosigma.Sigma("a"))
	if p.String() != "Σa2 + 2Σab" {
		t.Errorf("cached unit product was modified: %s", p)
	}
}
