package gosigma_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/njchilds90/gosigma"
)

func decode(t *testing.T, s string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatalf("unmarshal %s: %v", s, err)
	}
	return m
}

func TestJSON_PolynomialRoundTrip(t *testing.T) {
	p := gosigma.Sum(gosigma.Sigma("a2"), gosigma.NewTerm("ab", -2), gosigma.NewTerm("abc", 0))
	s, err := gosigma.ToJSON(p)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	op, err := gosigma.FromJSON(decode(t, s))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	got, ok := op.(gosigma.Polynomial)
	if !ok {
		t.Fatalf("want Polynomial, got %T", op)
	}
	if !got.Identical(p) || got.String() != p.String() {
		t.Errorf("want %s, got %s", p, got)
	}
}

func TestJSON_Term(t *testing.T) {
	s, _ := gosigma.ToJSON(gosigma.NewTerm("a2b", 3))
	if s != `{"coefficient":"3","shape":"a2b","type":"term"}` {
		t.Errorf("unexpected encoding %s", s)
	}
	op, err := gosigma.FromJSON(decode(t, `{"type":"term","shape":"ba2","coefficient":5}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if op.String() != "5Σa2b" {
		t.Errorf("want 5Σa2b, got %s", op)
	}
	op, _ = gosigma.FromJSON(decode(t, `{"type":"term","shape":"a"}`))
	if op.String() != "Σa" {
		t.Errorf("coefficient should default to 1, got %s", op)
	}
}

func TestJSON_Scalar(t *testing.T) {
	op, err := gosigma.FromJSON(decode(t, `{"type":"scalar","value":"-4"}`))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if k, ok := op.(gosigma.Scalar); !ok || k != -4 {
		t.Errorf("want Scalar(-4), got %#v", op)
	}
}

func TestJSON_Errors(t *testing.T) {
	tests := []struct {
		doc  string
		want error
	}{
		{`{}`, gosigma.ErrInvalidJSON},
		{`{"type":"matrix"}`, gosigma.ErrInvalidJSON},
		{`{"type":"term","shape":3}`, gosigma.ErrInvalidJSON},
		{`{"type":"term","shape":"a","coefficient":"1.5"}`, gosigma.ErrInvalidJSON},
		{`{"type":"term","shape":"a","coefficient":1.5}`, gosigma.ErrInvalidJSON},
		{`{"type":"term","shape":"a0"}`, gosigma.ErrInvalidShape},
		{`{"type":"polynomial","terms":{}}`, gosigma.ErrInvalidJSON},
		{`{"type":"polynomial","terms":[{"type":"scalar","value":"1"}]}`, gosigma.ErrInvalidJSON},
		{`{"type":"scalar"}`, gosigma.ErrInvalidJSON},
		{`{"type":"scalar","value":"99999999999999999999999"}`, gosigma.ErrInvalidJSON},
	}
	for _, tc := range tests {
		if _, err := gosigma.FromJSON(decode(t, tc.doc)); !errors.Is(err, tc.want) {
			t.Errorf("%s: want %v, got %v", tc.doc, tc.want, err)
		}
	}
	if _, err := gosigma.FromJSON(nil); !errors.Is(err, gosigma.ErrInvalidJSON) {
		t.Errorf("nil: want ErrInvalidJSON, got %v", err)
	}
}
