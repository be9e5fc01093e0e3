package gosigma

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// ============================================================
// JSON Serialization
// ============================================================
//
//	{"type":"term","shape":"a2b","coefficient":"3"}
//	{"type":"polynomial","terms":[{...term...}, ...]}
//	{"type":"scalar","value":"5"}
//
// Coefficients are decimal strings so that they survive float64 decoding.

func (t Term) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "term", "shape": string(t.shape), "coefficient": t.c().String()}
}

func (p Polynomial) toJSON() map[string]interface{} {
	ts := make([]map[string]interface{}, len(p.terms))
	for i, t := range p.terms {
		ts[i] = t.toJSON()
	}
	return map[string]interface{}{"type": "polynomial", "terms": ts}
}

func (k Scalar) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "scalar", "value": k.String()}
}

// ToJSON encodes an operand.
func ToJSON(op Operand) (string, error) {
	b, err := json.Marshal(op.toJSON())
	return string(b), err
}

// JSONValue returns the decoded-JSON form of op, suitable for embedding in
// larger documents.
func JSONValue(op Operand) map[string]interface{} { return op.toJSON() }

// FromJSON decodes an operand from a generic JSON object.
func FromJSON(data map[string]interface{}) (Operand, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: expression must be an object", ErrInvalidJSON)
	}
	typ, ok := data["type"].(string)
	if !ok || typ == "" {
		return nil, fmt.Errorf("%w: field 'type' must be a non-empty string", ErrInvalidJSON)
	}

	switch typ {
	case "term":
		return termFromJSON(data)

	case "polynomial":
		raw, ok := data["terms"].([]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: polynomial: 'terms' must be an array", ErrInvalidJSON)
		}
		terms := make([]Term, len(raw))
		for i, it := range raw {
			m, ok := it.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("%w: polynomial: terms[%d] must be an object", ErrInvalidJSON, i)
			}
			t, err := termFromJSON(m)
			if err != nil {
				return nil, fmt.Errorf("polynomial: terms[%d]: %w", i, err)
			}
			terms[i] = t
		}
		return Polynomial{terms: terms}, nil

	case "scalar":
		v, err := integerField(data, typ, "value")
		if err != nil {
			return nil, err
		}
		if !v.IsInt64() {
			return nil, fmt.Errorf("%w: scalar: %s overflows int64", ErrInvalidJSON, v)
		}
		return Scalar(v.Int64()), nil
	}
	return nil, fmt.Errorf("%w: unknown expression type: %s", ErrInvalidJSON, typ)
}

func termFromJSON(data map[string]interface{}) (Term, error) {
	if typ, ok := data["type"]; ok && typ != "term" {
		return Term{}, fmt.Errorf("%w: expected term, got %v", ErrInvalidJSON, typ)
	}
	text, ok := data["shape"].(string)
	if !ok {
		return Term{}, fmt.Errorf("%w: term: 'shape' must be a string", ErrInvalidJSON)
	}
	s, err := ParseShape(text)
	if err != nil {
		return Term{}, err
	}
	c := big.NewInt(1)
	if _, present := data["coefficient"]; present {
		if c, err = integerField(data, "term", "coefficient"); err != nil {
			return Term{}, err
		}
	}
	return Term{shape: s, coeff: c}, nil
}

// integerField accepts a decimal string or an integral JSON number.
func integerField(data map[string]interface{}, typ, field string) (*big.Int, error) {
	switch v := data[field].(type) {
	case string:
		n, ok := new(big.Int).SetString(v, 10)
		if !ok {
			return nil, fmt.Errorf("%w: %s: %q is not an integer: %q", ErrInvalidJSON, typ, field, v)
		}
		return n, nil
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > 1<<53 {
			return nil, fmt.Errorf("%w: %s: %q must be an exact integer, got %s", ErrInvalidJSON, typ, field, strconv.FormatFloat(v, 'g', -1, 64))
		}
		return big.NewInt(int64(v)), nil
	case nil:
		return nil, fmt.Errorf("%w: %s: missing %q", ErrInvalidJSON, typ, field)
	}
	return nil, fmt.Errorf("%w: %s: %q must be a string or number", ErrInvalidJSON, typ, field)
}
