package gosigma

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// ============================================================
// MCP Tool Interface
// ============================================================

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// HandleToolCall evaluates one tool request against r. Operand params accept
// a JSON expression object, a shape string ("a2b" means Σa2b) or an integer
// (a Scalar).
func HandleToolCall(r *Ring, req ToolRequest) ToolResponse {
	getOperand := func(key string) (Operand, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		return operandParam(key, v)
	}
	getOperands := func(key string) ([]Operand, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("param %s must be array", key)
		}
		ops := make([]Operand, len(raw))
		for i, it := range raw {
			op, err := operandParam(fmt.Sprintf("%s[%d]", key, i), it)
			if err != nil {
				return nil, err
			}
			ops[i] = op
		}
		return ops, nil
	}
	getInt := func(key string) (int64, error) {
		v, ok := req.Params[key]
		if !ok {
			return 0, fmt.Errorf("missing param: %s", key)
		}
		f, ok := v.(float64)
		if !ok || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
			return 0, fmt.Errorf("param %s must be an integer", key)
		}
		return int64(f), nil
	}
	getShape := func(key string) (Shape, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return ParseShape(s)
	}
	respond := func(p Polynomial) ToolResponse {
		return ToolResponse{Result: p.toJSON(), LaTeX: p.LaTeX(), String: p.String()}
	}
	respondErr := func(err error) ToolResponse { return ToolResponse{Error: err.Error()} }
	binary := func(f func(a, b Operand) (Polynomial, error)) ToolResponse {
		a, err := getOperand("a")
		if err != nil {
			return respondErr(err)
		}
		b, err := getOperand("b")
		if err != nil {
			return respondErr(err)
		}
		p, err := f(a, b)
		if err != nil {
			return respondErr(err)
		}
		return respond(p)
	}
	unary := func(f func(a Operand) (Polynomial, error)) ToolResponse {
		a, err := getOperand("expr")
		if err != nil {
			return respondErr(err)
		}
		p, err := f(a)
		if err != nil {
			return respondErr(err)
		}
		return respond(p)
	}

	switch req.Tool {
	case "add":
		return binary(func(a, b Operand) (Polynomial, error) { return Sum(a, b), nil })

	case "sub":
		return binary(func(a, b Operand) (Polynomial, error) { return Sum(a).Sub(b), nil })

	case "mul":
		return binary(r.Mul)

	case "neg":
		return unary(func(a Operand) (Polynomial, error) { return Sum(a).Neg(), nil })

	case "collect":
		return unary(func(a Operand) (Polynomial, error) { return Collect(PolynomialOf(a)), nil })

	case "prune":
		return unary(func(a Operand) (Polynomial, error) { return PolynomialOf(a).Prune(), nil })

	case "to_latex":
		return unary(func(a Operand) (Polynomial, error) { return PolynomialOf(a), nil })

	case "scale":
		k, err := getInt("k")
		if err != nil {
			return respondErr(err)
		}
		return unary(func(a Operand) (Polynomial, error) { return PolynomialOf(a).Scale(k), nil })

	case "pow":
		e, err := getInt("e")
		if err != nil {
			return respondErr(err)
		}
		if e > math.MaxInt32 {
			return respondErr(fmt.Errorf("param e too large: %d", e))
		}
		return unary(func(a Operand) (Polynomial, error) { return r.Pow(a, int(e)) })

	case "product":
		ops, err := getOperands("exprs")
		if err != nil {
			return respondErr(err)
		}
		p, err := r.Product(ops...)
		if err != nil {
			return respondErr(err)
		}
		return respond(p)

	case "canonicalize":
		s, err := getShape("shape")
		if err != nil {
			return respondErr(err)
		}
		return ToolResponse{
			Result: map[string]interface{}{"shape": string(s), "partition": s.Partition()},
			LaTeX:  s.LaTeX(),
			String: string(s),
		}

	case "multiplicity":
		s, err := getShape("shape")
		if err != nil {
			return respondErr(err)
		}
		m, err := r.Multiplicity(s)
		if err != nil {
			return respondErr(err)
		}
		return ToolResponse{Result: m.String(), String: m.String()}

	case "enumerate":
		s, err := getShape("shape")
		if err != nil {
			return respondErr(err)
		}
		monos, err := r.Monomials(s)
		if err != nil {
			return respondErr(err)
		}
		strs := make([]string, len(monos))
		latex := make([]string, len(monos))
		for i, m := range monos {
			strs[i] = m.String()
			latex[i] = m.LaTeX()
		}
		return ToolResponse{Result: strs, String: strings.Join(strs, " + "), LaTeX: strings.Join(latex, " + ")}

	case "ring_info":
		return ToolResponse{
			Result: map[string]interface{}{"degree": r.Degree(), "symbols": r.Symbols()},
			String: r.String(),
		}

	case "mcp_spec":
		return ToolResponse{Result: MCPToolSpec(), String: "MCP tool specification"}
	}

	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

func operandParam(key string, v interface{}) (Operand, error) {
	switch val := v.(type) {
	case map[string]interface{}:
		return FromJSON(val)
	case string:
		return ParseTerm(val, 1)
	case float64:
		if val != math.Trunc(val) || math.Abs(val) > 1<<53 {
			return nil, fmt.Errorf("param %s must be an integer", key)
		}
		return Scalar(int64(val)), nil
	}
	return nil, fmt.Errorf("invalid type for param %s", key)
}

// ============================================================
// MCP spec
// ============================================================

func MCPToolSpec() string {
	tools := []map[string]interface{}{
		ts("add", "Add two operands and collect by shape", []string{"a", "b"}, map[string]string{"a": "operand", "b": "operand"}),
		ts("sub", "Subtract b from a", []string{"a", "b"}, map[string]string{"a": "operand", "b": "operand"}),
		ts("mul", "Multiply two operands in the Σ basis", []string{"a", "b"}, map[string]string{"a": "operand", "b": "operand"}),
		ts("neg", "Negate every coefficient", []string{"expr"}, map[string]string{"expr": "operand"}),
		ts("scale", "Multiply every coefficient by integer k", []string{"expr", "k"}, map[string]string{"expr": "operand", "k": "integer"}),
		ts("pow", "Raise to integer power e >= 0", []string{"expr", "e"}, map[string]string{"expr": "operand", "e": "integer"}),
		ts("product", "Multiply a list of operands (objects, shape strings or integers) left to right", []string{"exprs"}, map[string]string{"exprs": "array"}),
		ts("collect", "Merge terms of equal shape", []string{"expr"}, map[string]string{"expr": "operand"}),
		ts("prune", "Drop zero-coefficient terms", []string{"expr"}, map[string]string{"expr": "operand"}),
		ts("to_latex", "Render as a sum of monomial symmetric functions m_λ", []string{"expr"}, map[string]string{"expr": "operand"}),
		ts("canonicalize", "Canonical spelling and partition of a shape", []string{"shape"}, map[string]string{"shape": "string"}),
		ts("multiplicity", "Number of monomials of a shape over the ring's variables", []string{"shape"}, map[string]string{"shape": "string"}),
		ts("enumerate", "List the monomials of a shape", []string{"shape"}, map[string]string{"shape": "string"}),
		ts("ring_info", "Variable count and symbols of the ring", []string{}, map[string]string{}),
		ts("mcp_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		if typ == "operand" {
			properties[k] = map[string]interface{}{
				"type":        []string{"object", "string", "integer"},
				"description": "expression object, shape string (\"a2b\" is Σa2b) or integer scalar",
			}
			continue
		}
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
