package gosigma_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/njchilds90/gosigma"
)

func call(r *gosigma.Ring, tool string, params map[string]interface{}) gosigma.ToolResponse {
	return gosigma.HandleToolCall(r, gosigma.ToolRequest{Tool: tool, Params: params})
}

func TestTool_Arithmetic(t *testing.T) {
	r := gosigma.MustRing(2)
	tests := []struct {
		tool   string
		params map[string]interface{}
		want   string
	}{
		{"add", map[string]interface{}{"a": "a", "b": "a"}, "2Σa"},
		{"sub", map[string]interface{}{"a": "a", "b": "a"}, "0"},
		{"mul", map[string]interface{}{"a": "a", "b": "a"}, "Σa2 + 2Σab"},
		{"mul", map[string]interface{}{"a": 3.0, "b": "ab"}, "3Σab"},
		{"neg", map[string]interface{}{"expr": "a2"}, "-Σa2"},
		{"scale", map[string]interface{}{"expr": "a", "k": 4.0}, "4Σa"},
		{"pow", map[string]interface{}{"expr": "a", "e": 3.0}, "Σa3 + 3Σa2b"},
		{"pow", map[string]interface{}{"expr": "a", "e": 0.0}, "Σ"},
		{"product", map[string]interface{}{"exprs": []interface{}{"a", "a", 2.0}}, "2Σa2 + 4Σab"},
		{"prune", map[string]interface{}{"expr": map[string]interface{}{
			"type": "polynomial",
			"terms": []interface{}{
				map[string]interface{}{"shape": "a", "coefficient": "0"},
				map[string]interface{}{"shape": "ab", "coefficient": "2"},
			},
		}}, "2Σab"},
		{"collect", map[string]interface{}{"expr": map[string]interface{}{
			"type": "polynomial",
			"terms": []interface{}{
				map[string]interface{}{"shape": "a", "coefficient": "1"},
				map[string]interface{}{"shape": "a", "coefficient": "2"},
			},
		}}, "3Σa"},
	}
	for _, tc := range tests {
		resp := call(r, tc.tool, tc.params)
		if resp.Error != "" {
			t.Errorf("%s: unexpected error %s", tc.tool, resp.Error)
			continue
		}
		if resp.String != tc.want {
			t.Errorf("%s: want %q, got %q", tc.tool, tc.want, resp.String)
		}
	}
}

func TestTool_ShapeQueries(t *testing.T) {
	r := gosigma.MustRing(3)
	if resp := call(r, "multiplicity", map[string]interface{}{"shape": "a2b"}); resp.String != "6" {
		t.Errorf("multiplicity: want 6, got %q (%s)", resp.String, resp.Error)
	}
	if resp := call(r, "enumerate", map[string]interface{}{"shape": "ab"}); resp.String != "ab + ac + bc" {
		t.Errorf("enumerate: want 'ab + ac + bc', got %q", resp.String)
	}
	if resp := call(r, "canonicalize", map[string]interface{}{"shape": "cb3"}); resp.String != "a3b" || resp.LaTeX != "m_{(3,1)}" {
		t.Errorf("canonicalize: got %q / %q", resp.String, resp.LaTeX)
	}
	if resp := call(r, "to_latex", map[string]interface{}{"expr": "a2b"}); resp.LaTeX != "m_{(2,1)}" {
		t.Errorf("to_latex: got %q", resp.LaTeX)
	}
	if resp := call(r, "ring_info", nil); resp.String != r.String() {
		t.Errorf("ring_info: got %q", resp.String)
	}
}

func TestTool_Errors(t *testing.T) {
	r := gosigma.MustRing(2)
	tests := []struct {
		tool   string
		params map[string]interface{}
		want   string
	}{
		{"nope", nil, "unknown tool"},
		{"mul", map[string]interface{}{"a": "a"}, "missing param: b"},
		{"mul", map[string]interface{}{"a": "abc", "b": "a"}, "invalid shape"},
		{"pow", map[string]interface{}{"expr": "a", "e": -1.0}, "negative exponent"},
		{"pow", map[string]interface{}{"expr": "a", "e": 1.5}, "must be an integer"},
		{"multiplicity", map[string]interface{}{"shape": "abc"}, "invalid shape"},
		{"add", map[string]interface{}{"a": true, "b": "a"}, "invalid type"},
	}
	for _, tc := range tests {
		resp := call(r, tc.tool, tc.params)
		if !strings.Contains(resp.Error, tc.want) {
			t.Errorf("%s: want error containing %q, got %q", tc.tool, tc.want, resp.Error)
		}
	}
}

func TestMCPToolSpec(t *testing.T) {
	spec := gosigma.MCPToolSpec()
	for _, name := range []string{`"mul"`, `"pow"`, `"enumerate"`, `"mcp_spec"`} {
		if !strings.Contains(spec, name) {
			t.Errorf("spec should mention %s", name)
		}
	}
}

func TestMCPToolSpec_OperandTypes(t *testing.T) {
	var doc struct {
		Tools []struct {
			Name        string `json:"name"`
			InputSchema struct {
				Properties map[string]struct {
					Type interface{} `json:"type"`
				} `json:"properties"`
			} `json:"inputSchema"`
		} `json:"tools"`
	}
	if err := json.Unmarshal([]byte(gosigma.MCPToolSpec()), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []interface{}{"object", "string", "integer"}
	checked := 0
	for _, tool := range doc.Tools {
		if tool.Name != "mul" && tool.Name != "neg" {
			continue
		}
		for name, prop := range tool.InputSchema.Properties {
			if !reflect.DeepEqual(prop.Type, want) {
				t.Errorf("%s.%s: want type %v, got %v", tool.Name, name, want, prop.Type)
			}
			checked++
		}
	}
	if checked != 3 {
		t.Errorf("want 3 operand params checked, got %d", checked)
	}

	// every declared form is accepted
	r := gosigma.MustRing(2)
	for _, a := range []interface{}{map[string]interface{}{"type": "term", "shape": "a"}, "a", 2.0} {
		if resp := call(r, "neg", map[string]interface{}{"expr": a}); resp.Error != "" {
			t.Errorf("neg %v: %s", a, resp.Error)
		}
	}
}
