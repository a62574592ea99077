package tool_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sanity-io/litter"

	"github.com/njchilds90/symgraph/internal/metrics"
	"github.com/njchilds90/symgraph/tool"
)

// request parses a JSON tool call the way the server does.
func request(t *testing.T, s string) tool.Request {
	t.Helper()
	var req tool.Request
	if err := json.Unmarshal([]byte(s), &req); err != nil {
		t.Fatalf("bad request %s: %v", s, err)
	}
	return req
}

const (
	docX  = `{"type":"var","name":"x","value":2}`
	docY  = `{"type":"var","name":"y","value":3}`
	docXY = `{"type":"mul","args":[` + docX + `,` + docY + `]}`
)

func TestHandle_Strings(t *testing.T) {
	tests := []struct {
		name string
		req  string
		want string
	}{
		{"render", `{"tool":"render","params":{"expr":` + docXY + `}}`, "x*y"},
		{"partial x", `{"tool":"partial","params":{"expr":` + docXY + `,"target":{"type":"var","name":"x"}}}`, "y"},
		{"partial y", `{"tool":"partial","params":{"expr":` + docXY + `,"target":{"type":"var","name":"y"}}}`, "x"},
		{"partial absent", `{"tool":"partial","params":{"expr":` + docXY + `,"target":{"type":"var","name":"w"}}}`, "0"},
		{"derivative", `{"tool":"derivative","params":{"expr":{"type":"sin","args":[` + docXY + `]},"target":{"type":"var","name":"x"}}}`, "cos(x*y)*y"},
		{"gradient", `{"tool":"gradient","params":{"expr":` + docXY + `,"targets":[{"type":"var","name":"x"},{"type":"var","name":"y"}]}}`, "[y, x]"},
		{"arguments", `{"tool":"arguments","params":{"expr":` + docXY + `}}`, "[x, y]"},
		{"variables", `{"tool":"variables","params":{"expr":` + docXY + `}}`, "x, y"},
		{"evaluate", `{"tool":"evaluate","params":{"expr":` + docXY + `}}`, "6"},
		{"evaluate bound", `{"tool":"evaluate","params":{"expr":` + docXY + `,"bindings":{"x":10}}}`, "30"},
		{"equal", `{"tool":"equal","params":{"a":` + docXY + `,"b":` + docXY + `}}`, "true"},
		{"not equal", `{"tool":"equal","params":{"a":` + docX + `,"b":` + docY + `}}`, "false"},
		{"hessian", `{"tool":"hessian","params":{"expr":` + docXY + `,"targets":[{"type":"var","name":"x"},{"type":"var","name":"y"}]}}`, "[[0, 1], [1, 0]]"},
	}
	for _, tc := range tests {
		resp := tool.HandleToolCall(request(t, tc.req))
		if resp.Error != "" {
			t.Errorf("%s: unexpected error: %s", tc.name, resp.Error)
			continue
		}
		if resp.String != tc.want {
			t.Errorf("%s: want %q, got %q", tc.name, tc.want, resp.String)
		}
	}
}

func TestHandle_LaTeX(t *testing.T) {
	resp := tool.HandleToolCall(request(t, `{"tool":"latex","params":{"expr":{"type":"div","args":[`+docX+`,`+docY+`]}}}`))
	if resp.LaTeX != `\frac{x}{y}` {
		t.Errorf("want \\frac{x}{y}, got %q (%s)", resp.LaTeX, resp.Error)
	}
}

func TestHandle_ResultDocument(t *testing.T) {
	resp := tool.HandleToolCall(request(t, `{"tool":"partial","params":{"expr":`+docXY+`,"target":`+docX+`}}`))
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	lo := &litter.Options{HidePrivateFields: true, HideZeroValues: true}
	t.Logf("response: %s", lo.Sdump(resp))
	b, err := json.Marshal(resp.Result)
	if err != nil {
		t.Fatal(err)
	}
	var got, want interface{}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(docY), &want); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestHandle_EvaluateSpecialValue(t *testing.T) {
	resp := tool.HandleToolCall(request(t, `{"tool":"evaluate","params":{"expr":{"type":"div","args":[{"type":"const","value":1},{"type":"const","value":0}]}}}`))
	if resp.Result != "+Inf" || resp.String != "+Inf" {
		t.Errorf("want +Inf, got %v / %q", resp.Result, resp.String)
	}
	if _, err := json.Marshal(resp); err != nil {
		t.Errorf("response must stay encodable: %v", err)
	}
}

func TestHandle_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown tool":      `{"tool":"integrate","params":{}}`,
		"missing expr":      `{"tool":"render","params":{}}`,
		"no params":         `{"tool":"render"}`,
		"expr not object":   `{"tool":"render","params":{"expr":3}}`,
		"malformed expr":    `{"tool":"render","params":{"expr":{"type":"mul","args":[` + docX + `]}}}`,
		"targets not array": `{"tool":"gradient","params":{"expr":` + docX + `,"targets":{}}}`,
		"unknown binding":   `{"tool":"evaluate","params":{"expr":` + docX + `,"bindings":{"q":1}}}`,
		"bad binding":       `{"tool":"evaluate","params":{"expr":` + docX + `,"bindings":{"x":"one"}}}`,
	}
	for name, in := range tests {
		resp := tool.HandleToolCall(request(t, in))
		if resp.Error == "" {
			t.Errorf("%s: expected an error, got %s", name, litter.Sdump(resp))
		}
		if resp.Result != nil || resp.String != "" {
			t.Errorf("%s: failed calls carry only the error, got %s", name, litter.Sdump(resp))
		}
	}
}

func TestHandle_LogsAndCounts(t *testing.T) {
	var m metrics.Metrics
	if err := m.Init(); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	var logged []string
	h := &tool.Handler{
		Logf: func(format string, v ...interface{}) {
			logged = append(logged, format)
		},
		Metrics: &m,
	}
	h.Handle(request(t, `{"tool":"render","params":{"expr":`+docXY+`}}`))
	h.Handle(request(t, `{"tool":"render","params":{}}`))
	h.Handle(request(t, `{"tool":"nope"}`))

	if len(logged) != 2 {
		t.Errorf("want 2 log lines, got %d", len(logged))
	}
	n, err := testutil.GatherAndCount(m.Registry(), "symgraph_tool_calls_total")
	if err != nil {
		t.Fatalf("GatherAndCount error: %v", err)
	}
	// render ok, render failed, unknown failed
	if n != 3 {
		t.Errorf("want 3 series, got %d", n)
	}
	expected := `
# HELP symgraph_nodes_decoded_total Number of distinct nodes built from expression params.
# TYPE symgraph_nodes_decoded_total counter
symgraph_nodes_decoded_total 3
`
	if err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "symgraph_nodes_decoded_total"); err != nil {
		t.Error(err)
	}
}

func TestSpec(t *testing.T) {
	var spec struct {
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	if err := json.Unmarshal([]byte(tool.Spec()), &spec); err != nil {
		t.Fatalf("schema is not JSON: %v", err)
	}
	var names []string
	for _, s := range spec.Tools {
		names = append(names, s.Name)
		if s.Name == "spec" {
			continue
		}
		// every advertised tool is served
		resp := tool.HandleToolCall(tool.Request{Tool: s.Name})
		if strings.HasPrefix(resp.Error, "unknown tool") {
			t.Errorf("advertised tool %s is not served", s.Name)
		}
	}
	want := []string{"evaluate", "render", "latex", "arguments", "partial", "derivative", "gradient", "hessian", "variables", "equal", "spec"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("tool list mismatch (-want +got):\n%s", diff)
	}
	if resp := tool.HandleToolCall(tool.Request{Tool: "spec"}); resp.String != tool.Spec() {
		t.Error("spec tool should return the schema")
	}
}
