// Package tool exposes symgraph operations as JSON tool calls, for agent
// frameworks and the HTTP server in cmd/symgraph-server.
//
// Expression params are codec documents. All documents in one request are
// decoded with a single codec.Decoder, so {"type": "var", "name": "x"} in
// "expr" and in "target" are the same variable.
package tool

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/njchilds90/symgraph"
	"github.com/njchilds90/symgraph/codec"
	"github.com/njchilds90/symgraph/internal/metrics"
)

// Request is one tool call.
type Request struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

// Response is the result of a tool call. Error is set instead of the other
// fields when the call fails.
type Response struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// Handler dispatches tool calls. The zero value is ready to use.
type Handler struct {
	// Logf, if set, receives one line per failed call.
	Logf func(format string, v ...interface{})
	// Metrics, if set, must have been Init'ed.
	Metrics *metrics.Metrics
}

// HandleToolCall runs req with a zero Handler.
func HandleToolCall(req Request) Response {
	return (&Handler{}).Handle(req)
}

// Handle runs req.
func (obj *Handler) Handle(req Request) Response {
	start := time.Now()
	resp, err := obj.handle(req)
	if err != nil {
		resp = Response{Error: err.Error()}
		if obj.Logf != nil {
			obj.Logf("tool %s: %v", req.Tool, err)
		}
	}
	if obj.Metrics != nil {
		name := req.Tool
		if _, ok := tools[name]; !ok {
			name = "unknown"
		}
		obj.Metrics.UpdateToolCallTotal(name, err != nil, time.Since(start))
	}
	return resp
}

type call struct {
	params  map[string]interface{}
	dec     *codec.Decoder
	metrics *metrics.Metrics
}

type toolFunc func(c *call) (Response, error)

var tools map[string]toolFunc

func init() {
	tools = map[string]toolFunc{
		"evaluate":   evaluate,
		"render":     render,
		"latex":      latex,
		"arguments":  arguments,
		"partial":    partial,
		"derivative": derivative,
		"gradient":   gradient,
		"hessian":    hessian,
		"variables":  variables,
		"equal":      equal,
		"spec": func(*call) (Response, error) {
			return Response{String: Spec()}, nil
		},
	}
}

func (obj *Handler) handle(req Request) (Response, error) {
	fn, ok := tools[req.Tool]
	if !ok {
		return Response{}, errors.Errorf("unknown tool: %s", req.Tool)
	}
	params := req.Params
	if params == nil {
		params = map[string]interface{}{}
	}
	return fn(&call{params: params, dec: codec.NewDecoder(), metrics: obj.Metrics})
}

// ============================================================
// Params
// ============================================================

func (c *call) expr(key string) (symgraph.Node, error) {
	v, ok := c.params[key]
	if !ok {
		return nil, errors.Errorf("missing param: %s", key)
	}
	n, err := c.decode(v)
	if err != nil {
		return nil, errors.Wrapf(err, "param %s", key)
	}
	return n, nil
}

func (c *call) exprList(key string) ([]symgraph.Node, error) {
	v, ok := c.params[key]
	if !ok {
		return nil, errors.Errorf("missing param: %s", key)
	}
	raw, ok := v.([]interface{})
	if !ok {
		return nil, errors.Errorf("param %s must be array", key)
	}
	result := make([]symgraph.Node, len(raw))
	for i, r := range raw {
		n, err := c.decode(r)
		if err != nil {
			return nil, errors.Wrapf(err, "param %s[%d]", key, i)
		}
		result[i] = n
	}
	return result, nil
}

func (c *call) decode(v interface{}) (symgraph.Node, error) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, errors.New("must be an expression object")
	}
	n, err := c.dec.Decode(m)
	if err != nil {
		return nil, err
	}
	if c.metrics != nil {
		c.metrics.AddNodesDecoded(symgraph.Count(n))
	}
	return n, nil
}

// bind applies the optional "bindings" param. It must run after every
// expression param has been decoded, since names resolve through the scope.
func (c *call) bind() error {
	v, ok := c.params["bindings"]
	if !ok {
		return nil
	}
	raw, ok := v.(map[string]interface{})
	if !ok {
		return errors.New("param bindings must be an object")
	}
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f, ok := raw[name].(float64)
		if !ok {
			return errors.Errorf("binding %s must be a number", name)
		}
		variable, ok := c.dec.Scope[name]
		if !ok {
			return errors.Errorf("binding %s: no such variable", name)
		}
		variable.SetValue(f)
	}
	return nil
}

// ============================================================
// Responses
// ============================================================

func respond(n symgraph.Node) (Response, error) {
	doc, err := codec.Encode(n)
	if err != nil {
		return Response{}, err
	}
	return Response{Result: doc, LaTeX: n.LaTeX(), String: n.String()}, nil
}

func respondList(ns []symgraph.Node) (Response, error) {
	docs := make([]interface{}, len(ns))
	strs := make([]string, len(ns))
	tex := make([]string, len(ns))
	for i, n := range ns {
		doc, err := codec.Encode(n)
		if err != nil {
			return Response{}, err
		}
		docs[i] = doc
		strs[i] = n.String()
		tex[i] = n.LaTeX()
	}
	return Response{
		Result: docs,
		LaTeX:  `\left(` + strings.Join(tex, ", ") + `\right)`,
		String: "[" + strings.Join(strs, ", ") + "]",
	}, nil
}

// number keeps JSON-encodable results numeric.
func number(f float64) interface{} {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	return f
}

// ============================================================
// Tools
// ============================================================

func evaluate(c *call) (Response, error) {
	e, err := c.expr("expr")
	if err != nil {
		return Response{}, err
	}
	if err := c.bind(); err != nil {
		return Response{}, err
	}
	v := e.Value()
	return Response{Result: number(v), String: strconv.FormatFloat(v, 'g', -1, 64)}, nil
}

func render(c *call) (Response, error) {
	e, err := c.expr("expr")
	if err != nil {
		return Response{}, err
	}
	return Response{String: e.String()}, nil
}

func latex(c *call) (Response, error) {
	e, err := c.expr("expr")
	if err != nil {
		return Response{}, err
	}
	return Response{LaTeX: e.LaTeX()}, nil
}

func arguments(c *call) (Response, error) {
	e, err := c.expr("expr")
	if err != nil {
		return Response{}, err
	}
	return respondList(e.Arguments())
}

func partial(c *call) (Response, error) {
	e, err := c.expr("expr")
	if err != nil {
		return Response{}, err
	}
	target, err := c.expr("target")
	if err != nil {
		return Response{}, err
	}
	return respond(e.Partial(target))
}

func derivative(c *call) (Response, error) {
	e, err := c.expr("expr")
	if err != nil {
		return Response{}, err
	}
	target, err := c.expr("target")
	if err != nil {
		return Response{}, err
	}
	return respond(symgraph.Derivative(e, target))
}

func gradient(c *call) (Response, error) {
	e, err := c.expr("expr")
	if err != nil {
		return Response{}, err
	}
	targets, err := c.exprList("targets")
	if err != nil {
		return Response{}, err
	}
	return respondList(symgraph.Gradient(e, targets...))
}

func hessian(c *call) (Response, error) {
	e, err := c.expr("expr")
	if err != nil {
		return Response{}, err
	}
	targets, err := c.exprList("targets")
	if err != nil {
		return Response{}, err
	}
	hess := symgraph.Hessian(e, targets...)
	rows := make([]interface{}, len(hess))
	strs := make([]string, len(hess))
	tex := make([]string, len(hess))
	for i, row := range hess {
		r, err := respondList(row)
		if err != nil {
			return Response{}, err
		}
		rows[i] = r.Result
		strs[i] = r.String
		cells := make([]string, len(row))
		for j, h := range row {
			cells[j] = h.LaTeX()
		}
		tex[i] = strings.Join(cells, " & ")
	}
	return Response{
		Result: rows,
		LaTeX:  `\begin{pmatrix}` + strings.Join(tex, ` \\ `) + `\end{pmatrix}`,
		String: "[" + strings.Join(strs, ", ") + "]",
	}, nil
}

func variables(c *call) (Response, error) {
	e, err := c.expr("expr")
	if err != nil {
		return Response{}, err
	}
	vars := symgraph.Variables(e)
	result := make([]interface{}, len(vars))
	names := make([]string, len(vars))
	for i, v := range vars {
		result[i] = map[string]interface{}{"name": v.Name(), "value": number(v.Value())}
		names[i] = v.Name()
	}
	return Response{Result: result, String: strings.Join(names, ", ")}, nil
}

func equal(c *call) (Response, error) {
	a, err := c.expr("a")
	if err != nil {
		return Response{}, err
	}
	b, err := c.expr("b")
	if err != nil {
		return Response{}, err
	}
	eq := symgraph.Equal(a, b)
	return Response{Result: eq, String: strconv.FormatBool(eq)}, nil
}

// ============================================================
// Schema
// ============================================================

// Spec returns the JSON tool schema for agent registration.
func Spec() string {
	specs := []map[string]interface{}{
		ts("evaluate", "Evaluate an expression. Optional bindings {name: number} set variable values first", []string{"expr"}, map[string]string{"expr": "object", "bindings": "object"}),
		ts("render", "Render as plain text with minimal parentheses", []string{"expr"}, map[string]string{"expr": "object"}),
		ts("latex", "Render as LaTeX", []string{"expr"}, map[string]string{"expr": "object"}),
		ts("arguments", "Direct children of the root node", []string{"expr"}, map[string]string{"expr": "object"}),
		ts("partial", "One-level partial derivative w.r.t. a direct argument", []string{"expr", "target"}, map[string]string{"expr": "object", "target": "object"}),
		ts("derivative", "Chain-rule derivative w.r.t. any sub-expression", []string{"expr", "target"}, map[string]string{"expr": "object", "target": "object"}),
		ts("gradient", "Derivatives w.r.t. each of targets", []string{"expr", "targets"}, map[string]string{"expr": "object", "targets": "array"}),
		ts("hessian", "Matrix of second derivatives w.r.t. targets", []string{"expr", "targets"}, map[string]string{"expr": "object", "targets": "array"}),
		ts("variables", "Distinct variables with their current values", []string{"expr"}, map[string]string{"expr": "object"}),
		ts("equal", "Structural equality; variables compare by identity", []string{"a", "b"}, map[string]string{"a": "object", "b": "object"}),
		ts("spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": specs}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
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
