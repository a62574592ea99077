// Package codec converts symgraph trees to and from self-describing JSON and
// YAML documents.
//
// A document is a nested object:
//
//	{"type": "const", "value": 2.5}
//	{"type": "var", "name": "x", "value": 2}
//	{"type": "mul", "args": [<document>, <document>]}
//
// Variable identity is carried by name. Within one Decoder every "var"
// document with the same name resolves to the same *symgraph.Variable, so a
// decoded tree differentiates the way the encoded one did.
package codec

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/njchilds90/symgraph"
)

// ============================================================
// Encoding
// ============================================================

// Encode returns the document for n. It fails if two distinct variables in n
// share a name, since their identity could not survive decoding; every such
// name is reported.
func Encode(n symgraph.Node) (map[string]interface{}, error) {
	if n == nil {
		return nil, errors.New("cannot encode a nil node")
	}
	if err := checkNames(n); err != nil {
		return nil, err
	}
	return encode(n), nil
}

// ToJSON returns the JSON document for n.
func ToJSON(n symgraph.Node) (string, error) {
	doc, err := Encode(n)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(doc)
	return string(b), err
}

// ToYAML returns the YAML document for n.
func ToYAML(n symgraph.Node) (string, error) {
	doc, err := Encode(n)
	if err != nil {
		return "", err
	}
	b, err := yaml.Marshal(doc)
	return string(b), err
}

func checkNames(n symgraph.Node) error {
	byName := map[string][]*symgraph.Variable{}
	for _, v := range symgraph.Variables(n) {
		byName[v.Name()] = append(byName[v.Name()], v)
	}
	names := make([]string, 0, len(byName))
	for name, vs := range byName {
		if len(vs) > 1 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	var result error
	for _, name := range names {
		result = multierror.Append(result, errors.Errorf("%d distinct variables are named %q", len(byName[name]), name))
	}
	return result
}

func encode(n symgraph.Node) map[string]interface{} {
	switch v := n.(type) {
	case *symgraph.Constant:
		return map[string]interface{}{"type": "const", "value": encodeFloat(v.Value())}
	case *symgraph.Variable:
		return map[string]interface{}{"type": "var", "name": v.Name(), "value": encodeFloat(v.Value())}
	}
	args := n.Arguments()
	docs := make([]interface{}, len(args))
	for i, a := range args {
		docs[i] = encode(a)
	}
	return map[string]interface{}{"type": n.Kind().String(), "args": docs}
}

// encodeFloat keeps finite values numeric and spells out the rest, which
// JSON cannot represent.
func encodeFloat(f float64) interface{} {
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
