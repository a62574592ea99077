package codec

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/njchilds90/symgraph"
)

// Scope maps variable names to the instances a Decoder hands out.
type Scope map[string]*symgraph.Variable

// Decoder builds trees from documents. Every "var" document whose name is
// already in Scope resolves to that variable and its "value" field is
// ignored; new names are added to Scope. Reusing one Decoder for several
// documents makes them share variables. The zero value is ready to use.
type Decoder struct {
	Scope Scope
}

// NewDecoder returns a Decoder with an empty scope.
func NewDecoder() *Decoder { return &Decoder{Scope: Scope{}} }

// FromJSON decodes a JSON document with a fresh Decoder.
func FromJSON(data []byte) (symgraph.Node, error) { return NewDecoder().DecodeJSON(data) }

// FromYAML decodes a YAML document with a fresh Decoder.
func FromYAML(data []byte) (symgraph.Node, error) { return NewDecoder().DecodeYAML(data) }

// Decode builds the tree described by doc.
func (d *Decoder) Decode(doc map[string]interface{}) (symgraph.Node, error) {
	if doc == nil {
		return nil, errors.New("expression must be an object")
	}
	return d.decode(doc)
}

// DecodeJSON parses and decodes a JSON document.
func (d *Decoder) DecodeJSON(data []byte) (symgraph.Node, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "invalid JSON")
	}
	return d.decode(raw)
}

// DecodeYAML parses and decodes a YAML document.
func (d *Decoder) DecodeYAML(data []byte) (symgraph.Node, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "invalid YAML")
	}
	return d.decode(raw)
}

func (d *Decoder) decode(raw interface{}) (symgraph.Node, error) {
	data, ok := asObject(raw)
	if !ok {
		return nil, errors.New("expression must be an object")
	}
	typ, ok := data["type"].(string)
	if !ok || typ == "" {
		return nil, errors.New("field 'type' must be a non-empty string")
	}

	switch typ {
	case "const":
		v, ok := data["value"]
		if !ok {
			return nil, errors.New("const: missing 'value'")
		}
		f, err := asFloat(v)
		if err != nil {
			return nil, errors.Wrap(err, "const: 'value'")
		}
		return symgraph.NewConstant(f), nil

	case "var":
		name, ok := data["name"].(string)
		if !ok || name == "" {
			return nil, errors.New("var: 'name' must be a non-empty string")
		}
		if d.Scope == nil {
			d.Scope = Scope{}
		}
		if v, ok := d.Scope[name]; ok {
			return v, nil
		}
		f := 0.0
		if rv, ok := data["value"]; ok {
			var err error
			if f, err = asFloat(rv); err != nil {
				return nil, errors.Wrapf(err, "var %s: 'value'", name)
			}
		}
		v := symgraph.NewVariable(name, f)
		d.Scope[name] = v
		return v, nil
	}

	kind, ok := symgraph.KindByName(typ)
	if !ok {
		return nil, errors.Errorf("unknown expression type: %s", typ)
	}
	list, ok := data["args"].([]interface{})
	if !ok {
		return nil, errors.Errorf("%s: 'args' must be an array", typ)
	}
	args := make([]symgraph.Node, len(list))
	var result error
	for i, item := range list {
		a, err := d.decode(item)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "%s: args[%d]", typ, i))
			continue
		}
		args[i] = a
	}
	if result != nil {
		return nil, result
	}
	return symgraph.Apply(kind, args...)
}

// asObject accepts both map shapes the JSON and YAML decoders produce.
func asObject(raw interface{}) (map[string]interface{}, bool) {
	switch m := raw.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = v
		}
		return out, true
	}
	return nil, false
}

func asFloat(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		switch v {
		case "NaN":
			return math.NaN(), nil
		case "+Inf", "Inf":
			return math.Inf(1), nil
		case "-Inf":
			return math.Inf(-1), nil
		}
		// YAML decoders hand back exponent forms such as 1e-07 as strings.
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f, nil
		}
	}
	return 0, errors.Errorf("not a number: %v", raw)
}
