package symgraph

import (
	"github.com/pkg/errors"
)

// Variable is a named leaf whose value can be reassigned with SetValue.
// Identity matters: Equal is pointer equality, never name equality.
//
// Variable does no locking. Calling SetValue while another goroutine
// evaluates a tree containing the variable is a data race; callers that
// share variables across goroutines must synchronize themselves.
type Variable struct {
	name  string
	value float64
}

// NewVariable returns a new, distinct variable. It panics with an error
// wrapping ErrMalformed if name is empty.
func NewVariable(name string, value float64) *Variable {
	if name == "" {
		panic(errors.Wrap(ErrMalformed, "var: empty name"))
	}
	return &Variable{name: name, value: value}
}

func (v *Variable) Kind() Kind               { return KindVariable }
func (v *Variable) Arguments() []Node        { return []Node{} }
func (v *Variable) Value() float64           { return v.value }
func (v *Variable) Name() string             { return v.name }
func (v *Variable) String() string           { return v.name }
func (v *Variable) LaTeX() string            { return v.name }
func (v *Variable) precedence() precedence   { return precAtom }
func (v *Variable) localPartial(int) Node    { return NewConstant(0) }
func (v *Variable) Partial(target Node) Node { return leafPartial(v, target) }

// SetValue replaces the current value. Trees holding v see the new value on
// their next evaluation.
func (v *Variable) SetValue(value float64) { v.value = value }

func (v *Variable) Equal(other Node) bool {
	o, ok := other.(*Variable)
	return ok && v == o
}
