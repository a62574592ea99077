package symgraph

import (
	"math"
	"strconv"
)

// Constant is a leaf holding a fixed float64.
type Constant struct{ value float64 }

// NewConstant returns a constant leaf.
func NewConstant(v float64) *Constant { return &Constant{value: v} }

func (c *Constant) Kind() Kind               { return KindConstant }
func (c *Constant) Arguments() []Node        { return []Node{} }
func (c *Constant) Value() float64           { return c.value }
func (c *Constant) localPartial(int) Node    { return NewConstant(0) }
func (c *Constant) Partial(target Node) Node { return leafPartial(c, target) }
func (c *Constant) IsZero() bool             { return c.value == 0 }
func (c *Constant) IsOne() bool              { return c.value == 1 }

func (c *Constant) precedence() precedence {
	if math.Signbit(c.value) && !math.IsNaN(c.value) {
		return precNeg
	}
	return precAtom
}

// Equal compares by value. NaN equals NaN so that equality stays reflexive,
// and 0 equals -0.
func (c *Constant) Equal(other Node) bool {
	o, ok := other.(*Constant)
	if !ok {
		return false
	}
	if math.IsNaN(c.value) || math.IsNaN(o.value) {
		return math.IsNaN(c.value) && math.IsNaN(o.value)
	}
	return c.value == o.value
}

func (c *Constant) String() string {
	switch {
	case math.IsInf(c.value, 1):
		return "Inf"
	case math.IsInf(c.value, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(c.value, 'g', -1, 64)
}

func (c *Constant) LaTeX() string {
	switch {
	case math.IsNaN(c.value):
		return `\mathrm{NaN}`
	case math.IsInf(c.value, 1):
		return `\infty`
	case math.IsInf(c.value, -1):
		return `-\infty`
	}
	return c.String()
}

func leafPartial(n Node, target Node) Node {
	if n.Equal(target) {
		return NewConstant(1)
	}
	return NewConstant(0)
}
