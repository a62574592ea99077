package symgraph

import (
	"math"
)

// Pow is base^exp, evaluated with math.Pow.
type Pow struct{ base, exp Node }

// PowOf returns base^exp. It panics with an error wrapping ErrMalformed if
// either side is nil.
func PowOf(base, exp Node) *Pow { return mustApply(KindPow, base, exp).(*Pow) }

func (p *Pow) Kind() Kind               { return KindPow }
func (p *Pow) Arguments() []Node        { return []Node{p.base, p.exp} }
func (p *Pow) Base() Node               { return p.base }
func (p *Pow) Exponent() Node           { return p.exp }
func (p *Pow) precedence() precedence   { return precPow }
func (p *Pow) Value() float64           { return math.Pow(p.base.Value(), p.exp.Value()) }
func (p *Pow) Partial(target Node) Node { return partialOf(p, []Node{p.base, p.exp}, target) }

// localPartial is exp*base^(exp-1) for the base and base^exp*log(base) for
// the exponent. A constant exponent is decremented in place, and a constant
// exponent of 0 or 1 folds the product away.
func (p *Pow) localPartial(i int) Node {
	if i == 1 {
		return MulOf(p, LogOf(p.base))
	}
	var lowered Node
	if c, ok := p.exp.(*Constant); ok {
		lowered = NewConstant(c.value - 1)
	} else {
		lowered = SubOf(p.exp, NewConstant(1))
	}
	return productOf(p.exp, PowOf(p.base, lowered))
}

func (p *Pow) Equal(other Node) bool {
	o, ok := other.(*Pow)
	return ok && (p == o || p.base.Equal(o.base) && p.exp.Equal(o.exp))
}

func (p *Pow) String() string {
	return operand(p.base, precPow, true) + "^" + operand(p.exp, precPow, true)
}

func (p *Pow) LaTeX() string {
	return operandLaTeX(p.base, precPow, true) + "^{" + p.exp.LaTeX() + "}"
}
