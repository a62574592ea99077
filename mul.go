package symgraph

// Mul is the product of exactly two factors.
type Mul struct{ first, second Node }

// MulOf returns first*second. It panics with an error wrapping ErrMalformed
// if either factor is nil.
func MulOf(first, second Node) *Mul { return mustApply(KindMul, first, second).(*Mul) }

func (m *Mul) Kind() Kind             { return KindMul }
func (m *Mul) Arguments() []Node      { return []Node{m.first, m.second} }
func (m *Mul) First() Node            { return m.first }
func (m *Mul) Second() Node           { return m.second }
func (m *Mul) precedence() precedence { return precMul }

// Partial returns the other factor when one factor is target, and 0 when
// neither is. When both factors are target, as in x*x, it returns the sum
// of both local derivatives (x + x) rather than the second factor alone.
func (m *Mul) Partial(target Node) Node {
	return partialOf(m, []Node{m.first, m.second}, target)
}

func (m *Mul) localPartial(i int) Node {
	if i == 0 {
		return m.second
	}
	return m.first
}

func (m *Mul) Value() float64 { return m.first.Value() * m.second.Value() }

func (m *Mul) Equal(other Node) bool {
	o, ok := other.(*Mul)
	return ok && (m == o || m.first.Equal(o.first) && m.second.Equal(o.second))
}

func (m *Mul) String() string {
	return operand(m.first, precMul, false) + "*" + operand(m.second, precMul, false)
}

func (m *Mul) LaTeX() string {
	return operandLaTeX(m.first, precMul, false) + ` \cdot ` + operandLaTeX(m.second, precMul, false)
}
