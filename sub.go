package symgraph

// Sub is left - right.
type Sub struct{ left, right Node }

// SubOf returns left - right. It panics with an error wrapping ErrMalformed
// if either side is nil.
func SubOf(left, right Node) *Sub { return mustApply(KindSub, left, right).(*Sub) }

func (s *Sub) Kind() Kind               { return KindSub }
func (s *Sub) Arguments() []Node        { return []Node{s.left, s.right} }
func (s *Sub) Left() Node               { return s.left }
func (s *Sub) Right() Node              { return s.right }
func (s *Sub) precedence() precedence   { return precAdd }
func (s *Sub) Value() float64           { return s.left.Value() - s.right.Value() }
func (s *Sub) Partial(target Node) Node { return partialOf(s, []Node{s.left, s.right}, target) }

func (s *Sub) localPartial(i int) Node {
	if i == 0 {
		return NewConstant(1)
	}
	return NewConstant(-1)
}

func (s *Sub) Equal(other Node) bool {
	o, ok := other.(*Sub)
	return ok && (s == o || s.left.Equal(o.left) && s.right.Equal(o.right))
}

func (s *Sub) String() string {
	return operand(s.left, precAdd, false) + " - " + operand(s.right, precAdd, true)
}

func (s *Sub) LaTeX() string {
	return operandLaTeX(s.left, precAdd, false) + " - " + operandLaTeX(s.right, precAdd, true)
}
