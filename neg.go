package symgraph

// Neg is unary minus.
type Neg struct{ arg Node }

// NegOf returns -arg. It panics with an error wrapping ErrMalformed if arg is
// nil.
func NegOf(arg Node) *Neg { return mustApply(KindNeg, arg).(*Neg) }

func (n *Neg) Kind() Kind               { return KindNeg }
func (n *Neg) Arguments() []Node        { return []Node{n.arg} }
func (n *Neg) Arg() Node                { return n.arg }
func (n *Neg) precedence() precedence   { return precNeg }
func (n *Neg) localPartial(int) Node    { return NewConstant(-1) }
func (n *Neg) Value() float64           { return -n.arg.Value() }
func (n *Neg) Partial(target Node) Node { return partialOf(n, []Node{n.arg}, target) }
func (n *Neg) String() string           { return "-" + operand(n.arg, precNeg, true) }
func (n *Neg) LaTeX() string            { return "-" + operandLaTeX(n.arg, precNeg, true) }

func (n *Neg) Equal(other Node) bool {
	o, ok := other.(*Neg)
	return ok && (n == o || n.arg.Equal(o.arg))
}
