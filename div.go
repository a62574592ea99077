package symgraph

// Div is num/den. Dividing by a zero value follows IEEE-754 and yields ±Inf
// or NaN.
type Div struct{ num, den Node }

// DivOf returns num/den. It panics with an error wrapping ErrMalformed if
// either side is nil.
func DivOf(num, den Node) *Div { return mustApply(KindDiv, num, den).(*Div) }

func (d *Div) Kind() Kind               { return KindDiv }
func (d *Div) Arguments() []Node        { return []Node{d.num, d.den} }
func (d *Div) Numerator() Node          { return d.num }
func (d *Div) Denominator() Node        { return d.den }
func (d *Div) precedence() precedence   { return precMul }
func (d *Div) Value() float64           { return d.num.Value() / d.den.Value() }
func (d *Div) Partial(target Node) Node { return partialOf(d, []Node{d.num, d.den}, target) }

// localPartial is 1/den for the numerator and -(num/(den*den)) for the
// denominator.
func (d *Div) localPartial(i int) Node {
	if i == 0 {
		return DivOf(NewConstant(1), d.den)
	}
	return NegOf(DivOf(d.num, MulOf(d.den, d.den)))
}

func (d *Div) Equal(other Node) bool {
	o, ok := other.(*Div)
	return ok && (d == o || d.num.Equal(o.num) && d.den.Equal(o.den))
}

func (d *Div) String() string {
	return operand(d.num, precMul, false) + "/" + operand(d.den, precMul, true)
}

func (d *Div) LaTeX() string {
	return `\frac{` + d.num.LaTeX() + `}{` + d.den.LaTeX() + `}`
}
