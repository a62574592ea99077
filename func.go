package symgraph

import (
	"math"
)

// Func applies one of the elementary functions sin, cos, exp or log (natural)
// to a single argument.
type Func struct {
	kind Kind
	arg  Node
}

func SinOf(arg Node) *Func { return mustApply(KindSin, arg).(*Func) }
func CosOf(arg Node) *Func { return mustApply(KindCos, arg).(*Func) }
func ExpOf(arg Node) *Func { return mustApply(KindExp, arg).(*Func) }
func LogOf(arg Node) *Func { return mustApply(KindLog, arg).(*Func) }

func (f *Func) Kind() Kind               { return f.kind }
func (f *Func) Arguments() []Node        { return []Node{f.arg} }
func (f *Func) Arg() Node                { return f.arg }
func (f *Func) FuncName() string         { return f.kind.String() }
func (f *Func) precedence() precedence   { return precAtom }
func (f *Func) Partial(target Node) Node { return partialOf(f, []Node{f.arg}, target) }
func (f *Func) String() string           { return f.kind.String() + "(" + f.arg.String() + ")" }

func (f *Func) localPartial(int) Node {
	switch f.kind {
	case KindSin:
		return CosOf(f.arg)
	case KindCos:
		return NegOf(SinOf(f.arg))
	case KindExp:
		return f
	}
	return DivOf(NewConstant(1), f.arg)
}

func (f *Func) Value() float64 {
	v := f.arg.Value()
	switch f.kind {
	case KindSin:
		return math.Sin(v)
	case KindCos:
		return math.Cos(v)
	case KindExp:
		return math.Exp(v)
	}
	return math.Log(v)
}

func (f *Func) Equal(other Node) bool {
	o, ok := other.(*Func)
	return ok && (f == o || f.kind == o.kind && f.arg.Equal(o.arg))
}

func (f *Func) LaTeX() string {
	name := `\` + f.kind.String()
	if f.kind == KindLog {
		name = `\ln`
	}
	return name + `\left(` + f.arg.LaTeX() + `\right)`
}
