package symgraph

import (
	"strings"
)

// Add is the sum of two or more terms.
type Add struct{ terms []Node }

// AddOf returns the sum of terms. It panics with an error wrapping
// ErrMalformed if fewer than two terms are given or any term is nil.
func AddOf(terms ...Node) *Add { return mustApply(KindAdd, terms...).(*Add) }

func (a *Add) Kind() Kind             { return KindAdd }
func (a *Add) precedence() precedence { return precAdd }
func (a *Add) localPartial(int) Node  { return NewConstant(1) }

func (a *Add) Arguments() []Node {
	out := make([]Node, len(a.terms))
	copy(out, a.terms)
	return out
}

// Partial counts the terms equal to target: x + y + x differentiates to 2
// with respect to x.
func (a *Add) Partial(target Node) Node { return partialOf(a, a.terms, target) }

func (a *Add) Value() float64 {
	acc := 0.0
	for _, t := range a.terms {
		acc += t.Value()
	}
	return acc
}

func (a *Add) Equal(other Node) bool {
	o, ok := other.(*Add)
	return ok && (a == o || argsEqual(a.terms, o.terms))
}

func (a *Add) String() string {
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = operand(t, precAdd, false)
	}
	return strings.Join(parts, " + ")
}

func (a *Add) LaTeX() string {
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = operandLaTeX(t, precAdd, false)
	}
	return strings.Join(parts, " + ")
}
