// Package symgraph provides immutable, shareable symbolic expression trees.
//
// Design goals:
//   - A closed set of node kinds behind a single Node interface
//   - Shared subtrees: a child may have any number of parents, never a back-reference
//   - IEEE-754 evaluation against the current variable values
//   - Symbolic partial derivatives with respect to any sub-node
//   - Precedence-correct text and LaTeX rendering
//
// Equality is structural for every kind except Variable, which compares by
// identity. Two variables named "x" are different nodes; differentiating with
// respect to one of them does not see the other.
package symgraph

import (
	"github.com/pkg/errors"
)

// ============================================================
// Core Interface
// ============================================================

// Node is one vertex of an expression tree. The set of implementations is
// closed; only this package can add kinds.
type Node interface {
	// Kind reports which variant this node is.
	Kind() Kind

	// Arguments returns the direct children in operator order. The slice is
	// a copy, meaning that the caller may modify it.
	Arguments() []Node

	// Partial returns the partial derivative of this node with respect to
	// target as a new tree. Only direct arguments are compared against
	// target; use Derivative to chain through deeper subtrees.
	Partial(target Node) Node

	// Value evaluates the tree with the current variable values.
	Value() float64

	String() string
	LaTeX() string

	// Equal reports structural equality, with variables compared by
	// identity.
	Equal(other Node) bool

	precedence() precedence

	// localPartial is the derivative of this node with respect to its i-th
	// argument.
	localPartial(i int) Node
}

// ============================================================
// Kinds
// ============================================================

// Kind tags a node variant.
type Kind int

const (
	KindConstant Kind = iota
	KindVariable
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindNeg
	KindPow
	KindSin
	KindCos
	KindExp
	KindLog
)

var kindNames = [...]string{
	KindConstant: "const",
	KindVariable: "var",
	KindAdd:      "add",
	KindSub:      "sub",
	KindMul:      "mul",
	KindDiv:      "div",
	KindNeg:      "neg",
	KindPow:      "pow",
	KindSin:      "sin",
	KindCos:      "cos",
	KindExp:      "exp",
	KindLog:      "log",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsLeaf reports whether nodes of this kind have no arguments.
func (k Kind) IsLeaf() bool { return k == KindConstant || k == KindVariable }

// KindByName maps the names returned by Kind.String back to kinds.
func KindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// arity returns the minimum and maximum argument count for an operator kind.
// A maximum of -1 means unbounded.
func (k Kind) arity() (lo, hi int) {
	switch k {
	case KindConstant, KindVariable:
		return 0, 0
	case KindAdd:
		return 2, -1
	case KindSub, KindMul, KindDiv, KindPow:
		return 2, 2
	}
	return 1, 1
}

// precedence orders how tightly an operator binds its operands.
type precedence int

const (
	precAdd precedence = iota
	precMul
	precNeg
	precPow
	precAtom
)

// ============================================================
// Construction
// ============================================================

// ErrMalformed is the cause of every construction failure: a nil child, the
// wrong number of arguments, or an unnamed variable.
var ErrMalformed = errors.New("malformed node")

// Apply builds an operator node of the given kind. Unlike the typed
// constructors it reports bad input as an error instead of panicking.
func Apply(kind Kind, args ...Node) (Node, error) {
	if kind.IsLeaf() || kind.String() == "unknown" {
		return nil, errors.Wrapf(ErrMalformed, "%s: not an operator", kind)
	}
	if err := checkArgs(kind, args); err != nil {
		return nil, err
	}
	switch kind {
	case KindAdd:
		terms := make([]Node, len(args))
		copy(terms, args)
		return &Add{terms: terms}, nil
	case KindSub:
		return &Sub{left: args[0], right: args[1]}, nil
	case KindMul:
		return &Mul{first: args[0], second: args[1]}, nil
	case KindDiv:
		return &Div{num: args[0], den: args[1]}, nil
	case KindNeg:
		return &Neg{arg: args[0]}, nil
	case KindPow:
		return &Pow{base: args[0], exp: args[1]}, nil
	}
	return &Func{kind: kind, arg: args[0]}, nil
}

func checkArgs(kind Kind, args []Node) error {
	lo, hi := kind.arity()
	if len(args) < lo || (hi >= 0 && len(args) > hi) {
		if lo == hi {
			return errors.Wrapf(ErrMalformed, "%s: want %d arguments, got %d", kind, lo, len(args))
		}
		return errors.Wrapf(ErrMalformed, "%s: want at least %d arguments, got %d", kind, lo, len(args))
	}
	for i, a := range args {
		if a == nil {
			return errors.Wrapf(ErrMalformed, "%s: argument %d is nil", kind, i)
		}
	}
	return nil
}

func mustApply(kind Kind, args ...Node) Node {
	n, err := Apply(kind, args...)
	if err != nil {
		panic(err)
	}
	return n
}

// ============================================================
// Equality and partials shared by operators
// ============================================================

// Equal is the nil-safe form of a.Equal(b).
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// IsConstantWithValue reports whether n is a Constant holding v. NaN matches
// NaN.
func IsConstantWithValue(n Node, v float64) bool {
	c, ok := n.(*Constant)
	return ok && c.Equal(NewConstant(v))
}

// partialOf applies the one-level rule: 1 when n is the target, otherwise
// the sum of n's local derivatives over every argument equal to the target.
func partialOf(n Node, args []Node, target Node) Node {
	if n.Equal(target) {
		return NewConstant(1)
	}
	var terms []Node
	for i, a := range args {
		if a.Equal(target) {
			terms = append(terms, n.localPartial(i))
		}
	}
	switch len(terms) {
	case 0:
		return NewConstant(0)
	case 1:
		return terms[0]
	}
	return sumOf(terms)
}

func argsEqual(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
