package symgraph

// ============================================================
// Chained derivatives
// ============================================================

// Derivative returns d(f)/d(target) through every level of f, composing the
// one-level Partial rules with the chain rule. It accumulates adjoints from
// f down to target in a single pass over the graph, so a subtree shared by
// several parents is differentiated once.
//
// Nodes equal to target are not descended into. If f does not depend on
// target the result is the constant 0; if f is target it is the constant 1.
// Constant factors of 0 and 1 and constant sums are folded as the result is
// built; no other simplification is done.
func Derivative(f, target Node) Node {
	if f.Equal(target) {
		return NewConstant(1)
	}
	isTarget := func(n Node) bool { return n.Equal(target) }
	order := postOrder(f, isTarget)

	contribs := map[Node][]Node{f: {NewConstant(1)}}
	var found []Node
	for i := len(order) - 1; i >= 0; i-- { // parents before children
		n := order[i]
		terms, ok := contribs[n]
		if !ok {
			continue
		}
		adjoint := sumOf(terms)
		if isTarget(n) {
			found = append(found, adjoint)
			continue
		}
		for j, arg := range n.Arguments() {
			c := productOf(adjoint, n.localPartial(j))
			if IsConstantWithValue(c, 0) {
				continue
			}
			contribs[arg] = append(contribs[arg], c)
		}
	}
	if len(found) == 0 {
		return NewConstant(0)
	}
	return sumOf(found)
}

// Gradient returns Derivative(f, t) for each target, in order.
func Gradient(f Node, targets ...Node) []Node {
	out := make([]Node, len(targets))
	for i, t := range targets {
		out[i] = Derivative(f, t)
	}
	return out
}

// Hessian returns the matrix of second derivatives, row i holding the
// gradient of Derivative(f, targets[i]).
func Hessian(f Node, targets ...Node) [][]Node {
	out := make([][]Node, len(targets))
	for i, ti := range targets {
		out[i] = Gradient(Derivative(f, ti), targets...)
	}
	return out
}

// ============================================================
// Folding builders
// ============================================================

// sumOf adds terms, dropping zeros and merging constants into one trailing
// constant.
func sumOf(terms []Node) Node {
	acc := 0.0
	others := make([]Node, 0, len(terms))
	for _, t := range terms {
		if c, ok := t.(*Constant); ok {
			acc += c.value
			continue
		}
		others = append(others, t)
	}
	if len(others) == 0 {
		return NewConstant(acc)
	}
	if acc != 0 {
		others = append(others, NewConstant(acc))
	}
	if len(others) == 1 {
		return others[0]
	}
	return AddOf(others...)
}

// productOf multiplies a and b, short-circuiting on constant 0, 1 and -1.
func productOf(a, b Node) Node {
	ca, aConst := a.(*Constant)
	cb, bConst := b.(*Constant)
	switch {
	case aConst && bConst:
		return NewConstant(ca.value * cb.value)
	case aConst && ca.value == 0, bConst && cb.value == 0:
		return NewConstant(0)
	case aConst && ca.value == 1:
		return b
	case bConst && cb.value == 1:
		return a
	case aConst && ca.value == -1:
		return NegOf(b)
	case bConst && cb.value == -1:
		return NegOf(a)
	}
	return MulOf(a, b)
}
