package symgraph

// operand renders a child of an operator with the given precedence. The
// child is parenthesized when it binds more weakly than its parent, or
// equally when tight is set (right side of - and /, both sides of ^).
func operand(child Node, parent precedence, tight bool) string {
	s := child.String()
	if needsParens(child, parent, tight) {
		return "(" + s + ")"
	}
	return s
}

func operandLaTeX(child Node, parent precedence, tight bool) string {
	s := child.LaTeX()
	if needsParens(child, parent, tight) {
		return `\left(` + s + `\right)`
	}
	return s
}

func needsParens(child Node, parent precedence, tight bool) bool {
	p := child.precedence()
	return p < parent || (tight && p == parent)
}
