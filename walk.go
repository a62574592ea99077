package symgraph

// ============================================================
// Traversal
// ============================================================

// Walk visits n and its descendants in pre-order. A subtree shared by
// several parents is visited once. Returning false from fn skips the
// children of the node just visited. Walk uses an explicit stack, so deep
// trees do not grow the goroutine stack.
func Walk(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}
	seen := map[Node]struct{}{}
	stack := []Node{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[top]; ok {
			continue
		}
		seen[top] = struct{}{}
		if !fn(top) {
			continue
		}
		args := top.Arguments()
		for i := len(args) - 1; i >= 0; i-- { // keep left-to-right visiting order
			stack = append(stack, args[i])
		}
	}
}

// Variables returns the distinct variables under n, by identity, in the order
// they are first met.
func Variables(n Node) []*Variable {
	var out []*Variable
	Walk(n, func(m Node) bool {
		if v, ok := m.(*Variable); ok {
			out = append(out, v)
		}
		return true
	})
	return out
}

// DependsOn reports whether target occurs anywhere in n, n included.
func DependsOn(n, target Node) bool {
	found := false
	Walk(n, func(m Node) bool {
		if found {
			return false
		}
		if m.Equal(target) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Count returns the number of distinct nodes in the graph rooted at n.
func Count(n Node) int {
	count := 0
	Walk(n, func(Node) bool {
		count++
		return true
	})
	return count
}

// postOrder lists the distinct nodes under n with every child before its
// parents. Nodes matching stop are listed but not descended into.
func postOrder(n Node, stop func(Node) bool) []Node {
	type frame struct {
		node     Node
		expanded bool
	}
	var out []Node
	seen := map[Node]struct{}{}
	stack := []frame{{node: n}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.expanded {
			out = append(out, top.node)
			continue
		}
		if _, ok := seen[top.node]; ok {
			continue
		}
		seen[top.node] = struct{}{}
		stack = append(stack, frame{node: top.node, expanded: true})
		if stop(top.node) {
			continue
		}
		args := top.node.Arguments()
		for i := len(args) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: args[i]})
		}
	}
	return out
}
