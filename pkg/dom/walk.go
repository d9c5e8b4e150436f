package dom

// Walk visits the descendants of n in tree order, excluding n itself. When fn
// returns false the visited node's subtree is skipped.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	stack := make([]*Node, 0, len(n.children))
	for i := len(n.children) - 1; i >= 0; i-- {
		stack = append(stack, n.children[i])
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur) {
			continue
		}
		for i := len(cur.children) - 1; i >= 0; i-- {
			stack = append(stack, cur.children[i])
		}
	}
}

// treeOrder returns n followed by its descendants in tree order.
func treeOrder(n *Node) []*Node {
	out := []*Node{n}
	Walk(n, func(d *Node) bool {
		out = append(out, d)
		return true
	})
	return out
}
