package ast

// WalkFunc is called for each node during Walk. The parent is nil for the
// root. Returning false skips the node's children.
type WalkFunc func(n Node, parent Node) bool

// Walk traverses the tree rooted at root in pre-order: a node is visited
// before any of its children, children in slot order.
func Walk(root Node, fn WalkFunc) {
	if root == nil {
		return
	}
	walk(root, nil, fn)
}

func walk(n, parent Node, fn WalkFunc) {
	if !fn(n, parent) {
		return
	}
	for _, child := range Children(n) {
		walk(child, n, fn)
	}
}

// Inspect visits every node of the tree in pre-order.
func Inspect(root Node, fn func(Node)) {
	Walk(root, func(n, _ Node) bool {
		fn(n)
		return true
	})
}

// Count returns the number of nodes in the tree.
func Count(root Node) int {
	count := 0
	Inspect(root, func(Node) { count++ })
	return count
}

// Find returns every node of the tree with the given variant tag, in pre-order.
func Find(root Node, tag string) []Node {
	var found []Node
	Inspect(root, func(n Node) {
		if n.Type() == tag {
			found = append(found, n)
		}
	})
	return found
}
