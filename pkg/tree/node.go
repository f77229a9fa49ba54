package tree

// Node is a typed tree node. Nil and empty Children both mark a leaf.
type Node[T any] struct {
	Value    T
	Children []Node[T]
}

// Flatten returns the values of nodes in depth-first order with every child
// placed before its parent.
func Flatten[T any](nodes []Node[T]) []T {
	var flat []T
	var push func([]Node[T])
	push = func(level []Node[T]) {
		for _, n := range level {
			if len(n.Children) > 0 {
				push(n.Children)
			}
			flat = append(flat, n.Value)
		}
	}
	push(nodes)
	if flat == nil {
		return []T{}
	}
	return flat
}
