package ast

// WalkFunc is called for every item in pre-order. depth is 0 for top-level
// items. Returning false skips the item's body or children.
type WalkFunc func(item Item, depth int) bool

// Walk visits items and their nested bodies and children in source order.
func Walk(items []Item, fn WalkFunc) {
	walk(items, 0, fn)
}

func walk(items []Item, depth int, fn WalkFunc) {
	for _, item := range items {
		if !fn(item, depth) {
			continue
		}
		switch it := item.(type) {
		case *KeywordStatement:
			walk(it.Body, depth+1, fn)
		case *ChildTemplate:
			walk(it.Children, depth+1, fn)
		}
	}
}

// Count returns the number of items of the given kind in the tree.
func Count(items []Item, kind Kind) int {
	n := 0
	Walk(items, func(item Item, _ int) bool {
		if item.Kind() == kind {
			n++
		}
		return true
	})
	return n
}

// MaxDepth returns the deepest nesting level in the tree, 0 for a flat list.
func MaxDepth(items []Item) int {
	max := 0
	Walk(items, func(_ Item, depth int) bool {
		if depth > max {
			max = depth
		}
		return true
	})
	return max
}
