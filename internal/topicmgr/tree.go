package topicmgr

import (
	"fmt"
	"sort"
)

// Node is one element of a registry tree. A node is a leaf iff it carries an
// identifier string; otherwise it groups child nodes under a structural key.
// Nodes are never modified after construction.
type Node struct {
	key      string
	value    string
	leaf     bool
	children []*Node
	index    map[string]*Node
}

// Leaf creates a terminal node holding an identifier.
func Leaf(key, value string) *Node {
	return &Node{key: key, value: value, leaf: true}
}

// Branch creates a grouping node. Child keys must be unique within the branch;
// a repeated key is a construction defect and panics.
func Branch(key string, children ...*Node) *Node {
	n := &Node{
		key:      key,
		children: make([]*Node, 0, len(children)),
		index:    make(map[string]*Node, len(children)),
	}
	for _, child := range children {
		if child == nil {
			continue
		}
		if _, exists := n.index[child.key]; exists {
			panic(fmt.Sprintf("duplicate key %q under %q", child.key, key))
		}
		n.children = append(n.children, child)
		n.index[child.key] = child
	}
	return n
}

// Key returns the structural key of the node.
func (n *Node) Key() string {
	return n.key
}

// IsLeaf reports whether the node holds an identifier.
func (n *Node) IsLeaf() bool {
	return n.leaf
}

// Value returns the identifier of a leaf, or "" for a branch.
func (n *Node) Value() string {
	return n.value
}

// Keys returns the child keys in insertion order.
func (n *Node) Keys() []string {
	keys := make([]string, len(n.children))
	for i, child := range n.children {
		keys[i] = child.key
	}
	return keys
}

// Child returns the direct child with the given key.
func (n *Node) Child(key string) (*Node, bool) {
	if n == nil || n.leaf {
		return nil, false
	}
	child, ok := n.index[key]
	return child, ok
}

// Lookup descends through the given keys.
func (n *Node) Lookup(path ...string) (*Node, bool) {
	current := n
	for _, key := range path {
		next, ok := current.Child(key)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, current != nil
}

// Walk visits every leaf depth-first, passing the structural path below n.
func (n *Node) Walk(fn func(path []string, value string)) {
	if n == nil {
		return
	}
	n.walk(nil, fn)
}

func (n *Node) walk(prefix []string, fn func(path []string, value string)) {
	if n.leaf {
		path := make([]string, len(prefix))
		copy(path, prefix)
		fn(path, n.value)
		return
	}
	for _, child := range n.children {
		child.walk(append(prefix, child.key), fn)
	}
}

// Leaves returns the set of identifiers reachable from n. Identical values
// reached through different paths collapse into one entry; Build rejects such
// catalogs, so for a built registry len(Leaves()) equals the leaf count.
func (n *Node) Leaves() LeafSet {
	set := make(LeafSet)
	n.Walk(func(_ []string, value string) {
		set[value] = struct{}{}
	})
	return set
}

// LeafCount returns the number of leaves, counting duplicates.
func (n *Node) LeafCount() int {
	count := 0
	n.Walk(func([]string, string) { count++ })
	return count
}

// LeafSet is the flattened form of a tree.
type LeafSet map[string]struct{}

// Has reports whether value is in the set.
func (s LeafSet) Has(value string) bool {
	_, ok := s[value]
	return ok
}

// Len returns the number of distinct identifiers.
func (s LeafSet) Len() int {
	return len(s)
}

// Sorted returns the identifiers in lexical order.
func (s LeafSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for value := range s {
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}
