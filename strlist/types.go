// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: List, Node and Iter types, sentinel errors, constructors.

package strlist

import "errors"

// Sentinel errors for list operations.
var (
	// ErrSameList indicates Concatenate was asked to splice a list into itself.
	ErrSameList = errors.New("strlist: cannot concatenate a list with itself")

	// ErrNilList indicates a nil *List was passed where a list is required.
	ErrNilList = errors.New("strlist: list is nil")
)

// Node is one element of a List.
//
// A Node created by NewNode is detached (prev == next == nil) until it is
// spliced with InsertNodeAfter. The sentinel of a List is also a Node, but it
// never carries a value and is never returned to callers.
type Node struct {
	prev *Node
	next *Node

	// Value is the string owned by this node.
	Value string
}

// NewNode allocates a detached node holding value.
func NewNode(value string) *Node {
	return &Node{Value: value}
}

// attached reports whether n is currently linked into a ring.
func (n *Node) attached() bool {
	return n.prev != nil || n.next != nil
}

// List is a doubly linked sequence of strings closed by a sentinel.
//
// The zero value is an empty list ready to use. A List must not be copied
// after first use: the sentinel address is part of the ring.
type List struct {
	sentinel Node
	count    int
}

// New returns an empty list.
// Complexity: O(1).
func New() *List {
	l := &List{}
	l.init()

	return l
}

// init self-links the sentinel. Idempotent on an initialized list.
func (l *List) init() {
	if l.sentinel.next == nil {
		l.sentinel.next = &l.sentinel
		l.sentinel.prev = &l.sentinel
		l.count = 0
	}
}

// Iter is a forward cursor over a List.
//
// An Iter is valid while it points at a value node and invalid once it has
// reached the sentinel again.
type Iter struct {
	sentinel *Node
	current  *Node
}
