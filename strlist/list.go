// SPDX-License-Identifier: MIT
//
// File: list.go
// Role: List mutations and queries. Every head/tail/splice operation is O(1).

package strlist

import (
	"fmt"
	"io"
	"strings"
)

// Len returns the number of values in the list.
func (l *List) Len() int { return l.count }

// IsEmpty reports whether the list holds no values.
func (l *List) IsEmpty() bool { return l.count == 0 }

// Front returns the first node, or nil if the list is empty.
func (l *List) Front() *Node {
	if l.count == 0 {
		return nil
	}

	return l.sentinel.next
}

// Back returns the last node, or nil if the list is empty.
func (l *List) Back() *Node {
	if l.count == 0 {
		return nil
	}

	return l.sentinel.prev
}

// First returns the first value without removing it.
func (l *List) First() (string, bool) {
	if n := l.Front(); n != nil {
		return n.Value, true
	}

	return "", false
}

// Last returns the last value without removing it.
func (l *List) Last() (string, bool) {
	if n := l.Back(); n != nil {
		return n.Value, true
	}

	return "", false
}

// InsertFirst adds value at the head of the list and returns its node.
// Complexity: O(1).
func (l *List) InsertFirst(value string) *Node {
	l.init()
	n := NewNode(value)
	l.link(&l.sentinel, n)

	return n
}

// InsertLast adds value at the tail of the list and returns its node.
// Complexity: O(1).
func (l *List) InsertLast(value string) *Node {
	l.init()
	n := NewNode(value)
	l.link(l.sentinel.prev, n)

	return n
}

// InsertNodeAfter splices the detached node n immediately after ref.
//
// ref must be a node of l; passing a node of another list corrupts both
// lists. Passing nil for ref or n, or an already attached n, is a programming
// error and panics.
// Complexity: O(1).
func (l *List) InsertNodeAfter(ref, n *Node) {
	if ref == nil || n == nil {
		panic("strlist: InsertNodeAfter with nil node")
	}
	if n.attached() {
		panic("strlist: InsertNodeAfter with an attached node")
	}
	if !ref.attached() {
		panic("strlist: InsertNodeAfter with a detached reference")
	}
	l.link(ref, n)
}

// link inserts n after at and bumps the count.
func (l *List) link(at, n *Node) {
	n.prev = at
	n.next = at.next
	at.next.prev = n
	at.next = n
	l.count++
}

// unlink detaches n and leaves it reusable by InsertNodeAfter.
func (l *List) unlink(n *Node) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
	l.count--
}

// PopFirst removes the first value and returns it.
// On an empty list it returns ("", false).
// Complexity: O(1).
func (l *List) PopFirst() (string, bool) {
	n := l.Front()
	if n == nil {
		return "", false
	}
	l.unlink(n)

	return n.Value, true
}

// PopLast removes the last value and returns it.
// On an empty list it returns ("", false).
// Complexity: O(1).
func (l *List) PopLast() (string, bool) {
	n := l.Back()
	if n == nil {
		return "", false
	}
	l.unlink(n)

	return n.Value, true
}

// PopNode detaches n from l without returning its value.
// n must be a node of l; a detached n is ignored.
// Complexity: O(1).
func (l *List) PopNode(n *Node) {
	if n == nil || !n.attached() || n == &l.sentinel {
		return
	}
	l.unlink(n)
}

// Concatenate moves every node of src to the tail of dst, keeping order,
// and leaves src empty.
//
// Errors:
//   - ErrNilList if either list is nil.
//   - ErrSameList if dst == src.
//
// Complexity: O(1).
func Concatenate(dst, src *List) error {
	if dst == nil || src == nil {
		return ErrNilList
	}
	if dst == src {
		return ErrSameList
	}
	dst.init()
	src.init()
	if src.count == 0 {
		return nil
	}

	// 1) Detach src's chain [first..last] from its sentinel.
	first, last := src.sentinel.next, src.sentinel.prev

	// 2) Hook the chain between dst's last node and dst's sentinel.
	tail := dst.sentinel.prev
	tail.next = first
	first.prev = tail
	last.next = &dst.sentinel
	dst.sentinel.prev = last
	dst.count += src.count

	// 3) Reset src to an empty ring.
	src.sentinel.next = &src.sentinel
	src.sentinel.prev = &src.sentinel
	src.count = 0

	return nil
}

// Copy returns a new list holding the same values in the same order.
// Complexity: O(n).
func (l *List) Copy() *List {
	out := New()
	for n := l.Front(); n != nil; n = l.nextOf(n) {
		out.InsertLast(n.Value)
	}

	return out
}

// Contains reports whether value is stored in the list.
// Complexity: O(n).
func (l *List) Contains(value string) bool {
	for n := l.Front(); n != nil; n = l.nextOf(n) {
		if n.Value == value {
			return true
		}
	}

	return false
}

// Next returns the node after n in l, or nil when n is the last node.
func (l *List) Next(n *Node) *Node { return l.nextOf(n) }

// Prev returns the node before n in l, or nil when n is the first node.
func (l *List) Prev(n *Node) *Node {
	if n == nil || n.prev == &l.sentinel {
		return nil
	}

	return n.prev
}

func (l *List) nextOf(n *Node) *Node {
	if n == nil || n.next == &l.sentinel {
		return nil
	}

	return n.next
}

// Values returns a snapshot of the list contents, front to back.
func (l *List) Values() []string {
	out := make([]string, 0, l.count)
	for n := l.Front(); n != nil; n = l.nextOf(n) {
		out = append(out, n.Value)
	}

	return out
}

// String formats the list as "[a, b, c]".
func (l *List) String() string {
	return "[" + strings.Join(l.Values(), ", ") + "]"
}

// Print writes String() followed by a newline to w.
func (l *List) Print(w io.Writer) error {
	_, err := fmt.Fprintln(w, l.String())

	return err
}
