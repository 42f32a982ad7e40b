// SPDX-License-Identifier: MIT
//
// File: iter.go
// Role: Forward and backward cursors over a List.

package strlist

// Iter returns a cursor positioned at the first value of l, or an invalid
// cursor if l is empty.
func (l *List) Iter() *Iter {
	l.init()

	return &Iter{sentinel: &l.sentinel, current: l.sentinel.next}
}

// Valid reports whether the cursor points at a value.
func (it *Iter) Valid() bool {
	return it.current != it.sentinel
}

// Get returns the current value without advancing.
// On an invalid cursor it returns "".
func (it *Iter) Get() string {
	if !it.Valid() {
		return ""
	}

	return it.current.Value
}

// Next advances by one position. It is a no-op once the cursor is invalid.
func (it *Iter) Next() {
	if it.Valid() {
		it.current = it.current.next
	}
}
