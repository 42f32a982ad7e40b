// Package strlist provides List, an ordered doubly linked sequence of strings
// closed into a ring by a sentinel node.
//
// The sentinel holds no value. Its next pointer is the first element and its
// prev pointer is the last one, so head and tail operations never branch on
// nil. An empty list is a sentinel linked to itself.
//
// Guarantees:
//
//   - InsertFirst, InsertLast, InsertNodeAfter, PopFirst, PopLast, PopNode: O(1).
//   - Concatenate(dst, src): O(1) pointer splice; src is left empty.
//   - Copy: O(n) deep copy, order preserved.
//   - Contains: O(n) scan by value equality.
//   - Len() always equals the number of non-sentinel nodes on the ring.
//
// Iteration:
//
//	for it := l.Iter(); it.Valid(); it.Next() {
//		fmt.Println(it.Get())
//	}
//
// Iter is a one-shot forward cursor. Two iterators over the same list share
// no state. Mutating a list while iterating it is not supported.
//
// Popping from an empty list is an expected state, not an error: PopFirst and
// PopLast return ("", false).
//
// List is not safe for concurrent mutation.
package strlist
