package deque

import "cmp"

// cursor is the shared representation of every iterator kind: the ring it
// walks and a logical position in it. It never owns the ring.
type cursor[T any] struct {
	r   *ring[T]
	pos int
}

func (c cursor[T]) add(n int) cursor[T] { return cursor[T]{c.r, c.pos + n} }
func (c cursor[T]) slot() *T           { return c.r.slot(c.pos) }

// Iterator is a random-access position in a Deque. It is a small value meant
// to be copied freely; every method returns a new Iterator instead of
// modifying the receiver.
//
// The zero Iterator points nowhere and must not be used. Dereferencing End,
// or any Iterator issued before an operation that may reallocate, is
// undefined behavior, and so is comparing Iterators from different Deques
// with anything but Equal. Swap does not invalidate Iterators.
type Iterator[T any] struct {
	c cursor[T]
}

// Begin returns an Iterator to the first element.
func (d *Deque[T]) Begin() Iterator[T] { return Iterator[T]{cursor[T]{d.r, 0}} }

// End returns an Iterator just past the last element.
func (d *Deque[T]) End() Iterator[T] { return Iterator[T]{cursor[T]{d.r, d.r.size}} }

// Index returns the logical position the Iterator points at.
func (it Iterator[T]) Index() int { return it.c.pos }

// Next returns an Iterator to the following element.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{it.c.add(1)} }

// Prev returns an Iterator to the preceding element.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{it.c.add(-1)} }

// Add returns an Iterator n elements ahead. n may be negative.
func (it Iterator[T]) Add(n int) Iterator[T] { return Iterator[T]{it.c.add(n)} }

// Sub returns an Iterator n elements behind. n may be negative.
func (it Iterator[T]) Sub(n int) Iterator[T] { return Iterator[T]{it.c.add(-n)} }

// Diff returns the number of elements from o to it.
func (it Iterator[T]) Diff(o Iterator[T]) int { return it.c.pos - o.c.pos }

// Get returns the element the Iterator points at.
func (it Iterator[T]) Get() T { return *it.c.slot() }

// At returns the element n positions away from the Iterator.
func (it Iterator[T]) At(n int) T { return *it.c.add(n).slot() }

// Ptr returns a pointer to the element the Iterator points at. The pointer is
// invalidated by reallocation, like the Iterator itself.
func (it Iterator[T]) Ptr() *T { return it.c.slot() }

// Set replaces the element the Iterator points at with t, destroying the old
// one. The Deque takes ownership of t without copying it.
func (it Iterator[T]) Set(t T) {
	p := it.c.r.phys(it.c.pos)
	it.c.r.slots.destroyAt(p)
	it.c.r.slots.constructAt(p, t)
}

// Equal reports whether both Iterators point at the same position of the
// same Deque.
func (it Iterator[T]) Equal(o Iterator[T]) bool { return it.c == o.c }

// Less reports whether it comes before o.
func (it Iterator[T]) Less(o Iterator[T]) bool { return it.c.pos < o.c.pos }

// Compare returns -1, 0 or +1 depending on whether it comes before, at or
// after o.
func (it Iterator[T]) Compare(o Iterator[T]) int { return cmp.Compare(it.c.pos, o.c.pos) }

// Const converts the Iterator to a ConstIterator at the same position. There
// is no conversion back.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{cc: it.c} }

// ConstIterator is an Iterator that cannot modify the Deque. Obtain one from
// CBegin, CEnd or Iterator.Const.
type ConstIterator[T any] struct {
	cc cursor[T]
}

// CBegin returns a ConstIterator to the first element.
func (d *Deque[T]) CBegin() ConstIterator[T] { return d.Begin().Const() }

// CEnd returns a ConstIterator just past the last element.
func (d *Deque[T]) CEnd() ConstIterator[T] { return d.End().Const() }

// Index returns the logical position the ConstIterator points at.
func (it ConstIterator[T]) Index() int { return it.cc.pos }

// Next returns a ConstIterator to the following element.
func (it ConstIterator[T]) Next() ConstIterator[T] { return ConstIterator[T]{it.cc.add(1)} }

// Prev returns a ConstIterator to the preceding element.
func (it ConstIterator[T]) Prev() ConstIterator[T] { return ConstIterator[T]{it.cc.add(-1)} }

// Add returns a ConstIterator n elements ahead. n may be negative.
func (it ConstIterator[T]) Add(n int) ConstIterator[T] { return ConstIterator[T]{it.cc.add(n)} }

// Sub returns a ConstIterator n elements behind. n may be negative.
func (it ConstIterator[T]) Sub(n int) ConstIterator[T] { return ConstIterator[T]{it.cc.add(-n)} }

// Diff returns the number of elements from o to it.
func (it ConstIterator[T]) Diff(o ConstIterator[T]) int { return it.cc.pos - o.cc.pos }

// Get returns the element the ConstIterator points at.
func (it ConstIterator[T]) Get() T { return *it.cc.slot() }

// At returns the element n positions away from the ConstIterator.
func (it ConstIterator[T]) At(n int) T { return *it.cc.add(n).slot() }

// Equal reports whether both ConstIterators point at the same position of
// the same Deque.
func (it ConstIterator[T]) Equal(o ConstIterator[T]) bool { return it.cc == o.cc }

// Less reports whether it comes before o.
func (it ConstIterator[T]) Less(o ConstIterator[T]) bool { return it.cc.pos < o.cc.pos }

// Compare returns -1, 0 or +1 depending on whether it comes before, at or
// after o.
func (it ConstIterator[T]) Compare(o ConstIterator[T]) int { return cmp.Compare(it.cc.pos, o.cc.pos) }

// ReverseIterator walks a Deque from back to front. It wraps the forward
// Iterator one past the element it points at, so RBegin wraps End.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// RBegin returns a ReverseIterator to the last element.
func (d *Deque[T]) RBegin() ReverseIterator[T] { return ReverseIterator[T]{d.End()} }

// REnd returns a ReverseIterator just before the first element.
func (d *Deque[T]) REnd() ReverseIterator[T] { return ReverseIterator[T]{d.Begin()} }

// Base returns the underlying forward Iterator, which points one element
// after the ReverseIterator.
func (it ReverseIterator[T]) Base() Iterator[T] { return it.base }

// Next returns a ReverseIterator to the preceding element of the Deque.
func (it ReverseIterator[T]) Next() ReverseIterator[T] { return ReverseIterator[T]{it.base.Prev()} }

// Prev returns a ReverseIterator to the following element of the Deque.
func (it ReverseIterator[T]) Prev() ReverseIterator[T] { return ReverseIterator[T]{it.base.Next()} }

// Add returns a ReverseIterator n steps further towards the front.
func (it ReverseIterator[T]) Add(n int) ReverseIterator[T] { return ReverseIterator[T]{it.base.Sub(n)} }

// Sub returns a ReverseIterator n steps back towards the back.
func (it ReverseIterator[T]) Sub(n int) ReverseIterator[T] { return ReverseIterator[T]{it.base.Add(n)} }

// Diff returns the number of steps from o to it.
func (it ReverseIterator[T]) Diff(o ReverseIterator[T]) int { return o.base.Diff(it.base) }

// Get returns the element the ReverseIterator points at.
func (it ReverseIterator[T]) Get() T { return it.base.At(-1) }

// At returns the element n steps away from the ReverseIterator.
func (it ReverseIterator[T]) At(n int) T { return it.base.At(-n - 1) }

// Ptr returns a pointer to the element the ReverseIterator points at.
func (it ReverseIterator[T]) Ptr() *T { return it.base.Prev().Ptr() }

// Set replaces the element the ReverseIterator points at, like Iterator.Set.
func (it ReverseIterator[T]) Set(t T) { it.base.Prev().Set(t) }

// Equal reports whether both ReverseIterators point at the same position of
// the same Deque.
func (it ReverseIterator[T]) Equal(o ReverseIterator[T]) bool { return it.base.Equal(o.base) }

// Less reports whether it comes before o in reverse order.
func (it ReverseIterator[T]) Less(o ReverseIterator[T]) bool { return o.base.Less(it.base) }

// Compare is like Iterator.Compare in reverse order.
func (it ReverseIterator[T]) Compare(o ReverseIterator[T]) int { return o.base.Compare(it.base) }

// Const converts the ReverseIterator to a ConstReverseIterator.
func (it ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.base.Const()}
}

// ConstReverseIterator is a ReverseIterator that cannot modify the Deque.
type ConstReverseIterator[T any] struct {
	base ConstIterator[T]
}

// CRBegin returns a ConstReverseIterator to the last element.
func (d *Deque[T]) CRBegin() ConstReverseIterator[T] { return ConstReverseIterator[T]{d.CEnd()} }

// CREnd returns a ConstReverseIterator just before the first element.
func (d *Deque[T]) CREnd() ConstReverseIterator[T] { return ConstReverseIterator[T]{d.CBegin()} }

// Base returns the underlying forward ConstIterator.
func (it ConstReverseIterator[T]) Base() ConstIterator[T] { return it.base }

// Next returns a ConstReverseIterator to the preceding element of the Deque.
func (it ConstReverseIterator[T]) Next() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.base.Prev()}
}

// Prev returns a ConstReverseIterator to the following element of the Deque.
func (it ConstReverseIterator[T]) Prev() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.base.Next()}
}

// Add returns a ConstReverseIterator n steps further towards the front.
func (it ConstReverseIterator[T]) Add(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.base.Sub(n)}
}

// Sub returns a ConstReverseIterator n steps back towards the back.
func (it ConstReverseIterator[T]) Sub(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it.base.Add(n)}
}

// Diff returns the number of steps from o to it.
func (it ConstReverseIterator[T]) Diff(o ConstReverseIterator[T]) int { return o.base.Diff(it.base) }

// Get returns the element the ConstReverseIterator points at.
func (it ConstReverseIterator[T]) Get() T { return it.base.At(-1) }

// At returns the element n steps away from the ConstReverseIterator.
func (it ConstReverseIterator[T]) At(n int) T { return it.base.At(-n - 1) }

// Equal reports whether both ConstReverseIterators point at the same
// position of the same Deque.
func (it ConstReverseIterator[T]) Equal(o ConstReverseIterator[T]) bool {
	return it.base.Equal(o.base)
}

// Less reports whether it comes before o in reverse order.
func (it ConstReverseIterator[T]) Less(o ConstReverseIterator[T]) bool { return o.base.Less(it.base) }

// Compare is like ConstIterator.Compare in reverse order.
func (it ConstReverseIterator[T]) Compare(o ConstReverseIterator[T]) int {
	return o.base.Compare(it.base)
}
