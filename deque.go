package deque

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Deque is a double-ended queue with O(1) random access, backed by a single
// circular buffer.
//
// To create a Deque instance, you must use one of the available constructors,
// New(), NewSized(n), NewFilled(n, t), or FromSlice(s). nil Deques panic when
// called, except for Len, Copy and Destroy. Creating a Deque in the following
// way is wrong:
//
//	var deque Deque[int] // wrong
//
// Copying the Deque struct does not copy its elements: both values would
// share one buffer. Use Copy or Assign instead.
//
// The buffer doubles when a push finds it full, and halves whenever a size
// change leaves it at most a quarter full. Any operation that changes the
// size or capacity may reallocate, which invalidates every Iterator and every
// pointer returned by Ptr. Swap is the exception: it moves buffers between
// handles and invalidates nothing.
//
// Elements implementing Copier or Destroyer get their Copy and Destroy
// methods called by the Deque; see those interfaces.
//
// A Deque is not safe for concurrent use.
type Deque[T any] struct {
	r *ring[T]
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// New returns an empty Deque with no buffer. It never allocates element
// storage and never fails.
func New[T any]() *Deque[T] {
	return &Deque[T]{r: new(ring[T])}
}

// NewSized returns a Deque holding n copies of the zero value of T, with a
// capacity of exactly n. Returns an error if n is negative.
func NewSized[T any](n int) (*Deque[T], error) {
	var zero T
	return NewFilled(n, zero)
}

// NewFilled returns a Deque holding n copies of t, with a capacity of exactly
// n. If any copy fails, the copies already made are destroyed and the error
// is returned.
func NewFilled[T any](n int, t T) (*Deque[T], error) {
	if n < 0 {
		return nil, ErrNegativeCapacity
	}
	copies, err := copyN(t, n)
	if err != nil {
		return nil, fmt.Errorf("deque: fill: %w", err)
	}
	d := New[T]()
	d.r.slots = copies
	d.r.size = n
	return d, nil
}

// FromSlice copies every element of s into a new Deque with a capacity of
// len(s). The slice's capacity is irrelevant, and memory is not shared.
func FromSlice[T any](s []T) (*Deque[T], error) {
	d := New[T]()
	if len(s) == 0 {
		return d, nil
	}
	slots := make(block[T], len(s))
	for i, t := range s {
		c, err := copyOf(t)
		if err != nil {
			destroyAll(slots[:i])
			return nil, fmt.Errorf("deque: copy slice: %w", err)
		}
		slots[i] = c
	}
	d.r.slots = slots
	d.r.size = len(s)
	return d, nil
}

// Copy returns a deep copy of the Deque. The copy gets a buffer with the same
// capacity as d, with its elements starting at slot 0. If copying
// an element fails, the elements copied so far are destroyed and the error is
// returned. Copy of a nil Deque is nil.
//
// Copy makes *Deque[T] a Copier, so Deques of Deques copy deeply.
func (d *Deque[T]) Copy() (*Deque[T], error) {
	if d == nil {
		return nil, nil
	}
	c := New[T]()
	if d.r.capacity() == 0 {
		return c, nil
	}
	slots := make(block[T], d.r.capacity())
	for i := range d.r.size {
		t, err := copyOf(*d.r.slot(i))
		if err != nil {
			destroyAll(slots[:i])
			return nil, fmt.Errorf("deque: copy element %d: %w", i, err)
		}
		slots[i] = t
	}
	c.r.slots = slots
	c.r.size = d.r.size
	return c, nil
}

// Assign replaces the contents of d with a copy of src. It copies into a
// temporary and swaps it in, so if a copy fails, d is left untouched.
// Assigning a Deque to itself leaves it unchanged.
func (d *Deque[T]) Assign(src *Deque[T]) error {
	tmp, err := src.Copy()
	if err != nil {
		return err
	}
	if tmp == nil {
		tmp = New[T]()
	}
	Swap(d, tmp)
	tmp.Destroy()
	return nil
}

// Destroy destroys every element and releases the buffer. It is safe to call
// on a nil, empty or already destroyed Deque, and the Deque remains usable
// afterwards.
//
// Destroy makes *Deque[T] a Destroyer, so Deques of Deques are destroyed
// recursively.
func (d *Deque[T]) Destroy() {
	if d == nil || d.r == nil {
		return
	}
	d.r.release()
}

// Swap exchanges the buffers of a and b in O(1). No element is moved, copied
// or destroyed, and Iterators and pointers stay valid: they keep referring to
// the same elements, which now belong to the other Deque.
func Swap[T any](a, b *Deque[T]) {
	a.r, b.r = b.r, a.r
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Len returns the number of elements in the Deque or 0 if nil.
func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.r.size
}

// Empty returns whether the Deque is empty.
func (d *Deque[T]) Empty() bool { return d.r.size == 0 }

// Full returns whether the Deque is full. Pushing to a full Deque reallocates.
func (d *Deque[T]) Full() bool { return d.r.size == d.r.capacity() }

// PushBack puts a copy of t at the back of the Deque. If the copy fails, the
// error is returned and the Deque is unchanged, capacity included.
func (d *Deque[T]) PushBack(t T) error {
	c, err := copyOf(t)
	if err != nil {
		return err
	}
	d.r.pushBack(c)
	return nil
}

// PushFront puts a copy of t at the front of the Deque. If the copy fails,
// the error is returned and the Deque is unchanged, capacity included.
func (d *Deque[T]) PushFront(t T) error {
	c, err := copyOf(t)
	if err != nil {
		return err
	}
	d.r.pushFront(c)
	return nil
}

// Front returns the first element in the Deque. Panics if the Deque is empty.
func (d *Deque[T]) Front() T {
	d.checkNotEmpty("Front")
	return *d.r.slot(0)
}

// Back returns the last element in the Deque. Panics if the Deque is empty.
func (d *Deque[T]) Back() T {
	d.checkNotEmpty("Back")
	return *d.r.slot(d.r.size - 1)
}

// PopBack destroys the last element in the Deque. Panics if it's empty.
func (d *Deque[T]) PopBack() {
	d.checkNotEmpty("PopBack")
	d.r.popBack()
}

// PopBackUnsafe destroys the last element in the Deque. Calling it on an
// empty Deque corrupts the Deque from then on.
func (d *Deque[T]) PopBackUnsafe() { d.r.popBack() }

// PopFront destroys the first element in the Deque. Panics if it's empty.
func (d *Deque[T]) PopFront() {
	d.checkNotEmpty("PopFront")
	d.r.popFront()
}

// PopFrontUnsafe destroys the first element in the Deque. Calling it on an
// empty Deque corrupts the Deque from then on.
func (d *Deque[T]) PopFrontUnsafe() { d.r.popFront() }

// Clear destroys every element and releases the buffer, leaving the Deque
// with a capacity of 0. It never fails.
func (d *Deque[T]) Clear() { d.r.release() }

/*****************************************************************************
 * INSERT AND ERASE
 *****************************************************************************/

// Insert puts a copy of t before pos and returns an Iterator to it. pos may
// be End. The copy is pushed at the back and then swapped into place, so
// Insert costs O(Len()-pos.Index()) swaps whichever end is nearer.
//
// If the copy fails, the error is returned and the Deque is unchanged. Insert
// panics if pos belongs to another Deque or is out of range.
func (d *Deque[T]) Insert(pos ConstIterator[T], t T) (Iterator[T], error) {
	d.checkOwner(pos.cc)
	d.checkPosition(pos.cc.pos)
	if err := d.PushBack(t); err != nil {
		return Iterator[T]{}, err
	}
	last := d.r.size - 1
	for i := pos.cc.pos; i < last; i++ {
		d.r.slots.swapAt(d.r.phys(i), d.r.phys(last))
	}
	return Iterator[T]{cursor[T]{d.r, pos.cc.pos}}, nil
}

// Erase destroys the element at pos and returns an Iterator to the element
// that followed it. It panics if pos belongs to another Deque or does not
// point at an element.
func (d *Deque[T]) Erase(pos ConstIterator[T]) Iterator[T] {
	return d.EraseRange(pos, pos.Next())
}

// EraseRange destroys the elements in [first, last) and returns an Iterator
// to the element that followed them, now at first's index. The tail is
// swapped left across the gap and the vacated slots are popped from the back,
// so EraseRange costs O(Len()-first.Index()).
//
// It panics if either Iterator belongs to another Deque or if the range is
// not inside the Deque.
func (d *Deque[T]) EraseRange(first, last ConstIterator[T]) Iterator[T] {
	d.checkOwner(first.cc)
	d.checkOwner(last.cc)
	if first.cc.pos < 0 || first.cc.pos > last.cc.pos || last.cc.pos > d.r.size {
		panic(fmt.Sprintf("deque: invalid range [%d, %d) with length %d", first.cc.pos, last.cc.pos, d.r.size))
	}
	n := last.cc.pos - first.cc.pos
	for i := first.cc.pos; i+n < d.r.size; i++ {
		d.r.slots.swapAt(d.r.phys(i), d.r.phys(i+n))
	}
	for range n {
		d.r.popBack()
	}
	return Iterator[T]{cursor[T]{d.r, first.cc.pos}}
}

/*****************************************************************************
 * SLICE API
 *****************************************************************************/

// Cap returns the current Deque capacity.
func (d *Deque[T]) Cap() int { return d.r.capacity() }

// Reserve reallocates the buffer to exactly n slots, moving the elements to
// the start of the new buffer. If n is smaller than Len, the elements that do
// not fit are destroyed from the back. Reserving the current capacity does
// nothing. Returns an error if n is negative.
func (d *Deque[T]) Reserve(n int) error {
	if n < 0 {
		return ErrNegativeCapacity
	}
	if n != d.r.capacity() {
		d.r.reserve(n)
	}
	return nil
}

// Shrink reallocates the buffer to exactly Len slots and returns the new
// capacity.
func (d *Deque[T]) Shrink() int {
	_ = d.Reserve(d.r.size)
	return d.r.capacity()
}

// Resize changes the length of the Deque to n. Extra elements are destroyed
// from the back; missing ones are filled with copies of t, reserving exactly
// n slots if the buffer is too small. If a copy fails, the copies made so far
// are destroyed and the Deque is unchanged. Returns an error if n is
// negative. Like every size change, Resize halves a buffer that ends up at
// most a quarter full.
func (d *Deque[T]) Resize(n int, t T) error {
	if n < 0 {
		return ErrNegativeCapacity
	}
	if n <= d.r.size {
		d.r.truncate(n)
		d.r.shrink()
		return nil
	}

	copies, err := copyN(t, n-d.r.size)
	if err != nil {
		return fmt.Errorf("deque: resize: %w", err)
	}
	if n > d.r.capacity() {
		d.r.reserve(n)
	}
	for _, c := range copies {
		d.r.slots.constructAt(d.r.phys(d.r.size), c)
		d.r.size++
	}
	d.r.shrink()
	return nil
}

// Slice allocates a slice and fills it with the elements in order. The
// elements are assigned, not copied with Copy, so the slice is a view of the
// current values and owns nothing.
func (d *Deque[T]) Slice() []T {
	s := make([]T, d.Len())
	_ = d.CopySlice(0, s)
	return s
}

// CopySlice has the same semantics as the copy() built-in function. It
// assigns elements in the Deque starting at the start index up until the
// buffer is full or the Deque is over, whichever happens first. Like Slice,
// it does not call Copy.
//
// CopySlice returns the number of elements assigned.
func (d *Deque[T]) CopySlice(start int, buf []T) int {
	s1, s2 := d.r.segments()
	if start < len(s1) {
		n := copy(buf, s1[start:])
		return n + copy(buf[n:], s2)
	}
	return copy(buf, s2[start-len(s1):])
}

// At indexes into the i-th position in the Deque. Panics if out of bounds.
func (d *Deque[T]) At(i int) T {
	d.checkBounds(i)
	return d.AtUnsafe(i)
}

// AtUnsafe indexes into the i-th position in the Deque. It does not check
// bounds, and returns garbage or panics if i is out of bounds.
func (d *Deque[T]) AtUnsafe(i int) T { return *d.r.slot(i) }

// Ptr returns a pointer to the i-th element. The pointer is invalidated by
// any operation that may reallocate. Panics if out of bounds.
func (d *Deque[T]) Ptr(i int) *T {
	d.checkBounds(i)
	return d.PtrUnsafe(i)
}

// PtrUnsafe returns a pointer to the i-th element without checking bounds.
func (d *Deque[T]) PtrUnsafe(i int) *T { return d.r.slot(i) }

// Set replaces the i-th element with t. The Deque takes ownership of t
// without copying it, and the old element is destroyed. Panics if out of
// bounds.
func (d *Deque[T]) Set(i int, t T) {
	d.checkBounds(i)
	d.SetUnsafe(i, t)
}

// SetUnsafe replaces the i-th element with t without checking bounds.
func (d *Deque[T]) SetUnsafe(i int, t T) {
	p := d.r.phys(i)
	d.r.slots.destroyAt(p)
	d.r.slots.constructAt(p, t)
}

// Swap swaps the elements in the i-th and j-th indexes. Panics if out of
// bounds. To exchange two whole Deques, use the Swap function.
func (d *Deque[T]) Swap(i, j int) {
	d.checkBounds(i)
	d.checkBounds(j)
	d.r.slots.swapAt(d.r.phys(i), d.r.phys(j))
}

// String formats the Deque as {e0, e1, ...} using the default format of each
// element.
func (d *Deque[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, t := range d.All() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, t)
	}
	b.WriteByte('}')
	return b.String()
}

// Contains returns whether the element is in the Deque. This must not be a
// method, otherwise Deque would be constrained to comparable elements. It has
// the same semantics as slices.Contains.
func Contains[T comparable](d *Deque[T], t T) bool {
	return Index(d, t) != -1
}

// ContainsFunc returns whether an element satisfying f is in the Deque. It has
// the same semantics as slices.ContainsFunc.
func (d *Deque[T]) ContainsFunc(f func(T) bool) bool {
	return d.IndexFunc(f) != -1
}

// Equal returns whether both Deques have the same length and the same elements
// in the same order. Two nil Deques are equal, but an empty Deque and nil are
// not. Capacity and layout are irrelevant.
func Equal[T comparable](d1, d2 *Deque[T]) bool {
	return d1.EqualFunc(d2, func(a, b T) bool { return a == b })
}

// EqualFunc is like Equal but compares elements with f.
func (d1 *Deque[T]) EqualFunc(d2 *Deque[T], f func(T, T) bool) bool {
	if d1 == nil || d2 == nil {
		return d1 == d2
	}
	if d1.Len() != d2.Len() {
		return false
	}
	for i := range d1.r.size {
		if !f(*d1.r.slot(i), *d2.r.slot(i)) {
			return false
		}
	}
	return true
}

// Index returns the index of the first ocurrence of t in the Deque or -1 if
// absent. It has the same semantics as slices.Index.
func Index[T comparable](d *Deque[T], t T) int {
	return d.IndexFunc(func(e T) bool { return e == t })
}

// IndexFunc returns the index of the first element that satisfies f in the
// Deque or -1 if none do.
func (d *Deque[T]) IndexFunc(f func(T) bool) int {
	s1, s2 := d.r.segments()
	if i := slices.IndexFunc(s1, f); i != -1 {
		return i
	}
	if i := slices.IndexFunc(s2, f); i != -1 {
		return i + len(s1)
	}
	return -1
}

// Max returns the maximum element in the Deque. It has the same semantics as
// slices.Max, so it panics on an empty Deque.
func Max[T cmp.Ordered](d *Deque[T]) T {
	s1, s2 := d.r.segments()
	result := slices.Max(s1)
	// slices.Max panics on an empty slice.
	if s2 != nil {
		result = max(result, slices.Max(s2))
	}
	return result
}

// Min returns the minimum element in the Deque. It has the same semantics as
// slices.Min, so it panics on an empty Deque.
func Min[T cmp.Ordered](d *Deque[T]) T {
	s1, s2 := d.r.segments()
	result := slices.Min(s1)
	if s2 != nil {
		result = min(result, slices.Min(s2))
	}
	return result
}

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// All returns an iterator over index-value pairs in order. It has the same
// semantics as slices.All. If you don't need indexes, use Iter instead.
// Does not panic if modified during iteration, but the values yielded after a
// modification are unspecified.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if d == nil {
			return
		}
		s1, s2 := d.r.segments()
		for i, t := range s1 {
			if !yield(i, t) {
				return
			}
		}
		for i, t := range s2 {
			if !yield(i+len(s1), t) {
				return
			}
		}
	}
}

// Iter returns an iterator over values only in order. If you need indexes,
// use All instead.
func (d *Deque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, t := range d.All() {
			if !yield(t) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from back to front. It
// has the same semantics as slices.Backward.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := d.Len() - 1; i >= 0; i-- {
			if !yield(i, *d.r.slot(i)) {
				return
			}
		}
	}
}

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

// ErrNegativeCapacity is returned when asking for a negative size or
// capacity.
var ErrNegativeCapacity = errors.New("capacity cannot be negative")

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

func (d *Deque[T]) checkBounds(i int) {
	if i < 0 || i >= d.Len() {
		panic(fmt.Sprintf("deque: index %d out of bounds with length %d", i, d.Len()))
	}
}

func (d *Deque[T]) checkPosition(i int) {
	if i < 0 || i > d.Len() {
		panic(fmt.Sprintf("deque: position %d out of bounds with length %d", i, d.Len()))
	}
}

func (d *Deque[T]) checkNotEmpty(op string) {
	if d.r.size == 0 {
		panic("deque: " + op + " on empty Deque")
	}
}

func (d *Deque[T]) checkOwner(c cursor[T]) {
	if c.r != d.r {
		panic("deque: iterator from another Deque")
	}
}
