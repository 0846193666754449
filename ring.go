package deque

/*****************************************************************************
 * SLOT ARITHMETIC
 *****************************************************************************/

// physicalSlot maps a logical position to its slot in a block of the given
// capacity whose first live element sits at start. capacity must be positive.
func physicalSlot(start, capacity, logical int) int {
	return (start + logical) % capacity
}

/*****************************************************************************
 * UNINITIALIZED BLOCK
 *****************************************************************************/

// block is a fixed-capacity run of element slots. A slot is either live or
// holds the zero value; the ring decides which is which.
type block[T any] []T

// constructAt places an already copied value into a free slot.
func (b block[T]) constructAt(i int, t T) { b[i] = t }

// destroyAt ends the lifetime of the element in slot i and zeroes the slot so
// the garbage collector can reclaim whatever it referenced.
func (b block[T]) destroyAt(i int) {
	destroy(b[i])
	var zero T
	b[i] = zero
}

// swapAt exchanges two live slots. It moves values and never copies them.
func (b block[T]) swapAt(i, j int) { b[i], b[j] = b[j], b[i] }

/*****************************************************************************
 * RING
 *****************************************************************************/

// ring owns the block and the bookkeeping that makes it circular. Iterators
// point at a ring, never at the Deque handle, so Swap can hand a ring over to
// another handle without disturbing them.
//
// Invariant: exactly the slots physicalSlot(start, len(slots), i) for
// 0 <= i < size are live. When len(slots) == 0, start is 0.
type ring[T any] struct {
	slots block[T]
	size  int
	start int
}

func (r *ring[T]) capacity() int { return len(r.slots) }

// phys resolves a logical position. Undefined for an empty block.
func (r *ring[T]) phys(i int) int { return physicalSlot(r.start, len(r.slots), i) }

func (r *ring[T]) slot(i int) *T { return &r.slots[r.phys(i)] }

// reserve reallocates to exactly n slots. The first min(size, n) elements
// are moved, in logical order, to slots 0 onward; the rest are destroyed.
// The old block is zeroed and dropped, which invalidates every pointer into
// it. reserve never fails.
func (r *ring[T]) reserve(n int) {
	keep := min(r.size, n)
	for i := keep; i < r.size; i++ {
		r.slots.destroyAt(r.phys(i))
	}

	var slots block[T]
	if n > 0 {
		slots = make(block[T], n)
		for i := range keep {
			slots[i] = *r.slot(i)
		}
	}

	clear(r.slots)
	r.slots = slots
	r.size = keep
	r.start = 0
}

// grow makes room for one more element, doubling the capacity.
func (r *ring[T]) grow() {
	if r.size >= r.capacity() {
		r.reserve(max(1, 2*r.capacity()))
	}
}

// shrink halves the capacity once the ring is at most a quarter full. It runs
// after every size change.
func (r *ring[T]) shrink() {
	if c := r.capacity(); c > 0 && r.size <= c/4 {
		r.reserve(c / 2)
	}
}

func (r *ring[T]) pushBack(t T) {
	r.grow()
	r.slots.constructAt(r.phys(r.size), t)
	r.size++
	r.shrink()
}

func (r *ring[T]) pushFront(t T) {
	r.grow()
	c := r.capacity()
	r.start = physicalSlot(r.start, c, c-1)
	r.slots.constructAt(r.start, t)
	r.size++
	r.shrink()
}

func (r *ring[T]) popBack() {
	r.slots.destroyAt(r.phys(r.size - 1))
	r.size--
	r.shrink()
}

func (r *ring[T]) popFront() {
	r.slots.destroyAt(r.start)
	r.start = r.phys(1)
	r.size--
	r.shrink()
}

// truncate destroys the elements from logical position n to the back without
// touching the capacity.
func (r *ring[T]) truncate(n int) {
	for i := n; i < r.size; i++ {
		r.slots.destroyAt(r.phys(i))
	}
	r.size = n
}

// release destroys every element and drops the block.
func (r *ring[T]) release() {
	r.truncate(0)
	r.slots = nil
	r.start = 0
}

// segments returns the live elements as at most two subslices of the block,
// in logical order.
func (r *ring[T]) segments() (a, b []T) {
	if r == nil || r.size == 0 {
		return nil, nil
	}
	end := r.start + r.size
	if end <= r.capacity() {
		return r.slots[r.start:end], nil
	}
	return r.slots[r.start:], r.slots[:end-r.capacity()]
}
