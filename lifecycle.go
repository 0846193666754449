package deque

// Copier is implemented by element types whose copies are more than a plain
// assignment, or whose copies can fail. Every time a Deque copies an element
// (PushBack, PushFront, Insert, Resize, NewFilled, Copy, Assign) it calls
// Copy, and a non-nil error aborts the operation, leaving the Deque as it was
// before the call.
//
// Moving elements inside the Deque, including reallocation and the swaps done
// by Insert and Erase, never calls Copy.
type Copier[T any] interface {
	Copy() (T, error)
}

// Destroyer is implemented by element types that need to release something
// when the Deque is done with them. Destroy is called exactly once for every
// element the Deque destroys: popped, erased, cleared, truncated by Resize or
// Reserve, overwritten by Set, or still live when the Deque is destroyed.
type Destroyer interface {
	Destroy()
}

func copyOf[T any](t T) (T, error) {
	if c, ok := any(t).(Copier[T]); ok {
		return c.Copy()
	}
	return t, nil
}

func destroy[T any](t T) {
	if d, ok := any(t).(Destroyer); ok {
		d.Destroy()
	}
}

// copyN makes n copies of t. If any copy fails, the copies already made are
// destroyed and the error is returned.
func copyN[T any](t T, n int) ([]T, error) {
	copies := make([]T, n)
	for i := range copies {
		c, err := copyOf(t)
		if err != nil {
			destroyAll(copies[:i])
			return nil, err
		}
		copies[i] = c
	}
	return copies, nil
}

func destroyAll[T any](ts []T) {
	for _, t := range ts {
		destroy(t)
	}
}
