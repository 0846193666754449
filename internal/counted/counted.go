// Package counted provides an element type that keeps track of its own
// copies. Every copy is registered, every Destroy unregisters one, and
// destroying something that is not registered is recorded as a violation.
// Copies go through a fault injector, so a Registry can be used to check
// that a container neither leaks nor double-destroys elements when copies
// fail.
package counted

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/lucasgdosr/deque/v2/internal/faultinject"
)

// Registry tracks the live instances created from it. A Registry is not safe
// for concurrent use.
type Registry struct {
	in         *faultinject.Injector
	next       uint64
	live       map[uint64]struct{}
	violations []error
}

// NewRegistry returns an empty Registry whose copies consult in. A nil
// Injector never fails.
func NewRegistry(in *faultinject.Injector) *Registry {
	return &Registry{in: in, live: make(map[uint64]struct{})}
}

// Injector returns the fault injector copies go through.
func (r *Registry) Injector() *faultinject.Injector { return r.in }

// New creates a live instance holding n. It never fails.
func (r *Registry) New(n int) Value {
	r.next++
	r.live[r.next] = struct{}{}
	return Value{N: n, id: r.next, reg: r}
}

// Live returns the number of instances created and not yet destroyed.
func (r *Registry) Live() int { return len(r.live) }

// Err returns every double or unknown Destroy seen so far, or nil.
func (r *Registry) Err() error { return errors.Join(r.violations...) }

// Value is a counted int. The zero Value is not registered anywhere; copying
// or destroying it does nothing.
type Value struct {
	N   int
	id  uint64
	reg *Registry
}

// Copy registers a new instance with the same N. It fails when the
// Registry's injector says so.
func (v Value) Copy() (Value, error) {
	if v.reg == nil {
		return v, nil
	}
	if err := v.reg.in.Point(); err != nil {
		return Value{}, err
	}
	return v.reg.New(v.N), nil
}

// Destroy unregisters the instance.
func (v Value) Destroy() {
	if v.reg == nil {
		return
	}
	if _, ok := v.reg.live[v.id]; !ok {
		v.reg.violations = append(v.reg.violations, fmt.Errorf("counted: instance %d (N=%d) destroyed twice or never created", v.id, v.N))
		return
	}
	delete(v.reg.live, v.id)
}

func (v Value) String() string { return strconv.Itoa(v.N) }

// Ns returns the N of every value, in order.
func Ns(vs []Value) []int {
	ns := make([]int, len(vs))
	for i, v := range vs {
		ns[i] = v.N
	}
	return ns
}
