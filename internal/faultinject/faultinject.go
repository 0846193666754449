// Package faultinject makes chosen calls fail on purpose so callers can check
// what survives a failure halfway through an operation.
//
// Code under test calls Point before every action that may fail. An Injector
// armed with At fails exactly one of those calls; Sweep runs a function once
// for every possible failing call until a run completes without reaching the
// armed one.
package faultinject

import (
	"errors"
	"fmt"
)

// ErrInjected is the error returned by a Point that was made to fail.
var ErrInjected = errors.New("injected fault")

// Injector decides which calls to Point fail. An Injector is not safe for
// concurrent use; give every goroutine its own.
type Injector struct {
	calls    int
	failAt   int
	every    int
	disabled int
	fired    bool
}

// Never returns an Injector whose points always succeed.
func Never() *Injector { return &Injector{failAt: -1} }

// At returns an Injector that fails the n-th call to Point, counting from 0.
func At(n int) *Injector { return &Injector{failAt: n} }

// Every returns an Injector that fails every n-th call to Point. n <= 0
// never fails.
func Every(n int) *Injector { return &Injector{failAt: -1, every: n} }

// Point returns ErrInjected if this call was chosen to fail, nil otherwise.
// A nil Injector never fails.
func (in *Injector) Point() error {
	if in == nil || in.disabled > 0 {
		return nil
	}
	n := in.calls
	in.calls++
	if n == in.failAt || (in.every > 0 && in.calls%in.every == 0) {
		in.fired = true
		return fmt.Errorf("%w at point %d", ErrInjected, n)
	}
	return nil
}

// Disable turns every Point into a success until the returned function is
// called. Disabled calls are not counted. Nested calls are allowed.
//
//	defer in.Disable()()
func (in *Injector) Disable() (restore func()) {
	if in == nil {
		return func() {}
	}
	in.disabled++
	return func() { in.disabled-- }
}

// Fired reports whether any Point has failed.
func (in *Injector) Fired() bool { return in.fired }

// Calls returns the number of counted calls to Point.
func (in *Injector) Calls() int { return in.calls }

// Sweep calls f with At(0), At(1), ... until a run never reaches its failing
// point, and returns that run's error. A run that reaches the failing point
// must return an error wrapping ErrInjected, or nil if it swallowed the
// fault; any other error stops the sweep.
func Sweep(f func(in *Injector) error) error {
	for n := 0; ; n++ {
		in := At(n)
		err := f(in)
		if !in.Fired() {
			return err
		}
		if err != nil && !errors.Is(err, ErrInjected) {
			return fmt.Errorf("faultinject: run failing at point %d: %w", n, err)
		}
	}
}
