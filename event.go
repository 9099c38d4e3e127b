// Copyright 2016 Aleksandr Demakin. All rights reserved.

package events

import (
	"sync"
	"time"
)

// Event is an in-process emulation of a Windows-style event object: a
// boolean signaled/non-signaled state plus a manual- or auto-reset
// discipline, race-free under concurrent Set, Reset and Wait from any
// number of goroutines.
//
// The zero value is not usable; construct with NewEvent.
type Event struct {
	mu        sync.Mutex
	cond      condVar
	autoReset bool
	state     bool
	closed    bool

	// registeredWaits is the multi-wait registration queue. It is always
	// empty under the nomultiwait build tag, since nothing ever appends
	// to it there.
	registeredWaits []registration
}

// NewEvent creates an event with the given reset discipline and initial
// state. manualReset selects manual-reset (sticky) semantics; when false,
// the event auto-resets on the first successful wait that consumes it.
//
// If initialState is true, the event is brought up already signaled by
// running the ordinary Set path against a record with no registered
// waiters yet.
func NewEvent(manualReset, initialState bool) *Event {
	e := &Event{autoReset: !manualReset}
	if initialState {
		e.Set()
	}
	return e
}

// Set sets the event to the signaled state, waking waiters per the
// event's reset discipline: a manual-reset event releases every current
// waiter (registered multi-waiters and single-waiters alike) and stays
// signaled; an auto-reset event wakes exactly one waiter — a registered
// multi-waiter if one is queued, otherwise a single Wait call — and
// reverts to non-signaled as part of that handoff.
func (e *Event) Set() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.state = true
	if e.autoReset {
		e.setAutoReset() // releases e.mu
		return
	}
	e.setManualReset() // releases e.mu
}

// Reset clears the event to the non-signaled state. It never touches the
// condition variable or the registration queue.
func (e *Event) Reset() {
	e.mu.Lock()
	e.state = false
	e.mu.Unlock()
}

// Wait blocks until the event is signaled or timeout elapses. A negative
// timeout blocks indefinitely; a zero timeout performs a non-blocking
// check. On success, an auto-reset event has been consumed (its state is
// now false); a manual-reset event is left signaled. On timeout, ErrTimeout
// is returned and no state has changed. Spurious wakeups (were this
// package's condVar capable of producing one) would never be mistaken for
// a real signal: every wakeup is re-validated against e.state before Wait
// returns.
func (e *Event) Wait(timeout time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if e.tryConsumeLocked() {
		return nil
	}
	if timeout == 0 {
		return ErrTimeout
	}

	infinite := timeout < 0
	var deadline time.Time
	if !infinite {
		deadline = time.Now().Add(timeout)
	}
	for !e.state {
		remaining := timeout
		if !infinite {
			remaining = time.Until(deadline)
			if remaining <= 0 {
				return ErrTimeout
			}
		}
		if !e.cond.waitTimeout(&e.mu, remaining) {
			return ErrTimeout
		}
	}
	if e.autoReset {
		e.state = false
	}
	return nil
}

// Close releases the event. The caller is responsible for ensuring no
// goroutine is currently blocked in Wait or WaitForMultipleEvents against
// this event; behavior otherwise is undefined. Close is safe to call more
// than once.
func (e *Event) Close() error {
	e.mu.Lock()
	e.assertNoRegisteredWaits()
	e.closed = true
	e.mu.Unlock()
	return nil
}

// tryConsumeLocked attempts a non-blocking consumption of e: it reports
// whether the event was observed signaled, consuming it in the same step
// for an auto-reset event. e.mu must be held; it is not released here.
// Both Wait and WaitForMultipleEvents' registration phase share this so a
// signal can never be observed twice.
func (e *Event) tryConsumeLocked() bool {
	if !e.state {
		return false
	}
	if e.autoReset {
		e.state = false
	}
	return true
}
