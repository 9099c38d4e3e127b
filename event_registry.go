// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build !nomultiwait

package events

// registerWait appends a registration for rec at index onto e's queue and
// takes the corresponding reference on rec. Callers must hold both rec.mu
// and e.mu, in that order — the order the waiter side of
// WaitForMultipleEvents always acquires them in, so rec.refCount is
// already safe to touch without a separate lock here.
func (e *Event) registerWait(rec *waitRecord, index int) {
	e.registeredWaits = append(e.registeredWaits, registration{record: rec, index: index})
	rec.refCount++
}

// assertNoRegisteredWaits is a debug assertion run at destroy time: the
// caller contract already forbids destroying an event with a live
// waiter, so a non-empty queue here means that contract was violated.
func (e *Event) assertNoRegisteredWaits() {
	if len(e.registeredWaits) != 0 {
		panic("events: Close called on an event with registered multi-waiters")
	}
}

// setAutoReset implements the auto-reset branch of Set: walk the
// registration queue looking for the first entry whose waiter is still
// interested, deliver the signal to it alone and stop; entries belonging
// to waiters that already departed (timeout or otherwise) are dropped
// along the way. Only if the walk finds no live registration at all does
// a still-signaled event fall through to waking a single plain Wait
// caller. e.mu must be held on entry; every path releases it before
// returning, matching the locking discipline that forbids holding an
// event mutex while touching a wait-record's own mutex from outside a
// bounded critical section.
func (e *Event) setAutoReset() {
	for len(e.registeredWaits) > 0 {
		r := e.registeredWaits[0]
		e.registeredWaits = e.registeredWaits[1:]

		if r.resolveOrDrop() {
			e.state = false
			e.mu.Unlock()
			return
		}
	}
	if e.state {
		e.mu.Unlock()
		e.cond.signal()
		return
	}
	e.mu.Unlock()
}

// setManualReset implements the manual-reset branch of Set: every
// registration is resolved (or dropped, if its waiter already departed)
// in one pass, the queue is cleared, and finally every plain Wait caller
// is released with a broadcast. e.mu must be held on entry.
func (e *Event) setManualReset() {
	waits := e.registeredWaits
	e.registeredWaits = nil
	for _, r := range waits {
		r.resolveOrDrop()
	}
	e.mu.Unlock()
	e.cond.broadcast()
}
