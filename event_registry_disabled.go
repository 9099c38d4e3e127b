// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build nomultiwait

package events

// assertNoRegisteredWaits is a no-op under the nomultiwait build tag:
// there is no registration queue to inspect.
func (e *Event) assertNoRegisteredWaits() {}

// setAutoReset implements the auto-reset branch of Set when the
// multi-wait machinery has been compiled out: no registration queue
// exists, so a signal only ever wakes a single plain Wait caller via
// cond.
func (e *Event) setAutoReset() {
	state := e.state
	e.mu.Unlock()
	if state {
		e.cond.signal()
	}
}

// setManualReset implements the manual-reset branch of Set with no
// registration queue: release the mutex and broadcast to every plain
// Wait caller.
func (e *Event) setManualReset() {
	e.mu.Unlock()
	e.cond.broadcast()
}
