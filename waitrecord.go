// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build !nomultiwait

package events

import "sync"

// NoIndex is returned as the fired index when a multi-event wait times
// out, or when a wait_all call completes (there is no single "the" event
// in that case).
const NoIndex = -1

// waitRecord is the transient coordination object created for the
// lifetime of one WaitForMultipleEvents call. It is shared between the
// waiting goroutine and every event it registered with; whichever of
// those drops the last reference reclaims it. Events never reference
// each other and a record never references another record, so the
// reference graph is a DAG and plain counting is sufficient — no cycle
// collector is needed.
type waitRecord struct {
	mu   sync.Mutex
	cond condVar

	waitAll bool

	eventsLeft int // meaningful when waitAll
	firedEvent int // meaningful when !waitAll; NoIndex until set

	stillWaiting bool
	refCount     int
}

func newWaitRecord(waitAll bool, count int) *waitRecord {
	rec := &waitRecord{
		waitAll:      waitAll,
		stillWaiting: true,
		refCount:     1,
		firedEvent:   NoIndex,
	}
	if waitAll {
		rec.eventsLeft = count
	}
	return rec
}

// resolveOrDrop delivers r's event's signal to the registered waiter, or
// drops the registration if that waiter already departed. It always
// consumes the registration's reference on rec. It reports whether a
// live waiter accepted the signal — the caller (Event.setAutoReset) uses
// that to know whether it must also mark its own state consumed and stop
// walking its queue.
func (r registration) resolveOrDrop() bool {
	rec := r.record
	rec.mu.Lock()
	rec.refCount--
	if !rec.stillWaiting {
		rec.mu.Unlock()
		return false
	}
	rec.resolveLocked(r.index)
	rec.mu.Unlock()
	rec.cond.signal()
	return true
}

// resolveLocked applies one event's signal to the record, per the
// wait_all/any accounting rules. rec.mu must be held.
func (rec *waitRecord) resolveLocked(index int) {
	if rec.waitAll {
		rec.eventsLeft--
		if rec.eventsLeft < 0 {
			panic("events: wait-record events_left underflow")
		}
		// stillWaiting is deliberately left true on this last decrement:
		// no further signaler will read it once every event has reported
		// in, so there is nothing left to protect by flipping it here.
		return
	}
	if rec.firedEvent != NoIndex {
		panic("events: wait-record fired more than once")
	}
	rec.firedEvent = index
	rec.stillWaiting = false
}
