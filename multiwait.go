// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build !nomultiwait

package events

import "time"

// WaitForMultipleEvents waits on events for either "any one fires"
// (waitAll=false) or "all fire" (waitAll=true), under concurrent Set and
// Reset against those events from arbitrary goroutines. A negative
// timeout blocks indefinitely; a zero timeout performs a non-blocking
// check.
//
// It returns the index of the event observed to fire first when
// waitAll=false, or NoIndex if waitAll=true or the wait timed out. Every
// auto-reset event among the ones passed in that is observed to fire
// during the call is consumed exactly once. If any event has already been
// closed, WaitForMultipleEvents stops registering and returns ErrClosed.
//
// The algorithm runs in four phases:
//
//  1. build a fresh wait-record;
//  2. for each event, atomically try a non-blocking consume or register
//     interest with it — holding that event's own mutex across both the
//     check and the registration is what prevents a concurrent Set from
//     landing in the gap between them and being lost;
//  3. block on the record's own condition variable until the completion
//     predicate holds or the deadline elapses;
//  4. mark the record no-longer-waiting and drop the waiter's own
//     reference, reclaiming the record if that was the last one.
func WaitForMultipleEvents(events []*Event, waitAll bool, timeout time.Duration) (int, error) {
	rec := newWaitRecord(waitAll, len(events))
	rec.mu.Lock()

	done := false
	var err error
	for i, e := range events {
		e.mu.Lock()
		if e.closed {
			e.mu.Unlock()
			err = ErrClosed
			done = true
			break
		}
		if e.tryConsumeLocked() {
			e.mu.Unlock()
			if waitAll {
				rec.eventsLeft--
				if rec.eventsLeft < 0 {
					panic("events: wait-record events_left underflow")
				}
				continue
			}
			rec.firedEvent = i
			done = true
			break
		}
		e.registerWait(rec, i)
		e.mu.Unlock()
	}

	if !done && timeout == 0 {
		// This check runs against "not already done" rather than the
		// completion predicate itself, so a wait_all call whose every
		// event happened to be pre-signaled during registration still
		// reports ErrTimeout here when called with a zero timeout.
		err = ErrTimeout
		done = true
	}

	if !done {
		infinite := timeout < 0
		var deadline time.Time
		if !infinite {
			deadline = time.Now().Add(timeout)
		}
		for {
			done = (waitAll && rec.eventsLeft == 0) || (!waitAll && rec.firedEvent != NoIndex)
			if done {
				break
			}
			remaining := timeout
			if !infinite {
				remaining = time.Until(deadline)
				if remaining <= 0 {
					err = ErrTimeout
					break
				}
			}
			if !rec.cond.waitTimeout(&rec.mu, remaining) {
				err = ErrTimeout
				break
			}
		}
	}

	firedIndex := NoIndex
	if !waitAll {
		firedIndex = rec.firedEvent
	}

	rec.stillWaiting = false
	rec.refCount--
	rec.mu.Unlock()

	return firedIndex, err
}
