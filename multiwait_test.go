// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build !nomultiwait

package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestWaitForMultipleEventsAny covers two auto-reset events, a waiter
// blocked on "any" of them, and a signaler that fires the second one.
// The waiter must report that index, and the signal must have been
// consumed — a following zero-timeout single wait on either event times
// out.
func TestWaitForMultipleEventsAny(t *testing.T) {
	a := assert.New(t)
	e0 := NewEvent(false, false)
	e1 := NewEvent(false, false)

	type result struct {
		idx int
		err error
	}
	ch := make(chan result, 1)
	go func() {
		idx, err := WaitForMultipleEvents([]*Event{e0, e1}, false, -1)
		ch <- result{idx, err}
	}()

	time.Sleep(10 * time.Millisecond)
	e1.Set()

	select {
	case r := <-ch:
		a.NoError(r.err)
		a.Equal(1, r.idx)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for any-event wait")
	}

	a.Equal(ErrTimeout, e1.Wait(0))
	a.Equal(ErrTimeout, e0.Wait(0))
}

// TestWaitForMultipleEventsAllTimeout covers three never-signaled
// auto-reset events, wait_all with a short timeout. The call must time
// out with NoIndex, and the events must remain usable (registrations
// drain without incident) afterwards.
func TestWaitForMultipleEventsAllTimeout(t *testing.T) {
	a := assert.New(t)
	events := []*Event{NewEvent(false, false), NewEvent(false, false), NewEvent(false, false)}

	idx, err := WaitForMultipleEvents(events, true, 30*time.Millisecond)
	a.Equal(ErrTimeout, err)
	a.Equal(NoIndex, idx)

	for _, e := range events {
		e.Set()
	}
}

// TestWaitForMultipleEventsAllSucceeds waits for every event in a set to
// fire before returning success, and each auto-reset event among them is
// consumed exactly once.
func TestWaitForMultipleEventsAllSucceeds(t *testing.T) {
	a := assert.New(t)
	events := []*Event{NewEvent(false, false), NewEvent(true, false), NewEvent(false, false)}

	done := make(chan error, 1)
	go func() {
		_, err := WaitForMultipleEvents(events, true, -1)
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	for _, e := range events {
		e.Set()
	}

	select {
	case err := <-done:
		a.NoError(err)
	case <-time.After(time.Second):
		t.Fatal("wait_all never completed")
	}

	a.Equal(ErrTimeout, events[0].Wait(0))
	a.Equal(ErrTimeout, events[2].Wait(0))
}

// TestWaitForMultipleEventsAnySingleConsumer covers one auto-reset
// event, two goroutines both doing an "any" wait on it, and one Set
// call. Exactly one of the two must return success.
func TestWaitForMultipleEventsAnySingleConsumer(t *testing.T) {
	a := assert.New(t)
	e := NewEvent(false, false)

	var successes int32
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := WaitForMultipleEvents([]*Event{e}, false, 300*time.Millisecond); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}

	time.Sleep(10 * time.Millisecond)
	e.Set()
	wg.Wait()

	a.EqualValues(1, successes)
}

// TestWaitForMultipleEventsZeroTimeoutPreSignaled checks that a wait_all
// call with a zero timeout reports ErrTimeout even when every event
// happens to already be signaled, because the "done" bookkeeping is only
// ever set on the any-path during registration.
func TestWaitForMultipleEventsZeroTimeoutPreSignaled(t *testing.T) {
	a := assert.New(t)
	e0 := NewEvent(true, true)
	e1 := NewEvent(true, true)

	idx, err := WaitForMultipleEvents([]*Event{e0, e1}, true, 0)
	a.Equal(ErrTimeout, err)
	a.Equal(NoIndex, idx)
}

// TestWaitForMultipleEventsAnyZeroTimeoutPreSignaled checks the
// unaffected sibling case: an "any" wait with a zero timeout does report
// success immediately when one of the events is already signaled, since
// registration sets done=true directly on that path.
func TestWaitForMultipleEventsAnyZeroTimeoutPreSignaled(t *testing.T) {
	a := assert.New(t)
	e0 := NewEvent(true, false)
	e1 := NewEvent(true, true)

	idx, err := WaitForMultipleEvents([]*Event{e0, e1}, false, 0)
	a.NoError(err)
	a.Equal(1, idx)
}

// TestWaitForMultipleEventsClosedEvent checks that a closed event in the
// wait set makes the call return ErrClosed instead of registering or
// blocking.
func TestWaitForMultipleEventsClosedEvent(t *testing.T) {
	a := assert.New(t)
	e0 := NewEvent(false, false)
	e1 := NewEvent(false, false)
	a.NoError(e1.Close())

	idx, err := WaitForMultipleEvents([]*Event{e0, e1}, false, 100*time.Millisecond)
	a.Equal(ErrClosed, err)
	a.Equal(NoIndex, idx)
}
