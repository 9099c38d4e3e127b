// Copyright 2016 Aleksandr Demakin. All rights reserved.

package events

import (
	"sync"
	"time"
)

// condVar is a FIFO, timeout-capable stand-in for sync.Cond: a queue of
// per-waiter wake channels, with a waiter that times out removing itself
// from the queue so a late wakeup can never be misdelivered to someone
// else.
//
// Unlike sync.Cond, condVar's own state is protected by its own mutex,
// independent of the Locker passed to wait/waitTimeout: signal and
// broadcast are called by Set after it has already released the event's
// own mutex, so the waiter queue needs protection that doesn't depend on
// that lock still being held.
type condVar struct {
	mu      sync.Mutex
	waiters []chan struct{}
}

// wait blocks until signal or broadcast wakes this goroutine. l must be
// held on entry; it is released for the duration of the wait and
// reacquired before wait returns.
func (c *condVar) wait(l sync.Locker) {
	ch := c.enqueue()
	l.Unlock()
	<-ch
	l.Lock()
}

// waitTimeout is wait with a bound on how long to block. A negative
// timeout means infinite. It returns false if the timeout elapsed before
// a wakeup, true otherwise. l is held on entry and on every return path.
func (c *condVar) waitTimeout(l sync.Locker, timeout time.Duration) bool {
	if timeout < 0 {
		c.wait(l)
		return true
	}

	ch := c.enqueue()
	l.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ch:
		l.Lock()
		return true
	case <-timer.C:
		c.mu.Lock()
		removed := c.removeLocked(ch)
		c.mu.Unlock()
		if !removed {
			// signal/broadcast already popped us before we could remove
			// ourselves. signal closes ch under c.mu, so it is already
			// closed here; broadcast closes ch just after releasing c.mu,
			// so this waits at most for that close.
			<-ch
		}
		l.Lock()
		return !removed
	}
}

// signal wakes the longest-waiting goroutine, if any.
func (c *condVar) signal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.waiters) == 0 {
		return
	}
	ch := c.waiters[0]
	c.waiters = c.waiters[1:]
	close(ch)
}

// broadcast wakes every currently waiting goroutine.
func (c *condVar) broadcast() {
	c.mu.Lock()
	waiters := c.waiters
	c.waiters = nil
	c.mu.Unlock()
	for _, ch := range waiters {
		close(ch)
	}
}

func (c *condVar) enqueue() chan struct{} {
	ch := make(chan struct{})
	c.mu.Lock()
	c.waiters = append(c.waiters, ch)
	c.mu.Unlock()
	return ch
}

func (c *condVar) removeLocked(ch chan struct{}) bool {
	for i, w := range c.waiters {
		if w == ch {
			c.waiters = append(c.waiters[:i], c.waiters[i+1:]...)
			return true
		}
	}
	return false
}
