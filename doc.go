// Copyright 2016 Aleksandr Demakin. All rights reserved.

// Package events is a portable, in-process emulation of the Windows event
// synchronization primitive: a boolean signaled/non-signaled state with a
// manual- or auto-reset discipline, plus a WaitForMultipleEvents that
// coordinates a wait across many events for either "any one fires" or
// "all fire", under concurrent Set/Reset from arbitrary goroutines.
//
// Both Event and the multi-event wait are built on a mutex-guarded,
// timeout-capable condition variable (see condVar) rather than any
// OS-native event handle or shared memory region: this package never
// blocks in a syscall and has no cross-process counterpart. See the
// nomultiwait build tag to omit the multi-event wait machinery when only
// single-event waits are needed.
package events
