// Copyright 2016 Aleksandr Demakin. All rights reserved.

package events

import (
	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrTimeout is returned by Wait and WaitForMultipleEvents when the
	// deadline elapses before the wait was satisfied.
	ErrTimeout = pkgerrors.New("events: wait timed out")

	// ErrClosed is returned by Wait and WaitForMultipleEvents when called
	// against an Event whose Close has already run, rather than blocking
	// forever or racing on freed state.
	ErrClosed = pkgerrors.New("events: event is closed")
)
