// Copyright 2016 Aleksandr Demakin. All rights reserved.

//go:build nomultiwait

package events

// waitRecord is an empty placeholder under the nomultiwait build tag: the
// multi-event wait machinery is not compiled in, so no event ever holds a
// live *waitRecord, but the registration type still needs something to
// point at.
type waitRecord struct{}
