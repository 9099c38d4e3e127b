// Copyright 2016 Aleksandr Demakin. All rights reserved.

package events

// registration links one array index of a WaitForMultipleEvents call to
// the wait-record coordinating that call. It is appended to an event's
// registeredWaits only when, at registration time, the event was
// non-signaled from that waiter's perspective.
type registration struct {
	record *waitRecord
	index  int
}
