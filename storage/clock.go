package storage

import (
	"sync/atomic"
	"time"
)

var lastCreation int64

// nextCreationTime returns an RFC 3339 UTC timestamp strictly greater than
// any previously returned one, so records created back to back never share a
// createdAt stamp and createdAt ordering matches insertion order.
func nextCreationTime() string {
	for {
		now := time.Now().UnixNano()
		last := atomic.LoadInt64(&lastCreation)
		if now <= last {
			now = last + 1
		}
		if atomic.CompareAndSwapInt64(&lastCreation, last, now) {
			return time.Unix(0, now).UTC().Format(time.RFC3339Nano)
		}
	}
}
