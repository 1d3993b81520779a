package timer

import (
	"sync/atomic"
	"time"
)

// Resolution is the frequency at which time is updated. 500ms are precise enough for the
// Date header, which has a resolution of a second anyway.
const Resolution = 500 * time.Millisecond

var unixMilli = new(atomic.Int64)

func init() {
	// the goroutine isn't guaranteed to be started immediately, so store the time once in
	// advance. Otherwise, early callers would see the zero time.
	unixMilli.Store(time.Now().UnixMilli())

	go func() {
		for {
			time.Sleep(Resolution)
			unixMilli.Store(time.Now().UnixMilli())
		}
	}()
}

// Now returns the current time, lagging behind by at most Resolution.
func Now() time.Time {
	return time.UnixMilli(unixMilli.Load())
}
