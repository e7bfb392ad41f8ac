package util

import (
	"strconv"
	"sync/atomic"
	"time"
)

// idCounter disambiguates ids minted within the same millisecond.
var idCounter atomic.Uint64

// NewID returns a wall-clock-derived identifier that is unique within the
// process and sorts roughly by creation time. The format is
// "<unix-ms>-<counter>".
func NewID() string {
	n := idCounter.Add(1)
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + strconv.FormatUint(n, 10)
}

// NowMilli returns the current wall-clock time as Unix milliseconds, the
// timestamp unit used throughout the domain types.
func NowMilli() int64 {
	return time.Now().UnixMilli()
}
