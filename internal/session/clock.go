package session

import (
	"time"

	"github.com/tarusov/etwkernel/internal/capture"
)

// Seconds between 1601-01-01 and 1970-01-01.
const filetimeEpochSeconds = 11644473600

// FILETIME counts 100ns intervals.
const filetimeUnitsPerSecond = 10000000

// FiletimeToTime converts a FILETIME value to UTC time.
func FiletimeToTime(ft uint64) time.Time {
	sec := int64(ft/filetimeUnitsPerSecond) - filetimeEpochSeconds
	nsec := int64(ft%filetimeUnitsPerSecond) * 100
	return time.Unix(sec, nsec).UTC()
}

// TimeToFiletime is the inverse of FiletimeToTime, truncated to 100ns.
func TimeToFiletime(t time.Time) uint64 {
	return uint64(t.Unix()+filetimeEpochSeconds)*filetimeUnitsPerSecond + uint64(t.Nanosecond()/100)
}

// clock converts raw performance counter stamps to FILETIME, anchored on
// the first stamp it sees and the trace start time.
type clock struct {
	start    uint64
	period   float64
	firstRaw uint64
	seen     bool
}

func newClock(h capture.Header) *clock {
	return &clock{
		start:  h.StartTime,
		period: filetimeUnitsPerSecond / float64(h.PerfFreq),
	}
}

// filetime returns the system time of raw. Stamps older than the first one
// map before the start time instead of wrapping.
func (c *clock) filetime(raw uint64) uint64 {
	if !c.seen {
		c.firstRaw = raw
		c.seen = true
	}
	delta := float64(int64(raw - c.firstRaw))
	return uint64(int64(c.start) + int64(delta*c.period))
}

func (c *clock) time(raw uint64) time.Time {
	return FiletimeToTime(c.filetime(raw))
}
