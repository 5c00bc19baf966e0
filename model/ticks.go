package model

import "time"

// Ticks counts 100-nanosecond intervals since 0001-01-01 00:00:00 UTC
type Ticks int64

const (
	ticksPerSecond = int64(time.Second / 100)

	// seconds between 0001-01-01 and 1970-01-01
	unixEpochSeconds = 62135596800
)

func TicksFromTime(t time.Time) Ticks {
	t = t.UTC()
	return Ticks((t.Unix()+unixEpochSeconds)*ticksPerSecond + int64(t.Nanosecond())/100)
}

func (t Ticks) Time() time.Time {
	sec := int64(t)/ticksPerSecond - unixEpochSeconds
	nsec := (int64(t) % ticksPerSecond) * 100
	return time.Unix(sec, nsec).UTC()
}
