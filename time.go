package safehold

import (
	"time"

	"github.com/safehold/safehold/errors"
)

// UnixTime is a point in time in whole seconds since the epoch. It is
// what gets persisted, so stored deadlines carry no zone or monotonic
// reading.
type UnixTime int64

// AsUnixTime drops the sub-second part of t.
func AsUnixTime(t time.Time) UnixTime {
	return UnixTime(t.Unix())
}

// CeilUnixTime is the first whole second not before t.
func CeilUnixTime(t time.Time) UnixTime {
	u := AsUnixTime(t)
	if t.Nanosecond() != 0 {
		u++
	}
	return u
}

func (t UnixTime) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

func (t UnixTime) IsZero() bool {
	return t == 0
}

// Add shifts t by d. Only whole seconds of d count.
func (t UnixTime) Add(d time.Duration) UnixTime {
	return t + UnixTime(d/time.Second)
}

func (t UnixTime) Validate() error {
	if t < 0 {
		return errors.Wrap(errors.ErrState, "time before epoch")
	}
	return nil
}

func (t UnixTime) String() string {
	return t.Time().Format(time.RFC3339)
}
