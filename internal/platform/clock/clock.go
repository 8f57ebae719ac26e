package clock

import "time"

// Clock is the single source of wall time for services and usecases.
// Tests substitute fakes with scripted values.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host clock. All stored timestamps are UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
