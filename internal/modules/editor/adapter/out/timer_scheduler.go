package out

import (
	"time"

	editorout "inkwell/internal/modules/editor/port/out"
)

// TimerScheduler arms real timers. Callbacks run on their own
// goroutine; the editor service takes its own lock around them.
type TimerScheduler struct{}

func NewTimerScheduler() TimerScheduler {
	return TimerScheduler{}
}

func (TimerScheduler) AfterFunc(d time.Duration, fn func()) editorout.Timer {
	return time.AfterFunc(d, fn)
}
