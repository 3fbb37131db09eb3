package schedule

import (
	"time"

	"github.com/yetkin-kariyer/botfleet/internal/domain/activity"
)

// DayWindow returns [midnight, next midnight) around now, in now's location.
func DayWindow(now time.Time) (from, to time.Time) {
	from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return from, from.AddDate(0, 0, 1)
}

// WeekWindow returns the window starting at the most recent Sunday midnight
// in now's location, ending a week later.
func WeekWindow(now time.Time) (from, to time.Time) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from = midnight.AddDate(0, 0, -int(now.Weekday()))
	return from, from.AddDate(0, 0, 7)
}

// WindowFor maps a kind to its rolling window bounds. ok is false for kinds
// that carry no rate window.
func WindowFor(kind activity.Kind, now time.Time) (from, to time.Time, ok bool) {
	switch kind.Window() {
	case activity.WindowDay:
		from, to = DayWindow(now)
		return from, to, true
	case activity.WindowWeek:
		from, to = WeekWindow(now)
		return from, to, true
	default:
		return time.Time{}, time.Time{}, false
	}
}
