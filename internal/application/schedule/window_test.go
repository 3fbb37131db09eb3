package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yetkin-kariyer/botfleet/internal/domain/activity"
)

func TestDayWindow(t *testing.T) {
	now := time.Date(2026, time.September, 1, 14, 30, 5, 0, time.UTC)
	from, to := DayWindow(now)
	assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC), to)
}

func TestWeekWindowStartsLastSunday(t *testing.T) {
	// 2026-09-01 is a Tuesday; the week started Sunday 2026-08-30.
	now := time.Date(2026, time.September, 1, 14, 30, 5, 0, time.UTC)
	from, to := WeekWindow(now)
	assert.Equal(t, time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, time.September, 6, 0, 0, 0, 0, time.UTC), to)
}

func TestWeekWindowOnSunday(t *testing.T) {
	now := time.Date(2026, time.August, 30, 9, 0, 0, 0, time.UTC)
	from, _ := WeekWindow(now)
	assert.Equal(t, time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC), from)
}

func TestWindowFor(t *testing.T) {
	now := time.Date(2026, time.September, 1, 14, 0, 0, 0, time.UTC)

	from, to, ok := WindowFor(activity.KindPost, now)
	require.True(t, ok)
	dayFrom, dayTo := DayWindow(now)
	assert.Equal(t, dayFrom, from)
	assert.Equal(t, dayTo, to)

	from, to, ok = WindowFor(activity.KindTest, now)
	require.True(t, ok)
	weekFrom, weekTo := WeekWindow(now)
	assert.Equal(t, weekFrom, from)
	assert.Equal(t, weekTo, to)

	_, _, ok = WindowFor(activity.KindChat, now)
	assert.False(t, ok)
}
