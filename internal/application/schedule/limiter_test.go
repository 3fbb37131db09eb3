package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/yetkin-kariyer/botfleet/internal/domain/activity"
	contentMocks "github.com/yetkin-kariyer/botfleet/internal/domain/content/mocks"
	"github.com/yetkin-kariyer/botfleet/internal/domain/fleet"
)

var testNow = time.Date(2026, time.September, 1, 14, 0, 0, 0, time.UTC)

func TestLimiter_Allow(t *testing.T) {
	actorID := uuid.New()

	t.Run("under ceiling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		counter := contentMocks.NewMockCounter(ctrl)
		limiter := NewLimiter(counter, zerolog.Nop())

		from, to := DayWindow(testNow)
		counter.EXPECT().
			CountInWindow(gomock.Any(), actorID, activity.KindPost, from, to).
			Return(2, nil)

		err := limiter.Allow(context.Background(), actorID, activity.KindPost, 3, testNow)
		require.NoError(t, err)
	})

	t.Run("at ceiling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		counter := contentMocks.NewMockCounter(ctrl)
		limiter := NewLimiter(counter, zerolog.Nop())

		counter.EXPECT().
			CountInWindow(gomock.Any(), actorID, activity.KindPost, gomock.Any(), gomock.Any()).
			Return(3, nil)

		err := limiter.Allow(context.Background(), actorID, activity.KindPost, 3, testNow)
		var rateErr *activity.RateLimitError
		require.ErrorAs(t, err, &rateErr)
		assert.Equal(t, activity.KindPost, rateErr.Kind)
		assert.Equal(t, 3, rateErr.Count)
		assert.Equal(t, 3, rateErr.Ceiling)
	})

	t.Run("zero ceiling blocks outright", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		counter := contentMocks.NewMockCounter(ctrl)
		limiter := NewLimiter(counter, zerolog.Nop())

		counter.EXPECT().
			CountInWindow(gomock.Any(), actorID, activity.KindLike, gomock.Any(), gomock.Any()).
			Return(0, nil)

		err := limiter.Allow(context.Background(), actorID, activity.KindLike, 0, testNow)
		var rateErr *activity.RateLimitError
		require.ErrorAs(t, err, &rateErr)
	})

	t.Run("fails closed on counter error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		counter := contentMocks.NewMockCounter(ctrl)
		limiter := NewLimiter(counter, zerolog.Nop())

		counter.EXPECT().
			CountInWindow(gomock.Any(), actorID, activity.KindPost, gomock.Any(), gomock.Any()).
			Return(0, errors.New("connection refused"))

		err := limiter.Allow(context.Background(), actorID, activity.KindPost, 3, testNow)
		require.Error(t, err)
		var rateErr *activity.RateLimitError
		assert.False(t, errors.As(err, &rateErr))
	})

	t.Run("unwindowed kind never counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		counter := contentMocks.NewMockCounter(ctrl)
		limiter := NewLimiter(counter, zerolog.Nop())

		err := limiter.Allow(context.Background(), actorID, activity.KindChat, 0, testNow)
		require.NoError(t, err)
	})
}

func TestLimiter_RemainingShrinksWithCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actorID := uuid.New()
	counter := contentMocks.NewMockCounter(ctrl)
	limiter := NewLimiter(counter, zerolog.Nop())

	gomock.InOrder(
		counter.EXPECT().
			CountInWindow(gomock.Any(), actorID, activity.KindComment, gomock.Any(), gomock.Any()).
			Return(1, nil),
		counter.EXPECT().
			CountInWindow(gomock.Any(), actorID, activity.KindComment, gomock.Any(), gomock.Any()).
			Return(4, nil),
	)

	first, err := limiter.Remaining(context.Background(), actorID, activity.KindComment, 5, testNow)
	require.NoError(t, err)
	second, err := limiter.Remaining(context.Background(), actorID, activity.KindComment, 5, testNow)
	require.NoError(t, err)

	assert.Equal(t, 4, first)
	assert.Equal(t, 1, second)
	assert.Less(t, second, first)
}

func TestLimiter_WindowRolloverResetsQuota(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actorID := uuid.New()
	counter := contentMocks.NewMockCounter(ctrl)
	limiter := NewLimiter(counter, zerolog.Nop())

	today := testNow
	tomorrow := testNow.AddDate(0, 0, 1)
	todayFrom, todayTo := DayWindow(today)
	nextFrom, nextTo := DayWindow(tomorrow)

	counter.EXPECT().
		CountInWindow(gomock.Any(), actorID, activity.KindPost, todayFrom, todayTo).
		Return(3, nil)
	counter.EXPECT().
		CountInWindow(gomock.Any(), actorID, activity.KindPost, nextFrom, nextTo).
		Return(0, nil)

	err := limiter.Allow(context.Background(), actorID, activity.KindPost, 3, today)
	var rateErr *activity.RateLimitError
	require.ErrorAs(t, err, &rateErr)

	err = limiter.Allow(context.Background(), actorID, activity.KindPost, 3, tomorrow)
	require.NoError(t, err)
}

func TestLimiter_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actorID := uuid.New()
	counter := contentMocks.NewMockCounter(ctrl)
	limiter := NewLimiter(counter, zerolog.Nop())

	counts := map[activity.Kind]int{
		activity.KindPost:       1,
		activity.KindComment:    2,
		activity.KindLike:       3,
		activity.KindTest:       0,
		activity.KindLiveCoding: 1,
		activity.KindLesson:     2,
	}
	counter.EXPECT().
		CountInWindow(gomock.Any(), actorID, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, kind activity.Kind, _, _ time.Time) (int, error) {
			return counts[kind], nil
		}).
		Times(len(counts))

	got, err := limiter.Snapshot(context.Background(), actorID, testNow)
	require.NoError(t, err)
	assert.Equal(t, counts, got)
}

func TestCeilingFor(t *testing.T) {
	cfg := fleet.Default()
	assert.Equal(t, 7, CeilingFor(cfg, 7, activity.KindPost))
	assert.Equal(t, cfg.MaxPostsPerDay, CeilingFor(cfg, 0, activity.KindPost))
	assert.Equal(t, cfg.MaxTestsPerWeek, CeilingFor(cfg, 0, activity.KindTest))
}
