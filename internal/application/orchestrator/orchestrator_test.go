package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/yetkin-kariyer/botfleet/internal/application/executor"
	"github.com/yetkin-kariyer/botfleet/internal/application/schedule"
	"github.com/yetkin-kariyer/botfleet/internal/domain/activity"
	"github.com/yetkin-kariyer/botfleet/internal/domain/actor"
	actorMocks "github.com/yetkin-kariyer/botfleet/internal/domain/actor/mocks"
	"github.com/yetkin-kariyer/botfleet/internal/domain/badge"
	"github.com/yetkin-kariyer/botfleet/internal/domain/content"
	contentMocks "github.com/yetkin-kariyer/botfleet/internal/domain/content/mocks"
	"github.com/yetkin-kariyer/botfleet/internal/domain/fleet"
	fleetMocks "github.com/yetkin-kariyer/botfleet/internal/domain/fleet/mocks"
	"github.com/yetkin-kariyer/botfleet/internal/generator"
)

// stubChooser scripts every random decision.
type stubChooser struct {
	chance  bool
	intN    int
	between int
}

func (s stubChooser) Chance(float64) bool { return s.chance }
func (s stubChooser) IntN(n int) int {
	if s.intN >= n {
		return n - 1
	}
	return s.intN
}
func (s stubChooser) Between(min, _ int) int {
	if s.between > 0 {
		return s.between
	}
	return min
}

type fixture struct {
	orch    *Orchestrator
	actors  *actorMocks.MockRepository
	fleet   *fleetMocks.MockRepository
	counter *contentMocks.MockCounter
	store   *contentMocks.MockStore
}

func newFixture(t *testing.T, pick stubChooser) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	actors := actorMocks.NewMockRepository(ctrl)
	fleetRepo := fleetMocks.NewMockRepository(ctrl)
	counter := contentMocks.NewMockCounter(ctrl)
	store := contentMocks.NewMockStore(ctrl)

	limiter := schedule.NewLimiter(counter, zerolog.Nop())
	exec := executor.NewService(actors, store, badge.NopChecker{}, generator.NewMockGenerator(), pick, zerolog.Nop())
	orch := NewOrchestrator(actors, fleetRepo, limiter, exec, pick, zerolog.Nop())
	return &fixture{orch: orch, actors: actors, fleet: fleetRepo, counter: counter, store: store}
}

func batchActor(name string) *actor.Actor {
	return &actor.Actor{
		ActorID: uuid.New(),
		Name:    name,
		Config: &actor.Configuration{
			IsActive:        true,
			ScheduleEnabled: true,
			ActiveHours:     allHours(),
		},
		Character: &actor.Character{Persona: "a mobile developer"},
	}
}

func allHours() []int {
	hours := make([]int, 24)
	for i := range hours {
		hours[i] = i
	}
	return hours
}

func TestOrchestrator_RunSkipsOutOfHours(t *testing.T) {
	f := newFixture(t, stubChooser{})
	a := batchActor("gizem-dev")
	a.Config.ActiveHours = []int{-1}

	f.fleet.EXPECT().Get(gomock.Any()).Return(fleet.Default(), nil)
	f.actors.EXPECT().ListActive(gomock.Any()).Return([]*actor.Actor{a}, nil)

	report, err := f.orch.Run(context.Background(), RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, report.Skipped)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "not in active hours", report.Results[0].Reason)
}

func TestOrchestrator_RunSkipHourCheckProcessesEveryone(t *testing.T) {
	f := newFixture(t, stubChooser{})
	a := batchActor("gizem-dev")
	a.Config.ActiveHours = []int{-1}

	f.fleet.EXPECT().Get(gomock.Any()).Return(fleet.Default(), nil)
	f.actors.EXPECT().ListActive(gomock.Any()).Return([]*actor.Actor{a}, nil)
	// Counts snapshot for every windowed kind; all mins are zero so no
	// activities follow.
	f.counter.EXPECT().
		CountInWindow(gomock.Any(), a.ActorID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, nil).
		Times(6)

	report, err := f.orch.Run(context.Background(), RunOptions{SkipHourCheck: true})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Successful)
	assert.Equal(t, 0, report.Skipped)
}

func TestOrchestrator_RunIsolatesFailingActor(t *testing.T) {
	f := newFixture(t, stubChooser{})
	bad := batchActor("broken-dev")
	good := batchActor("solid-dev")

	f.fleet.EXPECT().Get(gomock.Any()).Return(fleet.Default(), nil)
	f.actors.EXPECT().ListActive(gomock.Any()).Return([]*actor.Actor{bad, good}, nil)

	f.counter.EXPECT().
		CountInWindow(gomock.Any(), bad.ActorID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, errors.New("db down"))
	f.counter.EXPECT().
		CountInWindow(gomock.Any(), good.ActorID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, nil).
		Times(6)

	report, err := f.orch.Run(context.Background(), RunOptions{SkipHourCheck: true})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Successful)
}

func TestOrchestrator_RunExecutesUnderMinimum(t *testing.T) {
	f := newFixture(t, stubChooser{})
	a := batchActor("ozan-dev")
	a.Config.MinLikesPerDay = 2
	a.Config.MaxLikesPerDay = 5

	cfg := fleet.Default()

	f.fleet.EXPECT().Get(gomock.Any()).Return(cfg, nil)
	f.actors.EXPECT().ListActive(gomock.Any()).Return([]*actor.Actor{a}, nil)
	f.counter.EXPECT().
		CountInWindow(gomock.Any(), a.ActorID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, nil).
		Times(6)

	target := &content.Post{PostID: uuid.New(), Content: "hi"}
	f.store.EXPECT().
		ListLikeablePosts(gomock.Any(), a.ActorID, gomock.Any()).
		Return([]*content.Post{target}, nil)
	f.store.EXPECT().CreateLike(gomock.Any(), gomock.Any()).Return(nil)
	f.actors.EXPECT().TouchLastActivity(gomock.Any(), a.ActorID, gomock.Any()).Return(nil)

	report, err := f.orch.Run(context.Background(), RunOptions{SkipHourCheck: true})
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.True(t, report.Results[0].Success)
	require.Len(t, report.Results[0].Activities, 1)
	assert.Equal(t, activity.KindLike, report.Results[0].Activities[0].Kind)
}

// failingPostGenerator refuses post text and delegates everything else.
type failingPostGenerator struct {
	*generator.MockGenerator
}

func (failingPostGenerator) PostContent(context.Context, *actor.Character, int) (string, error) {
	return "", errors.New("model timeout")
}

func TestOrchestrator_RunContinuesAfterActivityFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	actors := actorMocks.NewMockRepository(ctrl)
	fleetRepo := fleetMocks.NewMockRepository(ctrl)
	counter := contentMocks.NewMockCounter(ctrl)
	store := contentMocks.NewMockStore(ctrl)

	pick := stubChooser{chance: true}
	limiter := schedule.NewLimiter(counter, zerolog.Nop())
	exec := executor.NewService(actors, store, badge.NopChecker{}, failingPostGenerator{generator.NewMockGenerator()}, pick, zerolog.Nop())
	orch := NewOrchestrator(actors, fleetRepo, limiter, exec, pick, zerolog.Nop())

	a := batchActor("flaky-dev")
	a.Config.MinPostsPerDay = 1
	a.Config.MaxPostsPerDay = 2
	a.Config.MinLikesPerDay = 1
	a.Config.MaxLikesPerDay = 2

	fleetRepo.EXPECT().Get(gomock.Any()).Return(fleet.Default(), nil)
	actors.EXPECT().ListActive(gomock.Any()).Return([]*actor.Actor{a}, nil)
	counter.EXPECT().
		CountInWindow(gomock.Any(), a.ActorID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, nil).
		Times(6)
	store.EXPECT().ListJoinableCommunities(gomock.Any(), a.ActorID, gomock.Any()).Return(nil, nil)

	// The post generator dies, yet the like must still be attempted.
	target := &content.Post{PostID: uuid.New(), Content: "hi"}
	store.EXPECT().
		ListLikeablePosts(gomock.Any(), a.ActorID, gomock.Any()).
		Return([]*content.Post{target}, nil)
	store.EXPECT().CreateLike(gomock.Any(), gomock.Any()).Return(nil)
	actors.EXPECT().TouchLastActivity(gomock.Any(), a.ActorID, gomock.Any()).Return(nil)

	report, err := orch.Run(context.Background(), RunOptions{SkipHourCheck: true})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, 1, report.Successful)
	require.Len(t, report.Results, 1)
	assert.True(t, report.Results[0].Success)

	require.Len(t, report.Results[0].Activities, 2)
	assert.Equal(t, activity.KindPost, report.Results[0].Activities[0].Kind)
	assert.False(t, report.Results[0].Activities[0].Success)
	assert.Contains(t, report.Results[0].Activities[0].Detail, "model timeout")
	assert.Equal(t, activity.KindLike, report.Results[0].Activities[1].Kind)
	assert.True(t, report.Results[0].Activities[1].Success)
}

func TestOrchestrator_PlannedQuantity(t *testing.T) {
	cfg := &actor.Configuration{
		MinPostsPerDay: 1, MaxPostsPerDay: 3,
		MinLikesPerDay: 3, MaxLikesPerDay: 10,
	}
	fc := fleet.Default()

	t.Run("zero once minimum met", func(t *testing.T) {
		o := &Orchestrator{pick: stubChooser{}}
		assert.Equal(t, 0, o.plannedQuantity(cfg, fc, activity.KindLike, 3))
		assert.Equal(t, 0, o.plannedQuantity(cfg, fc, activity.KindLike, 7))
	})

	t.Run("bounded random below minimum", func(t *testing.T) {
		// Band is max-min = 7 wide; IntN scripted to the top picks 7.
		o := &Orchestrator{pick: stubChooser{intN: 6}}
		assert.Equal(t, 7, o.plannedQuantity(cfg, fc, activity.KindLike, 0))

		o = &Orchestrator{pick: stubChooser{intN: 0}}
		assert.Equal(t, 1, o.plannedQuantity(cfg, fc, activity.KindLike, 0))
	})

	t.Run("post is a coin flip", func(t *testing.T) {
		o := &Orchestrator{pick: stubChooser{chance: true}}
		assert.Equal(t, 1, o.plannedQuantity(cfg, fc, activity.KindPost, 0))

		o = &Orchestrator{pick: stubChooser{chance: false}}
		assert.Equal(t, 0, o.plannedQuantity(cfg, fc, activity.KindPost, 0))
	})

	t.Run("fleet ceiling backs an unset actor max", func(t *testing.T) {
		bare := &actor.Configuration{MinCommentsPerDay: 2}
		o := &Orchestrator{pick: stubChooser{intN: 100}}
		// span = fleet max 5 - min 2 = 3, IntN clamped to 2 -> 3, headroom 5.
		assert.Equal(t, 3, o.plannedQuantity(bare, fc, activity.KindComment, 0))
	})
}

func TestOrchestrator_RunRandom(t *testing.T) {
	f := newFixture(t, stubChooser{})
	a := batchActor("random-dev")

	f.actors.EXPECT().ListActive(gomock.Any()).Return([]*actor.Actor{a}, nil)
	// IntN 0 always picks the first implemented kind: POST.
	f.store.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(nil)
	f.actors.EXPECT().TouchLastActivity(gomock.Any(), a.ActorID, gomock.Any()).Return(nil)

	report, err := f.orch.RunRandom(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, report.Successful)
}

func TestOrchestrator_RunRandomRejectsBadCount(t *testing.T) {
	f := newFixture(t, stubChooser{})
	_, err := f.orch.RunRandom(context.Background(), 0)
	require.Error(t, err)
}

func TestOrchestrator_RunRandomNoActors(t *testing.T) {
	f := newFixture(t, stubChooser{})
	f.actors.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

	_, err := f.orch.RunRandom(context.Background(), 3)
	assert.ErrorIs(t, err, activity.ErrActorNotFound)
}
