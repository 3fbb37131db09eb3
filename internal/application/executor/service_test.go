package executor

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/yetkin-kariyer/botfleet/internal/domain/activity"
	"github.com/yetkin-kariyer/botfleet/internal/domain/actor"
	actorMocks "github.com/yetkin-kariyer/botfleet/internal/domain/actor/mocks"
	"github.com/yetkin-kariyer/botfleet/internal/domain/badge"
	"github.com/yetkin-kariyer/botfleet/internal/domain/content"
	contentMocks "github.com/yetkin-kariyer/botfleet/internal/domain/content/mocks"
	"github.com/yetkin-kariyer/botfleet/internal/generator"
)

// fixedChooser removes randomness: Chance always answers the same, IntN
// always picks the first candidate, Between always picks the minimum.
type fixedChooser struct {
	chance bool
}

func (f fixedChooser) Chance(float64) bool    { return f.chance }
func (f fixedChooser) IntN(int) int           { return 0 }
func (f fixedChooser) Between(min, _ int) int { return min }

func testActor() *actor.Actor {
	return &actor.Actor{
		ID:      1,
		ActorID: uuid.New(),
		Name:    "ayse-dev",
		Config:  &actor.Configuration{IsActive: true, ScheduleEnabled: true},
		Character: &actor.Character{
			Persona:   "a backend developer from Ankara",
			Tone:      "warm",
			Expertise: []string{"Go", "PostgreSQL"},
		},
	}
}

func newTestService(t *testing.T) (*Service, *actorMocks.MockRepository, *contentMocks.MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	actors := actorMocks.NewMockRepository(ctrl)
	store := contentMocks.NewMockStore(ctrl)
	svc := NewService(actors, store, badge.NopChecker{}, generator.NewMockGenerator(), fixedChooser{}, zerolog.Nop())
	return svc, actors, store
}

func TestService_ExecutePost(t *testing.T) {
	svc, actors, store := newTestService(t)
	a := testActor()

	var created *content.Post
	store.EXPECT().
		CreatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *content.Post) error {
			created = p
			return nil
		})
	actors.EXPECT().
		TouchLastActivity(gomock.Any(), a.ActorID, gomock.Any()).
		Return(nil)

	result, err := svc.Execute(context.Background(), a, activity.KindPost)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Count)
	require.NotNil(t, created)
	assert.Equal(t, a.ActorID, created.ActorID)
	assert.NotEmpty(t, created.Content)
}

func TestService_ExecuteUnimplementedKind(t *testing.T) {
	svc, _, _ := newTestService(t)

	for _, kind := range []activity.Kind{
		activity.KindFreelancerBid,
		activity.KindJobApplication,
		activity.KindFriendRequest,
		activity.KindChat,
	} {
		_, err := svc.Execute(context.Background(), testActor(), kind)
		assert.ErrorIs(t, err, activity.ErrNotImplemented, "kind %s", kind)
	}
}

func TestService_ExecuteCommentWithoutCandidates(t *testing.T) {
	svc, actors, store := newTestService(t)
	a := testActor()

	store.EXPECT().
		ListCommentablePosts(gomock.Any(), a.ActorID, gomock.Any()).
		Return(nil, nil)
	actors.EXPECT().
		TouchLastActivity(gomock.Any(), a.ActorID, gomock.Any()).
		Return(nil)

	result, err := svc.Execute(context.Background(), a, activity.KindComment)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.Count)
}

func TestService_ExecuteLike(t *testing.T) {
	svc, actors, store := newTestService(t)
	a := testActor()
	target := &content.Post{PostID: uuid.New(), ActorID: uuid.New(), Content: "hello"}

	store.EXPECT().
		ListLikeablePosts(gomock.Any(), a.ActorID, gomock.Any()).
		Return([]*content.Post{target}, nil)
	store.EXPECT().
		CreateLike(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *content.Like) error {
			assert.Equal(t, target.PostID, l.PostID)
			assert.Equal(t, a.ActorID, l.ActorID)
			return nil
		})
	actors.EXPECT().
		TouchLastActivity(gomock.Any(), a.ActorID, gomock.Any()).
		Return(nil)

	result, err := svc.Execute(context.Background(), a, activity.KindLike)
	require.NoError(t, err)
	require.NotNil(t, result.TargetID)
	assert.Equal(t, target.PostID, *result.TargetID)
}

func TestService_ExecuteTestScoresAttempt(t *testing.T) {
	svc, actors, store := newTestService(t)
	a := testActor()
	quiz := &content.Quiz{
		QuizID: uuid.New(),
		Title:  "Go basics",
		Type:   content.QuizTypeTest,
		Questions: []content.Question{
			{Prompt: "q1", Choices: []string{"a", "b"}, CorrectIndex: 1},
			{Prompt: "q2", Choices: []string{"a", "b"}, CorrectIndex: 1},
		},
	}

	store.EXPECT().
		ListQuizzes(gomock.Any(), content.QuizTypeTest, gomock.Any()).
		Return([]*content.Quiz{quiz}, nil)
	store.EXPECT().
		ListAttemptedQuizIDs(gomock.Any(), a.ActorID, content.QuizTypeTest, gomock.Any()).
		Return(nil, nil)
	store.EXPECT().
		CreateTestAttempt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, attempt *content.TestAttempt) error {
			// Mock generator answers even questions correctly.
			assert.Equal(t, 1, attempt.CorrectCount)
			assert.Equal(t, 2, attempt.TotalQuestions)
			assert.Equal(t, 50, attempt.Score)
			assert.GreaterOrEqual(t, attempt.DurationSeconds, minTestSeconds)
			assert.LessOrEqual(t, attempt.DurationSeconds, maxTestSeconds)
			return nil
		})
	actors.EXPECT().
		TouchLastActivity(gomock.Any(), a.ActorID, gomock.Any()).
		Return(nil)

	result, err := svc.Execute(context.Background(), a, activity.KindTest)
	require.NoError(t, err)
	assert.Equal(t, activity.KindTest, result.Kind)
}

func TestService_ExecuteTestSkipsAttemptedQuizzes(t *testing.T) {
	svc, actors, store := newTestService(t)
	a := testActor()
	attempted := &content.Quiz{QuizID: uuid.New(), Type: content.QuizTypeTest}

	store.EXPECT().
		ListQuizzes(gomock.Any(), content.QuizTypeTest, gomock.Any()).
		Return([]*content.Quiz{attempted}, nil)
	store.EXPECT().
		ListAttemptedQuizIDs(gomock.Any(), a.ActorID, content.QuizTypeTest, gomock.Any()).
		Return([]uuid.UUID{attempted.QuizID}, nil)
	actors.EXPECT().
		TouchLastActivity(gomock.Any(), a.ActorID, gomock.Any()).
		Return(nil)

	result, err := svc.Execute(context.Background(), a, activity.KindTest)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
}

func TestService_ExecuteFailsWhenStoreFails(t *testing.T) {
	svc, _, store := newTestService(t)
	a := testActor()

	store.EXPECT().
		CreatePost(gomock.Any(), gomock.Any()).
		Return(errors.New("insert failed"))

	_, err := svc.Execute(context.Background(), a, activity.KindPost)
	require.Error(t, err)
}

func TestService_JoinCommunity(t *testing.T) {
	svc, _, store := newTestService(t)
	a := testActor()
	community := &content.Community{CommunityID: uuid.New(), Slug: "go-devs", Name: "Go Devs"}

	store.EXPECT().
		ListJoinableCommunities(gomock.Any(), a.ActorID, gomock.Any()).
		Return([]*content.Community{community}, nil)
	store.EXPECT().
		CreateMembership(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *content.Membership) error {
			assert.Equal(t, community.CommunityID, m.CommunityID)
			return nil
		})

	result, err := svc.JoinCommunity(context.Background(), a)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 1, result.Count)
}

func TestService_JoinCommunityNothingToJoin(t *testing.T) {
	svc, _, store := newTestService(t)
	a := testActor()

	store.EXPECT().
		ListJoinableCommunities(gomock.Any(), a.ActorID, gomock.Any()).
		Return(nil, nil)

	result, err := svc.JoinCommunity(context.Background(), a)
	require.NoError(t, err)
	assert.Nil(t, result)
}
