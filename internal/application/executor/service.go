// Package executor performs a single activity of a given kind on behalf of
// an actor: it generates the content, writes the domain record, and stamps
// the actor's last-activity time.
package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yetkin-kariyer/botfleet/internal/application/chance"
	"github.com/yetkin-kariyer/botfleet/internal/domain/activity"
	"github.com/yetkin-kariyer/botfleet/internal/domain/actor"
	"github.com/yetkin-kariyer/botfleet/internal/domain/badge"
	"github.com/yetkin-kariyer/botfleet/internal/domain/content"
	"github.com/yetkin-kariyer/botfleet/internal/generator"
)

// candidateLimit bounds how many targets are fetched when picking a post to
// like or comment on, or a community to join.
const candidateLimit = 20

// Test attempts last 2 to 7 minutes, live coding 10 to 40.
const (
	minTestSeconds       = 120
	maxTestSeconds       = 420
	minLiveCodingSeconds = 600
	maxLiveCodingSeconds = 2400
)

// Service executes single activities.
type Service struct {
	actors actor.Repository
	store  content.Store
	badges badge.Checker
	gen    generator.Generator
	pick   chance.Chooser
	logger zerolog.Logger
}

// NewService creates an activity executor.
func NewService(
	actors actor.Repository,
	store content.Store,
	badges badge.Checker,
	gen generator.Generator,
	pick chance.Chooser,
	logger zerolog.Logger,
) *Service {
	return &Service{
		actors: actors,
		store:  store,
		badges: badges,
		gen:    gen,
		pick:   pick,
		logger: logger.With().Str("service", "executor").Logger(),
	}
}

// Execute performs one activity of the given kind for the actor. Kinds that
// have no execution path return activity.ErrNotImplemented.
func (s *Service) Execute(ctx context.Context, a *actor.Actor, kind activity.Kind) (*activity.Result, error) {
	var (
		result *activity.Result
		err    error
	)
	switch kind {
	case activity.KindPost:
		result, err = s.createPost(ctx, a)
	case activity.KindComment:
		result, err = s.createComment(ctx, a)
	case activity.KindLike:
		result, err = s.createLike(ctx, a)
	case activity.KindTest:
		result, err = s.takeQuiz(ctx, a, content.QuizTypeTest)
	case activity.KindLiveCoding:
		result, err = s.takeQuiz(ctx, a, content.QuizTypeLiveCoding)
	case activity.KindLesson:
		result, err = s.completeLesson(ctx, a)
	default:
		return nil, fmt.Errorf("%w: %s", activity.ErrNotImplemented, kind)
	}
	if err != nil {
		return nil, err
	}
	if touchErr := s.actors.TouchLastActivity(ctx, a.ActorID, time.Now().UTC()); touchErr != nil {
		// The activity itself landed; a failed stamp is not worth failing
		// the run over.
		s.logger.Warn().Err(touchErr).Str("actor_id", a.ActorID.String()).Msg("failed to stamp last activity")
	}
	return result, nil
}

func (s *Service) createPost(ctx context.Context, a *actor.Actor) (*activity.Result, error) {
	style := s.pick.Between(1, generator.PostStyles)
	text, err := s.gen.PostContent(ctx, a.Character, style)
	if err != nil {
		return nil, err
	}
	post := &content.Post{
		PostID:    uuid.New(),
		ActorID:   a.ActorID,
		Content:   text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return &activity.Result{Kind: activity.KindPost, Success: true, Count: 1, TargetID: &post.PostID}, nil
}

func (s *Service) createComment(ctx context.Context, a *actor.Actor) (*activity.Result, error) {
	posts, err := s.store.ListCommentablePosts(ctx, a.ActorID, candidateLimit)
	if err != nil {
		return nil, fmt.Errorf("list commentable posts: %w", err)
	}
	if len(posts) == 0 {
		return &activity.Result{Kind: activity.KindComment, Success: true, Count: 0, Detail: "no posts to comment on"}, nil
	}
	target := posts[s.pick.IntN(len(posts))]
	text, err := s.gen.CommentFor(ctx, a.Character, target.Content)
	if err != nil {
		return nil, err
	}
	comment := &content.Comment{
		CommentID: uuid.New(),
		PostID:    target.PostID,
		ActorID:   a.ActorID,
		Content:   text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return &activity.Result{Kind: activity.KindComment, Success: true, Count: 1, TargetID: &target.PostID}, nil
}

func (s *Service) createLike(ctx context.Context, a *actor.Actor) (*activity.Result, error) {
	posts, err := s.store.ListLikeablePosts(ctx, a.ActorID, candidateLimit)
	if err != nil {
		return nil, fmt.Errorf("list likeable posts: %w", err)
	}
	if len(posts) == 0 {
		return &activity.Result{Kind: activity.KindLike, Success: true, Count: 0, Detail: "no posts to like"}, nil
	}
	target := posts[s.pick.IntN(len(posts))]
	like := &content.Like{
		LikeID:    uuid.New(),
		PostID:    target.PostID,
		ActorID:   a.ActorID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateLike(ctx, like); err != nil {
		return nil, fmt.Errorf("create like: %w", err)
	}
	return &activity.Result{Kind: activity.KindLike, Success: true, Count: 1, TargetID: &target.PostID}, nil
}

func (s *Service) takeQuiz(ctx context.Context, a *actor.Actor, qt content.QuizType) (*activity.Result, error) {
	kind := activity.KindTest
	if qt == content.QuizTypeLiveCoding {
		kind = activity.KindLiveCoding
	}
	quizzes, err := s.store.ListQuizzes(ctx, qt, candidateLimit)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	now := time.Now().UTC()
	weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -int(now.Weekday()))
	attempted, err := s.store.ListAttemptedQuizIDs(ctx, a.ActorID, qt, weekStart)
	if err != nil {
		return nil, fmt.Errorf("list attempted quizzes: %w", err)
	}
	seen := make(map[uuid.UUID]struct{}, len(attempted))
	for _, id := range attempted {
		seen[id] = struct{}{}
	}
	var fresh []*content.Quiz
	for _, q := range quizzes {
		if _, ok := seen[q.QuizID]; !ok {
			fresh = append(fresh, q)
		}
	}
	if len(fresh) == 0 {
		return &activity.Result{Kind: kind, Success: true, Count: 0, Detail: "no unattempted quizzes"}, nil
	}
	quiz := fresh[s.pick.IntN(len(fresh))]

	if qt == content.QuizTypeLiveCoding {
		attempt := &content.LiveCodingAttempt{
			AttemptID:       uuid.New(),
			QuizID:          quiz.QuizID,
			ActorID:         a.ActorID,
			DurationSeconds: s.pick.Between(minLiveCodingSeconds, maxLiveCodingSeconds),
			CompletedAt:     time.Now().UTC(),
		}
		if err := s.store.CreateLiveCodingAttempt(ctx, attempt); err != nil {
			return nil, fmt.Errorf("create live coding attempt: %w", err)
		}
		return &activity.Result{Kind: kind, Success: true, Count: 1, TargetID: &quiz.QuizID}, nil
	}

	answers, err := s.gen.AnswerQuiz(ctx, a.Character, quiz)
	if err != nil {
		return nil, err
	}
	correct := 0
	for i, q := range quiz.Questions {
		if i < len(answers) && answers[i] == q.CorrectIndex {
			correct++
		}
	}
	score := 0
	if len(quiz.Questions) > 0 {
		score = correct * 100 / len(quiz.Questions)
	}
	attempt := &content.TestAttempt{
		AttemptID:       uuid.New(),
		QuizID:          quiz.QuizID,
		ActorID:         a.ActorID,
		Score:           score,
		CorrectCount:    correct,
		TotalQuestions:  len(quiz.Questions),
		DurationSeconds: s.pick.Between(minTestSeconds, maxTestSeconds),
		CompletedAt:     time.Now().UTC(),
	}
	if err := s.store.CreateTestAttempt(ctx, attempt); err != nil {
		return nil, fmt.Errorf("create test attempt: %w", err)
	}
	return &activity.Result{
		Kind:     kind,
		Success:  true,
		Count:    1,
		TargetID: &quiz.QuizID,
		Detail:   fmt.Sprintf("scored %d", score),
	}, nil
}

func (s *Service) completeLesson(ctx context.Context, a *actor.Actor) (*activity.Result, error) {
	lessons, err := s.store.ListLessons(ctx, candidateLimit)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	done, err := s.store.ListCompletedLessonSlugs(ctx, a.ActorID)
	if err != nil {
		return nil, fmt.Errorf("list completed lessons: %w", err)
	}
	seen := make(map[string]struct{}, len(done))
	for _, slug := range done {
		seen[slug] = struct{}{}
	}
	var fresh []*content.Lesson
	for _, l := range lessons {
		if _, ok := seen[l.LessonSlug]; !ok {
			fresh = append(fresh, l)
		}
	}
	if len(fresh) == 0 {
		return &activity.Result{Kind: activity.KindLesson, Success: true, Count: 0, Detail: "no uncompleted lessons"}, nil
	}
	lesson := fresh[s.pick.IntN(len(fresh))]
	completion := &content.LessonCompletion{
		CompletionID: uuid.New(),
		ActorID:      a.ActorID,
		LessonSlug:   lesson.LessonSlug,
		Score:        s.pick.Between(60, 100),
		CompletedAt:  time.Now().UTC(),
	}
	if err := s.store.CreateLessonCompletion(ctx, completion); err != nil {
		return nil, fmt.Errorf("create lesson completion: %w", err)
	}
	return &activity.Result{Kind: activity.KindLesson, Success: true, Count: 1}, nil
}

// JoinCommunity has the actor join one community it is not a member of yet.
// A nil result with nil error means there was nothing to join.
func (s *Service) JoinCommunity(ctx context.Context, a *actor.Actor) (*activity.Result, error) {
	communities, err := s.store.ListJoinableCommunities(ctx, a.ActorID, candidateLimit)
	if err != nil {
		return nil, fmt.Errorf("list joinable communities: %w", err)
	}
	if len(communities) == 0 {
		return nil, nil
	}
	target := communities[s.pick.IntN(len(communities))]
	membership := &content.Membership{
		CommunityID: target.CommunityID,
		ActorID:     a.ActorID,
		JoinedAt:    time.Now().UTC(),
	}
	if err := s.store.CreateMembership(ctx, membership); err != nil {
		return nil, fmt.Errorf("create membership: %w", err)
	}
	return &activity.Result{Success: true, Count: 1, TargetID: &target.CommunityID, Detail: "joined " + target.Name}, nil
}

// ShareBadges posts about any badge the actor earned but has not shared yet,
// marking each as shared. Returns the number of share posts created.
func (s *Service) ShareBadges(ctx context.Context, a *actor.Actor) (int, error) {
	badges, err := s.badges.UnsharedBadges(ctx, a.ActorID)
	if err != nil {
		return 0, fmt.Errorf("list unshared badges: %w", err)
	}
	shared := 0
	for _, b := range badges {
		text, err := s.gen.BadgeSharePost(ctx, a.Character, b.Name)
		if err != nil {
			return shared, err
		}
		post := &content.Post{
			PostID:    uuid.New(),
			ActorID:   a.ActorID,
			Content:   text,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.store.CreatePost(ctx, post); err != nil {
			return shared, fmt.Errorf("create badge share post: %w", err)
		}
		if err := s.badges.MarkShared(ctx, a.ActorID, b.BadgeID); err != nil {
			return shared, fmt.Errorf("mark badge shared: %w", err)
		}
		shared++
	}
	return shared, nil
}
