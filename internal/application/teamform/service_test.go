package teamform

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/yetkin-kariyer/botfleet/internal/domain/team"
	teamMocks "github.com/yetkin-kariyer/botfleet/internal/domain/team/mocks"
)

func candidates(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func TestPlan_FiveCandidatesSizeTwo(t *testing.T) {
	objectiveID := uuid.New()
	ids := candidates(5)

	teams, err := Plan(objectiveID, ids, 2, Options{})
	require.NoError(t, err)
	require.Len(t, teams, 3)

	assert.Equal(t, ids[0], teams[0].LeaderID)
	assert.Equal(t, []uuid.UUID{ids[0], ids[1]}, teams[0].MemberIDs)
	assert.Equal(t, ids[2], teams[1].LeaderID)
	assert.Equal(t, []uuid.UUID{ids[2], ids[3]}, teams[1].MemberIDs)

	// The remainder keeps its own team.
	assert.Equal(t, ids[4], teams[2].LeaderID)
	assert.Equal(t, []uuid.UUID{ids[4]}, teams[2].MemberIDs)

	assert.Equal(t, "Team 1", teams[0].Name)
	assert.Equal(t, "Team 2", teams[1].Name)
	assert.Equal(t, "Team 3", teams[2].Name)
}

func TestPlan_EveryCandidateInExactlyOneTeam(t *testing.T) {
	objectiveID := uuid.New()
	for _, tc := range []struct{ n, size, teams int }{
		{1, 2, 1},
		{4, 2, 2},
		{7, 3, 3},
		{9, 3, 3},
		{10, 4, 3},
	} {
		ids := candidates(tc.n)
		teams, err := Plan(objectiveID, ids, tc.size, Options{})
		require.NoError(t, err)
		assert.Len(t, teams, tc.teams, "n=%d size=%d", tc.n, tc.size)

		seen := make(map[uuid.UUID]int)
		for _, tm := range teams {
			assert.Equal(t, tm.MemberIDs[0], tm.LeaderID)
			for _, id := range tm.MemberIDs {
				seen[id]++
			}
		}
		assert.Len(t, seen, tc.n)
		for id, count := range seen {
			assert.Equal(t, 1, count, "candidate %s", id)
		}
	}
}

func TestPlan_DeterministicTeamIDs(t *testing.T) {
	objectiveID := uuid.New()
	ids := candidates(4)

	first, err := Plan(objectiveID, ids, 2, Options{})
	require.NoError(t, err)
	second, err := Plan(objectiveID, ids, 2, Options{})
	require.NoError(t, err)

	assert.Equal(t, first[0].TeamID, second[0].TeamID)
	assert.Equal(t, first[1].TeamID, second[1].TeamID)
	assert.NotEqual(t, first[0].TeamID, first[1].TeamID)
}

func TestPlan_MergeRemainder(t *testing.T) {
	objectiveID := uuid.New()
	ids := candidates(5)

	teams, err := Plan(objectiveID, ids, 2, Options{MergeRemainderBelow: 2})
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, []uuid.UUID{ids[2], ids[3], ids[4]}, teams[1].MemberIDs)
	assert.Equal(t, ids[2], teams[1].LeaderID)
}

func TestPlan_RejectsTinyTeamSize(t *testing.T) {
	_, err := Plan(uuid.New(), candidates(4), 1, Options{})
	require.Error(t, err)
}

func TestPlan_EmptyCandidates(t *testing.T) {
	teams, err := Plan(uuid.New(), nil, 3, Options{})
	require.NoError(t, err)
	assert.Empty(t, teams)
}

func TestService_FormTeamsPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := teamMocks.NewMockRepository(ctrl)
	svc := NewService(repo, zerolog.Nop())

	objectiveID := uuid.New()
	ids := candidates(4)

	var created []*team.Team
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tm *team.Team) error {
			created = append(created, tm)
			return nil
		}).
		Times(2)

	teams, err := svc.FormTeams(context.Background(), objectiveID, ids, 2, Options{})
	require.NoError(t, err)
	assert.Equal(t, teams, created)
}
