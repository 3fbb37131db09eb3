// Package teamform partitions candidate actors into teams for group
// applications.
package teamform

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yetkin-kariyer/botfleet/internal/domain/team"
)

// Options tune team formation.
type Options struct {
	// MergeRemainderBelow merges a final chunk smaller than this value into
	// the previous team instead of keeping it as an under-sized team. Zero
	// keeps every remainder as its own team, so no candidate is ever
	// dropped either way.
	MergeRemainderBelow int
}

// Service forms and persists teams.
type Service struct {
	teams  team.Repository
	logger zerolog.Logger
}

// NewService creates a team formation service.
func NewService(teams team.Repository, logger zerolog.Logger) *Service {
	return &Service{
		teams:  teams,
		logger: logger.With().Str("service", "teamform").Logger(),
	}
}

// Plan partitions candidates into consecutive chunks of teamSize. The first
// member of each chunk leads it. Team ids are derived from the objective and
// the chunk index, so re-planning the same inputs yields the same ids.
func Plan(objectiveID uuid.UUID, candidates []uuid.UUID, teamSize int, opts Options) ([]*team.Team, error) {
	if teamSize < 2 {
		return nil, fmt.Errorf("team size must be at least 2, got %d", teamSize)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	var teams []*team.Team
	for start := 0; start < len(candidates); start += teamSize {
		end := start + teamSize
		if end > len(candidates) {
			end = len(candidates)
		}
		chunk := candidates[start:end]
		n := len(teams) + 1
		teams = append(teams, &team.Team{
			TeamID:      uuid.NewSHA1(objectiveID, []byte(fmt.Sprintf("team-%d", n))),
			ObjectiveID: objectiveID,
			Name:        fmt.Sprintf("Team %d", n),
			LeaderID:    chunk[0],
			MemberIDs:   append([]uuid.UUID(nil), chunk...),
		})
	}

	last := teams[len(teams)-1]
	if len(teams) > 1 && last.Size() < opts.MergeRemainderBelow {
		prev := teams[len(teams)-2]
		prev.MemberIDs = append(prev.MemberIDs, last.MemberIDs...)
		teams = teams[:len(teams)-1]
	}
	return teams, nil
}

// FormTeams plans and persists teams for the objective.
func (s *Service) FormTeams(ctx context.Context, objectiveID uuid.UUID, candidates []uuid.UUID, teamSize int, opts Options) ([]*team.Team, error) {
	teams, err := Plan(objectiveID, candidates, teamSize, opts)
	if err != nil {
		return nil, err
	}
	for _, t := range teams {
		if err := s.teams.Create(ctx, t); err != nil {
			return nil, fmt.Errorf("create team %s: %w", t.Name, err)
		}
	}
	s.logger.Info().
		Str("objective_id", objectiveID.String()).
		Int("candidates", len(candidates)).
		Int("teams", len(teams)).
		Msg("teams formed")
	return teams, nil
}
