package team

import (
	"time"

	"github.com/google/uuid"
)

// Team is a group of actors applied together to an objective. The leader is
// always the first member listed.
type Team struct {
	TeamID      uuid.UUID   `json:"teamId"`
	ObjectiveID uuid.UUID   `json:"objectiveId"`
	Name        string      `json:"name"`
	LeaderID    uuid.UUID   `json:"leaderId"`
	MemberIDs   []uuid.UUID `json:"memberIds"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Size returns the member count including the leader.
func (t *Team) Size() int {
	return len(t.MemberIDs)
}
