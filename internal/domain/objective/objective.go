package objective

import (
	"time"

	"github.com/google/uuid"
)

// Objective is an event actors apply to, alone or as a team. Hackathons are
// the canonical case.
type Objective struct {
	ObjectiveID      uuid.UUID  `json:"objectiveId"`
	Title            string     `json:"title"`
	ApplicationOpen  time.Time  `json:"applicationOpen"`
	ApplicationClose time.Time  `json:"applicationClose"`
	// Capacity caps accepted applications. Zero means unlimited.
	Capacity    int `json:"capacity"`
	MinTeamSize int `json:"minTeamSize"`
	MaxTeamSize int `json:"maxTeamSize"`
}

// AcceptingAt reports whether the application window is open at the given
// instant.
func (o *Objective) AcceptingAt(at time.Time) bool {
	return !at.Before(o.ApplicationOpen) && at.Before(o.ApplicationClose)
}

// ApplicationStatus is the lifecycle state of an application.
type ApplicationStatus string

const (
	StatusAutoAccepted ApplicationStatus = "auto_accepted"
)

// Application records one actor's entry to an objective. TeamID is nil for
// solo applications.
type Application struct {
	ApplicationID uuid.UUID         `json:"applicationId"`
	ObjectiveID   uuid.UUID         `json:"objectiveId"`
	ActorID       uuid.UUID         `json:"actorId"`
	TeamID        *uuid.UUID        `json:"teamId,omitempty"`
	Status        ApplicationStatus `json:"status"`
	Motivation    string            `json:"motivation"`
	Skills        []string          `json:"skills"`
	CreatedAt     time.Time         `json:"createdAt"`
}
