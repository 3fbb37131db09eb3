package activity

import "github.com/google/uuid"

// Result is the outcome of one executed activity.
type Result struct {
	Kind     Kind       `json:"kind"`
	Success  bool       `json:"success"`
	Count    int        `json:"count"`
	TargetID *uuid.UUID `json:"targetId,omitempty"`
	Detail   string     `json:"detail,omitempty"`
}
