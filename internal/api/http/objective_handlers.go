package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	appApply "github.com/yetkin-kariyer/botfleet/internal/application/apply"
)

type bulkApplyRequest struct {
	ActorIDs            []string `json:"actor_ids"`
	Mode                string   `json:"mode"`
	TeamSize            int      `json:"team_size,omitempty"`
	Filter              string   `json:"filter,omitempty"`
	MergeRemainderBelow int      `json:"merge_remainder_below,omitempty"`
}

func (s *Server) bulkApply(w http.ResponseWriter, r *http.Request) {
	objectiveID, err := parseUUIDParam(r, "objectiveId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid objectiveId")
		return
	}
	var req bulkApplyRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	if len(req.ActorIDs) == 0 {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "actor_ids required")
		return
	}
	actorIDs := make([]uuid.UUID, 0, len(req.ActorIDs))
	for _, raw := range req.ActorIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid actor id "+raw)
			return
		}
		actorIDs = append(actorIDs, id)
	}
	mode := appApply.Mode(req.Mode)
	if mode != appApply.ModeSolo && mode != appApply.ModeTeam {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "mode must be solo or team")
		return
	}

	report, err := s.applySvc.BulkApply(r.Context(), appApply.Input{
		ObjectiveID:         objectiveID,
		ActorIDs:            actorIDs,
		Mode:                mode,
		TeamSize:            req.TeamSize,
		Filter:              req.Filter,
		MergeRemainderBelow: req.MergeRemainderBelow,
	})
	if err != nil {
		status, code := statusForError(err)
		respondError(w, status, code, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, report)
}
