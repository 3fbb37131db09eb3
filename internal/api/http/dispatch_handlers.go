package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	appDispatch "github.com/yetkin-kariyer/botfleet/internal/application/dispatch"
	"github.com/yetkin-kariyer/botfleet/internal/domain/activity"
)

type dispatchRequest struct {
	ActorID       string `json:"actor_id"`
	Kind          string `json:"kind"`
	SkipHourCheck bool   `json:"skip_hour_check,omitempty"`
}

func (s *Server) dispatch(w http.ResponseWriter, r *http.Request) {
	var req dispatchRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	actorID, err := uuid.Parse(req.ActorID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "invalid actor_id")
		return
	}
	kind := activity.Kind(req.Kind)

	result, err := s.dispatchSvc.Dispatch(r.Context(), appDispatch.Input{
		ActorID:       actorID,
		Kind:          kind,
		SkipHourCheck: req.SkipHourCheck,
	})
	if s.collector != nil {
		s.collector.ObserveDispatch(string(kind), appDispatch.Reason(err))
	}
	if err != nil {
		status, code := statusForError(err)
		respondError(w, status, code, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, result)
}
