package httpapi

import (
	"net/http"
	"time"

	appOrchestrator "github.com/yetkin-kariyer/botfleet/internal/application/orchestrator"
	"github.com/yetkin-kariyer/botfleet/internal/domain/activity"
	"github.com/yetkin-kariyer/botfleet/internal/domain/fleet"
)

type runRequest struct {
	SkipHourCheck bool `json:"skip_hour_check,omitempty"`
}

func (s *Server) runFleet(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	_ = decodeBody(r, &req)

	report, err := s.orchestrator.Run(r.Context(), appOrchestrator.RunOptions{
		SkipHourCheck: req.SkipHourCheck,
	})
	if err != nil {
		if s.collector != nil {
			s.collector.ObserveRun("manual", "error", 0, 0, 0)
		}
		status, code := statusForError(err)
		respondError(w, status, code, err.Error())
		return
	}
	if s.collector != nil {
		s.collector.ObserveRun("manual", "ok", report.Successful, report.Failed, report.Skipped)
	}
	respondJSON(w, http.StatusOK, report)
}

type runRandomRequest struct {
	Count int `json:"count"`
}

func (s *Server) runRandom(w http.ResponseWriter, r *http.Request) {
	var req runRandomRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	if req.Count <= 0 {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "count must be positive")
		return
	}
	report, err := s.orchestrator.RunRandom(r.Context(), req.Count)
	if err != nil {
		status, code := statusForError(err)
		respondError(w, status, code, err.Error())
		return
	}
	if s.collector != nil {
		s.collector.ObserveRun("random", "ok", report.Successful, report.Failed, report.Skipped)
	}
	respondJSON(w, http.StatusOK, report)
}

func (s *Server) getFleetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.fleetRepo.Get(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	if cfg == nil {
		cfg = fleet.Default()
	}
	respondJSON(w, http.StatusOK, cfg)
}

type fleetConfigRequest struct {
	ScheduleEnabled      bool     `json:"scheduleEnabled"`
	EnabledKinds         []string `json:"enabledKinds"`
	ActiveHours          []int    `json:"activeHours"`
	MaxPostsPerDay       int      `json:"maxPostsPerDay"`
	MaxCommentsPerDay    int      `json:"maxCommentsPerDay"`
	MaxLikesPerDay       int      `json:"maxLikesPerDay"`
	MaxTestsPerWeek      int      `json:"maxTestsPerWeek"`
	MaxLiveCodingPerWeek int      `json:"maxLiveCodingPerWeek"`
	MaxLessonsPerWeek    int      `json:"maxLessonsPerWeek"`
}

func (s *Server) updateFleetConfig(w http.ResponseWriter, r *http.Request) {
	var req fleetConfigRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	cfg := &fleet.Config{
		ScheduleEnabled:      req.ScheduleEnabled,
		ActiveHours:          req.ActiveHours,
		MaxPostsPerDay:       req.MaxPostsPerDay,
		MaxCommentsPerDay:    req.MaxCommentsPerDay,
		MaxLikesPerDay:       req.MaxLikesPerDay,
		MaxTestsPerWeek:      req.MaxTestsPerWeek,
		MaxLiveCodingPerWeek: req.MaxLiveCodingPerWeek,
		MaxLessonsPerWeek:    req.MaxLessonsPerWeek,
		UpdatedAt:            time.Now().UTC(),
	}
	for _, k := range req.EnabledKinds {
		cfg.EnabledKinds = append(cfg.EnabledKinds, activity.Kind(k))
	}
	if err := cfg.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	if err := s.fleetRepo.Save(r.Context(), cfg); err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}
