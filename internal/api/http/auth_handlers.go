package httpapi

import (
	"net/http"
	"time"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	User         interface{} `json:"user"`
	SessionID    string      `json:"session_id"`
	ExpiresAt    string      `json:"expires_at"`
	SessionToken string      `json:"session_token"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	res, err := s.authSvc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
		return
	}

	cookie := &http.Cookie{
		Name:     s.sessionCookieName,
		Value:    res.Token,
		Path:     "/",
		Expires:  res.Session.ExpiresAt,
		HttpOnly: true,
		Secure:   s.sessionCookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)

	respondJSON(w, http.StatusOK, loginResponse{
		User:         res.User,
		SessionID:    res.Session.SessionID.String(),
		ExpiresAt:    res.Session.ExpiresAt.Format(time.RFC3339),
		SessionToken: res.Token,
	})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	token := extractToken(r, s.sessionCookieName)
	_ = s.authSvc.Logout(r.Context(), token)

	cookie := &http.Cookie{
		Name:     s.sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.sessionCookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
	http.SetCookie(w, cookie)
	respondJSON(w, http.StatusOK, map[string]interface{}{"status": "OK"})
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	u := authUserFromContext(r.Context())
	if u == nil {
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user_id":  u.UserID,
		"username": u.Username,
		"role":     u.Role,
	})
}

func (s *Server) bootstrapAdmin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	u, err := s.authSvc.Bootstrap(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, u)
}
