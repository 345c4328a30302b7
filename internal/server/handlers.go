package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talent-scout/internal/report"
	"github.com/jonathan/talent-scout/internal/session"
)

var validate = validator.New()

// MessageRequest is one candidate utterance.
type MessageRequest struct {
	Message string `json:"message" validate:"required,min=1,max=4000"`
}

// MessageResponse carries the assistant's reply and session progress.
type MessageResponse struct {
	Reply string `json:"reply"`
	Done  bool   `json:"done"`
}

// SessionResponse describes a session's current state.
type SessionResponse struct {
	ID       string `json:"id"`
	Greeting string `json:"greeting,omitempty"`
	Done     bool   `json:"done"`
}

// handleCreateSession starts a new screening conversation.
func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.sessions.Create()
	s.writeJSON(w, http.StatusCreated, SessionResponse{
		ID:       sess.ID.String(),
		Greeting: sess.Greeting(),
	})
}

// handleMessage feeds one utterance to a session.
func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}

	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "message is required (1-4000 characters)")
		return
	}

	reply, err := sess.HandleMessage(r.Context(), req.Message)
	if err == session.ErrExpired {
		s.writeError(w, http.StatusGone, "session expired")
		return
	}
	if err != nil {
		s.log.Error("failed to handle message", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to process message")
		return
	}

	s.writeJSON(w, http.StatusOK, MessageResponse{Reply: reply, Done: sess.Done()})
}

// handleGetSession reports a session's progress.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, SessionResponse{
		ID:   sess.ID.String(),
		Done: sess.Done(),
	})
}

// handleGetTranscript exports a completed session's transcript and
// evaluation.
func (s *Server) handleGetTranscript(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}
	if !sess.Done() {
		s.writeError(w, http.StatusConflict, "interview not complete")
		return
	}

	controller := sess.Controller()
	transcript := report.NewTranscript(controller.Transcript(), controller.Rating())
	s.writeJSON(w, http.StatusOK, transcript)
}

// handleGetInterview returns a persisted interview with candidate data
// decrypted. JWT-protected; requires a configured store.
func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	if s.store == nil || !s.store.Available() {
		s.writeError(w, http.StatusServiceUnavailable, "interview storage not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid interview id")
		return
	}

	stored, err := s.store.GetInterview(r.Context(), id)
	if err != nil {
		s.log.Error("failed to load interview", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "failed to load interview")
		return
	}
	if stored == nil {
		s.writeError(w, http.StatusNotFound, "interview not found")
		return
	}
	s.writeJSON(w, http.StatusOK, stored)
}

// handleHealth reports liveness and store availability.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":          "ok",
		"store_available": s.store != nil && s.store.Available(),
		"live_sessions":   s.sessions.Len(),
	})
}

// sessionFromPath resolves the {id} path parameter to a live session,
// writing the error response itself on failure.
func (s *Server) sessionFromPath(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid session id")
		return nil, false
	}

	sess, err := s.sessions.Get(id)
	if err == session.ErrExpired {
		s.writeError(w, http.StatusGone, "session expired")
		return nil, false
	}
	if err != nil {
		s.writeError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	return sess, true
}
