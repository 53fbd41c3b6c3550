package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/no1453/woggle/internal/api/apierr"
	"github.com/no1453/woggle/internal/api/request"
	"github.com/no1453/woggle/internal/api/response"
	"github.com/no1453/woggle/internal/dependencies/clock"
	"github.com/no1453/woggle/internal/model"
	"github.com/no1453/woggle/internal/services/game"
	"github.com/no1453/woggle/internal/services/validator"
)

// SessionHandler handles session-related endpoints
type SessionHandler struct {
	gameController *game.Controller
	clock          clock.Clock
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(gameController *game.Controller, clock clock.Clock) *SessionHandler {
	return &SessionHandler{
		gameController: gameController,
		clock:          clock,
	}
}

func sessionID(r *http.Request) model.SessionID {
	return model.SessionID(mux.Vars(r)["id"])
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, err := h.gameController.NewSession(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(session, h.clock.Now()))
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.gameController.GetSession(r.Context(), sessionID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(session, h.clock.Now()))
}

// Delete handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gameController.DeleteSession(r.Context(), sessionID(r)); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// SubmitWord handles POST /api/v1/sessions/{id}/words
func (h *SessionHandler) SubmitWord(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitWord
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid JSON body"))
		return
	}

	path := make(model.Path, len(req.Path))
	for i, cell := range req.Path {
		path[i] = model.Position{Row: cell.Row, Col: cell.Col}
	}

	id := sessionID(r)
	result, err := h.gameController.SubmitPath(r.Context(), id, path)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	session, err := h.gameController.GetSession(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayResult{
		Word:       result.Word,
		Tiles:      result.Tiles,
		Score:      result.Score,
		TotalScore: session.Score,
	})
}

// Reshuffle handles POST /api/v1/sessions/{id}/reshuffle
func (h *SessionHandler) Reshuffle(w http.ResponseWriter, r *http.Request) {
	session, err := h.gameController.Reshuffle(r.Context(), sessionID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(session, h.clock.Now()))
}

// Solutions handles GET /api/v1/sessions/{id}/solutions
func (h *SessionHandler) Solutions(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)

	session, err := h.gameController.GetSession(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	solutions, err := h.gameController.Solutions(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK,
		response.SolutionsFromModel(solutions, session.BoardRevision, validator.Score))
}

// StartTimer handles POST /api/v1/sessions/{id}/timer/start
func (h *SessionHandler) StartTimer(w http.ResponseWriter, r *http.Request) {
	h.timerAction(w, r, h.gameController.StartTimer)
}

// PauseTimer handles POST /api/v1/sessions/{id}/timer/pause
func (h *SessionHandler) PauseTimer(w http.ResponseWriter, r *http.Request) {
	h.timerAction(w, r, h.gameController.PauseTimer)
}

// ResetTimer handles POST /api/v1/sessions/{id}/timer/reset
func (h *SessionHandler) ResetTimer(w http.ResponseWriter, r *http.Request) {
	h.timerAction(w, r, h.gameController.ResetTimer)
}

func (h *SessionHandler) timerAction(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, id model.SessionID) (*model.Session, error),
) {
	session, err := action(r.Context(), sessionID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(session, h.clock.Now()))
}
