package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/soomtochukwu/XLMate/internal/api/apierr"
	"github.com/soomtochukwu/XLMate/internal/api/middleware"
	"github.com/soomtochukwu/XLMate/internal/api/request"
	"github.com/soomtochukwu/XLMate/internal/api/response"
	"github.com/soomtochukwu/XLMate/internal/model"
	"github.com/soomtochukwu/XLMate/internal/services/registry"
)

// GameHandler handles game record endpoints
type GameHandler struct {
	registry *registry.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(registry *registry.Service) *GameHandler {
	return &GameHandler{registry: registry}
}

// Record handles POST /api/v1/games/{id}
func (h *GameHandler) Record(w http.ResponseWriter, r *http.Request) {
	caller := middleware.MustGetIdentity(r.Context())
	id := model.GameID(mux.Vars(r)["id"])

	var req request.RecordGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid JSON body"))
		return
	}

	record := model.GameRecord{
		Winner:    model.Identity(req.Winner),
		White:     model.Identity(req.White),
		Black:     model.Identity(req.Black),
		Timestamp: req.Timestamp,
	}

	stored, err := h.registry.RecordGame(r.Context(), caller, id, record)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameRecordFromModel(id, stored))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	record, err := h.registry.GetGame(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameRecordFromModel(id, record))
}

// Touch handles POST /api/v1/games/{id}/touch
func (h *GameHandler) Touch(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	if err := h.registry.TouchGame(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}
