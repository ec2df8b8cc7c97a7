package handler

import (
	"encoding/json"
	"net/http"

	"github.com/soomtochukwu/XLMate/internal/api/apierr"
	"github.com/soomtochukwu/XLMate/internal/api/middleware"
	"github.com/soomtochukwu/XLMate/internal/api/request"
	"github.com/soomtochukwu/XLMate/internal/api/response"
	"github.com/soomtochukwu/XLMate/internal/model"
	"github.com/soomtochukwu/XLMate/internal/services/registry"
)

// RegistryHandler handles role governance endpoints
type RegistryHandler struct {
	registry *registry.Service
}

// NewRegistryHandler creates a new registry handler
func NewRegistryHandler(registry *registry.Service) *RegistryHandler {
	return &RegistryHandler{registry: registry}
}

// Initialize handles POST /api/v1/registry/initialize.
// The call itself is not authenticated: the unset-roles precondition is
// the only gate, and whoever calls first wins. Deployment tooling must
// invoke it in the same step that brings the registry up.
func (h *RegistryHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	var req request.InitializeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid JSON body"))
		return
	}

	err := h.registry.Initialize(r.Context(), model.Identity(req.Admin), model.Identity(req.Server))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	roles, err := h.registry.Roles(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RolesFromModel(roles))
}

// SetServer handles PUT /api/v1/registry/server
func (h *RegistryHandler) SetServer(w http.ResponseWriter, r *http.Request) {
	caller := middleware.MustGetIdentity(r.Context())

	var req request.SetServerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid JSON body"))
		return
	}

	if err := h.registry.SetServer(r.Context(), caller, model.Identity(req.Server)); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// SetAdmin handles PUT /api/v1/registry/admin
func (h *RegistryHandler) SetAdmin(w http.ResponseWriter, r *http.Request) {
	caller := middleware.MustGetIdentity(r.Context())

	var req request.SetAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid JSON body"))
		return
	}

	if err := h.registry.SetAdmin(r.Context(), caller, model.Identity(req.Admin)); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// GetRoles handles GET /api/v1/registry/roles
func (h *RegistryHandler) GetRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.registry.Roles(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RolesFromModel(roles))
}
