package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gigbook/gigbook-be/internal/auth"
	"github.com/gigbook/gigbook-be/internal/booking"
	"github.com/gigbook/gigbook-be/internal/models/dto"
)

// AdminHandler exposes the admin application-status edit.
type AdminHandler struct {
	service *booking.Service
	tokens  *auth.TokenManager
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(service *booking.Service, tokens *auth.TokenManager) *AdminHandler {
	return &AdminHandler{service: service, tokens: tokens}
}

// Register attaches admin routes to the mux.
func (h *AdminHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/admin/applications/status", h.handleSetStatus)
}

func (h *AdminHandler) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.AdminStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, dto.AdminStatusResponse{Error: "invalid JSON payload"})
		return
	}
	if strings.TrimSpace(req.ApplicationID) == "" || strings.TrimSpace(req.Status) == "" {
		respondJSON(w, http.StatusBadRequest, dto.AdminStatusResponse{Error: "applicationId and status are required"})
		return
	}

	caller := auth.PrincipalFromRequest(r, h.tokens)
	err := h.service.SetStatus(r.Context(), caller, req.ApplicationID, req.Status)
	if err != nil {
		status, message := statusEditErrorStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("admin status change %s -> %s: %v", req.ApplicationID, req.Status, err)
		}
		respondJSON(w, status, dto.AdminStatusResponse{Error: message})
		return
	}

	respondJSON(w, http.StatusOK, dto.AdminStatusResponse{OK: true})
}

func statusEditErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, booking.ErrUnauthenticated):
		return http.StatusUnauthorized, "Not authenticated"
	case errors.Is(err, booking.ErrAdminCheck):
		return http.StatusInternalServerError, "Failed to verify admin role"
	case errors.Is(err, booking.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, booking.ErrNotFound):
		return http.StatusNotFound, "application not found"
	case errors.Is(err, booking.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, booking.ErrValidation):
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, err.Error()
}
