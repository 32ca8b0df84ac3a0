package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gigbook/gigbook-be/internal/auth"
	"github.com/gigbook/gigbook-be/internal/booking"
	"github.com/gigbook/gigbook-be/internal/http/respond"
	"github.com/gigbook/gigbook-be/internal/models/dto"
)

// ApplicationsHandler exposes the accept-application endpoint.
type ApplicationsHandler struct {
	service *booking.Service
	tokens  *auth.TokenManager
}

// NewApplicationsHandler constructs the handler.
func NewApplicationsHandler(service *booking.Service, tokens *auth.TokenManager) *ApplicationsHandler {
	return &ApplicationsHandler{service: service, tokens: tokens}
}

// Register attaches application routes to the mux.
func (h *ApplicationsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/applications/accept", h.handleAccept)
}

func (h *ApplicationsHandler) handleAccept(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.AcceptApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.ApplicationID) == "" {
		respond.Error(w, http.StatusBadRequest, "applicationId is required")
		return
	}

	caller := auth.PrincipalFromRequest(r, h.tokens)
	result, err := h.service.Accept(r.Context(), caller, booking.AcceptInput{
		ApplicationID: req.ApplicationID,
		Date:          req.Date,
		Compensation:  req.Compensation,
		Notes:         req.Notes,
	})
	if err != nil {
		status, message := acceptErrorStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("accept application %s: %v", req.ApplicationID, err)
		}
		respond.Error(w, status, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.AcceptApplicationResponse{OK: true, BookingID: result.BookingID})
}

func acceptErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, booking.ErrUnauthenticated):
		return http.StatusUnauthorized, "not authenticated"
	case errors.Is(err, booking.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, booking.ErrNotFound):
		return http.StatusNotFound, "application not found"
	case errors.Is(err, booking.ErrRejected):
		return http.StatusConflict, "cannot accept a rejected application"
	case errors.Is(err, booking.ErrValidation):
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, "failed to accept application"
}
