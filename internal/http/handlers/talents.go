package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gigbook/gigbook-be/internal/auth"
	"github.com/gigbook/gigbook-be/internal/http/respond"
	"github.com/gigbook/gigbook-be/internal/models/dto"
	"github.com/gigbook/gigbook-be/internal/policy"
	"github.com/gigbook/gigbook-be/internal/relationship"
	"github.com/gigbook/gigbook-be/internal/storage"
)

// TalentsHandler answers whether the calling client may view a talent's
// sensitive profile fields.
type TalentsHandler struct {
	oracle   *relationship.Oracle
	profiles storage.ProfileStore
	tokens   *auth.TokenManager
}

// NewTalentsHandler constructs the handler.
func NewTalentsHandler(oracle *relationship.Oracle, profiles storage.ProfileStore, tokens *auth.TokenManager) *TalentsHandler {
	return &TalentsHandler{oracle: oracle, profiles: profiles, tokens: tokens}
}

// Register attaches talent routes to the mux.
func (h *TalentsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/talents/{id}/visibility", h.handleVisibility)
}

func (h *TalentsHandler) handleVisibility(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	caller := auth.PrincipalFromRequest(r, h.tokens)
	if caller == "" {
		respond.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	profile, err := h.profiles.ProfileByID(r.Context(), caller)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		log.Printf("talent visibility: load caller %s: %v", caller, err)
		respond.Error(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	// Admins see everything; everyone else needs client standing plus a
	// prior relationship with the talent.
	if policy.IsAdmin(&profile) {
		respondJSON(w, http.StatusOK, dto.TalentVisibilityResponse{CanViewSensitive: true})
		return
	}
	if !policy.HasClientAccess(&profile) {
		respond.Error(w, http.StatusForbidden, "forbidden")
		return
	}

	canSee, err := h.oracle.ClientCanSeeTalentSensitive(r.Context(), caller, r.PathValue("id"))
	if err != nil {
		log.Printf("talent visibility check for client %s: %v", caller, err)
		respond.Error(w, http.StatusInternalServerError, "failed to check visibility")
		return
	}
	respondJSON(w, http.StatusOK, dto.TalentVisibilityResponse{CanViewSensitive: canSee})
}
