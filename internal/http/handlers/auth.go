package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gigbook/gigbook-be/internal/auth"
	"github.com/gigbook/gigbook-be/internal/http/respond"
	"github.com/gigbook/gigbook-be/internal/models"
	"github.com/gigbook/gigbook-be/internal/models/dto"
	"github.com/gigbook/gigbook-be/internal/policy"
	"github.com/gigbook/gigbook-be/internal/storage"
)

// AuthHandler owns the signup/login endpoints.
type AuthHandler struct {
	store  storage.ProfileStore
	tokens *auth.TokenManager
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.ProfileStore, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/signup", h.handleSignup)
	mux.HandleFunc("/login", h.handleLogin)
}

func (h *AuthHandler) handleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	accountType := normalizeAccountType(req.AccountType)
	if err := validateCredentials(req.Username, req.Email, req.Password); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	profile := models.Profile{
		ID:           uuid.NewString(),
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: passwordHash,
		AccountType:  accountType,
	}
	// Role follows the chosen account type; unassigned signups get a role
	// later through onboarding.
	switch accountType {
	case models.AccountTalent:
		profile.Role = models.RoleTalent
	case models.AccountClient:
		profile.Role = models.RoleClient
	}

	created, err := h.store.CreateProfile(r.Context(), profile)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			respond.Error(w, http.StatusConflict, "profile already exists")
		default:
			log.Printf("create profile error: %v", err)
			respond.Error(w, http.StatusInternalServerError, "failed to create profile")
		}
		return
	}

	respond.JSON(w, http.StatusOK, "Profile created successfully", created)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Identifier) == "" || strings.TrimSpace(req.Password) == "" {
		respond.Error(w, http.StatusBadRequest, "identifier and password are required")
		return
	}
	profile, err := h.store.ProfileByUsernameOrEmail(r.Context(), strings.TrimSpace(req.Identifier))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		log.Printf("login failed: error fetching profile %s: %v", req.Identifier, err)
		respond.Error(w, http.StatusInternalServerError, "failed to fetch profile")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		respond.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if profile.IsSuspended {
		respond.Error(w, http.StatusForbidden, "account suspended")
		return
	}
	token, err := h.tokens.Generate(profile)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	// Destination is included so the client lands on the right dashboard.
	respond.JSON(w, http.StatusOK, "login successful", dto.LoginResponse{
		Token:       token,
		Profile:     profile,
		Destination: policy.Destination(&profile, ""),
	})
}

func normalizeAccountType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case models.AccountTalent:
		return models.AccountTalent
	case models.AccountClient:
		return models.AccountClient
	}
	return models.AccountUnassigned
}

func validateCredentials(username, email, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" {
		return errors.New("username and email are required")
	}
	if len(strings.TrimSpace(password)) < 8 || !utf8.ValidString(password) {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
