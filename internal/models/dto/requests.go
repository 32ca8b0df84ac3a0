package dto

import "github.com/gigbook/gigbook-be/internal/models"

type SignupRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	AccountType string `json:"accountType"`
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type LoginResponse struct {
	Token       string         `json:"token"`
	Profile     models.Profile `json:"profile"`
	Destination string         `json:"destination"`
}

type AcceptApplicationRequest struct {
	ApplicationID string `json:"applicationId"`
	Date          string `json:"date,omitempty"`
	Compensation  string `json:"compensation,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type AcceptApplicationResponse struct {
	OK        bool   `json:"ok"`
	BookingID string `json:"bookingId"`
}

type AdminStatusRequest struct {
	ApplicationID string `json:"applicationId"`
	Status        string `json:"status"`
}

type AdminStatusResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type TalentVisibilityResponse struct {
	CanViewSensitive bool `json:"canViewSensitive"`
}
