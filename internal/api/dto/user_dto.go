package dto

import (
	"time"

	"github.com/vitorsm19/aisel-tech-case-vitor/internal/domain"
)

// LoginRequest payload for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	ExpiresAt   time.Time       `json:"expires_at"`
	User        domain.UserInfo `json:"user"`
}
