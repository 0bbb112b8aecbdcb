package dto

import (
	"strings"
	"time"

	"SuratMutasi/models"
)

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (r *LoginRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Email) == "" {
		errors["email"] = "email is required"
	}
	if r.Password == "" {
		errors["password"] = "password is required"
	}

	return errors
}

type LoginResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token,omitempty"`
	TokenType    string      `json:"token_type,omitempty"`
	ExpiresAt    time.Time   `json:"expires_at"`
	User         UserSummary `json:"user"`
}

type UserSummary struct {
	ID       uint        `json:"id"`
	Username string      `json:"username"`
	FullName string      `json:"full_name,omitempty"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

func NewUserSummary(user models.User) UserSummary {
	return UserSummary{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
	}
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}
