package dto

import (
	"net/mail"
	"strings"

	"SuratMutasi/models"
)

type OperatorCreateRequest struct {
	Username string      `json:"username"`
	FullName string      `json:"full_name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type OperatorResponse struct {
	ID        uint        `json:"id"`
	Username  string      `json:"username"`
	FullName  string      `json:"full_name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	Verified  bool        `json:"verified"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}

func (r *OperatorCreateRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		errors["username"] = "username is required"
	}
	email := strings.TrimSpace(r.Email)
	if email == "" {
		errors["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errors["email"] = "invalid email format"
	}
	if strings.TrimSpace(r.Password) == "" {
		errors["password"] = "password is required"
	} else if len(r.Password) < 8 {
		errors["password"] = "password must be at least 8 characters"
	}
	if !isValidRole(r.Role) {
		errors["role"] = "role must be operator or admin"
	}

	return errors
}

func isValidRole(role models.Role) bool {
	switch role {
	case models.RoleOperator, models.RoleAdmin:
		return true
	default:
		return false
	}
}

func NewOperatorResponse(user models.User) OperatorResponse {
	const layout = "2006-01-02 15:04:05"
	return OperatorResponse{
		ID:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      user.Role,
		Verified:  user.Verified,
		CreatedAt: user.CreatedAt.Format(layout),
		UpdatedAt: user.UpdatedAt.Format(layout),
	}
}
