package dto

import "github.com/spec-kit/job-board/internal/domain"

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Email    string      `json:"email"`
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// PasswordLoginRequest payload for the token endpoint.
type PasswordLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleLoginRequest payload for federated login.
type GoogleLoginRequest struct {
	Token string `json:"token"`
}

// RefreshRequest payload for token rotation.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// LogoutRequest payload for refresh invalidation.
type LogoutRequest struct {
	Refresh string `json:"refresh"`
}

// UserSummary is the account shape exposed in responses. Password material is
// never included.
type UserSummary struct {
	ID              string      `json:"id"`
	Email           string      `json:"email"`
	Username        string      `json:"username"`
	Role            domain.Role `json:"role"`
	IsEmailVerified bool        `json:"is_email_verified"`
	ProfileImage    *string     `json:"profile_image,omitempty"`
}

// SessionResponse is the shape returned by login/refresh endpoints.
type SessionResponse struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    UserSummary `json:"user"`
}

// UserUpdateRequest allows a caller to amend their own account.
type UserUpdateRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}
