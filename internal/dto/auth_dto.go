package dto

import "blogmosaic/internal/model"

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse is the auth state handed to the browser. The remote
// session token is never included.
type SessionResponse struct {
	Status model.SessionStatus `json:"status"`
	User   *UserResponse       `json:"user"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewSessionResponse(s model.Session) SessionResponse {
	res := SessionResponse{Status: s.Status}
	if s.User != nil {
		res.User = &UserResponse{
			ID:    s.User.ID,
			Name:  s.User.Name,
			Email: s.User.Email,
		}
	}
	return res
}
