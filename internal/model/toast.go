package model

import (
	"time"

	"github.com/google/uuid"
)

// ToastLevel selects the toast styling on the client.
type ToastLevel string

const (
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
	ToastWarning ToastLevel = "warning"
)

// Toast is a transient user-facing notification pushed over the websocket
// hub after a mutation resolves. Purely observational, never part of the
// data contract.
type Toast struct {
	ID        uuid.UUID  `json:"id"`
	Level     ToastLevel `json:"level"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewToast(level ToastLevel, message string) Toast {
	return Toast{
		ID:        uuid.New(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	}
}
