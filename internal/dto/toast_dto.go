package dto

import "github.com/google/uuid"

// ToastMessage is the internal bus payload carrying a toast from the
// service layer to the websocket consumer.
type ToastMessage struct {
	SessionID uuid.UUID `json:"session_id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
}
