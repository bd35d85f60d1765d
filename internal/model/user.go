package model

import "time"

// UserRecord is the opaque identity object returned by the remote content
// service. The service is not consistent about which property carries the
// unique identifier ($id on account endpoints, id or _id on older document
// payloads), so all three are kept verbatim. ID is the canonical identifier
// filled in once at the gateway boundary by identity.Normalize; downstream
// code must read ID and nothing else.
type UserRecord struct {
	ID string `json:"-"`

	PrimaryID string `json:"$id,omitempty"`
	AltID     string `json:"id,omitempty"`
	LegacyID  string `json:"_id,omitempty"`

	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registration,omitempty"`
}
