// Package view implements the reconciliation rule every page controller
// follows: one loading pass per mount, then exactly one of ready, empty or
// error, with user-driven retry re-entering loading.
package view

// State is the render state of a page view-model.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateEmpty   State = "empty"
	StateError   State = "error"
)

// Page is the view-model handed to the client. On StateError, Retry is true
// and the client may re-issue the request; retries are always user-initiated.
type Page[T any] struct {
	State State  `json:"state"`
	Data  T      `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
	Retry bool   `json:"retry,omitempty"`
}

func Ready[T any](data T) Page[T] {
	return Page[T]{State: StateReady, Data: data}
}

func Empty[T any]() Page[T] {
	return Page[T]{State: StateEmpty}
}

func Errored[T any](message string) Page[T] {
	return Page[T]{State: StateError, Error: message, Retry: true}
}
