// Package api описывает проводной формат обмена клиента с сервером
// синхронизации.
package api

import "fmt"

// LoginRequest is the credentials payload for POST /api/v1/auth/login.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// MutationRequest is one queued local write submitted to the server.
type MutationRequest struct {
	Payload    map[string]any `json:"payload"`
	ID         string         `json:"id"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Operation  string         `json:"operation"`
	Timestamp  int64          `json:"timestamp"`
}

// ConflictResponse is the body of a 409 reply: the server's current
// snapshot of the contested record.
type ConflictResponse struct {
	ServerData      map[string]any `json:"server_data"`
	ServerTimestamp int64          `json:"server_timestamp"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConflictError reports that the server rejected a mutation because the
// record changed since the client last saw it. Carries the server's
// snapshot so the client can record a durable conflict.
type ConflictError struct {
	ServerData      map[string]any
	EntityType      string
	EntityID        string
	ServerTimestamp int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict on %s/%s", e.EntityType, e.EntityID)
}
