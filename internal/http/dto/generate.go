package dto

import "encoding/json"

// GenerateRequest has no binding tags: a missing question is reported by the
// service with the fixed "No input provided" message.
//
// Role stays raw so a non-string role falls back to the default persona
// instead of failing the bind.
type GenerateRequest struct {
	Question string          `json:"question"`
	Role     json.RawMessage `json:"role,omitempty"`
}

// RoleName returns the role when it was sent as a JSON string, "" otherwise.
func (r GenerateRequest) RoleName() string {
	var role string
	if len(r.Role) == 0 || json.Unmarshal(r.Role, &role) != nil {
		return ""
	}
	return role
}

type GenerateResponse struct {
	Response string `json:"response"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
