// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

// UserResponse represents a persisted user in API responses.
// The password field carries the stored bcrypt digest, never plaintext.
type UserResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}
