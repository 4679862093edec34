// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

// UpdateUserReq represents the request body for PUT /api/usuarios/:id.
// All fields are optional; absent fields keep the stored value.
type UpdateUserReq struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}
