// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

// ErrorResponse is the JSON error body returned by the API.
// The keys keep the original API's wire names.
type ErrorResponse struct {
	Erro    string `json:"erro"`
	Detalhe string `json:"detalhe,omitempty"`
}
