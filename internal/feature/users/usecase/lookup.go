package usecase

import "fmt"

// LookupKind identifies which field a lookup or delete operation matches on.
// The set is closed: ID, EMAIL and PHONE.
type LookupKind string

const (
	LookupID    LookupKind = "ID"
	LookupEmail LookupKind = "EMAIL"
	LookupPhone LookupKind = "PHONE"
)

// ParseLookupKind maps a wire value to a LookupKind.
// "TELEFONE" is accepted as an alias for PHONE to stay compatible with the
// original API's query parameter values.
func ParseLookupKind(s string) (LookupKind, error) {
	switch s {
	case "ID":
		return LookupID, nil
	case "EMAIL":
		return LookupEmail, nil
	case "PHONE", "TELEFONE":
		return LookupPhone, nil
	default:
		return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidLookup, s)
	}
}
