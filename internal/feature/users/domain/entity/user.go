// Package entity defines the domain entities for the users feature.
package entity

// User represents a managed user account.
// It is mapped to the "usuarios" table.
type User struct {
	// ID is the unique identifier for the user, assigned by the store.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the user's full name.
	Name string `gorm:"size:255;not null" json:"name"`

	// Email is the user's email address.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Phone is the user's phone number. Lookups by phone exist but the
	// column carries no uniqueness constraint.
	Phone string `gorm:"size:255;not null" json:"phone"`

	// Password is the bcrypt digest of the user's password.
	// It only carries plaintext transiently on the create/update input path,
	// before the usecase hashes it.
	Password string `gorm:"size:255;not null" json:"password"`
}

// TableName keeps the table name of the pre-existing schema.
func (User) TableName() string {
	return "usuarios"
}
