package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"user_backend/internal/feature/users/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Save inserts the user or overwrites the record with the same ID.
	// The write is visible once Save returns. It returns ErrEmailAlreadyExists
	// when the email is already used by a different record.
	Save(ctx context.Context, user *entity.User) error

	// FindByID retrieves the user with the given ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail retrieves the user with the given email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByPhone retrieves a user with the given phone number, or ErrUserNotFound.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// DeleteByID removes the user with the given ID. Zero matches is not an error.
	DeleteByID(ctx context.Context, id uint) error

	// DeleteByEmail removes the user with the given email. Zero matches is not an error.
	DeleteByEmail(ctx context.Context, email string) error

	// DeleteByPhone removes a user with the given phone number. Zero matches is not an error.
	DeleteByPhone(ctx context.Context, phone string) error

	// ExistsByID reports whether a user with the given ID is persisted.
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

// UserPatch carries a partial update. Nil fields keep the stored value.
type UserPatch struct {
	Name     *string
	Email    *string
	Phone    *string
	Password *string
}

// UserUsecase implements the account management business logic.
type UserUsecase struct {
	users UserRepository
}

// NewUserUsecase creates a new UserUsecase.
func NewUserUsecase(users UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

// Create persists a new user with a bcrypt-hashed password.
// The Password field of the input carries the plaintext; it is replaced with
// the digest before the record reaches the repository.
func (u *UserUsecase) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)

	if err := u.users.Save(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return user, nil
}

// Find resolves a lookup value and kind to a single user.
// The not-found error names the kind and value that were searched.
func (u *UserUsecase) Find(ctx context.Context, value string, kind LookupKind) (*entity.User, error) {
	switch kind {
	case LookupID:
		id, err := parseID(value)
		if err != nil {
			return nil, err
		}
		user, err := u.users.FindByID(ctx, id)
		return user, notFoundOr(err, kind, value)
	case LookupEmail:
		user, err := u.users.FindByEmail(ctx, value)
		return user, notFoundOr(err, kind, value)
	case LookupPhone:
		user, err := u.users.FindByPhone(ctx, value)
		return user, notFoundOr(err, kind, value)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidLookup, kind)
	}
}

// Delete removes the user matched by the lookup value and kind.
// EMAIL and PHONE resolve the record first and then delete it by ID, so a
// vanished record surfaces as not-found instead of a silent zero-row delete.
func (u *UserUsecase) Delete(ctx context.Context, value string, kind LookupKind) error {
	switch kind {
	case LookupID:
		id, err := parseID(value)
		if err != nil {
			return err
		}
		exists, err := u.users.ExistsByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check user existence: %w", err)
		}
		if !exists {
			return notFound(kind, value)
		}
		return u.users.DeleteByID(ctx, id)
	case LookupEmail:
		user, err := u.users.FindByEmail(ctx, value)
		if err != nil {
			return notFoundOr(err, kind, value)
		}
		return u.users.DeleteByID(ctx, user.ID)
	case LookupPhone:
		user, err := u.users.FindByPhone(ctx, value)
		if err != nil {
			return notFoundOr(err, kind, value)
		}
		return u.users.DeleteByID(ctx, user.ID)
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidLookup, kind)
	}
}

// Update merges the patch over the stored record and persists the result.
// Nil patch fields keep the stored value; a non-nil password is re-hashed,
// a nil one leaves the stored digest untouched. The ID never changes.
func (u *UserUsecase) Update(ctx context.Context, id uint, patch UserPatch) (*entity.User, error) {
	current, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, LookupID, strconv.FormatUint(uint64(id), 10))
	}

	if patch.Name != nil {
		current.Name = *patch.Name
	}
	if patch.Email != nil {
		current.Email = *patch.Email
	}
	if patch.Phone != nil {
		current.Phone = *patch.Phone
	}
	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		current.Password = string(hashed)
	}

	if err := u.users.Save(ctx, current); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return current, nil
}

// parseID parses a lookup value as an integer identifier.
func parseID(value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: ID %q is not an integer", ErrInvalidLookup, value)
	}
	return uint(id), nil
}

// notFound builds a not-found error naming the lookup kind and value.
func notFound(kind LookupKind, value string) error {
	return fmt.Errorf("%w with %s %q", ErrUserNotFound, kind, value)
}

// notFoundOr enriches a repository not-found error with the lookup kind and
// value; other errors pass through unchanged.
func notFoundOr(err error, kind LookupKind, value string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUserNotFound) {
		return notFound(kind, value)
	}
	return err
}
