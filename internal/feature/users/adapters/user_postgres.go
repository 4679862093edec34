// Package adapters provides the repository implementations for the users feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/usecase"
)

// pgUniqueViolation is the PostgreSQL error code for a unique constraint violation.
const pgUniqueViolation = "23505"

// userPostgres is the PostgreSQL implementation of the UserRepository interface.
// It performs all database operations through GORM.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time check that userPostgres implements UserRepository.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres creates a new userPostgres with the given gorm.DB connection.
// Constructor for dependency injection.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Save inserts the user or overwrites the record with the same primary key.
// A unique key violation on email is translated to usecase.ErrEmailAlreadyExists.
func (r *userPostgres) Save(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID retrieves a user by ID.
// Returns usecase.ErrUserNotFound when no record matches.
func (r *userPostgres) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByEmail retrieves a user by email address.
// Returns usecase.ErrUserNotFound when no record matches.
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByPhone retrieves a user by phone number. Phone carries no uniqueness
// constraint; when several records match the first one is returned.
// Returns usecase.ErrUserNotFound when no record matches.
func (r *userPostgres) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// DeleteByID removes the user with the given ID. Deleting a missing record is
// not an error at this layer; the caller decides whether zero rows matter.
func (r *userPostgres) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.User{}, id).Error
}

// DeleteByEmail removes the user with the given email address.
func (r *userPostgres) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Where("email = ?", email).Delete(&entity.User{}).Error
}

// DeleteByPhone removes users with the given phone number.
func (r *userPostgres) DeleteByPhone(ctx context.Context, phone string) error {
	return r.db.WithContext(ctx).Where("phone = ?", phone).Delete(&entity.User{}).Error
}

// ExistsByID reports whether a user with the given ID is persisted.
func (r *userPostgres) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// isUniqueViolation reports whether err is a unique constraint violation.
// It recognises the native PostgreSQL error code as well as GORM's translated
// sentinel, which the SQLite test driver produces.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
