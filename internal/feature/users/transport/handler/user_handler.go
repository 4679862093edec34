// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/transport/http/dto"
	"user_backend/internal/feature/users/usecase"
)

// UserUsecase defines the account management operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserUsecase interface {
	// Create persists a new user with a hashed password.
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	// Find resolves a lookup value and kind to a single user.
	Find(ctx context.Context, value string, kind usecase.LookupKind) (*entity.User, error)
	// Update merges non-nil patch fields over the stored record.
	Update(ctx context.Context, id uint, patch usecase.UserPatch) (*entity.User, error)
	// Delete removes the user matched by the lookup value and kind.
	Delete(ctx context.Context, value string, kind usecase.LookupKind) error
}

// UserHandler handles the HTTP requests of the /api/usuarios endpoints.
// It depends on the UserUsecase interface and maps error kinds to status codes.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler.
// Constructor for dependency injection.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Create handles POST /api/usuarios.
// - Binds the request JSON to CreateUserReq
// - Returns 400 on validation errors and on any create failure (duplicate email included)
// - Returns 201 with the created user on success
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Erro: "invalid request", Detalhe: err.Error()})
		return
	}

	user := &entity.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}
	created, err := h.users.Create(c.Request.Context(), user)
	if err != nil {
		slog.Warn("create user failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Erro: "could not save user", Detalhe: err.Error()})
		return
	}
	slog.Info("user created", "id", created.ID, "email", created.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, toUserResponse(created))
}

// Get handles GET /api/usuarios?valor=&tipo=.
// - Returns 400 when tipo is outside {ID, EMAIL, TELEFONE} or valor is not a valid ID
// - Returns 404 when no user matches
// - Returns 200 with the user on success
func (h *UserHandler) Get(c *gin.Context) {
	value := c.Query("valor")
	kind, err := usecase.ParseLookupKind(c.Query("tipo"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Erro: err.Error()})
		return
	}

	user, err := h.users.Find(c.Request.Context(), value, kind)
	if err != nil {
		h.renderLookupError(c, err, "find user failed", value, kind)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// Update handles PUT /api/usuarios/:id.
// - Returns 400 on an unparseable id, an invalid body, or a duplicate email
// - Returns 404 when the id does not exist
// - Returns 200 with the merged user on success
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Erro: "invalid id", Detalhe: err.Error()})
		return
	}

	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Erro: "invalid request", Detalhe: err.Error()})
		return
	}

	patch := usecase.UserPatch{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}
	updated, err := h.users.Update(c.Request.Context(), uint(id), patch)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Erro: err.Error()})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Erro: "could not save user", Detalhe: err.Error()})
		default:
			slog.Error("update user failed", "error", err, "id", id, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Erro: err.Error()})
		}
		return
	}
	slog.Info("user updated", "id", updated.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, toUserResponse(updated))
}

// Delete handles DELETE /api/usuarios?valor=&tipo=.
// - Returns 400 on an invalid selector
// - Returns 404 when no user matches
// - Returns 204 with an empty body on success
func (h *UserHandler) Delete(c *gin.Context) {
	value := c.Query("valor")
	kind, err := usecase.ParseLookupKind(c.Query("tipo"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Erro: err.Error()})
		return
	}

	if err := h.users.Delete(c.Request.Context(), value, kind); err != nil {
		h.renderLookupError(c, err, "delete user failed", value, kind)
		return
	}
	slog.Info("user deleted", "kind", kind, "value", value, "remote_addr", c.ClientIP())
	c.Status(http.StatusNoContent)
}

// renderLookupError maps a lookup failure to the transport response.
func (h *UserHandler) renderLookupError(c *gin.Context, err error, msg, value string, kind usecase.LookupKind) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Erro: err.Error()})
	case errors.Is(err, usecase.ErrInvalidLookup):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Erro: err.Error()})
	default:
		slog.Error(msg, "error", err, "kind", kind, "value", value, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Erro: err.Error()})
	}
}

// toUserResponse converts an entity to its API representation.
func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		Password: u.Password,
	}
}
