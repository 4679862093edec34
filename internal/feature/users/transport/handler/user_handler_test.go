package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/usecase"
)

// mockUserUsecase is a mock implementation of the UserUsecase interface.
type mockUserUsecase struct {
	CreateFunc func(ctx context.Context, user *entity.User) (*entity.User, error)
	FindFunc   func(ctx context.Context, value string, kind usecase.LookupKind) (*entity.User, error)
	UpdateFunc func(ctx context.Context, id uint, patch usecase.UserPatch) (*entity.User, error)
	DeleteFunc func(ctx context.Context, value string, kind usecase.LookupKind) error
}

func (m *mockUserUsecase) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil, errors.New("create failed")
}

func (m *mockUserUsecase) Find(ctx context.Context, value string, kind usecase.LookupKind) (*entity.User, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, value, kind)
	}
	return nil, errors.New("find failed")
}

func (m *mockUserUsecase) Update(ctx context.Context, id uint, patch usecase.UserPatch) (*entity.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	return nil, errors.New("update failed")
}

func (m *mockUserUsecase) Delete(ctx context.Context, value string, kind usecase.LookupKind) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, value, kind)
	}
	return errors.New("delete failed")
}

func setupRouter(uc UserUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(uc)

	r := gin.New()
	r.POST("/api/usuarios", h.Create)
	r.GET("/api/usuarios", h.Get)
	r.PUT("/api/usuarios/:id", h.Update)
	r.DELETE("/api/usuarios", h.Delete)
	return r
}

func TestUserHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		mockCreateFunc func(ctx context.Context, user *entity.User) (*entity.User, error)
		expectedStatus int
		expectedErro   string
	}{
		{
			name:        "success: user created",
			requestBody: gin.H{"name": "Ana", "email": "ana@x.com", "phone": "1", "password": "pw"},
			mockCreateFunc: func(ctx context.Context, user *entity.User) (*entity.User, error) {
				user.ID = 1
				user.Password = "$2a$10$digest"
				return user, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "failure: missing required fields",
			requestBody:    gin.H{"email": "ana@x.com"},
			mockCreateFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedErro:   "invalid request",
		},
		{
			name:           "failure: invalid email format",
			requestBody:    gin.H{"name": "Ana", "email": "not-an-email", "phone": "1", "password": "pw"},
			mockCreateFunc: nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
			expectedErro:   "invalid request",
		},
		{
			name:        "failure: duplicate email from usecase",
			requestBody: gin.H{"name": "Ana", "email": "dup@x.com", "phone": "1", "password": "pw"},
			mockCreateFunc: func(ctx context.Context, user *entity.User) (*entity.User, error) {
				return nil, usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusBadRequest,
			expectedErro:   "could not save user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&mockUserUsecase{CreateFunc: tt.mockCreateFunc})

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/api/usuarios", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))

			if tt.expectedStatus == http.StatusCreated {
				assert.Equal(t, float64(1), responseBody["id"], "generated id missing")
				assert.Equal(t, "ana@x.com", responseBody["email"])
				assert.NotEqual(t, "pw", responseBody["password"], "plaintext password leaked")
			} else {
				assert.Equal(t, tt.expectedErro, responseBody["erro"])
				assert.NotEmpty(t, responseBody["detalhe"], "detalhe missing")
			}
		})
	}
}

func TestUserHandler_Get(t *testing.T) {
	stored := &entity.User{ID: 7, Name: "Ana", Email: "ana@x.com", Phone: "1", Password: "$2a$10$digest"}

	tests := []struct {
		name           string
		query          string
		mockFindFunc   func(ctx context.Context, value string, kind usecase.LookupKind) (*entity.User, error)
		expectedStatus int
	}{
		{
			name:  "success: found by email",
			query: "?valor=ana@x.com&tipo=EMAIL",
			mockFindFunc: func(ctx context.Context, value string, kind usecase.LookupKind) (*entity.User, error) {
				assert.Equal(t, "ana@x.com", value)
				assert.Equal(t, usecase.LookupEmail, kind)
				return stored, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "success: TELEFONE maps to the phone lookup",
			query: "?valor=1&tipo=TELEFONE",
			mockFindFunc: func(ctx context.Context, value string, kind usecase.LookupKind) (*entity.User, error) {
				assert.Equal(t, usecase.LookupPhone, kind)
				return stored, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: unknown tipo",
			query:          "?valor=x&tipo=CPF",
			mockFindFunc:   nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "failure: user not found",
			query: "?valor=missing@x.com&tipo=EMAIL",
			mockFindFunc: func(ctx context.Context, value string, kind usecase.LookupKind) (*entity.User, error) {
				return nil, fmt.Errorf("%w with EMAIL %q", usecase.ErrUserNotFound, value)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:  "failure: non-integer id",
			query: "?valor=abc&tipo=ID",
			mockFindFunc: func(ctx context.Context, value string, kind usecase.LookupKind) (*entity.User, error) {
				return nil, fmt.Errorf("%w: ID %q is not an integer", usecase.ErrInvalidLookup, value)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "failure: store error surfaces as 500",
			query: "?valor=ana@x.com&tipo=EMAIL",
			mockFindFunc: func(ctx context.Context, value string, kind usecase.LookupKind) (*entity.User, error) {
				return nil, errors.New("connection reset")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&mockUserUsecase{FindFunc: tt.mockFindFunc})

			req, _ := http.NewRequest(http.MethodGet, "/api/usuarios"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))

			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, float64(7), responseBody["id"])
			} else {
				assert.NotEmpty(t, responseBody["erro"], "erro missing")
			}
		})
	}
}

func TestUserHandler_Update(t *testing.T) {
	t.Run("success: merged user returned", func(t *testing.T) {
		router := setupRouter(&mockUserUsecase{
			UpdateFunc: func(ctx context.Context, id uint, patch usecase.UserPatch) (*entity.User, error) {
				assert.Equal(t, uint(7), id)
				require.NotNil(t, patch.Phone)
				assert.Equal(t, "2", *patch.Phone)
				assert.Nil(t, patch.Name)
				assert.Nil(t, patch.Email)
				assert.Nil(t, patch.Password)
				return &entity.User{ID: 7, Name: "Ana", Email: "ana@x.com", Phone: "2", Password: "$2a$10$digest"}, nil
			},
		})

		body, _ := json.Marshal(gin.H{"phone": "2"})
		req, _ := http.NewRequest(http.MethodPut, "/api/usuarios/7", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var responseBody gin.H
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
		assert.Equal(t, "2", responseBody["phone"])
		assert.Equal(t, "ana@x.com", responseBody["email"], "email changed unexpectedly")
	})

	t.Run("failure: non-integer path id", func(t *testing.T) {
		router := setupRouter(&mockUserUsecase{})

		body, _ := json.Marshal(gin.H{"phone": "2"})
		req, _ := http.NewRequest(http.MethodPut, "/api/usuarios/abc", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("failure: user not found", func(t *testing.T) {
		router := setupRouter(&mockUserUsecase{
			UpdateFunc: func(ctx context.Context, id uint, patch usecase.UserPatch) (*entity.User, error) {
				return nil, fmt.Errorf("%w with ID %q", usecase.ErrUserNotFound, "999")
			},
		})

		body, _ := json.Marshal(gin.H{"name": "X"})
		req, _ := http.NewRequest(http.MethodPut, "/api/usuarios/999", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var responseBody gin.H
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
		assert.Contains(t, responseBody["erro"], "999", "message does not name the id")
	})

	t.Run("failure: duplicate email", func(t *testing.T) {
		router := setupRouter(&mockUserUsecase{
			UpdateFunc: func(ctx context.Context, id uint, patch usecase.UserPatch) (*entity.User, error) {
				return nil, usecase.ErrEmailAlreadyExists
			},
		})

		body, _ := json.Marshal(gin.H{"email": "taken@x.com"})
		req, _ := http.NewRequest(http.MethodPut, "/api/usuarios/7", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_Delete(t *testing.T) {
	t.Run("success: 204 with empty body", func(t *testing.T) {
		router := setupRouter(&mockUserUsecase{
			DeleteFunc: func(ctx context.Context, value string, kind usecase.LookupKind) error {
				assert.Equal(t, "7", value)
				assert.Equal(t, usecase.LookupID, kind)
				return nil
			},
		})

		req, _ := http.NewRequest(http.MethodDelete, "/api/usuarios?valor=7&tipo=ID", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String(), "expected empty body")
	})

	t.Run("failure: user not found", func(t *testing.T) {
		router := setupRouter(&mockUserUsecase{
			DeleteFunc: func(ctx context.Context, value string, kind usecase.LookupKind) error {
				return fmt.Errorf("%w with EMAIL %q", usecase.ErrUserNotFound, value)
			},
		})

		req, _ := http.NewRequest(http.MethodDelete, "/api/usuarios?valor=missing@x.com&tipo=EMAIL", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("failure: unknown tipo", func(t *testing.T) {
		router := setupRouter(&mockUserUsecase{})

		req, _ := http.NewRequest(http.MethodDelete, "/api/usuarios?valor=x&tipo=CPF", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
