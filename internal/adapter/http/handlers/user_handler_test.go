package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fundtracker/internal/adapter/http/handlers/mocks"
	"fundtracker/internal/domain/entities"
	"fundtracker/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestUserHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/users", h.Register)

		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString(`{"role":"CITIZEN"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed national id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/users", h.Register)

		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.UserProfile{}, usecase.ErrInvalidNationalID)

		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString(`{"username":"amina","role":"CITIZEN","national_id":"12ab"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("INVALID_NATIONAL_ID")) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("registration succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/users", h.Register)

		uc.EXPECT().Register(gomock.Any(), usecase.RegisterUserCommand{
			Username: "amina", Role: entities.RoleGovernment, NationalID: "1234567890123",
		}).Return(entities.UserProfile{ID: "u-1", Username: "amina", Role: entities.RoleGovernment}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString(`{"username":"amina","role":"GOVERNMENT","national_id":"1234567890123"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["id"] != "u-1" || body["role"] != "GOVERNMENT" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestUserHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.GET("/v1/users/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.UserProfile{}, usecase.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/users/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns the profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.GET("/v1/users/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.UserProfile{ID: "u-1", Username: "amina", Role: entities.RoleCitizen}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/users/u-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
