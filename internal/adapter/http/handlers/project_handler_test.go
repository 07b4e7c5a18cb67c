package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"fundtracker/internal/adapter/http/handlers/mocks"
	"fundtracker/internal/domain/entities"
	"fundtracker/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProjectHandler_AssignContractor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/assign", h.AssignContractor)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/assign", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("contractor below the rating floor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/assign", h.AssignContractor)

		uc.EXPECT().AssignContractor(gomock.Any(), "p-1", "c-1", "gov-1").Return(entities.Project{}, usecase.ErrContractorNotEligible)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/assign", bytes.NewBufferString(`{"contractor_id":"c-1"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(ActorHeader, "gov-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("CONTRACTOR_NOT_ELIGIBLE")) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("suspended contractor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/assign", h.AssignContractor)

		uc.EXPECT().AssignContractor(gomock.Any(), "p-1", "c-1", "gov-1").Return(entities.Project{}, usecase.ErrContractorSuspended)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/assign", bytes.NewBufferString(`{"contractor_id":"c-1"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(ActorHeader, "gov-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("CONTRACTOR_SUSPENDED")) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/assign", h.AssignContractor)

		uc.EXPECT().AssignContractor(gomock.Any(), "missing", "c-1", "gov-1").Return(entities.Project{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/missing/assign", bytes.NewBufferString(`{"contractor_id":"c-1"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(ActorHeader, "gov-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("assignment succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/assign", h.AssignContractor)

		uc.EXPECT().AssignContractor(gomock.Any(), "p-1", "c-1", "gov-1").Return(entities.Project{ID: "p-1", ContractorID: "c-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/assign", bytes.NewBufferString(`{"contractor_id":"c-1"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(ActorHeader, "gov-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProjectHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("negative budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Project{}, usecase.ErrInvalidBudget)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"name":"Bridge","total_budget":-5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forwards the actor header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.Create)

		uc.EXPECT().Create(gomock.Any(), usecase.CreateProjectCommand{
			Name: "Bridge", Location: "North District", TotalBudget: 500000, ActorID: "gov-1",
		}).Return(entities.Project{ID: "p-1", Name: "Bridge"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"name":"Bridge","location":"North District","total_budget":500000}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(ActorHeader, "gov-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}
