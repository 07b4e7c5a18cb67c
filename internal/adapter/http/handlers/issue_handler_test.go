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

func TestIssueHandler_Report(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIssueUseCase(ctrl)
		h := NewIssueHandler(uc)

		r := gin.New()
		r.POST("/v1/issues", h.Report)

		req := httptest.NewRequest(http.MethodPost, "/v1/issues", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIssueUseCase(ctrl)
		h := NewIssueHandler(uc)

		r := gin.New()
		r.POST("/v1/issues", h.Report)

		req := httptest.NewRequest(http.MethodPost, "/v1/issues", bytes.NewBufferString(`{"project_id":"p-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIssueUseCase(ctrl)
		h := NewIssueHandler(uc)

		r := gin.New()
		r.POST("/v1/issues", h.Report)

		uc.EXPECT().Report(gomock.Any(), usecase.ReportIssueCommand{
			ProjectID: "p-1", Title: "Cracked deck", Description: "visible cracks",
			IssueType: entities.IssueTypeContractorFault, Severity: entities.IssueSeverityHigh, ActorID: "cit-1",
		}).Return(entities.IssueReport{
			ID: "i-1", ProjectID: "p-1", Title: "Cracked deck",
			IssueType: entities.IssueTypeContractorFault, Severity: entities.IssueSeverityHigh,
			Status: entities.IssueStatusReported,
		}, nil)

		body := `{"project_id":"p-1","title":"Cracked deck","description":"visible cracks","issue_type":"CONTRACTOR_FAULT","severity":"HIGH"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/issues", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(ActorHeader, "cit-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestIssueHandler_Forgive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unforgivable maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIssueUseCase(ctrl)
		h := NewIssueHandler(uc)

		r := gin.New()
		r.POST("/v1/issues/:id/forgive", h.Forgive)

		uc.EXPECT().Forgive(gomock.Any(), "i-1", "storm", "gov-1").Return(entities.IssueReport{}, usecase.ErrIssueNotForgivable)

		req := httptest.NewRequest(http.MethodPost, "/v1/issues/i-1/forgive", bytes.NewBufferString(`{"reason":"storm"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(ActorHeader, "gov-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("forbidden for non-government actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIssueUseCase(ctrl)
		h := NewIssueHandler(uc)

		r := gin.New()
		r.POST("/v1/issues/:id/forgive", h.Forgive)

		uc.EXPECT().Forgive(gomock.Any(), "i-1", "storm", "cit-1").Return(entities.IssueReport{}, usecase.ErrActorNotAuthorized)

		req := httptest.NewRequest(http.MethodPost, "/v1/issues/i-1/forgive", bytes.NewBufferString(`{"reason":"storm"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(ActorHeader, "cit-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestIssueHandler_Penalize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forgiven issue maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIssueUseCase(ctrl)
		h := NewIssueHandler(uc)

		r := gin.New()
		r.POST("/v1/issues/:id/penalize", h.Penalize)

		uc.EXPECT().Penalize(gomock.Any(), "i-1", "gov-1").Return(usecase.PenaltyOutcome{}, usecase.ErrIssueAlreadyForgiven)

		req := httptest.NewRequest(http.MethodPost, "/v1/issues/i-1/penalize", nil)
		req.Header.Set(ActorHeader, "gov-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unassigned project maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIssueUseCase(ctrl)
		h := NewIssueHandler(uc)

		r := gin.New()
		r.POST("/v1/issues/:id/penalize", h.Penalize)

		uc.EXPECT().Penalize(gomock.Any(), "i-1", "gov-1").Return(usecase.PenaltyOutcome{}, usecase.ErrNoContractorAssigned)

		req := httptest.NewRequest(http.MethodPost, "/v1/issues/i-1/penalize", nil)
		req.Header.Set(ActorHeader, "gov-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success returns the outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIssueUseCase(ctrl)
		h := NewIssueHandler(uc)

		r := gin.New()
		r.POST("/v1/issues/:id/penalize", h.Penalize)

		uc.EXPECT().Penalize(gomock.Any(), "i-1", "gov-1").Return(usecase.PenaltyOutcome{
			Issue:     entities.IssueReport{ID: "i-1", Status: entities.IssueStatusPenalized, RatingImpact: 0.5},
			Penalty:   0.5,
			NewRating: 4.25,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/issues/i-1/penalize", nil)
		req.Header.Set(ActorHeader, "gov-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["penalty_applied"] != 0.5 || body["new_contractor_rating"] != 4.25 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestIssueHandler_AddEvidence(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIssueUseCase(ctrl)
		h := NewIssueHandler(uc)

		r := gin.New()
		r.POST("/v1/issues/:id/evidence", h.AddEvidence)

		req := httptest.NewRequest(http.MethodPost, "/v1/issues/i-1/evidence", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIssueUseCase(ctrl)
		h := NewIssueHandler(uc)

		r := gin.New()
		r.POST("/v1/issues/:id/evidence", h.AddEvidence)

		uc.EXPECT().AddEvidence(gomock.Any(), "missing", "s3://bucket/p.jpg", "cit-1").Return(entities.IssueReport{}, usecase.ErrIssueNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/issues/missing/evidence", bytes.NewBufferString(`{"file_ref":"s3://bucket/p.jpg"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(ActorHeader, "cit-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
