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

func TestRatingHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRatingUseCase(ctrl)
		h := NewRatingHandler(uc)

		r := gin.New()
		r.POST("/v1/ratings", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/ratings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("value out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRatingUseCase(ctrl)
		h := NewRatingHandler(uc)

		r := gin.New()
		r.POST("/v1/ratings", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ContractorRating{}, usecase.ErrRatingValueOutOfRange)

		req := httptest.NewRequest(http.MethodPost, "/v1/ratings", bytes.NewBufferString(`{"contractor_id":"c-1","project_id":"p-1","rating_value":6}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(ActorHeader, "cit-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRatingUseCase(ctrl)
		h := NewRatingHandler(uc)

		r := gin.New()
		r.POST("/v1/ratings", h.Create)

		uc.EXPECT().Create(gomock.Any(), usecase.CreateRatingCommand{
			ContractorID: "c-1", ProjectID: "p-1", RatingValue: 4, ActorID: "cit-1",
		}).Return(entities.ContractorRating{}, usecase.ErrDuplicateReview)

		req := httptest.NewRequest(http.MethodPost, "/v1/ratings", bytes.NewBufferString(`{"contractor_id":"c-1","project_id":"p-1","rating_value":4}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(ActorHeader, "cit-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRatingUseCase(ctrl)
		h := NewRatingHandler(uc)

		r := gin.New()
		r.POST("/v1/ratings", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ContractorRating{
			ID: "r-1", ContractorID: "c-1", ProjectID: "p-1", RatingValue: 1,
			IsNegative: true, EvidenceRequired: true,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/ratings", bytes.NewBufferString(`{"contractor_id":"c-1","project_id":"p-1","rating_value":1}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(ActorHeader, "cit-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["evidence_required"] != true {
			t.Fatalf("expected armed evidence gate in body: %v", body)
		}
	})
}

func TestRatingHandler_RecordEvidence(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRatingUseCase(ctrl)
		h := NewRatingHandler(uc)

		r := gin.New()
		r.POST("/v1/ratings/:id/evidence", h.RecordEvidence)

		req := httptest.NewRequest(http.MethodPost, "/v1/ratings/r-1/evidence", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("attaches evidence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRatingUseCase(ctrl)
		h := NewRatingHandler(uc)

		r := gin.New()
		r.POST("/v1/ratings/:id/evidence", h.RecordEvidence)

		uc.EXPECT().RecordEvidence(gomock.Any(), "r-1", "s3://bucket/doc.pdf", "cit-1").Return(entities.ContractorRating{
			ID: "r-1", EvidenceProvided: true,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/ratings/r-1/evidence", bytes.NewBufferString(`{"file_ref":"s3://bucket/doc.pdf"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(ActorHeader, "cit-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRatingHandler_VerifyAndApply(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("evidence missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRatingUseCase(ctrl)
		h := NewRatingHandler(uc)

		r := gin.New()
		r.POST("/v1/ratings/:id/verify", h.VerifyAndApply)

		uc.EXPECT().VerifyAndApply(gomock.Any(), "r-1", "gov-1").Return(usecase.VerifyOutcome{}, usecase.ErrEvidenceMissing)

		req := httptest.NewRequest(http.MethodPost, "/v1/ratings/r-1/verify", nil)
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
		uc := mocks.NewMockIRatingUseCase(ctrl)
		h := NewRatingHandler(uc)

		r := gin.New()
		r.POST("/v1/ratings/:id/verify", h.VerifyAndApply)

		uc.EXPECT().VerifyAndApply(gomock.Any(), "r-1", "cit-1").Return(usecase.VerifyOutcome{}, usecase.ErrActorNotAuthorized)

		req := httptest.NewRequest(http.MethodPost, "/v1/ratings/r-1/verify", nil)
		req.Header.Set(ActorHeader, "cit-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("adjust conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRatingUseCase(ctrl)
		h := NewRatingHandler(uc)

		r := gin.New()
		r.POST("/v1/ratings/:id/verify", h.VerifyAndApply)

		uc.EXPECT().VerifyAndApply(gomock.Any(), "r-1", "gov-1").Return(usecase.VerifyOutcome{}, usecase.ErrAdjustConflict)

		req := httptest.NewRequest(http.MethodPost, "/v1/ratings/r-1/verify", nil)
		req.Header.Set(ActorHeader, "gov-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns the outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRatingUseCase(ctrl)
		h := NewRatingHandler(uc)

		r := gin.New()
		r.POST("/v1/ratings/:id/verify", h.VerifyAndApply)

		uc.EXPECT().VerifyAndApply(gomock.Any(), "r-1", "gov-1").Return(usecase.VerifyOutcome{
			Rating:    entities.ContractorRating{ID: "r-1", ContractorID: "c-1", RatingValue: 1, IsVerified: true},
			Applied:   true,
			NewRating: 4.70,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/ratings/r-1/verify", nil)
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
		if body["applied"] != true || body["new_contractor_rating"] != 4.70 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
