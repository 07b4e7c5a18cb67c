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

func TestQualificationHandler_AddCertificate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQualificationUseCase(ctrl)
		h := NewQualificationHandler(uc)

		r := gin.New()
		r.POST("/v1/contractors/:id/certificates", h.AddCertificate)

		req := httptest.NewRequest(http.MethodPost, "/v1/contractors/ctr-1/certificates", bytes.NewBufferString(`{"issuing_authority":"City Works Board"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown contractor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQualificationUseCase(ctrl)
		h := NewQualificationHandler(uc)

		r := gin.New()
		r.POST("/v1/contractors/:id/certificates", h.AddCertificate)

		uc.EXPECT().AddCertificate(gomock.Any(), gomock.Any()).Return(entities.ContractorCertificate{}, usecase.ErrContractorNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/contractors/missing/certificates", bytes.NewBufferString(`{"name":"ISO 9001"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("files the certificate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQualificationUseCase(ctrl)
		h := NewQualificationHandler(uc)

		r := gin.New()
		r.POST("/v1/contractors/:id/certificates", h.AddCertificate)

		uc.EXPECT().AddCertificate(gomock.Any(), usecase.AddCertificateCommand{
			ContractorID: "ctr-1", Name: "ISO 9001", IssuingAuthority: "City Works Board", ActorID: "ctr-1",
		}).Return(entities.ContractorCertificate{ID: "cert-1", ContractorID: "ctr-1", Name: "ISO 9001"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/contractors/ctr-1/certificates", bytes.NewBufferString(`{"name":"ISO 9001","issuing_authority":"City Works Board"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(ActorHeader, "ctr-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["id"] != "cert-1" || body["verified"] != false {
			t.Fatalf("unexpected body: %v", body)
		}
		if body["is_valid"] != true {
			t.Fatalf("certificate without expiry should report valid: %v", body)
		}
	})
}

func TestQualificationHandler_VerifyCertificate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forbidden for non-government actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQualificationUseCase(ctrl)
		h := NewQualificationHandler(uc)

		r := gin.New()
		r.POST("/v1/certificates/:id/verify", h.VerifyCertificate)

		uc.EXPECT().VerifyCertificate(gomock.Any(), "cert-1", "ctr-1").Return(entities.ContractorCertificate{}, usecase.ErrActorNotAuthorized)

		req := httptest.NewRequest(http.MethodPost, "/v1/certificates/cert-1/verify", nil)
		req.Header.Set(ActorHeader, "ctr-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("unknown certificate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQualificationUseCase(ctrl)
		h := NewQualificationHandler(uc)

		r := gin.New()
		r.POST("/v1/certificates/:id/verify", h.VerifyCertificate)

		uc.EXPECT().VerifyCertificate(gomock.Any(), "missing", "gov-1").Return(entities.ContractorCertificate{}, usecase.ErrCertificateNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/certificates/missing/verify", nil)
		req.Header.Set(ActorHeader, "gov-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("verification succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQualificationUseCase(ctrl)
		h := NewQualificationHandler(uc)

		r := gin.New()
		r.POST("/v1/certificates/:id/verify", h.VerifyCertificate)

		uc.EXPECT().VerifyCertificate(gomock.Any(), "cert-1", "gov-1").Return(entities.ContractorCertificate{ID: "cert-1", Verified: true, VerifiedBy: "gov-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/certificates/cert-1/verify", nil)
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
		if body["verified"] != true || body["verified_by"] != "gov-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestQualificationHandler_AddSkill(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing skill name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQualificationUseCase(ctrl)
		h := NewQualificationHandler(uc)

		r := gin.New()
		r.POST("/v1/contractors/:id/skills", h.AddSkill)

		req := httptest.NewRequest(http.MethodPost, "/v1/contractors/ctr-1/skills", bytes.NewBufferString(`{"proficiency_level":"EXPERT"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("declares the skill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQualificationUseCase(ctrl)
		h := NewQualificationHandler(uc)

		r := gin.New()
		r.POST("/v1/contractors/:id/skills", h.AddSkill)

		uc.EXPECT().AddSkill(gomock.Any(), usecase.AddSkillCommand{
			ContractorID: "ctr-1", SkillName: "Masonry", ProficiencyLevel: "EXPERT", YearsOfPractice: 12, ActorID: "ctr-1",
		}).Return(entities.ContractorSkill{ID: "skill-1", ContractorID: "ctr-1", SkillName: "Masonry"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/contractors/ctr-1/skills", bytes.NewBufferString(`{"skill_name":"Masonry","proficiency_level":"EXPERT","years_of_practice":12}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(ActorHeader, "ctr-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestQualificationHandler_ListSkills(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the contractor's skills", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQualificationUseCase(ctrl)
		h := NewQualificationHandler(uc)

		r := gin.New()
		r.GET("/v1/contractors/:id/skills", h.ListSkills)

		uc.EXPECT().ListSkills(gomock.Any(), "ctr-1").Return([]entities.ContractorSkill{
			{ID: "skill-1", ContractorID: "ctr-1", SkillName: "Masonry", Verified: true},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/contractors/ctr-1/skills", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 1 || body[0]["skill_name"] != "Masonry" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestQualificationHandler_VerifySkill(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown skill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQualificationUseCase(ctrl)
		h := NewQualificationHandler(uc)

		r := gin.New()
		r.POST("/v1/skills/:id/verify", h.VerifySkill)

		uc.EXPECT().VerifySkill(gomock.Any(), "missing", "gov-1").Return(entities.ContractorSkill{}, usecase.ErrSkillNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/skills/missing/verify", nil)
		req.Header.Set(ActorHeader, "gov-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("verification succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQualificationUseCase(ctrl)
		h := NewQualificationHandler(uc)

		r := gin.New()
		r.POST("/v1/skills/:id/verify", h.VerifySkill)

		uc.EXPECT().VerifySkill(gomock.Any(), "skill-1", "gov-1").Return(entities.ContractorSkill{ID: "skill-1", Verified: true, VerifiedBy: "gov-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/skills/skill-1/verify", nil)
		req.Header.Set(ActorHeader, "gov-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
