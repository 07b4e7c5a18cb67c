package handlers

import (
	"errors"
	"net/http"
	"time"

	request "fundtracker/internal/adapter/http/dto/request"
	response "fundtracker/internal/adapter/http/dto/response"
	"fundtracker/internal/usecase"
	"fundtracker/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQualificationPayload = pkg.NewDomainErrorSimple("INVALID_QUALIFICATION_INPUT", "Invalid qualification payload", http.StatusBadRequest)

// QualificationHandler handles contractor certificates and skills.

type QualificationHandler struct {
	usecase usecase.IQualificationUseCase
}

func NewQualificationHandler(uc usecase.IQualificationUseCase) *QualificationHandler {
	return &QualificationHandler{usecase: uc}
}

func (h *QualificationHandler) AddCertificate(c *gin.Context) {
	var payload request.AddCertificateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQualificationPayload.HTTPStatus, errInvalidQualificationPayload.ToHTTPError())
		return
	}

	cert, err := h.usecase.AddCertificate(c.Request.Context(), usecase.AddCertificateCommand{
		ContractorID:     c.Param("id"),
		Name:             payload.Name,
		IssuingAuthority: payload.IssuingAuthority,
		IssueDate:        payload.IssueDate,
		ExpiryDate:       payload.ExpiryDate,
		ActorID:          actorID(c),
	})
	if err != nil {
		appErr := mapQualificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCertificate(cert, time.Now()))
}

func (h *QualificationHandler) ListCertificates(c *gin.Context) {
	certs, err := h.usecase.ListCertificates(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQualificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCertificates(certs, time.Now()))
}

func (h *QualificationHandler) VerifyCertificate(c *gin.Context) {
	cert, err := h.usecase.VerifyCertificate(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		appErr := mapQualificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCertificate(cert, time.Now()))
}

func (h *QualificationHandler) AddSkill(c *gin.Context) {
	var payload request.AddSkillRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQualificationPayload.HTTPStatus, errInvalidQualificationPayload.ToHTTPError())
		return
	}

	skill, err := h.usecase.AddSkill(c.Request.Context(), usecase.AddSkillCommand{
		ContractorID:     c.Param("id"),
		SkillName:        payload.SkillName,
		ProficiencyLevel: payload.ProficiencyLevel,
		YearsOfPractice:  payload.YearsOfPractice,
		ActorID:          actorID(c),
	})
	if err != nil {
		appErr := mapQualificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSkill(skill))
}

func (h *QualificationHandler) ListSkills(c *gin.Context) {
	skills, err := h.usecase.ListSkills(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQualificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSkills(skills))
}

func (h *QualificationHandler) VerifySkill(c *gin.Context) {
	skill, err := h.usecase.VerifySkill(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		appErr := mapQualificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSkill(skill))
}

func mapQualificationError(err error) *pkg.AppError {
	if appErr := mapAuthzError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidQualificationInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCertificateNotFound):
		return pkg.NewDomainErrorSimple("CERTIFICATE_NOT_FOUND", "Certificate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return pkg.NewDomainErrorSimple("SKILL_NOT_FOUND", "Skill not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractorNotFound):
		return pkg.NewDomainErrorSimple("CONTRACTOR_NOT_FOUND", "Contractor not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
