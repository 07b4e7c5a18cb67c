package handlers

import (
	"errors"
	"net/http"

	request "fundtracker/internal/adapter/http/dto/request"
	response "fundtracker/internal/adapter/http/dto/response"
	"fundtracker/internal/usecase"
	"fundtracker/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRatingPayload = pkg.NewDomainErrorSimple("INVALID_RATING_INPUT", "Invalid rating payload", http.StatusBadRequest)

// RatingHandler handles proof-gated contractor reviews: submission,
// evidence upload, verification and application to the ledger.

type RatingHandler struct {
	usecase usecase.IRatingUseCase
}

func NewRatingHandler(uc usecase.IRatingUseCase) *RatingHandler {
	return &RatingHandler{usecase: uc}
}

func (h *RatingHandler) Create(c *gin.Context) {
	var payload request.CreateRatingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRatingPayload.HTTPStatus, errInvalidRatingPayload.ToHTTPError())
		return
	}

	rating, err := h.usecase.Create(c.Request.Context(), usecase.CreateRatingCommand{
		ContractorID: payload.ContractorID,
		ProjectID:    payload.ProjectID,
		RatingValue:  payload.RatingValue,
		Comment:      payload.Comment,
		ActorID:      actorID(c),
	})
	if err != nil {
		appErr := mapRatingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRating(rating))
}

func (h *RatingHandler) GetByID(c *gin.Context) {
	rating, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRatingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRating(rating))
}

func (h *RatingHandler) ListByContractor(c *gin.Context) {
	ratings, err := h.usecase.ListByContractor(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRatingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRatings(ratings))
}

func (h *RatingHandler) RecordEvidence(c *gin.Context) {
	var payload request.EvidenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRatingPayload.HTTPStatus, errInvalidRatingPayload.ToHTTPError())
		return
	}

	rating, err := h.usecase.RecordEvidence(c.Request.Context(), c.Param("id"), payload.FileRef, actorID(c))
	if err != nil {
		appErr := mapRatingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRating(rating))
}

func (h *RatingHandler) VerifyAndApply(c *gin.Context) {
	outcome, err := h.usecase.VerifyAndApply(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		appErr := mapRatingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVerifyOutcome(outcome))
}

func mapRatingError(err error) *pkg.AppError {
	if appErr := mapAuthzError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidRatingInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRatingValueOutOfRange):
		return pkg.NewDomainErrorSimple("INVALID_RANGE", "Rating value must be between 1 and 5", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRatingNotFound):
		return pkg.NewDomainErrorSimple("RATING_NOT_FOUND", "Rating not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractorNotFound):
		return pkg.NewDomainErrorSimple("CONTRACTOR_NOT_FOUND", "Contractor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateReview):
		return pkg.NewDomainErrorSimple("DUPLICATE_REVIEW", "A review already exists for this contractor, project and reviewer", http.StatusConflict)
	case errors.Is(err, usecase.ErrEvidenceMissing):
		return pkg.NewDomainErrorSimple("EVIDENCE_MISSING", "Evidence is required for negative ratings but not provided", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAdjustConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Conflicting concurrent rating adjustments, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
