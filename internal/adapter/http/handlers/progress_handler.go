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

var errInvalidProgressPayload = pkg.NewDomainErrorSimple("INVALID_PROGRESS_INPUT", "Invalid progress payload", http.StatusBadRequest)

// ProgressHandler handles progress report submission and government review.

type ProgressHandler struct {
	usecase usecase.IProgressUseCase
}

func NewProgressHandler(uc usecase.IProgressUseCase) *ProgressHandler {
	return &ProgressHandler{usecase: uc}
}

func (h *ProgressHandler) Submit(c *gin.Context) {
	var payload request.SubmitProgressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProgressPayload.HTTPStatus, errInvalidProgressPayload.ToHTTPError())
		return
	}

	report, err := h.usecase.Submit(c.Request.Context(), usecase.SubmitProgressCommand{
		ProjectID:         payload.ProjectID,
		PhysicalProgress:  payload.PhysicalProgress,
		FinancialProgress: payload.FinancialProgress,
		ReportURL:         payload.ReportURL,
		ActorID:           actorID(c),
	})
	if err != nil {
		appErr := mapProgressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProgress(report))
}

func (h *ProgressHandler) GetByID(c *gin.Context) {
	report, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProgressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProgress(report))
}

func (h *ProgressHandler) ListByProject(c *gin.Context) {
	reports, err := h.usecase.ListByProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProgressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProgressReports(reports))
}

func (h *ProgressHandler) ListPending(c *gin.Context) {
	reports, err := h.usecase.ListPending(c.Request.Context())
	if err != nil {
		appErr := mapProgressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProgressReports(reports))
}

func (h *ProgressHandler) Approve(c *gin.Context) {
	report, err := h.usecase.Approve(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		appErr := mapProgressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProgress(report))
}

func (h *ProgressHandler) Reject(c *gin.Context) {
	report, err := h.usecase.Reject(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		appErr := mapProgressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProgress(report))
}

func (h *ProgressHandler) AddImage(c *gin.Context) {
	var payload request.EvidenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProgressPayload.HTTPStatus, errInvalidProgressPayload.ToHTTPError())
		return
	}

	report, err := h.usecase.AddImage(c.Request.Context(), c.Param("id"), payload.FileRef, actorID(c))
	if err != nil {
		appErr := mapProgressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProgress(report))
}

func mapProgressError(err error) *pkg.AppError {
	if appErr := mapAuthzError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidProgressInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProgressOutOfRange):
		return pkg.NewDomainErrorSimple("INVALID_RANGE", "Progress values must be between 0 and 100", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProgressNotFound):
		return pkg.NewDomainErrorSimple("PROGRESS_NOT_FOUND", "Progress report not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReportingWindowClosed):
		return pkg.NewDomainErrorSimple("REPORTING_WINDOW_CLOSED", "Progress reports can only be submitted after 17:00", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSubmitterSuspended):
		return pkg.NewDomainErrorSimple("CONTRACTOR_SUSPENDED", "Suspended contractors cannot submit progress reports", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrProgressAlreadyDecided):
		return pkg.NewDomainErrorSimple("ALREADY_DECIDED", "Progress report already reviewed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
