package handlers

import (
	"errors"
	"net/http"

	request "fundtracker/internal/adapter/http/dto/request"
	response "fundtracker/internal/adapter/http/dto/response"
	"fundtracker/internal/domain/entities"
	"fundtracker/internal/usecase"
	"fundtracker/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidIssuePayload = pkg.NewDomainErrorSimple("INVALID_ISSUE_INPUT", "Invalid issue payload", http.StatusBadRequest)

// IssueHandler handles issue reporting and adjudication: evidence,
// verification, forgiveness, penalties and resolution.

type IssueHandler struct {
	usecase usecase.IIssueUseCase
}

func NewIssueHandler(uc usecase.IIssueUseCase) *IssueHandler {
	return &IssueHandler{usecase: uc}
}

func (h *IssueHandler) Report(c *gin.Context) {
	var payload request.ReportIssueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIssuePayload.HTTPStatus, errInvalidIssuePayload.ToHTTPError())
		return
	}

	issue, err := h.usecase.Report(c.Request.Context(), usecase.ReportIssueCommand{
		ProjectID:   payload.ProjectID,
		Title:       payload.Title,
		Description: payload.Description,
		IssueType:   entities.IssueType(payload.IssueType),
		Severity:    entities.IssueSeverity(payload.Severity),
		ActorID:     actorID(c),
	})
	if err != nil {
		appErr := mapIssueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromIssue(issue))
}

func (h *IssueHandler) GetByID(c *gin.Context) {
	issue, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapIssueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIssue(issue))
}

func (h *IssueHandler) ListByProject(c *gin.Context) {
	issues, err := h.usecase.ListByProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapIssueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIssues(issues))
}

func (h *IssueHandler) AddEvidence(c *gin.Context) {
	var payload request.EvidenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIssuePayload.HTTPStatus, errInvalidIssuePayload.ToHTTPError())
		return
	}

	issue, err := h.usecase.AddEvidence(c.Request.Context(), c.Param("id"), payload.FileRef, actorID(c))
	if err != nil {
		appErr := mapIssueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIssue(issue))
}

func (h *IssueHandler) Verify(c *gin.Context) {
	issue, err := h.usecase.Verify(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		appErr := mapIssueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIssue(issue))
}

func (h *IssueHandler) Forgive(c *gin.Context) {
	var payload request.ForgiveIssueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIssuePayload.HTTPStatus, errInvalidIssuePayload.ToHTTPError())
		return
	}

	issue, err := h.usecase.Forgive(c.Request.Context(), c.Param("id"), payload.Reason, actorID(c))
	if err != nil {
		appErr := mapIssueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIssue(issue))
}

func (h *IssueHandler) Penalize(c *gin.Context) {
	outcome, err := h.usecase.Penalize(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		appErr := mapIssueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPenaltyOutcome(outcome))
}

func (h *IssueHandler) Resolve(c *gin.Context) {
	var payload request.ResolveIssueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIssuePayload.HTTPStatus, errInvalidIssuePayload.ToHTTPError())
		return
	}

	issue, err := h.usecase.Resolve(c.Request.Context(), c.Param("id"), payload.Notes, actorID(c))
	if err != nil {
		appErr := mapIssueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIssue(issue))
}

func mapIssueError(err error) *pkg.AppError {
	if appErr := mapAuthzError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidIssueInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIssueNotFound):
		return pkg.NewDomainErrorSimple("ISSUE_NOT_FOUND", "Issue not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractorNotFound):
		return pkg.NewDomainErrorSimple("CONTRACTOR_NOT_FOUND", "Contractor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIssueNotForgivable):
		return pkg.NewDomainErrorSimple("NOT_FORGIVABLE", "This issue type cannot be forgiven", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrIssueAlreadyForgiven):
		return pkg.NewDomainErrorSimple("ALREADY_FORGIVEN", "This issue has been forgiven", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoContractorAssigned):
		return pkg.NewDomainErrorSimple("NO_CONTRACTOR_ASSIGNED", "No contractor assigned to this project", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAdjustConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Conflicting concurrent rating adjustments, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
