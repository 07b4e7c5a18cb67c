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

var errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)

// ProjectHandler handles project CRUD and contractor assignment. Contract
// size and the minimum contractor rating are derived from the budget by the
// use case on every write.

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	cmd := usecase.CreateProjectCommand{
		Name:        payload.Name,
		Location:    payload.Location,
		Ministry:    payload.Ministry,
		TotalBudget: payload.TotalBudget,
		ActorID:     actorID(c),
	}
	if payload.StartDate != nil {
		cmd.StartDate = *payload.StartDate
	}
	if payload.EndDate != nil {
		cmd.EndDate = *payload.EndDate
	}

	project, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(project))
}

func (h *ProjectHandler) GetByID(c *gin.Context) {
	project, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var payload request.UpdateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.Update(c.Request.Context(), c.Param("id"), usecase.UpdateProjectCommand{
		Name:        payload.Name,
		Location:    payload.Location,
		Ministry:    payload.Ministry,
		TotalBudget: payload.TotalBudget,
		StartDate:   payload.StartDate,
		EndDate:     payload.EndDate,
		ActorID:     actorID(c),
	})
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) AssignContractor(c *gin.Context) {
	var payload request.AssignContractorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.AssignContractor(c.Request.Context(), c.Param("id"), payload.ContractorID, actorID(c))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

func mapProjectError(err error) *pkg.AppError {
	if appErr := mapAuthzError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBudget):
		return pkg.NewDomainErrorSimple("INVALID_RANGE", "Budget must not be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractorNotFound):
		return pkg.NewDomainErrorSimple("CONTRACTOR_NOT_FOUND", "Contractor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractorSuspended):
		return pkg.NewDomainErrorSimple("CONTRACTOR_SUSPENDED", "Contractor is suspended", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrContractorNotEligible):
		return pkg.NewDomainErrorSimple("CONTRACTOR_NOT_ELIGIBLE", "Contractor rating is below the contract size requirement", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
