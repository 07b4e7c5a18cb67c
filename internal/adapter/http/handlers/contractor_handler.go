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

var errInvalidContractorPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACTOR_INPUT", "Invalid contractor payload", http.StatusBadRequest)

// ContractorHandler handles contractor accounts, the suspended directory,
// administrative reinstatement and eligibility checks.

type ContractorHandler struct {
	usecase     usecase.IContractorUseCase
	eligibility usecase.IEligibilityUseCase
}

func NewContractorHandler(uc usecase.IContractorUseCase, eligibility usecase.IEligibilityUseCase) *ContractorHandler {
	return &ContractorHandler{usecase: uc, eligibility: eligibility}
}

func (h *ContractorHandler) Register(c *gin.Context) {
	var payload request.RegisterContractorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractorPayload.HTTPStatus, errInvalidContractorPayload.ToHTTPError())
		return
	}

	contractor, err := h.usecase.Register(c.Request.Context(), usecase.RegisterContractorCommand{
		UserID:            payload.UserID,
		YearsOfExperience: payload.YearsOfExperience,
		SkillLevel:        payload.SkillLevel,
		ActorID:           actorID(c),
	})
	if err != nil {
		appErr := mapContractorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContractor(contractor))
}

func (h *ContractorHandler) GetByID(c *gin.Context) {
	contractor, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContractor(contractor))
}

func (h *ContractorHandler) ListSuspended(c *gin.Context) {
	contractors, err := h.usecase.ListSuspended(c.Request.Context())
	if err != nil {
		appErr := mapContractorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContractors(contractors))
}

func (h *ContractorHandler) Reinstate(c *gin.Context) {
	contractor, err := h.usecase.Reinstate(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		appErr := mapContractorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContractor(contractor))
}

// CheckEligibility answers whether the contractor may take a contract of
// the size given in the "size" query parameter; with no parameter it
// returns the verdict for every size.
func (h *ContractorHandler) CheckEligibility(c *gin.Context) {
	id := c.Param("id")

	if sizeParam, ok := c.GetQuery("size"); ok {
		size := entities.ContractSize(sizeParam)
		switch size {
		case entities.ContractSizeSmall, entities.ContractSizeMedium, entities.ContractSizeLarge:
		default:
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Unknown contract size", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		result, err := h.eligibility.Check(c.Request.Context(), id, size)
		if err != nil {
			appErr := mapContractorError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromEligibilityResult(id, size, result))
		return
	}

	all, err := h.eligibility.CheckAll(c.Request.Context(), id)
	if err != nil {
		appErr := mapContractorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContractorEligibility(all))
}

func mapContractorError(err error) *pkg.AppError {
	if appErr := mapAuthzError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidContractorInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractorNotFound):
		return pkg.NewDomainErrorSimple("CONTRACTOR_NOT_FOUND", "Contractor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractorNotSuspended):
		return pkg.NewDomainErrorSimple("CONTRACTOR_NOT_SUSPENDED", "Contractor is not suspended", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
