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

var errInvalidMaterialPayload = pkg.NewDomainErrorSimple("INVALID_MATERIAL_INPUT", "Invalid material payload", http.StatusBadRequest)

// MaterialHandler handles material cost lines and their verification.

type MaterialHandler struct {
	usecase usecase.IMaterialUseCase
}

func NewMaterialHandler(uc usecase.IMaterialUseCase) *MaterialHandler {
	return &MaterialHandler{usecase: uc}
}

func (h *MaterialHandler) Create(c *gin.Context) {
	var payload request.CreateMaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaterialPayload.HTTPStatus, errInvalidMaterialPayload.ToHTTPError())
		return
	}

	material, err := h.usecase.Create(c.Request.Context(), usecase.CreateMaterialCommand{
		ProjectID:       payload.ProjectID,
		Name:            payload.Name,
		Description:     payload.Description,
		Unit:            payload.Unit,
		PlannedQuantity: payload.PlannedQuantity,
		ActualQuantity:  payload.ActualQuantity,
		UnitPrice:       payload.UnitPrice,
		SupplierName:    payload.SupplierName,
		SupplierContact: payload.SupplierContact,
		QualityGrade:    payload.QualityGrade,
		ActorID:         actorID(c),
	})
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMaterial(material))
}

func (h *MaterialHandler) GetByID(c *gin.Context) {
	material, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMaterial(material))
}

func (h *MaterialHandler) ListByProject(c *gin.Context) {
	materials, err := h.usecase.ListByProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMaterials(materials))
}

func (h *MaterialHandler) Update(c *gin.Context) {
	var payload request.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaterialPayload.HTTPStatus, errInvalidMaterialPayload.ToHTTPError())
		return
	}

	material, err := h.usecase.UpdateQuantities(c.Request.Context(), c.Param("id"), usecase.UpdateMaterialCommand{
		PlannedQuantity: payload.PlannedQuantity,
		ActualQuantity:  payload.ActualQuantity,
		UnitPrice:       payload.UnitPrice,
		ActorID:         actorID(c),
	})
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaterial(material))
}

func (h *MaterialHandler) Verify(c *gin.Context) {
	material, err := h.usecase.Verify(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMaterial(material))
}

func (h *MaterialHandler) RecordPayment(c *gin.Context) {
	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaterialPayload.HTTPStatus, errInvalidMaterialPayload.ToHTTPError())
		return
	}

	payment, err := h.usecase.RecordPayment(c.Request.Context(), c.Param("id"), usecase.RecordPaymentCommand{
		Amount:           payload.Amount,
		Status:           entities.MaterialPaymentStatus(payload.Status),
		PaymentReference: payload.PaymentReference,
		PaymentDate:      payload.PaymentDate,
		ActorID:          actorID(c),
	})
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMaterialPayment(payment))
}

func (h *MaterialHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMaterialPayments(payments))
}

func mapMaterialError(err error) *pkg.AppError {
	if appErr := mapAuthzError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidMaterialInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentInput):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT", "Payment amount must be positive and status recognized", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMaterialNotFound):
		return pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
