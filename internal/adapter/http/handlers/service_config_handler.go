package handlers

import (
	"errors"
	"net/http"

	request "enviromaster/internal/adapter/http/dto/request"
	response "enviromaster/internal/adapter/http/dto/response"
	"enviromaster/internal/usecase"
	"enviromaster/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidConfigPayload = pkg.NewDomainErrorSimple("INVALID_CONFIG_INPUT", "Invalid config payload", http.StatusBadRequest)
)

// ServiceConfigHandler serves the per-service rate configuration. GetActive
// never propagates a backend failure: the resolved config may silently be
// the hardcoded defaults.

type ServiceConfigHandler struct {
	usecase usecase.IServiceConfigUseCase
}

func NewServiceConfigHandler(uc usecase.IServiceConfigUseCase) *ServiceConfigHandler {
	return &ServiceConfigHandler{usecase: uc}
}

func (h *ServiceConfigHandler) GetActive(c *gin.Context) {
	serviceID := c.Query("serviceId")

	cfg, err := h.usecase.GetActive(c.Request.Context(), serviceID)
	if err != nil {
		appErr := mapConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActiveConfig(cfg))
}

func (h *ServiceConfigHandler) Upsert(c *gin.Context) {
	var payload request.UpsertServiceConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}

	cfg, err := h.usecase.Upsert(c.Request.Context(), c.Param("serviceId"), payload.Config)
	if err != nil {
		appErr := mapConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActiveConfig(cfg))
}

func (h *ServiceConfigHandler) Refresh(c *gin.Context) {
	cfg, err := h.usecase.Refresh(c.Request.Context(), c.Param("serviceId"))
	if err != nil {
		appErr := mapConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActiveConfig(cfg))
}

func mapConfigError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID):
		return pkg.NewDomainErrorSimple("UNKNOWN_SERVICE", "Unknown service id", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidConfigPayload):
		return errInvalidConfigPayload
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
