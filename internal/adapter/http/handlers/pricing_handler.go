package handlers

import (
	response "cotizaciones_zafir/internal/adapter/http/dto/response"
	"cotizaciones_zafir/internal/usecase"
	"cotizaciones_zafir/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PricingHandler serves historical pricing suggestions.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// GetSuggestions returns average historical costs for the named procedure.
// An unknown procedure is not an error: it yields quote_count 0.
func (h *PricingHandler) GetSuggestions(c *gin.Context) {
	suggestion, err := h.usecase.GetSuggestions(c.Request.Context(), c.Param("procedure_name"))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricingSuggestion(suggestion))
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProcedureName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Nombre de procedimiento inválido", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocurrió un error interno", err, http.StatusInternalServerError)
	}
}
