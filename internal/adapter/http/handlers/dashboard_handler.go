package handlers

import (
	response "cotizaciones_zafir/internal/adapter/http/dto/response"
	"cotizaciones_zafir/internal/usecase"
	"cotizaciones_zafir/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregate dashboard view.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetStats returns the quote totals, the most quoted procedures and the
// latest quotes.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.GetStats(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Ocurrió un error interno", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardStats(stats))
}
