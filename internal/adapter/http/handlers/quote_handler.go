package handlers

import (
	"context"
	request "cotizaciones_zafir/internal/adapter/http/dto/request"
	response "cotizaciones_zafir/internal/adapter/http/dto/response"
	"cotizaciones_zafir/internal/domain/entities"
	"cotizaciones_zafir/internal/usecase"
	"cotizaciones_zafir/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Datos de cotización inválidos", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for surgical quotes.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote registers a new quote.
//
// It accepts the canonical JSON payload or, when the request is
// form-encoded, the raw form shape whose fields arrive as text and get
// coerced before validation.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	payload, ok := bindQuotePayload(c)
	if !ok {
		return
	}

	created, err := h.usecase.CreateQuote(c.Request.Context(), payload.ToQuoteCreate())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(created))
}

// GetQuote returns a single quote by id.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ListQuotes returns every quote, newest first, optionally narrowed by the
// search and procedure query parameters.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListQuotes(c.Request.Context(), c.Query("search"), c.Query("procedure"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// UpdateQuote replaces the editable fields of an existing quote.
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	payload, ok := bindQuotePayload(c)
	if !ok {
		return
	}

	updated, err := h.usecase.UpdateQuote(c.Request.Context(), c.Param("quote_id"), payload.ToQuoteCreate())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(updated))
}

// DeleteQuote removes a quote by id.
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	if err := h.usecase.DeleteQuote(c.Request.Context(), c.Param("quote_id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cotización eliminada exitosamente"})
}

func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.ApproveQuote)
}

func (h *QuoteHandler) SendQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.SendQuote)
}

func (h *QuoteHandler) ExpireQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.ExpireQuote)
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Quote, error),
) {
	q, err := updater(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// ListProcedures returns the distinct procedure names present in stored
// quotes, for the filter dropdown.
func (h *QuoteHandler) ListProcedures(c *gin.Context) {
	procedures, err := h.usecase.ListProcedures(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ProceduresResponse{Procedures: procedures})
}

// ListSurgeons returns the distinct surgeon names present in stored quotes.
func (h *QuoteHandler) ListSurgeons(c *gin.Context) {
	surgeons, err := h.usecase.ListSurgeons(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SurgeonsResponse{Surgeons: surgeons})
}

func bindQuotePayload(c *gin.Context) (request.QuoteCreateRequest, bool) {
	switch c.ContentType() {
	case gin.MIMEPOSTForm, gin.MIMEMultipartPOSTForm:
		var form request.QuoteForm
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
			return request.QuoteCreateRequest{}, false
		}
		return form.BuildPayload(), true
	default:
		var payload request.QuoteCreateRequest
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
			return request.QuoteCreateRequest{}, false
		}
		return payload, true
	}
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrMissingProcedureName),
		errors.Is(err, usecase.ErrInvalidSurgeryDuration), errors.Is(err, usecase.ErrNegativeCostValue):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Datos de cotización inválidos", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Cotización no encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Transición de estado no permitida", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocurrió un error interno", err, http.StatusInternalServerError)
	}
}
