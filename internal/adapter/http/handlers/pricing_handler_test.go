package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cotizaciones_zafir/internal/adapter/http/handlers/mocks"
	"cotizaciones_zafir/internal/domain/entities"
	"cotizaciones_zafir/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPricingHandler_GetSuggestions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success with history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.GET("/api/pricing-suggestions/:procedure_name", h.GetSuggestions)

		uc.EXPECT().GetSuggestions(gomock.Any(), "Apendicectomía").Return(entities.PricingSuggestion{
			ProcedureName:     "Apendicectomía",
			AvgFacilityFee:    5000,
			AvgEquipmentCosts: 1500,
			AvgTotalCost:      6500,
			QuoteCount:        3,
			SuggestedTotal:    6500,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/pricing-suggestions/Apendicectom%C3%ADa", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["quote_count"] != float64(3) || body["suggested_total"] != float64(6500) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("unknown procedure yields empty suggestion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.GET("/api/pricing-suggestions/:procedure_name", h.GetSuggestions)

		uc.EXPECT().GetSuggestions(gomock.Any(), "Inexistente").Return(entities.PricingSuggestion{ProcedureName: "Inexistente"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/pricing-suggestions/Inexistente", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["quote_count"] != float64(0) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if _, ok := body["suggested_total_formatted"]; ok {
			t.Fatalf("expected no formatted suggestion: %s", w.Body.String())
		}
	})

	t.Run("invalid name maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.GET("/api/pricing-suggestions/:procedure_name", h.GetSuggestions)

		uc.EXPECT().GetSuggestions(gomock.Any(), " ").Return(entities.PricingSuggestion{}, usecase.ErrInvalidProcedureName)

		req := httptest.NewRequest(http.MethodGet, "/api/pricing-suggestions/%20", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("repository failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.GET("/api/pricing-suggestions/:procedure_name", h.GetSuggestions)

		uc.EXPECT().GetSuggestions(gomock.Any(), "Cataratas").Return(entities.PricingSuggestion{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodGet, "/api/pricing-suggestions/Cataratas", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
