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

func TestDashboardHandler_GetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/api/dashboard", h.GetStats)

		uc.EXPECT().GetStats(gomock.Any()).Return(usecase.DashboardStats{
			TotalQuotes:   7,
			TopProcedures: []usecase.ProcedureCount{{Name: "Apendicectomía", Count: 4}, {Name: "Cataratas", Count: 3}},
			RecentQuotes:  []entities.Quote{{ID: "q-7"}, {ID: "q-6"}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total_quotes"] != float64(7) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("repository failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/api/dashboard", h.GetStats)

		uc.EXPECT().GetStats(gomock.Any()).Return(usecase.DashboardStats{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
