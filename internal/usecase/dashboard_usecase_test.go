package usecase

import (
	"context"
	"errors"
	"testing"

	"cotizaciones_zafir/internal/domain/entities"
	mock_interfaces "cotizaciones_zafir/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_GetStats(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewDashboardUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.GetStats(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("empty store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewDashboardUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, nil)

		stats, err := uc.GetStats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.TotalQuotes != 0 || len(stats.TopProcedures) != 0 || len(stats.RecentQuotes) != 0 {
			t.Fatalf("unexpected stats: %+v", stats)
		}
	})

	t.Run("counts, ranking and recency window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewDashboardUseCase(repo)

		// Repository contract: newest first.
		quotes := []entities.Quote{
			{ID: "q1", ProcedureName: "Apendicectomía"},
			{ID: "q2", ProcedureName: "Bypass Gástrico"},
			{ID: "q3", ProcedureName: "Apendicectomía"},
			{ID: "q4", ProcedureName: "Apendicectomía"},
			{ID: "q5", ProcedureName: "Bypass Gástrico"},
			{ID: "q6", ProcedureName: "Reemplazo de Rodilla"},
			{ID: "q7", ProcedureName: "Cataratas"},
		}
		repo.EXPECT().List(gomock.Any()).Return(quotes, nil)

		stats, err := uc.GetStats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.TotalQuotes != 7 {
			t.Fatalf("expected 7 quotes, got %d", stats.TotalQuotes)
		}
		if len(stats.RecentQuotes) != 5 || stats.RecentQuotes[0].ID != "q1" || stats.RecentQuotes[4].ID != "q5" {
			t.Fatalf("unexpected recent quotes: %+v", stats.RecentQuotes)
		}
		if len(stats.TopProcedures) != 4 {
			t.Fatalf("expected 4 ranked procedures, got %d", len(stats.TopProcedures))
		}
		if stats.TopProcedures[0].Name != "Apendicectomía" || stats.TopProcedures[0].Count != 3 {
			t.Fatalf("unexpected top procedure: %+v", stats.TopProcedures[0])
		}
		if stats.TopProcedures[1].Name != "Bypass Gástrico" || stats.TopProcedures[1].Count != 2 {
			t.Fatalf("unexpected second procedure: %+v", stats.TopProcedures[1])
		}
	})

	t.Run("ranking is capped at five", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewDashboardUseCase(repo)

		quotes := make([]entities.Quote, 0, 7)
		for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
			quotes = append(quotes, entities.Quote{ProcedureName: name})
		}
		repo.EXPECT().List(gomock.Any()).Return(quotes, nil)

		stats, err := uc.GetStats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stats.TopProcedures) != 5 {
			t.Fatalf("expected 5 ranked procedures, got %d", len(stats.TopProcedures))
		}
	})
}
