package usecase

import (
	"context"
	"sort"

	"cotizaciones_zafir/internal/domain/entities"
	"cotizaciones_zafir/internal/usecase/interfaces"
)

const (
	topProceduresLimit = 5
	recentQuotesLimit  = 5
)

// ProcedureCount is one row of the "most quoted procedures" ranking.
type ProcedureCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DashboardStats is the aggregate view served at /api/dashboard.
type DashboardStats struct {
	TotalQuotes   int              `json:"total_quotes"`
	TopProcedures []ProcedureCount `json:"top_procedures"`
	RecentQuotes  []entities.Quote `json:"recent_quotes"`
}

type IDashboardUseCase interface {
	GetStats(ctx context.Context) (DashboardStats, error)
}

// DashboardUseCase computes the aggregates in memory. DynamoDB has no
// aggregation pipeline, so the ranking and counts are derived from the
// chronologically ordered scan the repository already provides.
type DashboardUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(repo interfaces.IQuoteRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

func (u *DashboardUseCase) GetStats(ctx context.Context) (DashboardStats, error) {
	quotes, err := u.repo.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{
		TotalQuotes:   len(quotes),
		TopProcedures: topProcedures(quotes, topProceduresLimit),
		RecentQuotes:  quotes,
	}
	if len(stats.RecentQuotes) > recentQuotesLimit {
		stats.RecentQuotes = stats.RecentQuotes[:recentQuotesLimit]
	}
	return stats, nil
}

func topProcedures(quotes []entities.Quote, limit int) []ProcedureCount {
	counts := make(map[string]int, len(quotes))
	order := make([]string, 0, len(quotes))
	for _, q := range quotes {
		if q.ProcedureName == "" {
			continue
		}
		if _, ok := counts[q.ProcedureName]; !ok {
			order = append(order, q.ProcedureName)
		}
		counts[q.ProcedureName]++
	}

	ranking := make([]ProcedureCount, 0, len(order))
	for _, name := range order {
		ranking = append(ranking, ProcedureCount{Name: name, Count: counts[name]})
	}
	// Ties keep first-seen order thanks to the stable sort.
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})
	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}
