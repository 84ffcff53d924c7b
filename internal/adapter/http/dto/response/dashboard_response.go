package response

import "cotizaciones_zafir/internal/usecase"

type ProcedureCountResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type DashboardResponse struct {
	TotalQuotes   int                      `json:"total_quotes"`
	TopProcedures []ProcedureCountResponse `json:"top_procedures"`
	RecentQuotes  []QuoteResponse          `json:"recent_quotes"`
}

func FromDashboardStats(stats usecase.DashboardStats) DashboardResponse {
	top := make([]ProcedureCountResponse, 0, len(stats.TopProcedures))
	for _, p := range stats.TopProcedures {
		top = append(top, ProcedureCountResponse{Name: p.Name, Count: p.Count})
	}
	return DashboardResponse{
		TotalQuotes:   stats.TotalQuotes,
		TopProcedures: top,
		RecentQuotes:  FromQuotes(stats.RecentQuotes),
	}
}
