package response

import (
	"cotizaciones_zafir/internal/domain/entities"
	"cotizaciones_zafir/pkg/format"
)

// PricingSuggestionResponse carries the raw averages plus the rendering of
// the suggested total. When QuoteCount is 0 there is no suggestion and the
// zero averages are placeholders, not prices.
type PricingSuggestionResponse struct {
	ProcedureName           string  `json:"procedure_name"`
	AvgFacilityFee          float64 `json:"avg_facility_fee"`
	AvgEquipmentCosts       float64 `json:"avg_equipment_costs"`
	AvgTotalCost            float64 `json:"avg_total_cost"`
	QuoteCount              int     `json:"quote_count"`
	SuggestedTotal          float64 `json:"suggested_total"`
	SuggestedTotalFormatted string  `json:"suggested_total_formatted,omitempty"`
}

func FromPricingSuggestion(s entities.PricingSuggestion) PricingSuggestionResponse {
	res := PricingSuggestionResponse{
		ProcedureName:     s.ProcedureName,
		AvgFacilityFee:    s.AvgFacilityFee,
		AvgEquipmentCosts: s.AvgEquipmentCosts,
		AvgTotalCost:      s.AvgTotalCost,
		QuoteCount:        s.QuoteCount,
		SuggestedTotal:    s.SuggestedTotal,
	}
	if s.QuoteCount > 0 {
		res.SuggestedTotalFormatted = format.Currency(s.SuggestedTotal)
	}
	return res
}
