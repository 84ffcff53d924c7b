package entities

// PricingSuggestion carries historical average costs for a named procedure.
// It is derived on every request and never persisted.
//
// QuoteCount = 0 means "no suggestion available": the zero averages must then
// be disregarded by callers, not displayed as real prices.
type PricingSuggestion struct {
	ProcedureName     string  `json:"procedure_name"`
	AvgFacilityFee    float64 `json:"avg_facility_fee"`
	AvgEquipmentCosts float64 `json:"avg_equipment_costs"`
	AvgTotalCost      float64 `json:"avg_total_cost"`
	QuoteCount        int     `json:"quote_count"`
	SuggestedTotal    float64 `json:"suggested_total"`
}
