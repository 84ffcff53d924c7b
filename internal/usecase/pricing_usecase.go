package usecase

import (
	"context"
	"errors"
	"strings"

	"cotizaciones_zafir/internal/domain/entities"
	"cotizaciones_zafir/internal/usecase/interfaces"
)

var ErrInvalidProcedureName = errors.New("invalid procedure name")

// SuggestPricing computes historical average costs for a procedure.
//
// The cohort is selected by exact, case-sensitive procedure name equality.
// This is deliberately stricter than FilterQuotes: search is for humans,
// the pricing cohort must compare like with like.
//
// An empty cohort yields QuoteCount 0 with all averages 0, never NaN. No
// rounding is applied here; display formatting belongs to pkg/format.
func SuggestPricing(procedureName string, historical []entities.Quote) entities.PricingSuggestion {
	s := entities.PricingSuggestion{ProcedureName: procedureName}

	for _, q := range historical {
		if q.ProcedureName != procedureName {
			continue
		}
		s.QuoteCount++
		s.AvgFacilityFee += q.FacilityFee
		s.AvgEquipmentCosts += q.EquipmentCosts
		s.AvgTotalCost += q.TotalCost
	}
	if s.QuoteCount == 0 {
		return s
	}

	n := float64(s.QuoteCount)
	s.AvgFacilityFee /= n
	s.AvgEquipmentCosts /= n
	s.AvgTotalCost /= n
	s.SuggestedTotal = s.AvgTotalCost
	return s
}

// IPricingUseCase exposes the server-side mirror of the suggestion contract.
type IPricingUseCase interface {
	GetSuggestions(ctx context.Context, procedureName string) (entities.PricingSuggestion, error)
}

type PricingUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(repo interfaces.IQuoteRepository) *PricingUseCase {
	return &PricingUseCase{repo: repo}
}

func (u *PricingUseCase) GetSuggestions(ctx context.Context, procedureName string) (entities.PricingSuggestion, error) {
	procedureName = strings.TrimSpace(procedureName)
	if procedureName == "" {
		return entities.PricingSuggestion{}, ErrInvalidProcedureName
	}

	quotes, err := u.repo.List(ctx)
	if err != nil {
		return entities.PricingSuggestion{}, err
	}
	return SuggestPricing(procedureName, quotes), nil
}
