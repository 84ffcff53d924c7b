package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"cotizaciones_zafir/internal/domain/entities"
	"cotizaciones_zafir/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound           = errors.New("quote not found")
	ErrInvalidQuoteID          = errors.New("invalid quote id")
	ErrMissingProcedureName    = errors.New("missing procedure name")
	ErrInvalidSurgeryDuration  = errors.New("invalid surgery duration")
	ErrNegativeCostValue       = errors.New("negative cost value")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// IQuoteUseCase exposes the quote operations served over HTTP.
//
//   - CreateQuote derives total_cost from the four cost parts; the client
//     never supplies it.
//   - ListQuotes applies the display filter (search + procedure) over the
//     chronologically ordered list.
//   - Approve/Send/Expire drive the status lifecycle
//     borrador -> aprobado -> enviado, with vencido reachable from any
//     non-expired state.

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, qc entities.QuoteCreate) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListQuotes(ctx context.Context, searchTerm, procedureFilter string) ([]entities.Quote, error)
	UpdateQuote(ctx context.Context, id string, qc entities.QuoteCreate) (entities.Quote, error)
	DeleteQuote(ctx context.Context, id string) error
	ApproveQuote(ctx context.Context, id string) (entities.Quote, error)
	SendQuote(ctx context.Context, id string) (entities.Quote, error)
	ExpireQuote(ctx context.Context, id string) (entities.Quote, error)
	ListProcedures(ctx context.Context) ([]string, error)
	ListSurgeons(ctx context.Context) ([]string, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

func validateQuoteCreate(qc entities.QuoteCreate) error {
	if strings.TrimSpace(qc.ProcedureName) == "" {
		return ErrMissingProcedureName
	}
	if qc.SurgeryDurationHours <= 0 {
		return ErrInvalidSurgeryDuration
	}
	if qc.FacilityFee < 0 || qc.EquipmentCosts < 0 {
		return ErrNegativeCostValue
	}
	if qc.AnesthesiaFee != nil && *qc.AnesthesiaFee < 0 {
		return ErrNegativeCostValue
	}
	if qc.OtherCosts != nil && *qc.OtherCosts < 0 {
		return ErrNegativeCostValue
	}
	return nil
}

func quoteFromCreate(qc entities.QuoteCreate) entities.Quote {
	return entities.Quote{
		PatientID:            strings.TrimSpace(qc.PatientID),
		PatientAge:           qc.PatientAge,
		PatientPhone:         strings.TrimSpace(qc.PatientPhone),
		PatientEmail:         strings.TrimSpace(qc.PatientEmail),
		ProcedureName:        strings.TrimSpace(qc.ProcedureName),
		ProcedureCode:        strings.TrimSpace(qc.ProcedureCode),
		ProcedureDescription: strings.TrimSpace(qc.ProcedureDescription),
		SurgeonName:          strings.TrimSpace(qc.SurgeonName),
		SurgeonSpecialty:     strings.TrimSpace(qc.SurgeonSpecialty),
		SurgeryDurationHours: qc.SurgeryDurationHours,
		AnesthesiaType:       strings.TrimSpace(qc.AnesthesiaType),
		AdditionalEquipment:  qc.AdditionalEquipment,
		AdditionalMaterials:  qc.AdditionalMaterials,
		IsAmbulatory:         qc.IsAmbulatory,
		HospitalNights:       qc.HospitalNights,
		FacilityFee:          qc.FacilityFee,
		EquipmentCosts:       qc.EquipmentCosts,
		AnesthesiaFee:        valueOrZero(qc.AnesthesiaFee),
		OtherCosts:           valueOrZero(qc.OtherCosts),
		TotalCost:            entities.ComputeTotalCost(qc.FacilityFee, qc.EquipmentCosts, qc.AnesthesiaFee, qc.OtherCosts),
		SurgicalPackage:      qc.SurgicalPackage,
		CreatedBy:            strings.TrimSpace(qc.CreatedBy),
		Notes:                qc.Notes,
	}
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, qc entities.QuoteCreate) (entities.Quote, error) {
	if err := validateQuoteCreate(qc); err != nil {
		return entities.Quote{}, err
	}

	q := quoteFromCreate(qc)
	q.ID = uuid.NewString()
	q.Status = entities.QuoteStatusDraft
	q.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] created quote id=%s procedure=%q total=%.2f", created.ID, created.ProcedureName, created.TotalCost)
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListQuotes(ctx context.Context, searchTerm, procedureFilter string) ([]entities.Quote, error) {
	quotes, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterQuotes(quotes, strings.TrimSpace(searchTerm), strings.TrimSpace(procedureFilter)), nil
}

// UpdateQuote replaces the editable fields of an existing quote. Identity,
// creation metadata and lifecycle status are preserved; total_cost is
// recomputed from the new parts.
func (u *QuoteUseCase) UpdateQuote(ctx context.Context, id string, qc entities.QuoteCreate) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if err := validateQuoteCreate(qc); err != nil {
		return entities.Quote{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if existing.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	q := quoteFromCreate(qc)
	q.ID = existing.ID
	q.Status = existing.Status
	q.CreatedAt = existing.CreatedAt
	if q.CreatedBy == "" {
		q.CreatedBy = existing.CreatedBy
	}

	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) DeleteQuote(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] deleted quote id=%s", id)
	return nil
}

func (u *QuoteUseCase) ApproveQuote(ctx context.Context, id string) (entities.Quote, error) {
	return u.transitionStatus(ctx, id, entities.QuoteStatusApproved)
}

func (u *QuoteUseCase) SendQuote(ctx context.Context, id string) (entities.Quote, error) {
	return u.transitionStatus(ctx, id, entities.QuoteStatusSent)
}

func (u *QuoteUseCase) ExpireQuote(ctx context.Context, id string) (entities.Quote, error) {
	return u.transitionStatus(ctx, id, entities.QuoteStatusExpired)
}

func canTransition(from, to entities.QuoteStatus) bool {
	switch to {
	case entities.QuoteStatusApproved:
		return from == entities.QuoteStatusDraft
	case entities.QuoteStatusSent:
		return from == entities.QuoteStatusApproved
	case entities.QuoteStatusExpired:
		return from != entities.QuoteStatusExpired
	}
	return false
}

func (u *QuoteUseCase) transitionStatus(ctx context.Context, id string, to entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if !canTransition(q.Status, to) {
		log.Printf("[quote][usecase] rejected transition id=%s from=%s to=%s", id, q.Status, to)
		return entities.Quote{}, ErrInvalidStatusTransition
	}

	q.Status = to
	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] status transition id=%s to=%s", id, to)
	return updated, nil
}

func (u *QuoteUseCase) ListProcedures(ctx context.Context) ([]string, error) {
	quotes, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return distinctNonEmpty(quotes, func(q entities.Quote) string { return q.ProcedureName }), nil
}

func (u *QuoteUseCase) ListSurgeons(ctx context.Context) ([]string, error) {
	quotes, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return distinctNonEmpty(quotes, func(q entities.Quote) string { return q.SurgeonName }), nil
}

func distinctNonEmpty(quotes []entities.Quote, field func(entities.Quote) string) []string {
	seen := make(map[string]struct{}, len(quotes))
	out := make([]string, 0, len(quotes))
	for _, q := range quotes {
		v := field(q)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
