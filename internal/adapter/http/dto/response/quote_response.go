package response

import (
	"time"

	"cotizaciones_zafir/internal/domain/entities"
	"cotizaciones_zafir/pkg/format"
)

type SurgicalPackageResponse struct {
	MedicationsIncluded []string `json:"medications_included"`
	PostoperativeCare   []string `json:"postoperative_care"`
	HospitalStayNights  int      `json:"hospital_stay_nights"`
	SpecialEquipment    []string `json:"special_equipment"`
	DietaryPlan         bool     `json:"dietary_plan"`
	AdditionalServices  []string `json:"additional_services"`
}

// QuoteResponse mirrors the stored quote plus the display renderings the
// clients show (localized total, "N horas" duration).
type QuoteResponse struct {
	ID string `json:"id"`

	PatientID    string `json:"patient_id,omitempty"`
	PatientAge   *int   `json:"patient_age,omitempty"`
	PatientPhone string `json:"patient_phone,omitempty"`
	PatientEmail string `json:"patient_email,omitempty"`

	ProcedureName        string `json:"procedure_name"`
	ProcedureCode        string `json:"procedure_code,omitempty"`
	ProcedureDescription string `json:"procedure_description,omitempty"`

	SurgeonName      string `json:"surgeon_name,omitempty"`
	SurgeonSpecialty string `json:"surgeon_specialty,omitempty"`

	SurgeryDurationHours     int      `json:"surgery_duration_hours"`
	SurgeryDurationFormatted string   `json:"surgery_duration_formatted"`
	AnesthesiaType           string   `json:"anesthesia_type"`
	AdditionalEquipment      []string `json:"additional_equipment"`
	AdditionalMaterials      []string `json:"additional_materials"`
	IsAmbulatory             bool     `json:"is_ambulatory"`
	HospitalNights           int      `json:"hospital_nights"`

	FacilityFee        float64 `json:"facility_fee"`
	EquipmentCosts     float64 `json:"equipment_costs"`
	AnesthesiaFee      float64 `json:"anesthesia_fee"`
	OtherCosts         float64 `json:"other_costs"`
	TotalCost          float64 `json:"total_cost"`
	TotalCostFormatted string  `json:"total_cost_formatted"`

	SurgicalPackage *SurgicalPackageResponse `json:"surgical_package,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	hours := q.SurgeryDurationHours

	var pkg *SurgicalPackageResponse
	if q.SurgicalPackage != nil {
		pkg = &SurgicalPackageResponse{
			MedicationsIncluded: q.SurgicalPackage.MedicationsIncluded,
			PostoperativeCare:   q.SurgicalPackage.PostoperativeCare,
			HospitalStayNights:  q.SurgicalPackage.HospitalStayNights,
			SpecialEquipment:    q.SurgicalPackage.SpecialEquipment,
			DietaryPlan:         q.SurgicalPackage.DietaryPlan,
			AdditionalServices:  q.SurgicalPackage.AdditionalServices,
		}
	}

	return QuoteResponse{
		ID:                       q.ID,
		PatientID:                q.PatientID,
		PatientAge:               q.PatientAge,
		PatientPhone:             q.PatientPhone,
		PatientEmail:             q.PatientEmail,
		ProcedureName:            q.ProcedureName,
		ProcedureCode:            q.ProcedureCode,
		ProcedureDescription:     q.ProcedureDescription,
		SurgeonName:              q.SurgeonName,
		SurgeonSpecialty:         q.SurgeonSpecialty,
		SurgeryDurationHours:     q.SurgeryDurationHours,
		SurgeryDurationFormatted: format.Duration(&hours),
		AnesthesiaType:           q.AnesthesiaType,
		AdditionalEquipment:      q.AdditionalEquipment,
		AdditionalMaterials:      q.AdditionalMaterials,
		IsAmbulatory:             q.IsAmbulatory,
		HospitalNights:           q.HospitalNights,
		FacilityFee:              q.FacilityFee,
		EquipmentCosts:           q.EquipmentCosts,
		AnesthesiaFee:            q.AnesthesiaFee,
		OtherCosts:               q.OtherCosts,
		TotalCost:                q.TotalCost,
		TotalCostFormatted:       format.Currency(q.TotalCost),
		SurgicalPackage:          pkg,
		CreatedAt:                q.CreatedAt,
		CreatedBy:                q.CreatedBy,
		Status:                   string(q.Status),
		Notes:                    q.Notes,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
