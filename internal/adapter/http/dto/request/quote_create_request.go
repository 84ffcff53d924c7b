package request

import (
	"strings"

	"cotizaciones_zafir/internal/domain/entities"
)

// DefaultCreatedBy is the administrative identity stamped on quotes created
// without an explicit author.
const DefaultCreatedBy = "Administrador"

type SurgicalPackageRequest struct {
	MedicationsIncluded []string `json:"medications_included"`
	PostoperativeCare   []string `json:"postoperative_care"`
	HospitalStayNights  int      `json:"hospital_stay_nights"`
	SpecialEquipment    []string `json:"special_equipment"`
	DietaryPlan         bool     `json:"dietary_plan"`
	AdditionalServices  []string `json:"additional_services"`
}

// QuoteCreateRequest is the canonical JSON payload for creating or replacing
// a quote. Optional numerics are pointers so a client can distinguish "not
// provided" from zero; total_cost is deliberately not accepted.
type QuoteCreateRequest struct {
	PatientID    string `json:"patient_id"`
	PatientAge   *int   `json:"patient_age"`
	PatientPhone string `json:"patient_phone"`
	PatientEmail string `json:"patient_email"`

	ProcedureName        string `json:"procedure_name" binding:"required"`
	ProcedureCode        string `json:"procedure_code"`
	ProcedureDescription string `json:"procedure_description"`

	SurgeonName      string `json:"surgeon_name"`
	SurgeonSpecialty string `json:"surgeon_specialty"`

	SurgeryDurationHours int      `json:"surgery_duration_hours" binding:"required"`
	AnesthesiaType       string   `json:"anesthesia_type"`
	AdditionalEquipment  []string `json:"additional_equipment"`
	AdditionalMaterials  []string `json:"additional_materials"`
	IsAmbulatory         bool     `json:"is_ambulatory"`
	HospitalNights       int      `json:"hospital_nights"`

	FacilityFee    float64  `json:"facility_fee"`
	EquipmentCosts float64  `json:"equipment_costs"`
	AnesthesiaFee  *float64 `json:"anesthesia_fee"`
	OtherCosts     *float64 `json:"other_costs"`

	SurgicalPackage *SurgicalPackageRequest `json:"surgical_package"`

	CreatedBy string `json:"created_by"`
	Notes     string `json:"notes"`
}

func (r QuoteCreateRequest) ToQuoteCreate() entities.QuoteCreate {
	createdBy := strings.TrimSpace(r.CreatedBy)
	if createdBy == "" {
		createdBy = DefaultCreatedBy
	}

	var pkg *entities.SurgicalPackage
	if r.SurgicalPackage != nil {
		pkg = &entities.SurgicalPackage{
			MedicationsIncluded: r.SurgicalPackage.MedicationsIncluded,
			PostoperativeCare:   r.SurgicalPackage.PostoperativeCare,
			HospitalStayNights:  r.SurgicalPackage.HospitalStayNights,
			SpecialEquipment:    r.SurgicalPackage.SpecialEquipment,
			DietaryPlan:         r.SurgicalPackage.DietaryPlan,
			AdditionalServices:  r.SurgicalPackage.AdditionalServices,
		}
	}

	return entities.QuoteCreate{
		PatientID:            r.PatientID,
		PatientAge:           r.PatientAge,
		PatientPhone:         r.PatientPhone,
		PatientEmail:         r.PatientEmail,
		ProcedureName:        r.ProcedureName,
		ProcedureCode:        r.ProcedureCode,
		ProcedureDescription: r.ProcedureDescription,
		SurgeonName:          r.SurgeonName,
		SurgeonSpecialty:     r.SurgeonSpecialty,
		SurgeryDurationHours: r.SurgeryDurationHours,
		AnesthesiaType:       r.AnesthesiaType,
		AdditionalEquipment:  r.AdditionalEquipment,
		AdditionalMaterials:  r.AdditionalMaterials,
		IsAmbulatory:         r.IsAmbulatory,
		HospitalNights:       r.HospitalNights,
		FacilityFee:          r.FacilityFee,
		EquipmentCosts:       r.EquipmentCosts,
		AnesthesiaFee:        r.AnesthesiaFee,
		OtherCosts:           r.OtherCosts,
		SurgicalPackage:      pkg,
		CreatedBy:            createdBy,
		Notes:                r.Notes,
	}
}
