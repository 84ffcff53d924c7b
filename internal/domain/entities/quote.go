package entities

import "time"

// QuoteStatus represents the lifecycle of a surgical quote (cotización).
//
// Domain notes:
//   - A quote is always created as a draft ("borrador"); the client never picks
//     the initial status.
//   - Later states are reached only through the transition operations exposed
//     by the use case (approve, send, expire).
//
// The wire values are the Spanish labels used across the whole system.

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "borrador"
	QuoteStatusApproved QuoteStatus = "aprobado"
	QuoteStatusSent     QuoteStatus = "enviado"
	QuoteStatusExpired  QuoteStatus = "vencido"
)

// SurgicalPackage is the bundle of included medications, care, equipment and
// services attached to a quote. The list fields preserve the order in which
// the items were entered.
type SurgicalPackage struct {
	MedicationsIncluded []string `json:"medications_included"`
	PostoperativeCare   []string `json:"postoperative_care"`
	HospitalStayNights  int      `json:"hospital_stay_nights"`
	SpecialEquipment    []string `json:"special_equipment"`
	DietaryPlan         bool     `json:"dietary_plan"`
	AdditionalServices  []string `json:"additional_services"`
}

// Quote is a single surgical-procedure cost estimate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Optional fields use pointers so that "not provided" is distinguishable from
// a legitimate zero (a patient aged 0 is not a patient without an age).
//
// TotalCost is derived: it is always recomputed from the four cost parts and
// never accepted from a client.
type Quote struct {
	ID string `json:"id"`

	PatientID    string `json:"patient_id,omitempty"`
	PatientAge   *int   `json:"patient_age,omitempty"`
	PatientPhone string `json:"patient_phone,omitempty"`
	PatientEmail string `json:"patient_email,omitempty"`

	ProcedureName        string `json:"procedure_name"`
	ProcedureCode        string `json:"procedure_code,omitempty"`
	ProcedureDescription string `json:"procedure_description,omitempty"`

	// Surgeon info is non-mandatory: a quote can be drafted before a surgeon
	// is assigned.
	SurgeonName      string `json:"surgeon_name,omitempty"`
	SurgeonSpecialty string `json:"surgeon_specialty,omitempty"`

	SurgeryDurationHours int      `json:"surgery_duration_hours"`
	AnesthesiaType       string   `json:"anesthesia_type"`
	AdditionalEquipment  []string `json:"additional_equipment"`
	AdditionalMaterials  []string `json:"additional_materials"`
	IsAmbulatory         bool     `json:"is_ambulatory"`
	HospitalNights       int      `json:"hospital_nights"`

	FacilityFee    float64 `json:"facility_fee"`
	EquipmentCosts float64 `json:"equipment_costs"`
	AnesthesiaFee  float64 `json:"anesthesia_fee"`
	OtherCosts     float64 `json:"other_costs"`
	TotalCost      float64 `json:"total_cost"`

	SurgicalPackage *SurgicalPackage `json:"surgical_package,omitempty"`

	CreatedAt time.Time   `json:"created_at"`
	CreatedBy string      `json:"created_by"`
	Status    QuoteStatus `json:"status"`
	Notes     string      `json:"notes,omitempty"`
}

// ComputeTotalCost sums the four cost parts of a quote, treating absent
// optional parts as zero. Validation of the inputs happens upstream.
func ComputeTotalCost(facilityFee, equipmentCosts float64, anesthesiaFee, otherCosts *float64) float64 {
	total := facilityFee + equipmentCosts
	if anesthesiaFee != nil {
		total += *anesthesiaFee
	}
	if otherCosts != nil {
		total += *otherCosts
	}
	return total
}
