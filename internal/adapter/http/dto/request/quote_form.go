package request

import (
	"strconv"
	"strings"
)

// QuoteForm is the raw, form-encoded shape of a new quote as users type it:
// every numeric arrives as text and the package lists arrive as
// comma-separated strings.
//
// BuildPayload applies the best-effort coercion policy: a malformed number
// never rejects the form, it just falls back to the field's default so the
// submission can still be validated server-side with field-level detail.
type QuoteForm struct {
	PatientID    string `form:"patient_id"`
	PatientAge   string `form:"patient_age"`
	PatientPhone string `form:"patient_phone"`
	PatientEmail string `form:"patient_email"`

	ProcedureName        string `form:"procedure_name"`
	ProcedureCode        string `form:"procedure_code"`
	ProcedureDescription string `form:"procedure_description"`

	SurgeonName      string `form:"surgeon_name"`
	SurgeonSpecialty string `form:"surgeon_specialty"`

	SurgeryDurationHours string `form:"surgery_duration_hours"`
	AnesthesiaType       string `form:"anesthesia_type"`

	FacilityFee    string `form:"facility_fee"`
	EquipmentCosts string `form:"equipment_costs"`
	AnesthesiaFee  string `form:"anesthesia_fee"`
	OtherCosts     string `form:"other_costs"`

	MedicationsIncluded string `form:"medications_included"`
	PostoperativeCare   string `form:"postoperative_care"`
	HospitalStayNights  string `form:"hospital_stay_nights"`
	SpecialEquipment    string `form:"special_equipment"`
	DietaryPlan         bool   `form:"dietary_plan"`
	AdditionalServices  string `form:"additional_services"`

	CreatedBy string `form:"created_by"`
	Notes     string `form:"notes"`
}

// BuildPayload normalizes the raw form into the canonical create payload.
// Pure: no I/O, no validation beyond coercion.
//
//   - cost fields and hospital_stay_nights default to 0 on empty/bad input
//   - patient_age defaults to absent, because age 0 is a real age
//   - surgery_duration_hours truncates fractional input (whole hours only)
//   - list fields split on commas, trimming pieces and dropping empty ones
func (f QuoteForm) BuildPayload() QuoteCreateRequest {
	anesthesiaFee := parseAmount(f.AnesthesiaFee)
	otherCosts := parseAmount(f.OtherCosts)

	createdBy := strings.TrimSpace(f.CreatedBy)
	if createdBy == "" {
		createdBy = DefaultCreatedBy
	}

	return QuoteCreateRequest{
		PatientID:            strings.TrimSpace(f.PatientID),
		PatientAge:           parseOptionalInt(f.PatientAge),
		PatientPhone:         strings.TrimSpace(f.PatientPhone),
		PatientEmail:         strings.TrimSpace(f.PatientEmail),
		ProcedureName:        strings.TrimSpace(f.ProcedureName),
		ProcedureCode:        strings.TrimSpace(f.ProcedureCode),
		ProcedureDescription: strings.TrimSpace(f.ProcedureDescription),
		SurgeonName:          strings.TrimSpace(f.SurgeonName),
		SurgeonSpecialty:     strings.TrimSpace(f.SurgeonSpecialty),
		SurgeryDurationHours: parseWholeHours(f.SurgeryDurationHours),
		AnesthesiaType:       strings.TrimSpace(f.AnesthesiaType),
		FacilityFee:          parseAmount(f.FacilityFee),
		EquipmentCosts:       parseAmount(f.EquipmentCosts),
		AnesthesiaFee:        &anesthesiaFee,
		OtherCosts:           &otherCosts,
		SurgicalPackage: &SurgicalPackageRequest{
			MedicationsIncluded: splitList(f.MedicationsIncluded),
			PostoperativeCare:   splitList(f.PostoperativeCare),
			HospitalStayNights:  parseIntOrZero(f.HospitalStayNights),
			SpecialEquipment:    splitList(f.SpecialEquipment),
			DietaryPlan:         f.DietaryPlan,
			AdditionalServices:  splitList(f.AdditionalServices),
		},
		CreatedBy: createdBy,
		Notes:     f.Notes,
	}
}

func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseIntOrZero(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

func parseOptionalInt(s string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &v
}

// parseWholeHours truncates toward zero rather than rounding: the domain
// counts whole surgery hours only.
func parseWholeHours(s string) int {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	pieces := strings.Split(s, ",")
	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
