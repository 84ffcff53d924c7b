package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"cotizaciones_zafir/internal/domain/entities"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParsedQuote holds the fields recognized inside a quote PDF. Zero values
// mean "not found"; the import flow decides which ones are mandatory.
type ParsedQuote struct {
	PatientID    string `json:"patient_id,omitempty"`
	PatientAge   *int   `json:"patient_age,omitempty"`
	PatientPhone string `json:"patient_phone,omitempty"`
	PatientEmail string `json:"patient_email,omitempty"`

	ProcedureName string `json:"procedure_name"`
	SurgeonName   string `json:"surgeon_name,omitempty"`

	FacilityFee    float64 `json:"facility_fee"`
	EquipmentCosts float64 `json:"equipment_costs"`
	AnesthesiaFee  float64 `json:"anesthesia_fee"`
	OtherCosts     float64 `json:"other_costs"`
	TotalCost      float64 `json:"total_cost"`

	SurgeryDurationHours int    `json:"surgery_duration_hours"`
	AnesthesiaType       string `json:"anesthesia_type"`

	AdditionalEquipment []string `json:"additional_equipment"`
	IsAmbulatory        bool     `json:"is_ambulatory"`
	HospitalNights      int      `json:"hospital_nights"`

	MedicationsIncluded []string `json:"medications_included"`
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonDigitRe   = regexp.MustCompile(`[^\d]`)

	patientIDRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:paciente|patient|id|expediente|número)[\s:]*([A-Z0-9\-]+)`),
		regexp.MustCompile(`(?i)ID[\s:]*([A-Z0-9\-]+)`),
		regexp.MustCompile(`(?i)No\.?\s*([A-Z0-9\-]+)`),
	}
	ageRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:edad|age|años)[\s:]*(\d{1,3})`),
		regexp.MustCompile(`(?i)(\d{1,3})\s*(?:años|years old)`),
	}
	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:teléfono|telefono|phone|tel)[\s:]*([0-9\-\s\(\)]+)`),
		regexp.MustCompile(`(\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4})`),
	}
	emailRe = regexp.MustCompile(`([a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,})`)

	procedureRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:procedimiento|procedure|cirugía|surgery|operación)[\s:]*([^$\d\n]{10,80})`),
		regexp.MustCompile(`(?i)(?:reemplazo|replacement|bypass|apendicectomía|appendectomy)[\s\w]*`),
		regexp.MustCompile(`(?i)(?:artroscopia|laparoscopia|endoscopia)[\s\w]*`),
	}
	surgeonRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:dr\.?|doctor|dra\.?|doctora|cirujano|surgeon)\s*([A-Za-záéíóúñÁÉÍÓÚÑ\s]{5,40})`),
		regexp.MustCompile(`(?i)médico[\s:]*([A-Za-záéíóúñÁÉÍÓÚÑ\s]{5,40})`),
	}
	durationRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:duración|duration|tiempo)[\s:]*(\d+)\s*(?:horas?|hours?|hrs?)`),
		regexp.MustCompile(`(?i)(\d+)\s*(?:horas?|hours?|hrs?)\s*(?:de\s*)?(?:cirugía|surgery|operación)`),
		regexp.MustCompile(`(?i)(?:cirugía|surgery)\s*(?:de\s*)?(\d+)\s*(?:horas?|hours?|hrs?)`),
	}
	anesthesiaRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:anestesia|anesthesia)\s*(?:general|epidural|regional|local|sedación)`),
		regexp.MustCompile(`(?i)(?:bloqueo|block)\s*(?:epidural|regional)`),
		regexp.MustCompile(`(?i)(?:sedación|sedation)\s*(?:básica|basic)?`),
	}

	facilityFeeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:instalaciones|facilities|hospital)[\s:$]*(\$?[\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)(?:costo.*hospital)[\s:$]*(\$?[\d,]+\.?\d*)`),
	}
	equipmentCostsRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:equipos|equipment|instrumental)[\s:$]*(\$?[\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)(?:materiales|supplies)[\s:$]*(\$?[\d,]+\.?\d*)`),
	}
	anesthesiaFeeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:anestesia|anesthesia)[\s:$]*(\$?[\d,]+\.?\d*)`),
	}

	nightsRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\s*(?:noches?|nights?|días?|days?)\s*(?:hospitalización|hospital)`),
		regexp.MustCompile(`(?i)(?:hospitalización|hospital)[\s:]*(\d+)\s*(?:noches?|días?)`),
		regexp.MustCompile(`(?i)(?:ambulatori[ao]|outpatient)`),
	}

	medicationKeywords = []string{"antibiótico", "analgésico", "antiinflamatorio", "medicamento", "fármaco"}
	equipmentKeywords  = []string{"prótesis", "implante", "stent", "marcapasos", "dispositivo", "laparoscopia", "artroscopia"}

	titleCaser = cases.Title(language.Spanish)
)

// ParseQuoteText recognizes quote fields in the plain text of a PDF.
// Patterns cover the Spanish layouts the clinic receives plus the common
// English variants.
func ParseQuoteText(text string) ParsedQuote {
	p := ParsedQuote{IsAmbulatory: true}

	text = strings.NewReplacer("\n", " ", "\t", " ").Replace(text)
	text = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
	lower := strings.ToLower(text)

	for _, re := range patientIDRes {
		if m := re.FindStringSubmatch(text); m != nil {
			p.PatientID = strings.TrimSpace(m[1])
			break
		}
	}

	for _, re := range ageRes {
		if m := re.FindStringSubmatch(text); m != nil {
			if age, err := strconv.Atoi(m[1]); err == nil {
				p.PatientAge = &age
			}
			break
		}
	}

	for _, re := range phoneRes {
		if m := re.FindStringSubmatch(text); m != nil {
			digits := nonDigitRe.ReplaceAllString(m[1], "")
			if len(digits) >= 10 {
				p.PatientPhone = strings.TrimSpace(m[1])
			}
			break
		}
	}

	if m := emailRe.FindStringSubmatch(text); m != nil {
		p.PatientEmail = strings.TrimSpace(m[1])
	}

	for _, re := range procedureRes {
		if m := re.FindString(text); m != "" {
			procedure := strings.TrimSpace(m)
			if len(procedure) > 5 {
				if len(procedure) > 80 {
					procedure = procedure[:80]
				}
				p.ProcedureName = procedure
				break
			}
		}
	}

	for _, re := range surgeonRes {
		if m := re.FindStringSubmatch(text); m != nil {
			surgeon := strings.TrimSpace(m[1])
			if len(surgeon) > 3 {
				if len(surgeon) > 40 {
					surgeon = surgeon[:40]
				}
				p.SurgeonName = surgeon
				break
			}
		}
	}

	for _, re := range durationRes {
		if m := re.FindStringSubmatch(text); m != nil {
			if hours, err := strconv.Atoi(m[1]); err == nil && hours >= 1 && hours <= 24 {
				p.SurgeryDurationHours = hours
				break
			}
		}
	}

	for _, re := range anesthesiaRes {
		if m := re.FindString(text); m != "" {
			p.AnesthesiaType = strings.TrimSpace(m)
			break
		}
	}

	p.FacilityFee = findCost(text, facilityFeeRes)
	p.EquipmentCosts = findCost(text, equipmentCostsRes)
	p.AnesthesiaFee = findCost(text, anesthesiaFeeRes)

	for _, kw := range medicationKeywords {
		if strings.Contains(lower, kw) {
			p.MedicationsIncluded = append(p.MedicationsIncluded, titleCaser.String(kw))
		}
	}
	for _, kw := range equipmentKeywords {
		if strings.Contains(lower, kw) {
			p.AdditionalEquipment = append(p.AdditionalEquipment, titleCaser.String(kw))
		}
	}

	for _, re := range nightsRes {
		if m := re.FindStringSubmatch(text); m != nil {
			matched := strings.ToLower(m[0])
			if strings.Contains(matched, "ambulatori") || strings.Contains(matched, "outpatient") {
				p.IsAmbulatory = true
				p.HospitalNights = 0
			} else if nights, err := strconv.Atoi(m[1]); err == nil {
				p.HospitalNights = nights
				p.IsAmbulatory = nights == 0
			}
			break
		}
	}

	p.TotalCost = p.FacilityFee + p.EquipmentCosts + p.AnesthesiaFee + p.OtherCosts
	return p
}

func findCost(text string, res []*regexp.Regexp) float64 {
	for _, re := range res {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := strings.NewReplacer("$", "", ",", "").Replace(m[1])
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}
	return 0
}

// ToQuoteCreate converts the parsed fields into the normalized create
// command used by the quote use case.
func (p ParsedQuote) ToQuoteCreate() entities.QuoteCreate {
	anesthesiaFee := p.AnesthesiaFee
	otherCosts := p.OtherCosts
	return entities.QuoteCreate{
		PatientID:            p.PatientID,
		PatientAge:           p.PatientAge,
		PatientPhone:         p.PatientPhone,
		PatientEmail:         p.PatientEmail,
		ProcedureName:        p.ProcedureName,
		SurgeonName:          p.SurgeonName,
		SurgeryDurationHours: p.SurgeryDurationHours,
		AnesthesiaType:       p.AnesthesiaType,
		AdditionalEquipment:  p.AdditionalEquipment,
		IsAmbulatory:         p.IsAmbulatory,
		HospitalNights:       p.HospitalNights,
		FacilityFee:          p.FacilityFee,
		EquipmentCosts:       p.EquipmentCosts,
		AnesthesiaFee:        &anesthesiaFee,
		OtherCosts:           &otherCosts,
		SurgicalPackage: &entities.SurgicalPackage{
			MedicationsIncluded: p.MedicationsIncluded,
			HospitalStayNights:  p.HospitalNights,
		},
		CreatedBy: "Importación PDF",
		Notes:     "Cotización importada desde PDF",
	}
}
