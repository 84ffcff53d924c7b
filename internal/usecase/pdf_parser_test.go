package usecase

import (
	"reflect"
	"testing"
)

const samplePDFText = `
Cotización Quirúrgica
Paciente: PAC-123  Edad: 45 años
Teléfono: (555) 123-4567  Email: juan.perez@example.com
Procedimiento: Reemplazo total de rodilla derecha
Dr. García Hernández
Duración: 3 horas
Anestesia general
Instalaciones: $45,000.00
Equipos: $12,500.00
Anestesia: $8,000
2 noches hospitalización
Incluye antibiótico y analgésico, prótesis de titanio
`

func TestParseQuoteText_FullDocument(t *testing.T) {
	p := ParseQuoteText(samplePDFText)

	if p.PatientID != "PAC-123" {
		t.Fatalf("unexpected patient id: %q", p.PatientID)
	}
	if p.PatientAge == nil || *p.PatientAge != 45 {
		t.Fatalf("unexpected patient age: %v", p.PatientAge)
	}
	if p.PatientEmail != "juan.perez@example.com" {
		t.Fatalf("unexpected email: %q", p.PatientEmail)
	}
	if p.PatientPhone == "" {
		t.Fatalf("expected a phone number")
	}
	if p.ProcedureName == "" {
		t.Fatalf("expected a procedure name")
	}
	if p.SurgeryDurationHours != 3 {
		t.Fatalf("expected 3 hours, got %d", p.SurgeryDurationHours)
	}
	if p.AnesthesiaType == "" {
		t.Fatalf("expected an anesthesia type")
	}
	if p.FacilityFee != 45000 {
		t.Fatalf("expected facility fee 45000, got %v", p.FacilityFee)
	}
	if p.EquipmentCosts != 12500 {
		t.Fatalf("expected equipment costs 12500, got %v", p.EquipmentCosts)
	}
	if p.AnesthesiaFee != 8000 {
		t.Fatalf("expected anesthesia fee 8000, got %v", p.AnesthesiaFee)
	}
	if p.TotalCost != 65500 {
		t.Fatalf("expected total 65500, got %v", p.TotalCost)
	}
	if p.HospitalNights != 2 || p.IsAmbulatory {
		t.Fatalf("expected 2 hospital nights, got nights=%d ambulatory=%v", p.HospitalNights, p.IsAmbulatory)
	}
	if !reflect.DeepEqual(p.MedicationsIncluded, []string{"Antibiótico", "Analgésico"}) {
		t.Fatalf("unexpected medications: %v", p.MedicationsIncluded)
	}
	if !reflect.DeepEqual(p.AdditionalEquipment, []string{"Prótesis"}) {
		t.Fatalf("unexpected equipment: %v", p.AdditionalEquipment)
	}
}

func TestParseQuoteText_Defaults(t *testing.T) {
	p := ParseQuoteText("texto sin nada reconocible")

	if p.ProcedureName != "" {
		t.Fatalf("expected no procedure, got %q", p.ProcedureName)
	}
	if p.SurgeryDurationHours != 0 {
		t.Fatalf("expected 0 hours, got %d", p.SurgeryDurationHours)
	}
	if p.PatientAge != nil {
		t.Fatalf("expected absent age, got %v", *p.PatientAge)
	}
	if !p.IsAmbulatory || p.HospitalNights != 0 {
		t.Fatalf("expected ambulatory default, got %+v", p)
	}
	if p.TotalCost != 0 {
		t.Fatalf("expected zero total, got %v", p.TotalCost)
	}
}

func TestParseQuoteText_AmbulatoryKeyword(t *testing.T) {
	p := ParseQuoteText("Procedimiento: cirugía ambulatoria de cataratas con láser, duración: 1 hora")

	if !p.IsAmbulatory || p.HospitalNights != 0 {
		t.Fatalf("expected ambulatory, got %+v", p)
	}
	if p.SurgeryDurationHours != 1 {
		t.Fatalf("expected 1 hour, got %d", p.SurgeryDurationHours)
	}
}

func TestParseQuoteText_DurationOutsideRangeIgnored(t *testing.T) {
	p := ParseQuoteText("Duración: 48 horas")
	if p.SurgeryDurationHours != 0 {
		t.Fatalf("expected out-of-range duration to be ignored, got %d", p.SurgeryDurationHours)
	}
}
