package entities

// QuoteCreate is the normalized command for creating (or replacing the data
// of) a quote. Optional numerics are pointers: nil means "not provided",
// which is not the same as zero. TotalCost is intentionally absent here, it
// is always derived via ComputeTotalCost.
type QuoteCreate struct {
	PatientID    string
	PatientAge   *int
	PatientPhone string
	PatientEmail string

	ProcedureName        string
	ProcedureCode        string
	ProcedureDescription string

	SurgeonName      string
	SurgeonSpecialty string

	SurgeryDurationHours int
	AnesthesiaType       string
	AdditionalEquipment  []string
	AdditionalMaterials  []string
	IsAmbulatory         bool
	HospitalNights       int

	FacilityFee    float64
	EquipmentCosts float64
	AnesthesiaFee  *float64
	OtherCosts     *float64

	SurgicalPackage *SurgicalPackage

	CreatedBy string
	Notes     string
}
