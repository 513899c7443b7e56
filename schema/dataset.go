package schema

// Dataset is the whole persisted document
type Dataset struct {
	Persons        []Person             `json:"persons"`
	Firestations   []FirestationMapping `json:"firestations"`
	MedicalRecords []MedicalRecord      `json:"medicalrecords"`
}

// Normalize replaces nil collections with empty ones so the document never
// carries a null collection.
func (d *Dataset) Normalize() {
	if d.Persons == nil {
		d.Persons = []Person{}
	}
	if d.Firestations == nil {
		d.Firestations = []FirestationMapping{}
	}
	if d.MedicalRecords == nil {
		d.MedicalRecords = []MedicalRecord{}
	}
}
