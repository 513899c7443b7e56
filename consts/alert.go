package consts

const (
	// BirthdateLayout is the MM/dd/yyyy form used by medical records
	BirthdateLayout = "01/02/2006"

	// UnknownAge marks a person whose age could not be determined
	UnknownAge = -1

	// ChildMaxAge is the oldest age still counted as a child
	ChildMaxAge = 18

	// UnknownStation is reported by the fire alert for addresses with no mapping
	UnknownStation = -1
)

// keys of the persisted document
const (
	DocumentPersons        = "persons"
	DocumentFirestations   = "firestations"
	DocumentMedicalRecords = "medicalrecords"
)
