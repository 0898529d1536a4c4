package medicalrecord

// Record is an append-only visit entry. Once written it is never
// updated or deleted through this API.
type Record struct {
	ID        int64   `json:"record_id"`
	PatientID int64   `json:"patient_id"`
	DoctorID  int64   `json:"doctor_id"`
	VisitDate string  `json:"visit_date"`
	Diagnosis string  `json:"diagnosis"`
	Treatment string  `json:"treatment"`
	Notes     *string `json:"notes"`
}

// WithNames is the list shape: a record joined with the display names
// of its patient and doctor.
type WithNames struct {
	Record
	PatientFirstName string `json:"patient_first_name"`
	PatientLastName  string `json:"patient_last_name"`
	DoctorFirstName  string `json:"doctor_first_name"`
	DoctorLastName   string `json:"doctor_last_name"`
}
