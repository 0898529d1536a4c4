package appointment

// Appointment links a patient to a doctor at a date and time. Status is
// assigned at scheduling time; no mutation operations exist.
type Appointment struct {
	ID              int64   `json:"appointment_id"`
	PatientID       int64   `json:"patient_id"`
	DoctorID        int64   `json:"doctor_id"`
	AppointmentDate string  `json:"appointment_date"`
	AppointmentTime string  `json:"appointment_time"`
	Reason          *string `json:"reason"`
	Status          string  `json:"status"`
}

// WithNames is the list shape: an appointment joined with the display
// names of its patient and doctor.
type WithNames struct {
	Appointment
	PatientFirstName string `json:"patient_first_name"`
	PatientLastName  string `json:"patient_last_name"`
	DoctorFirstName  string `json:"doctor_first_name"`
	DoctorLastName   string `json:"doctor_last_name"`
}
