package doctor

// Doctor is externally managed reference data; this service only reads it.
type Doctor struct {
	ID              int64   `json:"doctor_id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Specialization  string  `json:"specialization"`
	ExperienceYears *int    `json:"experience_years"`
	ContactNumber   *string `json:"contact_number"`
	Email           *string `json:"email"`
	Status          string  `json:"status"`
}
