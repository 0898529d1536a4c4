package patient

// Patient is a person registered with the facility. Dates travel as
// YYYY-MM-DD strings on the wire and in the model; the repository casts
// them to DATE columns. RegistrationDate is assigned at creation and
// never updated.
type Patient struct {
	ID               int64   `json:"patient_id"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	DateOfBirth      string  `json:"date_of_birth"`
	Gender           string  `json:"gender"`
	ContactNumber    *string `json:"contact_number"`
	Email            *string `json:"email"`
	Address          *string `json:"address"`
	BloodType        *string `json:"blood_type"`
	RegistrationDate string  `json:"registration_date"`
}
