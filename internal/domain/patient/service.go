package patient

import (
	"context"
	"time"

	"github.com/caredesk/caredesk/internal/platform/web"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var validGenders = map[string]bool{"M": true, "F": true, "Other": true}

var validBloodTypes = map[string]bool{
	"A+": true, "A-": true, "B+": true, "B-": true,
	"AB+": true, "AB-": true, "O+": true, "O-": true,
}

const dateLayout = "2006-01-02"

func validatePatient(p *Patient) error {
	if p.FirstName == "" {
		return web.Validationf("first_name is required")
	}
	if p.LastName == "" {
		return web.Validationf("last_name is required")
	}
	if p.DateOfBirth == "" {
		return web.Validationf("date_of_birth is required")
	}
	dob, err := time.Parse(dateLayout, p.DateOfBirth)
	if err != nil {
		return web.Validationf("date_of_birth must be in YYYY-MM-DD format")
	}
	if dob.After(time.Now()) {
		return web.Validationf("date_of_birth cannot be in the future")
	}
	if !validGenders[p.Gender] {
		return web.Validationf("gender must be one of M, F, Other")
	}
	if p.BloodType != nil && !validBloodTypes[*p.BloodType] {
		return web.Validationf("invalid blood_type: %s", *p.BloodType)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if err := validatePatient(p); err != nil {
		return err
	}
	p.RegistrationDate = time.Now().Format(dateLayout)
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}

// Update replaces all mutable fields. RegistrationDate stays as assigned
// at creation.
func (s *Service) Update(ctx context.Context, p *Patient) error {
	if err := validatePatient(p); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteGuarded(ctx, id)
}
