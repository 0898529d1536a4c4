package medicalrecord

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

const dateLayout = "2006-01-02"

func (s *Service) Add(ctx context.Context, r *Record) error {
	if r.PatientID <= 0 {
		return web.Validationf("patient_id is required")
	}
	if r.DoctorID <= 0 {
		return web.Validationf("doctor_id is required")
	}
	if r.VisitDate == "" {
		return web.Validationf("visit_date is required")
	}
	d, err := time.Parse(dateLayout, r.VisitDate)
	if err != nil {
		return web.Validationf("visit_date must be in YYYY-MM-DD format")
	}
	if d.After(time.Now()) {
		return web.Validationf("visit_date cannot be in the future")
	}
	if r.Diagnosis == "" {
		return web.Validationf("diagnosis is required")
	}
	if r.Treatment == "" {
		return web.Validationf("treatment is required")
	}
	return s.repo.Create(ctx, r)
}

func (s *Service) List(ctx context.Context) ([]*WithNames, error) {
	return s.repo.List(ctx)
}
