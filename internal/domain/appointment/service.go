package appointment

import (
	"context"
	"time"

	"github.com/caredesk/caredesk/internal/platform/web"
)

const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

type Service struct {
	repo Repository
	// conflictCheck rejects a second appointment for the same doctor at
	// the exact same date and time. Off by default: the front desk books
	// deliberate double slots, so exact duplicates are allowed unless the
	// deployment opts in via APPOINTMENT_CONFLICT_CHECK.
	conflictCheck bool
}

func NewService(repo Repository, conflictCheck bool) *Service {
	return &Service{repo: repo, conflictCheck: conflictCheck}
}

const dateLayout = "2006-01-02"

func parseTimeOfDay(v string) error {
	if _, err := time.Parse("15:04:05", v); err == nil {
		return nil
	}
	if _, err := time.Parse("15:04", v); err == nil {
		return nil
	}
	return web.Validationf("appointment_time must be in HH:MM or HH:MM:SS format")
}

// Schedule validates and persists a new appointment. Status is always
// set server-side; a client-supplied value is ignored.
func (s *Service) Schedule(ctx context.Context, a *Appointment) error {
	if a.PatientID <= 0 {
		return web.Validationf("patient_id is required")
	}
	if a.DoctorID <= 0 {
		return web.Validationf("doctor_id is required")
	}
	if a.AppointmentDate == "" {
		return web.Validationf("appointment_date is required")
	}
	d, err := time.Parse(dateLayout, a.AppointmentDate)
	if err != nil {
		return web.Validationf("appointment_date must be in YYYY-MM-DD format")
	}
	today, _ := time.Parse(dateLayout, time.Now().Format(dateLayout))
	if d.Before(today) {
		return web.Validationf("appointment_date cannot be in the past")
	}
	if a.AppointmentTime == "" {
		return web.Validationf("appointment_time is required")
	}
	if err := parseTimeOfDay(a.AppointmentTime); err != nil {
		return err
	}

	if s.conflictCheck {
		taken, err := s.repo.ExistsAt(ctx, a.DoctorID, a.AppointmentDate, a.AppointmentTime)
		if err != nil {
			return err
		}
		if taken {
			return web.Validationf("doctor already has an appointment at %s %s",
				a.AppointmentDate, a.AppointmentTime)
		}
	}

	a.Status = StatusScheduled
	return s.repo.Create(ctx, a)
}

func (s *Service) List(ctx context.Context) ([]*WithNames, error) {
	return s.repo.List(ctx)
}
