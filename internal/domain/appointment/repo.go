package appointment

import "context"

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	List(ctx context.Context) ([]*WithNames, error)
	// ExistsAt reports whether the doctor already has an appointment at
	// exactly the given date and time.
	ExistsAt(ctx context.Context, doctorID int64, date, timeOfDay string) (bool, error)
}
