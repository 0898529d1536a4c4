package patient

import "context"

// Repository persists patients.
//
// DeleteGuarded removes a patient only when no appointments or medical
// records reference it; the dependency check and the delete run in one
// transaction. It returns a *web.ConflictError carrying both dependent
// counts when the delete is blocked, and web.ErrNotFound when the
// patient does not exist.
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id int64) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
	Update(ctx context.Context, p *Patient) error
	DeleteGuarded(ctx context.Context, id int64) error
}
