package medicalrecord

import "context"

type Repository interface {
	Create(ctx context.Context, r *Record) error
	List(ctx context.Context) ([]*WithNames, error)
}
