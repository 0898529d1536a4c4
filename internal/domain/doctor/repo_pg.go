package doctor

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caredesk/caredesk/internal/platform/db"
	"github.com/caredesk/caredesk/internal/platform/web"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) db.Queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const doctorCols = `doctor_id, first_name, last_name, specialization,
	experience_years, contact_number, email, status`

func (r *repoPG) List(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+doctorCols+` FROM doctors ORDER BY last_name, first_name`)
	if err != nil {
		return nil, web.MapStorageError(err)
	}
	defer rows.Close()
	items := []*Doctor{}
	for rows.Next() {
		var d Doctor
		if err := rows.Scan(&d.ID, &d.FirstName, &d.LastName, &d.Specialization,
			&d.ExperienceYears, &d.ContactNumber, &d.Email, &d.Status); err != nil {
			return nil, web.MapStorageError(err)
		}
		items = append(items, &d)
	}
	return items, rows.Err()
}
