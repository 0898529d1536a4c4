package appointment

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

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO appointments (patient_id, doctor_id, appointment_date,
			appointment_time, reason, status)
		VALUES ($1,$2,$3::date,$4::time,$5,$6)
		RETURNING appointment_id`,
		a.PatientID, a.DoctorID, a.AppointmentDate, a.AppointmentTime,
		a.Reason, a.Status).Scan(&a.ID)
	return web.MapStorageError(err)
}

func (r *repoPG) List(ctx context.Context) ([]*WithNames, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT a.appointment_id, a.patient_id, a.doctor_id,
			to_char(a.appointment_date, 'YYYY-MM-DD'),
			to_char(a.appointment_time, 'HH24:MI:SS'),
			a.reason, a.status,
			p.first_name, p.last_name, d.first_name, d.last_name
		FROM appointments a
		JOIN patients p ON p.patient_id = a.patient_id
		JOIN doctors d ON d.doctor_id = a.doctor_id
		ORDER BY a.appointment_date DESC, a.appointment_time DESC`)
	if err != nil {
		return nil, web.MapStorageError(err)
	}
	defer rows.Close()
	items := []*WithNames{}
	for rows.Next() {
		var a WithNames
		if err := rows.Scan(&a.ID, &a.PatientID, &a.DoctorID,
			&a.AppointmentDate, &a.AppointmentTime, &a.Reason, &a.Status,
			&a.PatientFirstName, &a.PatientLastName,
			&a.DoctorFirstName, &a.DoctorLastName); err != nil {
			return nil, web.MapStorageError(err)
		}
		items = append(items, &a)
	}
	return items, rows.Err()
}

func (r *repoPG) ExistsAt(ctx context.Context, doctorID int64, date, timeOfDay string) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE doctor_id = $1 AND appointment_date = $2::date AND appointment_time = $3::time
		)`, doctorID, date, timeOfDay).Scan(&exists)
	if err != nil {
		return false, web.MapStorageError(err)
	}
	return exists, nil
}
