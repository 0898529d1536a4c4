package medicalrecord

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

func (r *repoPG) Create(ctx context.Context, rec *Record) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO medical_records (patient_id, doctor_id, visit_date,
			diagnosis, treatment, notes)
		VALUES ($1,$2,$3::date,$4,$5,$6)
		RETURNING record_id`,
		rec.PatientID, rec.DoctorID, rec.VisitDate,
		rec.Diagnosis, rec.Treatment, rec.Notes).Scan(&rec.ID)
	return web.MapStorageError(err)
}

func (r *repoPG) List(ctx context.Context) ([]*WithNames, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT m.record_id, m.patient_id, m.doctor_id,
			to_char(m.visit_date, 'YYYY-MM-DD'),
			m.diagnosis, m.treatment, m.notes,
			p.first_name, p.last_name, d.first_name, d.last_name
		FROM medical_records m
		JOIN patients p ON p.patient_id = m.patient_id
		JOIN doctors d ON d.doctor_id = m.doctor_id
		ORDER BY m.visit_date DESC`)
	if err != nil {
		return nil, web.MapStorageError(err)
	}
	defer rows.Close()
	items := []*WithNames{}
	for rows.Next() {
		var rec WithNames
		if err := rows.Scan(&rec.ID, &rec.PatientID, &rec.DoctorID,
			&rec.VisitDate, &rec.Diagnosis, &rec.Treatment, &rec.Notes,
			&rec.PatientFirstName, &rec.PatientLastName,
			&rec.DoctorFirstName, &rec.DoctorLastName); err != nil {
			return nil, web.MapStorageError(err)
		}
		items = append(items, &rec)
	}
	return items, rows.Err()
}
