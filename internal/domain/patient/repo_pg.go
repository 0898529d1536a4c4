package patient

import (
	"context"

	"github.com/jackc/pgx/v5"
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

const patientCols = `patient_id, first_name, last_name,
	to_char(date_of_birth, 'YYYY-MM-DD'), gender, contact_number, email,
	address, blood_type, to_char(registration_date, 'YYYY-MM-DD')`

func (r *repoPG) scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Gender,
		&p.ContactNumber, &p.Email, &p.Address, &p.BloodType, &p.RegistrationDate)
	if err != nil {
		return nil, web.MapStorageError(err)
	}
	return &p, nil
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO patients (first_name, last_name, date_of_birth, gender,
			contact_number, email, address, blood_type, registration_date)
		VALUES ($1,$2,$3::date,$4,$5,$6,$7,$8,$9::date)
		RETURNING patient_id`,
		p.FirstName, p.LastName, p.DateOfBirth, p.Gender,
		p.ContactNumber, p.Email, p.Address, p.BloodType, p.RegistrationDate).Scan(&p.ID)
	return web.MapStorageError(err)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Patient, error) {
	return r.scanPatient(r.conn(ctx).QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE patient_id = $1`, id))
}

func (r *repoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+patientCols+` FROM patients ORDER BY last_name, first_name`)
	if err != nil {
		return nil, web.MapStorageError(err)
	}
	defer rows.Close()
	items := []*Patient{}
	for rows.Next() {
		p, err := r.scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE patients SET first_name=$2, last_name=$3, date_of_birth=$4::date,
			gender=$5, contact_number=$6, email=$7, address=$8, blood_type=$9
		WHERE patient_id = $1`,
		p.ID, p.FirstName, p.LastName, p.DateOfBirth, p.Gender,
		p.ContactNumber, p.Email, p.Address, p.BloodType)
	if err != nil {
		return web.MapStorageError(err)
	}
	if tag.RowsAffected() == 0 {
		return web.ErrNotFound
	}
	return nil
}

const dependentCountsSQL = `
	SELECT
		(SELECT COUNT(*) FROM appointments WHERE patient_id = $1),
		(SELECT COUNT(*) FROM medical_records WHERE patient_id = $1)`

func dependentConflict(apptCount, recCount int) *web.ConflictError {
	return &web.ConflictError{
		Msg:              "cannot delete patient with existing appointments or medical records",
		AppointmentCount: apptCount,
		RecordCount:      recCount,
	}
}

func (r *repoPG) DeleteGuarded(ctx context.Context, id int64) error {
	err := db.RunInTx(ctx, r.pool, func(ctx context.Context) error {
		var apptCount, recCount int
		err := r.conn(ctx).QueryRow(ctx, dependentCountsSQL, id).Scan(&apptCount, &recCount)
		if err != nil {
			return web.MapStorageError(err)
		}
		if apptCount > 0 || recCount > 0 {
			return dependentConflict(apptCount, recCount)
		}
		// Raw error kept here: a RESTRICT violation on the delete means a
		// dependent row committed after the count, and it is resolved below
		// once the transaction has rolled back.
		tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM patients WHERE patient_id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return web.ErrNotFound
		}
		return nil
	})
	if web.IsFKViolation(err) {
		var apptCount, recCount int
		if scanErr := r.pool.QueryRow(ctx, dependentCountsSQL, id).Scan(&apptCount, &recCount); scanErr == nil {
			return dependentConflict(apptCount, recCount)
		}
		return err
	}
	return err
}
