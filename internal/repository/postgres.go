package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
)

type postgresUsers struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository instantiates the pgx-backed user repository.
func NewPostgresUserRepository(pool *pgxpool.Pool) UserRepository {
	return &postgresUsers{pool: pool}
}

func (r *postgresUsers) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `
        SELECT id, username, name, password_hash, roles, created_at, updated_at
        FROM users WHERE id=$1`
	return r.scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresUsers) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
        SELECT id, username, name, password_hash, roles, created_at, updated_at
        FROM users WHERE username=$1`
	return r.scanUser(r.pool.QueryRow(ctx, query, username))
}

func (r *postgresUsers) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var roles []string
	err := row.Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash, &roles, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	user.Roles = make([]domain.Role, 0, len(roles))
	for _, label := range roles {
		user.Roles = append(user.Roles, domain.Role(label))
	}
	return &user, nil
}

type postgresAppointments struct {
	pool *pgxpool.Pool
}

// NewPostgresAppointmentRepository instantiates the pgx-backed appointment repository.
func NewPostgresAppointmentRepository(pool *pgxpool.Pool) AppointmentRepository {
	return &postgresAppointments{pool: pool}
}

const appointmentColumns = `id, student_id, counselor_id, student_name, counselor_name, date, time, status, type, created_at, updated_at`

func (r *postgresAppointments) Create(ctx context.Context, appointment *domain.Appointment) error {
	if appointment.ID == "" {
		appointment.ID = uuid.NewString()
	}
	const query = `
        INSERT INTO appointments (id, student_id, counselor_id, student_name, counselor_name, date, time, status, type)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		appointment.ID,
		appointment.StudentID,
		appointment.CounselorID,
		appointment.StudentName,
		appointment.CounselorName,
		appointment.Date,
		appointment.Time,
		appointment.Status,
		appointment.Type,
	).Scan(&appointment.CreatedAt, &appointment.UpdatedAt)
}

func (r *postgresAppointments) Update(ctx context.Context, appointment *domain.Appointment) error {
	const query = `
        UPDATE appointments SET student_name=$1, counselor_name=$2, date=$3, time=$4, status=$5, type=$6, updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		appointment.StudentName,
		appointment.CounselorName,
		appointment.Date,
		appointment.Time,
		appointment.Status,
		appointment.Type,
		appointment.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresAppointments) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id=$1`
	return scanAppointment(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresAppointments) ListBySubject(ctx context.Context, subjectID string, role domain.Role) ([]domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments`
	args := []any{}
	switch role {
	case domain.RoleStudent:
		query += ` WHERE student_id=$1`
		args = append(args, subjectID)
	case domain.RoleCounselor:
		query += ` WHERE counselor_id=$1`
		args = append(args, subjectID)
	case domain.RoleAdmin:
		// admins see everything
	default:
		return []domain.Appointment{}, nil
	}
	query += ` ORDER BY date, time, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func (r *postgresAppointments) ListAll(ctx context.Context) ([]domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY date, time, id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func scanAppointment(row pgx.Row) (*domain.Appointment, error) {
	var a domain.Appointment
	err := row.Scan(&a.ID, &a.StudentID, &a.CounselorID, &a.StudentName, &a.CounselorName,
		&a.Date, &a.Time, &a.Status, &a.Type, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func collectAppointments(rows pgx.Rows) ([]domain.Appointment, error) {
	appointments := make([]domain.Appointment, 0)
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(&a.ID, &a.StudentID, &a.CounselorID, &a.StudentName, &a.CounselorName,
			&a.Date, &a.Time, &a.Status, &a.Type, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

type postgresCounselors struct {
	pool *pgxpool.Pool
}

// NewPostgresCounselorRepository instantiates the pgx-backed counselor repository.
func NewPostgresCounselorRepository(pool *pgxpool.Pool) CounselorRepository {
	return &postgresCounselors{pool: pool}
}

func (r *postgresCounselors) List(ctx context.Context) ([]domain.Counselor, error) {
	const query = `SELECT id, name, specialization, available FROM counselors ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counselors := make([]domain.Counselor, 0)
	for rows.Next() {
		var c domain.Counselor
		if err := rows.Scan(&c.ID, &c.Name, &c.Specialization, &c.Available); err != nil {
			return nil, err
		}
		counselors = append(counselors, c)
	}
	return counselors, rows.Err()
}

func (r *postgresCounselors) GetByID(ctx context.Context, id string) (*domain.Counselor, error) {
	const query = `SELECT id, name, specialization, available FROM counselors WHERE id=$1`
	var c domain.Counselor
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Specialization, &c.Available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
