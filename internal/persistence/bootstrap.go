package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var bootstrapStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
        id TEXT PRIMARY KEY,
        username TEXT NOT NULL UNIQUE,
        name TEXT NOT NULL,
        password_hash TEXT NOT NULL,
        roles TEXT[] NOT NULL DEFAULT '{}',
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`CREATE TABLE IF NOT EXISTS counselors (
        id TEXT PRIMARY KEY,
        name TEXT NOT NULL,
        specialization TEXT NOT NULL DEFAULT '',
        available BOOLEAN NOT NULL DEFAULT TRUE
    )`,
	`CREATE TABLE IF NOT EXISTS appointments (
        id TEXT PRIMARY KEY,
        student_id TEXT NOT NULL,
        counselor_id TEXT NOT NULL,
        student_name TEXT NOT NULL,
        counselor_name TEXT NOT NULL,
        date TEXT NOT NULL,
        time TEXT NOT NULL,
        status TEXT NOT NULL,
        type TEXT NOT NULL DEFAULT '',
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_student ON appointments (student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_counselor ON appointments (counselor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_status ON appointments (status)`,
}

var seedStatements = []struct {
	query string
	args  func(passwordHash string) []any
}{
	{
		query: `INSERT INTO users (id, username, name, password_hash, roles) VALUES
            ('1','student1','John Doe',$1,'{student}'),
            ('2','counselor1','Dr. Smith',$1,'{counselor}'),
            ('3','admin1','Admin User',$1,'{admin}')
            ON CONFLICT (id) DO NOTHING`,
		args: func(passwordHash string) []any { return []any{passwordHash} },
	},
	{
		query: `INSERT INTO counselors (id, name, specialization, available) VALUES
            ('2','Dr. Smith','Academic & Career',TRUE),
            ('3','Dr. Johnson','Personal Development',TRUE)
            ON CONFLICT (id) DO NOTHING`,
		args: func(string) []any { return nil },
	},
	{
		query: `INSERT INTO appointments (id, student_id, counselor_id, student_name, counselor_name, date, time, status, type) VALUES
            ('1','1','2','John Doe','Dr. Smith','2025-09-25','10:00','confirmed','Academic Counseling'),
            ('2','4','3','Jane Smith','Dr. Johnson','2025-09-26','14:00','pending','Career Guidance')
            ON CONFLICT (id) DO NOTHING`,
		args: func(string) []any { return nil },
	},
}

// Bootstrap creates the schema when it does not exist yet.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping bootstrap")
		return nil
	}

	for _, stmt := range bootstrapStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	logger.Info("database schema ready")
	return nil
}

// SeedDemoData inserts the demo roster, skipping rows that already exist.
// passwordHash covers all demo accounts.
func SeedDemoData(ctx context.Context, pool *pgxpool.Pool, passwordHash string, logger *zap.Logger) error {
	if pool == nil {
		return nil
	}
	for _, seed := range seedStatements {
		if _, err := pool.Exec(ctx, seed.query, seed.args(passwordHash)...); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	}
	logger.Info("demo data seeded")
	return nil
}
