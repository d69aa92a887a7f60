package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/grebnev/fitmate/internal/error_values"
	"github.com/grebnev/fitmate/pkg/cleanup"
	"github.com/grebnev/fitmate/pkg/entity"
)

type StepsRepository struct {
	conn PgConnection
}

func NewStepsRepo(cfg DBConfig) *StepsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for stepsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for stepsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &StepsRepository{
		conn: pool,
	}
}

func NewStepsRepoWithConn(conn PgConnection) *StepsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for stepsRepo: " + err.Error())
	}
	return &StepsRepository{
		conn: conn,
	}
}

// Upsert relies on the unique (user_id, date) constraint: a second save for
// the same day replaces the count instead of adding a row.
func (sr *StepsRepository) Upsert(ctx context.Context, entry *entity.StepsEntry) (*entity.StepsEntry, error) {
	if entry == nil {
		return nil, errors.New("entry is nil")
	}
	var saved entity.StepsEntry
	row := sr.conn.QueryRow(ctx,
		`INSERT INTO steps_entries (user_id, date, steps) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, date) DO UPDATE SET steps = EXCLUDED.steps, updated_at = NOW()
		RETURNING id, user_id, date, steps, created_at, updated_at;`,
		entry.UserID,
		entry.Date,
		entry.Steps,
	)
	if err := row.Scan(&saved.ID, &saved.UserID, &saved.Date, &saved.Steps, &saved.CreatedAt, &saved.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, errorvalues.ErrUserNotFound
			}
		}
		return nil, errors.New("upserting steps entry error: " + err.Error())
	}
	return &saved, nil
}

func (sr *StepsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit int) ([]entity.StepsEntry, error) {
	query := `SELECT id, user_id, date, steps, created_at, updated_at FROM steps_entries WHERE user_id = $1 ORDER BY date DESC;`
	args := []any{uid}
	if limit > 0 {
		query = `SELECT id, user_id, date, steps, created_at, updated_at FROM steps_entries WHERE user_id = $1 ORDER BY date DESC LIMIT $2;`
		args = append(args, limit)
	}
	rows, err := sr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("getting steps entries error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]entity.StepsEntry, 0)
	for rows.Next() {
		e := entity.StepsEntry{}
		err = rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Steps, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, errors.New("steps row parsing error: " + err.Error())
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected steps rows error: " + rows.Err().Error())
	}
	return entries, nil
}

func (sr *StepsRepository) GetByUserAndDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.StepsEntry, error) {
	var e entity.StepsEntry
	row := sr.conn.QueryRow(ctx,
		`SELECT id, user_id, date, steps, created_at, updated_at FROM steps_entries WHERE user_id = $1 AND date = $2;`,
		uid,
		date,
	)
	if err := row.Scan(&e.ID, &e.UserID, &e.Date, &e.Steps, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStepsEntryNotFound
		}
		return nil, errors.New("getting steps entry by date error: " + err.Error())
	}
	return &e, nil
}
