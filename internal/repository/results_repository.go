package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/grebnev/fitmate/internal/error_values"
	"github.com/grebnev/fitmate/pkg/cleanup"
	"github.com/grebnev/fitmate/pkg/entity"
)

type ResultsRepository struct {
	conn PgConnection
}

func NewResultsRepo(cfg DBConfig) *ResultsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for resultsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for resultsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ResultsRepository{
		conn: pool,
	}
}

func NewResultsRepoWithConn(conn PgConnection) *ResultsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for resultsRepo: " + err.Error())
	}
	return &ResultsRepository{
		conn: conn,
	}
}

func (rr *ResultsRepository) Create(ctx context.Context, result *entity.ExerciseResult) error {
	if result == nil {
		return errors.New("result is nil")
	}
	_, err := rr.conn.Exec(ctx,
		`INSERT INTO exercise_results (user_id, exercise_id, exercise_name, date, workout_id, session_id, weight, reps, hits, misses)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		result.UserID,
		result.ExerciseID,
		result.ExerciseName,
		result.Date,
		result.WorkoutID,
		result.SessionID,
		result.Weight,
		result.Reps,
		result.Hits,
		result.Misses,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating exercise result error: " + err.Error())
	}
	return nil
}

func (rr *ResultsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.ExerciseResult, error) {
	rows, err := rr.conn.Query(ctx,
		`SELECT id, user_id, exercise_id, exercise_name, date, workout_id, session_id, weight, reps, hits, misses, created_at
		FROM exercise_results WHERE user_id = $1 ORDER BY date DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting results by uid error: " + err.Error())
	}
	return scanResults(rows)
}

func (rr *ResultsRepository) GetByUserAndExercise(ctx context.Context, uid uuid.UUID, exerciseID string) ([]entity.ExerciseResult, error) {
	rows, err := rr.conn.Query(ctx,
		`SELECT id, user_id, exercise_id, exercise_name, date, workout_id, session_id, weight, reps, hits, misses, created_at
		FROM exercise_results WHERE user_id = $1 AND exercise_id = $2 ORDER BY date DESC;`, uid, exerciseID)
	if err != nil {
		return nil, errors.New("getting results by exercise error: " + err.Error())
	}
	return scanResults(rows)
}

func (rr *ResultsRepository) GetStats(ctx context.Context, uid uuid.UUID) ([]entity.ExerciseStats, error) {
	stats := make([]entity.ExerciseStats, 0)
	rows, err := rr.conn.Query(ctx,
		`SELECT exercise_id, MAX(exercise_name), COALESCE(SUM(reps), 0), COUNT(*)
		FROM exercise_results WHERE user_id = $1 GROUP BY exercise_id ORDER BY exercise_id;`, uid)
	if err != nil {
		return nil, errors.New("getting exercise stats error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		s := entity.ExerciseStats{}
		err = rows.Scan(&s.ExerciseID, &s.ExerciseName, &s.TotalReps, &s.SessionsCount)
		if err != nil {
			return nil, errors.New("stats row parsing error: " + err.Error())
		}
		stats = append(stats, s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected stats rows error: " + rows.Err().Error())
	}
	return stats, nil
}

func scanResults(rows pgx.Rows) ([]entity.ExerciseResult, error) {
	results := make([]entity.ExerciseResult, 0)
	defer rows.Close()
	for rows.Next() {
		r := entity.ExerciseResult{}
		err := rows.Scan(&r.ID, &r.UserID, &r.ExerciseID, &r.ExerciseName, &r.Date,
			&r.WorkoutID, &r.SessionID, &r.Weight, &r.Reps, &r.Hits, &r.Misses, &r.CreatedAt)
		if err != nil {
			return nil, errors.New("result row parsing error: " + err.Error())
		}
		results = append(results, r)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected result rows error: " + rows.Err().Error())
	}
	return results, nil
}
