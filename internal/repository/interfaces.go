package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/grebnev/fitmate/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Can be used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Looks up the owner of a referral code
	FindByReferralCode(ctx context.Context, code string) (*entity.User, error)
	// Lists users who registered with uid's referral code
	ListReferrals(ctx context.Context, uid uuid.UUID) ([]*entity.User, error)
}

type ResultsRepositoryI interface {
	// Persists one exercise result. Results are immutable after creation
	Create(ctx context.Context, result *entity.ExerciseResult) error
	// Full result history of a user, newest first
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]entity.ExerciseResult, error)
	// History filtered down to one exercise, newest first
	GetByUserAndExercise(ctx context.Context, uid uuid.UUID, exerciseID string) ([]entity.ExerciseResult, error)
	// Per-exercise totals and record counts
	GetStats(ctx context.Context, uid uuid.UUID) ([]entity.ExerciseStats, error)
}

type StepsRepositoryI interface {
	// Inserts the entry or, when the (user, date) row exists, replaces its count
	Upsert(ctx context.Context, entry *entity.StepsEntry) (*entity.StepsEntry, error)
	// Entries of a user, newest first. limit <= 0 means no limit
	GetByUserID(ctx context.Context, uid uuid.UUID, limit int) ([]entity.StepsEntry, error)
	// Single day's entry, ErrStepsEntryNotFound when absent
	GetByUserAndDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.StepsEntry, error)
}

type AchievementsRepositoryI interface {
	// Number of catalog rows; the seed gate
	CountDefinitions(ctx context.Context) (int, error)
	// Inserts the whole catalog in one transaction
	InsertDefinitions(ctx context.Context, defs []entity.Achievement) error
	// Full catalog ordered by id
	ListDefinitions(ctx context.Context) ([]entity.Achievement, error)
	// Awards already held by a user
	ListUserAchievements(ctx context.Context, uid uuid.UUID) ([]entity.UserAchievement, error)
	// Inserts the batch in one transaction, skipping pairs that already
	// exist, and reports which rows were actually inserted
	InsertUserAchievements(ctx context.Context, awards []entity.UserAchievement) ([]entity.UserAchievement, error)
	// Flips push_notified to true; reports whether the row existed
	MarkPushNotified(ctx context.Context, uid uuid.UUID, achievementID string) (bool, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
