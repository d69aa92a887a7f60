package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grebnev/fitmate/pkg/cleanup"
	"github.com/grebnev/fitmate/pkg/entity"
)

type AchievementsRepository struct {
	conn PgConnection
}

func NewAchievementsRepo(cfg DBConfig) *AchievementsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for achievementsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for achievementsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &AchievementsRepository{
		conn: pool,
	}
}

func NewAchievementsRepoWithConn(conn PgConnection) *AchievementsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for achievementsRepo: " + err.Error())
	}
	return &AchievementsRepository{
		conn: conn,
	}
}

func (ar *AchievementsRepository) CountDefinitions(ctx context.Context) (int, error) {
	row := ar.conn.QueryRow(ctx, `SELECT COUNT(*) FROM achievements;`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting achievement definitions error: " + err.Error())
	}
	return count, nil
}

func (ar *AchievementsRepository) InsertDefinitions(ctx context.Context, defs []entity.Achievement) error {
	tx, err := ar.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting definitions tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	for _, def := range defs {
		_, err = tx.Exec(ctx,
			`INSERT INTO achievements (id, name, type, exercise_id, target) VALUES ($1, $2, $3, $4, $5);`,
			def.ID,
			def.Name,
			def.Type,
			def.ExerciseID,
			def.Target,
		)
		if err != nil {
			return errors.New("inserting achievement definition error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing definitions tx error: " + err.Error())
	}
	return nil
}

func (ar *AchievementsRepository) ListDefinitions(ctx context.Context) ([]entity.Achievement, error) {
	defs := make([]entity.Achievement, 0)
	rows, err := ar.conn.Query(ctx, `SELECT id, name, type, exercise_id, target FROM achievements ORDER BY id;`)
	if err != nil {
		return nil, errors.New("listing achievement definitions error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		d := entity.Achievement{}
		err = rows.Scan(&d.ID, &d.Name, &d.Type, &d.ExerciseID, &d.Target)
		if err != nil {
			return nil, errors.New("definition row parsing error: " + err.Error())
		}
		defs = append(defs, d)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected definition rows error: " + rows.Err().Error())
	}
	return defs, nil
}

func (ar *AchievementsRepository) ListUserAchievements(ctx context.Context, uid uuid.UUID) ([]entity.UserAchievement, error) {
	awards := make([]entity.UserAchievement, 0)
	rows, err := ar.conn.Query(ctx,
		`SELECT id, user_id, achievement_id, achieved_at, push_notified FROM user_achievements WHERE user_id = $1;`, uid)
	if err != nil {
		return nil, errors.New("listing user achievements error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		ua := entity.UserAchievement{}
		err = rows.Scan(&ua.ID, &ua.UserID, &ua.AchievementID, &ua.AchievedAt, &ua.PushNotified)
		if err != nil {
			return nil, errors.New("user achievement row parsing error: " + err.Error())
		}
		awards = append(awards, ua)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected user achievement rows error: " + rows.Err().Error())
	}
	return awards, nil
}

// InsertUserAchievements persists the batch in one transaction. A pair that
// already exists (a concurrent reconciliation got there first) is skipped
// via ON CONFLICT DO NOTHING and left out of the returned slice.
func (ar *AchievementsRepository) InsertUserAchievements(ctx context.Context, awards []entity.UserAchievement) ([]entity.UserAchievement, error) {
	tx, err := ar.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("starting awards tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	inserted := make([]entity.UserAchievement, 0, len(awards))
	for _, ua := range awards {
		ct, err := tx.Exec(ctx,
			`INSERT INTO user_achievements (user_id, achievement_id, achieved_at, push_notified)
			VALUES ($1, $2, $3, $4) ON CONFLICT (user_id, achievement_id) DO NOTHING;`,
			ua.UserID,
			ua.AchievementID,
			ua.AchievedAt,
			ua.PushNotified,
		)
		if err != nil {
			return nil, errors.New("inserting user achievement error: " + err.Error())
		}
		if ct.RowsAffected() == 0 {
			continue
		}
		inserted = append(inserted, ua)
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing awards tx error: " + err.Error())
	}
	return inserted, nil
}

func (ar *AchievementsRepository) MarkPushNotified(ctx context.Context, uid uuid.UUID, achievementID string) (bool, error) {
	ct, err := ar.conn.Exec(ctx,
		`UPDATE user_achievements SET push_notified = TRUE WHERE user_id = $1 AND achievement_id = $2;`,
		uid,
		achievementID,
	)
	if err != nil {
		return false, errors.New("marking push notified error: " + err.Error())
	}
	return ct.RowsAffected() > 0, nil
}
