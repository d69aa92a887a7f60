package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grebnev/fitmate/internal/repository"
	"github.com/grebnev/fitmate/pkg/entity"
)

func strPtr(s string) *string {
	return &s
}

func TestCountDefinitions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewAchievementsRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM achievements;`)
	t.Run("seeded catalog", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(23))
		count, err := repo.CountDefinitions(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 23, count)
	})
	t.Run("empty catalog", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
		count, err := repo.CountDefinitions(ctx)
		assert.NoError(t, err)
		assert.Zero(t, count)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnError(errors.New("db error"))
		_, err := repo.CountDefinitions(ctx)
		assert.Error(t, err)
	})
}

func TestInsertDefinitions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewAchievementsRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO achievements (id, name, type, exercise_id, target) VALUES ($1, $2, $3, $4, $5);`)
	defs := []entity.Achievement{
		{ID: "pushups_100", Name: "100 push-ups total", Type: "total_reps", ExerciseID: strPtr("quick_pushups"), Target: 100},
		{ID: "streak_3", Name: "Train 3 days in a row", Type: "streak", Target: 3},
	}
	t.Run("whole batch in one tx", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(query).
			WithArgs(defs[0].ID, defs[0].Name, defs[0].Type, defs[0].ExerciseID, defs[0].Target).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(query).
			WithArgs(defs[1].ID, defs[1].Name, defs[1].Type, defs[1].ExerciseID, defs[1].Target).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()
		err := repo.InsertDefinitions(ctx, defs)
		assert.NoError(t, err)
	})
	t.Run("rollback on error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(query).
			WithArgs(defs[0].ID, defs[0].Name, defs[0].Type, defs[0].ExerciseID, defs[0].Target).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		err := repo.InsertDefinitions(ctx, defs)
		assert.Error(t, err)
	})
}

func TestListDefinitions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewAchievementsRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, name, type, exercise_id, target FROM achievements ORDER BY id;`)
	t.Run("catalog rows", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "type", "exercise_id", "target"}).
				AddRow("pushups_100", "100 push-ups total", "total_reps", strPtr("quick_pushups"), 100).
				AddRow("streak_3", "Train 3 days in a row", "streak", nil, 3))
		defs, err := repo.ListDefinitions(ctx)
		assert.NoError(t, err)
		require.Len(t, defs, 2)
		assert.Equal(t, "quick_pushups", *defs[0].ExerciseID)
		assert.Nil(t, defs[1].ExerciseID)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListDefinitions(ctx)
		assert.Error(t, err)
	})
}

func TestListUserAchievements(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewAchievementsRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, user_id, achievement_id, achieved_at, push_notified FROM user_achievements WHERE user_id = $1;`)
	t.Run("awards present", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(testUserID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "achievement_id", "achieved_at", "push_notified"}).
				AddRow(uuid.New(), testUserID, "pushups_100", testTime, false))
		awards, err := repo.ListUserAchievements(ctx, testUserID)
		assert.NoError(t, err)
		require.Len(t, awards, 1)
		assert.Equal(t, "pushups_100", awards[0].AchievementID)
		assert.False(t, awards[0].PushNotified)
	})
	t.Run("no awards", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(testUserID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "achievement_id", "achieved_at", "push_notified"}))
		awards, err := repo.ListUserAchievements(ctx, testUserID)
		assert.NoError(t, err)
		assert.Empty(t, awards)
	})
}

func TestInsertUserAchievements(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewAchievementsRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO user_achievements (user_id, achievement_id, achieved_at, push_notified)
			VALUES ($1, $2, $3, $4) ON CONFLICT (user_id, achievement_id) DO NOTHING;`)
	awards := []entity.UserAchievement{
		{UserID: testUserID, AchievementID: "pushups_100", AchievedAt: testTime},
		{UserID: testUserID, AchievementID: "streak_7", AchievedAt: testTime},
	}
	t.Run("all inserted", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(query).
			WithArgs(testUserID, "pushups_100", testTime, false).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(query).
			WithArgs(testUserID, "streak_7", testTime, false).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()
		inserted, err := repo.InsertUserAchievements(ctx, awards)
		assert.NoError(t, err)
		assert.Equal(t, awards, inserted)
	})
	t.Run("conflicting pair is skipped, not failed", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(query).
			WithArgs(testUserID, "pushups_100", testTime, false).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mock.ExpectExec(query).
			WithArgs(testUserID, "streak_7", testTime, false).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()
		inserted, err := repo.InsertUserAchievements(ctx, awards)
		assert.NoError(t, err)
		require.Len(t, inserted, 1)
		assert.Equal(t, "streak_7", inserted[0].AchievementID)
	})
	t.Run("rollback keeps the batch atomic", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(query).
			WithArgs(testUserID, "pushups_100", testTime, false).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(query).
			WithArgs(testUserID, "streak_7", testTime, false).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		_, err := repo.InsertUserAchievements(ctx, awards)
		assert.Error(t, err)
	})
	t.Run("empty batch commits nothing", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit()
		inserted, err := repo.InsertUserAchievements(ctx, nil)
		assert.NoError(t, err)
		assert.Empty(t, inserted)
	})
}

func TestMarkPushNotified(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewAchievementsRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`UPDATE user_achievements SET push_notified = TRUE WHERE user_id = $1 AND achievement_id = $2;`)
	t.Run("row updated", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(testUserID, "pushups_100").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		found, err := repo.MarkPushNotified(ctx, testUserID, "pushups_100")
		assert.NoError(t, err)
		assert.True(t, found)
	})
	t.Run("no row is a no-op", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(testUserID, "never_earned").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		found, err := repo.MarkPushNotified(ctx, testUserID, "never_earned")
		assert.NoError(t, err)
		assert.False(t, found)
	})
	t.Run("retry after success stays idempotent", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(testUserID, "pushups_100").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		found, err := repo.MarkPushNotified(ctx, testUserID, "pushups_100")
		assert.NoError(t, err)
		assert.True(t, found)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(testUserID, "pushups_100").
			WillReturnError(errors.New("db error"))
		_, err := repo.MarkPushNotified(ctx, testUserID, "pushups_100")
		assert.Error(t, err)
	})
}
