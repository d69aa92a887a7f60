package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/grebnev/fitmate/internal/error_values"
	"github.com/grebnev/fitmate/internal/repository/mocks"
	"github.com/grebnev/fitmate/internal/service"
	"github.com/grebnev/fitmate/pkg/entity"
)

func TestSaveStepsEntry(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	stepsRepo := mocks.NewMockStepsRepositoryI(ctrl)
	serv := service.NewStepsService(stepsRepo)
	uid := uuid.New()
	today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		Desc         string
		Error        error
		WantErr      bool
		Date         time.Time
		Steps        int
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			// midday timestamp lands on the day bucket
			Date:  today.Add(time.Hour * 13),
			Steps: 8000,
			MockPrepFunc: func() {
				stepsRepo.EXPECT().
					Upsert(gomock.Any(), &entity.StepsEntry{UserID: uid, Date: today, Steps: 8000}).
					Return(&entity.StepsEntry{ID: uuid.New(), UserID: uid, Date: today, Steps: 8000}, nil)
			},
		},
		{
			Desc:         "error future date",
			Error:        errorvalues.ErrStepsDateNotAllowed,
			Date:         time.Now().Add(time.Hour * 72),
			Steps:        100,
			MockPrepFunc: func() {},
		},
		{
			Desc:  "error user not found",
			Error: errorvalues.ErrUserNotFound,
			Date:  today,
			Steps: 100,
			MockPrepFunc: func() {
				stepsRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(nil, errorvalues.ErrUserNotFound)
			},
		},
		{
			Desc:    "db error",
			WantErr: true,
			Date:    today,
			Steps:   100,
			MockPrepFunc: func() {
				stepsRepo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			_, err := serv.SaveEntry(ctx, uid, &service.SaveStepsRequest{
				Date:  tc.Date,
				Steps: tc.Steps,
			})
			switch {
			case tc.Error != nil:
				assert.ErrorIs(t, err, tc.Error)
			case tc.WantErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
	t.Run("error negative steps", func(t *testing.T) {
		_, err := serv.SaveEntry(ctx, uid, &service.SaveStepsRequest{
			Date:  today,
			Steps: -1,
		})
		assert.Error(t, err)
	})
}

func TestGetStepsLog(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	stepsRepo := mocks.NewMockStepsRepositoryI(ctrl)
	serv := service.NewStepsService(stepsRepo)
	uid := uuid.New()
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	entry := entity.StepsEntry{ID: uuid.New(), UserID: uid, Date: day, Steps: 8000}
	ctx := context.Background()

	t.Run("whole log", func(t *testing.T) {
		stepsRepo.EXPECT().GetByUserID(gomock.Any(), uid, 30).Return([]entity.StepsEntry{entry}, nil)
		entries, err := serv.GetLog(ctx, uid, time.Time{}, 30)
		assert.NoError(t, err)
		assert.Equal(t, []entity.StepsEntry{entry}, entries)
	})
	t.Run("single day", func(t *testing.T) {
		stepsRepo.EXPECT().GetByUserAndDate(gomock.Any(), uid, day).Return(&entry, nil)
		entries, err := serv.GetLog(ctx, uid, day.Add(time.Hour*9), 0)
		assert.NoError(t, err)
		assert.Equal(t, []entity.StepsEntry{entry}, entries)
	})
	t.Run("day with no entry is empty, not an error", func(t *testing.T) {
		stepsRepo.EXPECT().
			GetByUserAndDate(gomock.Any(), uid, day).
			Return(nil, errorvalues.ErrStepsEntryNotFound)
		entries, err := serv.GetLog(ctx, uid, day, 0)
		assert.NoError(t, err)
		assert.Empty(t, entries)
	})
	t.Run("db error", func(t *testing.T) {
		stepsRepo.EXPECT().GetByUserID(gomock.Any(), uid, 0).Return(nil, errors.New("db error"))
		_, err := serv.GetLog(ctx, uid, time.Time{}, 0)
		assert.Error(t, err)
	})
}
