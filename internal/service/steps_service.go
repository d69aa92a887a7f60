package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/grebnev/fitmate/internal/error_values"
	"github.com/grebnev/fitmate/internal/repository"
	"github.com/grebnev/fitmate/pkg/entity"
)

type StepsService struct {
	repo repository.StepsRepositoryI
}

func NewStepsService(stepsRepo repository.StepsRepositoryI) *StepsService {
	if stepsRepo == nil {
		log.Fatal("provided nil stepsRepo")
	}
	return &StepsService{
		repo: stepsRepo,
	}
}

func (ss *StepsService) SaveEntry(ctx context.Context, uid uuid.UUID, req *SaveStepsRequest) (*entity.StepsEntry, error) {
	err := validate.Struct(*req)
	if err != nil {
		return nil, errors.New("validation error: " + err.Error())
	}
	day := truncateToDay(req.Date)
	if day.After(truncateToDay(time.Now())) {
		return nil, errorvalues.ErrStepsDateNotAllowed
	}
	entry, err := ss.repo.Upsert(ctx, &entity.StepsEntry{
		UserID: uid,
		Date:   day,
		Steps:  req.Steps,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("steps repository error: " + err.Error())
	}
	return entry, nil
}

func (ss *StepsService) GetLog(ctx context.Context, uid uuid.UUID, date time.Time, limit int) ([]entity.StepsEntry, error) {
	if !date.IsZero() {
		entry, err := ss.repo.GetByUserAndDate(ctx, uid, truncateToDay(date))
		if err != nil {
			if errors.Is(err, errorvalues.ErrStepsEntryNotFound) {
				return []entity.StepsEntry{}, nil
			}
			return nil, errors.New("steps repository error: " + err.Error())
		}
		return []entity.StepsEntry{*entry}, nil
	}
	entries, err := ss.repo.GetByUserID(ctx, uid, limit)
	if err != nil {
		return nil, errors.New("steps repository error: " + err.Error())
	}
	return entries, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
