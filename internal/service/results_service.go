package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	errorvalues "github.com/grebnev/fitmate/internal/error_values"
	"github.com/grebnev/fitmate/internal/repository"
	"github.com/grebnev/fitmate/pkg/entity"
)

type ResultsService struct {
	repo repository.ResultsRepositoryI
}

func NewResultsService(resultsRepo repository.ResultsRepositoryI) *ResultsService {
	if resultsRepo == nil {
		log.Fatal("provided nil resultsRepo")
	}
	return &ResultsService{
		repo: resultsRepo,
	}
}

func (rs *ResultsService) SaveResult(ctx context.Context, uid uuid.UUID, req *SaveResultRequest) (*entity.ExerciseResult, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	result := entity.ExerciseResult{
		UserID:       uid,
		ExerciseID:   req.ExerciseID,
		ExerciseName: req.ExerciseName,
		Date:         req.Date,
		WorkoutID:    req.WorkoutID,
		SessionID:    req.SessionID,
		Weight:       req.Weight,
		Reps:         req.Reps,
		Hits:         req.Hits,
		Misses:       req.Misses,
	}
	if result.Date.IsZero() {
		result.Date = time.Now().UTC()
	}
	err = rs.repo.Create(ctx, &result)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("results repository error: " + err.Error())
	}
	return &result, nil
}

func (rs *ResultsService) GetResults(ctx context.Context, uid uuid.UUID, exerciseID string) ([]entity.ExerciseResult, error) {
	var (
		results []entity.ExerciseResult
		err     error
	)
	if exerciseID != "" {
		results, err = rs.repo.GetByUserAndExercise(ctx, uid, exerciseID)
	} else {
		results, err = rs.repo.GetByUserID(ctx, uid)
	}
	if err != nil {
		return nil, errors.New("results repository error: " + err.Error())
	}
	return results, nil
}

func (rs *ResultsService) GetStats(ctx context.Context, uid uuid.UUID) ([]entity.ExerciseStats, error) {
	stats, err := rs.repo.GetStats(ctx, uid)
	if err != nil {
		return nil, errors.New("results repository error: " + err.Error())
	}
	return stats, nil
}
