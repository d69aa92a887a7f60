package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/grebnev/fitmate/pkg/entity"
)

type RegisterRequest struct {
	Email        string `validate:"required,email,max=255"`
	Password     string `validate:"required,min=8,max=72"`
	ReferralCode string `validate:"omitempty,referral_code"`
}

type SaveResultRequest struct {
	ExerciseID   string `validate:"required,max=100"`
	ExerciseName string `validate:"required,max=255"`
	Date         time.Time
	WorkoutID    *uuid.UUID
	SessionID    *string
	Weight       *float64
	Reps         *int `validate:"omitempty,min=0"`
	Hits         *int `validate:"omitempty,min=0"`
	Misses       *int `validate:"omitempty,min=0"`
}

type SaveStepsRequest struct {
	Date  time.Time
	Steps int `validate:"min=0"`
}

type ReferralInfo struct {
	Code      string
	Referrals []*entity.User
}

type UserServiceI interface {
	// Validates credentials, resolves the inbound referral code if any,
	// creates the user row. Returns the stored user with ID and a fresh
	// referral code of their own
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data with ID
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Referral code plus the users it brought in
	GetReferralInfo(ctx context.Context, id uuid.UUID) (*ReferralInfo, error)
}

type ResultsServiceI interface {
	SaveResult(ctx context.Context, uid uuid.UUID, req *SaveResultRequest) (*entity.ExerciseResult, error)
	// exerciseID == "" means the whole history
	GetResults(ctx context.Context, uid uuid.UUID, exerciseID string) ([]entity.ExerciseResult, error)
	GetStats(ctx context.Context, uid uuid.UUID) ([]entity.ExerciseStats, error)
}

type StepsServiceI interface {
	// One entry per day: saving twice for the same date replaces the count
	SaveEntry(ctx context.Context, uid uuid.UUID, req *SaveStepsRequest) (*entity.StepsEntry, error)
	// date non-zero narrows to that day, limit > 0 caps the list
	GetLog(ctx context.Context, uid uuid.UUID, date time.Time, limit int) ([]entity.StepsEntry, error)
}

type AchievementsServiceI interface {
	// Full catalog annotated with the user's award state
	GetAll(ctx context.Context, uid uuid.UUID) ([]entity.AchievementStatus, error)
	// Scans the user's history, persists any newly earned achievements and
	// returns exactly those, for push dispatch
	CheckAndAward(ctx context.Context, uid uuid.UUID) ([]entity.AwardedAchievement, error)
	// Idempotent; false means no such award for that user
	MarkPushNotified(ctx context.Context, uid uuid.UUID, achievementID string) (bool, error)
}
