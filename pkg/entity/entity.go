package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	ReferralCode string
	ReferredByID *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ExerciseResult is one logged performance of an exercise. Created once by
// the results handler, read-only afterwards. Reps is nil for exercises that
// don't count repetitions; timed exercises store seconds in Reps.
type ExerciseResult struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"userId"`
	ExerciseID   string     `json:"exerciseId"`
	ExerciseName string     `json:"exerciseName"`
	Date         time.Time  `json:"date"`
	WorkoutID    *uuid.UUID `json:"workoutId,omitempty"`
	SessionID    *string    `json:"sessionId,omitempty"`
	Weight       *float64   `json:"weight,omitempty"`
	Reps         *int       `json:"reps,omitempty"`
	Hits         *int       `json:"hits,omitempty"`
	Misses       *int       `json:"misses,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type ExerciseStats struct {
	ExerciseID    string `json:"exerciseId"`
	ExerciseName  string `json:"exerciseName"`
	TotalReps     int    `json:"totalReps"`
	SessionsCount int    `json:"sessionsCount"`
}

// StepsEntry holds one day's step count. One row per (user, date).
type StepsEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Date      time.Time `json:"date"`
	Steps     int       `json:"steps"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Achievement is one row of the rule catalog. Type is one of total_reps,
// max_reps, streak. ExerciseID is nil for streak rules.
type Achievement struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	ExerciseID *string `json:"exerciseId,omitempty"`
	Target     int     `json:"target"`
}

// UserAchievement records that a user unlocked an achievement. AchievedAt is
// the moment the system first observed qualification, which for imported
// history can be later than when the threshold was actually crossed.
// PushNotified is the only field that ever changes after insert.
type UserAchievement struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	AchievementID string    `json:"achievementId"`
	AchievedAt    time.Time `json:"achievedAt"`
	PushNotified  bool      `json:"pushNotified"`
}

// AchievementStatus is a catalog row joined with the user's award state.
type AchievementStatus struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	Target       int        `json:"target"`
	Achieved     bool       `json:"achieved"`
	AchievedAt   *time.Time `json:"achievedAt"`
	PushNotified bool       `json:"pushNotified"`
}

// AwardedAchievement is what the reconciler hands to the notification
// dispatcher for each freshly unlocked achievement.
type AwardedAchievement struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	AchievedAt time.Time `json:"achievedAt"`
}
