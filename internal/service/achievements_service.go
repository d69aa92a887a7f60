package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/grebnev/fitmate/internal/achievements"
	"github.com/grebnev/fitmate/internal/repository"
	"github.com/grebnev/fitmate/pkg/entity"
)

type AchievementsService struct {
	achievementsRepo repository.AchievementsRepositoryI
	resultsRepo      repository.ResultsRepositoryI
}

func NewAchievementsService(achievementsRepo repository.AchievementsRepositoryI, resultsRepo repository.ResultsRepositoryI) *AchievementsService {
	if achievementsRepo == nil || resultsRepo == nil {
		log.Fatal("on achievements service provided nil repos")
	}
	return &AchievementsService{
		achievementsRepo: achievementsRepo,
		resultsRepo:      resultsRepo,
	}
}

// SeedCatalog writes the rule table into storage if it holds no rows yet.
// Existence-gated, not a merge: a non-empty catalog is left untouched. Run
// from the migrate command, never from request handling.
func (as *AchievementsService) SeedCatalog(ctx context.Context) error {
	count, err := as.achievementsRepo.CountDefinitions(ctx)
	if err != nil {
		return errors.New("achievements repository error: " + err.Error())
	}
	if count > 0 {
		return nil
	}
	err = as.achievementsRepo.InsertDefinitions(ctx, achievements.CatalogRows())
	if err != nil {
		return errors.New("achievements repository error: " + err.Error())
	}
	return nil
}

func (as *AchievementsService) GetAll(ctx context.Context, uid uuid.UUID) ([]entity.AchievementStatus, error) {
	defs, err := as.achievementsRepo.ListDefinitions(ctx)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	awards, err := as.achievementsRepo.ListUserAchievements(ctx, uid)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	awarded := make(map[string]entity.UserAchievement, len(awards))
	for _, ua := range awards {
		awarded[ua.AchievementID] = ua
	}
	statuses := make([]entity.AchievementStatus, 0, len(defs))
	for _, def := range defs {
		status := entity.AchievementStatus{
			ID:     def.ID,
			Name:   def.Name,
			Type:   def.Type,
			Target: def.Target,
		}
		if ua, ok := awarded[def.ID]; ok {
			achievedAt := ua.AchievedAt
			status.Achieved = true
			status.AchievedAt = &achievedAt
			status.PushNotified = ua.PushNotified
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// CheckAndAward reconciles the user's award ledger against their full result
// history: everything the evaluator says is earned but isn't recorded yet
// gets persisted in one batch and returned for push dispatch. AchievedAt is
// the observation time, so a backfilled history earns everything at once
// with the current timestamp. Safe to call concurrently for one user: the
// unique (user, achievement) constraint is the only serialization point and
// a lost insert race just drops the pair from the returned slice.
func (as *AchievementsService) CheckAndAward(ctx context.Context, uid uuid.UUID) ([]entity.AwardedAchievement, error) {
	defs, err := as.achievementsRepo.ListDefinitions(ctx)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	results, err := as.resultsRepo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("results repository error: " + err.Error())
	}
	earned := achievements.ComputeEarned(results, achievements.DefinitionsFromCatalog(defs))

	existing, err := as.achievementsRepo.ListUserAchievements(ctx, uid)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	held := make(map[string]struct{}, len(existing))
	for _, ua := range existing {
		held[ua.AchievementID] = struct{}{}
	}

	now := time.Now().UTC()
	toAward := make([]entity.UserAchievement, 0)
	for _, id := range earned {
		if _, ok := held[id]; ok {
			continue
		}
		toAward = append(toAward, entity.UserAchievement{
			UserID:        uid,
			AchievementID: id,
			AchievedAt:    now,
		})
	}
	if len(toAward) == 0 {
		return []entity.AwardedAchievement{}, nil
	}

	inserted, err := as.achievementsRepo.InsertUserAchievements(ctx, toAward)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}

	names := make(map[string]string, len(defs))
	for _, def := range defs {
		names[def.ID] = def.Name
	}
	newlyAwarded := make([]entity.AwardedAchievement, 0, len(inserted))
	for _, ua := range inserted {
		name, ok := names[ua.AchievementID]
		if !ok {
			name = ua.AchievementID
		}
		newlyAwarded = append(newlyAwarded, entity.AwardedAchievement{
			ID:         ua.AchievementID,
			Name:       name,
			AchievedAt: ua.AchievedAt,
		})
	}
	return newlyAwarded, nil
}

func (as *AchievementsService) MarkPushNotified(ctx context.Context, uid uuid.UUID, achievementID string) (bool, error) {
	found, err := as.achievementsRepo.MarkPushNotified(ctx, uid, achievementID)
	if err != nil {
		return false, errors.New("achievements repository error: " + err.Error())
	}
	return found, nil
}
