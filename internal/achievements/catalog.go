// Package achievements holds the pure part of the achievement engine:
// the rule catalog and the evaluation logic over a user's exercise history.
// Nothing here touches storage.
package achievements

const (
	KindTotalReps = "total_reps"
	KindMaxReps   = "max_reps"
	KindStreak    = "streak"
)

// Definition describes one unlockable condition. ExerciseID is empty for
// streak rules since streaks span all exercises.
type Definition struct {
	ID         string
	Name       string
	Kind       string
	ExerciseID string
	Target     int
}

// catalog is the fixed rule table. It grows by deploying a new build, never
// at runtime; ids are stable and never reused.
var catalog = []Definition{
	{ID: "pushups_100", Name: "100 push-ups total", Kind: KindTotalReps, ExerciseID: "quick_pushups", Target: 100},
	{ID: "pushups_1000", Name: "1000 push-ups total", Kind: KindTotalReps, ExerciseID: "quick_pushups", Target: 1000},
	{ID: "pullups_100", Name: "100 pull-ups total", Kind: KindTotalReps, ExerciseID: "quick_pullups", Target: 100},
	{ID: "pullups_1000", Name: "1000 pull-ups total", Kind: KindTotalReps, ExerciseID: "quick_pullups", Target: 1000},
	{ID: "squats_100", Name: "100 squats total", Kind: KindTotalReps, ExerciseID: "quick_squats", Target: 100},
	{ID: "squats_1000", Name: "1000 squats total", Kind: KindTotalReps, ExerciseID: "quick_squats", Target: 1000},
	{ID: "pushups_max_10", Name: "10 push-ups in one go", Kind: KindMaxReps, ExerciseID: "quick_pushups", Target: 10},
	{ID: "pushups_max_20", Name: "20 push-ups in one go", Kind: KindMaxReps, ExerciseID: "quick_pushups", Target: 20},
	{ID: "pushups_max_50", Name: "50 push-ups in one go", Kind: KindMaxReps, ExerciseID: "quick_pushups", Target: 50},
	{ID: "pullups_max_5", Name: "5 pull-ups in one go", Kind: KindMaxReps, ExerciseID: "quick_pullups", Target: 5},
	{ID: "pullups_max_10", Name: "10 pull-ups in one go", Kind: KindMaxReps, ExerciseID: "quick_pullups", Target: 10},
	{ID: "pullups_max_20", Name: "20 pull-ups in one go", Kind: KindMaxReps, ExerciseID: "quick_pullups", Target: 20},
	{ID: "squats_max_20", Name: "20 squats in one go", Kind: KindMaxReps, ExerciseID: "quick_squats", Target: 20},
	{ID: "squats_max_50", Name: "50 squats in one go", Kind: KindMaxReps, ExerciseID: "quick_squats", Target: 50},
	{ID: "squats_max_100", Name: "100 squats in one go", Kind: KindMaxReps, ExerciseID: "quick_squats", Target: 100},
	{ID: "plank_60", Name: "60 second plank", Kind: KindMaxReps, ExerciseID: "quick_plank", Target: 60},
	{ID: "plank_120", Name: "2 minute plank", Kind: KindMaxReps, ExerciseID: "quick_plank", Target: 120},
	{ID: "plank_180", Name: "3 minute plank", Kind: KindMaxReps, ExerciseID: "quick_plank", Target: 180},
	{ID: "streak_3", Name: "Train 3 days in a row", Kind: KindStreak, Target: 3},
	{ID: "streak_5", Name: "Train 5 days in a row", Kind: KindStreak, Target: 5},
	{ID: "streak_7", Name: "Train a full week", Kind: KindStreak, Target: 7},
	{ID: "streak_14", Name: "Train 2 weeks in a row", Kind: KindStreak, Target: 14},
	{ID: "streak_30", Name: "Train a full month", Kind: KindStreak, Target: 30},
}

// Catalog returns a copy of the rule table so callers can't mutate it.
func Catalog() []Definition {
	defs := make([]Definition, len(catalog))
	copy(defs, catalog)
	return defs
}
