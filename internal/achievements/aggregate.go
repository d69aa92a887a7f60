package achievements

import "github.com/grebnev/fitmate/pkg/entity"

// TotalReps sums reps over all results of exerciseID. Match is exact and
// case-sensitive; an empty exercise id is a group of its own. Nil reps count
// as zero, no matching results yield zero.
func TotalReps(results []entity.ExerciseResult, exerciseID string) int {
	total := 0
	for _, r := range results {
		if r.ExerciseID != exerciseID {
			continue
		}
		if r.Reps != nil {
			total += *r.Reps
		}
	}
	return total
}

// MaxReps returns the largest single-result rep count among results of
// exerciseID. Zero when nothing matches: "no data" and "zero reps" are
// indistinguishable on purpose.
func MaxReps(results []entity.ExerciseResult, exerciseID string) int {
	best := 0
	for _, r := range results {
		if r.ExerciseID != exerciseID {
			continue
		}
		reps := 0
		if r.Reps != nil {
			reps = *r.Reps
		}
		if reps > best {
			best = reps
		}
	}
	return best
}
