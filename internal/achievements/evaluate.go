package achievements

import "github.com/grebnev/fitmate/pkg/entity"

// ComputeEarned maps a user's full result history against the given rule
// definitions and returns the ids whose threshold is met or exceeded, in
// definition order. Pure function: mutates nothing, persists nothing.
//
// The streak is computed once over the dates of all results regardless of
// exercise, so every streak rule in a pass sees the same value.
func ComputeEarned(results []entity.ExerciseResult, defs []Definition) []string {
	byExercise := make(map[string][]entity.ExerciseResult)
	dates := make([]string, 0, len(results))
	for _, r := range results {
		dates = append(dates, DayKey(r.Date))
		byExercise[r.ExerciseID] = append(byExercise[r.ExerciseID], r)
	}
	streak := MaxStreak(dates)

	earned := make([]string, 0)
	for _, def := range defs {
		switch def.Kind {
		case KindTotalReps:
			if TotalReps(byExercise[def.ExerciseID], def.ExerciseID) >= def.Target {
				earned = append(earned, def.ID)
			}
		case KindMaxReps:
			if MaxReps(byExercise[def.ExerciseID], def.ExerciseID) >= def.Target {
				earned = append(earned, def.ID)
			}
		case KindStreak:
			if streak >= def.Target {
				earned = append(earned, def.ID)
			}
		}
	}
	return earned
}

// DefinitionsFromCatalog converts persisted catalog rows back into
// definitions the evaluator understands.
func DefinitionsFromCatalog(rows []entity.Achievement) []Definition {
	defs := make([]Definition, 0, len(rows))
	for _, row := range rows {
		def := Definition{
			ID:     row.ID,
			Name:   row.Name,
			Kind:   row.Type,
			Target: row.Target,
		}
		if row.ExerciseID != nil {
			def.ExerciseID = *row.ExerciseID
		}
		defs = append(defs, def)
	}
	return defs
}

// CatalogRows renders the rule table in its persisted shape, used by the
// seeding migration.
func CatalogRows() []entity.Achievement {
	rows := make([]entity.Achievement, 0, len(catalog))
	for _, def := range catalog {
		row := entity.Achievement{
			ID:     def.ID,
			Name:   def.Name,
			Type:   def.Kind,
			Target: def.Target,
		}
		if def.ExerciseID != "" {
			exID := def.ExerciseID
			row.ExerciseID = &exID
		}
		rows = append(rows, row)
	}
	return rows
}
