package achievements_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grebnev/fitmate/internal/achievements"
	"github.com/grebnev/fitmate/pkg/entity"
)

func TestComputeEarned(t *testing.T) {
	t.Parallel()
	defs := []achievements.Definition{
		{ID: "pushups_100", Kind: achievements.KindTotalReps, ExerciseID: "quick_pushups", Target: 100},
		{ID: "pushups_max_50", Kind: achievements.KindMaxReps, ExerciseID: "quick_pushups", Target: 50},
		{ID: "streak_3", Kind: achievements.KindStreak, Target: 3},
		{ID: "streak_7", Kind: achievements.KindStreak, Target: 7},
	}
	testCases := []struct {
		Desc     string
		Results  []entity.ExerciseResult
		Defs     []achievements.Definition
		Expected []string
	}{
		{
			Desc:     "no history earns nothing",
			Results:  nil,
			Defs:     defs,
			Expected: []string{},
		},
		{
			Desc: "threshold is inclusive",
			Results: []entity.ExerciseResult{
				result("quick_pushups", "2024-01-01", intPtr(30)),
				result("quick_pushups", "2024-01-03", intPtr(70)),
			},
			Defs:     defs,
			Expected: []string{"pushups_100", "pushups_max_50"},
		},
		{
			Desc: "one rep short stays locked",
			Results: []entity.ExerciseResult{
				result("quick_pushups", "2024-01-01", intPtr(30)),
				result("quick_pushups", "2024-01-03", intPtr(69)),
			},
			Defs:     defs,
			Expected: []string{"pushups_max_50"},
		},
		{
			Desc: "streak spans exercises",
			Results: []entity.ExerciseResult{
				result("quick_pushups", "2024-01-01", intPtr(10)),
				result("quick_squats", "2024-01-02", intPtr(10)),
				result("quick_pullups", "2024-01-03", intPtr(10)),
			},
			Defs:     defs,
			Expected: []string{"streak_3"},
		},
		{
			Desc: "all streak rules see the same streak",
			Results: []entity.ExerciseResult{
				result("quick_pushups", "2024-01-01", intPtr(10)),
				result("quick_pushups", "2024-01-02", intPtr(10)),
				result("quick_pushups", "2024-01-03", intPtr(10)),
				result("quick_pushups", "2024-01-04", intPtr(10)),
				result("quick_pushups", "2024-01-05", intPtr(10)),
				result("quick_pushups", "2024-01-06", intPtr(10)),
				result("quick_pushups", "2024-01-07", intPtr(10)),
			},
			Defs:     defs,
			Expected: []string{"streak_3", "streak_7"},
		},
		{
			Desc: "empty definition set earns nothing",
			Results: []entity.ExerciseResult{
				result("quick_pushups", "2024-01-01", intPtr(500)),
			},
			Defs:     nil,
			Expected: []string{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, achievements.ComputeEarned(tc.Results, tc.Defs))
		})
	}
}

func TestCatalog(t *testing.T) {
	t.Parallel()
	defs := achievements.Catalog()
	assert.Len(t, defs, 23)
	seen := make(map[string]struct{}, len(defs))
	for _, def := range defs {
		_, dup := seen[def.ID]
		assert.False(t, dup, "duplicate id %s", def.ID)
		seen[def.ID] = struct{}{}
		assert.Positive(t, def.Target)
		switch def.Kind {
		case achievements.KindTotalReps, achievements.KindMaxReps:
			assert.NotEmpty(t, def.ExerciseID, "id %s", def.ID)
		case achievements.KindStreak:
			assert.Empty(t, def.ExerciseID, "id %s", def.ID)
		default:
			t.Errorf("unknown kind %q on id %s", def.Kind, def.ID)
		}
	}
	// callers get a copy, not the table itself
	defs[0].Target = -1
	assert.Equal(t, 100, achievements.Catalog()[0].Target)
}

func TestCatalogRowsRoundTrip(t *testing.T) {
	t.Parallel()
	rows := achievements.CatalogRows()
	assert.Len(t, rows, 23)
	for _, row := range rows {
		if row.Type == achievements.KindStreak {
			assert.Nil(t, row.ExerciseID)
		} else {
			assert.NotNil(t, row.ExerciseID)
		}
	}
	assert.Equal(t, achievements.Catalog(), achievements.DefinitionsFromCatalog(rows))
}
