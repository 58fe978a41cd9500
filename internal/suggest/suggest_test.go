package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealog/internal/meals/models"
)

func TestForIndexCyclesCatalog(t *testing.T) {
	for i := range 7 {
		assert.Equal(t, Catalog[i%3].Name, ForIndex(i).Name)
	}
}

func TestSuggest(t *testing.T) {
	records := []*models.MealRecord{
		{ID: "a", Date: "2024-07-22", Meals: []models.MealBucket{{Time: "朝", Items: []models.MealItem{{Name: "x", Calories: 999}}}}},
		{ID: "b", Date: "2024-07-23", Meals: []models.MealBucket{
			{Time: "昼", Items: []models.MealItem{{Name: "カレー", Calories: 700, Nutrients: models.Nutrients{Protein: 10, Fat: 20, Carbs: 90}}}},
			{Time: "夜", Items: []models.MealItem{{Name: "サラダ", Calories: 100, Nutrients: models.Nutrients{Protein: 2, Fat: 1, Carbs: 10}}}},
		}},
	}

	plan := Suggest(records, "2024-07-23")

	require.Len(t, plan.Suggestions, 3)
	assert.Equal(t, "朝", plan.Suggestions[0].Time)
	assert.Equal(t, "サバの塩焼き定食", plan.Suggestions[0].Recipe.Name)
	assert.Equal(t, "鶏むね肉のサラダ", plan.Suggestions[1].Recipe.Name)
	assert.Equal(t, "納豆ご飯と味噌汁", plan.Suggestions[2].Recipe.Name)

	assert.Equal(t, Macros{Calories: 1350, Protein: 70, Fat: 33, Carbs: 135}, plan.Total)
	assert.Equal(t, Macros{Calories: 800, Protein: 12, Fat: 21, Carbs: 100}, plan.Intake)
	assert.Equal(t, DailyTarget, plan.Target)
	assert.Equal(t, Macros{Calories: 1000, Protein: 48, Fat: 29, Carbs: 150}, plan.Remaining)
}

func TestSuggestWithoutRecord(t *testing.T) {
	plan := Suggest(nil, "2024-07-23")
	assert.Zero(t, plan.Intake)
	assert.Equal(t, DailyTarget, plan.Remaining)
}
