package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealog/internal/meals/models"
)

func record(date string, items ...models.MealItem) *models.MealRecord {
	return &models.MealRecord{ID: date, Date: date, Meals: []models.MealBucket{{Time: "朝", Items: items}}}
}

func food(kcal, p, f, c float64) models.MealItem {
	return models.MealItem{Name: "x", Calories: kcal, Nutrients: models.Nutrients{Protein: p, Fat: f, Carbs: c}}
}

func TestDayTotals(t *testing.T) {
	r := record("2024-07-23", food(700, 10, 20, 90), food(300, 5, 5, 40))
	r.Meals = append(r.Meals, models.MealBucket{Time: "夜", Items: []models.MealItem{food(100, 1, 1, 1)}})

	got := DayTotals(r)
	assert.Equal(t, 1100.0, got.Calories)
	assert.Equal(t, 16.0, got.Nutrients.Protein)
	assert.Equal(t, 26.0, got.Nutrients.Fat)
	assert.Equal(t, 131.0, got.Nutrients.Carbs)

	assert.Zero(t, DayTotals(nil).Calories)
}

func TestTrend(t *testing.T) {
	var records []*models.MealRecord
	// prepended order, like the record store keeps them
	for day := 1; day <= 10; day++ {
		records = append([]*models.MealRecord{record(fmt.Sprintf("2024-07-%02d", day), food(float64(day*100), 1, 2, 3))}, records...)
	}

	t.Run("takes the last seven dates ascending", func(t *testing.T) {
		points := Trend(records, 0)
		require.Len(t, points, 7)
		assert.Equal(t, "2024-07-04", points[0].Date)
		assert.Equal(t, "07-04", points[0].Label)
		assert.Equal(t, 400.0, points[0].Calories)
		assert.Equal(t, "2024-07-10", points[6].Date)
		assert.Equal(t, 1000.0, points[6].Calories)
		assert.Equal(t, 3.0, points[6].Carbs)
	})

	t.Run("returns everything when there are fewer records", func(t *testing.T) {
		points := Trend(records[:3], 7)
		require.Len(t, points, 3)
		assert.Equal(t, "2024-07-08", points[0].Date)
	})

	t.Run("skips days without a record", func(t *testing.T) {
		points := Trend([]*models.MealRecord{record("2024-07-30"), record("2024-07-01")}, 7)
		require.Len(t, points, 2)
		assert.Equal(t, []string{"07-01", "07-30"}, []string{points[0].Label, points[1].Label})
	})

	t.Run("empty collection", func(t *testing.T) {
		assert.Empty(t, Trend(nil, 7))
	})
}

func TestMarkedDates(t *testing.T) {
	records := []*models.MealRecord{
		record("2024-08-01", food(1, 0, 0, 0)),
		record("2024-07-23", food(1, 0, 0, 0)),
		record("2024-07-02", food(1, 0, 0, 0)),
		{ID: "empty", Date: "2024-07-10"},
	}

	assert.Equal(t, []string{"2024-07-02", "2024-07-23", "2024-08-01"}, MarkedDates(records, ""))
	assert.Equal(t, []string{"2024-07-02", "2024-07-23"}, MarkedDates(records, "2024-07"))
	assert.Empty(t, MarkedDates(records, "2023-01"))
}
