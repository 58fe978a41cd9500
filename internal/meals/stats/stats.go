// Package stats derives read-only views from a snapshot of the record
// collection: per-day totals, the calorie trend and calendar marks.
package stats

import (
	"slices"
	"strings"

	"mealog/internal/meals/models"
)

// DefaultTrendDays is the window used when Trend gets a non-positive count.
const DefaultTrendDays = 7

// DayTotals sums calories and macros over every item of r.
func DayTotals(r *models.MealRecord) models.Totals {
	return r.Totals()
}

// Point is one day of the trend.
type Point struct {
	Date     string  `json:"date"`
	Label    string  `json:"label"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// Trend returns one point for each of the last days records, oldest first.
// It walks existing records, so days without a record are skipped rather than
// reported as zero.
func Trend(records []*models.MealRecord, days int) []Point {
	if days <= 0 {
		days = DefaultTrendDays
	}
	sorted := sortedByDate(records)
	if len(sorted) > days {
		sorted = sorted[len(sorted)-days:]
	}

	points := make([]Point, 0, len(sorted))
	for _, r := range sorted {
		t := DayTotals(r)
		points = append(points, Point{
			Date:     r.Date,
			Label:    label(r.Date),
			Calories: t.Calories,
			Protein:  t.Nutrients.Protein,
			Fat:      t.Nutrients.Fat,
			Carbs:    t.Nutrients.Carbs,
		})
	}
	return points
}

// MarkedDates returns the sorted distinct dates that have a record. A
// non-empty month ("2024-07") keeps only dates in that month.
func MarkedDates(records []*models.MealRecord, month string) []string {
	dates := make([]string, 0, len(records))
	for _, r := range records {
		if r == nil || len(r.Meals) == 0 {
			continue
		}
		if month != "" && !strings.HasPrefix(r.Date, month+"-") {
			continue
		}
		dates = append(dates, r.Date)
	}
	slices.Sort(dates)
	return slices.Compact(dates)
}

func sortedByDate(records []*models.MealRecord) []*models.MealRecord {
	out := make([]*models.MealRecord, 0, len(records))
	for _, r := range records {
		if r != nil {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b *models.MealRecord) int {
		return strings.Compare(a.Date, b.Date)
	})
	return out
}

// label turns "2024-07-23" into "07-23".
func label(date string) string {
	if len(date) == len("2006-01-02") {
		return date[5:]
	}
	return date
}
