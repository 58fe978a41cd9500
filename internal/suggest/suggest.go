// Package suggest serves the static meal suggestions: a fixed recipe table
// cycled over the meal times, with today's intake next to the daily target.
package suggest

import (
	"mealog/internal/meals/models"
)

// Recipe is one catalog entry.
type Recipe struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Fat         float64 `json:"fat"`
	Carbs       float64 `json:"carbs"`
	Image       string  `json:"image,omitempty"`
}

// Macros is a calorie and macro summary.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

func (m Macros) add(r Recipe) Macros {
	m.Calories += r.Calories
	m.Protein += r.Protein
	m.Fat += r.Fat
	m.Carbs += r.Carbs
	return m
}

func (m Macros) sub(o Macros) Macros {
	return Macros{
		Calories: m.Calories - o.Calories,
		Protein:  m.Protein - o.Protein,
		Fat:      m.Fat - o.Fat,
		Carbs:    m.Carbs - o.Carbs,
	}
}

// Catalog is the fixed recipe table.
var Catalog = []Recipe{
	{ID: "1", Name: "サバの塩焼き定食", Description: "たんぱく質・脂質バランス良好。ご飯・味噌汁・小鉢付き。", Calories: 600, Protein: 30, Fat: 20, Carbs: 60, Image: "recipes/1.jpg"},
	{ID: "2", Name: "鶏むね肉のサラダ", Description: "低カロリー高たんぱく。野菜たっぷり。", Calories: 350, Protein: 25, Fat: 5, Carbs: 15, Image: "recipes/2.jpg"},
	{ID: "3", Name: "納豆ご飯と味噌汁", Description: "手軽で栄養バランスも良い和朝食。", Calories: 400, Protein: 15, Fat: 8, Carbs: 60, Image: "recipes/3.jpg"},
}

// MealTimes are the labels suggestions are produced for, in order.
var MealTimes = []string{"朝", "昼", "夜"}

// DailyTarget is the reference intake shown next to today's totals.
var DailyTarget = Macros{Calories: 1800, Protein: 60, Fat: 50, Carbs: 250}

// Suggestion pairs a meal time with its recipe.
type Suggestion struct {
	Time   string `json:"time"`
	Recipe Recipe `json:"recipe"`
}

// Plan is the suggestion view for one date.
type Plan struct {
	Date        string       `json:"date"`
	Suggestions []Suggestion `json:"suggestions"`
	Total       Macros       `json:"total"`
	Intake      Macros       `json:"intake"`
	Target      Macros       `json:"target"`
	// Remaining is Target minus Intake; negative when over target.
	Remaining Macros `json:"remaining"`
}

// ForIndex returns the recipe for the i-th meal time.
func ForIndex(i int) Recipe {
	if i < 0 {
		i = -i
	}
	return Catalog[i%len(Catalog)]
}

// Suggest builds the plan for date from a snapshot of the records.
func Suggest(records []*models.MealRecord, date string) Plan {
	plan := Plan{
		Date:        date,
		Suggestions: make([]Suggestion, len(MealTimes)),
		Target:      DailyTarget,
	}
	for i, t := range MealTimes {
		r := ForIndex(i)
		plan.Suggestions[i] = Suggestion{Time: t, Recipe: r}
		plan.Total = plan.Total.add(r)
	}

	if i := models.IndexOf(records, date); i >= 0 {
		t := records[i].Totals()
		plan.Intake = Macros{
			Calories: t.Calories,
			Protein:  t.Nutrients.Protein,
			Fat:      t.Nutrients.Fat,
			Carbs:    t.Nutrients.Carbs,
		}
	}
	plan.Remaining = plan.Target.sub(plan.Intake)
	return plan
}
