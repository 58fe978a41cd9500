package models

// Totals is the sum of calories and nutrients over a set of items.
type Totals struct {
	Calories  float64   `json:"calories"`
	Nutrients Nutrients `json:"nutrients"`
}

// Add accumulates one item.
func (t Totals) Add(it MealItem) Totals {
	t.Calories += it.Calories
	t.Nutrients = t.Nutrients.Add(it.Nutrients)
	return t
}

// Totals sums every item in every bucket of r.
func (r *MealRecord) Totals() Totals {
	var t Totals
	if r == nil {
		return t
	}
	for _, b := range r.Meals {
		for _, it := range b.Items {
			t = t.Add(it)
		}
	}
	return t
}

// ItemCount returns the number of items across all buckets.
func (r *MealRecord) ItemCount() int {
	n := 0
	for _, b := range r.Meals {
		n += len(b.Items)
	}
	return n
}
