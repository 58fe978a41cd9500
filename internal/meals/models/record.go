package models

// MealRecord holds everything logged for one calendar date.
//
// Invariants (maintained by the record service, not by this type):
//   - Date is unique across the collection
//   - Meals is unique by Time
//   - Meals is never empty and no bucket has zero Items
type MealRecord struct {
	ID    string       `json:"id"`
	Date  string       `json:"date"`
	Meals []MealBucket `json:"meals"`
	Memo  string       `json:"memo,omitempty"`
}

// MealBucket groups items logged under one time-of-day label (朝, 昼, 夜, 間食, ...).
type MealBucket struct {
	Time  string     `json:"time"`
	Items []MealItem `json:"items"`
}

// MealItem is one logged food entry.
type MealItem struct {
	Name      string    `json:"name"`
	Calories  float64   `json:"calories"`
	Nutrients Nutrients `json:"nutrients"`
	ImageURL  string    `json:"imageUrl,omitempty"`
}

// Clone returns a deep copy of r.
func (r *MealRecord) Clone() *MealRecord {
	if r == nil {
		return nil
	}
	out := *r
	out.Meals = make([]MealBucket, len(r.Meals))
	for i, b := range r.Meals {
		out.Meals[i] = b.Clone()
	}
	return &out
}

// Bucket returns the index of the bucket labelled time, or -1.
func (r *MealRecord) Bucket(time string) int {
	for i := range r.Meals {
		if r.Meals[i].Time == time {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of b.
func (b MealBucket) Clone() MealBucket {
	out := MealBucket{Time: b.Time, Items: make([]MealItem, len(b.Items))}
	for i, it := range b.Items {
		out.Items[i] = it.Clone()
	}
	return out
}

// Clone returns a deep copy of it.
func (it MealItem) Clone() MealItem {
	it.Nutrients = it.Nutrients.Clone()
	return it
}

// CloneAll deep copies a collection.
func CloneAll(records []*MealRecord) []*MealRecord {
	out := make([]*MealRecord, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}

// IndexOf returns the position of the record for date, or -1.
func IndexOf(records []*MealRecord, date string) int {
	for i, r := range records {
		if r.Date == date {
			return i
		}
	}
	return -1
}
