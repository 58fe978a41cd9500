package service

import (
	"fmt"

	"mealog/internal/meals/models"
	dErrors "mealog/pkg/domain-errors"
)

// The functions below mutate a collection that the caller already owns
// (a deep copy of the committed state). They never touch storage.

// addItem appends item to the bucket for label, creating the bucket and the
// record as needed. New records are prepended.
func addItem(records []*models.MealRecord, newID func() string, date, label string, item models.MealItem) ([]*models.MealRecord, *models.MealRecord) {
	item = item.Clone()
	i := models.IndexOf(records, date)
	if i < 0 {
		r := &models.MealRecord{
			ID:    newID(),
			Date:  date,
			Meals: []models.MealBucket{{Time: label, Items: []models.MealItem{item}}},
		}
		return append([]*models.MealRecord{r}, records...), r
	}

	r := records[i]
	if b := r.Bucket(label); b >= 0 {
		r.Meals[b].Items = append(r.Meals[b].Items, item)
	} else {
		r.Meals = append(r.Meals, models.MealBucket{Time: label, Items: []models.MealItem{item}})
	}
	return records, r
}

// locate finds the record and bucket for date and label. ok is false when
// either is missing.
func locate(records []*models.MealRecord, date, label string) (ri, bi int, ok bool) {
	ri = models.IndexOf(records, date)
	if ri < 0 {
		return -1, -1, false
	}
	bi = records[ri].Bucket(label)
	if bi < 0 {
		return ri, -1, false
	}
	return ri, bi, true
}

func checkIndex(date, label string, index, n int) error {
	if index < 0 || index >= n {
		return dErrors.New(dErrors.CodeIndexOutOfRange,
			fmt.Sprintf("item %d does not exist in %s %s (%d items)", index, date, label, n))
	}
	return nil
}

// editItem replaces the item at index. changed is false when the record or
// bucket does not exist.
func editItem(records []*models.MealRecord, date, label string, index int, item models.MealItem) (changed bool, err error) {
	ri, bi, ok := locate(records, date, label)
	if !ok {
		return false, nil
	}
	items := records[ri].Meals[bi].Items
	if err := checkIndex(date, label, index, len(items)); err != nil {
		return false, err
	}
	items[index] = item.Clone()
	return true, nil
}

// deleteItem removes the item at index, pruning an emptied bucket and then an
// emptied record.
func deleteItem(records []*models.MealRecord, date, label string, index int) (out []*models.MealRecord, changed, recordRemoved bool, err error) {
	ri, bi, ok := locate(records, date, label)
	if !ok {
		return records, false, false, nil
	}
	r := records[ri]
	items := r.Meals[bi].Items
	if err := checkIndex(date, label, index, len(items)); err != nil {
		return records, false, false, err
	}

	r.Meals[bi].Items = append(items[:index], items[index+1:]...)
	if len(r.Meals[bi].Items) > 0 {
		return records, true, false, nil
	}
	r.Meals = append(r.Meals[:bi], r.Meals[bi+1:]...)
	if len(r.Meals) > 0 {
		return records, true, false, nil
	}
	return append(records[:ri], records[ri+1:]...), true, true, nil
}

func setMemo(records []*models.MealRecord, date, memo string) bool {
	i := models.IndexOf(records, date)
	if i < 0 {
		return false
	}
	records[i].Memo = memo
	return true
}
