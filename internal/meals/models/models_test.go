package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() *MealRecord {
	return &MealRecord{
		ID:   "1721692800000",
		Date: "2024-07-23",
		Meals: []MealBucket{
			{Time: "昼", Items: []MealItem{
				{Name: "カレー", Calories: 700, Nutrients: Nutrients{Protein: 10, Fat: 20, Carbs: 90}},
				{Name: "サラダ", Calories: 80, Nutrients: Nutrients{Protein: 2, Fat: 1, Carbs: 8, Extra: map[string]float64{"fiber": 3}}},
			}},
			{Time: "夜", Items: []MealItem{
				{Name: "焼き魚", Calories: 300, Nutrients: Nutrients{Protein: 25, Fat: 12, Carbs: 0}, ImageURL: "file:///photos/1.jpg"},
			}},
		},
		Memo: "美味しかった",
	}
}

func TestNutrientsJSON(t *testing.T) {
	t.Run("marshals to a flat object", func(t *testing.T) {
		n := Nutrients{Protein: 10, Fat: 20, Carbs: 90, Extra: map[string]float64{"sodium": 1.2}}
		data, err := json.Marshal(n)
		require.NoError(t, err)
		assert.JSONEq(t, `{"protein":10,"fat":20,"carbs":90,"sodium":1.2}`, string(data))
	})

	t.Run("named macros win over extra keys with the same name", func(t *testing.T) {
		n := Nutrients{Protein: 10, Extra: map[string]float64{"protein": 99}}
		data, err := json.Marshal(n)
		require.NoError(t, err)
		assert.JSONEq(t, `{"protein":10,"fat":0,"carbs":0}`, string(data))
	})

	t.Run("unmarshal splits macros from extras", func(t *testing.T) {
		var n Nutrients
		require.NoError(t, json.Unmarshal([]byte(`{"protein":10,"fat":20,"carbs":90,"fiber":4}`), &n))
		assert.Equal(t, Nutrients{Protein: 10, Fat: 20, Carbs: 90, Extra: map[string]float64{"fiber": 4}}, n)
	})

	t.Run("missing macros default to zero and no extras stay nil", func(t *testing.T) {
		var n Nutrients
		require.NoError(t, json.Unmarshal([]byte(`{"protein":5}`), &n))
		assert.Equal(t, Nutrients{Protein: 5}, n)
		assert.Nil(t, n.Extra)
	})

	t.Run("rejects non-numeric values", func(t *testing.T) {
		var n Nutrients
		assert.Error(t, json.Unmarshal([]byte(`{"protein":"lots"}`), &n))
	})
}

func TestRecordJSONLayout(t *testing.T) {
	data, err := json.Marshal([]*MealRecord{sampleRecord()})
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "2024-07-23", raw[0]["date"])
	assert.Equal(t, "美味しかった", raw[0]["memo"])

	meals := raw[0]["meals"].([]any)
	dinner := meals[1].(map[string]any)["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "file:///photos/1.jpg", dinner["imageUrl"])

	lunch := meals[0].(map[string]any)["items"].([]any)[0].(map[string]any)
	_, hasImage := lunch["imageUrl"]
	assert.False(t, hasImage, "empty imageUrl is omitted")

	var back []*MealRecord
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []*MealRecord{sampleRecord()}, back)
}

func TestCloneIsDeep(t *testing.T) {
	orig := sampleRecord()
	c := orig.Clone()
	require.Equal(t, orig, c)

	c.Meals[0].Items[0].Name = "ラーメン"
	c.Meals[0].Items[1].Nutrients.Extra["fiber"] = 100
	c.Meals = append(c.Meals, MealBucket{Time: "間食"})

	assert.Equal(t, "カレー", orig.Meals[0].Items[0].Name)
	assert.Equal(t, float64(3), orig.Meals[0].Items[1].Nutrients.Extra["fiber"])
	assert.Len(t, orig.Meals, 2)
}

func TestTotals(t *testing.T) {
	totals := sampleRecord().Totals()

	assert.Equal(t, float64(1080), totals.Calories)
	assert.Equal(t, float64(37), totals.Nutrients.Protein)
	assert.Equal(t, float64(33), totals.Nutrients.Fat)
	assert.Equal(t, float64(98), totals.Nutrients.Carbs)
	assert.Equal(t, float64(3), totals.Nutrients.Extra["fiber"])
	assert.Equal(t, 3, sampleRecord().ItemCount())

	var none *MealRecord
	assert.Equal(t, Totals{}, none.Totals())
}

func TestLookups(t *testing.T) {
	r := sampleRecord()
	assert.Equal(t, 1, r.Bucket("夜"))
	assert.Equal(t, -1, r.Bucket("朝"))

	records := []*MealRecord{{Date: "2024-07-24"}, r}
	assert.Equal(t, 1, IndexOf(records, "2024-07-23"))
	assert.Equal(t, -1, IndexOf(records, "2024-07-25"))
}
