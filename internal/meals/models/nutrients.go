package models

import (
	"encoding/json"
	"maps"
)

// Macro keys always present in the JSON form of Nutrients.
const (
	KeyProtein = "protein"
	KeyFat     = "fat"
	KeyCarbs   = "carbs"
)

// Nutrients carries the three required macros in grams plus any additional
// numeric nutrients (sodium, fiber, ...). It marshals to one flat object:
//
//	{"protein": 10, "fat": 20, "carbs": 90, "fiber": 3}
type Nutrients struct {
	Protein float64
	Fat     float64
	Carbs   float64
	Extra   map[string]float64
}

// Clone returns a copy of n that shares no map with it.
func (n Nutrients) Clone() Nutrients {
	if n.Extra != nil {
		n.Extra = maps.Clone(n.Extra)
	}
	return n
}

// Add returns the element-wise sum of n and o. Extra keys are merged.
func (n Nutrients) Add(o Nutrients) Nutrients {
	out := Nutrients{
		Protein: n.Protein + o.Protein,
		Fat:     n.Fat + o.Fat,
		Carbs:   n.Carbs + o.Carbs,
	}
	if len(n.Extra)+len(o.Extra) > 0 {
		out.Extra = make(map[string]float64, len(n.Extra)+len(o.Extra))
		for k, v := range n.Extra {
			out.Extra[k] += v
		}
		for k, v := range o.Extra {
			out.Extra[k] += v
		}
	}
	return out
}

func (n Nutrients) MarshalJSON() ([]byte, error) {
	flat := make(map[string]float64, 3+len(n.Extra))
	for k, v := range n.Extra {
		flat[k] = v
	}
	flat[KeyProtein] = n.Protein
	flat[KeyFat] = n.Fat
	flat[KeyCarbs] = n.Carbs
	return json.Marshal(flat)
}

func (n *Nutrients) UnmarshalJSON(data []byte) error {
	var flat map[string]float64
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	*n = Nutrients{
		Protein: flat[KeyProtein],
		Fat:     flat[KeyFat],
		Carbs:   flat[KeyCarbs],
	}
	delete(flat, KeyProtein)
	delete(flat, KeyFat)
	delete(flat, KeyCarbs)
	if len(flat) > 0 {
		n.Extra = flat
	}
	return nil
}
