package model

import (
	"encoding/json"
	"fmt"
	"math"
)

// IntList accepts either a JSON number or an array of numbers and always
// holds the list form.
type IntList []int

func (l *IntList) UnmarshalJSON(data []byte) error {
	var many []int
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one float64
	if err := json.Unmarshal(data, &one); err != nil {
		return fmt.Errorf("reps must be a number or an array of numbers")
	}
	*l = IntList{int(math.Round(one))}
	return nil
}

// FloatList is the per-set weights counterpart of IntList.
type FloatList []float64

func (l *FloatList) UnmarshalJSON(data []byte) error {
	var many []float64
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one float64
	if err := json.Unmarshal(data, &one); err != nil {
		return fmt.Errorf("weights must be a number or an array of numbers")
	}
	*l = FloatList{one}
	return nil
}
