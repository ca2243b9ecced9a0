package selection

import "gonum.org/v1/gonum/floats"

// TotalValue sums the values of the picked items.
func TotalValue(picked []Item) float64 {
	values := make([]float64, len(picked))
	for i, item := range picked {
		values[i] = item.Value
	}
	return floats.Sum(values)
}

// CappedValue returns an objective that sums the picked values but
// scores a selection whose total weight exceeds capacity as worthless.
func CappedValue(capacity float64) Objective {
	return func(picked []Item) float64 {
		values := make([]float64, len(picked))
		weights := make([]float64, len(picked))
		for i, item := range picked {
			values[i] = item.Value
			weights[i] = item.Weight
		}
		if floats.Sum(weights) > capacity {
			return 0
		}
		return floats.Sum(values)
	}
}
