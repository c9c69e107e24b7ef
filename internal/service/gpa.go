package service

import "fmt"

// ComputeGPA returns the credit-weighted grade point average.
func ComputeGPA(grades, credits []float64) (float64, error) {
	if len(grades) == 0 || len(grades) != len(credits) {
		return 0, fmt.Errorf("grades and credits must be non-empty and of equal length")
	}

	var weighted, total float64
	for i := range grades {
		if credits[i] <= 0 {
			return 0, fmt.Errorf("credits must be positive")
		}
		weighted += grades[i] * credits[i]
		total += credits[i]
	}
	return weighted / total, nil
}
