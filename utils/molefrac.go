package utils

import "fmt"

// NoPureIndex selects the plain one-component composition [1.0]
const NoPureIndex = -1

// MoleFractions builds the composition used for a pure-fluid calculation.
// With index == NoPureIndex it is [1.0]; otherwise it is a vector of the given
// length with 1.0 at index and 0 elsewhere, isolating one component of a
// multi-component model.
func MoleFractions(index, length int) ([]float64, error) {
	if index == NoPureIndex {
		return []float64{1.0}, nil
	}
	if length < 1 || index < 0 || index >= length {
		return nil, fmt.Errorf("utils: pure index %d out of range for length %d", index, length)
	}
	z := make([]float64, length)
	z[index] = 1.0
	return z, nil
}
