package errors

import (
	"math"
)

// HasNaN reports whether any element of the matrix is NaN.
func HasNaN(matrix interface{ At(int, int) float64 }, rows, cols int) bool {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if math.IsNaN(matrix.At(i, j)) {
				return true
			}
		}
	}
	return false
}

// HasInf reports whether any element of the matrix is +Inf or -Inf.
func HasInf(matrix interface{ At(int, int) float64 }, rows, cols int) bool {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if math.IsInf(matrix.At(i, j), 0) {
				return true
			}
		}
	}
	return false
}

// CheckVector checks all values in a vector for NaN or Inf
// and returns a ValueError if numerical instability is detected.
func CheckVector(op string, values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) {
			return NewValueError(op, "input contains NaN values")
		}
		if math.IsInf(v, 0) {
			return NewValueError(op, "input contains infinite values")
		}
	}
	return nil
}
