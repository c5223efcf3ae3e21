package linear_test

import (
	"fmt"

	"github.com/YuminosukeSato/olsgo/linear"
	"github.com/YuminosukeSato/olsgo/table"
	"gonum.org/v1/gonum/mat"
)

// ExampleLinearRegression demonstrates the full fit / predict / score cycle.
func ExampleLinearRegression() {
	// First column is an intercept term of ones, second is the feature.
	X := mat.NewDense(3, 2, []float64{
		1, 1,
		1, 2,
		1, 3,
	})
	y := mat.NewDense(3, 1, []float64{1, 2, 3})

	lr := linear.NewLinearRegression()
	coef, err := lr.Fit(X, y)
	if err != nil {
		fmt.Println("fit:", err)
		return
	}
	fmt.Printf("slope: %.1f\n", coef[1])

	pred, err := lr.Predict(mat.NewDense(1, 2, []float64{1, 4}))
	if err != nil {
		fmt.Println("predict:", err)
		return
	}
	fmt.Printf("prediction: %.1f\n", pred.AtVec(0))

	// Output: slope: 1.0
	// prediction: 4.0
}

// ExampleLinearRegression_Score computes R² from a named-column table.
func ExampleLinearRegression_Score() {
	tbl, err := table.FromColumns(
		[]string{"true", "pred"},
		map[string][]float64{
			"true": {1, 2, 3, 4},
			"pred": {1, 2, 3, 4},
		},
	)
	if err != nil {
		fmt.Println("table:", err)
		return
	}

	lr := linear.NewLinearRegression()
	r2, err := lr.Score(tbl, "true", "pred")
	if err != nil {
		fmt.Println("score:", err)
		return
	}
	fmt.Printf("R²: %.1f\n", r2)

	// Output: R²: 1.0
}

// ExampleNewLinearRegression_withSolver selects the QR solver.
func ExampleNewLinearRegression_withSolver() {
	X := mat.NewDense(3, 1, []float64{1, 2, 3})
	y := mat.NewDense(3, 1, []float64{2, 4, 6})

	lr := linear.NewLinearRegression(linear.WithSolver(linear.SolverQR))
	coef, err := lr.Fit(X, y)
	if err != nil {
		fmt.Println("fit:", err)
		return
	}
	fmt.Printf("coef: [%.1f]\n", coef[0])

	// Output: coef: [2.0]
}
