// Package olsgo provides a minimal Ordinary Least Squares (OLS) linear
// regression estimator for Go.
//
// The estimator fits a linear model by closed-form normal-equation solution,
// predicts target values for new inputs, and scores prediction quality with
// the coefficient of determination (R²). It is a basic statistical modeling
// utility for callers who already hold numeric tabular data in memory: there
// is no CLI, no persistence, and no config loading.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/olsgo/linear"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(3, 2, []float64{
//	        1, 1,
//	        1, 2,
//	        1, 3,
//	    })
//	    y := mat.NewDense(3, 1, []float64{1, 2, 3})
//
//	    lr := linear.NewLinearRegression()
//	    coef, err := lr.Fit(X, y)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("coefficients:", coef)
//
//	    pred, err := lr.Predict(mat.NewDense(1, 2, []float64{1, 4}))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("prediction:", pred.AtVec(0))
//	}
//
// # Packages
//
//   - linear: the OLS estimator (Fit, Predict, Score)
//   - table: ordered named-column tables consumed by Score
//   - metrics: regression metrics (R², MSE, RMSE, MAE)
//   - core/model: estimator state tag and interfaces
//   - core/parallel: chunked parallel execution helper
//   - pkg/errors: structured errors (ShapeError, NotFittedError, ...)
//   - pkg/log: structured logging for callers and examples
//
// # Numerical behavior
//
// Fit solves coef = (XᵀX)⁻¹ Xᵀ y with an explicit matrix inverse by default;
// a singular XᵀX fails the fit with ErrSingularMatrix rather than degrading
// to a pseudo-inverse. A QR-based solver is available behind the same Fit
// contract via linear.WithSolver(linear.SolverQR). Score leaves the
// zero-variance denominator unguarded: if all true values are identical the
// raw IEEE division result (±Inf or NaN) propagates to the caller.
//
// Estimator instances are not internally synchronized. Concurrent use of
// distinct instances is safe; a shared instance requires the caller to
// serialize Fit against Predict and Score.
package olsgo
