package metrics

import (
	"math"

	"github.com/YuminosukeSato/olsgo/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// R2Score は決定係数（R²）を計算する
//
//	R² = 1 - SSE/SST
//	SST = Σ (yTrue_i - mean(yTrue))²
//	SSE = Σ (yTrue_i - yPred_i)²
//
// SSTが0の場合（全ての真値が同一）、分母0の除算結果（±Inf または NaN）を
// そのまま返す。これは意図的に元の挙動を保存しているもので、ガードしない。
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("R2Score", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewShapeError("R2Score", "yTrue and yPred must have the same length")
	}

	var yMean float64
	for i := 0; i < n; i++ {
		yMean += yTrue.AtVec(i)
	}
	yMean /= float64(n)

	var sst, sse float64
	for i := 0; i < n; i++ {
		dMean := yTrue.AtVec(i) - yMean
		dPred := yTrue.AtVec(i) - yPred.AtVec(i)
		sst += dMean * dMean
		sse += dPred * dPred
	}

	return 1 - sse/sst, nil
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewShapeError("MSE", "yTrue and yPred must have the same length")
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}

	return sum / float64(n), nil
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MAE", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewShapeError("MAE", "yTrue and yPred must have the same length")
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue.AtVec(i) - yPred.AtVec(i))
	}

	return sum / float64(n), nil
}
