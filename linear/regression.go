// Package linear はOLS（最小二乗法）による線形回帰モデルを提供します。
package linear

import (
	"github.com/YuminosukeSato/olsgo/core/model"
	"github.com/YuminosukeSato/olsgo/core/parallel"
	"github.com/YuminosukeSato/olsgo/metrics"
	"github.com/YuminosukeSato/olsgo/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// LinearRegression は正規方程式による線形回帰モデル。
//
// 残差平方和（RSS）を最小化する係数 w を閉形式で求める:
//
//	coef = (XᵀX)⁻¹ Xᵀ y
//
// 切片項は自動では追加しない。必要な場合は呼び出し側がXに1の列を加えること。
//
// 内部で同期は行わない。Fitは係数を書き換え、Predict/Scoreはそれを読むため、
// 同一インスタンスを複数ゴルーチンで共有する場合は呼び出し側で直列化すること。
type LinearRegression struct {
	model.BaseEstimator               // 未学習/学習済みの状態タグ
	Coefficients        *mat.VecDense // 学習された係数（未学習時はnil）
	NFeatures           int           // 学習時の特徴量の数

	solver Solver
}

// NewLinearRegression は新しい線形回帰モデルを作成する
func NewLinearRegression(options ...Option) *LinearRegression {
	lr := &LinearRegression{
		solver: SolverInverse,
	}
	for _, opt := range options {
		opt(lr)
	}
	return lr
}

// 並列処理の閾値（この値以下の行数では逐次処理を使用）
const parallelThreshold = 1000

// Fit はモデルを訓練データで学習させ、学習した係数を返す。
//
// 入力の検証は次の順で行い、最初の失敗で即座にShapeErrorを返す:
//  1. Xが退化していない（0行または0列でない）こと
//  2. yが列ベクトル（n×1）であること
//  3. Xとyの行数が一致すること
//  4. 行数が特徴量数以上であること（劣決定系でないこと）
//
// XᵀXが特異な場合、ErrSingularMatrixをラップしたModelErrorを返す。
// 成功時は係数を内部状態として保存し（以前の値は上書き）、そのコピーを返す。
func (lr *LinearRegression) Fit(X, y mat.Matrix) (coef []float64, err error) {
	defer errors.Recover(&err, "LinearRegression.Fit")

	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewShapeError("LinearRegression.Fit", "X should be a 2D array")
	}

	ry, cy := y.Dims()
	if cy != 1 {
		return nil, errors.NewShapeError("LinearRegression.Fit", "y should be a 1D array")
	}

	if ry != r {
		return nil, errors.NewShapeError("LinearRegression.Fit", "number of examples in X and y should be equal")
	}

	if r < c {
		return nil, errors.NewShapeError("LinearRegression.Fit", "number of examples in X should be greater than the number of features")
	}

	// y を VecDense に変換
	yVec := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	var weights *mat.VecDense
	switch lr.solver {
	case SolverQR:
		weights, err = solveQR(X, yVec, c)
	default:
		weights, err = solveInverse(X, yVec, c)
	}
	if err != nil {
		return nil, err
	}

	lr.Coefficients = weights
	lr.NFeatures = c
	lr.SetFitted()

	out := make([]float64, c)
	copy(out, weights.RawVector().Data)
	return out, nil
}

// solveInverse は正規方程式を明示的な逆行列で解く
func solveInverse(X mat.Matrix, yVec *mat.VecDense, c int) (*mat.VecDense, error) {
	var xt mat.Dense
	xt.CloneFrom(X.T())

	var xtx mat.Dense
	xtx.Mul(&xt, X)

	// 逆行列を計算
	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, errors.NewModelError("LinearRegression.Fit", "singular matrix", errors.ErrSingularMatrix)
	}

	// X^T * y を計算
	var xty mat.VecDense
	xty.MulVec(&xt, yVec)

	// 係数を計算: (X^T * X)^(-1) * X^T * y
	weights := mat.NewVecDense(c, nil)
	weights.MulVec(&xtxInv, &xty)
	return weights, nil
}

// solveQR はQR分解と後退代入で最小二乗系を解く
func solveQR(X mat.Matrix, yVec *mat.VecDense, c int) (*mat.VecDense, error) {
	qr := new(mat.QR)
	qr.Factorize(X)

	q := new(mat.Dense)
	rMat := new(mat.Dense)
	qr.QTo(q)
	qr.RTo(rMat)

	// yq = yᵀ Q （先頭c成分のみ使用）
	var yq mat.Dense
	yq.Mul(yVec.T(), q)

	weights := mat.NewVecDense(c, nil)
	for i := c - 1; i >= 0; i-- {
		v := yq.At(0, i)
		for j := i + 1; j < c; j++ {
			v -= weights.AtVec(j) * rMat.At(i, j)
		}
		if rMat.At(i, i) == 0 {
			return nil, errors.NewModelError("LinearRegression.Fit", "singular matrix", errors.ErrSingularMatrix)
		}
		weights.SetVec(i, v/rMat.At(i, i))
	}
	return weights, nil
}

// Predict は入力データに対する予測 predictions = X @ coef を行う。
//
// 検証は次の順で行う: 学習済みであること、Xが退化していないこと、
// 特徴量数が係数の数と一致すること、NaNを含まないこと、無限大を含まないこと。
// 状態は変更しない。同じ入力に対して常に同じ出力を返す。
func (lr *LinearRegression) Predict(X mat.Matrix) (predictions *mat.VecDense, err error) {
	defer errors.Recover(&err, "LinearRegression.Predict")

	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}

	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewShapeError("LinearRegression.Predict", "X should be a 2D array")
	}

	if c != lr.NFeatures {
		return nil, errors.NewShapeError("LinearRegression.Predict", "number of features in X should be equal to the number of coefficients")
	}

	// mat.Matrixの要素はfloat64であるため、非数値の検査は型システムが
	// 静的に保証する。NaNと無限大は動的に検査する。
	if errors.HasNaN(X, r, c) {
		return nil, errors.NewValueError("LinearRegression.Predict", "input contains NaN values")
	}
	if errors.HasInf(X, r, c) {
		return nil, errors.NewValueError("LinearRegression.Predict", "input contains infinite values")
	}

	preds := mat.NewVecDense(r, nil)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			var sum float64
			for j := 0; j < c; j++ {
				sum += X.At(i, j) * lr.Coefficients.AtVec(j)
			}
			preds.SetVec(i, sum)
		}
	})

	return preds, nil
}

// Score はテーブルの2列（真値列と予測値列）から決定係数（R²）を計算する。
//
// テーブルがnilの場合はTableError、行数が2未満の場合はValueErrorを返す。
// 真値列の分散が0の場合、分母0の除算結果（±Inf または NaN）をそのまま返す。
// 学習状態には依存せず、状態も変更しない。
func (lr *LinearRegression) Score(tbl model.ColumnTable, trueColumn, predColumn string) (float64, error) {
	if tbl == nil {
		return 0, errors.NewTableError("LinearRegression.Score", "input must be a table")
	}

	if tbl.Len() < 2 {
		return 0, errors.NewValueError("LinearRegression.Score", "table must have at least two data points")
	}

	yTrue, err := tbl.Column(trueColumn)
	if err != nil {
		return 0, err
	}
	yPred, err := tbl.Column(predColumn)
	if err != nil {
		return 0, err
	}

	return metrics.R2Score(
		mat.NewVecDense(len(yTrue), yTrue),
		mat.NewVecDense(len(yPred), yPred),
	)
}

// Coef は学習された係数のコピーを返す。未学習の場合はnilを返す。
func (lr *LinearRegression) Coef() []float64 {
	if lr.Coefficients == nil {
		return nil
	}
	out := make([]float64, lr.Coefficients.Len())
	copy(out, lr.Coefficients.RawVector().Data)
	return out
}

// Reset はモデルを未学習の初期状態に戻す
func (lr *LinearRegression) Reset() {
	lr.BaseEstimator.Reset()
	lr.Coefficients = nil
	lr.NFeatures = 0
}
