package model

import "gonum.org/v1/gonum/mat"

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させ、学習した係数を返す
	Fit(X, y mat.Matrix) ([]float64, error)
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データに対する予測を行う
	Predict(X mat.Matrix) (*mat.VecDense, error)
}

// ColumnTable は名前付き数値列へのアクセスを提供するテーブルのインターフェース。
// 列名から同一長の数値列への対応があれば、どのテーブル実装でも満たせる。
type ColumnTable interface {
	// Column は指定された名前の列を返す
	Column(name string) ([]float64, error)
	// Len はテーブルの行数を返す
	Len() int
}

// Scorer は予測品質を評価できるモデルのインターフェース
type Scorer interface {
	// Score はテーブルの2列から決定係数（R²）を計算する
	Score(tbl ColumnTable, trueColumn, predColumn string) (float64, error)
}
