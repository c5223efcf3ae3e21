// Package table provides a minimal ordered-column table of float64 values.
//
// The table is the input to the estimator's Score method: a mapping from
// column name to a numeric sequence, with every column holding one value per
// row. It is deliberately not tied to any dataframe library; anything that
// satisfies core/model.ColumnTable works in its place.
package table

import (
	"github.com/YuminosukeSato/olsgo/pkg/errors"
)

// Table は名前付き数値列を持つテーブル
type Table struct {
	names   []string // 挿入順を保持
	columns map[string][]float64
	nRows   int
}

// New は空のテーブルを作成する
func New() *Table {
	return &Table{
		columns: make(map[string][]float64),
	}
}

// FromColumns は列名から値列へのマップからテーブルを作成する。
// 全ての列は同じ長さでなければならない。反復順を決定的にするため、
// namesの順序で列を登録する。
func FromColumns(names []string, columns map[string][]float64) (*Table, error) {
	t := New()
	for _, name := range names {
		values, ok := columns[name]
		if !ok {
			return nil, errors.NewValueError("table.FromColumns", "column "+name+" missing from values map")
		}
		if err := t.AddColumn(name, values); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// AddColumn は列をテーブルに追加する。既存の列と長さが一致しない場合、
// または列名が重複する場合はエラーを返す。
func (t *Table) AddColumn(name string, values []float64) error {
	if _, exists := t.columns[name]; exists {
		return errors.NewValueError("Table.AddColumn", "column "+name+" already exists")
	}
	if len(t.names) > 0 && len(values) != t.nRows {
		return errors.NewShapeError("Table.AddColumn", "all columns must have the same length")
	}

	col := make([]float64, len(values))
	copy(col, values)

	t.names = append(t.names, name)
	t.columns[name] = col
	t.nRows = len(col)
	return nil
}

// Column は指定された名前の列のコピーを返す
func (t *Table) Column(name string) ([]float64, error) {
	col, ok := t.columns[name]
	if !ok {
		return nil, errors.NewValueError("Table.Column", "column "+name+" not found")
	}
	out := make([]float64, len(col))
	copy(out, col)
	return out, nil
}

// ColumnNames は列名を挿入順で返す
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Len はテーブルの行数を返す
func (t *Table) Len() int {
	return t.nRows
}
