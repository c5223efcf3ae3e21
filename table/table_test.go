package table

import (
	"testing"

	"github.com/YuminosukeSato/olsgo/pkg/errors"
)

func TestFromColumns(t *testing.T) {
	tbl, err := FromColumns(
		[]string{"true", "pred"},
		map[string][]float64{
			"true": {1, 2, 3, 4},
			"pred": {1.1, 2.1, 2.9, 4.0},
		},
	)
	if err != nil {
		t.Fatalf("FromColumns failed: %v", err)
	}

	if tbl.Len() != 4 {
		t.Errorf("Len() = %d, want 4", tbl.Len())
	}

	names := tbl.ColumnNames()
	if len(names) != 2 || names[0] != "true" || names[1] != "pred" {
		t.Errorf("ColumnNames() = %v, want [true pred]", names)
	}

	col, err := tbl.Column("true")
	if err != nil {
		t.Fatalf("Column(true) failed: %v", err)
	}
	want := []float64{1, 2, 3, 4}
	for i := range want {
		if col[i] != want[i] {
			t.Errorf("Column(true)[%d] = %v, want %v", i, col[i], want[i])
		}
	}
}

func TestFromColumns_MissingName(t *testing.T) {
	_, err := FromColumns([]string{"a", "b"}, map[string][]float64{"a": {1}})
	if err == nil {
		t.Fatal("expected error for missing column values")
	}
	var valErr *errors.ValueError
	if !errors.As(err, &valErr) {
		t.Errorf("expected *ValueError, got %T", err)
	}
}

func TestAddColumn_LengthMismatch(t *testing.T) {
	tbl := New()
	if err := tbl.AddColumn("a", []float64{1, 2, 3}); err != nil {
		t.Fatalf("AddColumn(a) failed: %v", err)
	}

	err := tbl.AddColumn("b", []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for ragged column")
	}
	var shapeErr *errors.ShapeError
	if !errors.As(err, &shapeErr) {
		t.Errorf("expected *ShapeError, got %T", err)
	}
}

func TestAddColumn_Duplicate(t *testing.T) {
	tbl := New()
	if err := tbl.AddColumn("a", []float64{1}); err != nil {
		t.Fatalf("AddColumn failed: %v", err)
	}
	if err := tbl.AddColumn("a", []float64{2}); err == nil {
		t.Fatal("expected error for duplicate column name")
	}
}

func TestColumn_NotFound(t *testing.T) {
	tbl := New()
	if _, err := tbl.Column("nope"); err == nil {
		t.Fatal("expected error for unknown column")
	}
}

func TestColumn_ReturnsCopy(t *testing.T) {
	tbl := New()
	if err := tbl.AddColumn("a", []float64{1, 2}); err != nil {
		t.Fatalf("AddColumn failed: %v", err)
	}

	col, err := tbl.Column("a")
	if err != nil {
		t.Fatalf("Column failed: %v", err)
	}
	col[0] = 99

	again, _ := tbl.Column("a")
	if again[0] != 1 {
		t.Error("mutating the returned slice should not affect the table")
	}
}
