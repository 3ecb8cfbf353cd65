package table

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
)

func vowelRecords() []map[string]any {
	return []map[string]any{
		{"F1": 500, "F2": 1500, "Vowel": "a", "speaker": "s1"},
		{"F1": 600, "F2": 1600, "Vowel": "a", "speaker": "s1"},
		{"F1": 400, "F2": 2000, "Vowel": "i", "speaker": "s2"},
		{"F1": 420, "F2": 2100, "Vowel": "i", "speaker": "s2"},
	}
}

func mustVowelTable(t *testing.T) *Table {
	t.Helper()

	tbl, err := FromRecords([]string{"F1", "F2", "Vowel", "speaker"}, vowelRecords())
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}

	return tbl
}

func TestFromRecords(t *testing.T) {
	tbl := mustVowelTable(t)

	if tbl.Len() != 4 {
		t.Fatalf("Len=%d, want 4", tbl.Len())
	}

	cols := tbl.Columns()
	want := []string{"F1", "F2", "Vowel", "speaker"}
	for i := range want {
		if cols[i] != want[i] {
			t.Fatalf("Columns()[%d]=%q, want %q", i, cols[i], want[i])
		}
	}

	f1, err := tbl.Float64s("F1")
	if err != nil {
		t.Fatalf("Float64s: %v", err)
	}
	if f1[0] != 500 || f1[3] != 420 {
		t.Fatalf("F1=%v", f1)
	}

	v, err := tbl.Value(2, "Vowel")
	if err != nil || v != "i" {
		t.Fatalf("Value(2, Vowel)=%v, %v", v, err)
	}
}

func TestFromRecordsMissingColumn(t *testing.T) {
	_, err := FromRecords([]string{"F1", "F3"}, vowelRecords())
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("err=%v, want ErrMissingColumn", err)
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	if _, err := New("F1", "F1"); !errors.Is(err, ErrColumnExists) {
		t.Fatalf("err=%v, want ErrColumnExists", err)
	}
	if _, err := New("F1", ""); !errors.Is(err, ErrEmptyColumnName) {
		t.Fatalf("err=%v, want ErrEmptyColumnName", err)
	}
}

func TestAppendRow(t *testing.T) {
	tbl, err := New("a", "b")
	if err != nil {
		t.Fatal(err)
	}

	if err := tbl.AppendRow(1); !errors.Is(err, ErrRowLength) {
		t.Fatalf("err=%v, want ErrRowLength", err)
	}
	if err := tbl.AppendRow(1, struct{}{}); !errors.Is(err, ErrUnsupportedValue) {
		t.Fatalf("err=%v, want ErrUnsupportedValue", err)
	}
	if tbl.Len() != 0 {
		t.Fatalf("failed appends changed Len to %d", tbl.Len())
	}

	if err := tbl.AppendRow(int32(3), nil); err != nil {
		t.Fatal(err)
	}

	b, _ := tbl.Float64s("b")
	if !math.IsNaN(b[0]) {
		t.Fatalf("nil cell=%v, want NaN", b[0])
	}
}

func TestFloat64sRejectsText(t *testing.T) {
	tbl := mustVowelTable(t)

	if _, err := tbl.Float64s("Vowel"); !errors.Is(err, ErrNotNumeric) {
		t.Fatalf("err=%v, want ErrNotNumeric", err)
	}
	if _, err := tbl.Float64s("F9"); !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("err=%v, want ErrMissingColumn", err)
	}
}

func TestKind(t *testing.T) {
	tbl, _ := New("num", "text", "mixed")
	_ = tbl.AppendRow(1.0, "a", "x")
	_ = tbl.AppendRow(2.0, "b", 3)

	tests := []struct {
		col  string
		want Kind
	}{
		{"num", KindNumeric},
		{"text", KindText},
		{"mixed", KindMixed},
	}

	for _, tc := range tests {
		got, err := tbl.Kind(tc.col)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("Kind(%q)=%v, want %v", tc.col, got, tc.want)
		}
	}

	empty, _ := New("x")
	if k, _ := empty.Kind("x"); k != KindEmpty {
		t.Errorf("empty column kind=%v", k)
	}
}

func TestWithColumnsLeavesReceiverUntouched(t *testing.T) {
	tbl := mustVowelTable(t)

	out, err := tbl.WithColumns(FloatColumn("z1", []float64{1, 2, 3, 4}))
	if err != nil {
		t.Fatalf("WithColumns: %v", err)
	}

	if tbl.Has("z1") {
		t.Fatal("receiver gained derived column")
	}
	if len(out.Columns()) != 5 || out.Columns()[4] != "z1" {
		t.Fatalf("out columns=%v", out.Columns())
	}

	// Appending to the derived table must not leak into the original.
	if err := out.AppendRow(1, 2, "u", "s3", 5); err != nil {
		t.Fatal(err)
	}
	if tbl.Len() != 4 {
		t.Fatalf("receiver Len=%d after append to derived table", tbl.Len())
	}
}

func TestWithColumnsIsAtomic(t *testing.T) {
	tbl := mustVowelTable(t)

	tests := []struct {
		name string
		cols []Column
		want error
	}{
		{"collision", []Column{FloatColumn("F1", make([]float64, 4))}, ErrColumnExists},
		{"duplicate", []Column{
			FloatColumn("z1", make([]float64, 4)),
			FloatColumn("z1", make([]float64, 4)),
		}, ErrColumnExists},
		{"length", []Column{
			FloatColumn("z1", make([]float64, 4)),
			FloatColumn("z2", make([]float64, 3)),
		}, ErrRowLength},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := tbl.WithColumns(tc.cols...)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err=%v, want %v", err, tc.want)
			}
			if out != nil {
				t.Fatal("expected nil table on failure")
			}
			if len(tbl.Columns()) != 4 {
				t.Fatalf("receiver columns changed: %v", tbl.Columns())
			}
		})
	}
}

func TestGroups(t *testing.T) {
	tbl, _ := New("speaker")
	for _, s := range []any{"s2", "s1", "s2", nil, "s1"} {
		_ = tbl.AppendRow(s)
	}

	groups, err := tbl.Groups("speaker")
	if err != nil {
		t.Fatal(err)
	}

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Key != "s2" || len(groups[0].Rows) != 2 || groups[0].Rows[1] != 2 {
		t.Fatalf("group 0=%+v", groups[0])
	}
	if groups[1].Key != "s1" || groups[1].Rows[0] != 1 || groups[1].Rows[1] != 4 {
		t.Fatalf("group 1=%+v", groups[1])
	}
}

func TestCSVRoundTrip(t *testing.T) {
	in := "F1,F2,Vowel,speaker\n500,1500,a,s1\n,1600,a,s1\n400,2000,i,s2\n"

	tbl, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	if k, _ := tbl.Kind("F1"); k != KindNumeric {
		t.Fatalf("F1 kind=%v", k)
	}
	if k, _ := tbl.Kind("Vowel"); k != KindText {
		t.Fatalf("Vowel kind=%v", k)
	}

	f1, _ := tbl.Float64s("F1")
	if !math.IsNaN(f1[1]) {
		t.Fatalf("empty cell=%v, want NaN", f1[1])
	}

	var buf bytes.Buffer
	if err := tbl.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	if buf.String() != in {
		t.Fatalf("round trip mismatch:\n%s\nwant:\n%s", buf.String(), in)
	}
}

func TestReadCSVErrors(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := ReadCSV(strings.NewReader("a,b\n1\n")); !errors.Is(err, ErrRowLength) {
		t.Fatalf("err=%v, want ErrRowLength", err)
	}
	if _, err := ReadCSV(strings.NewReader("a,a\n1,2\n")); !errors.Is(err, ErrColumnExists) {
		t.Fatalf("err=%v, want ErrColumnExists", err)
	}
}

func TestCSVMixedColumnStaysText(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("code\n1\nx\n"))
	if err != nil {
		t.Fatal(err)
	}

	v, _ := tbl.Value(0, "code")
	if v != "1" {
		t.Fatalf("cell=%#v, want text \"1\"", v)
	}
}
