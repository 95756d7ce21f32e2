package timings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "search_times.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestLoad_CanonicalFile(t *testing.T) {
	path := writeCSV(t, strings.Join([]string{
		"size,linear_us,bst_us,rbt_us,hash_us,multimap_us,collisions",
		"10,1.5,0.8,0.7,0.2,0.9,0",
		"100,14.2,1.9,1.6,0.3,2.1,3",
		"1000,140.7,3.1,2.8,0.4,3.4,41",
	}, "\n"))

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.Len() != 3 {
		t.Fatalf("Len: got %d, want 3", tbl.Len())
	}
	if got := tbl.Columns(); len(got) != 7 || got[0] != "size" || got[6] != "collisions" {
		t.Fatalf("Columns: got %v", got)
	}
	sizes, err := tbl.IntColumn(SizeColumn)
	if err != nil {
		t.Fatalf("IntColumn(size): %v", err)
	}
	if sizes[0] != 10 || sizes[2] != 1000 {
		t.Fatalf("sizes: got %v", sizes)
	}
	lin, err := tbl.Column("linear_us")
	if err != nil {
		t.Fatalf("Column(linear_us): %v", err)
	}
	if lin[1] != 14.2 {
		t.Fatalf("linear_us[1]: got %v, want 14.2", lin[1])
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeCSV(t, "")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for empty file")
	}
}

func TestLoad_RaggedRow(t *testing.T) {
	path := writeCSV(t, "size,linear_us\n10,1.5\n100\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for ragged row")
	}
}

func TestLoad_NonNumericCell(t *testing.T) {
	path := writeCSV(t, "size,linear_us\n10,fast\n")
	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected error for non-numeric cell")
	}
	if !strings.Contains(err.Error(), "linear_us") {
		t.Fatalf("error should name the column: %v", err)
	}
}

func TestLoad_DuplicateColumn(t *testing.T) {
	path := writeCSV(t, "size,size\n10,10\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for duplicate column")
	}
}

func TestColumn_Missing(t *testing.T) {
	path := writeCSV(t, "size,linear_us\n10,1.5\n")
	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	_, err = tbl.Column("bst_us")
	if err == nil {
		t.Fatalf("expected error for missing column")
	}
	if !strings.Contains(err.Error(), "bst_us") {
		t.Fatalf("error should name the missing column: %v", err)
	}
}

func TestIntColumn_RejectsFraction(t *testing.T) {
	path := writeCSV(t, "size,collisions\n10,1.5\n")
	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := tbl.IntColumn(CollisionsColumn); err == nil {
		t.Fatalf("expected error for fractional collisions value")
	}
}
