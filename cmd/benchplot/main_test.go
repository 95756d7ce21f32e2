package main

import (
	"image"
	_ "image/png" // register PNG decoder
	"os"
	"path/filepath"
	"testing"

	"github.com/AlSakharoB/lab2-search/src/charts"
)

func writeInput(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "search_times.csv")
	content := "size,linear_us,bst_us,rbt_us,hash_us,multimap_us,collisions\n" +
		"1,1.0,1.0,1.0,1.0,1.0,0\n" +
		"10,2.0,2.0,2.0,2.0,2.0,1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestRun_WritesBothCharts(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	opts := charts.Options{Width: 640, Height: 480, DPI: 96, Caption: true, InputName: "search_times.csv"}

	tbl, err := run(input, dir, opts)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("table rows: got %d, want 2", tbl.Len())
	}

	for _, name := range []string{charts.CompareFileName, charts.CollisionsFileName} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if img.Bounds().Dx() != 640 {
			t.Fatalf("%s width: got %d, want 640", name, img.Bounds().Dx())
		}
	}
}

func TestRun_MissingInputWritesNothing(t *testing.T) {
	dir := t.TempDir()
	_, err := run(filepath.Join(dir, "search_times.csv"), dir, charts.DefaultOptions())
	if err == nil {
		t.Fatalf("expected error for missing input file")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("no output should be written on failure, found %d entries", len(entries))
	}
}

func TestRun_Rerun_OverwritesSameFilenames(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir)
	opts := charts.Options{Width: 640, Height: 480, DPI: 96}
	if _, err := run(input, dir, opts); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if _, err := run(input, dir, opts); err != nil {
		t.Fatalf("second run: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	// input + two charts, nothing else
	if len(entries) != 3 {
		t.Fatalf("expected 3 files after rerun, got %d", len(entries))
	}
}
