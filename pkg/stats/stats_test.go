package stats

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func sampleRun() PerformanceData {
	workers := 8
	partition := "rows"
	border := "copy"
	return PerformanceData{
		AlgorithmName: "Parallel",
		InputPath:     "input.jpg",
		OutputPath:    "output.jpg",
		Width:         640,
		Height:        480,
		Timestamp:     time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
		LoadTime:      0.0125,
		BlurTime:      0.0042,
		SaveTime:      0.03,
		TotalTime:     0.0467,
		Workers:       &workers,
		Partition:     &partition,
		Border:        &border,
	}
}

func TestWritePerformanceResults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	path, err := WritePerformanceResultsWithPrefix(dir, []PerformanceData{sampleRun()}, "parallel_")
	if err != nil {
		t.Fatalf("WritePerformanceResultsWithPrefix() error = %v", err)
	}
	if want := filepath.Join(dir, "parallel_2026-03-14_15-09-26.txt"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	content := string(b)

	for _, want := range []string{
		"=== Parallel Results ===",
		"Image size: 640x480",
		"Blur time: 0.0042s",
		"Workers: 8",
		"Partition: rows",
		"Border: copy",
		"Input file: input.jpg",
		"Output file: output.jpg",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("results file missing %q:\n%s", want, content)
		}
	}
	if strings.Contains(content, "Backend:") {
		t.Error("results file has Backend line for a run without backend")
	}
}

func TestWritePerformanceResultsDefaultPrefix(t *testing.T) {
	dir := t.TempDir()
	path, err := WritePerformanceResults(dir, []PerformanceData{sampleRun()})
	if err != nil {
		t.Fatalf("WritePerformanceResults() error = %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "blur_") {
		t.Errorf("path = %q, want blur_ prefix", path)
	}
}

func TestWritePerformanceResultsEmpty(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never")
	path, err := WritePerformanceResults(dir, nil)
	if err != nil || path != "" {
		t.Errorf("WritePerformanceResults(nil) = %q, %v; want empty, nil", path, err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("directory created for empty results")
	}
}
