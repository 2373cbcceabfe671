package stats

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// PerformanceData holds timing and metadata for one blur run
type PerformanceData struct {
	AlgorithmName string    `json:"algorithm"`
	InputPath     string    `json:"input_path"`
	OutputPath    string    `json:"output_path"`
	Width         int       `json:"width"`
	Height        int       `json:"height"`
	Timestamp     time.Time `json:"timestamp"`

	LoadTime  float64 `json:"load_time"`
	BlurTime  float64 `json:"blur_time"`
	SaveTime  float64 `json:"save_time"`
	TotalTime float64 `json:"total_time"`

	// Algorithm-specific data
	Workers   *int    `json:"workers,omitempty"`   // For parallel
	Partition *string `json:"partition,omitempty"` // For parallel
	Border    *string `json:"border,omitempty"`    // For manual kernels
	Backend   *string `json:"backend,omitempty"`   // For library
}

// WritePerformanceResults writes a results file into dir
func WritePerformanceResults(dir string, results []PerformanceData) (string, error) {
	return WritePerformanceResultsWithPrefix(dir, results, "blur_")
}

// WritePerformanceResultsWithPrefix writes results file with custom prefix and
// returns its path
func WritePerformanceResultsWithPrefix(dir string, results []PerformanceData, prefix string) (string, error) {
	if len(results) == 0 {
		return "", nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create results directory: %w", err)
	}

	// Use timestamp from first result
	timestamp := results[0].Timestamp.Format("2006-01-02_15-04-05")
	resultsFile := filepath.Join(dir, fmt.Sprintf("%s%s.txt", prefix, timestamp))

	file, err := os.Create(resultsFile)
	if err != nil {
		return "", fmt.Errorf("failed to create results file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "=== 3x3 Gaussian Blur Results ===\n")
	fmt.Fprintf(file, "Timestamp: %s\n\n", results[0].Timestamp.Format("2006-01-02 15:04:05"))

	for _, result := range results {
		fmt.Fprintf(file, "=== %s Results ===\n", result.AlgorithmName)
		fmt.Fprintf(file, "Image size: %dx%d\n", result.Width, result.Height)
		fmt.Fprintf(file, "Load time: %.4fs\n", result.LoadTime)
		fmt.Fprintf(file, "Blur time: %.4fs\n", result.BlurTime)
		fmt.Fprintf(file, "Save time: %.4fs\n", result.SaveTime)
		fmt.Fprintf(file, "Total execution time: %.4fs\n", result.TotalTime)

		if result.Workers != nil {
			fmt.Fprintf(file, "Workers: %d\n", *result.Workers)
		}
		if result.Partition != nil {
			fmt.Fprintf(file, "Partition: %s\n", *result.Partition)
		}
		if result.Border != nil {
			fmt.Fprintf(file, "Border: %s\n", *result.Border)
		}
		if result.Backend != nil {
			fmt.Fprintf(file, "Backend: %s\n", *result.Backend)
		}

		fmt.Fprintf(file, "\nInput file: %s\n", result.InputPath)
		fmt.Fprintf(file, "Output file: %s\n", result.OutputPath)
		fmt.Fprintf(file, "\n")
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to write results file: %w", err)
	}
	return resultsFile, nil
}
