// Command validate provides a small CLI that validates experiment preset
// JSON files in the ./configs directory (or the directories passed as
// arguments). It checks:
//   - JSON structure and required fields
//   - slot_count >= 1 and bean_count >= 0
//   - mode is "luck" or "skill"
//   - repeats is non-negative
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmfields/galtonbox/machine/config"
)

// ValidationResult captures the outcome of validating a single file.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validatePreset loads and validates a single preset JSON file.
func validatePreset(filePath string) ValidationResult {
	result := ValidationResult{
		File:  filepath.Base(filePath),
		Valid: true,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var exp config.Experiment
	if err := json.Unmarshal(data, &exp); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if err := config.ValidateExperiment(&exp); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
	}

	return result
}

// validateDir validates every .json file in dir and returns the results.
func validateDir(dir string) ([]ValidationResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var results []ValidationResult
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		results = append(results, validatePreset(filepath.Join(dir, entry.Name())))
	}
	return results, nil
}

func main() {
	dirs := os.Args[1:]
	if len(dirs) == 0 {
		dirs = []string{"configs"}
	}

	failed := 0
	for _, dir := range dirs {
		results, err := validateDir(dir)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			failed++
			continue
		}
		for _, result := range results {
			if result.Valid {
				fmt.Printf("OK   %s\n", result.File)
				continue
			}
			failed++
			fmt.Printf("FAIL %s\n", result.File)
			for _, msg := range result.Errors {
				fmt.Printf("     %s\n", msg)
			}
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
