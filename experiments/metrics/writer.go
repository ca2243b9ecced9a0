package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subfolder for one experiment's output.
func NewWriter(name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteSweepConfigs(configs []SweepConfig) error {
	path := filepath.Join(w.baseDir, "sweep_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sweep configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "exploration", "iterations", "seed"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write sweep configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			strconv.FormatFloat(config.Exploration, 'f', -1, 64),
			strconv.Itoa(config.Iterations),
			strconv.FormatUint(config.Seed, 10),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write sweep config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteRunRecords(records []RunRecord) error {
	path := filepath.Join(w.baseDir, "run_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create run records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"config", "run", "value", "optimum", "regret", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write run records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Config),
			strconv.Itoa(record.Run),
			strconv.FormatFloat(record.Value, 'f', -1, 64),
			strconv.FormatFloat(record.Optimum, 'f', -1, 64),
			strconv.FormatFloat(record.Regret, 'f', -1, 64),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write run record row: %w", err)
		}
	}

	return nil
}
