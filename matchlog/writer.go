package matchlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Record is one finished match.
type Record struct {
	ID        string // uuid of the saved game
	Ruleset   string
	BoardSize int
	Winner    string
	Moves     int
	Duration  time.Duration
}

// Writer appends match records as CSV under a per-run directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a subdirectory of dir named by the current timestamp.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the run directory records are written into.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteRecords writes all match records to game_records.csv.
func (w *Writer) WriteRecords(records []Record) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "ruleset", "board_size", "winner", "moves", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}
	for _, record := range records {
		row := []string{
			record.ID,
			record.Ruleset,
			strconv.Itoa(record.BoardSize),
			record.Winner,
			strconv.Itoa(record.Moves),
			record.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}
	return nil
}
