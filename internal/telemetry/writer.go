// Package telemetry appends per-attempt records to a CSV file for
// offline analysis of level difficulty.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gocarina/gocsv"
)

// FileName is the CSV file created in the telemetry directory.
const FileName = "attempts.csv"

// AttemptRecord is one row of attempts.csv.
type AttemptRecord struct {
	Session    string    `csv:"session"`
	GameID     string    `csv:"game_id"`
	Level      int       `csv:"level"`
	LevelID    string    `csv:"level_id"`
	Attempt    int       `csv:"attempt"`
	Outcome    string    `csv:"outcome"` // attempt_failed, round_reset or level_cleared
	Score      int       `csv:"score"`
	Lives      int       `csv:"lives"` // -1 in practice mode
	ElapsedSec float64   `csv:"elapsed_s"`
	RecordedAt time.Time `csv:"recorded_at"`
}

// Writer appends attempt records. A nil *Writer discards everything, so
// callers need no enabled check. Safe for concurrent use.
type Writer struct {
	mu            sync.Mutex
	path          string
	file          *os.File
	headerWritten bool
}

// NewWriter opens dir/attempts.csv for appending, creating dir if needed.
// Returns nil if dir is empty (telemetry disabled).
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("telemetry: creating directory: %w", err)
	}

	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: opening %s: %w", FileName, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("telemetry: stat %s: %w", FileName, err)
	}

	return &Writer{path: path, file: f, headerWritten: info.Size() > 0}, nil
}

// Write appends one record. The header is written once per file.
func (w *Writer) Write(rec AttemptRecord) error {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	records := []AttemptRecord{rec}
	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.file); err != nil {
			return fmt.Errorf("telemetry: writing attempt: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.file); err != nil {
		return fmt.Errorf("telemetry: writing attempt: %w", err)
	}
	return nil
}

// Path returns the CSV file path.
func (w *Writer) Path() string {
	if w == nil {
		return ""
	}
	return w.path
}

// Close closes the file.
func (w *Writer) Close() error {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}

// ReadAttempts loads every record from dir/attempts.csv.
func ReadAttempts(dir string) ([]AttemptRecord, error) {
	f, err := os.Open(filepath.Join(dir, FileName))
	if err != nil {
		return nil, fmt.Errorf("telemetry: opening %s: %w", FileName, err)
	}
	defer f.Close()

	var records []AttemptRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("telemetry: reading %s: %w", FileName, err)
	}
	return records, nil
}

// LevelSummary aggregates attempts on one level.
type LevelSummary struct {
	LevelID  string
	Attempts int
	Failures int
	Clears   int
}

// Summarize groups records by level ID in order of first appearance.
func Summarize(records []AttemptRecord) []LevelSummary {
	index := make(map[string]int)
	var out []LevelSummary
	for _, r := range records {
		i, ok := index[r.LevelID]
		if !ok {
			i = len(out)
			index[r.LevelID] = i
			out = append(out, LevelSummary{LevelID: r.LevelID})
		}
		switch r.Outcome {
		case "attempt_failed":
			out[i].Attempts++
			out[i].Failures++
		case "level_cleared":
			out[i].Attempts++
			out[i].Clears++
		}
	}
	return out
}
