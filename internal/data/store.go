package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	pl "github.com/HannahMarsh/PrettyLogger"
)

const timestampLayout = "20060102_150405"

// SaveRecord writes the record as an indented JSON file under dir, creating
// the directory if needed, and returns the path of the new file.
func SaveRecord(dir string, rec *Record) (string, error) {
	if rec.Timestamp == "" {
		rec.Timestamp = time.Now().Format(timestampLayout)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", pl.WrapError(err, "failed to create results directory %s", dir)
	}
	path := filepath.Join(dir, fmt.Sprintf("bb84_sim_%s.json", rec.Timestamp))
	encoded, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", pl.WrapError(err, "failed to marshal record")
	}
	if err = os.WriteFile(path, encoded, 0644); err != nil {
		return "", pl.WrapError(err, "failed to write record to %s", path)
	}
	return path, nil
}

// LoadRecord reads a record back from disk. All fields round-trip exactly as
// saved, so a loaded record can be re-plotted or re-summarized.
func LoadRecord(path string) (*Record, error) {
	encoded, err := os.ReadFile(path)
	if err != nil {
		return nil, pl.WrapError(err, "failed to read record %s", path)
	}
	var rec Record
	if err = json.Unmarshal(encoded, &rec); err != nil {
		return nil, pl.WrapError(err, "failed to unmarshal record %s", path)
	}
	return &rec, nil
}

// ListRecords returns the paths of all saved records in dir, oldest first
// (the timestamped names sort chronologically). A missing directory is an
// empty listing, not an error.
func ListRecords(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, pl.WrapError(err, "failed to read results directory %s", dir)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}
