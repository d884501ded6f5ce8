package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> and writes records below it.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteRuns(runs []RunMetric) error {
	header := []string{"run", "seats", "reach", "target", "map", "factions", "bots", "failure", "start_time", "duration"}
	rows := make([][]string, 0, len(runs))
	for i, run := range runs {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(run.Seats),
			strconv.Itoa(run.Reach),
			strconv.Itoa(run.Target),
			run.Map,
			joinFactions(run.Factions),
			joinFactions(run.Bots),
			run.Failure,
			run.StartTime.Format(time.RFC3339Nano),
			run.Duration.String(),
		})
	}
	return w.write("runs.csv", header, rows)
}

func (w *Writer) WriteFactions(factions []FactionMetric) error {
	header := []string{"faction", "picks", "bot_picks", "share"}
	rows := make([][]string, 0, len(factions))
	for _, fm := range factions {
		rows = append(rows, []string{
			string(fm.Faction),
			strconv.Itoa(fm.Picks),
			strconv.Itoa(fm.BotPicks),
			strconv.FormatFloat(fm.Share, 'f', 4, 64),
		})
	}
	return w.write("factions.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}

func joinFactions[T ~string](ids []T) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ";")
}
