package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jdlouhy/docketscan/internal/docket"
)

// The report carries two unnamed trailing columns ("randomize" and
// "attended hearing") that downstream spreadsheets fill in by hand.
// They stay in the layout so the column count does not shift.
var header = []string{
	"Case Number",
	"Title",
	"Date",
	"Time",
	"Plaintiff",
	"Plaintiff Attorney",
	"Defendant",
	"Run Date",
	"Courtroom",
	"",
	"",
}

// Writer serializes report rows to a CSV file.
type Writer struct {
	outputDir string
}

// NewWriter creates a writer that places report files in outputDir.
func NewWriter(outputDir string) *Writer {
	return &Writer{
		outputDir: outputDir,
	}
}

// Write creates docket_report_<runDate>.csv in the output directory
// and writes the header plus every row. It returns the path of the
// written file. Rows must be complete before Write is called; a
// failed run never leaves a partial report behind.
func (w *Writer) Write(rows []docket.Row, runDate time.Time) (string, error) {
	path := filepath.Join(w.outputDir,
		fmt.Sprintf("docket_report_%s.csv", runDate.Format("2006-01-02")))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return "", fmt.Errorf("failed to write report header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.CaseNumber),
			row.Title,
			row.HearingDate,
			row.HearingTime,
			row.Plaintiff,
			row.PlaintiffAttorney,
			row.Defendant,
			row.RunDate,
			row.Courtroom,
			"",
			"",
		}
		if err := cw.Write(record); err != nil {
			return "", fmt.Errorf("failed to write report row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("failed to flush report: %w", err)
	}
	return path, nil
}
