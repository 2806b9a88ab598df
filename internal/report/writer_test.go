package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdlouhy/docketscan/internal/docket"
)

func TestWriterWrite(t *testing.T) {
	tempDir := t.TempDir()
	runDate := time.Date(2024, time.January, 5, 9, 0, 0, 0, time.Local)

	rows := []docket.Row{
		{
			CaseNumber:        4,
			Title:             "Motion for Summary Judgment",
			HearingDate:       "01/03/2024",
			HearingTime:       "01:00 PM",
			Plaintiff:         "John Smith",
			PlaintiffAttorney: "Jane Doe",
			Defendant:         "Bob Jones",
			RunDate:           "01/05/2024",
			Courtroom:         "S34",
		},
		{
			CaseNumber:        4,
			Title:             "Motion for Summary Judgment",
			HearingDate:       "01/03/2024",
			HearingTime:       "01:00 PM",
			Plaintiff:         "John Smith",
			PlaintiffAttorney: "Jane Doe",
			Defendant:         "Carol Jones",
			RunDate:           "01/05/2024",
			Courtroom:         "S34",
		},
	}

	path, err := NewWriter(tempDir).Write(rows, runDate)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempDir, "docket_report_2024-01-05.csv"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Case Number", records[0][0])
	assert.Len(t, records[0], 11)

	assert.Equal(t, []string{
		"4", "Motion for Summary Judgment", "01/03/2024", "01:00 PM",
		"John Smith", "Jane Doe", "Bob Jones", "01/05/2024", "S34", "", "",
	}, records[1])
	assert.Equal(t, "Carol Jones", records[2][6])
}

func TestWriterWriteEmptyReport(t *testing.T) {
	tempDir := t.TempDir()

	path, err := NewWriter(tempDir).Write(nil, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "empty report still carries the header row")
}

func TestWriterWriteBadDirectory(t *testing.T) {
	_, err := NewWriter("/nonexistent/dir").Write(nil, time.Now())
	require.Error(t, err)
}
