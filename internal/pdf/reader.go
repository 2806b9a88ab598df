package pdf

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/jdlouhy/docketscan/internal/docket"
)

// Y distance within which two text elements belong to the same visual
// row, and the X gap past the previous element's right edge that
// implies a word break.
const (
	rowTolerance = 2.0
	wordGap      = 1.0
)

// Reader extracts per-page fragment sequences from a docket PDF.
type Reader struct {
	maxFileSize int64
}

// NewReader creates a new PDF reader with the specified constraints.
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
	}
}

// ExtractPages returns every page of the PDF as an ordered fragment
// sequence. Each fragment is one visual row of text: elements grouped
// by Y coordinate, ordered top to bottom, left to right within a row.
func (r *Reader) ExtractPages(path string) ([]docket.Page, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}
	if fileInfo.Size() > r.maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}

	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	pages := make([]docket.Page, 0, pdfReader.NumPage())
	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pages = append(pages, docket.Page{
			Number:    pageNum,
			Fragments: fragmentRows(page.Content().Text),
		})
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages could be extracted from %s", path)
	}
	return pages, nil
}

type textRow struct {
	y     float64
	texts []pdf.Text
}

// fragmentRows groups raw text elements into visual rows and renders
// each row as one fragment string.
func fragmentRows(texts []pdf.Text) []string {
	var rows []textRow
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		placed := false
		for i := range rows {
			if abs(rows[i].y-t.Y) < rowTolerance {
				rows[i].texts = append(rows[i].texts, t)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, textRow{y: t.Y, texts: []pdf.Text{t}})
		}
	}

	// PDF coordinates grow upward, so reading order is descending Y.
	sort.Slice(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	fragments := make([]string, 0, len(rows))
	for _, row := range rows {
		sort.Slice(row.texts, func(i, j int) bool {
			return row.texts[i].X < row.texts[j].X
		})
		fragments = append(fragments, renderRow(row.texts))
	}
	return fragments
}

// renderRow joins a row's text elements, inserting a space only where
// the horizontal gap implies a word break. Elements may be whole
// lines, words, or single glyphs depending on how the PDF was
// generated.
func renderRow(texts []pdf.Text) string {
	var b strings.Builder
	var prevEnd float64
	for i, t := range texts {
		if i > 0 && t.X-prevEnd > wordGap {
			b.WriteString(" ")
		}
		b.WriteString(t.S)
		prevEnd = t.X + t.W
	}
	return b.String()
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
