package docket

import (
	"fmt"
	"time"
)

// PageSource yields the docket's pages as ordered fragment sequences.
// The production implementation reads a PDF; tests feed synthetic
// pages.
type PageSource interface {
	Pages() ([]Page, error)
}

// Service runs the segmentation and extraction pipeline over a page
// source and produces report rows.
type Service struct {
	segmenter *Segmenter
	reporter  *Reporter
}

// NewService creates a pipeline service with the given reporter.
func NewService(reporter *Reporter) *Service {
	return &Service{
		segmenter: NewSegmenter(),
		reporter:  reporter,
	}
}

// Run processes every page in document order and returns the report
// rows. Pages are independent: date, time and courtroom context resets
// at each page boundary. Any malformed debt-collection entry fails the
// whole run; no partial output is produced.
func (s *Service) Run(source PageSource, runDate time.Time) ([]Row, error) {
	pages, err := source.Pages()
	if err != nil {
		return nil, fmt.Errorf("reading pages: %w", err)
	}

	var records []*Record
	for _, page := range pages {
		for _, entry := range s.segmenter.SegmentPage(page) {
			if !IsDebtCollection(entry) {
				continue
			}
			rec, err := ExtractRecord(entry)
			if err != nil {
				return nil, fmt.Errorf("page %d: %w", page.Number, err)
			}
			records = append(records, rec)
		}
	}

	return s.reporter.Rows(records, runDate), nil
}
