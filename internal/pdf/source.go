package pdf

import "github.com/jdlouhy/docketscan/internal/docket"

// FileSource adapts a Reader and a file path to the pipeline's
// PageSource interface.
type FileSource struct {
	reader *Reader
	path   string
}

// NewFileSource creates a page source for the PDF at path.
func NewFileSource(reader *Reader, path string) *FileSource {
	return &FileSource{
		reader: reader,
		path:   path,
	}
}

// Pages extracts every page of the underlying PDF.
func (s *FileSource) Pages() ([]docket.Page, error) {
	return s.reader.ExtractPages(s.path)
}
