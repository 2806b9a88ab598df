package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorValidateFile(t *testing.T) {
	tempDir := t.TempDir()

	txtPath := filepath.Join(tempDir, "notes.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("not a pdf"), 0o644))

	emptyPath := filepath.Join(tempDir, "empty.pdf")
	require.NoError(t, os.WriteFile(emptyPath, nil, 0o644))

	bogusPath := filepath.Join(tempDir, "bogus.pdf")
	require.NoError(t, os.WriteFile(bogusPath, []byte("this is not pdf content"), 0o644))

	largePath := filepath.Join(tempDir, "large.pdf")
	require.NoError(t, os.WriteFile(largePath, make([]byte, 2048), 0o644))

	v := NewValidator(1024)

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"empty path", "", "path cannot be empty"},
		{"missing file", filepath.Join(tempDir, "missing.pdf"), "does not exist"},
		{"directory", tempDir, "not a file"},
		{"wrong extension", txtPath, "not a PDF"},
		{"empty file", emptyPath, "file is empty"},
		{"oversized file", largePath, "file too large"},
		{"invalid content", bogusPath, "invalid PDF file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateFile(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidatorIsValidPDF(t *testing.T) {
	v := NewValidator(1024)
	assert.False(t, v.IsValidPDF("/nonexistent/docket.pdf"))
}
