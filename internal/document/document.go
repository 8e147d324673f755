package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format tags the binary layout of an uploaded document.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatText Format = "txt"
)

var (
	// ErrUnsupportedFormat is returned for formats the extractor cannot read.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrParse wraps any failure to read a document of a supported format.
	ErrParse = errors.New("document parse failure")
)

// Extract converts the document bytes into plain text. A successfully parsed
// but blank document yields an empty string and no error; parse failures are
// always reported through ErrParse rather than propagated raw.
func Extract(data []byte, format Format) (string, error) {
	switch format {
	case FormatPDF:
		return extractPDF(data)
	case FormatDOCX:
		return extractDOCX(data)
	case FormatText:
		return strings.TrimSpace(string(data)), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ExtractFile reads the file and extracts its text, inferring the format from
// the extension.
func ExtractFile(path string) (string, error) {
	format, ok := FormatFromPath(path)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading document %q: %w", path, err)
	}

	return Extract(data, format)
}

// FormatFromPath maps the file extension to a supported format.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF, true
	case ".docx":
		return FormatDOCX, true
	case ".txt":
		return FormatText, true
	default:
		return "", false
	}
}
