// Package extract turns source documents into ordered text blocks with
// page or paragraph provenance. One adapter per supported format; adapters
// are pure functions over the input bytes.
package extract

import (
	"path/filepath"
	"strings"
)

// Block is a unit of extracted text with its page or paragraph number.
// Blocks are transient: they are consumed immediately by segmentation
// and chunking and never persisted.
type Block struct {
	PageNumber int
	Text       string
}

// Extractor produces ordered text blocks from a document.
type Extractor interface {
	Extract(path string, data []byte) ([]Block, error)
}

// SupportedExtensions lists the file extensions the pipeline recognizes.
var SupportedExtensions = []string{".pdf", ".doc", ".docx"}

// ForFile returns the extractor matching the file's extension,
// or false if the format is not supported.
func ForFile(path string) (Extractor, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return &PDFExtractor{}, true
	case ".doc", ".docx":
		return &WordExtractor{}, true
	default:
		return nil, false
	}
}

// Supported reports whether the file's extension is a recognized format.
func Supported(path string) bool {
	_, ok := ForFile(path)
	return ok
}
