package extract

import (
	"bytes"
	"fmt"
	"strings"

	"code.sajari.com/docconv"
)

// PDFExtractor extracts text from PDF files via docconv (pdftotext).
type PDFExtractor struct{}

// Extract converts the PDF and splits the output into per-page paragraph
// blocks. pdftotext separates pages with form feeds, which is the only page
// information that survives conversion.
func (e *PDFExtractor) Extract(path string, data []byte) ([]Block, error) {
	body, err := convert(path, data)
	if err != nil {
		return nil, err
	}

	var blocks []Block
	for pageIdx, page := range strings.Split(body, "\f") {
		for _, para := range splitParagraphs(page) {
			blocks = append(blocks, Block{PageNumber: pageIdx + 1, Text: para})
		}
	}
	return blocks, nil
}

// WordExtractor extracts text from DOC and DOCX files via docconv.
type WordExtractor struct{}

// Extract converts the document and emits one block per non-empty paragraph,
// numbered 1..n. Word formats have no page geometry after conversion, so the
// paragraph index stands in for the page number.
func (e *WordExtractor) Extract(path string, data []byte) ([]Block, error) {
	body, err := convert(path, data)
	if err != nil {
		return nil, err
	}

	var blocks []Block
	for i, para := range splitParagraphs(body) {
		blocks = append(blocks, Block{PageNumber: i + 1, Text: para})
	}
	return blocks, nil
}

// convert runs docconv over the raw bytes using the MIME type derived from
// the file extension.
func convert(path string, data []byte) (string, error) {
	res, err := docconv.Convert(bytes.NewReader(data), docconv.MimeTypeByExtension(path), false)
	if err != nil {
		return "", fmt.Errorf("failed to convert %s: %w", path, err)
	}
	return res.Body, nil
}

// splitParagraphs breaks text into trimmed, non-empty paragraphs. Blank lines
// delimit paragraphs; single line breaks inside a paragraph are joined with
// spaces so sentence segmentation sees continuous text.
func splitParagraphs(text string) []string {
	var paras []string
	for _, raw := range strings.Split(text, "\n\n") {
		lines := strings.Fields(strings.ReplaceAll(raw, "\n", " "))
		if len(lines) == 0 {
			continue
		}
		paras = append(paras, strings.Join(lines, " "))
	}
	return paras
}
