// Package segment splits extracted text blocks into sentences.
package segment

import (
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Segmenter splits a text block into an ordered sequence of non-empty
// sentence strings.
type Segmenter interface {
	Segment(text string) []string
}

// PunktSegmenter is a Segmenter backed by the pretrained English Punkt
// tokenizer, which handles abbreviations and initials that a terminator
// regex would split on.
type PunktSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSegmenter creates a segmenter with the bundled English training data.
func NewPunktSegmenter() (*PunktSegmenter, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &PunktSegmenter{tokenizer: tok}, nil
}

// Segment returns the trimmed, non-empty sentences of text in order.
func (s *PunktSegmenter) Segment(text string) []string {
	var out []string
	for _, tok := range s.tokenizer.Tokenize(text) {
		sent := strings.TrimSpace(tok.Text)
		if sent == "" {
			continue
		}
		out = append(out, sent)
	}
	return out
}
