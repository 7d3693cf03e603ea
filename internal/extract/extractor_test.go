package extract

import "testing"

func TestForFile(t *testing.T) {
	tests := []struct {
		path     string
		wantPDF  bool
		wantWord bool
		wantOK   bool
	}{
		{"report.pdf", true, false, true},
		{"REPORT.PDF", true, false, true},
		{"manual.docx", false, true, true},
		{"legacy.doc", false, true, true},
		{"notes.txt", false, false, false},
		{"readme.md", false, false, false},
		{"noextension", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			ext, ok := ForFile(tt.path)
			if ok != tt.wantOK {
				t.Fatalf("ForFile(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if _, isPDF := ext.(*PDFExtractor); isPDF != tt.wantPDF {
				t.Errorf("ForFile(%q) PDF extractor = %v, want %v", tt.path, isPDF, tt.wantPDF)
			}
			if _, isWord := ext.(*WordExtractor); isWord != tt.wantWord {
				t.Errorf("ForFile(%q) Word extractor = %v, want %v", tt.path, isWord, tt.wantWord)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	if !Supported("a.pdf") || !Supported("b.docx") || !Supported("c.doc") {
		t.Error("Supported() = false for a recognized format")
	}
	if Supported("a.txt") || Supported("b") {
		t.Error("Supported() = true for an unrecognized format")
	}
}

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "single paragraph",
			in:   "One sentence here.",
			want: []string{"One sentence here."},
		},
		{
			name: "blank lines delimit paragraphs",
			in:   "First paragraph.\n\nSecond paragraph.",
			want: []string{"First paragraph.", "Second paragraph."},
		},
		{
			name: "single line breaks joined with spaces",
			in:   "A sentence\nwrapped across\nlines.",
			want: []string{"A sentence wrapped across lines."},
		},
		{
			name: "whitespace-only paragraphs dropped",
			in:   "First.\n\n   \n\nSecond.",
			want: []string{"First.", "Second."},
		},
		{
			name: "runs of spaces collapsed",
			in:   "Spaced   out    words.",
			want: []string{"Spaced out words."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitParagraphs(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("splitParagraphs() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("paragraph %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
