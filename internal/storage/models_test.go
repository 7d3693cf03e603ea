package storage

import "testing"

func TestChunkStatus_String(t *testing.T) {
	tests := []struct {
		status ChunkStatus
		want   string
	}{
		{StatusPending, "pending"},
		{StatusChunked, "chunked"},
		{StatusEmbedded, "embedded"},
		{ChunkStatus(99), "unknown(99)"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}

func TestChunkStatus_Advance(t *testing.T) {
	next, err := StatusPending.Advance()
	if err != nil || next != StatusChunked {
		t.Errorf("Advance(pending) = %v, %v, want chunked", next, err)
	}
	next, err = StatusChunked.Advance()
	if err != nil || next != StatusEmbedded {
		t.Errorf("Advance(chunked) = %v, %v, want embedded", next, err)
	}
	if _, err := StatusEmbedded.Advance(); err == nil {
		t.Error("Advance(embedded) error = nil, want terminal error")
	}
}

func TestStatusFromFlags(t *testing.T) {
	tests := []struct {
		chunked, embedded bool
		want              ChunkStatus
	}{
		{false, false, StatusPending},
		{true, false, StatusChunked},
		{true, true, StatusEmbedded},
		// Embedded implies chunked even if the stored flag disagrees.
		{false, true, StatusEmbedded},
	}
	for _, tt := range tests {
		if got := statusFromFlags(tt.chunked, tt.embedded); got != tt.want {
			t.Errorf("statusFromFlags(%v, %v) = %v, want %v", tt.chunked, tt.embedded, got, tt.want)
		}
	}
}

func TestBuildMatchQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello", `"hello"`},
		{"hello world", `"hello" OR "world"`},
		{`quoted "term"`, `"quoted" OR "term"`},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := buildMatchQuery(tt.in); got != tt.want {
			t.Errorf("buildMatchQuery(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
