package storage

import (
	"fmt"
	"time"
)

// ChunkStatus describes how far a chunk has progressed through the pipeline.
// The store persists it as the chunked/vector_embedded column pair, but code
// only ever sees the enum, so a chunk cannot be embedded without being chunked.
type ChunkStatus int

const (
	// StatusPending is the zero value; a chunk that has not been persisted yet.
	StatusPending ChunkStatus = iota
	// StatusChunked means the chunk text is persisted but not yet in the vector index.
	StatusChunked
	// StatusEmbedded means the chunk has been upserted into the vector index.
	StatusEmbedded
)

// String returns the status name.
func (s ChunkStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusChunked:
		return "chunked"
	case StatusEmbedded:
		return "embedded"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Advance returns the next status in the pipeline. Embedded is terminal:
// the flag is flipped exactly once and never unflipped.
func (s ChunkStatus) Advance() (ChunkStatus, error) {
	switch s {
	case StatusPending:
		return StatusChunked, nil
	case StatusChunked:
		return StatusEmbedded, nil
	default:
		return s, fmt.Errorf("no transition from status %q", s)
	}
}

// flags maps the status to the persisted chunked/vector_embedded columns.
func (s ChunkStatus) flags() (chunked, embedded bool) {
	switch s {
	case StatusChunked:
		return true, false
	case StatusEmbedded:
		return true, true
	default:
		return false, false
	}
}

// statusFromFlags folds the persisted column pair back into the enum.
// An embedded flag implies the chunked flag regardless of the stored value.
func statusFromFlags(chunked, embedded bool) ChunkStatus {
	switch {
	case embedded:
		return StatusEmbedded
	case chunked:
		return StatusChunked
	default:
		return StatusPending
	}
}

// ChunkRecord is the durable retrieval unit produced by ingestion.
type ChunkRecord struct {
	ID           int64       // Store identifier, assigned on insert
	SourceFile   string      // File name the chunk came from
	ChunkNumber  int         // 1-based, contiguous per file and ingestion run
	Content      string      // Chunk text
	FileHash     string      // sha256 hex digest of the source file bytes
	LastModified time.Time   // Filesystem modification time of the source file
	PageNumber   int         // Page (PDF) or paragraph (DOC/DOCX) of the originating block
	Status       ChunkStatus
	CreatedAt    time.Time // UTC creation marker
}

// LexicalResult is a single BM25 hit from the full-text index.
type LexicalResult struct {
	ChunkID     int64
	SourceFile  string
	ChunkNumber int
	PageNumber  int
	Content     string
	Score       float64 // Higher is better
}

// ChatRecord is one question/answer exchange saved to chat history.
type ChatRecord struct {
	ID          int64
	UserInput   string
	BotResponse string
	CreatedAt   time.Time
}
