package indexer

import "docrag/internal/storage"

// FileResult is the per-file outcome of an ingestion run. One file failing
// never aborts its siblings; the failure is recorded here instead.
type FileResult struct {
	FileName string `json:"file_name"`
	Digest   string `json:"digest,omitempty"`
	Skipped  bool   `json:"skipped"` // Digest already present in the store
	Chunks   int    `json:"chunks"`
	Err      error  `json:"-"`
	Error    string `json:"error,omitempty"`

	records []*storage.ChunkRecord
}

// IngestReport aggregates the outcome of one ingestion run.
type IngestReport struct {
	FilesScanned   int          `json:"files_scanned"`
	FilesSkipped   int          `json:"files_skipped"`
	FilesFailed    int          `json:"files_failed"`
	ChunksInserted int          `json:"chunks_inserted"`
	Files          []FileResult `json:"files,omitempty"`
}

// OutcomeStatus classifies the result of one chunk in the embedding phase.
type OutcomeStatus string

const (
	// OutcomeSucceeded means the chunk was embedded and upserted.
	OutcomeSucceeded OutcomeStatus = "succeeded"
	// OutcomeFailed means embedding or upsert failed; the chunk stays
	// unembedded and is retried on the next run.
	OutcomeFailed OutcomeStatus = "failed"
	// OutcomeSkipped means the chunk had empty content. It is left
	// unembedded as a future reprocessing candidate, not marked done.
	OutcomeSkipped OutcomeStatus = "skipped"
)

// ChunkOutcome is the per-chunk result of the embedding phase.
type ChunkOutcome struct {
	ChunkID     int64         `json:"chunk_id"`
	SourceFile  string        `json:"source_file"`
	ChunkNumber int           `json:"chunk_number"`
	Status      OutcomeStatus `json:"status"`
	Err         error         `json:"-"`
	Error       string        `json:"error,omitempty"`
}

// EmbedReport aggregates the outcome of one embedding run.
type EmbedReport struct {
	Attempted int            `json:"attempted"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
	Skipped   int            `json:"skipped"`
	Outcomes  []ChunkOutcome `json:"outcomes,omitempty"`
}
