package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chunk_store.go -package=mocks docrag/internal/storage ChunkStore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// ChunkStore defines the interface for chunk storage operations.
type ChunkStore interface {
	// InsertChunks persists a batch of chunks in a single transaction.
	// Store identifiers are assigned to the records on success.
	InsertChunks(ctx context.Context, chunks []*ChunkRecord) error
	// ExistingHashes returns the set of distinct file digests already present.
	ExistingHashes(ctx context.Context) (map[string]struct{}, error)
	// ListUnembedded returns all chunks whose vector_embedded flag is unset,
	// ordered by store identifier.
	ListUnembedded(ctx context.Context) ([]*ChunkRecord, error)
	// MarkEmbedded flips vector_embedded for exactly the given identifiers.
	MarkEmbedded(ctx context.Context, ids []int64) error
	// SearchLexical runs a BM25 full-text query and returns up to k hits.
	SearchLexical(ctx context.Context, query string, k int) ([]LexicalResult, error)
	// GetByID fetches one chunk. Returns ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*ChunkRecord, error)
	// CountByStatus returns the number of chunks per pipeline status.
	CountByStatus(ctx context.Context) (map[string]int, error)
}

// ChunkRepo provides chunk operations backed by SQLite.
// It implements the ChunkStore interface.
type ChunkRepo struct {
	db *sql.DB
}

// NewChunkRepo creates a new ChunkRepo.
func NewChunkRepo(db *sql.DB) *ChunkRepo {
	return &ChunkRepo{db: db}
}

// InsertChunks persists a batch of chunks in a single transaction, writing the
// full-text row alongside each base row so the lexical index never drifts.
func (r *ChunkRepo) InsertChunks(ctx context.Context, chunks []*ChunkRecord) error {
	if len(chunks) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, chunk := range chunks {
		chunked, embedded := chunk.Status.flags()
		res, err := tx.ExecContext(ctx,
			`INSERT INTO document_chunks
				(source_file, chunk_number, content, file_hash, last_modified,
				 chunked, vector_embedded, page_number, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			chunk.SourceFile, chunk.ChunkNumber, chunk.Content, chunk.FileHash,
			formatTime(chunk.LastModified), chunked, embedded, chunk.PageNumber,
			formatTime(chunk.CreatedAt),
		)
		if err != nil {
			return fmt.Errorf("failed to insert chunk: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read chunk id: %w", err)
		}
		chunk.ID = id

		if _, err := tx.ExecContext(ctx,
			"INSERT INTO chunks_fts(rowid, content) VALUES (?, ?)",
			id, chunk.Content,
		); err != nil {
			return fmt.Errorf("failed to index chunk content: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit chunk batch: %w", err)
	}
	return nil
}

// ExistingHashes returns the set of distinct file digests already present.
func (r *ChunkRepo) ExistingHashes(ctx context.Context) (map[string]struct{}, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT DISTINCT file_hash FROM document_chunks")
	if err != nil {
		return nil, fmt.Errorf("failed to query file hashes: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	hashes := make(map[string]struct{})
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("failed to scan file hash: %w", err)
		}
		hashes[h] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return hashes, nil
}

// ListUnembedded returns all chunks with vector_embedded unset, ordered by id.
func (r *ChunkRepo) ListUnembedded(ctx context.Context) ([]*ChunkRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source_file, chunk_number, content, file_hash, last_modified,
		        chunked, vector_embedded, page_number, created_at
		 FROM document_chunks
		 WHERE vector_embedded = 0
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query unembedded chunks: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var chunks []*ChunkRecord
	for rows.Next() {
		chunk, err := scanChunk(rows)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, chunk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return chunks, nil
}

// MarkEmbedded flips vector_embedded for exactly the given store identifiers.
// The operation is monotonic: already-flipped rows stay flipped.
func (r *ChunkRepo) MarkEmbedded(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	_, err := r.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE document_chunks SET vector_embedded = 1 WHERE id IN (%s)", placeholders),
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to mark chunks embedded: %w", err)
	}
	return nil
}

// SearchLexical runs a BM25 full-text query and returns up to k hits,
// best match first.
func (r *ChunkRepo) SearchLexical(ctx context.Context, query string, k int) ([]LexicalResult, error) {
	if k <= 0 {
		return nil, fmt.Errorf("k must be greater than 0")
	}

	match := buildMatchQuery(query)
	if match == "" {
		return nil, nil
	}

	// bm25() ranks ascending (more negative is better), so negate it into a
	// conventional higher-is-better score.
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, c.source_file, c.chunk_number, c.page_number, c.content, -bm25(chunks_fts) AS score
		 FROM chunks_fts
		 JOIN document_chunks c ON c.id = chunks_fts.rowid
		 WHERE chunks_fts MATCH ?
		 ORDER BY bm25(chunks_fts)
		 LIMIT ?`,
		match, k,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to run lexical query: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var results []LexicalResult
	for rows.Next() {
		var res LexicalResult
		if err := rows.Scan(&res.ChunkID, &res.SourceFile, &res.ChunkNumber, &res.PageNumber, &res.Content, &res.Score); err != nil {
			return nil, fmt.Errorf("failed to scan lexical result: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return results, nil
}

// GetByID fetches one chunk by its store identifier.
func (r *ChunkRepo) GetByID(ctx context.Context, id int64) (*ChunkRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, source_file, chunk_number, content, file_hash, last_modified,
		        chunked, vector_embedded, page_number, created_at
		 FROM document_chunks WHERE id = ?`,
		id,
	)
	chunk, err := scanChunk(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return chunk, nil
}

// CountByStatus returns the number of chunks per pipeline status.
func (r *ChunkRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT chunked, vector_embedded, COUNT(*) FROM document_chunks GROUP BY chunked, vector_embedded",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query status counts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	counts := make(map[string]int)
	for rows.Next() {
		var chunked, embedded bool
		var n int
		if err := rows.Scan(&chunked, &embedded, &n); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[statusFromFlags(chunked, embedded).String()] += n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return counts, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanChunk(s scanner) (*ChunkRecord, error) {
	var (
		chunk                   ChunkRecord
		chunked, embedded       bool
		lastModified, createdAt string
	)
	err := s.Scan(&chunk.ID, &chunk.SourceFile, &chunk.ChunkNumber, &chunk.Content,
		&chunk.FileHash, &lastModified, &chunked, &embedded, &chunk.PageNumber, &createdAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan chunk: %w", err)
	}
	chunk.Status = statusFromFlags(chunked, embedded)
	chunk.LastModified = parseTime(lastModified)
	chunk.CreatedAt = parseTime(createdAt)
	return &chunk, nil
}

// buildMatchQuery quotes each term of the raw user query so FTS5 operators
// in the input cannot break the MATCH expression, then ORs the terms.
func buildMatchQuery(query string) string {
	fields := strings.Fields(query)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.ReplaceAll(f, `"`, "")
		if f == "" {
			continue
		}
		terms = append(terms, `"`+f+`"`)
	}
	return strings.Join(terms, " OR ")
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
