package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_store.go -package=mocks docrag/internal/vectorstore VectorStore

import "context"

// Payload holds the queryable properties stored with each vector.
type Payload struct {
	Content    string
	SourceFile string
	PageNumber int
}

// Point is a vector point with its deterministic identity and payload.
// Upserting the same ID twice overwrites the existing entry.
type Point struct {
	ID      string
	Vec     []float32
	Payload Payload
}

// QueryResult is a single ranked hit from a vector query.
type QueryResult struct {
	PointID string
	Score   float32
	Payload Payload
}

// VectorStore defines the interface for vector index operations.
type VectorStore interface {
	// EnsureCollection creates the collection if absent and validates the
	// vector size if it already exists.
	EnsureCollection(ctx context.Context, collection string, vectorSize int) error

	// Upsert inserts or overwrites points in the collection.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Query returns the k nearest points to the query vector.
	Query(ctx context.Context, collection string, vector []float32, k int) ([]QueryResult, error)

	// CollectionExists checks if a collection exists.
	CollectionExists(ctx context.Context, collection string) (bool, error)
}
