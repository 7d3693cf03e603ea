package vectorstore

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/qdrant/go-client/qdrant"

	"docrag/internal/contextutil"
)

// QdrantStore implements VectorStore using Qdrant.
type QdrantStore struct {
	client *qdrant.Client
}

// NewQdrantStore creates a new Qdrant vector store client.
// urlStr should be in the format "http://host:port" (e.g., "http://localhost:6333").
// The gRPC port (typically 6334) is derived from the HTTP port.
func NewQdrantStore(urlStr string) (*QdrantStore, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsedURL.Hostname()
	if host == "" {
		host = "localhost"
	}

	port := 6334 // Default gRPC port
	if parsedURL.Port() != "" {
		httpPort, err := strconv.Atoi(parsedURL.Port())
		if err == nil {
			// gRPC port is typically HTTP port + 1
			port = httpPort + 1
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	return &QdrantStore{client: client}, nil
}

// Upsert inserts or overwrites points in the collection. Point IDs are
// deterministic UUIDs, so repeated upserts replace the existing entries.
func (s *QdrantStore) Upsert(ctx context.Context, collection string, points []Point) error {
	logger := contextutil.LoggerFromContext(ctx)

	if len(points) == 0 {
		return nil
	}

	qdrantPoints := make([]*qdrant.PointStruct, 0, len(points))
	for _, point := range points {
		qdrantPoints = append(qdrantPoints, &qdrant.PointStruct{
			Id:      qdrant.NewID(point.ID),
			Vectors: qdrant.NewVectors(point.Vec...),
			Payload: qdrant.NewValueMap(map[string]any{
				"content":     point.Payload.Content,
				"source_file": point.Payload.SourceFile,
				"page_number": point.Payload.PageNumber,
			}),
		})
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Points:         qdrantPoints,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to upsert points", "collection", collection, "count", len(points), "error", err)
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	logger.DebugContext(ctx, "upserted points", "collection", collection, "count", len(points))
	return nil
}

// Query returns the k nearest points to the query vector with their payloads.
func (s *QdrantStore) Query(ctx context.Context, collection string, vector []float32, k int) ([]QueryResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if k <= 0 {
		return nil, fmt.Errorf("k must be greater than 0")
	}

	limit := uint64(k)
	scoredPoints, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to query points", "collection", collection, "k", k, "error", err)
		return nil, fmt.Errorf("failed to query points: %w", err)
	}

	results := make([]QueryResult, 0, len(scoredPoints))
	for _, point := range scoredPoints {
		pointID := ""
		if point.Id != nil {
			pointID = point.Id.GetUuid()
		}
		results = append(results, QueryResult{
			PointID: pointID,
			Score:   point.Score,
			Payload: payloadFromValues(point.Payload),
		})
	}

	logger.DebugContext(ctx, "vector query completed", "collection", collection, "k", k, "results", len(results))
	return results, nil
}

// CollectionExists checks if a collection exists.
func (s *QdrantStore) CollectionExists(ctx context.Context, collection string) (bool, error) {
	exists, err := s.client.CollectionExists(ctx, collection)
	if err != nil {
		return false, fmt.Errorf("failed to check collection existence: %w", err)
	}
	return exists, nil
}

// EnsureCollection ensures a collection exists with the specified vector size.
// If the collection exists, validates that the vector size matches.
func (s *QdrantStore) EnsureCollection(ctx context.Context, collection string, vectorSize int) error {
	logger := contextutil.LoggerFromContext(ctx)

	exists, err := s.CollectionExists(ctx, collection)
	if err != nil {
		return err
	}

	if !exists {
		logger.InfoContext(ctx, "creating collection", "collection", collection, "vector_size", vectorSize)
		err := s.client.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: collection,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     uint64(vectorSize),
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}
		return nil
	}

	info, err := s.client.GetCollectionInfo(ctx, collection)
	if err != nil {
		return fmt.Errorf("failed to get collection info: %w", err)
	}

	config := info.Config
	if config == nil || config.Params == nil {
		return fmt.Errorf("collection config is invalid")
	}
	vectorsConfig := config.Params.GetVectorsConfig()
	if vectorsConfig == nil {
		return fmt.Errorf("collection vectors config is invalid")
	}
	params := vectorsConfig.GetParams()
	if params == nil {
		return fmt.Errorf("collection vector params are invalid")
	}

	if int(params.Size) != vectorSize {
		return fmt.Errorf("collection vector size mismatch: expected %d, got %d", vectorSize, params.Size)
	}

	logger.InfoContext(ctx, "collection validated", "collection", collection, "vector_size", vectorSize)
	return nil
}

// payloadFromValues converts a Qdrant payload map into the typed Payload.
func payloadFromValues(values map[string]*qdrant.Value) Payload {
	var p Payload
	if values == nil {
		return p
	}
	if v, ok := values["content"]; ok {
		p.Content = v.GetStringValue()
	}
	if v, ok := values["source_file"]; ok {
		p.SourceFile = v.GetStringValue()
	}
	if v, ok := values["page_number"]; ok {
		p.PageNumber = int(v.GetIntegerValue())
	}
	return p
}
