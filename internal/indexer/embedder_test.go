package indexer_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"docrag/internal/indexer"
	llm_mocks "docrag/internal/llm/mocks"
	"docrag/internal/storage"
	storage_mocks "docrag/internal/storage/mocks"
	"docrag/internal/vectorstore"
	vectorstore_mocks "docrag/internal/vectorstore/mocks"
)

const testCollection = "test_chunks"

func testChunk(id int64, file string, number int, content string) *storage.ChunkRecord {
	return &storage.ChunkRecord{
		ID:          id,
		SourceFile:  file,
		ChunkNumber: number,
		Content:     content,
		Status:      storage.StatusChunked,
	}
}

func TestUpserter_Run_NoChunks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChunkRepo := storage_mocks.NewMockChunkStore(ctrl)
	mockEmbedder := llm_mocks.NewMockEmbedder(ctrl)
	mockVectorStore := vectorstore_mocks.NewMockVectorStore(ctrl)

	mockChunkRepo.EXPECT().ListUnembedded(gomock.Any()).Return(nil, nil)

	u := indexer.NewUpserter(mockChunkRepo, mockEmbedder, mockVectorStore, testCollection, 16)
	report, err := u.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Attempted != 0 {
		t.Errorf("Attempted = %d, want 0", report.Attempted)
	}
}

func TestUpserter_Run_EmbedsAndMarks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChunkRepo := storage_mocks.NewMockChunkStore(ctrl)
	mockEmbedder := llm_mocks.NewMockEmbedder(ctrl)
	mockVectorStore := vectorstore_mocks.NewMockVectorStore(ctrl)

	chunks := []*storage.ChunkRecord{
		testChunk(1, "a.pdf", 1, "first chunk"),
		testChunk(2, "a.pdf", 2, "second chunk"),
	}
	mockChunkRepo.EXPECT().ListUnembedded(gomock.Any()).Return(chunks, nil)
	mockEmbedder.EXPECT().
		EmbedTexts(gomock.Any(), []string{"first chunk"}).
		Return([][]float32{{0.1, 0.2}}, nil)
	mockEmbedder.EXPECT().
		EmbedTexts(gomock.Any(), []string{"second chunk"}).
		Return([][]float32{{0.3, 0.4}}, nil)

	var upserted []vectorstore.Point
	mockVectorStore.EXPECT().
		Upsert(gomock.Any(), testCollection, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, points []vectorstore.Point) error {
			upserted = append(upserted, points...)
			return nil
		}).
		Times(2)
	mockChunkRepo.EXPECT().MarkEmbedded(gomock.Any(), []int64{1, 2}).Return(nil)

	u := indexer.NewUpserter(mockChunkRepo, mockEmbedder, mockVectorStore, testCollection, 16)
	report, err := u.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Succeeded != 2 {
		t.Errorf("Succeeded = %d, want 2", report.Succeeded)
	}

	// Re-embedding the same chunk must target the same point identity.
	if len(upserted) != 2 {
		t.Fatalf("upserted %d points, want 2", len(upserted))
	}
	if want := vectorstore.ChunkPointID("a.pdf", 1); upserted[0].ID != want {
		t.Errorf("point ID = %s, want %s", upserted[0].ID, want)
	}
	if upserted[0].Payload.SourceFile != "a.pdf" {
		t.Errorf("payload source = %s, want a.pdf", upserted[0].Payload.SourceFile)
	}
}

func TestUpserter_Run_FailureIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChunkRepo := storage_mocks.NewMockChunkStore(ctrl)
	mockEmbedder := llm_mocks.NewMockEmbedder(ctrl)
	mockVectorStore := vectorstore_mocks.NewMockVectorStore(ctrl)

	chunks := []*storage.ChunkRecord{
		testChunk(1, "a.pdf", 1, "good chunk"),
		testChunk(2, "a.pdf", 2, "bad chunk"),
		testChunk(3, "a.pdf", 3, ""),
	}
	mockChunkRepo.EXPECT().ListUnembedded(gomock.Any()).Return(chunks, nil)
	mockEmbedder.EXPECT().
		EmbedTexts(gomock.Any(), []string{"good chunk"}).
		Return([][]float32{{0.1}}, nil)
	mockEmbedder.EXPECT().
		EmbedTexts(gomock.Any(), []string{"bad chunk"}).
		Return(nil, errors.New("embedding service down"))
	mockVectorStore.EXPECT().
		Upsert(gomock.Any(), testCollection, gomock.Any()).
		Return(nil)

	// Only the chunk that made it into the index gets its flag flipped.
	mockChunkRepo.EXPECT().MarkEmbedded(gomock.Any(), []int64{1}).Return(nil)

	u := indexer.NewUpserter(mockChunkRepo, mockEmbedder, mockVectorStore, testCollection, 16)
	report, err := u.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Succeeded != 1 || report.Failed != 1 || report.Skipped != 1 {
		t.Errorf("report = %d/%d/%d succeeded/failed/skipped, want 1/1/1",
			report.Succeeded, report.Failed, report.Skipped)
	}
}

func TestUpserter_Run_MarkEmbeddedErrorIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChunkRepo := storage_mocks.NewMockChunkStore(ctrl)
	mockEmbedder := llm_mocks.NewMockEmbedder(ctrl)
	mockVectorStore := vectorstore_mocks.NewMockVectorStore(ctrl)

	chunks := []*storage.ChunkRecord{testChunk(1, "a.pdf", 1, "chunk")}
	mockChunkRepo.EXPECT().ListUnembedded(gomock.Any()).Return(chunks, nil)
	mockEmbedder.EXPECT().EmbedTexts(gomock.Any(), gomock.Any()).Return([][]float32{{0.1}}, nil)
	mockVectorStore.EXPECT().Upsert(gomock.Any(), testCollection, gomock.Any()).Return(nil)
	mockChunkRepo.EXPECT().MarkEmbedded(gomock.Any(), []int64{1}).Return(errors.New("db down"))

	u := indexer.NewUpserter(mockChunkRepo, mockEmbedder, mockVectorStore, testCollection, 16)
	if _, err := u.Run(context.Background()); err == nil {
		t.Fatal("Run() error = nil, want store error")
	}
}

func TestUpserter_Run_BatchesFlagUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChunkRepo := storage_mocks.NewMockChunkStore(ctrl)
	mockEmbedder := llm_mocks.NewMockEmbedder(ctrl)
	mockVectorStore := vectorstore_mocks.NewMockVectorStore(ctrl)

	chunks := []*storage.ChunkRecord{
		testChunk(1, "a.pdf", 1, "one"),
		testChunk(2, "a.pdf", 2, "two"),
		testChunk(3, "a.pdf", 3, "three"),
	}
	mockChunkRepo.EXPECT().ListUnembedded(gomock.Any()).Return(chunks, nil)
	mockEmbedder.EXPECT().EmbedTexts(gomock.Any(), gomock.Any()).Return([][]float32{{0.1}}, nil).Times(3)
	mockVectorStore.EXPECT().Upsert(gomock.Any(), testCollection, gomock.Any()).Return(nil).Times(3)

	// Batch size 2 means two flag updates: one per batch.
	gomock.InOrder(
		mockChunkRepo.EXPECT().MarkEmbedded(gomock.Any(), []int64{1, 2}).Return(nil),
		mockChunkRepo.EXPECT().MarkEmbedded(gomock.Any(), []int64{3}).Return(nil),
	)

	u := indexer.NewUpserter(mockChunkRepo, mockEmbedder, mockVectorStore, testCollection, 2)
	report, err := u.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Succeeded != 3 {
		t.Errorf("Succeeded = %d, want 3", report.Succeeded)
	}
}
