package vectorstore

import (
	"fmt"

	"github.com/google/uuid"
)

// ChunkPointID derives the deterministic point identity for a chunk from its
// source file name and 1-based chunk number (UUIDv5 over the DNS namespace).
// Re-deriving the identity for the same pair always yields the same UUID, so
// repeated upserts overwrite rather than duplicate.
func ChunkPointID(sourceFile string, chunkNumber int) string {
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(fmt.Sprintf("%s_%d", sourceFile, chunkNumber))).String()
}
