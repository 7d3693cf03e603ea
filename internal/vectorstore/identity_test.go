package vectorstore

import "testing"

func TestChunkPointID(t *testing.T) {
	a := ChunkPointID("report.pdf", 1)
	b := ChunkPointID("report.pdf", 1)
	if a != b {
		t.Errorf("same input produced different IDs: %s vs %s", a, b)
	}

	if ChunkPointID("report.pdf", 2) == a {
		t.Error("different chunk numbers produced the same ID")
	}
	if ChunkPointID("other.pdf", 1) == a {
		t.Error("different source files produced the same ID")
	}

	// The identity is a well-formed UUID string.
	if len(a) != 36 {
		t.Errorf("ID %q is not a canonical UUID", a)
	}
}
