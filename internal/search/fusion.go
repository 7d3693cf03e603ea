package search

import "sort"

// rrfConstant is the standard RRF smoothing parameter. k=60 is empirically
// validated across domains (used by Azure AI Search, OpenSearch, etc.).
const rrfConstant = 60

// Hit is a single retrieval result with provenance and scoring detail.
type Hit struct {
	Key        string  // Deterministic index identity of the chunk
	SourceFile string  // Provenance: source file name
	PageNumber int     // Provenance: page or paragraph number
	Content    string  // Chunk text
	LexScore   float64 // Original BM25 score (0 if absent from the lexical list)
	LexRank    int     // 1-based rank in the lexical list (0 if absent)
	VecScore   float64 // Original vector similarity score (0 if absent)
	VecRank    int     // 1-based rank in the vector list (0 if absent)
	Score      float64 // Combined RRF score
}

// fuseRRF combines a lexical and a vector ranked list using Reciprocal Rank
// Fusion: score(d) = sum over lists of 1 / (rrfConstant + rank_in_list).
// A document missing from one list contributes that list's share at
// missing_rank = max(len(lexical), len(vector)) + 1. The fused list is
// sorted by score descending and truncated to k.
func fuseRRF(lexical, vector []Hit, k int) []Hit {
	if len(lexical) == 0 && len(vector) == 0 {
		return nil
	}

	merged := make(map[string]*Hit, len(lexical)+len(vector))

	for rank, h := range lexical {
		entry := getOrCreate(merged, h)
		entry.LexScore = h.LexScore
		entry.LexRank = rank + 1
		entry.Score += 1.0 / float64(rrfConstant+rank+1)
	}
	for rank, h := range vector {
		entry := getOrCreate(merged, h)
		entry.VecScore = h.VecScore
		entry.VecRank = rank + 1
		entry.Score += 1.0 / float64(rrfConstant+rank+1)
	}

	missingRank := len(lexical)
	if len(vector) > missingRank {
		missingRank = len(vector)
	}
	missingRank++

	fused := make([]Hit, 0, len(merged))
	for _, entry := range merged {
		if entry.LexRank == 0 {
			entry.Score += 1.0 / float64(rrfConstant+missingRank)
		}
		if entry.VecRank == 0 {
			entry.Score += 1.0 / float64(rrfConstant+missingRank)
		}
		fused = append(fused, *entry)
	}

	sort.Slice(fused, func(i, j int) bool {
		if fused[i].Score != fused[j].Score {
			return fused[i].Score > fused[j].Score
		}
		// Deterministic tie-break: both lists, then identity.
		iBoth := fused[i].LexRank > 0 && fused[i].VecRank > 0
		jBoth := fused[j].LexRank > 0 && fused[j].VecRank > 0
		if iBoth != jBoth {
			return iBoth
		}
		return fused[i].Key < fused[j].Key
	})

	if len(fused) > k {
		fused = fused[:k]
	}
	return fused
}

func getOrCreate(m map[string]*Hit, h Hit) *Hit {
	if entry, ok := m[h.Key]; ok {
		return entry
	}
	entry := &Hit{
		Key:        h.Key,
		SourceFile: h.SourceFile,
		PageNumber: h.PageNumber,
		Content:    h.Content,
	}
	m[h.Key] = entry
	return entry
}
