package indexer

import "strings"

const (
	defaultMaxTokens = 500
	defaultOverlap   = 50
)

// OverlappingChunker groups sentences into token-bounded chunks, carrying a
// whole-sentence suffix of each sealed chunk into the next one as overlap.
// Tokens are whitespace-delimited words.
type OverlappingChunker struct {
	maxTokens int
	overlap   int
}

// NewOverlappingChunker creates a chunker with the given word budgets.
// Non-positive budgets fall back to the defaults, and the overlap is clamped
// below the chunk budget so a carried suffix can never fill a chunk on its own.
func NewOverlappingChunker(maxTokens, overlap int) *OverlappingChunker {
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	if overlap < 0 {
		overlap = defaultOverlap
	}
	if overlap >= maxTokens {
		overlap = maxTokens / 2
	}
	return &OverlappingChunker{maxTokens: maxTokens, overlap: overlap}
}

// Regroup joins sentences into chunks of at most maxTokens words each.
// Sentences are appended greedily; when the next sentence would exceed the
// budget, the current chunk is sealed and the next chunk is seeded with
// trailing sentences of the sealed one until the overlap budget is covered.
// Sentences are never split: a single sentence longer than the budget still
// goes into a chunk whole, which is the one case a chunk may exceed the
// budget. The final partial chunk is always emitted.
func (c *OverlappingChunker) Regroup(sentences []string) []string {
	var (
		chunks  []string
		current []string
		count   int
		carried int // sentences in current that are overlap carryover, not fresh input
	)

	i := 0
	for i < len(sentences) {
		words := wordCount(sentences[i])

		// An accumulator holding no fresh sentences always accepts the next
		// one: an empty chunk must not stay empty, and a seed-only chunk
		// would otherwise reseal the same overlap forever.
		if len(current) == carried || count+words <= c.maxTokens {
			current = append(current, sentences[i])
			count += words
			i++
			continue
		}

		chunks = append(chunks, strings.Join(current, " "))

		// Walk backward from the sealed chunk accumulating whole sentences
		// until the overlap budget is reached.
		var seed []string
		seedCount := 0
		for j := len(current) - 1; j >= 0 && seedCount < c.overlap; j-- {
			seed = append([]string{current[j]}, seed...)
			seedCount += wordCount(current[j])
		}
		current = seed
		count = seedCount
		carried = len(seed)
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
