package rag

import (
	"fmt"
	"strings"
)

// Detail modes accepted by AskRequest.
const (
	DetailConcise  = "concise"
	DetailDetailed = "detailed"
)

const promptHeader = `You are an assistant that answers questions using only the provided document excerpts.

Rules:
- Answer strictly from the context below. Do not use outside knowledge.
- If the context does not contain the answer, say you cannot answer from the indexed documents.
- Cite the source file and page number for every claim you make.`

// buildPrompt assembles the single-turn prompt sent to the chat model. The
// context block carries either formatted retrieval hits or one of the
// retrieval sentinels.
func buildPrompt(contextText, question, detail string) string {
	var style string
	switch strings.ToLower(strings.TrimSpace(detail)) {
	case DetailConcise:
		style = "Respond with a short list of bullet points covering only the key facts."
	default:
		style = "Respond with a structured, complete explanation in full sentences."
	}

	return fmt.Sprintf("%s\n%s\n\nContext:\n%s\n\nQuestion: %s\n\nAnswer:",
		promptHeader, style, contextText, question)
}
