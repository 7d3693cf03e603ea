package rag

// AskRequest represents a RAG query request.
type AskRequest struct {
	// Question is the user's question to answer.
	Question string `json:"question"`
	// K optionally specifies the number of chunks to retrieve.
	K int `json:"k,omitempty"`
	// Detail hints at answer length ("concise" or "detailed").
	Detail string `json:"detail,omitempty"`
}

// Reference points at a chunk that was offered to the model as context.
type Reference struct {
	// SourceFile is the document the chunk came from.
	SourceFile string `json:"source_file"`
	// PageNumber is the page (PDF) or paragraph (DOC/DOCX) number.
	PageNumber int `json:"page_number"`
	// Score is the fused retrieval score.
	Score float64 `json:"score"`
}

// AskResponse represents the response from a RAG query.
type AskResponse struct {
	// Answer is the generated answer from the LLM.
	Answer string `json:"answer"`
	// References are the chunks offered as context, best first. Empty when
	// retrieval found nothing or was unavailable.
	References []Reference `json:"references"`
	// SearchDegraded is set when the knowledge base could not be searched and
	// the answer was generated without context.
	SearchDegraded bool `json:"search_degraded,omitempty"`
}
