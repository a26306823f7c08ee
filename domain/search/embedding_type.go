package search

// EmbeddingType represents the type of embedding.
type EmbeddingType string

// EmbeddingType values.
const (
	EmbeddingTypeCode    EmbeddingType = "code"
	EmbeddingTypeSummary EmbeddingType = "summary"
)
