package search

// Embedding is a dense vector computed for one snippet enrichment.
type Embedding struct {
	snippetID string
	vector    []float64
}

// NewEmbedding creates an Embedding for a snippet.
func NewEmbedding(snippetID string, vector []float64) Embedding {
	v := make([]float64, len(vector))
	copy(v, vector)
	return Embedding{
		snippetID: snippetID,
		vector:    v,
	}
}

// SnippetID returns the ID of the snippet this embedding belongs to.
func (e Embedding) SnippetID() string { return e.snippetID }

// Vector returns the embedding vector (copy).
func (e Embedding) Vector() []float64 {
	result := make([]float64, len(e.vector))
	copy(result, e.vector)
	return result
}

// Dimensions returns the vector dimensionality.
func (e Embedding) Dimensions() int { return len(e.vector) }

// IsEmpty returns true when no vector has been computed.
func (e Embedding) IsEmpty() bool { return len(e.vector) == 0 }
