package search

import (
	"context"

	"github.com/veridex/veridex/domain/repository"
)

// BM25Store defines operations for the BM25-style keyword engine: one of
// the three independent retrieval engines the hybrid search service fuses
// (alongside the code-vector and summary-vector stores). Implementations
// rank by an implementation-native BM25 variant (k1=1.2, b=0.75 by
// convention, matching SQLite FTS5's built-in ranking defaults) over
// documents whose text has already been run through
// ExpandWithIdentifierAtoms so identifier sub-words are independently
// matchable. The method shapes mirror VectorStore and EmbeddingStore so
// the fusion service can treat all three engines uniformly through
// repository.Option query construction.
type BM25Store interface {
	// Index adds documents to the keyword index. Re-indexing a snippet_id
	// that is already present replaces its entry; it is not an error.
	Index(ctx context.Context, request IndexRequest) error

	// Find runs a keyword query built from options and returns
	// (snippet_id, score) pairs ordered by score descending. The query
	// text is supplied via WithQuery.
	Find(ctx context.Context, options ...repository.Option) ([]Result, error)

	// DeleteBy removes documents matching the given options. Deleting an
	// absent snippet_id is not an error.
	DeleteBy(ctx context.Context, options ...repository.Option) error
}
