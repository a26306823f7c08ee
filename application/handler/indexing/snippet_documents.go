package indexing

import (
	"context"
	"fmt"
	"strconv"

	"github.com/veridex/veridex/domain/enrichment"
	"github.com/veridex/veridex/domain/repository"
	"github.com/veridex/veridex/domain/snippet"
)

// ensureSnippetDocument finds or creates the search-document enrichment row
// for a content-addressed snippet. The row is keyed to the snippet's content
// hash through a snippet association, so commits that re-derive identical
// content (including renamed files) reuse the same document id instead of
// minting a new one. The document is always linked to the given commit, and
// to the snippet's source files and owning repository when known.
func ensureSnippetDocument(
	ctx context.Context,
	enrichmentStore enrichment.EnrichmentStore,
	associationStore enrichment.AssociationStore,
	snip snippet.Snippet,
	newDoc enrichment.Enrichment,
	commitSHA string,
	repoID string,
) (enrichment.Enrichment, bool, error) {
	assocs, err := associationStore.Find(ctx,
		enrichment.WithEntityID(snip.SHA()),
		enrichment.WithEntityType(enrichment.EntityTypeSnippet),
	)
	if err != nil {
		return enrichment.Enrichment{}, false, fmt.Errorf("find snippet document: %w", err)
	}

	var doc enrichment.Enrichment
	created := false

	if len(assocs) > 0 {
		ids := make([]int64, 0, len(assocs))
		for _, a := range assocs {
			ids = append(ids, a.EnrichmentID())
		}
		// Summaries also associate to the snippet hash, so narrow to the
		// document's own kind.
		candidates, err := enrichmentStore.Find(ctx,
			repository.WithIDIn(ids),
			enrichment.WithType(newDoc.Type()),
			enrichment.WithSubtype(newDoc.Subtype()),
		)
		if err != nil {
			return enrichment.Enrichment{}, false, fmt.Errorf("load snippet document: %w", err)
		}
		if len(candidates) > 0 {
			doc = candidates[0]
		}
	}

	if doc.ID() == 0 {
		saved, err := enrichmentStore.Save(ctx, newDoc)
		if err != nil {
			return enrichment.Enrichment{}, false, fmt.Errorf("save snippet document: %w", err)
		}
		doc = saved
		created = true

		if _, err := associationStore.Save(ctx, enrichment.SnippetAssociation(doc.ID(), snip.SHA())); err != nil {
			return enrichment.Enrichment{}, false, fmt.Errorf("save snippet association: %w", err)
		}
	}

	if _, err := associationStore.Save(ctx, enrichment.CommitAssociation(doc.ID(), commitSHA)); err != nil {
		return enrichment.Enrichment{}, false, fmt.Errorf("save commit association: %w", err)
	}

	for _, f := range snip.DerivesFrom() {
		if f.ID() == 0 {
			continue
		}
		if _, err := associationStore.Save(ctx, enrichment.FileAssociation(doc.ID(), strconv.FormatInt(f.ID(), 10))); err != nil {
			return enrichment.Enrichment{}, false, fmt.Errorf("save file association: %w", err)
		}
	}

	if repoID != "" {
		if _, err := associationStore.Save(ctx, enrichment.RepositoryAssociation(doc.ID(), repoID)); err != nil {
			return enrichment.Enrichment{}, false, fmt.Errorf("save repository association: %w", err)
		}
	}

	return doc, created, nil
}

// deduplicateByHash collapses snippets with equal content hashes, keeping
// first occurrences in order.
func deduplicateByHash(snippets []snippet.Snippet) []snippet.Snippet {
	seen := make(map[string]bool, len(snippets))
	result := make([]snippet.Snippet, 0, len(snippets))

	for _, s := range snippets {
		if !seen[s.SHA()] {
			seen[s.SHA()] = true
			result = append(result, s)
		}
	}

	return result
}
