package indexing

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/veridex/veridex/application/handler"
	"github.com/veridex/veridex/domain/enrichment"
	"github.com/veridex/veridex/domain/repository"
	domainsnippet "github.com/veridex/veridex/domain/snippet"
	"github.com/veridex/veridex/domain/task"
	"github.com/veridex/veridex/infrastructure/slicing"
)

// ExtractSnippets extracts code snippets from commit files with the AST
// slicer. Snippets are content-addressed: the snippet store keys them by
// content hash, so a commit that re-derives identical content (a rename, a
// re-index) reuses the existing snippet and its search document instead of
// creating new rows.
type ExtractSnippets struct {
	repoStore        repository.RepositoryStore
	snippetStore     domainsnippet.SnippetStore
	enrichmentStore  enrichment.EnrichmentStore
	associationStore enrichment.AssociationStore
	fileStore        repository.FileStore
	slicer           *slicing.Slicer
	trackerFactory   handler.TrackerFactory
	logger           *slog.Logger
}

// NewExtractSnippets creates a new ExtractSnippets handler.
func NewExtractSnippets(
	repoStore repository.RepositoryStore,
	snippetStore domainsnippet.SnippetStore,
	enrichmentStore enrichment.EnrichmentStore,
	associationStore enrichment.AssociationStore,
	fileStore repository.FileStore,
	slicer *slicing.Slicer,
	trackerFactory handler.TrackerFactory,
	logger *slog.Logger,
) *ExtractSnippets {
	return &ExtractSnippets{
		repoStore:        repoStore,
		snippetStore:     snippetStore,
		enrichmentStore:  enrichmentStore,
		associationStore: associationStore,
		fileStore:        fileStore,
		slicer:           slicer,
		trackerFactory:   trackerFactory,
		logger:           logger,
	}
}

// Execute processes the EXTRACT_SNIPPETS_FOR_COMMIT task.
func (h *ExtractSnippets) Execute(ctx context.Context, payload map[string]any) error {
	cp, err := handler.ExtractCommitPayload(payload)
	if err != nil {
		return err
	}

	tracker := h.trackerFactory.ForOperation(
		task.OperationExtractSnippetsForCommit,
		task.TrackableTypeRepository,
		cp.RepoID(),
	)

	existing, err := h.snippetStore.CountForCommit(ctx, cp.CommitSHA())
	if err != nil {
		return fmt.Errorf("check existing snippets: %w", err)
	}

	if existing > 0 {
		tracker.Skip(ctx, "Snippets already extracted for commit")
		return nil
	}

	repo, err := h.repoStore.FindOne(ctx, repository.WithID(cp.RepoID()))
	if err != nil {
		return fmt.Errorf("get repository: %w", err)
	}

	clonedPath := repo.WorkingCopy().Path()
	if clonedPath == "" {
		return fmt.Errorf("repository %d has never been cloned", cp.RepoID())
	}

	files, err := h.fileStore.Find(ctx, repository.WithCommitSHA(cp.CommitSHA()))
	if err != nil {
		return fmt.Errorf("get commit files: %w", err)
	}

	if len(files) == 0 {
		tracker.Skip(ctx, "No files found for commit")
		return nil
	}

	tracker.SetTotal(ctx, len(files))
	tracker.SetCurrent(ctx, 0, "Slicing commit files")

	sliceable, passthrough := h.partitionFiles(files)

	var snippets []domainsnippet.Snippet
	if len(sliceable) > 0 {
		result, sliceErr := h.slicer.Slice(ctx, sliceable, clonedPath, slicing.DefaultSliceConfig())
		if sliceErr != nil {
			return fmt.Errorf("slice files: %w", sliceErr)
		}
		snippets = result.Snippets()
	}

	snippets = append(snippets, h.passthroughSnippets(passthrough, clonedPath)...)
	unique := deduplicateByHash(snippets)

	if len(unique) == 0 {
		tracker.Skip(ctx, "No snippets extracted from commit")
		return nil
	}

	// Content-addressed persistence: unchanged content keeps its id,
	// derivation links and enrichments across commits.
	if err := h.snippetStore.Save(ctx, cp.CommitSHA(), unique); err != nil {
		return fmt.Errorf("save snippets: %w", err)
	}

	for i, snip := range unique {
		tracker.SetCurrent(ctx, i, "Registering snippet documents")

		doc := enrichment.NewSnippetEnrichmentWithLanguage(snip.Content(), snip.Extension())
		if _, _, err := ensureSnippetDocument(ctx, h.enrichmentStore, h.associationStore, snip, doc, cp.CommitSHA(), ""); err != nil {
			return err
		}
	}

	h.logger.Info("extracted snippets",
		slog.Int("total", len(snippets)),
		slog.Int("unique", len(unique)),
		slog.Int("files", len(files)),
		slog.String("commit", handler.ShortSHA(cp.CommitSHA())),
	)

	return nil
}

// partitionFiles splits commit files into those the slicer has a grammar
// for and text files that still deserve a passthrough snippet.
func (h *ExtractSnippets) partitionFiles(files []repository.File) (sliceable, passthrough []repository.File) {
	language := domainsnippet.Language{}

	for _, f := range files {
		ext := filepath.Ext(f.Path())
		if h.slicer.SupportsExtension(ext) {
			sliceable = append(sliceable, f)
			continue
		}
		if _, err := language.LanguageForExtension(ext); err == nil {
			passthrough = append(passthrough, f)
		}
	}

	return sliceable, passthrough
}

// passthroughSnippets emits one whole-file snippet per file in a language
// the slicer has no grammar for, so those files stay searchable and
// language-filterable without call-graph awareness.
func (h *ExtractSnippets) passthroughSnippets(files []repository.File, basePath string) []domainsnippet.Snippet {
	var snippets []domainsnippet.Snippet

	for _, f := range files {
		content, err := os.ReadFile(filepath.Join(basePath, f.Path()))
		if err != nil {
			h.logger.Warn("failed to read file for passthrough snippet",
				slog.String("path", f.Path()),
				slog.String("error", err.Error()),
			)
			continue
		}
		if strings.TrimSpace(string(content)) == "" {
			continue
		}

		ext := filepath.Ext(f.Path())
		snippets = append(snippets, domainsnippet.NewSnippet(string(content), ext, []repository.File{f}))
	}

	return snippets
}
