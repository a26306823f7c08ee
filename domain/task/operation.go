package task

import "strings"

// Operation represents the type of task operation.
type Operation string

// Operation values for the task queue system.
const (
	OperationRoot                                    Operation = "veridex.root"
	OperationCreateIndex                             Operation = "veridex.index.create"
	OperationRunIndex                                Operation = "veridex.index.run"
	OperationRefreshWorkingCopy                      Operation = "veridex.index.run.refresh_working_copy"
	OperationDeleteOldSnippets                       Operation = "veridex.index.run.delete_old_snippets"
	OperationExtractSnippets                         Operation = "veridex.index.run.extract_snippets"
	OperationCreateBM25Index                         Operation = "veridex.index.run.create_bm25_index"
	OperationCreateCodeEmbeddings                    Operation = "veridex.index.run.create_code_embeddings"
	OperationEnrichSnippets                          Operation = "veridex.index.run.enrich_snippets"
	OperationCreateTextEmbeddings                    Operation = "veridex.index.run.create_text_embeddings"
	OperationUpdateIndexTimestamp                    Operation = "veridex.index.run.update_index_timestamp"
	OperationClearFileProcessingStatuses             Operation = "veridex.index.run.clear_file_processing_statuses"
	OperationRepository                              Operation = "veridex.repository"
	OperationCreateRepository                        Operation = "veridex.repository.create"
	OperationDeleteRepository                        Operation = "veridex.repository.delete"
	OperationCloneRepository                         Operation = "veridex.repository.clone"
	OperationSyncRepository                          Operation = "veridex.repository.sync"
	OperationCommit                                  Operation = "veridex.commit"
	OperationExtractSnippetsForCommit                Operation = "veridex.commit.extract_snippets"
	OperationCreateBM25IndexForCommit                Operation = "veridex.commit.create_bm25_index"
	OperationCreateCodeEmbeddingsForCommit           Operation = "veridex.commit.create_code_embeddings"
	OperationCreateSummaryEnrichmentForCommit        Operation = "veridex.commit.create_summary_enrichment"
	OperationCreateSummaryEmbeddingsForCommit        Operation = "veridex.commit.create_summary_embeddings"
	OperationCreateArchitectureEnrichmentForCommit   Operation = "veridex.commit.create_architecture_enrichment"
	OperationCreatePublicAPIDocsForCommit            Operation = "veridex.commit.create_public_api_docs"
	OperationCreateCommitDescriptionForCommit        Operation = "veridex.commit.create_commit_description"
	OperationCreateDatabaseSchemaForCommit           Operation = "veridex.commit.create_database_schema"
	OperationCreateCookbookForCommit                 Operation = "veridex.commit.create_cookbook"
	OperationExtractExamplesForCommit                Operation = "veridex.commit.extract_examples"
	OperationCreateExampleSummaryForCommit           Operation = "veridex.commit.create_example_summary"
	OperationCreateExampleCodeEmbeddingsForCommit    Operation = "veridex.commit.create_example_code_embeddings"
	OperationCreateExampleSummaryEmbeddingsForCommit Operation = "veridex.commit.create_example_summary_embeddings"
	OperationGenerateWikiForCommit                   Operation = "veridex.commit.generate_wiki"
	OperationScanCommit                              Operation = "veridex.commit.scan"
	OperationRescanCommit                            Operation = "veridex.commit.rescan"
)

// String returns the string representation of the operation.
func (o Operation) String() string {
	return string(o)
}

// IsRepositoryOperation returns true if this is a repository-level operation.
func (o Operation) IsRepositoryOperation() bool {
	return strings.HasPrefix(string(o), "veridex.repository.")
}

// IsCommitOperation returns true if this is a commit-level operation.
func (o Operation) IsCommitOperation() bool {
	return strings.HasPrefix(string(o), "veridex.commit.")
}

// PrescribedOperations provides predefined operation sequences for common workflows.
type PrescribedOperations struct {
	examples    bool
	enrichments bool
}

// NewPrescribedOperations creates a PrescribedOperations with the given settings.
// When enrichments is false, LLM-dependent operations (summaries, architecture docs,
// commit descriptions, cookbooks, wiki) are excluded from all workflows.
func NewPrescribedOperations(examples bool, enrichments bool) PrescribedOperations {
	return PrescribedOperations{examples: examples, enrichments: enrichments}
}

// All returns every operation that appears in any prescribed workflow.
// Used at startup to validate that all required handlers are registered.
func (p PrescribedOperations) All() []Operation {
	seen := make(map[Operation]struct{})
	var all []Operation

	for _, ops := range [][]Operation{
		p.CreateNewRepository(),
		p.SyncRepository(),
		p.ScanAndIndexCommit(),
		p.IndexCommit(),
		p.RescanCommit(),
	} {
		for _, op := range ops {
			if _, ok := seen[op]; !ok {
				seen[op] = struct{}{}
				all = append(all, op)
			}
		}
	}
	return all
}

// CreateNewRepository returns the operations needed to create a new repository.
func (p PrescribedOperations) CreateNewRepository() []Operation {
	return []Operation{
		OperationCloneRepository,
	}
}

// SyncRepository returns the operations needed to sync a repository.
func (p PrescribedOperations) SyncRepository() []Operation {
	return []Operation{
		OperationCloneRepository,
		OperationSyncRepository,
	}
}

// ScanAndIndexCommit returns the full operation sequence for scanning and indexing a commit.
func (p PrescribedOperations) ScanAndIndexCommit() []Operation {
	ops := []Operation{
		OperationScanCommit,
		OperationExtractSnippetsForCommit,
	}
	if p.examples {
		ops = append(ops, OperationExtractExamplesForCommit)
	}
	ops = append(ops,
		OperationCreateBM25IndexForCommit,
		OperationCreateCodeEmbeddingsForCommit,
	)
	if p.examples {
		ops = append(ops, OperationCreateExampleCodeEmbeddingsForCommit)
	}
	if p.enrichments && p.examples {
		ops = append(ops, OperationCreateSummaryEnrichmentForCommit)
	}
	if p.enrichments && p.examples {
		ops = append(ops, OperationCreateExampleSummaryForCommit)
	}
	if p.enrichments {
		ops = append(ops, OperationCreateSummaryEmbeddingsForCommit)
	}
	if p.enrichments && p.examples {
		ops = append(ops, OperationCreateExampleSummaryEmbeddingsForCommit)
	}
	ops = append(ops, OperationCreatePublicAPIDocsForCommit)
	if p.enrichments {
		ops = append(ops,
			OperationCreateArchitectureEnrichmentForCommit,
			OperationCreateCommitDescriptionForCommit,
			OperationCreateDatabaseSchemaForCommit,
			OperationCreateCookbookForCommit,
			OperationGenerateWikiForCommit,
		)
	}
	return ops
}

// IndexCommit returns the operation sequence for indexing an already-scanned commit.
func (p PrescribedOperations) IndexCommit() []Operation {
	ops := []Operation{
		OperationExtractSnippetsForCommit,
		OperationCreateBM25IndexForCommit,
		OperationCreateCodeEmbeddingsForCommit,
	}
	if p.enrichments && p.examples {
		ops = append(ops, OperationCreateSummaryEnrichmentForCommit)
	}
	if p.enrichments {
		ops = append(ops, OperationCreateSummaryEmbeddingsForCommit)
	}
	ops = append(ops, OperationCreatePublicAPIDocsForCommit)
	if p.enrichments {
		ops = append(ops,
			OperationCreateArchitectureEnrichmentForCommit,
			OperationCreateCommitDescriptionForCommit,
			OperationCreateDatabaseSchemaForCommit,
			OperationCreateCookbookForCommit,
			OperationGenerateWikiForCommit,
		)
	}
	return ops
}

// RescanCommit returns the operation sequence for rescanning a commit (full reindex).
func (p PrescribedOperations) RescanCommit() []Operation {
	ops := []Operation{
		OperationRescanCommit,
		OperationExtractSnippetsForCommit,
	}
	if p.examples {
		ops = append(ops, OperationExtractExamplesForCommit)
	}
	ops = append(ops,
		OperationCreateBM25IndexForCommit,
		OperationCreateCodeEmbeddingsForCommit,
	)
	if p.examples {
		ops = append(ops, OperationCreateExampleCodeEmbeddingsForCommit)
	}
	if p.enrichments && p.examples {
		ops = append(ops, OperationCreateSummaryEnrichmentForCommit)
	}
	if p.enrichments && p.examples {
		ops = append(ops, OperationCreateExampleSummaryForCommit)
	}
	if p.enrichments {
		ops = append(ops, OperationCreateSummaryEmbeddingsForCommit)
	}
	if p.enrichments && p.examples {
		ops = append(ops, OperationCreateExampleSummaryEmbeddingsForCommit)
	}
	ops = append(ops, OperationCreatePublicAPIDocsForCommit)
	if p.enrichments {
		ops = append(ops,
			OperationCreateArchitectureEnrichmentForCommit,
			OperationCreateCommitDescriptionForCommit,
			OperationCreateDatabaseSchemaForCommit,
			OperationCreateCookbookForCommit,
			OperationGenerateWikiForCommit,
		)
	}
	return ops
}
