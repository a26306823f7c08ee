package persistence

import (
	"database/sql"
	"encoding/json"
	"time"
)

// RepositoryModel is the GORM row for a tracked Git repository.
type RepositoryModel struct {
	ID                 int64      `gorm:"primaryKey;autoIncrement"`
	SanitizedRemoteURI string     `gorm:"column:sanitized_remote_uri;uniqueIndex;size:1024"`
	RemoteURI          string     `gorm:"column:remote_uri;size:1024"`
	ClonedPath         *string    `gorm:"column:cloned_path;size:1024"`
	LastScannedAt      *time.Time `gorm:"column:last_scanned_at"`
	TrackingType       string     `gorm:"column:tracking_type;index;size:255"`
	TrackingName       string     `gorm:"column:tracking_name;index;size:255"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
}

// TableName returns the table name.
func (RepositoryModel) TableName() string { return "veridex_repositories" }

// CommitModel is the GORM row for a Git commit.
type CommitModel struct {
	CommitSHA       string    `gorm:"column:commit_sha;primaryKey;size:64"`
	RepoID          int64     `gorm:"column:repo_id;index"`
	Date            time.Time `gorm:"column:date"`
	Message         string    `gorm:"column:message;type:text"`
	ParentCommitSHA *string   `gorm:"column:parent_commit_sha;index;size:64"`
	Author          string    `gorm:"column:author;index;size:255"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name.
func (CommitModel) TableName() string { return "veridex_commits" }

// BranchModel is the GORM row for a Git branch.
type BranchModel struct {
	RepoID        int64     `gorm:"column:repo_id;primaryKey;index"`
	Name          string    `gorm:"column:name;primaryKey;index;size:255"`
	HeadCommitSHA string    `gorm:"column:head_commit_sha;index;size:64"`
	IsDefault     bool      `gorm:"column:is_default;default:false"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name.
func (BranchModel) TableName() string { return "veridex_branches" }

// TagModel is the GORM row for a Git tag.
type TagModel struct {
	RepoID          int64      `gorm:"column:repo_id;primaryKey;index"`
	Name            string     `gorm:"column:name;primaryKey;index;size:255"`
	TargetCommitSHA string     `gorm:"column:target_commit_sha;index;size:64"`
	Message         *string    `gorm:"column:message;type:text"`
	TaggerName      *string    `gorm:"column:tagger_name;size:255"`
	TaggerEmail     *string    `gorm:"column:tagger_email;size:255"`
	TaggedAt        *time.Time `gorm:"column:tagged_at"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

// TableName returns the table name.
func (TagModel) TableName() string { return "veridex_tags" }

// FileModel is the GORM row for a file entry within a commit's tree. A
// surrogate ID lets a file be referenced independently of its (commit,
// path) pair, which the (commit_sha, path) unique index still enforces.
type FileModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CommitSHA string    `gorm:"column:commit_sha;uniqueIndex:idx_veridex_file_commit_path;size:64"`
	Path      string    `gorm:"column:path;uniqueIndex:idx_veridex_file_commit_path;size:1024"`
	BlobSHA   string    `gorm:"column:blob_sha;index;size:64"`
	MimeType  string    `gorm:"column:mime_type;index;size:255"`
	Extension string    `gorm:"column:extension;index;size:255"`
	Size      int64     `gorm:"column:size"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName returns the table name.
func (FileModel) TableName() string { return "veridex_commit_files" }

// CommitIndexModel is the GORM row for a commit's indexing status.
type CommitIndexModel struct {
	CommitSHA             string         `gorm:"column:commit_sha;primaryKey"`
	Status                string         `gorm:"column:status;index"`
	IndexedAt             sql.NullTime   `gorm:"column:indexed_at"`
	ErrorMessage          sql.NullString `gorm:"column:error_message"`
	FilesProcessed        int            `gorm:"column:files_processed;default:0"`
	ProcessingTimeSeconds float64        `gorm:"column:processing_time_seconds;default:0.0"`
	CreatedAt             time.Time      `gorm:"column:created_at;not null"`
	UpdatedAt             time.Time      `gorm:"column:updated_at;not null"`
}

// TableName returns the table name.
func (CommitIndexModel) TableName() string { return "veridex_commit_indexes" }

// EnrichmentModel is the GORM row for an enrichment (summary, description,
// snippet, etc.).
type EnrichmentModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Type      string    `gorm:"column:type;not null;index"`
	Subtype   string    `gorm:"column:subtype;not null;index"`
	Content   string    `gorm:"column:content;type:text;not null"`
	Language  string    `gorm:"column:language;size:64"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName returns the table name.
func (EnrichmentModel) TableName() string { return "veridex_enrichments" }

// EnrichmentAssociationModel links an enrichment to the entity it was
// derived from (a commit, a file, a repository, ...).
type EnrichmentAssociationModel struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	EnrichmentID int64     `gorm:"column:enrichment_id;not null;index"`
	EntityType   string    `gorm:"column:entity_type;size:50;not null;index"`
	EntityID     string    `gorm:"column:entity_id;size:255;not null;index"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null"`
}

// TableName returns the table name.
func (EnrichmentAssociationModel) TableName() string { return "veridex_enrichment_associations" }

// ChunkLineRangeModel is the GORM row recording which source lines a
// snippet enrichment was chunked from.
type ChunkLineRangeModel struct {
	ID           int64 `gorm:"column:id;primaryKey;autoIncrement"`
	EnrichmentID int64 `gorm:"column:enrichment_id;not null;uniqueIndex"`
	StartLine    int   `gorm:"column:start_line;not null"`
	EndLine      int   `gorm:"column:end_line;not null"`
}

// TableName returns the table name.
func (ChunkLineRangeModel) TableName() string { return "veridex_chunk_line_ranges" }

// SnippetModel is the GORM row for a content-addressed code snippet.
type SnippetModel struct {
	SHA       string    `gorm:"column:sha;primaryKey;size:64"`
	Content   string    `gorm:"column:content;type:text"`
	Extension string    `gorm:"column:extension;size:32"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName returns the table name.
func (SnippetModel) TableName() string { return "veridex_snippets" }

// SnippetCommitAssociationModel links snippets to commits.
type SnippetCommitAssociationModel struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	SnippetSHA string    `gorm:"column:snippet_sha;index;size:64"`
	CommitSHA  string    `gorm:"column:commit_sha;index;size:64"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
}

// TableName returns the table name.
func (SnippetCommitAssociationModel) TableName() string { return "veridex_snippet_commit_associations" }

// SnippetFileDerivationModel links snippets to the source files they were cut from.
type SnippetFileDerivationModel struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	SnippetSHA string    `gorm:"column:snippet_sha;index;size:64"`
	FileID     int64     `gorm:"column:file_id;index"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
}

// TableName returns the table name.
func (SnippetFileDerivationModel) TableName() string { return "veridex_snippet_file_derivations" }

// TaskModel is the GORM row for a queued task.
type TaskModel struct {
	ID        int64           `gorm:"column:id;primaryKey;autoIncrement"`
	DedupKey  string          `gorm:"column:dedup_key;type:varchar(255);uniqueIndex;not null"`
	Type      string          `gorm:"column:type;type:varchar(255);index;not null"`
	Payload   json.RawMessage `gorm:"column:payload;type:jsonb"`
	Priority  int             `gorm:"column:priority;not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name.
func (TaskModel) TableName() string { return "veridex_tasks" }

// TaskStatusModel is the GORM row for a progress-tree node.
type TaskStatusModel struct {
	ID            string    `gorm:"column:id;type:varchar(255);primaryKey;index;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null"`
	Operation     string    `gorm:"column:operation;type:varchar(255);index;not null"`
	TrackableID   *int64    `gorm:"column:trackable_id;index"`
	TrackableType *string   `gorm:"column:trackable_type;type:varchar(255);index"`
	ParentID      *string   `gorm:"column:parent;type:varchar(255);index"`
	Message       string    `gorm:"column:message;type:text;default:''"`
	State         string    `gorm:"column:state;type:varchar(255);default:''"`
	Error         string    `gorm:"column:error;type:text;default:''"`
	Total         int       `gorm:"column:total;default:0"`
	Current       int       `gorm:"column:current;default:0"`
}

// TableName returns the table name.
func (TaskStatusModel) TableName() string { return "veridex_task_status" }
