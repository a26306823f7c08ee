package dto

import (
	"time"

	"github.com/veridex/veridex/infrastructure/api/jsonapi"
)

// RepositoryAttributes represents repository attributes in JSON:API format.
type RepositoryAttributes struct {
	RemoteURI      string     `json:"remote_uri"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
	LastScannedAt  *time.Time `json:"last_scanned_at,omitempty"`
	ClonedPath     *string    `json:"cloned_path,omitempty"`
	TrackingBranch *string    `json:"tracking_branch,omitempty"`
	NumCommits     int        `json:"num_commits"`
	NumBranches    int        `json:"num_branches"`
	NumTags        int        `json:"num_tags"`
}

// RepositoryData represents repository data in JSON:API format.
type RepositoryData struct {
	Type       string               `json:"type"`
	ID         string               `json:"id"`
	Attributes RepositoryAttributes `json:"attributes"`
}

// RepositoryResponse represents a single repository in JSON:API format.
type RepositoryResponse struct {
	Data RepositoryData `json:"data"`
}

// RepositoryListResponse represents a list of repositories in JSON:API format.
type RepositoryListResponse struct {
	Data  []RepositoryData `json:"data"`
	Meta  *jsonapi.Meta    `json:"meta,omitempty"`
	Links *jsonapi.Links   `json:"links,omitempty"`
}

// RepositoryBranchData represents a branch in repository details.
type RepositoryBranchData struct {
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
}

// RepositoryCommitData represents a recent commit in repository details.
type RepositoryCommitData struct {
	SHA       string    `json:"sha"`
	Message   string    `json:"message"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

// RepositoryDetailsResponse represents a repository with branches and recent
// commits.
type RepositoryDetailsResponse struct {
	Data          RepositoryData         `json:"data"`
	Branches      []RepositoryBranchData `json:"branches"`
	RecentCommits []RepositoryCommitData `json:"recent_commits"`
}

// RepositoryCreateAttributes represents the attributes for creating a repository.
type RepositoryCreateAttributes struct {
	RemoteURI string `json:"remote_uri"`
}

// RepositoryCreateData represents the data for creating a repository.
type RepositoryCreateData struct {
	Type       string                     `json:"type"`
	Attributes RepositoryCreateAttributes `json:"attributes"`
}

// RepositoryCreateRequest represents a JSON:API request to create a repository.
type RepositoryCreateRequest struct {
	Data RepositoryCreateData `json:"data"`
}

// RepositoryStatusSummaryAttributes represents aggregated status attributes.
type RepositoryStatusSummaryAttributes struct {
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RepositoryStatusSummaryData represents aggregated status data in JSON:API format.
type RepositoryStatusSummaryData struct {
	Type       string                            `json:"type"`
	ID         string                            `json:"id"`
	Attributes RepositoryStatusSummaryAttributes `json:"attributes"`
}

// RepositoryStatusSummaryResponse represents the aggregated status response.
type RepositoryStatusSummaryResponse struct {
	Data RepositoryStatusSummaryData `json:"data"`
}

// TrackingMode selects what a repository follows when syncing.
type TrackingMode string

// TrackingMode values.
const (
	TrackingModeBranch TrackingMode = "branch"
	TrackingModeTag    TrackingMode = "tag"
)

// TrackingConfigAttributes represents tracking config attributes in JSON:API format.
type TrackingConfigAttributes struct {
	Mode  TrackingMode `json:"mode"`
	Value *string      `json:"value,omitempty"`
}

// TrackingConfigData represents tracking config data in JSON:API format.
type TrackingConfigData struct {
	Type       string                   `json:"type"`
	Attributes TrackingConfigAttributes `json:"attributes"`
}

// TrackingConfigResponse represents a tracking config response.
type TrackingConfigResponse struct {
	Data TrackingConfigData `json:"data"`
}

// TrackingConfigUpdateRequest represents a JSON:API request to update the
// tracking config.
type TrackingConfigUpdateRequest struct {
	Data TrackingConfigData `json:"data"`
}
