package repository

import (
	"errors"
	"time"
)

// ErrEmptyRemoteURL indicates a repository was created with an empty remote URL.
var ErrEmptyRemoteURL = errors.New("remote URL cannot be empty")

// Repository is a tracked Git repository: the aggregate root that commits,
// branches, tags, and files are all scoped under.
type Repository struct {
	id             int64
	remoteURL      string
	workingCopy    WorkingCopy
	trackingConfig TrackingConfig
	createdAt      time.Time
	updatedAt      time.Time
	lastScannedAt  time.Time
}

// NewRepository creates a new Repository tracking the given remote URL.
func NewRepository(remoteURL string) (Repository, error) {
	if remoteURL == "" {
		return Repository{}, ErrEmptyRemoteURL
	}
	now := time.Now()
	return Repository{
		remoteURL: remoteURL,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructRepository reconstructs a Repository from persistence.
func ReconstructRepository(
	id int64,
	remoteURL string,
	workingCopy WorkingCopy,
	trackingConfig TrackingConfig,
	createdAt, updatedAt, lastScannedAt time.Time,
) Repository {
	return Repository{
		id:             id,
		remoteURL:      remoteURL,
		workingCopy:    workingCopy,
		trackingConfig: trackingConfig,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		lastScannedAt:  lastScannedAt,
	}
}

// ID returns the repository's surrogate ID.
func (r Repository) ID() int64 { return r.id }

// RemoteURL returns the remote's URL.
func (r Repository) RemoteURL() string { return r.remoteURL }

// WorkingCopy returns the local clone location, if any.
func (r Repository) WorkingCopy() WorkingCopy { return r.workingCopy }

// TrackingConfig returns which ref this repository follows for sync.
func (r Repository) TrackingConfig() TrackingConfig { return r.trackingConfig }

// CreatedAt returns when the repository was first registered.
func (r Repository) CreatedAt() time.Time { return r.createdAt }

// UpdatedAt returns when the repository row was last updated.
func (r Repository) UpdatedAt() time.Time { return r.updatedAt }

// LastScannedAt returns when the repository was last scanned for new
// commits, or the zero Time if it has never been scanned.
func (r Repository) LastScannedAt() time.Time { return r.lastScannedAt }

// HasWorkingCopy reports whether the repository has a local clone.
func (r Repository) HasWorkingCopy() bool { return !r.workingCopy.IsEmpty() }

// HasTrackingConfig reports whether a sync ref has been configured.
func (r Repository) HasTrackingConfig() bool { return !r.trackingConfig.IsEmpty() }

// WithWorkingCopy returns a copy of the repository with the given working copy.
func (r Repository) WithWorkingCopy(wc WorkingCopy) Repository {
	r.workingCopy = wc
	r.updatedAt = time.Now()
	return r
}

// WithTrackingConfig returns a copy of the repository with the given tracking config.
func (r Repository) WithTrackingConfig(tc TrackingConfig) Repository {
	r.trackingConfig = tc
	r.updatedAt = time.Now()
	return r
}

// WithID returns a copy of the repository with the given ID, as assigned
// on first persistence.
func (r Repository) WithID(id int64) Repository {
	r.id = id
	return r
}

// WithLastScannedAt returns a copy of the repository with its last-scan
// timestamp set to now, as recorded once a sync completes.
func (r Repository) WithLastScannedAt(t time.Time) Repository {
	r.lastScannedAt = t
	r.updatedAt = time.Now()
	return r
}
