package repository

import "time"

// Branch represents a Git branch ref tracked against a Repository.
type Branch struct {
	id            int64
	repoID        int64
	name          string
	headCommitSHA string
	isDefault     bool
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBranch creates a Branch pointing at the given head commit.
func NewBranch(repoID int64, name, headCommitSHA string, isDefault bool) Branch {
	now := time.Now()
	return Branch{
		repoID:        repoID,
		name:          name,
		headCommitSHA: headCommitSHA,
		isDefault:     isDefault,
		createdAt:     now,
		updatedAt:     now,
	}
}

// ReconstructBranch reconstructs a Branch from persistence.
func ReconstructBranch(id, repoID int64, name, headCommitSHA string, isDefault bool, createdAt, updatedAt time.Time) Branch {
	return Branch{
		id:            id,
		repoID:        repoID,
		name:          name,
		headCommitSHA: headCommitSHA,
		isDefault:     isDefault,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ID returns the branch's surrogate ID.
func (b Branch) ID() int64 { return b.id }

// RepoID returns the owning repository's ID.
func (b Branch) RepoID() int64 { return b.repoID }

// Name returns the branch name.
func (b Branch) Name() string { return b.name }

// HeadCommitSHA returns the commit SHA the branch currently points at.
func (b Branch) HeadCommitSHA() string { return b.headCommitSHA }

// IsDefault reports whether this is the repository's default branch.
func (b Branch) IsDefault() bool { return b.isDefault }

// CreatedAt returns when the branch row was first recorded.
func (b Branch) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns when the branch's head was last updated.
func (b Branch) UpdatedAt() time.Time { return b.updatedAt }

// WithID returns a copy of the branch with the given ID.
func (b Branch) WithID(id int64) Branch {
	b.id = id
	return b
}

// WithHeadCommitSHA returns a copy of the branch advanced to a new head.
func (b Branch) WithHeadCommitSHA(sha string) Branch {
	b.headCommitSHA = sha
	b.updatedAt = time.Now()
	return b
}
