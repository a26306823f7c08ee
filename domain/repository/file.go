package repository

import "time"

// File represents a single file entry within a commit's tree.
type File struct {
	id        int64
	commitSHA string
	path      string
	blobSHA   string
	mimeType  string
	extension string
	language  string
	size      int64
	createdAt time.Time
}

// NewFile creates a File for a commit tree entry.
func NewFile(commitSHA, path, blobSHA, mimeType, extension string, size int64) File {
	return File{
		commitSHA: commitSHA,
		path:      path,
		blobSHA:   blobSHA,
		mimeType:  mimeType,
		extension: extension,
		language:  extension,
		size:      size,
		createdAt: time.Now(),
	}
}

// NewFileWithDetails creates a File with all tree-entry details populated.
func NewFileWithDetails(commitSHA, path, blobSHA, mimeType, extension string, size int64) File {
	return NewFile(commitSHA, path, blobSHA, mimeType, extension, size)
}

// ReconstructFile reconstructs a File from persistence.
func ReconstructFile(id int64, commitSHA, path, blobSHA, mimeType, extension, language string, size int64, createdAt time.Time) File {
	return File{
		id:        id,
		commitSHA: commitSHA,
		path:      path,
		blobSHA:   blobSHA,
		mimeType:  mimeType,
		extension: extension,
		language:  language,
		size:      size,
		createdAt: createdAt,
	}
}

// ID returns the file's surrogate ID.
func (f File) ID() int64 { return f.id }

// CommitSHA returns the commit this file entry belongs to.
func (f File) CommitSHA() string { return f.commitSHA }

// Path returns the file's path within the tree.
func (f File) Path() string { return f.path }

// BlobSHA returns the blob SHA of the file's content.
func (f File) BlobSHA() string { return f.blobSHA }

// MimeType returns the file's detected MIME type.
func (f File) MimeType() string { return f.mimeType }

// Extension returns the file's extension, without a leading dot.
func (f File) Extension() string { return f.extension }

// Language returns the file's detected source language, derived from its
// extension when the language is not separately tracked.
func (f File) Language() string { return f.language }

// Size returns the file's size in bytes.
func (f File) Size() int64 { return f.size }

// CreatedAt returns when the file row was recorded.
func (f File) CreatedAt() time.Time { return f.createdAt }

// WithID returns a copy of the file with the given ID.
func (f File) WithID(id int64) File {
	f.id = id
	return f
}
