package snippet

import (
	"testing"
	"time"
)

func TestNewCommitIndex_StartsPending(t *testing.T) {
	ci := NewCommitIndex("abc123")

	if !ci.IsPending() {
		t.Fatalf("status = %s, want pending", ci.Status())
	}
	if ci.CommitSHA() != "abc123" {
		t.Errorf("CommitSHA() = %s, want abc123", ci.CommitSHA())
	}
	if ci.SnippetCount() != 0 {
		t.Errorf("SnippetCount() = %d, want 0", ci.SnippetCount())
	}
}

func TestCommitIndex_Lifecycle(t *testing.T) {
	ci := NewCommitIndex("abc123")

	started := ci.Start()
	if !started.IsInProgress() {
		t.Fatalf("after Start: status = %s, want in_progress", started.Status())
	}

	snippets := []Snippet{NewSnippet("func main() {}", ".go", nil)}
	completed := started.Complete(snippets, 3, 1.5)
	if !completed.IsCompleted() {
		t.Fatalf("after Complete: status = %s, want completed", completed.Status())
	}
	if completed.SnippetCount() != 1 {
		t.Errorf("SnippetCount() = %d, want 1", completed.SnippetCount())
	}
	if completed.FilesProcessed() != 3 {
		t.Errorf("FilesProcessed() = %d, want 3", completed.FilesProcessed())
	}
	if completed.IndexedAt().IsZero() {
		t.Error("IndexedAt() should be set after Complete")
	}
	if completed.ErrorMessage() != "" {
		t.Errorf("ErrorMessage() = %q, want empty", completed.ErrorMessage())
	}
}

func TestCommitIndex_Fail(t *testing.T) {
	ci := NewCommitIndex("abc123").Start()

	failed := ci.Fail("parse error")
	if !failed.IsFailed() {
		t.Fatalf("after Fail: status = %s, want failed", failed.Status())
	}
	if failed.ErrorMessage() != "parse error" {
		t.Errorf("ErrorMessage() = %q, want 'parse error'", failed.ErrorMessage())
	}
}

func TestCommitIndex_Immutability(t *testing.T) {
	original := NewCommitIndex("abc123")
	_ = original.Start()

	if !original.IsPending() {
		t.Error("Start should not mutate the original value")
	}
}

func TestReconstructCommitIndex(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	ci := ReconstructCommitIndex("abc123", nil, IndexStatusCompleted, updated, "", 5, 2.5, created, updated)

	if !ci.IsCompleted() {
		t.Fatalf("status = %s, want completed", ci.Status())
	}
	if ci.CreatedAt() != created {
		t.Errorf("CreatedAt() = %v, want %v", ci.CreatedAt(), created)
	}
	if ci.ProcessingTimeSeconds() != 2.5 {
		t.Errorf("ProcessingTimeSeconds() = %v, want 2.5", ci.ProcessingTimeSeconds())
	}
}

func TestIndexStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   IndexStatus
		terminal bool
	}{
		{IndexStatusPending, false},
		{IndexStatusInProgress, false},
		{IndexStatusCompleted, true},
		{IndexStatusCompletedWithErrors, true},
		{IndexStatusFailed, true},
	}

	for _, tt := range tests {
		if got := tt.status.IsTerminal(); got != tt.terminal {
			t.Errorf("%s.IsTerminal() = %v, want %v", tt.status, got, tt.terminal)
		}
	}
}
