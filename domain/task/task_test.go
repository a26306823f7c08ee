package task

import "testing"

func TestNewTask_DedupKeyStableAcrossPayloadKeyOrder(t *testing.T) {
	payloadA := map[string]any{"index_id": "repo-1", "phase": "extract"}
	payloadB := map[string]any{"phase": "extract", "index_id": "repo-1"}

	a := NewTask(OperationExtractSnippets, int(PriorityNormal), payloadA)
	b := NewTask(OperationExtractSnippets, int(PriorityNormal), payloadB)

	if a.DedupKey() != b.DedupKey() {
		t.Fatalf("dedup keys diverged for equivalent payloads: %q vs %q", a.DedupKey(), b.DedupKey())
	}
}

func TestNewTask_DedupKeyDiffersByOperation(t *testing.T) {
	payload := map[string]any{"index_id": "repo-1"}

	extract := NewTask(OperationExtractSnippets, int(PriorityNormal), payload)
	bm25 := NewTask(OperationCreateBM25Index, int(PriorityNormal), payload)

	if extract.DedupKey() == bm25.DedupKey() {
		t.Fatalf("expected distinct dedup keys for distinct operations, got %q for both", extract.DedupKey())
	}
}

func TestNewTask_DedupKeyDiffersByPayloadValue(t *testing.T) {
	a := NewTask(OperationExtractSnippets, int(PriorityNormal), map[string]any{"index_id": "repo-1"})
	b := NewTask(OperationExtractSnippets, int(PriorityNormal), map[string]any{"index_id": "repo-2"})

	if a.DedupKey() == b.DedupKey() {
		t.Fatalf("expected distinct dedup keys for distinct payload values")
	}
}

func TestTask_PayloadIsDefensiveCopy(t *testing.T) {
	original := map[string]any{"index_id": "repo-1"}
	tk := NewTask(OperationExtractSnippets, int(PriorityNormal), original)

	got := tk.Payload()
	got["index_id"] = "mutated"

	if tk.Payload()["index_id"] != "repo-1" {
		t.Fatalf("mutating the returned payload leaked into the task")
	}
}

func TestTask_WithIDAndWithTimestamps(t *testing.T) {
	tk := NewTask(OperationExtractSnippets, int(PriorityNormal), map[string]any{"index_id": "repo-1"})

	withID := tk.WithID(42)
	if withID.ID() != 42 {
		t.Fatalf("expected id 42, got %d", withID.ID())
	}
	if tk.ID() != 0 {
		t.Fatalf("WithID mutated the receiver")
	}
}
