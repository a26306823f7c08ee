package search

import "testing"

func TestNewEmbedding_CopiesVector(t *testing.T) {
	vec := []float64{0.1, 0.2, 0.3}
	emb := NewEmbedding("snip-1", vec)

	vec[0] = 99

	got := emb.Vector()
	if got[0] != 0.1 {
		t.Errorf("Vector()[0] = %v, want 0.1 (constructor should copy)", got[0])
	}

	got[1] = 99
	if emb.Vector()[1] != 0.2 {
		t.Error("Vector() should return a copy")
	}
}

func TestEmbedding_Accessors(t *testing.T) {
	emb := NewEmbedding("snip-1", []float64{1, 2, 3, 4})

	if emb.SnippetID() != "snip-1" {
		t.Errorf("SnippetID() = %s, want snip-1", emb.SnippetID())
	}
	if emb.Dimensions() != 4 {
		t.Errorf("Dimensions() = %d, want 4", emb.Dimensions())
	}
	if emb.IsEmpty() {
		t.Error("IsEmpty() = true for a non-empty vector")
	}
	if !NewEmbedding("snip-2", nil).IsEmpty() {
		t.Error("IsEmpty() = false for an empty vector")
	}
}

func TestFilters_Languages_FoldsSingular(t *testing.T) {
	single := NewFilters(WithLanguage("go"))
	if got := single.Languages(); len(got) != 1 || got[0] != "go" {
		t.Errorf("Languages() = %v, want [go]", got)
	}

	plural := NewFilters(WithLanguages([]string{"go", "python"}))
	if got := plural.Languages(); len(got) != 2 {
		t.Errorf("Languages() = %v, want two entries", got)
	}

	if got := NewFilters().Languages(); got != nil {
		t.Errorf("Languages() on empty filters = %v, want nil", got)
	}

	if NewFilters(WithLanguages([]string{"go"})).IsEmpty() {
		t.Error("IsEmpty() = true with a languages filter set")
	}
}
