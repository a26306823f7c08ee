package search

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenizeCodeIdentifiers(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{"snake_case", "get_user_by_id", []string{"get", "user", "by", "id"}},
		{"camelCase", "getUserByID", []string{"get", "user", "by", "id"}},
		{"PascalCase", "HTTPServer", []string{"http", "server"}},
		{"digits preserved", "getUserID2", []string{"get", "user", "id", "2"}},
		{"punctuation separates", "user.Name, age!", []string{"user", "name", "age"}},
		{"empty", "", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TokenizeCodeIdentifiers(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("TokenizeCodeIdentifiers(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestExpandWithIdentifierAtoms(t *testing.T) {
	expanded := ExpandWithIdentifierAtoms("func getUserByID(id int) {}")
	if !strings.Contains(expanded, "func getUserByID(id int) {}") {
		t.Fatalf("expected original text preserved, got %q", expanded)
	}
	for _, atom := range []string{"get", "user", "by", "id"} {
		if !strings.Contains(expanded, atom) {
			t.Fatalf("expected atom %q in expansion, got %q", atom, expanded)
		}
	}
}

func TestExpandWithIdentifierAtoms_NoAtomsReturnsOriginal(t *testing.T) {
	if got := ExpandWithIdentifierAtoms(""); got != "" {
		t.Fatalf("expected empty string unchanged, got %q", got)
	}
}
