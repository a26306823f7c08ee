package repository

import "testing"

func TestSanitizeRemoteURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "credentials and git suffix stripped",
			url:  "https://user:pw@github.com/a/b.git",
			want: "https://github.com/a/b",
		},
		{
			name: "plain https untouched",
			url:  "https://github.com/a/b",
			want: "https://github.com/a/b",
		},
		{
			name: "git suffix only",
			url:  "https://github.com/a/b.git",
			want: "https://github.com/a/b",
		},
		{
			name: "trailing slash dropped",
			url:  "https://github.com/a/b/",
			want: "https://github.com/a/b",
		},
		{
			name: "token credential stripped",
			url:  "https://token@gitlab.com/group/project.git",
			want: "https://gitlab.com/group/project",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeRemoteURL(tt.url)
			if got != tt.want {
				t.Errorf("SanitizeRemoteURL(%q) = %q, want %q", tt.url, got, tt.want)
			}

			// Sanitizing is idempotent.
			if again := SanitizeRemoteURL(got); again != got {
				t.Errorf("SanitizeRemoteURL not idempotent: %q -> %q", got, again)
			}
		})
	}
}
