package enricher

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CookbookContextService gathers repository context for cookbook generation:
// the README, manifest files, and entry points a how-to guide would lean on.
type CookbookContextService struct{}

// NewCookbookContextService creates a new CookbookContextService.
func NewCookbookContextService() *CookbookContextService {
	return &CookbookContextService{}
}

const cookbookSectionLimit = 4000

// Gather collects README, manifest, and entry-point excerpts for a repository.
func (s *CookbookContextService) Gather(ctx context.Context, repoPath, language string) (string, error) {
	var sections []string

	if readme := s.readFirst(repoPath, []string{"README.md", "README.rst", "README.txt", "README"}); readme != "" {
		sections = append(sections, "## README\n\n"+readme)
	}

	manifests := manifestsForLanguage(language)
	for _, name := range manifests {
		path := filepath.Join(repoPath, name)
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		sections = append(sections, "## "+name+"\n\n"+truncate(string(content), cookbookSectionLimit))
	}

	if examples := s.listExampleFiles(repoPath); len(examples) > 0 {
		sections = append(sections, "## Example files\n\n"+strings.Join(examples, "\n"))
	}

	if len(sections) == 0 {
		return "No README or manifest files detected in the repository.", nil
	}

	result := strings.Join(sections, "\n\n---\n\n")
	if len(result) > 12000 {
		result = result[:12000] + "\n\n...[truncated]"
	}
	return result, nil
}

func (s *CookbookContextService) readFirst(repoPath string, names []string) string {
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(repoPath, name))
		if err == nil && len(content) > 0 {
			return truncate(string(content), cookbookSectionLimit)
		}
	}
	return ""
}

func (s *CookbookContextService) listExampleFiles(repoPath string) []string {
	var found []string
	for _, dir := range []string{"examples", "example", "samples", "cookbook", "docs/examples"} {
		root := filepath.Join(repoPath, dir)
		_ = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return nil
			}
			rel, relErr := filepath.Rel(repoPath, path)
			if relErr != nil {
				return nil
			}
			found = append(found, "- "+rel)
			return nil
		})
	}
	sort.Strings(found)
	if len(found) > 50 {
		found = found[:50]
	}
	return found
}

func manifestsForLanguage(language string) []string {
	switch strings.ToLower(language) {
	case "go":
		return []string{"go.mod"}
	case "python":
		return []string{"pyproject.toml", "setup.py", "requirements.txt"}
	case "javascript", "typescript", "tsx":
		return []string{"package.json"}
	case "rust":
		return []string{"Cargo.toml"}
	case "java":
		return []string{"pom.xml", "build.gradle"}
	case "ruby":
		return []string{"Gemfile"}
	case "csharp":
		return []string{"Directory.Build.props"}
	default:
		return []string{"go.mod", "package.json", "pyproject.toml", "Cargo.toml", "pom.xml"}
	}
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "\n...[truncated]"
}
