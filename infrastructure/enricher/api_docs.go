package enricher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/veridex/veridex/domain/enrichment"
	"github.com/veridex/veridex/domain/repository"
	"github.com/veridex/veridex/infrastructure/slicing"
)

// APIDocService extracts API documentation from code files.
type APIDocService struct {
	slicer *slicing.Slicer
}

// NewAPIDocService creates a new APIDocService using line-pattern extraction.
func NewAPIDocService() *APIDocService {
	return &APIDocService{}
}

// NewAPIDocServiceWithSlicer creates an APIDocService that extracts signatures
// and doc comments from the AST instead of line patterns.
func NewAPIDocServiceWithSlicer(slicer *slicing.Slicer) *APIDocService {
	return &APIDocService{slicer: slicer}
}

// Extract analyzes files to extract public API documentation.
// This is a simplified implementation that looks for common API patterns.
func (s *APIDocService) Extract(ctx context.Context, files []repository.File, language string, includePrivate bool) ([]enrichment.Enrichment, error) {
	if s.slicer != nil {
		if enrichments, err := s.extractFromAST(ctx, files, language, includePrivate); err == nil && len(enrichments) > 0 {
			return enrichments, nil
		}
	}

	var enrichments []enrichment.Enrichment

	for _, file := range files {
		filePath := file.Path()
		if filePath == "" {
			continue
		}

		// Skip test files
		base := filepath.Base(filePath)
		if strings.Contains(base, "test") || strings.Contains(base, "_test") || strings.Contains(base, "spec") {
			continue
		}

		content := s.extractPublicAPI(filePath, language, includePrivate)
		if content == "" {
			continue
		}

		e := enrichment.NewEnrichment(
			enrichment.TypeUsage,
			enrichment.SubtypeAPIDocs,
			enrichment.EntityTypeSnippet,
			content,
		)
		enrichments = append(enrichments, e)
	}

	return enrichments, nil
}

// extractFromAST slices the files with tree-sitter and renders one Markdown
// API document per module, covering public functions, methods, and types with
// their doc comments.
func (s *APIDocService) extractFromAST(ctx context.Context, files []repository.File, language string, includePrivate bool) ([]enrichment.Enrichment, error) {
	cfg := slicing.DefaultSliceConfig()
	cfg.IncludePrivate = includePrivate

	result, err := s.slicer.Slice(ctx, files, "", cfg)
	if err != nil {
		return nil, err
	}

	type moduleDoc struct {
		functions []slicing.FunctionDefinition
		types     []slicing.TypeDefinition
	}

	modules := make(map[string]*moduleDoc)
	moduleOf := func(filePath string) string {
		return strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	for _, fn := range result.Functions() {
		if !fn.IsPublic() && !includePrivate {
			continue
		}
		key := moduleOf(fn.FilePath())
		if modules[key] == nil {
			modules[key] = &moduleDoc{}
		}
		modules[key].functions = append(modules[key].functions, fn)
	}
	for _, td := range result.Types() {
		key := moduleOf(td.FilePath())
		if modules[key] == nil {
			modules[key] = &moduleDoc{}
		}
		modules[key].types = append(modules[key].types, td)
	}

	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)

	var enrichments []enrichment.Enrichment
	for _, name := range names {
		doc := modules[name]
		var b strings.Builder
		fmt.Fprintf(&b, "## %s (%s)\n\n", name, language)

		if len(doc.types) > 0 {
			b.WriteString("### Types\n\n")
			sort.Slice(doc.types, func(i, j int) bool {
				return doc.types[i].QualifiedName() < doc.types[j].QualifiedName()
			})
			for _, td := range doc.types {
				fmt.Fprintf(&b, "- `%s` (%s)", td.QualifiedName(), td.Kind())
				if ds := td.Docstring(); ds != "" {
					fmt.Fprintf(&b, " — %s", firstSentence(ds))
				}
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}

		if len(doc.functions) > 0 {
			b.WriteString("### Functions\n\n")
			sort.Slice(doc.functions, func(i, j int) bool {
				return doc.functions[i].QualifiedName() < doc.functions[j].QualifiedName()
			})
			for _, fn := range doc.functions {
				fmt.Fprintf(&b, "- `%s`", fn.QualifiedName())
				if ds := fn.Docstring(); ds != "" {
					fmt.Fprintf(&b, " — %s", firstSentence(ds))
				}
				b.WriteString("\n")
			}
		}

		e := enrichment.NewEnrichmentWithLanguage(
			enrichment.TypeUsage,
			enrichment.SubtypeAPIDocs,
			enrichment.EntityTypeSnippet,
			b.String(),
			language,
		)
		enrichments = append(enrichments, e)
	}

	return enrichments, nil
}

func firstSentence(text string) string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	if idx := strings.Index(text, ". "); idx > 0 {
		return text[:idx+1]
	}
	if len(text) > 200 {
		return text[:200]
	}
	return text
}

// extractPublicAPI looks for common API line patterns. It is the fallback
// when no slicer is configured.
func (s *APIDocService) extractPublicAPI(filePath, language string, includePrivate bool) string {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return ""
	}

	content := string(data)

	// Look for public API indicators based on language
	var apiIndicators []string

	switch language {
	case "python":
		apiIndicators = []string{"def ", "class ", "async def "}
	case "go":
		apiIndicators = []string{"func ", "type ", "var ", "const "}
	case "javascript", "typescript":
		apiIndicators = []string{"export ", "function ", "class ", "const ", "async function "}
	case "java":
		apiIndicators = []string{"public ", "class ", "interface "}
	case "rust":
		apiIndicators = []string{"pub fn ", "pub struct ", "pub enum ", "pub trait "}
	default:
		return ""
	}

	// Simple heuristic: count public API elements
	publicAPIs := 0
	for _, indicator := range apiIndicators {
		publicAPIs += strings.Count(content, indicator)
	}

	// Only include files with substantial public API
	if publicAPIs < 3 {
		return ""
	}

	// Extract first N lines as API overview
	lines := strings.Split(content, "\n")
	maxLines := 100
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	// Filter to only include lines with API indicators
	var apiLines []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, indicator := range apiIndicators {
			if strings.Contains(trimmed, indicator) {
				apiLines = append(apiLines, line)
				break
			}
		}
	}

	if len(apiLines) == 0 {
		return ""
	}

	result := "### " + filepath.Base(filePath) + " (" + language + ")\n\n"
	result += "```" + language + "\n"
	result += strings.Join(apiLines, "\n")
	result += "\n```"

	return result
}
