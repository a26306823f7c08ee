package enricher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// PhysicalArchitectureService discovers deployment topology from container
// manifests so the architecture prompt is seeded with real services instead
// of asking the model to guess them from source alone.
type PhysicalArchitectureService struct{}

// NewPhysicalArchitectureService creates a new PhysicalArchitectureService.
func NewPhysicalArchitectureService() *PhysicalArchitectureService {
	return &PhysicalArchitectureService{}
}

// Discover scans a repository for docker-compose files and Dockerfiles and
// renders a narrative of the detected services, ports, and volumes.
func (s *PhysicalArchitectureService) Discover(ctx context.Context, repoPath string) (string, error) {
	var sections []string

	composeNames := []string{
		"docker-compose.yml",
		"docker-compose.yaml",
		"compose.yml",
		"compose.yaml",
	}
	for _, name := range composeNames {
		path := filepath.Join(repoPath, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if section := s.describeCompose(path); section != "" {
			sections = append(sections, section)
		}
	}

	dockerfiles, err := s.findDockerfiles(repoPath)
	if err != nil {
		return "", err
	}
	for _, path := range dockerfiles {
		if section := s.describeDockerfile(repoPath, path); section != "" {
			sections = append(sections, section)
		}
	}

	if len(sections) == 0 {
		return "No container manifests detected in the repository.", nil
	}

	result := strings.Join(sections, "\n\n")
	if len(result) > 10000 {
		result = result[:10000] + "\n\n...[truncated]"
	}
	return result, nil
}

type composeService struct {
	Image   string `yaml:"image"`
	Build   any    `yaml:"build"`
	Ports   []any  `yaml:"ports"`
	Volumes []any  `yaml:"volumes"`
	Depends []any  `yaml:"depends_on"`
}

type composeFile struct {
	Services map[string]composeService `yaml:"services"`
}

func (s *PhysicalArchitectureService) describeCompose(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	var compose composeFile
	if err := yaml.Unmarshal(data, &compose); err != nil || len(compose.Services) == 0 {
		return ""
	}

	names := make([]string, 0, len(compose.Services))
	for name := range compose.Services {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "## Compose services (%s)\n", filepath.Base(path))
	for _, name := range names {
		svc := compose.Services[name]
		fmt.Fprintf(&b, "- %s", name)
		if svc.Image != "" {
			fmt.Fprintf(&b, " (image: %s)", svc.Image)
		} else if svc.Build != nil {
			b.WriteString(" (built from source)")
		}
		if len(svc.Ports) > 0 {
			fmt.Fprintf(&b, ", ports: %s", joinAny(svc.Ports))
		}
		if len(svc.Volumes) > 0 {
			fmt.Fprintf(&b, ", volumes: %s", joinAny(svc.Volumes))
		}
		if len(svc.Depends) > 0 {
			fmt.Fprintf(&b, ", depends on: %s", joinAny(svc.Depends))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (s *PhysicalArchitectureService) findDockerfiles(repoPath string) ([]string, error) {
	var found []string
	err := filepath.Walk(repoPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			base := info.Name()
			if base == ".git" || base == "node_modules" || base == "vendor" {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(info.Name(), "Dockerfile") {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(found)
	return found, nil
}

func (s *PhysicalArchitectureService) describeDockerfile(repoPath, path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	relPath, relErr := filepath.Rel(repoPath, path)
	if relErr != nil {
		relPath = filepath.Base(path)
	}

	var base string
	var exposed []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		upper := strings.ToUpper(line)
		if base == "" && strings.HasPrefix(upper, "FROM ") {
			base = strings.TrimSpace(line[5:])
		}
		if strings.HasPrefix(upper, "EXPOSE ") {
			exposed = append(exposed, strings.Fields(line[7:])...)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Dockerfile (%s)\n", relPath)
	if base != "" {
		fmt.Fprintf(&b, "- base image: %s\n", base)
	}
	if len(exposed) > 0 {
		fmt.Fprintf(&b, "- exposed ports: %s\n", strings.Join(exposed, ", "))
	}
	return b.String()
}

func joinAny(values []any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprintf("%v", v))
	}
	return strings.Join(parts, ", ")
}
