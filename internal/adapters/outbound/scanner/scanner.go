package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lintconv/lintconv/internal/domain"
	"github.com/lintconv/lintconv/internal/domain/check"
	"github.com/lintconv/lintconv/internal/domain/naming"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"tmp":          true,
	"log":          true,
	"public":       true,
}

// FileScanner implements domain.ArtifactScanner by walking the project tree.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Collect walks projectPath and attributes candidate files to artifact kinds.
// A file placed exactly where the rule expects wins; otherwise a file whose
// basename matches the rendered rule is attributed to the kind anyway, so a
// misplaced artifact surfaces as a FAIL with its actual location instead of
// silently disappearing from the report. Read-only.
func (s *FileScanner) Collect(
	projectPath string,
	table *domain.RuleTable,
	component, model string,
) (map[domain.ArtifactKind]string, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(absPath, path)
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	found := make(map[domain.ArtifactKind]string)
	used := make(map[string]bool)

	// First pass: files placed exactly where their rule expects them.
	for _, rule := range table.Rules() {
		expected := check.RenderPath(rule, component, model)
		if f, ok := firstMatch(files, used, func(f string) bool { return check.MatchPath(expected, f) }); ok {
			found[rule.Kind] = f
			used[f] = true
		}
	}

	// Second pass: basename attribution for misplaced artifacts, so they
	// surface as FAILs with their actual location instead of silently
	// disappearing from the report. Only distinctive basenames qualify;
	// generic names such as index.ts or query_type.rb would otherwise grab
	// unrelated files.
	for _, rule := range table.Rules() {
		if _, ok := found[rule.Kind]; ok {
			continue
		}
		expected := check.RenderPath(rule, component, model)
		base := expected[strings.LastIndex(expected, "/")+1:]
		if !distinctive(base, component, model) {
			continue
		}
		if f, ok := firstMatch(files, used, func(f string) bool {
			return check.MatchPath(base, f[strings.LastIndex(f, "/")+1:])
		}); ok {
			found[rule.Kind] = f
			used[f] = true
		}
	}

	return found, nil
}

func firstMatch(files []string, used map[string]bool, pred func(string) bool) (string, bool) {
	for _, f := range files {
		if !used[f] && pred(f) {
			return f, true
		}
	}
	return "", false
}

func distinctive(basename, component, model string) bool {
	lower := strings.ToLower(basename)
	return strings.Contains(lower, naming.SnakeCase(model)) ||
		strings.Contains(lower, naming.SnakeCase(component))
}
