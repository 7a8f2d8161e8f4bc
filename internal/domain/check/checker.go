// Package check renders path rules for a concrete component/model pair and
// compares candidate paths against them.
package check

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lintconv/lintconv/internal/domain"
	"github.com/lintconv/lintconv/internal/domain/naming"
)

// RenderPath expands the rule's path template with the component and model
// names. Wildcards stay in place; use MatchPath to compare against a
// candidate.
func RenderPath(rule domain.PathRule, component, model string) string {
	return expand(rule.PathTemplate, component, model)
}

// RenderIdent expands the rule's identifier template.
func RenderIdent(rule domain.PathRule, component, model string) string {
	return expand(rule.IdentTemplate, component, model)
}

// expand substitutes every placeholder. User-supplied names are normalised to
// snake_case first so "Accounting"/"accounting" render identically.
func expand(template, component, model string) string {
	componentSnake := naming.SnakeCase(component)
	modelSnake := naming.SnakeCase(model)

	r := strings.NewReplacer(
		"{component}", componentSnake,
		"{model}", modelSnake,
		"{Component}", naming.PascalCase(componentSnake),
		"{Model}", naming.PascalCase(modelSnake),
		"{field}", naming.FieldName(component, model),
		"{Field}", naming.ClientFieldName(component, model),
	)
	return r.Replace(template)
}

// MatchPath reports whether candidate matches the rendered pattern. Patterns
// are literal except `*`, which matches one or more characters (migration
// timestamps).
func MatchPath(pattern, candidate string) bool {
	pattern = filepath.ToSlash(pattern)
	candidate = filepath.ToSlash(strings.TrimPrefix(candidate, "./"))

	if !strings.Contains(pattern, "*") {
		return pattern == candidate
	}

	parts := strings.SplitN(pattern, "*", 2)
	prefix, suffix := parts[0], parts[1]
	if !strings.HasPrefix(candidate, prefix) || !strings.HasSuffix(candidate, suffix) {
		return false
	}
	// The wildcard must consume at least one character.
	return len(candidate) > len(prefix)+len(suffix)
}

// Against checks one candidate path against the rule table for the given
// kind. Read-only: it never touches the filesystem.
func Against(table *domain.RuleTable, kind domain.ArtifactKind, component, model, candidate string) domain.CheckResult {
	rule, err := table.Lookup(kind)
	if err != nil {
		// Cannot happen with the built-in table; reported rather than panicking.
		return domain.CheckResult{
			Kind:    kind,
			Status:  domain.StatusFail,
			Actual:  candidate,
			Message: err.Error(),
		}
	}

	expected := RenderPath(rule, component, model)
	result := domain.CheckResult{
		Kind:     kind,
		Expected: expected,
		Actual:   filepath.ToSlash(candidate),
		Ident:    RenderIdent(rule, component, model),
	}

	if MatchPath(expected, candidate) {
		result.Status = domain.StatusPass
		return result
	}

	result.Status = domain.StatusFail
	result.Message = diagnose(expected, filepath.ToSlash(candidate), component)
	return result
}

// diagnose produces a failure message, calling out the most common mistake
// (dropping the component namespace folder) explicitly.
func diagnose(expected, actual, component string) string {
	componentSnake := naming.SnakeCase(component)

	if stripSegment(expected, componentSnake) == actual {
		return fmt.Sprintf("missing %s namespace folder (expected %s)", componentSnake, expected)
	}
	if !strings.Contains(actual, componentSnake) {
		return fmt.Sprintf("path does not belong to component %s (expected %s)", componentSnake, expected)
	}
	return fmt.Sprintf("expected %s", expected)
}

// stripSegment removes the last directory segment equal to name from the
// path, e.g. components/accounting/app/models/accounting/note.rb ->
// components/accounting/app/models/note.rb.
func stripSegment(path, name string) string {
	segs := strings.Split(path, "/")
	for i := len(segs) - 2; i > 0; i-- { // keep the leading segment, skip the basename
		if segs[i] == name {
			return strings.Join(append(segs[:i:i], segs[i+1:]...), "/")
		}
	}
	return path
}
