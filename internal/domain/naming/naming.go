// Package naming implements the case transforms the conventions are written
// in: file paths use snake_case, Ruby constants use PascalCase, GraphQL
// fields use snake_case on the server and lowerCamelCase on the client.
package naming

import (
	"strings"

	"github.com/fatih/camelcase"
)

// SnakeCase normalises a name to snake_case. Accepts PascalCase, camelCase,
// kebab-case, space-separated, and already-snake input.
func SnakeCase(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")

	var parts []string
	for _, seg := range strings.Split(s, "_") {
		if seg == "" {
			continue
		}
		for _, w := range camelcase.Split(seg) {
			parts = append(parts, strings.ToLower(w))
		}
	}
	return strings.Join(parts, "_")
}

// PascalCase converts a snake_case name to PascalCase.
func PascalCase(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(w[1:])
	}
	return b.String()
}

// CamelCase converts a snake_case name to lowerCamelCase, the client-visible
// spelling of a GraphQL field (accounting_note -> accountingNote).
func CamelCase(s string) string {
	ws := words(s)
	if len(ws) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(ws[0])
	for _, w := range ws[1:] {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(w[1:])
	}
	return b.String()
}

// FieldName returns the server-side GraphQL field name for a component/model
// pair.
func FieldName(component, model string) string {
	return SnakeCase(component) + "_" + SnakeCase(model)
}

// ClientFieldName returns the client-visible spelling of FieldName.
func ClientFieldName(component, model string) string {
	return CamelCase(FieldName(component, model))
}

func words(s string) []string {
	var out []string
	for _, w := range strings.Split(SnakeCase(s), "_") {
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
