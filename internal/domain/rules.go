package domain

import "fmt"

// PathRule associates an artifact kind with the path and identifier
// conventions it must follow. Templates carry placeholders that are expanded
// with the component and model names:
//
//	{component}  {model}   snake_case names
//	{Component}  {Model}   PascalCase names
//	{field}                GraphQL field name ({component}_{model})
//	{Field}                client-visible field name (lowerCamel)
//	*                      wildcard fragment (e.g. migration timestamps)
type PathRule struct {
	Kind          ArtifactKind `json:"kind"          yaml:"kind"`
	PathTemplate  string       `json:"path_template" yaml:"path_template"`
	IdentTemplate string       `json:"ident_template" yaml:"ident_template"`
	Description   string       `json:"description,omitempty" yaml:"description,omitempty"`
}

// UnknownKindError signals a lookup for a kind outside the fixed enumeration.
// With the built-in table this is an internal invariant violation.
type UnknownKindError struct {
	Kind ArtifactKind
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("no path rule for artifact kind %q", e.Kind)
}

// RuleTable maps every artifact kind to exactly one PathRule.
type RuleTable struct {
	rules map[ArtifactKind]PathRule
}

// NewRuleTable builds a table from the given rules. Later rules for the same
// kind replace earlier ones, which is how config overrides are layered on top
// of the defaults.
func NewRuleTable(rules ...PathRule) *RuleTable {
	t := &RuleTable{rules: make(map[ArtifactKind]PathRule, len(rules))}
	for _, r := range rules {
		t.rules[r.Kind] = r
	}
	return t
}

// Lookup returns the single rule for the kind.
func (t *RuleTable) Lookup(kind ArtifactKind) (PathRule, error) {
	r, ok := t.rules[kind]
	if !ok {
		return PathRule{}, &UnknownKindError{Kind: kind}
	}
	return r, nil
}

// Override replaces the rule for kind, keeping every other rule intact.
func (t *RuleTable) Override(rule PathRule) {
	t.rules[rule.Kind] = rule
}

// Rules returns the table's rules in checklist order.
func (t *RuleTable) Rules() []PathRule {
	out := make([]PathRule, 0, len(t.rules))
	for _, k := range AllKinds {
		if r, ok := t.rules[k]; ok {
			out = append(out, r)
		}
	}
	return out
}

// DefaultRuleTable returns the built-in convention table: the guide's Quick
// Reference expressed as templates.
func DefaultRuleTable() *RuleTable {
	return NewRuleTable(
		PathRule{
			Kind:          KindModel,
			PathTemplate:  "components/{component}/app/models/{component}/{model}.rb",
			IdentTemplate: "{Component}::{Model}",
			Description:   "ActiveRecord model, namespaced under the component",
		},
		PathRule{
			Kind:          KindMigration,
			PathTemplate:  "db/migrate/*_create_{component}_{model}s.rb",
			IdentTemplate: "Create{Component}{Model}s",
			Description:   "migration creating the {component}_{model}s table",
		},
		PathRule{
			Kind:          KindGraphqlType,
			PathTemplate:  "components/{component}/app/graphql/types/{component}/{model}_type.rb",
			IdentTemplate: "Types::{Component}::{Model}Type",
			Description:   "GraphQL object type for the model",
		},
		PathRule{
			Kind:          KindGraphqlQuery,
			PathTemplate:  "components/{component}/app/graphql/queries/{component}/{model}.rb",
			IdentTemplate: "Queries::{Component}::{Model}",
			Description:   "GraphQL query resolver exposing the {field} field",
		},
		PathRule{
			Kind:          KindSchemaEntry,
			PathTemplate:  "app/graphql/types/query_type.rb",
			IdentTemplate: "{field}",
			Description:   "field registration on the merged root query type",
		},
		PathRule{
			Kind:          KindReactComponent,
			PathTemplate:  "components/{component}/frontend/components/{Model}.tsx",
			IdentTemplate: "{Model}",
			Description:   "React component rendering the model",
		},
		PathRule{
			Kind:          KindComponentExport,
			PathTemplate:  "components/{component}/frontend/index.ts",
			IdentTemplate: "{Model}",
			Description:   "barrel export making the component visible to the bundler",
		},
		PathRule{
			Kind:          KindViteEntrypoint,
			PathTemplate:  "app/frontend/entrypoints/{component}.tsx",
			IdentTemplate: "{component}",
			Description:   "Vite entrypoint mounting the component's frontend",
		},
		PathRule{
			Kind:          KindView,
			PathTemplate:  "components/{component}/app/views/{component}/{model}s/index.html.erb",
			IdentTemplate: "index",
			Description:   "server view embedding the Vite entrypoint tag",
		},
	)
}
