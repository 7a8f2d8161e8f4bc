package domain

import "fmt"

// ArtifactKind identifies one file or registration entry that a feature
// addition contributes to the monolith.
type ArtifactKind string

const (
	KindModel           ArtifactKind = "model"
	KindMigration       ArtifactKind = "migration"
	KindGraphqlType     ArtifactKind = "graphql_type"
	KindGraphqlQuery    ArtifactKind = "graphql_query"
	KindSchemaEntry     ArtifactKind = "schema_entry"
	KindReactComponent  ArtifactKind = "react_component"
	KindComponentExport ArtifactKind = "component_export"
	KindViteEntrypoint  ArtifactKind = "vite_entrypoint"
	KindView            ArtifactKind = "view"
)

// AllKinds enumerates every artifact kind in checklist order. The order is
// load-bearing: the model must exist before its migration, the GraphQL layer
// before the frontend wiring.
var AllKinds = []ArtifactKind{
	KindModel,
	KindMigration,
	KindGraphqlType,
	KindGraphqlQuery,
	KindSchemaEntry,
	KindReactComponent,
	KindComponentExport,
	KindViteEntrypoint,
	KindView,
}

// MandatoryKinds are artifact kinds that must always be accounted for in a
// lint run, even when no candidate path was supplied for them.
var MandatoryKinds = []ArtifactKind{KindModel, KindMigration}

// IsMandatory reports whether the kind must be present in every feature
// addition.
func (k ArtifactKind) IsMandatory() bool {
	for _, m := range MandatoryKinds {
		if k == m {
			return true
		}
	}
	return false
}

// IsValid reports whether the kind is part of the fixed enumeration.
func (k ArtifactKind) IsValid() bool {
	for _, known := range AllKinds {
		if k == known {
			return true
		}
	}
	return false
}

// ParseKind maps a user-supplied string to an ArtifactKind.
func ParseKind(s string) (ArtifactKind, error) {
	k := ArtifactKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("unknown artifact kind %q (valid: %s)", s, kindList())
	}
	return k, nil
}

func kindList() string {
	out := ""
	for i, k := range AllKinds {
		if i > 0 {
			out += ", "
		}
		out += string(k)
	}
	return out
}
