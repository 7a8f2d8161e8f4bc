// Package checklist sequences the per-kind checks for a full feature
// addition: model, migration, GraphQL layer, frontend wiring, view.
package checklist

import (
	"fmt"

	"github.com/lintconv/lintconv/internal/domain"
	"github.com/lintconv/lintconv/internal/domain/check"
)

// Run validates every artifact kind in checklist order. Kinds with a supplied
// candidate path are checked against the rule table; mandatory kinds without
// one fail (the guide's model-before-migration ordering is load-bearing);
// everything else is reported as skipped. The run always completes; errors
// are collected into results, never returned.
func Run(
	table *domain.RuleTable,
	cfg domain.ProjectConfig,
	component, model string,
	provided map[domain.ArtifactKind]string,
) []domain.CheckResult {
	mandatory := make(map[domain.ArtifactKind]bool)
	for _, k := range cfg.MandatoryKinds() {
		mandatory[k] = true
	}

	var results []domain.CheckResult
	for _, kind := range domain.AllKinds {
		if cfg.IsSkipped(kind) {
			continue
		}

		candidate, ok := provided[kind]
		if !ok {
			results = append(results, missingResult(table, kind, component, model, mandatory[kind]))
			continue
		}

		results = append(results, check.Against(table, kind, component, model, candidate))
	}
	return results
}

func missingResult(table *domain.RuleTable, kind domain.ArtifactKind, component, model string, mandatory bool) domain.CheckResult {
	result := domain.CheckResult{
		Kind:   kind,
		Status: domain.StatusSkip,
	}

	if rule, err := table.Lookup(kind); err == nil {
		result.Expected = check.RenderPath(rule, component, model)
		result.Ident = check.RenderIdent(rule, component, model)
	}

	if mandatory {
		result.Status = domain.StatusFail
		result.Message = fmt.Sprintf("mandatory %s artifact not provided", kind)
	}
	return result
}
