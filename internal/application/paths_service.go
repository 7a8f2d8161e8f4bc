package application

import (
	"fmt"

	"github.com/lintconv/lintconv/internal/domain"
	"github.com/lintconv/lintconv/internal/domain/check"
)

// ExpectedPath is one row of the expected layout for a feature addition.
type ExpectedPath struct {
	Kind      domain.ArtifactKind `json:"kind"`
	Path      string              `json:"path"`
	Ident     string              `json:"ident"`
	Mandatory bool                `json:"mandatory"`
}

// PathsService renders the convention table for a concrete component/model
// pair: the guide's Quick Reference as a generator.
type PathsService struct {
	config domain.ConfigLoader
}

func NewPathsService(config domain.ConfigLoader) *PathsService {
	return &PathsService{config: config}
}

// ExpectedPaths returns the full expected layout in checklist order,
// honouring the project's rule overrides and skips.
func (s *PathsService) ExpectedPaths(projectPath, component, model string) ([]ExpectedPath, error) {
	if component == "" || model == "" {
		return nil, fmt.Errorf("component and model names are required")
	}

	cfg, err := s.config.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	table, err := buildTable(cfg)
	if err != nil {
		return nil, err
	}

	mandatory := make(map[domain.ArtifactKind]bool)
	for _, k := range cfg.MandatoryKinds() {
		mandatory[k] = true
	}

	var out []ExpectedPath
	for _, rule := range table.Rules() {
		if cfg.IsSkipped(rule.Kind) {
			continue
		}
		out = append(out, ExpectedPath{
			Kind:      rule.Kind,
			Path:      check.RenderPath(rule, component, model),
			Ident:     check.RenderIdent(rule, component, model),
			Mandatory: mandatory[rule.Kind],
		})
	}
	return out, nil
}
