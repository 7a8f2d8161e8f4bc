package application

import (
	"fmt"
	"time"

	"github.com/lintconv/lintconv/internal/domain"
	"github.com/lintconv/lintconv/internal/domain/checklist"
)

// LintService orchestrates the lint pipeline:
// load config -> build rule table -> gather paths -> run checklist -> report.
type LintService struct {
	config  domain.ConfigLoader
	scanner domain.ArtifactScanner
	git     domain.GitInfo
	history domain.RunHistory
}

func NewLintService(
	config domain.ConfigLoader,
	scanner domain.ArtifactScanner,
	git domain.GitInfo,
	history domain.RunHistory,
) *LintService {
	return &LintService{
		config:  config,
		scanner: scanner,
		git:     git,
		history: history,
	}
}

// LintOptions carries per-run inputs for Lint.
type LintOptions struct {
	ProjectPath string
	Component   string
	Model       string
	Paths       map[domain.ArtifactKind]string
	Scan        bool
	NoHistory   bool
}

// Lint validates one feature addition and returns the ordered report.
// Explicitly supplied paths win over scanned ones. History recording is
// best-effort: a failure to persist never fails the run.
func (s *LintService) Lint(opts LintOptions) (*domain.Report, error) {
	if opts.Component == "" || opts.Model == "" {
		return nil, fmt.Errorf("component and model names are required")
	}

	cfg, err := s.config.Load(opts.ProjectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	table, err := buildTable(cfg)
	if err != nil {
		return nil, err
	}

	provided := make(map[domain.ArtifactKind]string, len(opts.Paths))
	if opts.Scan {
		scanned, err := s.scanner.Collect(opts.ProjectPath, table, opts.Component, opts.Model)
		if err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		for k, p := range scanned {
			provided[k] = p
		}
	}
	for k, p := range opts.Paths {
		provided[k] = p
	}

	results := checklist.Run(table, cfg, opts.Component, opts.Model, provided)
	report := domain.NewReport(opts.Component, opts.Model, results)

	if s.git != nil && s.git.IsGitRepo(opts.ProjectPath) {
		if hash, err := s.git.CommitHash(opts.ProjectPath); err == nil {
			report.CommitHash = hash
		}
	}

	if !opts.NoHistory && s.history != nil {
		// Best-effort; the report is already complete.
		_ = s.history.Save(opts.ProjectPath, domain.RunEntry{
			Timestamp:  report.Timestamp.Format(time.RFC3339),
			CommitHash: report.CommitHash,
			Component:  report.Component,
			Model:      report.Model,
			Passed:     report.Passed,
			Failed:     report.Failed,
			Skipped:    report.Skipped,
			Status:     report.Status,
		})
	}

	return report, nil
}

// History returns the recorded lint runs for a project.
func (s *LintService) History(projectPath string) ([]domain.RunEntry, error) {
	return s.history.Load(projectPath)
}

// buildTable layers the config's rule overrides onto the default table.
func buildTable(cfg domain.ProjectConfig) (*domain.RuleTable, error) {
	table := domain.DefaultRuleTable()
	if err := cfg.ApplyTo(table); err != nil {
		return nil, fmt.Errorf("applying rule overrides: %w", err)
	}
	return table, nil
}
