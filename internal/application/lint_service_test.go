package application_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lintconv/lintconv/internal/adapters/outbound/config"
	"github.com/lintconv/lintconv/internal/adapters/outbound/gitinfo"
	"github.com/lintconv/lintconv/internal/adapters/outbound/history"
	"github.com/lintconv/lintconv/internal/adapters/outbound/scanner"
	"github.com/lintconv/lintconv/internal/application"
	"github.com/lintconv/lintconv/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *application.LintService {
	return application.NewLintService(config.New(), scanner.New(), gitinfo.New(), history.New())
}

func touch(t *testing.T, dir, rel string) {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte("# stub\n"), 0644))
}

func TestLint_ExplicitPaths(t *testing.T) {
	dir := t.TempDir()

	report, err := newService().Lint(application.LintOptions{
		ProjectPath: dir,
		Component:   "accounting",
		Model:       "note",
		Paths: map[domain.ArtifactKind]string{
			domain.KindModel:     "components/accounting/app/models/accounting/note.rb",
			domain.KindMigration: "db/migrate/20260827120000_create_accounting_notes.rb",
		},
		NoHistory: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Passed)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, len(domain.AllKinds)-2, report.Skipped)
	assert.True(t, report.Ok())
}

func TestLint_ScanCollectsPaths(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "components/accounting/app/models/accounting/note.rb")
	touch(t, dir, "db/migrate/20260827120000_create_accounting_notes.rb")

	report, err := newService().Lint(application.LintOptions{
		ProjectPath: dir,
		Component:   "accounting",
		Model:       "note",
		Scan:        true,
		NoHistory:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Passed)
	assert.True(t, report.Ok())
}

func TestLint_ExplicitPathsWinOverScan(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "components/accounting/app/models/accounting/note.rb")

	report, err := newService().Lint(application.LintOptions{
		ProjectPath: dir,
		Component:   "accounting",
		Model:       "note",
		Scan:        true,
		Paths: map[domain.ArtifactKind]string{
			domain.KindModel: "components/accounting/app/models/note.rb",
		},
		NoHistory: true,
	})
	require.NoError(t, err)

	for _, r := range report.Results {
		if r.Kind == domain.KindModel {
			assert.Equal(t, domain.StatusFail, r.Status)
			assert.Equal(t, "components/accounting/app/models/note.rb", r.Actual)
			return
		}
	}
	t.Fatal("model result not found")
}

func TestLint_MissingMandatoryAlwaysFails(t *testing.T) {
	report, err := newService().Lint(application.LintOptions{
		ProjectPath: t.TempDir(),
		Component:   "accounting",
		Model:       "note",
		NoHistory:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Failed, "model and migration must be flagged")
	assert.False(t, report.Ok())
}

func TestLint_RequiresNames(t *testing.T) {
	_, err := newService().Lint(application.LintOptions{ProjectPath: t.TempDir()})
	assert.Error(t, err)
}

func TestLint_ConfigOverridesApplied(t *testing.T) {
	dir := t.TempDir()
	cfgYAML := `
rules:
  model:
    path_template: app/models/{component}/{model}.rb
skip:
  - view
  - vite_entrypoint
  - component_export
  - react_component
  - schema_entry
  - graphql_query
  - graphql_type
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".lintconv.yaml"), []byte(cfgYAML), 0644))

	report, err := newService().Lint(application.LintOptions{
		ProjectPath: dir,
		Component:   "accounting",
		Model:       "note",
		Paths: map[domain.ArtifactKind]string{
			domain.KindModel:     "app/models/accounting/note.rb",
			domain.KindMigration: "db/migrate/20260827120000_create_accounting_notes.rb",
		},
		NoHistory: true,
	})
	require.NoError(t, err)

	assert.True(t, report.Ok())
	assert.Len(t, report.Results, 2, "skipped kinds are excluded entirely")
}

func TestLint_RecordsHistory(t *testing.T) {
	dir := t.TempDir()
	svc := newService()

	_, err := svc.Lint(application.LintOptions{
		ProjectPath: dir,
		Component:   "accounting",
		Model:       "note",
	})
	require.NoError(t, err)

	entries, err := svc.History(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "accounting", entries[0].Component)
	assert.Equal(t, domain.StatusFail, entries[0].Status)
}

func TestExpectedPaths(t *testing.T) {
	svc := application.NewPathsService(config.New())

	paths, err := svc.ExpectedPaths(t.TempDir(), "accounting", "note")
	require.NoError(t, err)
	require.Len(t, paths, len(domain.AllKinds))

	assert.Equal(t, domain.KindModel, paths[0].Kind)
	assert.Equal(t, "components/accounting/app/models/accounting/note.rb", paths[0].Path)
	assert.Equal(t, "Accounting::Note", paths[0].Ident)
	assert.True(t, paths[0].Mandatory)
	assert.False(t, paths[len(paths)-1].Mandatory)
}

func TestExpectedPaths_RequiresNames(t *testing.T) {
	svc := application.NewPathsService(config.New())
	_, err := svc.ExpectedPaths(t.TempDir(), "", "note")
	assert.Error(t, err)
}
