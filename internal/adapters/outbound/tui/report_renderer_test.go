package tui_test

import (
	"strings"
	"testing"

	"github.com/lintconv/lintconv/internal/adapters/outbound/tui"
	"github.com/lintconv/lintconv/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *domain.Report {
	return domain.NewReport("accounting", "note", []domain.CheckResult{
		{Kind: domain.KindModel, Status: domain.StatusPass, Expected: "components/accounting/app/models/accounting/note.rb", Actual: "components/accounting/app/models/accounting/note.rb"},
		{Kind: domain.KindMigration, Status: domain.StatusFail, Expected: "db/migrate/*_create_accounting_notes.rb", Message: "mandatory migration artifact not provided"},
		{Kind: domain.KindView, Status: domain.StatusSkip, Expected: "components/accounting/app/views/accounting/notes/index.html.erb"},
	})
}

func TestRenderPlain_LineFormat(t *testing.T) {
	out := tui.RenderPlain(sampleReport())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "PASS model components/accounting/app/models/accounting/note.rb", lines[0])
	assert.Equal(t, "FAIL migration - mandatory migration artifact not provided", lines[1])
	assert.Equal(t, "SKIP view -", lines[2])
}

func TestRenderReport_ContainsSubjectAndSummary(t *testing.T) {
	out := tui.RenderReport(sampleReport())

	assert.Contains(t, out, "accounting / note")
	assert.Contains(t, out, "1 passed")
	assert.Contains(t, out, "1 failed")
	assert.Contains(t, out, "1 skipped")
	assert.Contains(t, out, "mandatory migration artifact not provided")
}

func TestRenderHistory_Empty(t *testing.T) {
	out := tui.RenderHistory(nil)
	assert.Contains(t, out, "No lint history")
}

func TestRenderHistory_Entries(t *testing.T) {
	out := tui.RenderHistory([]domain.RunEntry{
		{Timestamp: "2026-08-27T10:00:00Z", CommitHash: "abcdef1234567890", Component: "accounting", Model: "note", Passed: 9, Status: domain.StatusPass},
		{Timestamp: "2026-08-27T11:00:00Z", Component: "directory", Model: "employee", Failed: 2, Status: domain.StatusFail},
	})

	assert.Contains(t, out, "abcdef1")
	assert.Contains(t, out, "accounting/note")
	assert.Contains(t, out, "directory/employee")
}

func TestRenderExpectedPaths(t *testing.T) {
	out := tui.RenderExpectedPaths("accounting", "note", []tui.PathRow{
		{Kind: "model", Path: "components/accounting/app/models/accounting/note.rb", Ident: "Accounting::Note", Mandatory: true},
		{Kind: "view", Path: "components/accounting/app/views/accounting/notes/index.html.erb", Ident: "index"},
	})

	assert.Contains(t, out, "Expected layout for accounting / note")
	assert.Contains(t, out, "components/accounting/app/models/accounting/note.rb")
	assert.Contains(t, out, "Accounting::Note")
}
