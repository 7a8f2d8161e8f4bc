package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/lintconv/lintconv/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureDir = "../../../../testdata/monolith"

func TestLintCommand_ScanFixturePasses(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{
		"lint", "--component", "accounting", "--model", "note",
		"--scan", "--plain", "--no-history", "--path", fixtureDir,
	})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "PASS model components/accounting/app/models/accounting/note.rb")
	assert.Contains(t, out, "PASS migration db/migrate/20260827120000_create_accounting_notes.rb")
	assert.NotContains(t, out, "FAIL")
}

func TestLintCommand_ExplicitPathsFail(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{
		"lint", "--component", "accounting", "--model", "note",
		"--paths", "model=components/accounting/app/models/note.rb",
		"--plain", "--no-history", "--path", t.TempDir(),
	})

	err := cmd.Execute()
	require.Error(t, err, "failing checks must exit non-zero")
	assert.Contains(t, buf.String(), "FAIL model components/accounting/app/models/note.rb")
	assert.Contains(t, buf.String(), "namespace folder")
}

func TestLintCommand_JSON(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{
		"lint", "--component", "accounting", "--model", "note",
		"--scan", "--json", "--no-history", "--path", fixtureDir,
	})
	require.NoError(t, cmd.Execute())

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result), "output should be valid JSON")
	assert.Equal(t, "accounting", result["component"])
	assert.Contains(t, result, "results")
}

func TestLintCommand_MissingMandatoryFails(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{
		"lint", "--component", "accounting", "--model", "note",
		"--paths", "view=components/accounting/app/views/accounting/notes/index.html.erb",
		"--ci", "--no-history", "--path", t.TempDir(),
	})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, buf.String(), "FAIL model")
	assert.Contains(t, buf.String(), "FAIL migration")
}

func TestLintCommand_UnknownKindRejected(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{
		"lint", "--component", "accounting", "--model", "note",
		"--paths", "controller=app/controllers/notes_controller.rb",
		"--no-history", "--path", t.TempDir(),
	})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown artifact kind")
}

func TestLintCommand_MalformedPathsEntry(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{
		"lint", "--component", "accounting", "--model", "note",
		"--paths", "model", "--no-history", "--path", t.TempDir(),
	})
	assert.Error(t, cmd.Execute())
}

func TestLintCommand_RequiresPathsOrScan(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"lint", "--component", "accounting", "--model", "note"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--scan")
}

func TestLintCommand_DuplicateKindRejected(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{
		"lint", "--component", "accounting", "--model", "note",
		"--paths", "model=a.rb,model=b.rb", "--no-history", "--path", t.TempDir(),
	})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}
