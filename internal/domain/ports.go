package domain

// ConfigLoader loads the project's lint configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// ArtifactScanner collects candidate artifact paths from a project tree.
// Implementations are read-only: they never mutate the target project.
type ArtifactScanner interface {
	Collect(projectPath string, table *RuleTable, component, model string) (map[ArtifactKind]string, error)
}

// GitInfo resolves repository metadata for the linted project.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}

// RunHistory persists lint run summaries.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}
