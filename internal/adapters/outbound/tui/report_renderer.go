package tui

import (
	"fmt"
	"strings"

	"github.com/lintconv/lintconv/internal/domain"
)

// RenderReport renders a lint report as a styled TUI string.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	// Header
	title := headerStyle.Render("lint-conventions")
	subject := titleStyle.Render(fmt.Sprintf("%s / %s", report.Component, report.Model))
	verdict := verdictStyled(report)

	b.WriteString(boxStyle.Render(title + "\n" + subject + "\n\n" + verdict))
	b.WriteString("\n\n")

	for _, r := range report.Results {
		renderResult(&b, r)
	}

	b.WriteString("\n")
	b.WriteString("  " + sectionLine)
	b.WriteString("\n")
	b.WriteString("  " + summaryLine(report))
	b.WriteString("\n")

	return b.String()
}

func verdictStyled(report *domain.Report) string {
	if report.Ok() {
		return passStyle.Bold(true).Render("PASS")
	}
	return failStyle.Bold(true).Render(fmt.Sprintf("FAIL (%d)", report.Failed))
}

func renderResult(b *strings.Builder, r domain.CheckResult) {
	var icon string
	switch r.Status {
	case domain.StatusPass:
		icon = passStyle.Render("●")
	case domain.StatusFail:
		icon = failStyle.Render("●")
	default:
		icon = skipStyle.Render("○")
	}

	kind := kindStyle.Render(padRight(string(r.Kind), 18))

	switch r.Status {
	case domain.StatusSkip:
		fmt.Fprintf(b, "  %s %s %s\n", icon, kind, skipStyle.Render("not provided"))
	case domain.StatusPass:
		fmt.Fprintf(b, "  %s %s %s\n", icon, kind, pathStyle.Render(r.Actual))
	default:
		fmt.Fprintf(b, "  %s %s %s\n", icon, kind, pathStyle.Render(r.Actual))
		if r.Message != "" {
			fmt.Fprintf(b, "       %s\n", warnStyle.Render(r.Message))
		}
	}
}

func summaryLine(report *domain.Report) string {
	parts := []string{
		passStyle.Render(fmt.Sprintf("%d passed", report.Passed)),
	}
	if report.Failed > 0 {
		parts = append(parts, failStyle.Render(fmt.Sprintf("%d failed", report.Failed)))
	}
	if report.Skipped > 0 {
		parts = append(parts, skipStyle.Render(fmt.Sprintf("%d skipped", report.Skipped)))
	}
	return strings.Join(parts, "  ")
}

// RenderPlain renders the report in the machine-readable line format:
// PASS|FAIL|SKIP <kind> <path> [<message>]. One line per result.
func RenderPlain(report *domain.Report) string {
	var b strings.Builder
	for _, r := range report.Results {
		path := r.Actual
		if path == "" {
			path = "-"
		}
		fmt.Fprintf(&b, "%s %s %s", strings.ToUpper(r.Status), r.Kind, path)
		if r.Message != "" {
			fmt.Fprintf(&b, " %s", r.Message)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// PathRow is one rendered line of the expected layout.
type PathRow struct {
	Kind      string
	Path      string
	Ident     string
	Mandatory bool
}

// RenderExpectedPaths renders the expected layout for a component/model pair.
func RenderExpectedPaths(component, model string, rows []PathRow) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render(fmt.Sprintf("Expected layout for %s / %s", component, model)) + "\n")
	b.WriteString("  " + sectionLine + "\n\n")

	for _, row := range rows {
		marker := "  "
		if row.Mandatory {
			marker = warnStyle.Render("* ")
		}
		fmt.Fprintf(&b, "  %s%s %s\n", marker, kindStyle.Render(padRight(row.Kind, 18)), row.Path)
		fmt.Fprintf(&b, "    %s %s\n", padRight("", 18), identStyle.Render(row.Ident))
	}

	b.WriteString("\n  " + dimStyle.Render("* mandatory") + "\n")
	return b.String()
}

// RenderHistory formats recorded lint runs for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No lint history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Lint History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}

		status := passStyle.Render("PASS")
		if e.Status == domain.StatusFail {
			status = failStyle.Render(fmt.Sprintf("FAIL %d", e.Failed))
		}

		fmt.Fprintf(&b, "  %s  %s  %s  %s\n",
			dimStyle.Render(ts),
			faintStyle.Render(hash),
			titleStyle.Render(padRight(e.Component+"/"+e.Model, 24)),
			status,
		)
	}

	return b.String()
}
