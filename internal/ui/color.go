package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func OkLine(w io.Writer, path string) {
	fmt.Fprintln(w, okStyle.Render(" ok")+"  "+path)
}

func ErrLine(w io.Writer, path string, errors int) {
	fmt.Fprintf(w, "%s  %s (%s)\n", errStyle.Render("err"), path, plural(errors, "error"))
}

func WroteLine(w io.Writer, path string) {
	fmt.Fprintln(w, faintStyle.Render("wrote")+"  "+path)
}

func SummaryLine(w io.Writer, files, errors int) {
	fmt.Fprintf(w, "checked %s, %s\n", plural(files, "file"), plural(errors, "error"))
}

// HistoryRow prints one run entry, padding the run ID and path columns.
func HistoryRow(w io.Writer, runID, createdAt, path string, errors, pathWidth int) {
	status := okStyle.Render(fmt.Sprintf("%4d", errors))
	if errors > 0 {
		status = errStyle.Render(fmt.Sprintf("%4d", errors))
	}
	fmt.Fprintf(w, "%s  %s  %-*s  %s\n", faintStyle.Render(shortID(runID)), createdAt, pathWidth, path, status)
}

func StatLine(w io.Writer, label string, n int) {
	fmt.Fprintf(w, "%-14s %d\n", label+":", n)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
