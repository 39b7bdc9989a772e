// Package ui holds the styled console output helpers for user-facing lines.
// Diagnostic output goes through zap; everything the user is meant to read
// (progress, warnings, the final summary) goes through these.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))  // green
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // cyan
)

func PrintSuccess(text string) {
	fmt.Println(successStyle.Render(text))
}
func PrintError(text string) {
	fmt.Println(errorStyle.Render(text))
}
func PrintWarning(text string) {
	fmt.Println(warningStyle.Render(text))
}
func PrintProgress(text string) {
	fmt.Println(progressStyle.Render(text))
}
