// Package console renders user-facing status output with Lipgloss styles.
package console

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colour accents, matching the palette used across the project.
const (
	Green = lipgloss.Color("#A6A75D")
	Amber = lipgloss.Color("#CC8B3F")
	Red   = lipgloss.Color("#AC3835")
	Cyan  = lipgloss.Color("#3097C6")
)

var (
	successStyle = lipgloss.NewStyle().Foreground(Green)
	warnStyle    = lipgloss.NewStyle().Foreground(Amber)
	errorStyle   = lipgloss.NewStyle().Foreground(Red)
	headerStyle  = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
)

// Successf prints a green ✓ status line.
func Successf(format string, args ...any) {
	fmt.Println(successStyle.Render("✓ " + fmt.Sprintf(format, args...)))
}

// Warnf prints an amber ! status line.
func Warnf(format string, args ...any) {
	fmt.Println(warnStyle.Render("! " + fmt.Sprintf(format, args...)))
}

// Errorf prints a red ✗ status line to stderr.
func Errorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Header prints a section header followed by a rule line.
func Header(title string) {
	fmt.Println(headerStyle.Render(title))
	fmt.Println(strings.Repeat("─", 50))
}
