// Package notify prints the one-line success and failure messages shown to
// the user at the end of a command.
package notify

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)
	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))
)

// Success writes msg to w styled as a success notification.
func Success(w io.Writer, msg string) error {
	return write(w, successStyle, "Success", msg)
}

// Warning writes msg to w styled as a warning.
func Warning(w io.Writer, msg string) error {
	return write(w, warningStyle, "Warning", msg)
}

// Error writes err to w styled as an error notification.
func Error(w io.Writer, err error) error {
	return write(w, errorStyle, "Error", fmt.Sprintf("An error occurred: %v", err))
}

func write(w io.Writer, style lipgloss.Style, title, msg string) error {
	if _, err := fmt.Fprintln(w, style.Render(title+": "+msg)); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	return nil
}
