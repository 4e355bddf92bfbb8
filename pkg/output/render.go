package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"logsift/pkg/logline"
)

// RawRenderer prints each record's raw line unchanged.
type RawRenderer struct {
	w io.Writer
}

// NewRawRenderer returns a Renderer that writes plain lines to w.
func NewRawRenderer(w io.Writer) *RawRenderer {
	return &RawRenderer{w: w}
}

func (r *RawRenderer) Render(rec logline.Record) error {
	_, err := fmt.Fprintln(r.w, rec.Raw)
	return err
}

var (
	styleDebug    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true)
	styleInfo     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleWarn     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleError    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	styleCritical = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("196")).
			Bold(true)
)

// ColorRenderer prints raw lines styled by detected severity.
type ColorRenderer struct {
	w io.Writer
}

// NewColorRenderer returns a Renderer that writes severity-colored lines
// to w.
func NewColorRenderer(w io.Writer) *ColorRenderer {
	return &ColorRenderer{w: w}
}

func (r *ColorRenderer) Render(rec logline.Record) error {
	_, err := fmt.Fprintln(r.w, levelStyle(rec.Level).Render(rec.Raw))
	return err
}

func levelStyle(level logline.Level) lipgloss.Style {
	switch level {
	case logline.LevelDebug:
		return styleDebug
	case logline.LevelWarn:
		return styleWarn
	case logline.LevelError:
		return styleError
	case logline.LevelCritical:
		return styleCritical
	default:
		return styleInfo
	}
}
