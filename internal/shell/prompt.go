package shell

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const promptSuffix = ">_"

type promptRenderer struct {
	dir    lipgloss.Style
	marker lipgloss.Style
	color  bool
}

// newPromptRenderer binds the styles to w, so a writer that is not a colour
// terminal gets plain text even with colour enabled.
func newPromptRenderer(w io.Writer, color bool) *promptRenderer {
	r := lipgloss.NewRenderer(w)

	return &promptRenderer{
		dir:    r.NewStyle().Foreground(lipgloss.Color("12")),
		marker: r.NewStyle().Foreground(lipgloss.Color("10")),
		color:  color,
	}
}

// displayPath normalizes path separators to forward slashes.
func displayPath(dir string) string {
	return strings.ReplaceAll(dir, `\`, "/")
}

func (p *promptRenderer) render(dir string) string {
	shown := displayPath(dir)
	if !p.color {
		return shown + promptSuffix
	}

	return p.dir.Render(shown) + p.marker.Render(promptSuffix)
}
