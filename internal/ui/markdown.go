package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownWrap is the word-wrap width of rendered markdown.
const markdownWrap = 80

// WriteMarkdown writes md to w, rendered for the terminal when w is one
// and color is enabled. Any renderer failure falls back to the raw text.
func WriteMarkdown(w io.Writer, theme *Theme, hm *HeadlessManager, md string) error {
	_, err := io.WriteString(w, renderMarkdown(w, theme, hm, md))
	return err
}

func renderMarkdown(w io.Writer, theme *Theme, hm *HeadlessManager, md string) string {
	if theme.NoColor || !hm.CanDraw(w) {
		return md
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n") + "\n"
}
