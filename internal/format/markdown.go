package format

import "github.com/charmbracelet/glamour"

const (
	DEFAULT_STYLE     = "dark"
	DEFAULT_WORD_WRAP = 100
)

func FormatMarkdown(text string) (string, error) {
	return FormatMarkdownWidth(text, DEFAULT_WORD_WRAP)
}

// FormatMarkdownWidth renders text wrapped at width columns; width <= 0 disables wrapping.
func FormatMarkdownWidth(text string, width int) (string, error) {
	if width < 0 {
		width = 0
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(DEFAULT_STYLE),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(text)
}
