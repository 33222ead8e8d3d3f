package tui

import (
	"strings"
)

const pageWidth = 54

// renderPage lays out a screen: title, divider, indented body, divider and
// one help line per non-empty hotKeys entry, followed by the quit hint.
func renderPage(title, body string, hotKeys ...string) string {
	divider := indentStyle.Render(helpStyle.Render(strings.Repeat("─", pageWidth)))

	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	lines := []string{
		titleStyle.Render(title),
		divider,
		"",
		indentStyle.Render(body),
		"",
		divider,
	}
	for _, hk := range hotKeys {
		if strings.TrimSpace(hk) != "" {
			lines = append(lines, indentStyle.Render(helpStyle.Render(hk)))
		}
	}
	lines = append(lines, indentStyle.Render(helpStyle.Render("ctrl+c: quit")))

	return strings.Join(lines, "\n")
}
