package wizard

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCase capitalizes every word. A Caser is stateful, so one is built per call.
func titleCase(s string) string {
	return cases.Title(language.BrazilianPortuguese).String(strings.TrimSpace(s))
}

func isSkip(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), SkipToken)
}

func isYes(s string) bool {
	return strings.EqualFold(s, "S")
}

// optional returns "" for the skip token and the trimmed text otherwise.
func optional(s string) string {
	if isSkip(s) {
		return ""
	}
	return strings.TrimSpace(s)
}

// splitBullets turns a narrative answer into bullets. Items may be separated by
// newlines or semicolons; the skip token yields no bullets.
func splitBullets(s string) []string {
	if isSkip(s) {
		return nil
	}
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(s, ";", "\n"), "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-•"))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

var markdownEscaper = strings.NewReplacer("_", `\_`, "*", `\*`, "`", "\\`", "[", `\[`)

// escapeMarkdown protects user text embedded into Markdown prompts.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
