package topics

import (
	"strings"
)

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render takes raw content and returns formatted content for terminal display
	Render(content string, format string) string
}

// PlainRenderer is used when help is not going to a terminal. Markdown
// topics lose their markup so they read as plain text in pagers and pipes;
// other formats are returned as-is.
type PlainRenderer struct{}

// Render implements Renderer
func (r *PlainRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	lines := strings.Split(content, "\n")
	inFence := false
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			out = append(out, "    "+line)
			continue
		}
		out = append(out, stripInline(stripHeading(line)))
	}
	return strings.Join(out, "\n")
}

func stripHeading(line string) string {
	trimmed := strings.TrimLeft(line, "#")
	if trimmed != line && strings.HasPrefix(trimmed, " ") {
		return strings.TrimPrefix(trimmed, " ")
	}
	return line
}

var inlineMarkers = strings.NewReplacer("**", "", "`", "")

func stripInline(line string) string {
	return inlineMarkers.Replace(line)
}
