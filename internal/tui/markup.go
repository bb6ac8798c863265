package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	emphasisOpen  = `<span class="em">`
	emphasisClose = `</span>`
)

// entityDecoder maps highlight markup entities back to display characters
// for terminal rendering.
var entityDecoder = strings.NewReplacer(
	"&nbsp;", " ",
	"<br />", " ",
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
)

// RenderMarkup converts the model's highlight markup into terminal text,
// styling emphasis spans with em and decoding escaped entities everywhere
// else.
func RenderMarkup(markup string, em lipgloss.Style) string {
	var b strings.Builder
	rest := markup
	for {
		i := strings.Index(rest, emphasisOpen)
		if i < 0 {
			b.WriteString(entityDecoder.Replace(rest))
			break
		}
		b.WriteString(entityDecoder.Replace(rest[:i]))
		rest = rest[i+len(emphasisOpen):]

		j := strings.Index(rest, emphasisClose)
		if j < 0 {
			// Unterminated span: render the remainder unstyled.
			b.WriteString(entityDecoder.Replace(rest))
			break
		}
		b.WriteString(em.Render(entityDecoder.Replace(rest[:j])))
		rest = rest[j+len(emphasisClose):]
	}
	return b.String()
}
