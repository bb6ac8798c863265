package browser

import (
	"strings"
	"unicode"
)

// PreviewLen caps single-line previews rendered in list panes.
const PreviewLen = 80

// Preview returns a single-line preview for the given row: the first
// non-empty line of text entries, a placeholder for image and empty ones.
func (b *Browser) Preview(row int) string {
	text, image, ok := b.model.Raw(row)
	if !ok {
		return ""
	}
	if image != nil {
		return "[image]"
	}
	return GeneratePreview(text)
}

// GeneratePreview creates a list-pane preview from raw entry text using
// the first non-empty line, sanitized and truncated.
func GeneratePreview(text string) string {
	if text == "" {
		return "[empty]"
	}

	for _, line := range strings.Split(text, "\n") {
		cleaned := strings.TrimSpace(line)
		if cleaned != "" {
			return TruncatePreview(SanitizePreview(cleaned), PreviewLen)
		}
	}

	// No line survived trimming; collapse the whole text instead.
	sanitized := SanitizePreview(text)
	if sanitized == "" {
		return "[empty]"
	}
	return TruncatePreview(sanitized, PreviewLen)
}

// TruncatePreview caps the preview at maxLen characters, marking cut
// text with a "..." suffix.
func TruncatePreview(preview string, maxLen int) string {
	preview = strings.TrimSpace(preview)

	if len(preview) <= maxLen {
		return preview
	}

	// The suffix needs three characters of the budget.
	if maxLen < 3 {
		return strings.Repeat(".", maxLen)
	}

	return preview[:maxLen-3] + "..."
}

// SanitizePreview strips control characters and squeezes runs of
// whitespace down to single spaces, keeping the preview on one terminal
// line.
func SanitizePreview(preview string) string {
	preview = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, preview)

	fields := strings.Fields(preview)
	return strings.Join(fields, " ")
}
