package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Styled output must always carry the original text, whatever color
// profile the terminal supports.
func TestFormatHelpersKeepText(t *testing.T) {
	helpers := map[string]func(string) string{
		"title":   FormatTitle,
		"success": FormatSuccess,
		"warning": FormatWarning,
		"error":   FormatError,
	}

	for name, format := range helpers {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, format("hello"), "hello")
		})
	}
}

func TestRenderBoxKeepsTitleAndContent(t *testing.T) {
	out := RenderBox("June Overview", "Spent: 800.00")
	assert.Contains(t, out, "June Overview")
	assert.Contains(t, out, "Spent: 800.00")

	bold := BoldStyle.Render("-120.00")
	assert.Contains(t, bold, "-120.00")
}
