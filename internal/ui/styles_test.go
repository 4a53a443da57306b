package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStyles_EveryStyleKeepsText(t *testing.T) {
	for _, tc := range []struct {
		name   string
		styles Styles
	}{
		{"default", DefaultStyles()},
		{"no color", NoColorStyles()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			all := map[string]lipgloss.Style{
				"header":  tc.styles.Header,
				"success": tc.styles.Success,
				"warning": tc.styles.Warning,
				"error":   tc.styles.Error,
				"dim":     tc.styles.Dim,
				"active":  tc.styles.Active,
				"label":   tc.styles.Label,
				"panel":   tc.styles.Panel,
			}

			// Decoration at most; the text itself always survives
			for name, style := range all {
				assert.Contains(t, style.Render("key BM"), "key BM", name)
			}
		})
	}
}

func TestNoColorStyles_RenderPlain(t *testing.T) {
	styles := NoColorStyles()

	// Plain mode emits the text byte-for-byte, no ANSI
	assert.Equal(t, "> B", styles.Active.Render("> B"))
	assert.Equal(t, "BM", styles.Success.Render("BM"))
}

func TestGetStyles(t *testing.T) {
	// Given: noColor set
	// Then: the plain set renders unchanged
	assert.Equal(t, "test", GetStyles(true).Success.Render("test"))

	// Given: color allowed
	// Then: text stays visible whatever the terminal supports
	assert.Contains(t, GetStyles(false).Success.Render("test"), "test")
}
