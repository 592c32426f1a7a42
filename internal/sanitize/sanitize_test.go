package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTML_StripsScriptVectors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"inline script", `<p>hi</p><script>alert(1)</script>`},
		{"event handler", `<img src="https://cdn/x.png" onerror="alert(1)">`},
		{"javascript href", `<a href="javascript:alert(1)">x</a>`},
		{"mixed case script", `<ScRiPt>alert(1)</ScRiPt>ok`},
		{"onclick on div", `<div onclick="steal()">text</div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := HTML(tt.input)
			lower := strings.ToLower(out)
			assert.NotContains(t, lower, "<script")
			assert.NotContains(t, lower, "onerror")
			assert.NotContains(t, lower, "onclick")
			assert.NotContains(t, lower, "javascript:")
		})
	}
}

func TestHTML_PreservesSemanticMarkup(t *testing.T) {
	input := `<h2>Title</h2><ul><li>one</li></ul><a href="https://example.com">link</a>` +
		`<img src="https://cdn/x.png" alt="x"><blockquote>q</blockquote>`

	out := HTML(input)

	assert.Contains(t, out, "<h2>Title</h2>")
	assert.Contains(t, out, "<li>one</li>")
	assert.Contains(t, out, `href="https://example.com"`)
	assert.Contains(t, out, `src="https://cdn/x.png"`)
	assert.Contains(t, out, "<blockquote>q</blockquote>")
}

func TestHTML_Idempotent(t *testing.T) {
	inputs := []string{
		`<p>plain</p>`,
		`<p>hi</p><script>alert(1)</script>`,
		`<a href="javascript:alert(1)" onclick="x()">mixed</a>`,
		`<h1>t</h1><img src="https://cdn/x.png" onerror=alert(1)>`,
	}

	for _, in := range inputs {
		once := HTML(in)
		twice := HTML(once)
		assert.Equal(t, once, twice, "sanitize must be idempotent for %q", in)
	}
}
