package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ToHTMLSanitized(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized("**printer** is broken")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>printer</strong>")
}

func TestService_StripsScriptTags(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized("hello <script>alert('xss')</script> world")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "alert")
}

func TestService_SanitizeRawHTML(t *testing.T) {
	svc := NewService()

	out := svc.Sanitize(`<p onclick="steal()">text</p>`)
	assert.NotContains(t, out, "onclick")
	assert.Contains(t, out, "text")
}
