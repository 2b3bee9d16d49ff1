package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewMarkdownService()

	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:     "heading and list",
			input:    "## Cảnh báo\n\n- Không chia sẻ OTP\n- Gọi hotline",
			contains: []string{"<h2", "Cảnh báo", "<li>Không chia sẻ OTP</li>"},
		},
		{
			name:        "script is removed",
			input:       "Xin chào <script>alert('x')</script>",
			contains:    []string{"Xin chào"},
			notContains: []string{"<script>"},
		},
		{
			name:        "javascript links are dropped",
			input:       "[click](javascript:alert(1))",
			notContains: []string{"javascript:"},
		},
		{
			name:     "external links get nofollow",
			input:    "[ngân hàng](https://example.com)",
			contains: []string{"nofollow", `target="_blank"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := svc.ToHTMLSanitized(tt.input)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestStripTags(t *testing.T) {
	svc := NewMarkdownService()
	assert.Equal(t, "Lừa đảo qua mạng", svc.StripTags("<p><b>Lừa đảo</b> qua mạng</p>"))
}
