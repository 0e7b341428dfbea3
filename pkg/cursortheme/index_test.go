package cursortheme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeIndex(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.theme")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestThemeInherits(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		ok      bool
	}{
		{
			name:    "plain declaration",
			content: "[Icon Theme]\nName=Child\nInherits=Parent\n",
			want:    "Parent",
			ok:      true,
		},
		{
			name:    "spaces around equals",
			content: "Inherits = Adwaita\n",
			want:    "Adwaita",
			ok:      true,
		},
		{
			name:    "value list takes first entry",
			content: "Inherits=breeze_cursors,Adwaita;hicolor\n",
			want:    "breeze_cursors",
			ok:      true,
		},
		{
			name:    "crlf line endings",
			content: "[Icon Theme]\r\nInherits=Parent\r\n",
			want:    "Parent",
			ok:      true,
		},
		{
			name:    "first declaration wins",
			content: "Inherits=First\nInherits=Second\n",
			want:    "First",
			ok:      true,
		},
		{
			name:    "empty value keeps scanning",
			content: "Inherits=\nInherits=Later\n",
			want:    "Later",
			ok:      true,
		},
		{
			name:    "missing equals sign",
			content: "Inherits Parent\n",
			ok:      false,
		},
		{
			name:    "prefix must open the line",
			content: "X-Inherits=Parent\n# Inherits=Parent\n",
			ok:      false,
		},
		{
			name:    "no declaration",
			content: "[Icon Theme]\nName=Standalone\n",
			ok:      false,
		},
		{
			name:    "leading separators trimmed",
			content: "Inherits= ,;Parent\n",
			want:    "Parent",
			ok:      true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := themeInherits(writeIndex(t, tc.content))
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("absent file", func(t *testing.T) {
		_, ok := themeInherits(filepath.Join(t.TempDir(), "index.theme"))
		assert.False(t, ok)
	})
}
