package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bstrings.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantWidth   *uint
		wantSyntax  *string
		wantVerbose *bool
		wantErr     error
	}{
		{
			name:        "all keys",
			content:     "width = 16\nsyntax = \"python\"\nverbose = true\n",
			wantWidth:   uintPtr(16),
			wantSyntax:  strPtr("python"),
			wantVerbose: boolPtr(true),
		},
		{
			name:    "empty file leaves everything unset",
			content: "",
		},
		{
			name:      "explicit zero width is distinguishable from unset",
			content:   "width = 0\n",
			wantWidth: uintPtr(0),
		},
		{
			name:    "unknown syntax rejected",
			content: "syntax = \"ruby\"\n",
			wantErr: ErrUnknownSyntax,
		},
		{
			name:       "plain syntax accepted",
			content:    "syntax = \"plain\"\n",
			wantSyntax: strPtr("plain"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			d, err := NewLoader().Load(path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantWidth, d.Width)
			assert.Equal(t, tt.wantSyntax, d.Syntax)
			assert.Equal(t, tt.wantVerbose, d.Verbose)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrConfigNotReadable)
}

func TestLoad_NegativeWidthRejected(t *testing.T) {
	path := writeConfig(t, "width = -4\n")
	_, err := NewLoader().Load(path)
	assert.Error(t, err, "negative width must not decode into a uint")
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/bstrings.toml")
	assert.Equal(t, "/tmp/override.toml", ResolvePath("/tmp/override.toml"))
	assert.Equal(t, "/etc/bstrings.toml", ResolvePath(""))

	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, "", ResolvePath(""))
}

func uintPtr(v uint) *uint { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool { return &v }
