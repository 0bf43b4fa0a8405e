package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// unsetenv clears keys for the duration of the test. Values set later by
// godotenv are rolled back by the t.Setenv cleanup.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func missingDotenv(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoadIconOptionsDefaults(t *testing.T) {
	unsetenv(t, "DDD_ICONS_OUT_DIR", "DDD_ICONS_SIZE", "DDD_ICONS_QUIET", "NO_COLOR")

	opts, err := LoadIconOptions(missingDotenv(t))
	require.NoError(t, err)
	require.Equal(t, "assets/event-icons", opts.OutDir)
	require.Equal(t, 24, opts.Size)
	require.False(t, opts.Quiet)
	require.False(t, opts.NoColor)
}

func TestLoadIconOptionsFromEnv(t *testing.T) {
	t.Setenv("DDD_ICONS_OUT_DIR", "/tmp/icons")
	t.Setenv("DDD_ICONS_SIZE", "48")
	t.Setenv("DDD_ICONS_QUIET", "true")
	t.Setenv("NO_COLOR", "true")

	opts, err := LoadIconOptions(missingDotenv(t))
	require.NoError(t, err)
	require.Equal(t, IconOptions{OutDir: "/tmp/icons", Size: 48, Quiet: true, NoColor: true}, opts)
}

func TestLoadIconOptionsDotenv(t *testing.T) {
	unsetenv(t, "DDD_ICONS_OUT_DIR")
	// Already-set variables win over the dotenv file.
	t.Setenv("DDD_ICONS_SIZE", "32")

	path := filepath.Join(t.TempDir(), "icons.env")
	content := "DDD_ICONS_OUT_DIR=build/icons\nDDD_ICONS_SIZE=96\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	opts, err := LoadIconOptions(path)
	require.NoError(t, err)
	require.Equal(t, "build/icons", opts.OutDir)
	require.Equal(t, 32, opts.Size)
}

func TestLoadIconOptionsInvalidSize(t *testing.T) {
	t.Setenv("DDD_ICONS_SIZE", "large")

	_, err := LoadIconOptions(missingDotenv(t))
	require.Error(t, err)
}

func TestLoadIconOptionsNoColorAnyValue(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "yes", want: true},
		{value: "1", want: true},
		{value: "false", want: true},
		{value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.value)

			opts, err := LoadIconOptions(missingDotenv(t))
			require.NoError(t, err)
			require.Equal(t, tt.want, opts.NoColor)
		})
	}
}
