package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maxvaer/dddtools/internal/config"
	"github.com/maxvaer/dddtools/internal/icons"
	"github.com/maxvaer/dddtools/internal/output"
)

func TestRunIcons(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "event-icons")
	opts := &config.IconOptions{OutDir: dir, Size: icons.BaseSize}

	var buf bytes.Buffer
	require.NoError(t, runIcons(opts, output.NewStatusWriter(&buf, true, false)))

	for _, name := range icons.Filenames() {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		require.Contains(t, buf.String(), "[+] wrote "+filepath.Join(dir, name))
	}
	require.True(t, strings.HasPrefix(buf.String(), "[*] Rendering 4 icons"))
}

func TestRunIconsWarnsOnOverwrite(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "rest.png")
	require.NoError(t, os.WriteFile(existing, []byte("stale"), 0644))
	opts := &config.IconOptions{OutDir: dir, Size: icons.BaseSize, Quiet: true}

	var buf bytes.Buffer
	require.NoError(t, runIcons(opts, output.NewStatusWriter(&buf, true, true)))

	require.Equal(t, "[!] overwriting "+existing+"\n", buf.String())
	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	require.NotEqual(t, "stale", string(data))
}

func TestIconsCmdFlagsOverrideOptions(t *testing.T) {
	dir := t.TempDir()
	opts := &config.IconOptions{OutDir: "from-env", Size: 24}

	c := newIconsCmd(opts)
	c.SetArgs([]string{"--out", dir, "--size", "48", "-q"})
	require.NoError(t, c.Execute())

	require.Equal(t, dir, opts.OutDir)
	require.Equal(t, 48, opts.Size)
	require.True(t, opts.Quiet)
	_, err := os.Stat(filepath.Join(dir, "drive.png"))
	require.NoError(t, err)
}

func TestIconsCmdValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "size too small", args: []string{"--size", "16"}},
		{name: "empty out", args: []string{"--out", " "}},
		{name: "positional arg", args: []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &config.IconOptions{OutDir: t.TempDir(), Size: 24, Quiet: true}
			c := newIconsCmd(opts)
			c.SetArgs(tt.args)
			require.Error(t, c.Execute())
		})
	}
}

func TestIconsCmdHelp(t *testing.T) {
	opts := &config.IconOptions{OutDir: "assets/event-icons", Size: 24}
	c := newIconsCmd(opts)

	var buf bytes.Buffer
	c.SetErr(&buf)
	c.SetArgs([]string{"--help"})
	require.NoError(t, c.Execute())

	out := buf.String()
	require.Contains(t, out, "OUTPUT:")
	require.Contains(t, out, "RENDER:")
	require.Contains(t, out, "-o, --out string")
	require.Contains(t, out, "(default assets/event-icons)")
}
