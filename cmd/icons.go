package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/maxvaer/dddtools/internal/config"
	"github.com/maxvaer/dddtools/internal/icons"
	"github.com/maxvaer/dddtools/internal/output"
	"github.com/maxvaer/dddtools/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type flagGroup struct {
	title string
	flags []string
}

var iconHelpGroups = []flagGroup{
	{"OUTPUT", []string{"out", "quiet", "no-color"}},
	{"RENDER", []string{"size"}},
}

func newIconsCmd(opts *config.IconOptions) *cobra.Command {
	c := &cobra.Command{
		Use:     "genicons [flags]",
		Short:   "Render the activity pictograms used by the DDD viewer",
		Version: version.Version,
		Long: `genicons writes the four event-list pictograms (unknown, rest, work,
drive) as transparent PNG files. Defaults come from DDD_ICONS_* environment
variables or a .env file; flags override them.`,
		Example: `  genicons
  genicons -o src/renderer/src/assets/event-icons
  genicons --size 48 -q`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(opts.OutDir) == "" {
				return fmt.Errorf("--out must not be empty")
			}
			if opts.Size < icons.BaseSize {
				return fmt.Errorf("--size must be at least %d", icons.BaseSize)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIcons(opts, output.NewStatus(opts.NoColor, opts.Quiet))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := c.Flags()
	f.StringVarP(&opts.OutDir, "out", "o", opts.OutDir, "Directory to write PNG files to")
	f.IntVarP(&opts.Size, "size", "s", opts.Size, "Canvas edge length in pixels")
	f.BoolVarP(&opts.Quiet, "quiet", "q", opts.Quiet, "Minimal output")
	f.BoolVar(&opts.NoColor, "no-color", opts.NoColor, "Disable colored output")

	c.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		w := cmd.ErrOrStderr()
		fmt.Fprintf(w, "%s\n\nUsage:\n  %s\n", cmd.Long, cmd.UseLine())
		fmt.Fprintf(w, "\nExamples:\n%s\n", cmd.Example)
		fmt.Fprintf(w, "\nFlags:\n")
		for _, g := range iconHelpGroups {
			fmt.Fprintf(w, "\n%s:\n", g.title)
			for _, name := range g.flags {
				if f := cmd.Flags().Lookup(name); f != nil {
					fmt.Fprintln(w, formatFlag(f))
				}
			}
		}
		fmt.Fprintln(w)
	})
	return c
}

func runIcons(opts *config.IconOptions, status *output.Status) error {
	status.Info("Rendering %d icons at %dx%d into %s", len(icons.Specs()), opts.Size, opts.Size, opts.OutDir)
	for _, name := range icons.Filenames() {
		path := filepath.Join(opts.OutDir, name)
		if _, err := os.Stat(path); err == nil {
			status.Warn("overwriting %s", path)
		}
	}

	paths, err := icons.Generate(opts.OutDir, opts.Size)
	for _, p := range paths {
		status.Success("wrote %s", p)
	}
	if err != nil {
		return fmt.Errorf("generating icons: %w", err)
	}

	status.Info("Generated %d icons in %s", len(paths), opts.OutDir)
	return nil
}

func executeIcons(args []string, stderr io.Writer) int {
	opts, err := config.LoadIconOptions()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if args == nil {
		args = []string{}
	}

	c := newIconsCmd(&opts)
	c.SetArgs(args)
	c.SetErr(stderr)
	if err := c.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// ExecuteIcons runs the icon generator command.
func ExecuteIcons() {
	os.Exit(executeIcons(os.Args[1:], os.Stderr))
}

func formatFlag(f *pflag.Flag) string {
	var left string
	if f.Shorthand != "" {
		left = fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	} else {
		left = fmt.Sprintf("    --%s", f.Name)
	}

	typ := f.Value.Type()
	if typ != "bool" {
		left += " " + typ
	}

	// Pad to fixed column width for aligned descriptions.
	const col = 28
	for len(left) < col {
		left += " "
	}

	right := f.Usage
	// Show default for non-zero values.
	def := f.DefValue
	if def != "" && def != "false" && def != "0" {
		right += fmt.Sprintf(" (default %s)", def)
	}

	return "   " + left + right
}
