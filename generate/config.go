package generate

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for generation, allowing callers to customize
// flag names while keeping sensible defaults.
type Flags struct {
	Manifest string
	Root     string
	DryRun   string
	NoFormat string
}

// Config holds CLI flag values for generation.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewRunner] to create a [Runner].
type Config struct {
	Flags    Flags
	Manifest string
	Root     string
	DryRun   bool
	NoFormat bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Manifest: "manifest",
		Root:     "root",
		DryRun:   "dry-run",
		NoFormat: "no-format",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds generation flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Manifest, c.Flags.Manifest, "m", "",
		"manifest file (default: built-in xplr layout)")
	flags.StringVarP(&c.Root, c.Flags.Root, "C", "",
		"directory that manifest paths are resolved against (overrides the manifest)")
	flags.BoolVarP(&c.DryRun, c.Flags.DryRun, "n", false,
		"print rendered pages to stdout instead of writing them")
	flags.BoolVar(&c.NoFormat, c.Flags.NoFormat, false,
		"do not run the manifest's formatter command")
}

// RegisterCompletions registers shell completions for generation flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.MarkFlagFilename(c.Flags.Manifest, "yaml", "yml")
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Manifest, err)
	}

	err = cmd.MarkFlagDirname(c.Flags.Root)
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Root, err)
	}

	return nil
}

// LoadManifest returns the configured manifest, or [DefaultManifest] when no
// manifest file is set, with the root override applied.
func (c *Config) LoadManifest() (*Manifest, error) {
	m := DefaultManifest()

	if c.Manifest != "" {
		var err error

		m, err = LoadManifest(c.Manifest)
		if err != nil {
			return nil, err
		}
	}

	if c.Root != "" {
		m.Root = c.Root
	}

	return m, nil
}

// NewRunner creates a [Runner] using this [Config]. In dry-run mode pages
// are written to stdout.
func (c *Config) NewRunner(logger *slog.Logger, stdout io.Writer) (*Runner, error) {
	m, err := c.LoadManifest()
	if err != nil {
		return nil, err
	}

	opts := []Option{WithLogger(logger)}

	if c.DryRun {
		opts = append(opts, WithDryRun(stdout))
	}

	if c.NoFormat {
		opts = append(opts, WithoutFormatter())
	}

	return NewRunner(m, opts...), nil
}
