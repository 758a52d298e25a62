// Package main provides the CLI entry point for commentdoc, a tool that
// compiles structured source comments into markdown reference pages.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/commentdoc/commentdoc"
	"go.jacobcolvin.com/commentdoc/generate"
	"go.jacobcolvin.com/commentdoc/log"
	"go.jacobcolvin.com/commentdoc/profile"
	"go.jacobcolvin.com/commentdoc/version"
)

var (
	// ErrUnknownTarget indicates an unrecognized configuration target name.
	ErrUnknownTarget = errors.New("unknown target")
	// ErrNoPage indicates the requested page is not produced by the manifest.
	ErrNoPage = errors.New("page not produced")
)

const defaultWrap = 80

func main() {
	err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	logCfg := log.NewConfig()
	profCfg := profile.NewConfig()
	logger := slog.New(slog.DiscardHandler)

	var prof *profile.Profiler

	rootCmd := &cobra.Command{
		Use:   "commentdoc",
		Short: "Generate markdown reference pages from source comments",
		Long: `commentdoc reads annotated source files (an enum of messages, a Lua
configuration script and a set of documented functions) and writes one
markdown page per documented surface.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			l, err := logCfg.NewLogger(stderr)
			if err != nil {
				return err
			}

			logger = l
			prof = profCfg.NewProfiler()

			return prof.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return prof.Stop()
		},
	}

	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profCfg.RegisterFlags(rootCmd.PersistentFlags())

	err := errors.Join(logCfg.RegisterCompletions(rootCmd), profCfg.RegisterCompletions(rootCmd))
	if err != nil {
		fmt.Fprintf(stderr, "register completions: %v\n", err)
	}

	rootCmd.AddCommand(
		newGenerateCmd(func() *slog.Logger { return logger }),
		newRenderCmd(func() *slog.Logger { return logger }),
		newSchemaCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func passNames() []string {
	var names []string
	for _, p := range generate.AllPasses() {
		names = append(names, string(p))
	}

	return names
}

func parsePasses(args []string) ([]generate.Pass, error) {
	passes := make([]generate.Pass, 0, len(args))

	for _, arg := range args {
		p, err := generate.ParsePass(arg)
		if err != nil {
			return nil, err
		}

		passes = append(passes, p)
	}

	return passes, nil
}

func newGenerateCmd(logger func() *slog.Logger) *cobra.Command {
	cfg := generate.NewConfig()

	cmd := &cobra.Command{
		Use:   "generate [flags] [pass...]",
		Short: "Render and write every configured page",
		Long: fmt.Sprintf(`Render the given passes, or every pass configured by the manifest, and
write the resulting pages. Nothing is written unless every pass succeeds.

Passes: %s`, strings.Join(passNames(), ", ")),
		ValidArgs: passNames(),
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			passes, err := parsePasses(args)
			if err != nil {
				return err
			}

			r, err := cfg.NewRunner(logger(), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			return r.Run(cmd.Context(), passes...)
		},
	}

	cfg.RegisterFlags(cmd.Flags())

	err := cfg.RegisterCompletions(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "register completions: %v\n", err)
	}

	return cmd
}

func newRenderCmd(logger func() *slog.Logger) *cobra.Command {
	cfg := generate.NewConfig()

	var (
		target string
		raw    bool
		width  int
	)

	cmd := &cobra.Command{
		Use:   "render [flags] <pass> <source>",
		Short: "Render one page from a source file to stdout",
		Long: `Render one page of a pass from the given source file ("-" reads stdin)
and print it. On a terminal the page is styled unless --raw is set.`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return passNames(), cobra.ShellCompDirectiveNoFileComp
			}

			return nil, cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := generate.ParsePass(args[0])
			if err != nil {
				return err
			}

			t, ok := commentdoc.ParseTarget(target)
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownTarget, target)
			}

			text, err := readSource(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}

			m, err := cfg.LoadManifest()
			if err != nil {
				return err
			}

			pages, err := generate.NewRunner(m, generate.WithLogger(logger())).RenderSource(pass, text)
			if err != nil {
				return err
			}

			page, err := selectPage(pages, pass, t)
			if err != nil {
				return err
			}

			return printPage(cmd.OutOrStdout(), page.Content, raw, width)
		},
	}

	cmd.Flags().StringVarP(&cfg.Manifest, cfg.Flags.Manifest, "m", "",
		"manifest file (default: built-in xplr layout)")
	cmd.Flags().StringVarP(&target, "target", "t", commentdoc.TargetGeneral.String(),
		fmt.Sprintf("configuration document to print, one of: %s", targetNames()))
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without terminal styling")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "word wrap width for styled output (default: terminal width)")

	err := cmd.RegisterFlagCompletionFunc("target",
		cobra.FixedCompletions(targetNames(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "register completions: %v\n", err)
	}

	return cmd
}

func targetNames() []string {
	var names []string
	for _, t := range commentdoc.Targets() {
		names = append(names, t.String())
	}

	return names
}

func readSource(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return "", fmt.Errorf("%w: %w", generate.ErrReadSource, err)
	}

	return string(data), nil
}

// selectPage picks the page to print. Configuration renders one page per
// target; other passes render a single page.
func selectPage(pages []generate.Page, pass generate.Pass, t commentdoc.Target) (generate.Page, error) {
	name := string(pass)
	if pass == generate.PassConfiguration {
		name += "/" + t.String()
	}

	for _, p := range pages {
		if p.Name == name {
			return p, nil
		}
	}

	return generate.Page{}, fmt.Errorf("%w: %s", ErrNoPage, name)
}

func printPage(w io.Writer, content string, raw bool, width int) error {
	f, isFile := w.(*os.File)
	if raw || !isFile || !term.IsTerminal(int(f.Fd())) {
		_, err := io.WriteString(w, content)
		if err != nil {
			return fmt.Errorf("%w: %w", generate.ErrWriteOutput, err)
		}

		return nil
	}

	if width == 0 {
		width = defaultWrap

		cols, _, err := term.GetSize(int(f.Fd()))
		if err == nil && cols > 0 {
			width = cols
		}
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	out, err := tr.Render(content)
	if err != nil {
		return fmt.Errorf("%w: %w", commentdoc.ErrRender, err)
	}

	_, err = io.WriteString(w, out)
	if err != nil {
		return fmt.Errorf("%w: %w", generate.ErrWriteOutput, err)
	}

	return nil
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the manifest file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := generate.Schema()
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return fmt.Errorf("%w: %w", generate.ErrWriteOutput, err)
			}

			out = append(out, '\n')

			_, err = cmd.OutOrStdout().Write(out)
			if err != nil {
				return fmt.Errorf("%w: %w", generate.ErrWriteOutput, err)
			}

			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
			if err != nil {
				return fmt.Errorf("%w: %w", generate.ErrWriteOutput, err)
			}

			return nil
		},
	}
}
