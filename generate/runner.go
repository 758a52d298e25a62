package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/sync/errgroup"

	"go.jacobcolvin.com/commentdoc/commentdoc"
	"go.jacobcolvin.com/commentdoc/commentdoc/enumdoc"
	"go.jacobcolvin.com/commentdoc/commentdoc/fndoc"
	"go.jacobcolvin.com/commentdoc/commentdoc/luadoc"
)

// Sentinel errors returned by the runner.
var (
	ErrPass          = errors.New("pass failed")
	ErrUnknownPass   = errors.New("unknown pass")
	ErrNotConfigured = errors.New("pass not configured")
	ErrReadSource    = errors.New("read source")
	ErrWriteOutput   = errors.New("write output")
)

// Pass names one generation pass.
type Pass string

const (
	// PassMessages renders the enum message list.
	PassMessages Pass = "messages"
	// PassConfiguration renders the five configuration documents.
	PassConfiguration Pass = "configuration"
	// PassFunctions renders the function reference.
	PassFunctions Pass = "functions"
)

// AllPasses returns every pass in canonical order.
func AllPasses() []Pass {
	return []Pass{PassMessages, PassConfiguration, PassFunctions}
}

// ParsePass returns the [Pass] named s.
func ParsePass(s string) (Pass, error) {
	for _, p := range AllPasses() {
		if string(p) == s {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownPass, s)
}

// Page is one rendered markdown document.
type Page struct {
	// Name identifies the page within its pass, e.g. "messages" or
	// "configuration/general".
	Name    string
	Path    string
	Content string
	Pass    Pass
}

// Runner renders and writes the pages described by a [Manifest].
//
// Create instances with [NewRunner].
type Runner struct {
	manifest   *Manifest
	logger     *slog.Logger
	dryRun     io.Writer
	skipFormat bool
}

// Option configures a [Runner].
type Option func(*Runner)

// WithLogger sets the logger. The default discards all records.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithDryRun writes rendered pages to w instead of their output files. The
// formatter is not run.
func WithDryRun(w io.Writer) Option {
	return func(r *Runner) {
		r.dryRun = w
	}
}

// WithoutFormatter disables the formatter command.
func WithoutFormatter() Option {
	return func(r *Runner) {
		r.skipFormat = true
	}
}

// NewRunner creates a [Runner] for m.
func NewRunner(m *Manifest, opts ...Option) *Runner {
	r := &Runner{
		manifest: m,
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run renders the given passes, or every configured pass when none are
// given, then writes all pages and runs the formatter.
//
// Passes render concurrently. Nothing is written unless every pass
// succeeds. A failing formatter is logged and does not fail the run.
func (r *Runner) Run(ctx context.Context, passes ...Pass) error {
	if len(passes) == 0 {
		passes = r.manifest.Passes()
	}

	results := make([][]Page, len(passes))

	g, gctx := errgroup.WithContext(ctx)
	for i, pass := range passes {
		g.Go(func() error {
			pages, err := r.Render(gctx, pass)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrPass, pass, err)
			}

			results[i] = pages

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return err
	}

	for _, pages := range results {
		for _, page := range pages {
			err := r.write(page)
			if err != nil {
				return err
			}
		}
	}

	if r.dryRun == nil && !r.skipFormat {
		r.format(ctx)
	}

	return nil
}

// Render reads the source of pass and renders its pages without writing
// them.
func (r *Runner) Render(ctx context.Context, pass Pass) ([]Page, error) {
	src, err := r.source(pass)
	if err != nil {
		return nil, err
	}

	err = ctx.Err()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
	}

	return r.RenderSource(pass, string(data))
}

// RenderSource renders the pages of pass from source text.
func (r *Runner) RenderSource(pass Pass, text string) ([]Page, error) {
	var (
		pages []Page
		err   error
	)

	switch pass {
	case PassMessages:
		pages, err = r.renderMessages(text)
	case PassConfiguration:
		pages, err = r.renderConfiguration(text)
	case PassFunctions:
		pages, err = r.renderFunctions(text)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPass, pass)
	}

	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		outline := commentdoc.Outline(page.Content)
		r.logger.Info("rendered page",
			slog.String("pass", string(pass)),
			slog.String("page", page.Name),
			slog.String("output", page.Path),
			slog.Int("headings", len(outline)),
		)
	}

	return pages, nil
}

func (r *Runner) source(pass Pass) (string, error) {
	m := r.manifest

	switch pass {
	case PassMessages:
		if m.Messages != nil {
			return m.Path(m.Messages.Source), nil
		}
	case PassConfiguration:
		if m.Configuration != nil {
			return m.Path(m.Configuration.Source), nil
		}
	case PassFunctions:
		if m.Functions != nil {
			return m.Path(m.Functions.Source), nil
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPass, pass)
	}

	return "", fmt.Errorf("%w: %s", ErrNotConfigured, pass)
}

func (r *Runner) renderMessages(text string) ([]Page, error) {
	cfg := r.manifest.Messages
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotConfigured, PassMessages)
	}

	var tmpl *template.Template

	if cfg.Template != "" {
		data, err := os.ReadFile(r.manifest.Path(cfg.Template))
		if err != nil {
			return nil, fmt.Errorf("%w: template: %w", ErrReadSource, err)
		}

		tmpl, err = commentdoc.ParseMessagesTemplate(string(data))
		if err != nil {
			return nil, err
		}
	}

	doc := enumdoc.Extract(commentdoc.Lines(text), enumdoc.WithVocabulary(r.manifest.Vocabulary()))

	sections := 0
	for _, cat := range doc.Categories {
		sections += len(cat.TitledSections())
	}

	r.logger.Debug("extracted messages",
		slog.Int("categories", len(doc.Categories)),
		slog.Int("messages", sections),
	)

	content, err := commentdoc.RenderMessages(doc, tmpl)
	if err != nil {
		return nil, err
	}

	return []Page{{
		Pass:    PassMessages,
		Name:    string(PassMessages),
		Path:    r.manifest.Path(cfg.Output),
		Content: content,
	}}, nil
}

func (r *Runner) renderConfiguration(text string) ([]Page, error) {
	cfg := r.manifest.Configuration
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotConfigured, PassConfiguration)
	}

	set := luadoc.Extract(commentdoc.Lines(text), luadoc.WithVocabulary(r.manifest.Vocabulary()))

	var pages []Page

	for _, target := range commentdoc.Targets() {
		out := cfg.Outputs.For(target)
		if out == "" {
			continue
		}

		paragraphs := set.Paragraphs(target)
		r.logger.Debug("extracted configuration document",
			slog.String("target", target.String()),
			slog.Int("paragraphs", len(paragraphs)),
			slog.Int("lines", paragraphs.Lines()),
		)

		pages = append(pages, Page{
			Pass:    PassConfiguration,
			Name:    string(PassConfiguration) + "/" + target.String(),
			Path:    r.manifest.Path(out),
			Content: set.Render(target),
		})
	}

	return pages, nil
}

func (r *Runner) renderFunctions(text string) ([]Page, error) {
	cfg := r.manifest.Functions
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotConfigured, PassFunctions)
	}

	docs := fndoc.Extract(commentdoc.Lines(text), fndoc.WithVocabulary(r.manifest.Vocabulary()))

	r.logger.Debug("extracted functions",
		slog.Int("functions", len(docs.Functions)),
		slog.Bool("orphan", docs.Orphan != nil),
	)

	return []Page{{
		Pass:    PassFunctions,
		Name:    string(PassFunctions),
		Path:    r.manifest.Path(cfg.Output),
		Content: commentdoc.RenderFunctions(docs, cfg.Prefix),
	}}, nil
}

func (r *Runner) write(page Page) error {
	if r.dryRun != nil {
		_, err := fmt.Fprintf(r.dryRun, "==> %s <==\n%s\n", page.Path, page.Content)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}

		return nil
	}

	err := os.MkdirAll(filepath.Dir(page.Path), 0o755)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	err = os.WriteFile(page.Path, []byte(page.Content), 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	r.logger.Debug("wrote page", slog.String("path", page.Path))

	return nil
}

// format runs the manifest's formatter once. Its outcome is only logged.
func (r *Runner) format(ctx context.Context) {
	argv := r.manifest.Formatter
	if len(argv) == 0 {
		return
	}

	command := strings.Join(argv, " ")

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.manifest.Root

	out, err := cmd.CombinedOutput()
	if err != nil {
		r.logger.Warn("formatter failed",
			slog.String("command", command),
			slog.Any("error", err),
			slog.String("output", string(out)),
		)

		return
	}

	r.logger.Debug("formatter finished", slog.String("command", command))
}
