// Package log builds [log/slog] handlers for the commentdoc command.
//
// Three formats are supported: [FormatText] (human-readable output from
// [charm.land/log/v2], the default on a terminal), [FormatJSON] and
// [FormatLogfmt]. Levels are [LevelError], [LevelWarn], [LevelInfo] and
// [LevelDebug].
//
// Typical usage creates a [Config], registers flags on the root command,
// then installs the handler before any subcommand runs:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
package log
