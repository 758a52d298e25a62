// Package profile writes runtime profiles of a commentdoc invocation.
//
// CPU profiling covers the whole command; snapshot profiles (heap, allocs,
// goroutine) are taken once the command finishes. Every profile is off
// unless its output path is set:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	p := cfg.NewProfiler()
//
//	rootCmd.PersistentPreRunE = func(*cobra.Command, []string) error { return p.Start() }
//	rootCmd.PersistentPostRunE = func(*cobra.Command, []string) error { return p.Stop() }
package profile
