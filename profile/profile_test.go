package profile_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/commentdoc/profile"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()

	assert.Empty(t, cfg.CPUProfile)
	assert.Empty(t, cfg.HeapProfile)
	assert.Zero(t, cfg.MemProfileRate)
	assert.False(t, cfg.NewProfiler().Enabled())
}

func TestRegisterFlags(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	cfg.RegisterFlags(flags)

	err := flags.Parse([]string{
		"--cpu-profile=cpu.prof",
		"--heap-profile=heap.prof",
		"--allocs-profile=allocs.prof",
		"--goroutine-profile=goroutine.prof",
		"--mem-profile-rate=1024",
	})
	require.NoError(t, err)

	assert.Equal(t, "cpu.prof", cfg.CPUProfile)
	assert.Equal(t, "heap.prof", cfg.HeapProfile)
	assert.Equal(t, "allocs.prof", cfg.AllocsProfile)
	assert.Equal(t, "goroutine.prof", cfg.GoroutineProfile)
	assert.Equal(t, 1024, cfg.MemProfileRate)
	assert.True(t, cfg.NewProfiler().Enabled())
}

func TestRegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()

	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cfg.RegisterCompletions(cmd))

	completionFn, ok := cmd.GetFlagCompletionFunc("mem-profile-rate")
	require.True(t, ok)

	values, directive := completionFn(cmd, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.Empty(t, values)
}

func TestProfiler(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		configure func(cfg *profile.Config, dir string)
		want      []string
	}{
		"disabled": {
			configure: func(*profile.Config, string) {},
		},
		"snapshots": {
			configure: func(cfg *profile.Config, dir string) {
				cfg.HeapProfile = filepath.Join(dir, "heap.prof")
				cfg.GoroutineProfile = filepath.Join(dir, "goroutine.prof")
			},
			want: []string{"heap.prof", "goroutine.prof"},
		},
		"cpu": {
			configure: func(cfg *profile.Config, dir string) {
				cfg.CPUProfile = filepath.Join(dir, "cpu.prof")
			},
			want: []string{"cpu.prof"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()

			cfg := profile.NewConfig()
			tc.configure(cfg, dir)

			p := cfg.NewProfiler()
			require.NoError(t, p.Start())
			require.NoError(t, p.Stop())
			require.NoError(t, p.Stop())

			for _, f := range tc.want {
				assert.FileExists(t, filepath.Join(dir, f))
			}
		})
	}
}

func TestProfilerErrors(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()
	cfg.HeapProfile = filepath.Join(t.TempDir(), "missing", "heap.prof")

	p := cfg.NewProfiler()
	require.NoError(t, p.Start())
	require.ErrorIs(t, p.Stop(), profile.ErrProfile)
}
