package generate_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/commentdoc/commentdoc"
	"go.jacobcolvin.com/commentdoc/generate"
	"go.jacobcolvin.com/commentdoc/stringtest"
)

func TestParseManifest(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		check   func(*testing.T, *generate.Manifest)
		input   string
		wantErr bool
	}{
		"functions only": {
			input: stringtest.Input(`
				functions:
				  source: src/lua/util.rs
				  output: docs/xplr.util.md
				  prefix: xplr.util.
			`),
			check: func(t *testing.T, m *generate.Manifest) {
				t.Helper()

				assert.Equal(t, []generate.Pass{generate.PassFunctions}, m.Passes())
				assert.Equal(t, "xplr.util.", m.Functions.Prefix)
				assert.Nil(t, m.Messages)
			},
		},
		"configuration with vocabulary": {
			input: stringtest.Input(`
				configuration:
				  source: init.lua
				  namespace: app.
				  outputs:
				    node-types: node_types.md
				formatter: [prettier, --write, .]
			`),
			check: func(t *testing.T, m *generate.Manifest) {
				t.Helper()

				assert.Equal(t, "node_types.md", m.Configuration.Outputs.For(commentdoc.TargetNodeTypes))
				assert.Empty(t, m.Configuration.Outputs.For(commentdoc.TargetModes))
				assert.Equal(t, "app.", m.Vocabulary().Namespace)
				assert.Equal(t, []string{"prettier", "--write", "."}, m.Formatter)
			},
		},
		"unknown field": {
			input: stringtest.Input(`
				functions:
				  source: util.rs
				  output: util.md
				  heading: xplr.util.
			`),
			wantErr: true,
		},
		"wrong type": {
			input: stringtest.Input(`
				formatter: prettier
				functions:
				  source: util.rs
				  output: util.md
			`),
			wantErr: true,
		},
		"missing output": {
			input: stringtest.Input(`
				messages:
				  source: external.rs
			`),
			wantErr: true,
		},
		"configuration without outputs": {
			input: stringtest.Input(`
				configuration:
				  source: init.lua
				  outputs: {}
			`),
			wantErr: true,
		},
		"empty": {
			input:   "",
			wantErr: true,
		},
		"invalid yaml": {
			input:   "messages: [",
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m, err := generate.ParseManifest([]byte(tc.input))
			if tc.wantErr {
				require.ErrorIs(t, err, generate.ErrManifest)
				return
			}

			require.NoError(t, err)
			tc.check(t, m)
		})
	}
}

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	m, err := generate.LoadManifest(filepath.Join("testdata", "manifest.yaml"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("testdata", "xplr"), m.Root)
	assert.Equal(t, generate.AllPasses(), m.Passes())
	assert.Equal(t,
		filepath.Join("testdata", "xplr", "src", "init.lua"),
		m.Path(m.Configuration.Source))
	assert.Equal(t, "/abs/path.md", m.Path("/abs/path.md"))

	_, err = generate.LoadManifest(filepath.Join("testdata", "missing.yaml"))
	require.ErrorIs(t, err, generate.ErrManifest)
}

func TestDefaultManifest(t *testing.T) {
	t.Parallel()

	m := generate.DefaultManifest()
	require.NoError(t, m.Validate())

	assert.Equal(t, commentdoc.DefaultVocabulary(), m.Vocabulary())
	assert.Equal(t, generate.AllPasses(), m.Passes())

	for _, target := range commentdoc.Targets() {
		assert.NotEmpty(t, m.Configuration.Outputs.For(target), target.String())
	}
}

func TestSchema(t *testing.T) {
	t.Parallel()

	s, err := generate.Schema()
	require.NoError(t, err)

	assert.Equal(t, "commentdoc manifest", s.Title)

	for _, key := range []string{"root", "messages", "configuration", "functions", "formatter"} {
		assert.Contains(t, s.Properties, key)
	}
}
