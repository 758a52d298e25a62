package luadoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/commentdoc/commentdoc"
	"go.jacobcolvin.com/commentdoc/commentdoc/luadoc"
	"go.jacobcolvin.com/commentdoc/stringtest"
)

const initLua = `
local xplr = xplr

-- # Configuration ------------------------------------------------------------
--
-- xplr can be configured using Lua.

-- ### General Configuration --------------------------------------------------
--
-- The general configuration properties are grouped together in
-- ` + "`xplr.config.general`" + `.

-- Set it to ` + "`true`" + ` if you want to ignore the startup errors.
--
-- Type: boolean
xplr.config.general.disable_debug_error_mode = false

--- @type table
xplr.config.general.table = {}

-- ### Node Types -------------------------------------------------------------
--
-- Node types are matched by mime.
xplr.config.node_types.directory = {}
`

func TestExtract(t *testing.T) {
	t.Parallel()

	set := luadoc.Extract(commentdoc.Lines(initLua))

	tcs := map[string]struct {
		want   commentdoc.Paragraphs
		target commentdoc.Target
	}{
		"overview": {
			target: commentdoc.TargetOverview,
			want: commentdoc.Paragraphs{
				{"\n# Configuration\n", "", "xplr can be configured using Lua."},
				{},
			},
		},
		"general": {
			target: commentdoc.TargetGeneral,
			want: commentdoc.Paragraphs{
				{
					"\n### General Configuration\n",
					"",
					"The general configuration properties are grouped together in",
					"`xplr.config.general`.",
				},
				{
					"\n#### xplr.config.general.disable_debug_error_mode\n",
					"Set it to `true` if you want to ignore the startup errors.",
					"",
					"Type: boolean",
				},
				{},
			},
		},
		"node types": {
			target: commentdoc.TargetNodeTypes,
			want: commentdoc.Paragraphs{
				{
					"\n#### xplr.config.node_types.directory\n",
					"\n### Node Types\n",
					"",
					"Node types are matched by mime.",
				},
			},
		},
		"layouts untouched": {
			target: commentdoc.TargetLayouts,
			want:   commentdoc.Paragraphs{{}},
		},
		"modes untouched": {
			target: commentdoc.TargetModes,
			want:   commentdoc.Paragraphs{{}},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, set.Paragraphs(tc.target))
		})
	}

	assert.Nil(t, set.Paragraphs(commentdoc.TargetNone))
}

func TestExtractHeadingSwitch(t *testing.T) {
	t.Parallel()

	input := stringtest.Input(`
		-- ### General Configuration ----------------------------
		--
		-- Modes are configured elsewhere.
		xplr.config.modes.builtin.default = {}
		-- Still general.
	`)

	set := luadoc.Extract(commentdoc.Lines(input))

	general := set.Paragraphs(commentdoc.TargetGeneral)
	assert.Equal(t, commentdoc.Paragraphs{{
		"\n#### xplr.config.modes.builtin.default\n",
		"\n### General Configuration\n",
		"",
		"Modes are configured elsewhere.",
		"Still general.",
	}}, general)

	for _, target := range []commentdoc.Target{
		commentdoc.TargetOverview,
		commentdoc.TargetNodeTypes,
		commentdoc.TargetLayouts,
		commentdoc.TargetModes,
	} {
		assert.Equal(t, 0, set.Paragraphs(target).Lines(), target.String())
	}
}

func TestExtractDropsContentBeforeFirstHeading(t *testing.T) {
	t.Parallel()

	input := stringtest.Input(`
		-- Version: 1.0
		--
		xplr.config.general.foo = 1

		-- ## Function ---------------------------------------
		-- A function.
	`)

	set := luadoc.Extract(commentdoc.Lines(input))

	assert.Equal(t, commentdoc.Paragraphs{{"\n## Function\n", "A function."}},
		set.Paragraphs(commentdoc.TargetOverview))
	assert.Equal(t, stringtest.JoinLF("", "## Function", "", "A function.", ""),
		set.Render(commentdoc.TargetOverview))
}

func TestExtractRenderOutline(t *testing.T) {
	t.Parallel()

	set := luadoc.Extract(commentdoc.Lines(initLua))

	assert.Equal(t, []commentdoc.Heading{
		{Level: 3, Text: "General Configuration"},
		{Level: 4, Text: "xplr.config.general.disable_debug_error_mode"},
	}, commentdoc.Outline(set.Render(commentdoc.TargetGeneral)))
}

func TestExtractWithVocabulary(t *testing.T) {
	t.Parallel()

	input := stringtest.Input(`
		-- ### Layouts ---
		-- The default layout.
		app.layouts.default = {}
		-- Ignored namespace.
		xplr.layouts.other = {}
	`)

	set := luadoc.Extract(commentdoc.Lines(input),
		luadoc.WithVocabulary(commentdoc.Vocabulary{Namespace: "app."}))

	assert.Equal(t, commentdoc.Paragraphs{{
		"\n#### app.layouts.default\n",
		"\n### Layouts\n",
		"The default layout.",
		"Ignored namespace.",
	}}, set.Paragraphs(commentdoc.TargetLayouts))
}
