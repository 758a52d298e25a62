package generate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/commentdoc/commentdoc"
)

// ErrManifest indicates a manifest could not be read, decoded or validated.
var ErrManifest = errors.New("manifest")

// Manifest describes which pages to generate from which sources.
//
// Relative paths are resolved against Root. Passes left nil are not run.
type Manifest struct {
	Messages      *MessagesPass      `json:"messages,omitempty"      yaml:"messages,omitempty"      jsonschema:"page listing every message of an annotated enum"`
	Configuration *ConfigurationPass `json:"configuration,omitempty" yaml:"configuration,omitempty" jsonschema:"pages extracted from an annotated Lua configuration script"`
	Functions     *FunctionsPass     `json:"functions,omitempty"     yaml:"functions,omitempty"     jsonschema:"page listing documented functions"`
	Root          string             `json:"root,omitempty"          yaml:"root,omitempty"          jsonschema:"directory that relative paths are resolved against"`
	Formatter     []string           `json:"formatter,omitempty"     yaml:"formatter,omitempty"     jsonschema:"command run once from root after every page is written"`
}

// MessagesPass configures the enumeration pass.
type MessagesPass struct {
	Source   string `json:"source"             yaml:"source"             jsonschema:"annotated enum source file"`
	Output   string `json:"output"             yaml:"output"             jsonschema:"markdown file to write"`
	Enum     string `json:"enum,omitempty"     yaml:"enum,omitempty"     jsonschema:"name of the documented enum"`
	Template string `json:"template,omitempty" yaml:"template,omitempty" jsonschema:"Go text/template file for the page layout"`
}

// ConfigurationPass configures the configuration script pass.
type ConfigurationPass struct {
	Source    string               `json:"source"              yaml:"source"              jsonschema:"annotated Lua configuration script"`
	Namespace string               `json:"namespace,omitempty" yaml:"namespace,omitempty" jsonschema:"reserved prefix of documented declarations"`
	Outputs   ConfigurationOutputs `json:"outputs"             yaml:"outputs"             jsonschema:"markdown file per document; empty entries are not written"`
}

// ConfigurationOutputs maps each configuration document to its output file.
type ConfigurationOutputs struct {
	Overview  string `json:"overview,omitempty"   yaml:"overview,omitempty"`
	General   string `json:"general,omitempty"    yaml:"general,omitempty"`
	NodeTypes string `json:"node-types,omitempty" yaml:"node-types,omitempty"`
	Layouts   string `json:"layouts,omitempty"    yaml:"layouts,omitempty"`
	Modes     string `json:"modes,omitempty"      yaml:"modes,omitempty"`
}

// For returns the output configured for t.
func (o ConfigurationOutputs) For(t commentdoc.Target) string {
	switch t {
	case commentdoc.TargetOverview:
		return o.Overview
	case commentdoc.TargetGeneral:
		return o.General
	case commentdoc.TargetNodeTypes:
		return o.NodeTypes
	case commentdoc.TargetLayouts:
		return o.Layouts
	case commentdoc.TargetModes:
		return o.Modes
	case commentdoc.TargetNone:
	}

	return ""
}

// FunctionsPass configures the function reference pass.
type FunctionsPass struct {
	Source  string `json:"source"            yaml:"source"            jsonschema:"annotated function source file"`
	Output  string `json:"output"            yaml:"output"            jsonschema:"markdown file to write"`
	Prefix  string `json:"prefix,omitempty"  yaml:"prefix,omitempty"  jsonschema:"text prepended to every function heading"`
	Keyword string `json:"keyword,omitempty" yaml:"keyword,omitempty" jsonschema:"keyword introducing a function declaration"`
}

// DefaultManifest returns the layout of the xplr repository.
func DefaultManifest() *Manifest {
	return &Manifest{
		Root: ".",
		Messages: &MessagesPass{
			Source: "src/msg/in_/external.rs",
			Output: "docs/en/src/messages.md",
			Enum:   "ExternalMsg",
		},
		Configuration: &ConfigurationPass{
			Source:    "src/init.lua",
			Namespace: "xplr.",
			Outputs: ConfigurationOutputs{
				Overview:  "docs/en/src/configuration.md",
				General:   "docs/en/src/general-config.md",
				NodeTypes: "docs/en/src/node_types.md",
				Layouts:   "docs/en/src/layouts.md",
				Modes:     "docs/en/src/modes.md",
			},
		},
		Functions: &FunctionsPass{
			Source:  "src/lua/util.rs",
			Output:  "docs/en/src/xplr.util.md",
			Prefix:  "xplr.util.",
			Keyword: "pub fn",
		},
		Formatter: []string{"prettier", "--write", "docs/en/src"},
	}
}

// Schema returns the JSON Schema of the manifest file format.
func Schema() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[Manifest](nil)
	if err != nil {
		return nil, fmt.Errorf("%w: schema: %w", ErrManifest, err)
	}

	s.Title = "commentdoc manifest"

	return s, nil
}

var resolvedSchema = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	s, err := Schema()
	if err != nil {
		return nil, err
	}

	return s.Resolve(nil)
})

// LoadManifest reads and validates the manifest at path. A relative Root is
// resolved against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if !filepath.IsAbs(m.Root) {
		m.Root = filepath.Join(filepath.Dir(path), m.Root)
	}

	return m, nil
}

// ParseManifest decodes and validates manifest YAML. Unknown fields are
// rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	var raw any

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}

	if raw != nil {
		resolved, err := resolvedSchema()
		if err != nil {
			return nil, err
		}

		err = resolved.Validate(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrManifest, err)
		}
	}

	m := &Manifest{}

	err = yaml.UnmarshalWithOptions(data, m, yaml.DisallowUnknownField())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}

	err = m.Validate()
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Validate checks that at least one pass is configured and that every
// configured pass names its source and outputs.
func (m *Manifest) Validate() error {
	if len(m.Passes()) == 0 {
		return fmt.Errorf("%w: no passes configured", ErrManifest)
	}

	if p := m.Messages; p != nil {
		if p.Source == "" || p.Output == "" {
			return fmt.Errorf("%w: messages: source and output are required", ErrManifest)
		}
	}

	if p := m.Configuration; p != nil {
		if p.Source == "" {
			return fmt.Errorf("%w: configuration: source is required", ErrManifest)
		}

		if p.Outputs == (ConfigurationOutputs{}) {
			return fmt.Errorf("%w: configuration: at least one output is required", ErrManifest)
		}
	}

	if p := m.Functions; p != nil {
		if p.Source == "" || p.Output == "" {
			return fmt.Errorf("%w: functions: source and output are required", ErrManifest)
		}
	}

	return nil
}

// Passes returns the configured passes in canonical order.
func (m *Manifest) Passes() []Pass {
	var out []Pass

	if m.Messages != nil {
		out = append(out, PassMessages)
	}

	if m.Configuration != nil {
		out = append(out, PassConfiguration)
	}

	if m.Functions != nil {
		out = append(out, PassFunctions)
	}

	return out
}

// Vocabulary returns the classifier vocabulary configured by the manifest.
func (m *Manifest) Vocabulary() commentdoc.Vocabulary {
	var v commentdoc.Vocabulary

	if m.Messages != nil {
		v.Enum = m.Messages.Enum
	}

	if m.Configuration != nil {
		v.Namespace = m.Configuration.Namespace
	}

	if m.Functions != nil {
		v.FuncKeyword = m.Functions.Keyword
	}

	return v
}

// Path resolves p against Root.
func (m *Manifest) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(m.Root, p)
}
