package registry

import (
	"bytes"
	stderrors "errors"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/wippyai/structpack/errors"
	"github.com/wippyai/structpack/pack"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable Load reads the file path from.
const EnvConfig = "STRUCTPACK_CONFIG"

// Config is the registry file document.
type Config struct {
	// Defaults apply to every format entry.
	Defaults Defaults `yaml:"defaults"`

	// Formats maps entry names to their formats.
	Formats map[string]FormatSpec `yaml:"formats"`
}

type Defaults struct {
	// ByteOrder is prepended to formats that lack a marker. Accepts
	// native, little, big, network or a marker character. Empty leaves
	// formats unchanged (native).
	ByteOrder string `yaml:"byte_order"`
}

type FormatSpec struct {
	Format      string `yaml:"format"`
	Description string `yaml:"description"`
}

// Entry is one compiled registry format.
type Entry struct {
	Layout      *pack.Layout
	Name        string
	Format      string // effective format, after the default marker is applied
	Description string
	Digest      Digest
}

// Registry is an immutable set of named layouts.
type Registry struct {
	entries map[string]*Entry
	names   []string
}

// Load loads the registry file named by STRUCTPACK_CONFIG.
func Load() (*Registry, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		return nil, errors.InvalidInput(errors.PhaseConfig,
			EnvConfig+" environment variable not set; set it to the path of a registry file, or pass --config")
	}
	return LoadFile(path)
}

// LoadFile loads a registry from a YAML file.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "read registry file")
	}
	r, err := Parse(data)
	if err != nil {
		return nil, err
	}
	Logger().Info("registry loaded", zap.String("path", path), zap.Int("formats", r.Len()))
	return r, nil
}

// Parse decodes a YAML registry document and compiles every format.
// Unknown keys are rejected.
func Parse(data []byte) (*Registry, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !isEmptyDocument(err) {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "parse registry")
	}
	return New(cfg)
}

// New compiles cfg into a registry. Entries with identical effective
// formats share one Layout.
func New(cfg Config) (*Registry, error) {
	prefix := ""
	if cfg.Defaults.ByteOrder != "" {
		order, err := pack.ParseByteOrder(cfg.Defaults.ByteOrder)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "defaults.byte_order")
		}
		prefix = string(order.Marker())
	}

	compiler := pack.NewCompiler()
	r := &Registry{
		entries: make(map[string]*Entry, len(cfg.Formats)),
		names:   slices.Sorted(maps.Keys(cfg.Formats)),
	}

	for _, name := range r.names {
		spec := cfg.Formats[name]
		if name == "" {
			return nil, errors.InvalidInput(errors.PhaseConfig, "format entry with empty name")
		}

		format := spec.Format
		if prefix != "" && !pack.HasOrderMarker(format) {
			format = prefix + format
		}

		l, err := compiler.Compile(format)
		if err != nil {
			return nil, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
				Value(spec.Format).
				Cause(err).
				Detail("format %q", name).
				Build()
		}

		e := &Entry{
			Name:        name,
			Format:      format,
			Description: spec.Description,
			Layout:      l,
			Digest:      DigestOf(l),
		}
		r.entries[name] = e

		Logger().Debug("format compiled",
			zap.String("name", name),
			zap.String("format", format),
			zap.Int("size", l.Size()),
			zap.Int("slots", l.Slots()),
			zap.String("digest", e.Digest.Short()),
		)
	}

	return r, nil
}

// Lookup returns the entry for name.
func (r *Registry) Lookup(name string) (*Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, errors.NotFound(errors.PhaseConfig, "format", name)
	}
	return e, nil
}

// Layout is shorthand for Lookup(name).Layout.
func (r *Registry) Layout(name string) (*pack.Layout, error) {
	e, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return e.Layout, nil
}

// Names returns entry names in sorted order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

func (r *Registry) Len() int {
	return len(r.names)
}

// isEmptyDocument reports the io.EOF yaml returns for an empty file.
func isEmptyDocument(err error) bool {
	return stderrors.Is(err, io.EOF)
}
