// Package protoir is the public API for the protocol IR and type
// checker. Given a JSON (or YAML) document describing a wire protocol,
// it builds an in-memory, queryable IR in which every name is resolved,
// every expression is type-checked, and every structural invariant is
// enforced — or it fails with a single ValidationError, exposing no
// partial result.
//
// Basic usage:
//
//	protocol, err := protoir.Load(jsonBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, t := range protocol.Types() {
//	    fmt.Println(t.Name, t.Kind)
//	}
package protoir

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/protoir/protoir/internal/config"
	"github.com/protoir/protoir/internal/ir"
	"github.com/protoir/protoir/internal/loader"
)

// Protocol is a fully loaded, immutable protocol IR: every registered
// type and trait, the mutable context's declared shape, and the sorted
// PDU list.
type Protocol = ir.Protocol

// Type is a registered type record.
type Type = ir.Type

// Trait is a registered trait definition.
type Trait = ir.Trait

// ValidationError is the single error kind the core produces.
type ValidationError = ir.ValidationError

// Version is the protoir IR format version this package implements.
const Version = "1.0.0"

// Option configures a Load call.
type Option func(*config.Config)

// WithShapeValidation toggles the JSON-Schema envelope pre-check that
// runs before semantic loading. It is on by default.
func WithShapeValidation(enabled bool) Option {
	return func(c *config.Config) { c.ShapeValidation = enabled }
}

// WithStrictContextAccess records the caller's intent that downstream
// evaluation of the loaded protocol should treat a context read with no
// current_value as an error rather than a no-op. The core itself never
// evaluates expressions and does not act on this flag; it is threaded
// through to the resulting Config purely for consumers built on top of
// this package to observe.
func WithStrictContextAccess(enabled bool) Option {
	return func(c *config.Config) { c.StrictContextAccess = enabled }
}

func buildConfig(opts []Option) config.Config {
	cfg := config.Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Load parses and validates a protocol document from JSON bytes.
func Load(data []byte, opts ...Option) (*Protocol, error) {
	return loader.Load(data, buildConfig(opts), uuid.NewString())
}

// LoadYAML parses and validates a protocol document given as YAML. The
// document is decoded generically and re-encoded as canonical JSON so it
// flows through exactly the same loader path as Load.
func LoadYAML(data []byte, opts ...Option) (*Protocol, error) {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("protoir: decoding YAML: %w", err)
	}
	jsonBytes, err := json.Marshal(normalizeYAML(generic))
	if err != nil {
		return nil, fmt.Errorf("protoir: converting YAML to JSON: %w", err)
	}
	return Load(jsonBytes, opts...)
}

// normalizeYAML recursively converts map[string]interface{} (yaml.v3's
// decoding target for mappings) into a tree json.Marshal can handle
// as-is; yaml.v3 already uses string keys, so this mostly exists to walk
// nested slices/maps uniformly and is a no-op for scalars.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = normalizeYAML(e)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = normalizeYAML(e)
		}
		return out
	default:
		return val
	}
}

// LoadFile reads and parses a protocol document from disk, dispatching
// on the file extension: .yaml/.yml decode as YAML, anything else as
// JSON.
func LoadFile(path string, opts ...Option) (*Protocol, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("protoir: reading %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(data, opts...)
	default:
		return Load(data, opts...)
	}
}
