// Package config holds loader-wide options, mirroring the role the
// teacher's internal/config plays for its generator settings.
package config

// Config controls optional behavior around the otherwise-fixed loading
// pipeline described in spec §4.4. The structural and semantic checks
// themselves are never configurable; these options only gate ambient
// conveniences layered on top (shape pre-validation, diagnostics).
type Config struct {
	// ShapeValidation runs a JSON-Schema pre-check of the raw document
	// before semantic loading, surfacing malformed documents with a
	// precise JSON pointer instead of a generic decode error.
	ShapeValidation bool

	// StrictContextAccess, when true, is reserved for downstream
	// evaluation stages that want context reads to fail on an unset
	// current_value; the core never evaluates expressions and ignores
	// this flag itself. It is set via protoir.WithStrictContextAccess,
	// which the CLI's --strict flag and ~/.protoir.toml's strict_mode
	// both resolve into, so later stages can see the operator's intent.
	StrictContextAccess bool
}

// Default returns the configuration used when a caller does not supply
// one: shape validation on, strict context access left to the consumer.
func Default() Config {
	return Config{ShapeValidation: true}
}
