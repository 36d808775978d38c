// Package models defines the configuration and result structures used throughout durfield.
package models

// Config represents the application configuration.
type Config struct {
	Field   FieldConfig       `mapstructure:"field"`   // Null and default handling for normalize
	Output  OutputConfig      `mapstructure:"output"`  // Result rendering
	UI      UIConfig          `mapstructure:"ui"`      // Terminal styling
	Finder  FinderConfig      `mapstructure:"finder"`  // Fuzzy finder configuration
	Batch   BatchConfig       `mapstructure:"batch"`   // Concurrent normalization
	Presets map[string]string `mapstructure:"presets"` // Named duration expressions
}

// FieldConfig mirrors field.Options in configuration form.
type FieldConfig struct {
	Default  string `mapstructure:"default"`  // Duration text substituted for null input; empty for none
	Nullable bool   `mapstructure:"nullable"` // Whether null input is accepted
}

// OutputConfig contains result rendering options.
type OutputConfig struct {
	Format OutputFormat `mapstructure:"format"` // text, json or yaml
}

// UIConfig contains UI-related configuration options.
type UIConfig struct {
	Color bool `mapstructure:"color"` // Enable colored output
}

// FinderConfig contains fuzzy finder configuration options.
type FinderConfig struct {
	Preview bool `mapstructure:"preview"` // Enable preview window
}

// BatchConfig contains options for normalizing many inputs at once.
type BatchConfig struct {
	Workers int `mapstructure:"workers"` // Concurrent workers; 0 means one per CPU
}

// OutputFormat selects how results are rendered.
type OutputFormat string

const (
	// OutputText renders aligned key/value rows.
	OutputText OutputFormat = "text"
	// OutputJSON renders indented JSON.
	OutputJSON OutputFormat = "json"
	// OutputYAML renders YAML.
	OutputYAML OutputFormat = "yaml"
)

// Valid reports whether f is a known output format.
func (f OutputFormat) Valid() bool {
	switch f {
	case OutputText, OutputJSON, OutputYAML:
		return true
	}
	return false
}

// Conversion is the rendered result of converting one input.
type Conversion struct {
	Input        string `json:"input" yaml:"input"`                     // Raw input as given
	Kind         string `json:"kind,omitempty" yaml:"kind,omitempty"`   // Input variant (text, microseconds, ...)
	Text         string `json:"text" yaml:"text"`                       // Canonical text form
	Microseconds int64  `json:"microseconds" yaml:"microseconds"`       // Canonical integer form
	Negative     bool   `json:"negative" yaml:"negative"`               // Overall sign
	Days         int64  `json:"days" yaml:"days"`                       // Magnitude: whole days
	Seconds      int64  `json:"seconds" yaml:"seconds"`                 // Magnitude: seconds past the day
	Micros       int64  `json:"micros" yaml:"micros"`                   // Magnitude: microseconds past the second
	Null         bool   `json:"null,omitempty" yaml:"null,omitempty"`   // Input normalized to null
	Error        string `json:"error,omitempty" yaml:"error,omitempty"` // Failure, if any
}

// Preset is a named duration expression from the configuration.
type Preset struct {
	Name string `json:"name" yaml:"name"`
	Expr string `json:"expr" yaml:"expr"`
}
