// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LedgerConfig holds settings for the material storage ledger.
type LedgerConfig struct {
	// Dir is the directory holding ledger.db and exports.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// MaxHistory is the default number of credits returned by history
	// queries (default 50).
	MaxHistory int `json:"max_history" yaml:"max_history" mapstructure:"max_history"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// JSON selects structured JSON output instead of console output.
	JSON bool `json:"json" yaml:"json" mapstructure:"json"`
}

// LocaleConfig selects the language for user-facing messages.
type LocaleConfig struct {
	// Language is a BCP 47 tag, e.g. "en" or "de" (default "en").
	Language string `json:"language" yaml:"language" mapstructure:"language"`
}

// ScenarioConfig locates the world scenario file.
type ScenarioConfig struct {
	// Path is the scenario YAML file (default "scenario.yaml").
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// DryRun leaves the scenario file untouched after a trigger.
	DryRun bool `json:"dry_run" yaml:"dry_run" mapstructure:"dry_run"`
}

// AppConfig groups all configuration for the biogenerator CLI.
type AppConfig struct {
	Ledger   LedgerConfig   `json:"ledger" yaml:"ledger" mapstructure:"ledger"`
	Log      LogConfig      `json:"log" yaml:"log" mapstructure:"log"`
	Locale   LocaleConfig   `json:"locale" yaml:"locale" mapstructure:"locale"`
	Scenario ScenarioConfig `json:"scenario" yaml:"scenario" mapstructure:"scenario"`
}
