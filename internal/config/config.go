// Package config holds app-wide settings unmarshalled from Viper
// (flags are bound in internal/cli; ORFSCAN_* environment variables
// override defaults).
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"orfscan-core/orf"
)

// Output formats.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputFASTA = "fasta"
)

// Untranslatable-codon policies.
const (
	PolicySkip  = "skip"
	PolicyAbort = "abort"
)

// Config is the resolved settings for one scan run.
type Config struct {
	// codon table: builtin name or NCBI id
	Table string `mapstructure:"table"`

	// minimum translated length, in amino acids
	MinProteinLength int `mapstructure:"min-protein-length"`

	// what to do with an ORF containing an untranslatable codon
	OnUntranslatable string `mapstructure:"on-untranslatable"`

	// reject IUPAC ambiguity codes at sequence load
	Strict bool `mapstructure:"strict"`

	// worker threads (0 = all CPUs)
	Threads int `mapstructure:"threads"`

	// output settings
	Output   string `mapstructure:"output"`
	Pretty   bool   `mapstructure:"pretty"`
	NoHeader bool   `mapstructure:"no-header"`

	// logging
	Quiet   bool `mapstructure:"quiet"`
	Verbose bool `mapstructure:"verbose"`

	// exit code when the scan finds nothing
	NoORFExitCode int `mapstructure:"no-orf-exit-code"`
}

// New returns a Config populated from Viper's current state.
func New() (Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode settings: %w", err)
	}
	return c, nil
}

// Validate rejects settings no run could honor.
func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputFASTA:
	default:
		return fmt.Errorf("invalid --output %q (want text, json or fasta)", c.Output)
	}
	switch c.OnUntranslatable {
	case PolicySkip, PolicyAbort:
	default:
		return fmt.Errorf("invalid --on-untranslatable %q (want skip or abort)", c.OnUntranslatable)
	}
	if c.Table == "" {
		return fmt.Errorf("--table must not be empty")
	}
	if c.MinProteinLength < 0 {
		return fmt.Errorf("--min-protein-length must be >= 0")
	}
	if c.Threads < 0 {
		return fmt.Errorf("--threads must be >= 0")
	}
	if c.NoORFExitCode < 0 {
		return fmt.Errorf("--no-orf-exit-code must be >= 0")
	}
	return nil
}

// Policy maps the configured string onto the scanner's policy type.
func (c Config) Policy() orf.Policy {
	if c.OnUntranslatable == PolicyAbort {
		return orf.AbortOnUntranslatable
	}
	return orf.SkipUntranslatable
}
