// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment override, e.g.
// BEAMCOV_ELECTRONS_PER_MACROPARTICLE.
const EnvPrefix = "BEAMCOV"

// Config holds the settings shared by all commands. Values are layered:
// DefaultConfig, then the YAML file, then BEAMCOV_* variables, then flags
// set explicitly on the command line.
type Config struct {
	ElectronsPerMacroparticle int    `yaml:"electrons_per_macroparticle" split_words:"true" validate:"gte=1"`
	Basis                     string `yaml:"basis" validate:"oneof=cartesian cylindrical"`
	Format                    string `yaml:"format" validate:"oneof=covariance correlation mixed"`
	Separator                 string `yaml:"separator" validate:"separator"`
	LogLevel                  string `yaml:"log_level" split_words:"true" validate:"oneof=debug info warn error"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		ElectronsPerMacroparticle: 100,
		Basis:                     "cartesian",
		Format:                    "covariance",
		Separator:                 " ",
		LogLevel:                  "info",
	}
}

var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	_ = configValidate.RegisterValidation("separator", validateSeparator)
}

// validateSeparator accepts a single rune that cannot occur inside a number
// and does not end a line.
func validateSeparator(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if utf8.RuneCountInString(s) != 1 {
		return false
	}
	return !strings.ContainsAny(s, "0123456789.+-eEnNaAiIfF\r\n")
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// LoadConfig returns DefaultConfig overlaid with the YAML file at path (when
// path is non-empty) and with BEAMCOV_* environment variables. The result is
// not validated; flags may still override it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: environment: %w", err)
	}
	return cfg, nil
}

// mergeFile decodes the YAML file at path over c. Unknown keys are rejected.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}
