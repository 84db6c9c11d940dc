package demomod

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
)

// validate is a package-level singleton; constructing a validator per call
// is expensive.
var validate = validator.New()

// Config controls the overlay panel geometry and title. Defaults match the
// client's stock HUD proportions.
type Config struct {
	Width  int    `json:"width"  validate:"gt=0"  jsonschema:"default=180"`
	Height int    `json:"height" validate:"gt=0"  jsonschema:"default=80"`
	Margin int    `json:"margin" validate:"gte=0" jsonschema:"default=10"`
	Title  string `json:"title"  validate:"required" jsonschema:"default=Ugaris Demo Mod"`
}

// DefaultConfig returns the stock overlay configuration.
func DefaultConfig() Config {
	return Config{
		Width:  180,
		Height: 80,
		Margin: 10,
		Title:  modName,
	}
}

// Validate checks the config against its validation tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// LoadConfig unmarshals and validates a JSON config, filling unset fields
// from the defaults.
func LoadConfig(raw []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(raw) == 0 {
		return cfg, nil
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigSchema generates the JSON schema for Config, for host tooling that
// wants to validate or document mod settings.
func ConfigSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{DoNotReference: true}
	schema := reflector.Reflect(&Config{})
	return json.MarshalIndent(schema, "", "  ")
}
