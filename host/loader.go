package host

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Manifest describes a distributable mod: what to call it, which version
// is packaged, and which chat commands it claims.
type Manifest struct {
	Name        string   `yaml:"name" validate:"required"`
	Version     string   `yaml:"version" validate:"required"`
	Description string   `yaml:"description"`
	Wasm        string   `yaml:"wasm" validate:"required"`
	Commands    []string `yaml:"commands" validate:"dive,startswith=#"`
}

// Loader parses and validates mod manifests.
type Loader struct {
	validate *validator.Validate
}

// NewLoader creates a manifest loader.
func NewLoader() *Loader {
	return &Loader{validate: validator.New()}
}

// LoadManifest parses a YAML manifest and validates it.
func (l *Loader) LoadManifest(raw []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if err := l.validate.Struct(&m); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			msgs := make([]string, 0, len(errs))
			for _, fe := range errs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Field(), fe.Tag()))
			}
			return nil, fmt.Errorf("manifest validation failed:\n- %s", strings.Join(msgs, "\n- "))
		}
		return nil, fmt.Errorf("manifest validation failed: %w", err)
	}
	return &m, nil
}
