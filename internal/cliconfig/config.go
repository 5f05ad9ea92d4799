// Package cliconfig owns per-invocation configuration for the roger CLI:
// defaults, validation, the stderr logger, and the write-only config
// snapshot advertised to the Jeannie controller.
package cliconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/audioforge/roger/pkg/client"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds one invocation's settings. It is constructed once in main and
// never mutated after validation.
type Config struct {
	// APIURL is the base URL of the Jeannie controller API.
	APIURL string `validate:"required,url"`

	// Raw switches output to pretty-printed envelope JSON.
	Raw bool

	// Timeout bounds each HTTP exchange.
	Timeout time.Duration `validate:"required,gt=0"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		APIURL:  client.DefaultAPIURL,
		Timeout: client.DefaultTimeout,
	}
}

// Validate normalizes and checks the configuration.
func (c *Config) Validate() error {
	c.APIURL = strings.TrimRight(c.APIURL, "/")
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ValidateStruct checks validator struct tags on v. Command handlers use it
// to reject bad option combinations before any request is made.
func ValidateStruct(v any) error {
	return validate.Struct(v)
}
