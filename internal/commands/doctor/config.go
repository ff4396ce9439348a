package doctor

import (
	"context"
	"errors"
	"os"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/randwall/internal/core/config"
)

// ConfigCheck validates the configuration file.
type ConfigCheck struct {
	config     *config.Config
	configPath string
}

// NewConfigCheck creates a new configuration check.
func NewConfigCheck(cfg *config.Config, configPath string) *ConfigCheck {
	return &ConfigCheck{
		config:     cfg,
		configPath: configPath,
	}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	if c.config == nil {
		result.fail("Config loaded", "configuration not loaded")
		return result
	}

	switch _, err := os.Stat(c.configPath); {
	case c.configPath == "":
	case err == nil:
		result.pass("Config file", c.configPath)
	case os.IsNotExist(err):
		result.pass("Config file", c.configPath+" (not found, using defaults)")
	default:
		result.fail("Config file", err.Error())
	}

	err := c.config.Validate()
	if err == nil {
		result.pass("Config valid", "")
		return result
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		result.fail("validation", err.Error())
		return result
	}

	for _, fe := range fieldErrs {
		label := fe.Field
		if label == "" {
			label = "validation"
		}
		result.fail(label, fe.Err.Error())
	}

	return result
}
