package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/justradojko/intellij-community/internal/project"
)

// configValidate checks struct tags on Config.
var configValidate = validator.New()

// validateConfig validates the loaded configuration
// Validate re-checks a configuration after it was changed in code, e.g. by
// command line flags.
func (c *Config) Validate() error {
	return validateConfig(c)
}

func validateConfig(config *Config) error {
	if err := configValidate.Struct(config); err != nil {
		return translateValidationErrors(err)
	}

	if config.Monitoring.TracingEnabled && config.Monitoring.OTLPEndpoint == "" {
		return fmt.Errorf("monitoring.otlp_endpoint is required when tracing is enabled")
	}

	for _, p := range config.Project.ExcludePatterns {
		if err := project.ValidatePattern(p); err != nil {
			return fmt.Errorf("invalid project.exclude_patterns entry %q: %w", p, err)
		}
	}

	if config.Project.Root != "" {
		if err := ValidateProjectRoot(config.Project.Root); err != nil {
			return err
		}
	}

	return nil
}

// ValidateProjectRoot checks that root names an existing directory
func ValidateProjectRoot(root string) error {
	if root == "" {
		return fmt.Errorf("project root cannot be empty")
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("invalid project root %q: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("invalid project root %q: not a directory", root)
	}
	return nil
}

// translateValidationErrors flattens validator output into one error naming
// every offending field.
func translateValidationErrors(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.ActualTag(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}
