package config

// LoadEnvironmentConfig loads configuration and applies the presets of its
// environment on top.
func LoadEnvironmentConfig(path string) (*Config, error) {
	base, err := LoadFrom(path)
	if err != nil {
		return nil, err
	}
	return ApplyEnvironment(base), nil
}

// ApplyEnvironment adjusts settings that depend on the deployment
// environment. Values set explicitly by the operator are kept.
func ApplyEnvironment(config *Config) *Config {
	switch {
	case config.IsProduction():
		return applyProductionConfig(config)
	case config.IsTest():
		return applyTestConfig(config)
	default:
		return config
	}
}

func applyProductionConfig(config *Config) *Config {
	if config.LogLevel == "info" {
		config.LogLevel = ProductionLogLevel
	}
	// The API browser is a development aid.
	config.Monitoring.SwaggerEnabled = false
	return config
}

func applyTestConfig(config *Config) *Config {
	config.LogLevel = TestLogLevel
	config.Project.Watch = false
	config.Monitoring.TracingEnabled = false
	return config
}
