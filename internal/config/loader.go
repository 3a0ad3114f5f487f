package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from various sources with priority order:
// 1. Environment variables
// 2. Configuration file (config.yaml, or $CONFIG_PATH)
// 3. Default values
func Load() (*Config, error) {
	return LoadFrom(os.Getenv("CONFIG_PATH"))
}

// LoadFrom is Load with an explicit config file. An empty path searches the
// default locations.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/locator/")
		v.AddConfigPath("./configs/")
		v.AddConfigPath(".")
	}

	// Enable environment variable support
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix(EnvPrefix)

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - continue with env vars and defaults
	}

	overrideWithEnvVars(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults mirrors GetDefaultConfig so every key is known to viper and
// therefore reachable through LOCATOR_* environment variables.
func setDefaults(v *viper.Viper) {
	d := GetDefaultConfig()

	// Server defaults
	v.SetDefault("environment", d.Environment)
	v.SetDefault("port", d.Port)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)

	// Project defaults
	v.SetDefault("project.root", d.Project.Root)
	v.SetDefault("project.excluded_dirs", d.Project.ExcludedDirs)
	v.SetDefault("project.exclude_patterns", d.Project.ExcludePatterns)
	v.SetDefault("project.use_gitignore", d.Project.UseGitignore)
	v.SetDefault("project.descriptor", d.Project.Descriptor)
	v.SetDefault("project.watch", d.Project.Watch)

	// API defaults
	v.SetDefault("api.base_path", d.API.BasePath)

	// CORS defaults
	v.SetDefault("cors.allowed_origins", d.CORS.AllowedOrigins)
	v.SetDefault("cors.allowed_methods", d.CORS.AllowedMethods)
	v.SetDefault("cors.allowed_headers", d.CORS.AllowedHeaders)
	v.SetDefault("cors.exposed_headers", d.CORS.ExposedHeaders)
	v.SetDefault("cors.allow_credentials", d.CORS.AllowCredentials)
	v.SetDefault("cors.max_age", d.CORS.MaxAge)

	// Monitoring defaults
	v.SetDefault("monitoring.enabled", d.Monitoring.Enabled)
	v.SetDefault("monitoring.metrics_path", d.Monitoring.MetricsPath)
	v.SetDefault("monitoring.prometheus_enabled", d.Monitoring.PrometheusEnabled)
	v.SetDefault("monitoring.tracing_enabled", d.Monitoring.TracingEnabled)
	v.SetDefault("monitoring.otlp_endpoint", d.Monitoring.OTLPEndpoint)
	v.SetDefault("monitoring.service_name", d.Monitoring.ServiceName)
	v.SetDefault("monitoring.swagger_enabled", d.Monitoring.SwaggerEnabled)
}

// overrideWithEnvVars explicitly handles un-prefixed environment overrides
func overrideWithEnvVars(v *viper.Viper) {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			v.Set("port", p)
		}
	}

	if env := os.Getenv("ENVIRONMENT"); env != "" {
		v.Set("environment", env)
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		v.Set("log_level", logLevel)
	}

	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		v.Set("project.root", root)
	}

	if dirs := os.Getenv("PROJECT_EXCLUDED_DIRS"); dirs != "" {
		v.Set("project.excluded_dirs", splitList(dirs))
	}

	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); endpoint != "" {
		v.Set("monitoring.otlp_endpoint", strings.TrimPrefix(strings.TrimPrefix(endpoint, "http://"), "https://"))
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
