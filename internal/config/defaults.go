package config

// GetDefaultConfig returns a configuration with all default values
func GetDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Port:        63342,
		LogLevel:    "info",

		Server: ServerConfig{
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},

		Project: ProjectConfig{
			ExcludedDirs:    []string{},
			ExcludePatterns: []string{},
			UseGitignore:    false,
			Watch:           true,
		},

		API: APIConfig{
			BasePath: DefaultBasePath,
		},

		CORS: CORSConfig{
			AllowedOrigins:   []string{},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           3600,
		},

		Monitoring: MonitoringConfig{
			Enabled:           true,
			MetricsPath:       "/metrics",
			PrometheusEnabled: true,
			TracingEnabled:    false,
			ServiceName:       ServiceName,
			SwaggerEnabled:    true,
		},
	}
}
