package config

type Config struct {
	Environment string `mapstructure:"environment" yaml:"environment" validate:"oneof=development staging production test"`
	Port        int    `mapstructure:"port" yaml:"port" validate:"min=1,max=65535"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error fatal"`

	Server     ServerConfig     `mapstructure:"server" yaml:"server"`
	Project    ProjectConfig    `mapstructure:"project" yaml:"project"`
	API        APIConfig        `mapstructure:"api" yaml:"api"`
	CORS       CORSConfig       `mapstructure:"cors" yaml:"cors"`
	Monitoring MonitoringConfig `mapstructure:"monitoring" yaml:"monitoring"`
}

// ServerConfig holds HTTP server timeouts (seconds)
type ServerConfig struct {
	ReadTimeout     int `mapstructure:"read_timeout" yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout    int `mapstructure:"write_timeout" yaml:"write_timeout" validate:"gte=0"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" validate:"gte=0"`
}

// ProjectConfig describes the open project the locator resolves against.
// An empty Root means no project is open.
type ProjectConfig struct {
	Root            string   `mapstructure:"root" yaml:"root"`
	ExcludedDirs    []string `mapstructure:"excluded_dirs" yaml:"excluded_dirs"`
	ExcludePatterns []string `mapstructure:"exclude_patterns" yaml:"exclude_patterns"`
	UseGitignore    bool     `mapstructure:"use_gitignore" yaml:"use_gitignore"`
	Descriptor      string   `mapstructure:"descriptor" yaml:"descriptor"`
	Watch           bool     `mapstructure:"watch" yaml:"watch"`
}

// APIConfig controls where the locator endpoint is mounted
type APIConfig struct {
	BasePath string `mapstructure:"base_path" yaml:"base_path" validate:"required,startswith=/,ne=/,excludesall=*:"`
}

// CORSConfig handles Cross-Origin Resource Sharing
type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods" yaml:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers" yaml:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers" yaml:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials" yaml:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age" yaml:"max_age" validate:"gte=0"`
}

// MonitoringConfig handles self-monitoring configuration
type MonitoringConfig struct {
	Enabled           bool   `mapstructure:"enabled" yaml:"enabled"`
	MetricsPath       string `mapstructure:"metrics_path" yaml:"metrics_path" validate:"omitempty,startswith=/"`
	PrometheusEnabled bool   `mapstructure:"prometheus_enabled" yaml:"prometheus_enabled"`
	TracingEnabled    bool   `mapstructure:"tracing_enabled" yaml:"tracing_enabled"`
	OTLPEndpoint      string `mapstructure:"otlp_endpoint" yaml:"otlp_endpoint" validate:"omitempty,hostname_port"`
	ServiceName       string `mapstructure:"service_name" yaml:"service_name"`
	SwaggerEnabled    bool   `mapstructure:"swagger_enabled" yaml:"swagger_enabled"`
}
