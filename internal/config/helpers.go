package config

import (
	"time"

	"github.com/justradojko/intellij-community/internal/project"
)

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsTest returns true if running in test environment
func (c *Config) IsTest() bool {
	return c.Environment == "test"
}

// ReadTimeout returns the HTTP read timeout
func (c *Config) ReadTimeout() time.Duration {
	return secondsOr(c.Server.ReadTimeout, DefaultReadTimeout)
}

// WriteTimeout returns the HTTP write timeout
func (c *Config) WriteTimeout() time.Duration {
	return secondsOr(c.Server.WriteTimeout, DefaultWriteTimeout)
}

// ShutdownTimeout returns the graceful shutdown budget
func (c *Config) ShutdownTimeout() time.Duration {
	return secondsOr(c.Server.ShutdownTimeout, DefaultShutdownTimeout)
}

// ProjectOptions converts the project section into project.Options
func (c *Config) ProjectOptions() project.Options {
	return project.Options{
		Root:            c.Project.Root,
		ExcludedDirs:    append([]string(nil), c.Project.ExcludedDirs...),
		ExcludePatterns: append([]string(nil), c.Project.ExcludePatterns...),
		UseGitignore:    c.Project.UseGitignore,
		Descriptor:      c.Project.Descriptor,
	}
}

func secondsOr(v, def int) time.Duration {
	if v <= 0 {
		v = def
	}
	return time.Duration(v) * time.Second
}
