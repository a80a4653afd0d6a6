// Package config holds the ambient constants and the server's YAML
// configuration: loading, default-filling, and validating the knobs the
// task service runs with.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Version is the current vta version, set at build time by the release
// script via -ldflags, or left at this default for local builds.
var Version = "0.1.0"

// Default values used when a ServerConfig field is left zero in YAML: a
// bounded worker pool sized at startup, and a per-task wall-clock budget.
const (
	DefaultWorkerCapacity = 256
	DefaultTaskTimeout    = time.Second
	DefaultListenAddr     = ":8080"
	DefaultTasksDir       = "tasks"
	DefaultCompilerPath   = "g++"
	DefaultTemplateDepth  = 50000
	DefaultTokenStorePath = "tasks/tokens.db"
	DefaultCompileTimeout = 10 * time.Second
	DefaultProcessTimeout = DefaultTaskTimeout
)

// ServerConfig is vtaserver's YAML-loadable configuration.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`

	// WorkerCapacity bounds the number of tasks translated/compiled/run
	// concurrently.
	WorkerCapacity int64 `yaml:"worker_capacity"`

	// TaskTimeout is the per-task wall-clock watchdog budget.
	TaskTimeout time.Duration `yaml:"task_timeout"`

	// CompileTimeout bounds how long the external C++ compiler invocation
	// may run before it is killed.
	CompileTimeout time.Duration `yaml:"compile_timeout"`

	// TasksDir is the writable working directory for <task_id>.cpp and the
	// compiled <task_id> binary.
	TasksDir string `yaml:"tasks_dir"`

	// CompilerPath is the external C++ compiler executable.
	CompilerPath string `yaml:"compiler_path"`

	// TemplateDepth is passed as -ftemplate-depth=<n>.
	TemplateDepth int `yaml:"template_depth"`

	// TokenStorePath is the sqlite database file backing the per-task
	// ownership-token store.
	TokenStorePath string `yaml:"token_store_path"`
}

// LoadServerConfig reads and parses a YAML server configuration file,
// filling unset fields with their defaults.
func LoadServerConfig(path string) (*ServerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseServerConfig(data)
}

// ParseServerConfig parses YAML configuration bytes and applies defaults.
func ParseServerConfig(data []byte) (*ServerConfig, error) {
	var cfg ServerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing server config: %w", err)
	}
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *ServerConfig) setDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.WorkerCapacity == 0 {
		c.WorkerCapacity = DefaultWorkerCapacity
	}
	if c.TaskTimeout == 0 {
		c.TaskTimeout = DefaultTaskTimeout
	}
	if c.CompileTimeout == 0 {
		c.CompileTimeout = DefaultCompileTimeout
	}
	if c.TasksDir == "" {
		c.TasksDir = DefaultTasksDir
	}
	if c.CompilerPath == "" {
		c.CompilerPath = DefaultCompilerPath
	}
	if c.TemplateDepth == 0 {
		c.TemplateDepth = DefaultTemplateDepth
	}
	if c.TokenStorePath == "" {
		c.TokenStorePath = DefaultTokenStorePath
	}
}

func (c *ServerConfig) validate() error {
	if c.WorkerCapacity <= 0 {
		return fmt.Errorf("worker_capacity must be positive, got %d", c.WorkerCapacity)
	}
	if c.TaskTimeout <= 0 {
		return fmt.Errorf("task_timeout must be positive, got %s", c.TaskTimeout)
	}
	if c.TasksDir == "" {
		return fmt.Errorf("tasks_dir must not be empty")
	}
	return nil
}

// DefaultServerConfig returns a ServerConfig with every field at its
// default, for callers (tests, `vtaserver` started without a config path) that don't
// load a YAML file.
func DefaultServerConfig() *ServerConfig {
	cfg := &ServerConfig{}
	cfg.setDefaults()
	return cfg
}
