// Package config resolves bootstrap settings once at startup. Layering order:
// built-in defaults, then an optional bootstrap.toml in the current directory,
// then the well-known environment variables. The result is an explicit Config
// struct passed to each bootstrap step; nothing reads the environment later.
package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileName is the optional TOML config file looked up in the current
// directory. Environment variables always win over it.
const ConfigFileName = "bootstrap.toml"

// Defaults, matching the historical bootstrap script.
const (
	DefaultRoleFile       = "ansible-role-requirements.yml"
	DefaultWorkingDir     = "/opt/ansible_workspace"
	DefaultAnsiblePackage = "ansible==2.1.1.0"
	DefaultSSHDir         = "/root/.ssh"
	DefaultDebianFrontend = "noninteractive"
)

// Config holds every setting the bootstrap consumes. No validation is
// performed here; malformed paths surface from the filesystem or the
// package managers.
type Config struct {
	HTTPProxy      string `koanf:"http_proxy"`
	HTTPSProxy     string `koanf:"https_proxy"`
	RoleFile       string `koanf:"role_file"`
	WorkingDir     string `koanf:"working_dir"`
	AnsiblePackage string `koanf:"ansible_package"`
	SSHDir         string `koanf:"ssh_dir"`
	DebianFrontend string `koanf:"debian_frontend"`
}

// envKeys maps the recognized environment variables to config keys. Only
// these are consulted; everything else in the environment is ignored.
var envKeys = map[string]string{
	"HTTP_PROXY":          "http_proxy",
	"HTTPS_PROXY":         "https_proxy",
	"ANSIBLE_ROLE_FILE":   "role_file",
	"ANSIBLE_WORKING_DIR": "working_dir",
	"ANSIBLE_PACKAGE":     "ansible_package",
	"SSH_DIR":             "ssh_dir",
	"DEBIAN_FRONTEND":     "debian_frontend",
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"http_proxy":      "",
		"https_proxy":     "",
		"role_file":       DefaultRoleFile,
		"working_dir":     DefaultWorkingDir,
		"ansible_package": DefaultAnsiblePackage,
		"ssh_dir":         DefaultSSHDir,
		"debian_frontend": DefaultDebianFrontend,
	}
}

// Load builds the Config from defaults, the optional config file and the
// environment, in that order.
func Load() (*Config, error) {
	return LoadFrom(ConfigFileName)
}

// LoadFrom is Load with an explicit config file path, for tests.
func LoadFrom(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
			}
		}
	}

	err := k.Load(env.Provider("", ".", func(s string) string {
		// Empty-valued variables are treated as unset so defaults apply.
		if key, ok := envKeys[s]; ok && os.Getenv(s) != "" {
			return key
		}
		return ""
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return &cfg, nil
}

// ProxyArg returns the proxy URL pip invocations should use. HTTPS takes
// precedence; an empty return means no proxy argument at all.
func (c *Config) ProxyArg() string {
	if c.HTTPSProxy != "" {
		return c.HTTPSProxy
	}
	return c.HTTPProxy
}
