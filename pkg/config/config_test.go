// pkg/config/config_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Environment variables, temp files
// PURPOSE: Test configuration layering and proxy precedence

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa-tools/osa-bootstrap/pkg/config"
)

func clearBootstrapEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PROXY", "HTTPS_PROXY", "ANSIBLE_ROLE_FILE",
		"ANSIBLE_WORKING_DIR", "ANSIBLE_PACKAGE", "SSH_DIR", "DEBIAN_FRONTEND",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearBootstrapEnv(t)

	cfg, err := config.LoadFrom("")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.HTTPProxy)
	assert.Equal(t, "", cfg.HTTPSProxy)
	assert.Equal(t, "ansible-role-requirements.yml", cfg.RoleFile)
	assert.Equal(t, "/opt/ansible_workspace", cfg.WorkingDir)
	assert.Equal(t, "ansible==2.1.1.0", cfg.AnsiblePackage)
	assert.Equal(t, "/root/.ssh", cfg.SSHDir)
	assert.Equal(t, "noninteractive", cfg.DebianFrontend)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearBootstrapEnv(t)
	t.Setenv("ANSIBLE_ROLE_FILE", "/tmp/roles.yml")
	t.Setenv("ANSIBLE_WORKING_DIR", "/srv/work")
	t.Setenv("ANSIBLE_PACKAGE", "ansible==2.3.0.0")

	cfg, err := config.LoadFrom("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/roles.yml", cfg.RoleFile)
	assert.Equal(t, "/srv/work", cfg.WorkingDir)
	assert.Equal(t, "ansible==2.3.0.0", cfg.AnsiblePackage)
	// Untouched settings keep their defaults
	assert.Equal(t, "/root/.ssh", cfg.SSHDir)
}

func TestLoadEmptyEnvVarKeepsDefault(t *testing.T) {
	clearBootstrapEnv(t)
	t.Setenv("ANSIBLE_WORKING_DIR", "")

	cfg, err := config.LoadFrom("")
	require.NoError(t, err)

	assert.Equal(t, "/opt/ansible_workspace", cfg.WorkingDir)
}

func TestLoadConfigFileLayering(t *testing.T) {
	clearBootstrapEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "bootstrap.toml")
	content := "working_dir = \"/data/ansible\"\nssh_dir = \"/home/deploy/.ssh\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/ansible", cfg.WorkingDir)
	assert.Equal(t, "/home/deploy/.ssh", cfg.SSHDir)
	assert.Equal(t, "ansible-role-requirements.yml", cfg.RoleFile)
}

func TestEnvWinsOverConfigFile(t *testing.T) {
	clearBootstrapEnv(t)
	t.Setenv("ANSIBLE_WORKING_DIR", "/env/wins")

	dir := t.TempDir()
	path := filepath.Join(dir, "bootstrap.toml")
	require.NoError(t, os.WriteFile(path, []byte("working_dir = \"/file/loses\"\n"), 0644))

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "/env/wins", cfg.WorkingDir)
}

func TestProxyArgPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		httpProxy  string
		httpsProxy string
		expected   string
	}{
		{
			name:       "both_set_https_wins",
			httpProxy:  "http://proxy:3128",
			httpsProxy: "https://proxy:3129",
			expected:   "https://proxy:3129",
		},
		{
			name:      "http_only",
			httpProxy: "http://proxy:3128",
			expected:  "http://proxy:3128",
		},
		{
			name:       "https_only",
			httpsProxy: "https://proxy:3129",
			expected:   "https://proxy:3129",
		},
		{
			name:     "neither",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				HTTPProxy:  tt.httpProxy,
				HTTPSProxy: tt.httpsProxy,
			}
			assert.Equal(t, tt.expected, cfg.ProxyArg())
		})
	}
}
