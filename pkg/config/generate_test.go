// pkg/config/generate_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test sample config generation

package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa-tools/osa-bootstrap/pkg/config"
)

func TestGenerateConfigContent(t *testing.T) {
	content, err := config.GenerateConfigContent()
	require.NoError(t, err)

	for _, key := range []string{
		"http_proxy", "https_proxy", "role_file", "working_dir",
		"ansible_package", "ssh_dir", "debian_frontend",
	} {
		assert.Contains(t, content, key)
	}

	// Every value line must be commented so the file is inert as generated
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "line not commented: %q", line)
	}

	assert.Contains(t, content, config.DefaultWorkingDir)
	assert.Contains(t, content, config.DefaultAnsiblePackage)
}
