package config

import (
	"fmt"
	"strings"

	tomlv2 "github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent renders a bootstrap.toml sample with every value
// commented out, so dropping the file in place changes nothing until a line
// is uncommented.
func GenerateConfigContent() (string, error) {
	cfg := Config{
		RoleFile:       DefaultRoleFile,
		WorkingDir:     DefaultWorkingDir,
		AnsiblePackage: DefaultAnsiblePackage,
		SSHDir:         DefaultSSHDir,
		DebianFrontend: DefaultDebianFrontend,
	}

	raw, err := tomlv2.Marshal(map[string]string{
		"http_proxy":      cfg.HTTPProxy,
		"https_proxy":     cfg.HTTPSProxy,
		"role_file":       cfg.RoleFile,
		"working_dir":     cfg.WorkingDir,
		"ansible_package": cfg.AnsiblePackage,
		"ssh_dir":         cfg.SSHDir,
		"debian_frontend": cfg.DebianFrontend,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal defaults: %w", err)
	}

	header := "# osa-bootstrap configuration. Environment variables override these values.\n"
	return header + commentOutConfigValues(string(raw)), nil
}

// commentOutConfigValues comments out all non-comment, non-blank lines that
// contain configuration values
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
