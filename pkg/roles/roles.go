// Package roles fetches Ansible role dependencies from the role manifest
// via ansible-galaxy.
package roles

import (
	"context"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/osa-tools/osa-bootstrap/pkg/errors"
	"github.com/osa-tools/osa-bootstrap/pkg/logging"
	"github.com/osa-tools/osa-bootstrap/pkg/types"
)

// Role is one entry of the role manifest. Only the fields we log are
// modelled; the manifest format belongs to ansible-galaxy.
type Role struct {
	Name    string `yaml:"name"`
	Src     string `yaml:"src"`
	Version string `yaml:"version"`
}

// Resolver installs role dependencies listed in a manifest file.
type Resolver struct {
	runner types.Runner
	fs     types.FS
	logger zerolog.Logger
}

// NewResolver creates a role dependency Resolver.
func NewResolver(runner types.Runner, fs types.FS) *Resolver {
	return &Resolver{
		runner: runner,
		fs:     fs,
		logger: logging.GetLogger("roles"),
	}
}

// Install fetches all roles referenced by the manifest at roleFile. A
// missing manifest silently skips the step. Individual role failures are
// ignored and already-installed roles are overwritten; a non-zero exit from
// ansible-galaxy itself is still fatal.
func (r *Resolver) Install(ctx context.Context, roleFile string) error {
	data, err := r.fs.ReadFile(roleFile)
	if err != nil {
		r.logger.Debug().Str("file", roleFile).Msg("No role manifest, skipping role install")
		return nil
	}

	if roles, err := Parse(data); err == nil {
		r.logger.Info().Int("roles", len(roles)).Str("file", roleFile).Msg("Installing role dependencies")
	} else {
		// The manifest format is galaxy's, not ours: let ansible-galaxy be
		// the authority on whether it is valid.
		r.logger.Warn().Err(err).Str("file", roleFile).Msg("Could not parse role manifest")
	}

	err = r.runner.Run(ctx, types.Command{
		Name: "ansible-galaxy",
		Args: []string{"install", "--role-file=" + roleFile, "--ignore-errors", "--force"},
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrRoleInstall, "ansible-galaxy install failed")
	}
	return nil
}

// Parse decodes a role manifest for visibility logging.
func Parse(data []byte) ([]Role, error) {
	var roles []Role
	if err := yaml.Unmarshal(data, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}
