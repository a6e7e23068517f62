// Package sshkey ensures the bootstrap host has an SSH keypair, which the
// Ansible plays rely on for localhost connections.
package sshkey

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/osa-tools/osa-bootstrap/pkg/errors"
	"github.com/osa-tools/osa-bootstrap/pkg/logging"
	"github.com/osa-tools/osa-bootstrap/pkg/types"
)

// KeyName is the private key filename inside the SSH directory.
const KeyName = "id_rsa"

// Ensure idempotently creates an RSA keypair in sshDir. An existing private
// key is left untouched.
func Ensure(ctx context.Context, f types.FS, runner types.Runner, sshDir string) error {
	logger := logging.GetLogger("sshkey")
	keyPath := filepath.Join(sshDir, KeyName)

	if _, err := f.Stat(keyPath); err == nil {
		logger.Debug().Str("key", keyPath).Msg("SSH key already exists")
		return nil
	}

	if err := f.MkdirAll(sshDir, fs.FileMode(0700)); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create SSH directory %s", sshDir)
	}

	logger.Info().Str("key", keyPath).Msg("Generating SSH keypair")
	err := runner.Run(ctx, types.Command{
		Name: "ssh-keygen",
		Args: []string{"-t", "rsa", "-N", "", "-f", keyPath},
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrSSHKey, "ssh-keygen failed")
	}
	return nil
}
