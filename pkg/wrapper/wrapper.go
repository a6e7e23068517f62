// Package wrapper stamps out the openstack-ansible wrapper script. The
// script is a static embedded asset: at its own invocation time it globs
// /etc/openstack_deploy/user_*.yml into -e @file flags, prints them, and
// forwards everything to ansible-playbook.
package wrapper

import (
	_ "embed"
	"io/fs"
	"path/filepath"

	"github.com/osa-tools/osa-bootstrap/pkg/errors"
	"github.com/osa-tools/osa-bootstrap/pkg/logging"
	"github.com/osa-tools/osa-bootstrap/pkg/types"
)

// Path is the fixed install location of the wrapper.
const Path = "/usr/local/bin/openstack-ansible"

//go:embed openstack-ansible.sh
var script []byte

// Script returns the wrapper payload. It is emitted verbatim on every run;
// nothing in it is parameterized.
func Script() []byte {
	return script
}

// Write installs the wrapper at path, overwriting any previous copy, and
// marks it executable. Writing and chmodding are separate steps so a chmod
// failure is reported distinctly.
func Write(f types.FS, path string) error {
	logger := logging.GetLogger("wrapper")

	if err := f.MkdirAll(filepath.Dir(path), fs.FileMode(0755)); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(path))
	}

	if err := f.WriteFile(path, script, fs.FileMode(0644)); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write wrapper to %s", path)
	}

	if err := f.Chmod(path, fs.FileMode(0755)); err != nil {
		return errors.Wrapf(err, errors.ErrFileChmod, "failed to mark %s executable", path)
	}

	logger.Info().Str("path", path).Msg("Wrapper script installed")
	return nil
}
