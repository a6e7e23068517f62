package pkgmgr

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/osa-tools/osa-bootstrap/pkg/command"
	"github.com/osa-tools/osa-bootstrap/pkg/errors"
	"github.com/osa-tools/osa-bootstrap/pkg/logging"
	"github.com/osa-tools/osa-bootstrap/pkg/types"
)

// RHELPackages is the fixed prerequisite list for the RHEL family,
// mirroring DebianPackages with that ecosystem's naming.
var RHELPackages = []string{
	"git",
	"python2",
	"python2-devel",
	"curl",
	"gcc",
	"gcc-c++",
	"autoconf",
	"libffi-devel",
	"openssl-devel",
	"python-pyasn1",
	"pyOpenSSL",
}

// yum check-update exits 100 when updates are available; that is a normal
// outcome, not a failure.
const yumUpdatesAvailable = 100

type yumInstaller struct {
	runner types.Runner
	logger zerolog.Logger
}

// NewYum creates the yum Installer.
func NewYum(runner types.Runner) Installer {
	return &yumInstaller{
		runner: runner,
		logger: logging.GetLogger("pkgmgr.yum"),
	}
}

func (y *yumInstaller) Name() string { return "yum" }

func (y *yumInstaller) Refresh(ctx context.Context) error {
	y.logger.Info().Msg("Refreshing yum package index")
	err := y.runner.Run(ctx, types.Command{
		Name: "yum",
		Args: []string{"check-update"},
	})
	if err != nil && command.ExitCode(err) != yumUpdatesAvailable {
		return errors.Wrap(err, errors.ErrPackageIndex, "yum check-update failed")
	}
	return nil
}

func (y *yumInstaller) InstallPrerequisites(ctx context.Context) error {
	y.logger.Info().Strs("packages", RHELPackages).Msg("Installing prerequisite packages")
	args := append([]string{"install", "-y"}, RHELPackages...)
	err := y.runner.Run(ctx, types.Command{
		Name: "yum",
		Args: args,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrPackageInstall, "yum install failed")
	}
	return nil
}
