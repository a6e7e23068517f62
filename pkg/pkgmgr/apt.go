package pkgmgr

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/osa-tools/osa-bootstrap/pkg/errors"
	"github.com/osa-tools/osa-bootstrap/pkg/logging"
	"github.com/osa-tools/osa-bootstrap/pkg/types"
)

// DebianPackages is the fixed prerequisite list for the Debian family:
// git, the Python 2 runtime and headers, the build toolchain, libffi and
// OpenSSL development headers, and the Python TLS bindings.
var DebianPackages = []string{
	"git",
	"python2.7",
	"python-dev",
	"curl",
	"gcc",
	"g++",
	"autoconf",
	"libffi-dev",
	"libssl-dev",
	"python-pyasn1",
	"python-openssl",
}

type aptInstaller struct {
	runner   types.Runner
	frontend string
	logger   zerolog.Logger
}

// NewApt creates the apt-get Installer. frontend becomes DEBIAN_FRONTEND in
// the child environment so installs never prompt.
func NewApt(runner types.Runner, frontend string) Installer {
	return &aptInstaller{
		runner:   runner,
		frontend: frontend,
		logger:   logging.GetLogger("pkgmgr.apt"),
	}
}

func (a *aptInstaller) Name() string { return "apt-get" }

func (a *aptInstaller) Refresh(ctx context.Context) error {
	a.logger.Info().Msg("Refreshing apt package index")
	err := a.runner.Run(ctx, types.Command{
		Name: "apt-get",
		Args: []string{"update"},
		Env:  a.env(),
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrPackageIndex, "apt-get update failed")
	}
	return nil
}

func (a *aptInstaller) InstallPrerequisites(ctx context.Context) error {
	a.logger.Info().Strs("packages", DebianPackages).Msg("Installing prerequisite packages")
	args := append([]string{"install", "-y"}, DebianPackages...)
	err := a.runner.Run(ctx, types.Command{
		Name: "apt-get",
		Args: args,
		Env:  a.env(),
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrPackageInstall, "apt-get install failed")
	}
	return nil
}

func (a *aptInstaller) env() []string {
	if a.frontend == "" {
		return nil
	}
	return []string{"DEBIAN_FRONTEND=" + a.frontend}
}
