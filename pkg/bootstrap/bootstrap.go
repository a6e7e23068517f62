// Package bootstrap runs the ordered host-preparation pipeline: SSH key,
// distribution detection, OS packages, workspace reset, pip, the pinned
// Ansible release, role dependencies, and the wrapper script. Steps run
// strictly in order and the first failure aborts the run.
package bootstrap

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/osa-tools/osa-bootstrap/pkg/config"
	"github.com/osa-tools/osa-bootstrap/pkg/distro"
	"github.com/osa-tools/osa-bootstrap/pkg/errors"
	"github.com/osa-tools/osa-bootstrap/pkg/filesystem"
	"github.com/osa-tools/osa-bootstrap/pkg/logging"
	"github.com/osa-tools/osa-bootstrap/pkg/pip"
	"github.com/osa-tools/osa-bootstrap/pkg/pkgmgr"
	"github.com/osa-tools/osa-bootstrap/pkg/roles"
	"github.com/osa-tools/osa-bootstrap/pkg/sshkey"
	"github.com/osa-tools/osa-bootstrap/pkg/types"
	"github.com/osa-tools/osa-bootstrap/pkg/wrapper"
)

// Reporter receives step lifecycle callbacks, for terminal presentation.
type Reporter interface {
	StepStarted(name string)
	StepCompleted(name string, err error, d time.Duration)
	StepSkipped(name string, reason string)
}

// Options configures a Bootstrap run.
type Options struct {
	Config *config.Config
	Runner types.Runner
	// FS defaults to the real filesystem.
	FS types.FS
	// DryRun reports the steps without executing anything.
	DryRun bool
	// Reporter may be nil.
	Reporter Reporter

	// WrapperPath and OSReleasePath exist for tests; zero values mean the
	// fixed system paths.
	WrapperPath   string
	OSReleasePath string
}

// Bootstrap is the sequential orchestrator.
type Bootstrap struct {
	cfg           *config.Config
	runner        types.Runner
	fs            types.FS
	dryRun        bool
	reporter      Reporter
	wrapperPath   string
	osReleasePath string
	logger        zerolog.Logger

	// set by the detect step, read-only afterwards
	distro types.Distro
}

type step struct {
	name string
	run  func(ctx context.Context) error
}

// New creates a Bootstrap from options.
func New(opts Options) *Bootstrap {
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}
	wrapperPath := opts.WrapperPath
	if wrapperPath == "" {
		wrapperPath = wrapper.Path
	}
	osReleasePath := opts.OSReleasePath
	if osReleasePath == "" {
		osReleasePath = distro.OSReleasePath
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = noopReporter{}
	}

	return &Bootstrap{
		cfg:           opts.Config,
		runner:        opts.Runner,
		fs:            fs,
		dryRun:        opts.DryRun,
		reporter:      reporter,
		wrapperPath:   wrapperPath,
		osReleasePath: osReleasePath,
		logger:        logging.GetLogger("bootstrap"),
	}
}

// Distro returns the distribution detected during Run.
func (b *Bootstrap) Distro() types.Distro {
	return b.distro
}

// Run executes the pipeline. The first failing step aborts the run and its
// error is returned unchanged.
func (b *Bootstrap) Run(ctx context.Context) error {
	steps := []step{
		{"ssh-key", b.stepSSHKey},
		{"detect-distro", b.stepDetectDistro},
		{"os-packages", b.stepOSPackages},
		{"workspace-reset", b.stepWorkspaceReset},
		{"pip-bootstrap", b.stepPipBootstrap},
		{"requirements", b.stepRequirements},
		{"ansible", b.stepAnsible},
		{"roles", b.stepRoles},
		{"wrapper", b.stepWrapper},
	}

	for _, s := range steps {
		if b.dryRun {
			b.reporter.StepSkipped(s.name, "dry run")
			continue
		}

		b.reporter.StepStarted(s.name)
		start := time.Now()
		err := s.run(ctx)
		b.reporter.StepCompleted(s.name, err, time.Since(start))

		if err != nil {
			b.logger.Error().Str("step", s.name).Err(err).Msg("Bootstrap step failed")
			return err
		}

		b.logger.Info().
			Str("step", s.name).
			Dur("duration", time.Since(start)).
			Msg("Bootstrap step completed")
	}

	return nil
}

func (b *Bootstrap) stepSSHKey(ctx context.Context) error {
	return sshkey.Ensure(ctx, b.fs, b.runner, b.cfg.SSHDir)
}

func (b *Bootstrap) stepDetectDistro(_ context.Context) error {
	b.distro = distro.DetectFrom(b.fs, b.osReleasePath)
	b.logger.Info().Str("distro", string(b.distro)).Msg("Distribution detected")
	return nil
}

func (b *Bootstrap) stepOSPackages(ctx context.Context) error {
	installer := pkgmgr.ForFamily(b.distro.Family(), b.runner, b.cfg.DebianFrontend)
	if installer == nil {
		// Unrecognized distributions skip OS packages rather than abort.
		b.logger.Warn().
			Str("distro", string(b.distro)).
			Msg("Unrecognized distribution, skipping OS package install")
		return nil
	}

	if err := installer.Refresh(ctx); err != nil {
		return err
	}
	return installer.InstallPrerequisites(ctx)
}

func (b *Bootstrap) stepWorkspaceReset(_ context.Context) error {
	// Idempotent: removing an absent directory is not an error, and a rerun
	// with a populated workspace ends in the same state as a first run.
	if err := b.fs.RemoveAll(b.cfg.WorkingDir); err != nil {
		return errors.Wrapf(err, errors.ErrDirRemove,
			"failed to remove working directory %s", b.cfg.WorkingDir)
	}
	b.logger.Debug().Str("dir", b.cfg.WorkingDir).Msg("Working directory reset")
	return nil
}

func (b *Bootstrap) stepPipBootstrap(ctx context.Context) error {
	return b.pip().Bootstrap(ctx)
}

func (b *Bootstrap) stepRequirements(ctx context.Context) error {
	return b.pip().InstallRequirements(ctx)
}

func (b *Bootstrap) stepAnsible(ctx context.Context) error {
	return b.pip().InstallPackage(ctx, b.cfg.AnsiblePackage)
}

func (b *Bootstrap) stepRoles(ctx context.Context) error {
	return roles.NewResolver(b.runner, b.fs).Install(ctx, b.cfg.RoleFile)
}

func (b *Bootstrap) stepWrapper(_ context.Context) error {
	return wrapper.Write(b.fs, b.wrapperPath)
}

func (b *Bootstrap) pip() *pip.Pip {
	return pip.New(b.runner, b.fs, b.cfg.ProxyArg())
}

type noopReporter struct{}

func (noopReporter) StepStarted(string)                         {}
func (noopReporter) StepCompleted(string, error, time.Duration) {}
func (noopReporter) StepSkipped(string, string)                 {}
