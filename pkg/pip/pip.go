// Package pip bootstraps the Python package manager and performs the two
// pip installs of the bootstrap: the optional requirements.txt and the
// pinned Ansible release. Both installs use the single retry policy from
// pkg/retry: one plain attempt, then one with --isolated to bypass any
// custom index configuration.
package pip

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/osa-tools/osa-bootstrap/pkg/errors"
	"github.com/osa-tools/osa-bootstrap/pkg/logging"
	"github.com/osa-tools/osa-bootstrap/pkg/retry"
	"github.com/osa-tools/osa-bootstrap/pkg/types"
)

// GetPipURL serves get-pip.py for the Python 2 line the plays still target.
const GetPipURL = "https://bootstrap.pypa.io/pip/2.7/get-pip.py"

// RequirementsFile is the optional manifest looked up in the current
// directory; its absence silently skips the requirements install.
const RequirementsFile = "requirements.txt"

// Pip wraps pip invocations with proxy handling and binary resolution.
type Pip struct {
	runner   types.Runner
	fs       types.FS
	proxyArg string
	logger   zerolog.Logger
}

// New creates a Pip helper. proxyArg is the single proxy URL to pass on
// each install, already resolved with HTTPS precedence; empty means none.
func New(runner types.Runner, fs types.FS, proxyArg string) *Pip {
	return &Pip{
		runner:   runner,
		fs:       fs,
		proxyArg: proxyArg,
		logger:   logging.GetLogger("pip"),
	}
}

// Bootstrap installs pip itself by fetching get-pip.py and running it with
// the system python.
func (p *Pip) Bootstrap(ctx context.Context) error {
	tmp, err := os.MkdirTemp("", "osa-bootstrap-")
	if err != nil {
		return errors.Wrap(err, errors.ErrPipBootstrap, "failed to create temp directory")
	}
	defer func() { _ = os.RemoveAll(tmp) }()

	script := filepath.Join(tmp, "get-pip.py")

	curlArgs := []string{"--silent", "--show-error", "--retry", "5", "-o", script}
	if p.proxyArg != "" {
		curlArgs = append(curlArgs, "--proxy", p.proxyArg)
	}
	curlArgs = append(curlArgs, GetPipURL)

	p.logger.Info().Str("url", GetPipURL).Msg("Fetching pip installer")
	if err := p.runner.Run(ctx, types.Command{Name: "curl", Args: curlArgs}); err != nil {
		return errors.Wrap(err, errors.ErrPipBootstrap, "failed to download get-pip.py")
	}

	p.logger.Info().Msg("Installing pip")
	if err := p.runner.Run(ctx, types.Command{Name: "python", Args: []string{script}}); err != nil {
		return errors.Wrap(err, errors.ErrPipBootstrap, "get-pip.py failed")
	}
	return nil
}

// Resolve picks the pip executable: the Python-2 specific name when present
// on the search path, the generic name otherwise. The generic fallback is
// returned even when neither resolves; the install itself surfaces the
// failure.
func (p *Pip) Resolve() string {
	if _, err := p.runner.LookPath("pip2"); err == nil {
		return "pip2"
	}
	return "pip"
}

// InstallRequirements installs requirements.txt from the current directory
// when it exists. Absence is not an error.
func (p *Pip) InstallRequirements(ctx context.Context) error {
	if _, err := p.fs.Stat(RequirementsFile); err != nil {
		p.logger.Debug().Str("file", RequirementsFile).Msg("No requirements file, skipping")
		return nil
	}

	return p.install(ctx, "requirements install", "--requirement", RequirementsFile)
}

// InstallPackage installs one exact package spec, e.g. "ansible==2.1.1.0".
func (p *Pip) InstallPackage(ctx context.Context, spec string) error {
	return p.install(ctx, "install "+spec, spec)
}

func (p *Pip) install(ctx context.Context, what string, specArgs ...string) error {
	bin := p.Resolve()

	run := func(isolated bool) func() error {
		return func() error {
			args := []string{"install", "--upgrade"}
			if isolated {
				args = append(args, "--isolated")
			}
			if p.proxyArg != "" {
				args = append(args, "--proxy", p.proxyArg)
			}
			args = append(args, specArgs...)
			return p.runner.Run(ctx, types.Command{Name: bin, Args: args})
		}
	}

	return retry.Do(p.logger, errors.ErrPipInstall, what, run(false), run(true))
}
