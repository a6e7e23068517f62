// Package command provides the os/exec backed types.Runner used for every
// external invocation: package managers, pip, ssh-keygen and ansible-galaxy.
package command

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/osa-tools/osa-bootstrap/pkg/logging"
	"github.com/osa-tools/osa-bootstrap/pkg/types"
)

// osRunner executes commands on the host, streaming output through.
type osRunner struct {
	logger zerolog.Logger
}

// NewOS creates a Runner backed by os/exec.
func NewOS() types.Runner {
	return &osRunner{logger: logging.GetLogger("command")}
}

func (r *osRunner) Run(ctx context.Context, cmd types.Command) error {
	logging.LogCommand(cmd.Name, cmd.Args)

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}

	if err := c.Run(); err != nil {
		r.logger.Debug().
			Str("command", cmd.Name).
			Strs("args", cmd.Args).
			Err(err).
			Msg("Command failed")
		return err
	}
	return nil
}

func (r *osRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// exitCoder is satisfied by exec.ExitError and by test fakes.
type exitCoder interface {
	ExitCode() int
}

// ExitCode extracts the process exit code from a Run error, or -1 when the
// command never ran.
func ExitCode(err error) int {
	var ec exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return -1
}
