// Package testutil provides the shared fakes for bootstrap tests: a
// recording command runner and an in-memory filesystem.
package testutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/osa-tools/osa-bootstrap/pkg/filesystem"
	"github.com/osa-tools/osa-bootstrap/pkg/types"
)

// NewMemoryFS returns a types.FS backed by an afero MemMapFs.
func NewMemoryFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// ExitError is a scriptable command failure carrying an exit code, the way
// exec.ExitError does.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) ExitCode() int {
	return e.Code
}

// FakeRunner records every invocation and fails the ones FailOn matches.
type FakeRunner struct {
	// Invocations holds each command Run received, in order.
	Invocations []types.Command

	// FailOn, when set, is consulted for each invocation; a non-nil return
	// fails that invocation.
	FailOn func(cmd types.Command) error

	// Binaries lists names LookPath resolves. A nil map resolves everything.
	Binaries map[string]string
}

// NewFakeRunner creates a FakeRunner that succeeds on everything.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{}
}

func (r *FakeRunner) Run(_ context.Context, cmd types.Command) error {
	r.Invocations = append(r.Invocations, cmd)
	if r.FailOn != nil {
		return r.FailOn(cmd)
	}
	return nil
}

func (r *FakeRunner) LookPath(name string) (string, error) {
	if r.Binaries == nil {
		return "/usr/bin/" + name, nil
	}
	if path, ok := r.Binaries[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

// CommandLines renders the recorded invocations as "name arg arg" strings,
// convenient for assertions.
func (r *FakeRunner) CommandLines() []string {
	lines := make([]string, 0, len(r.Invocations))
	for _, cmd := range r.Invocations {
		lines = append(lines, strings.TrimSpace(cmd.Name+" "+strings.Join(cmd.Args, " ")))
	}
	return lines
}

// FailCommand returns a FailOn func failing every invocation of name with
// the given exit code.
func FailCommand(name string, code int) func(types.Command) error {
	return func(cmd types.Command) error {
		if cmd.Name == name {
			return &ExitError{Code: code}
		}
		return nil
	}
}

// FailOnce returns a FailOn func failing only the first invocation matching
// name and the given argument substring.
func FailOnce(name, argContains string) func(types.Command) error {
	failed := false
	return func(cmd types.Command) error {
		if failed || cmd.Name != name {
			return nil
		}
		joined := strings.Join(cmd.Args, " ")
		if argContains != "" && !strings.Contains(joined, argContains) {
			return nil
		}
		failed = true
		return &ExitError{Code: 1}
	}
}
