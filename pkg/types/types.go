// Package types holds the small set of interfaces and enums shared across
// the bootstrap pipeline.
package types

import (
	"context"
	"io/fs"
)

// FS is the filesystem interface required for bootstrap operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Chmod(name string, mode fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
}

// Command describes one external process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
	// Env entries are appended to the parent environment, "KEY=value" form.
	Env []string
}

// Runner executes external commands. The OS implementation lives in
// pkg/command; tests use the recording fake in pkg/testutil.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
	LookPath(name string) (string, error)
}
