// Package filesystem provides types.FS implementations: a thin wrapper over
// the os package for production use, and an afero adapter so tests can run
// against an in-memory filesystem.
package filesystem
