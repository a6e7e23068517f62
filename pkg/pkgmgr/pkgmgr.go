// Package pkgmgr installs the OS-level bootstrap prerequisites. Each
// supported package-manager family gets its own Installer; selection is an
// explicit switch on the detected distribution family rather than probing
// for binaries on the search path.
package pkgmgr

import (
	"context"

	"github.com/osa-tools/osa-bootstrap/pkg/types"
)

// Installer refreshes the package index and installs the fixed prerequisite
// list for one package-manager family.
type Installer interface {
	// Name identifies the underlying package manager, for logging.
	Name() string
	// Refresh updates the package index. Fatal on failure.
	Refresh(ctx context.Context) error
	// InstallPrerequisites installs the fixed bootstrap package list.
	InstallPrerequisites(ctx context.Context) error
}

// ForFamily returns the Installer for the distribution family, or nil for
// an unrecognized family. A nil return is deliberate: unknown distributions
// are a warning-and-continue, not a failure.
func ForFamily(family types.Family, runner types.Runner, debianFrontend string) Installer {
	switch family {
	case types.FamilyRHEL:
		return NewYum(runner)
	case types.FamilyDebian:
		return NewApt(runner, debianFrontend)
	default:
		return nil
	}
}
