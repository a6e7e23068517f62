// pkg/pkgmgr/pkgmgr_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Fake runner
// PURPOSE: Test installer selection and package-manager invocations

package pkgmgr_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osa-tools/osa-bootstrap/pkg/errors"
	"github.com/osa-tools/osa-bootstrap/pkg/pkgmgr"
	"github.com/osa-tools/osa-bootstrap/pkg/testutil"
	"github.com/osa-tools/osa-bootstrap/pkg/types"
)

func TestForFamily(t *testing.T) {
	runner := testutil.NewFakeRunner()

	tests := []struct {
		name     string
		family   types.Family
		expected string
	}{
		{name: "rhel_gets_yum", family: types.FamilyRHEL, expected: "yum"},
		{name: "debian_gets_apt", family: types.FamilyDebian, expected: "apt-get"},
		{name: "unknown_gets_nothing", family: types.FamilyUnknown, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			installer := pkgmgr.ForFamily(tt.family, runner, "noninteractive")
			if tt.expected == "" {
				assert.Nil(t, installer)
				return
			}
			require.NotNil(t, installer)
			assert.Equal(t, tt.expected, installer.Name())
		})
	}
}

func TestAptInstall(t *testing.T) {
	runner := testutil.NewFakeRunner()
	installer := pkgmgr.NewApt(runner, "noninteractive")

	require.NoError(t, installer.Refresh(context.Background()))
	require.NoError(t, installer.InstallPrerequisites(context.Background()))

	require.Len(t, runner.Invocations, 2)

	update := runner.Invocations[0]
	assert.Equal(t, "apt-get", update.Name)
	assert.Equal(t, []string{"update"}, update.Args)
	assert.Contains(t, update.Env, "DEBIAN_FRONTEND=noninteractive")

	install := runner.Invocations[1]
	assert.Equal(t, "apt-get", install.Name)
	assert.Equal(t, "install", install.Args[0])
	assert.Equal(t, "-y", install.Args[1])
	assert.Contains(t, install.Env, "DEBIAN_FRONTEND=noninteractive")
	for _, pkg := range pkgmgr.DebianPackages {
		assert.Contains(t, install.Args, pkg)
	}
}

func TestYumInstall(t *testing.T) {
	runner := testutil.NewFakeRunner()
	installer := pkgmgr.NewYum(runner)

	require.NoError(t, installer.Refresh(context.Background()))
	require.NoError(t, installer.InstallPrerequisites(context.Background()))

	require.Len(t, runner.Invocations, 2)
	assert.Equal(t, "yum check-update", runner.CommandLines()[0])
	assert.True(t, strings.HasPrefix(runner.CommandLines()[1], "yum install -y "))
	for _, pkg := range pkgmgr.RHELPackages {
		assert.Contains(t, runner.Invocations[1].Args, pkg)
	}
}

func TestYumCheckUpdateExit100IsNotAnError(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.FailOn = testutil.FailCommand("yum", 100)
	installer := pkgmgr.NewYum(runner)

	assert.NoError(t, installer.Refresh(context.Background()))
}

func TestRefreshFailureIsFatal(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.FailOn = testutil.FailCommand("apt-get", 1)
	installer := pkgmgr.NewApt(runner, "noninteractive")

	err := installer.Refresh(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPackageIndex))
}

func TestInstallFailureIsFatal(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.FailOn = testutil.FailCommand("yum", 1)
	installer := pkgmgr.NewYum(runner)

	err := installer.InstallPrerequisites(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPackageInstall))
}

func TestPackageListsAreParallel(t *testing.T) {
	// The two ecosystems carry the same prerequisite surface, names aside
	assert.Equal(t, len(pkgmgr.DebianPackages), len(pkgmgr.RHELPackages))
	assert.Contains(t, pkgmgr.DebianPackages, "git")
	assert.Contains(t, pkgmgr.RHELPackages, "git")
}
