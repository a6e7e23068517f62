// pkg/retry/retry_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test the attempt-then-fallback policy

package retry_test

import (
	stderrors "errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/osa-tools/osa-bootstrap/pkg/errors"
	"github.com/osa-tools/osa-bootstrap/pkg/retry"
)

func TestPrimarySucceedsSkipsFallback(t *testing.T) {
	fallbackRan := false

	err := retry.Do(zerolog.Nop(), errors.ErrPipInstall, "install",
		func() error { return nil },
		func() error { fallbackRan = true; return nil },
	)

	assert.NoError(t, err)
	assert.False(t, fallbackRan)
}

func TestFallbackRecoversPrimaryFailure(t *testing.T) {
	calls := 0

	err := retry.Do(zerolog.Nop(), errors.ErrPipInstall, "install",
		func() error { calls++; return stderrors.New("index unreachable") },
		func() error { calls++; return nil },
	)

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestBothAttemptsFail(t *testing.T) {
	err := retry.Do(zerolog.Nop(), errors.ErrPipInstall, "install ansible==2.1.1.0",
		func() error { return stderrors.New("first failure") },
		func() error { return stderrors.New("second failure") },
	)

	assert.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPipInstall))
	assert.Contains(t, err.Error(), "first failure")
	assert.Contains(t, err.Error(), "second failure")
}

func TestFallbackRunsExactlyOnce(t *testing.T) {
	fallbackCalls := 0

	_ = retry.Do(zerolog.Nop(), errors.ErrPipInstall, "install",
		func() error { return stderrors.New("boom") },
		func() error { fallbackCalls++; return stderrors.New("still boom") },
	)

	assert.Equal(t, 1, fallbackCalls)
}
