// Package retry implements the bootstrap's single resilience policy: attempt
// a primary operation and, only when it fails, attempt a fallback once.
package retry

import (
	"github.com/rs/zerolog"

	"github.com/osa-tools/osa-bootstrap/pkg/errors"
)

// Do runs primary, and on failure runs fallback once. The returned error
// carries both failures when the fallback also fails.
func Do(logger zerolog.Logger, code errors.ErrorCode, what string, primary, fallback func() error) error {
	primaryErr := primary()
	if primaryErr == nil {
		return nil
	}

	logger.Warn().
		Str("operation", what).
		Err(primaryErr).
		Msg("Primary attempt failed, retrying with fallback")

	if err := fallback(); err != nil {
		return errors.Wrapf(err, code,
			"%s failed on both attempts (first attempt: %v)", what, primaryErr)
	}

	logger.Info().Str("operation", what).Msg("Fallback attempt succeeded")
	return nil
}
