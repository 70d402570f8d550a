package utils

import (
	"fmt"
	"time"
)

// Retry runs fn up to maxAttempts times with exponential back-off, logging
// each failed attempt. Used for the startup connection to PostgreSQL.
func Retry(logger *Logger, operation string, maxAttempts int, baseDelay time.Duration, fn func() error) error {
	var lastErr error
	delay := baseDelay

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if attempt < maxAttempts {
			logger.Warn("[retry] %s attempt %d/%d: %v (next try in %v)",
				operation, attempt, maxAttempts, lastErr, delay)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s: giving up after %d attempts: %w", operation, maxAttempts, lastErr)
}
