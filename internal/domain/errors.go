package domain

import "errors"

var (
	// Empty origin/destination, malformed input. Surfaced to the caller, never retried.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrUnsupportedMode     = errors.New("unsupported transport mode")
	ErrUnsupportedStrategy = errors.New("unsupported route strategy")

	// Map provider fault. The core does not retry.
	ErrProviderUnavailable = errors.New("map provider unavailable")

	// Cache grew past its capacity. Programming error.
	ErrCacheCapacityViolation = errors.New("route cache capacity violation")

	// An augmenter changed distance, time, cost, CO2 or dropped narrative lines.
	ErrAugmenterMutatedMetrics = errors.New("augmenter mutated route metrics")
)
