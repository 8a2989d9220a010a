package readiness

import (
	"context"

	pkgLog "gemini-provider/pkg/log"
)

// Checker validates credentials and connectivity before the caller proceeds.
type Checker interface {
	// Check fails only on configuration errors. A provider that cannot be
	// reached is logged as a warning and reported with Reachable=false.
	Check(ctx context.Context) (Report, error)
}

// New creates a readiness checker.
func New(l pkgLog.Logger, resolve KeyResolver, opts Options) Checker {
	if resolve == nil {
		resolve = EnvResolver()
	}
	return &checker{
		l:       l,
		resolve: resolve,
		opts:    opts,
	}
}
