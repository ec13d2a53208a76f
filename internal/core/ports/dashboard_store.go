// Package ports defines the contracts between the dashboard use cases and the
// adapters that store state and integrate with the outside world.
package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/dashboard"
)

// DashboardStore keeps one dashboard per viewer session.
type DashboardStore interface {
	// Load returns a snapshot of the session's dashboard, seeding it on first use.
	// Changes to the snapshot are not saved.
	Load(ctx context.Context, sessionID string) (*dashboard.Dashboard, error)

	// Update runs fn against the session's dashboard. The changes are kept only
	// when fn returns nil; otherwise the dashboard is left as it was.
	// Updates of one session are serialized.
	Update(ctx context.Context, sessionID string, fn func(d *dashboard.Dashboard) error) error

	// Reset restores the session's dashboard to the seed.
	Reset(ctx context.Context, sessionID string) error

	// ResetAll forgets every session.
	ResetAll(ctx context.Context) error
}

// SessionEvictor drops the dashboards of sessions nobody has used for a while.
type SessionEvictor interface {
	// EvictIdle forgets every session last used before cutoff and reports how
	// many were dropped.
	EvictIdle(ctx context.Context, cutoff time.Time) (int, error)
}

// SeedProvider builds the initial dashboard for a new session.
type SeedProvider interface {
	Seed(ctx context.Context) (*dashboard.Dashboard, error)
}
