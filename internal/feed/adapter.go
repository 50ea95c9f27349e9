package feed

import (
	"context"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/click2025-space/clickers-workspace/internal/config"
)

type Refresher interface {
	Refresh(ctx context.Context) error
}

// Adapter turns every change-feed event, regardless of kind or payload,
// into a single Refresh. The payload is a notification-of-change, not a
// trusted delta, so it is never merged into state directly. Reconnection
// belongs to the underlying consumer; a failed refresh is logged only and
// the fixed-interval poll covers the gap.
type Adapter struct {
	refresher Refresher
}

func New(refresher Refresher) *Adapter {
	return &Adapter{
		refresher: refresher,
	}
}

func (a *Adapter) Handler(ctx context.Context, _ []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	if err := a.refresher.Refresh(ctx); err != nil {
		logger.Error(fmt.Sprintf("failed to refresh after change event: %v", err))
	}
}
