package cli

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/SEEK-Jobs/repoinv/pkg/cmd"
	"github.com/SEEK-Jobs/repoinv/pkg/inventory"
)

var (
	// lazyPlatform provides a means of overriding the concrete implementation of
	// Platform used in tests. It's lazy because creation of a real Platform has side-effects.
	lazyPlatform = func(ctx context.Context, opts *cmd.PlatformOptions) (inventory.Platform, error) {
		return cmd.NewPlatform(ctx, opts)
	}
)

// newPlatform returns an instance of inventory.Platform configured with the specified options.
func newPlatform(ctx context.Context, opts *cmd.PlatformOptions) (inventory.Platform, error) {
	zerolog.Ctx(ctx).Debug().
		Str("api", opts.API).
		Int("retries", opts.Retries).
		Msg("Creating platform")

	return lazyPlatform(ctx, opts)
}
