// Package selfactivate implements the startup task that proves a node can
// reach itself through its own configured public address before it starts
// serving data: it loops back through that address, checks the reported
// run id matches its own, and only then flips its own bouncer active.
package selfactivate

import (
	"context"
	"fmt"
	"time"

	"github.com/spalhad/kvstore/internal/client"
	"github.com/spalhad/kvstore/internal/key"
	"github.com/spalhad/kvstore/internal/kverrors"
	"github.com/spalhad/kvstore/internal/logging"
)

// Run performs the self-address check against selfBaseURL and, on success,
// activates the node (via the same HTTP path a peer would use) with
// selfRunID. A mismatch or unreachable self address is a fatal error: a
// node that cannot observe itself through its own configured public
// address is misconfigured, not merely degraded.
func Run(ctx context.Context, selfRunID key.RunId, selfBaseURL string, timeout time.Duration) error {
	logger := logging.WithComponent("selfactivate")
	logger.Info().Str("base_url", selfBaseURL).Msg("checking self address")

	conn := client.New(selfBaseURL, timeout)

	observed, err := conn.RunID(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("self address check failed")
		return kverrors.SelfAddressMismatch{BaseURL: selfBaseURL, Cause: err}
	}
	if observed != selfRunID {
		logger.Error().
			Str("expected", selfRunID.String()).
			Str("observed", observed.String()).
			Msg("self address reported a different run id")
		return kverrors.SelfAddressMismatch{BaseURL: selfBaseURL}
	}

	if _, err := conn.Activate(ctx, selfRunID); err != nil {
		return fmt.Errorf("selfactivate: activating via loopback: %w", err)
	}

	logger.Info().Msg("node activated")
	return nil
}
