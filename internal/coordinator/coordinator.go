package coordinator

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/spalhad/kvstore/internal/key"
	"github.com/spalhad/kvstore/internal/kverrors"
	"github.com/spalhad/kvstore/internal/metrics"
	"github.com/spalhad/kvstore/internal/storage"
)

// Config fixes the parameters a coordinator actor runs with for its entire
// lifetime.
type Config struct {
	// Replication is the size of the replica window consulted for each
	// key: N consecutive slots of StorageTable, starting at the key's
	// partition index.
	Replication int
	// MinCorrectReads (Qr) is the number of agreeing replies a Get needs.
	MinCorrectReads int
	// MinCorrectWrites (Qw) is the number of agreeing replies a Put needs.
	MinCorrectWrites int
	// ConcurrencyLevel bounds how many Put requests are in flight across
	// the replica window at once.
	ConcurrencyLevel int
	// StorageTable holds one handle per node in the cluster, in address
	// order; the coordinator's own node appears at its own slot as a
	// local handle, every other slot as a ClientStorage handle.
	StorageTable []*storage.Handle
}

type backend struct {
	cfg Config
}

func newBackend(cfg Config) *backend {
	return &backend{cfg: cfg}
}

func (b *backend) window(k key.Key) []*storage.Handle {
	n := len(b.cfg.StorageTable)
	start := k.Partition(n)
	out := make([]*storage.Handle, b.cfg.Replication)
	for j := range out {
		out[j] = b.cfg.StorageTable[(start+j)%n]
	}
	return out
}

type readVote struct {
	found bool
	value string
}

func (b *backend) get(ctx context.Context, k key.Key) (GetOutput, error) {
	window := b.window(k)

	tally := make(map[readVote]int, len(window))
	var (
		bestVote  readVote
		bestCount int
		haveBest  bool
	)

	for _, replica := range window {
		value, found, err := storage.Get(ctx, replica, k)
		if err != nil {
			continue
		}

		vote := readVote{found: found, value: string(value)}
		tally[vote]++
		count := tally[vote]

		if count > bestCount {
			bestVote, bestCount, haveBest = vote, count, true
		}
		if count >= b.cfg.MinCorrectReads {
			metrics.ReadConsensusTotal.WithLabelValues("ok").Inc()
			return GetOutput{Value: []byte(vote.value), Found: vote.found}, nil
		}
	}

	if haveBest && bestCount >= b.cfg.MinCorrectReads {
		metrics.ReadConsensusTotal.WithLabelValues("ok").Inc()
		return GetOutput{Value: []byte(bestVote.value), Found: bestVote.found}, nil
	}
	metrics.ReadConsensusTotal.WithLabelValues("no_consensus").Inc()
	return GetOutput{}, kverrors.NoReadConsensus{}
}

func (b *backend) put(ctx context.Context, k key.Key, value []byte) (PutOutput, error) {
	window := b.window(k)

	concurrency := b.cfg.ConcurrencyLevel
	if concurrency <= 0 {
		concurrency = len(window)
	}
	sem := semaphore.NewWeighted(int64(concurrency))

	votes := make([]bool, len(window))
	ok := make([]bool, len(window))

	group, gctx := errgroup.WithContext(ctx)
	for i, replica := range window {
		i, replica := i, replica
		group.Go(func() error {
			if err := sem.Acquire(gctx, 1); err != nil {
				return nil
			}
			defer sem.Release(1)

			isNew, err := storage.Put(gctx, replica, k, value)
			if err != nil {
				return nil
			}
			votes[i], ok[i] = isNew, true
			return nil
		})
	}
	_ = group.Wait()

	var counts [2]int
	for i := range votes {
		if !ok[i] {
			continue
		}
		counts[boolIndex(votes[i])]++
	}

	switch {
	case counts[1] > counts[0] && counts[1] >= b.cfg.MinCorrectWrites:
		metrics.WriteConsensusTotal.WithLabelValues("ok").Inc()
		return PutOutput{New: true}, nil
	case counts[0] > counts[1] && counts[0] >= b.cfg.MinCorrectWrites:
		metrics.WriteConsensusTotal.WithLabelValues("ok").Inc()
		return PutOutput{New: false}, nil
	case counts[0] == counts[1] && counts[0] >= b.cfg.MinCorrectWrites:
		// Both senses independently reached quorum: this only fails when
		// no bucket reaches Qw, so report whichever sense was first seen.
		metrics.WriteConsensusTotal.WithLabelValues("ok").Inc()
		for i := range votes {
			if ok[i] {
				return PutOutput{New: votes[i]}, nil
			}
		}
		return PutOutput{}, kverrors.NoWriteConsensus{}
	default:
		metrics.WriteConsensusTotal.WithLabelValues("no_consensus").Inc()
		return PutOutput{}, kverrors.NoWriteConsensus{}
	}
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (b *backend) OnCall(ctx context.Context, msg Call) {
	switch {
	case msg.Get != nil:
		msg.Get.Handle(func(in GetInput) (GetOutput, error) {
			return b.get(ctx, in.Key)
		})
	case msg.Put != nil:
		msg.Put.Handle(func(in PutInput) (PutOutput, error) {
			return b.put(ctx, in.Key, in.Value)
		})
	}
}
