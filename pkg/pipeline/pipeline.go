// Package pipeline implements C4: the batcher and commit sequence that
// turn queued hash submissions into signed, persisted, published
// receipts (spec.md §4.4). The batcher and the gRPC ingress service
// share four long-lived, immutable handles — log client, signer, store,
// event-bus producer — matching spec.md §9's "naturally shared immutable
// references with internal connection pools" guidance, the same pattern
// the teacher uses for its log/slog logger and observability provider
// (pkg/observability/observability.go, pkg/audit/logger.go).
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abrarahmad1510/ChainAudit-LLMs/pkg/eventbus"
	"github.com/abrarahmad1510/ChainAudit-LLMs/pkg/logclient"
	"github.com/abrarahmad1510/ChainAudit-LLMs/pkg/signer"
	"github.com/abrarahmad1510/ChainAudit-LLMs/pkg/store"
)

// batchSize and batchInterval implement the dual flush trigger in
// spec.md §4.4: flush at 100 items or 100ms, whichever first; an empty
// batch is never flushed on the tick.
const (
	batchSize     = 100
	batchInterval = 100 * time.Millisecond
)

// rootPollAttempts and rootPollInterval bound the tree_size poll that
// resolves spec.md §9 Open Question 6 (the queue/root race): after
// queueing a leaf, the latest root may not yet cover it. A conforming
// implementation MAY poll for tree_size > leaf_index before requesting
// the inclusion proof; this implementation does so, bounded, rather than
// failing immediately on the first observed race.
const (
	rootPollAttempts = 20
	rootPollInterval = 5 * time.Millisecond
)

// Pipeline runs the batcher goroutine and exposes the commit sequence to
// the gRPC ingress service in server.go.
type Pipeline struct {
	log     *logclient.Client
	signer  *signer.Signer
	store   store.ReceiptStore
	bus     *eventbus.Bus
	metrics *Metrics
	logger  *slog.Logger

	queue *unboundedQueue

	// onFlush, when set, is called synchronously with each flushed
	// batch's size. It exists purely to let package-internal tests
	// observe the batcher's size/time trigger without depending on
	// metrics internals.
	onFlush func(size int)
}

// New constructs a Pipeline and starts its batcher goroutine. Callers
// own the lifetime of log, signer, store, and bus; Pipeline does not
// close them.
func New(log *logclient.Client, s *signer.Signer, st store.ReceiptStore, bus *eventbus.Bus, metrics *Metrics, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pipeline{
		log:     log,
		signer:  s,
		store:   st,
		bus:     bus,
		metrics: metrics,
		logger:  logger,
		queue:   newUnboundedQueue(),
	}
	go p.runBatcher()
	return p
}

// Close stops the batcher. Items the batcher has already taken from the
// queue are still processed; items still buffered in the queue are
// dropped (see unboundedQueue.close) and their result channels never
// receive.
func (p *Pipeline) Close() {
	p.queue.close()
}

// enqueue submits hash/metadata for processing and returns the channel
// its eventual result will arrive on.
func (p *Pipeline) enqueue(ctx context.Context, hash [32]byte, metadata []byte) <-chan Result {
	sub := &submission{
		id:       newSubmissionID(),
		hash:     hash,
		metadata: metadata,
		ctx:      ctx,
		resultCh: make(chan Result, 1),
	}
	p.queue.push(sub)
	return sub.resultCh
}

// runBatcher is the single consumer draining the queue under the
// size/time policy. It maps directly to a select over (queue receive,
// timer tick), per spec.md §9.
func (p *Pipeline) runBatcher() {
	ticker := time.NewTicker(batchInterval)
	defer ticker.Stop()

	batch := make([]*submission, 0, batchSize)

	for {
		select {
		case sub, ok := <-p.queue.receive():
			if !ok {
				if len(batch) > 0 {
					p.processBatch(batch)
				}
				return
			}
			batch = append(batch, sub)
			if len(batch) >= batchSize {
				p.processBatch(batch)
				batch = make([]*submission, 0, batchSize)
			}
		case <-ticker.C:
			if len(batch) == 0 {
				continue
			}
			p.processBatch(batch)
			batch = make([]*submission, 0, batchSize)
		}
	}
}

// processBatch runs the commit sequence for each submission in arrival
// order. A failure at any step of one submission is logged and skips the
// remaining steps for that submission only; processing continues with
// the next item (spec.md §4.4).
func (p *Pipeline) processBatch(batch []*submission) {
	if p.metrics != nil {
		p.metrics.RecordFlush(context.Background(), len(batch))
	}
	if p.onFlush != nil {
		p.onFlush(len(batch))
	}
	for _, sub := range batch {
		receipt, leafIndex, err := p.commitOne(sub.ctx, sub.hash, sub.metadata)
		if p.metrics != nil {
			p.metrics.RecordSubmission(sub.ctx, err)
		}
		if err != nil {
			p.logger.Error("commit sequence failed", "error", err, "submission_id", sub.id, "hash", fmt.Sprintf("%x", sub.hash))
		}
		sub.resultCh <- Result{Receipt: receipt, LeafIndex: leafIndex, Err: err}
	}
}

// commitOne runs the six-step commit sequence for a single submission.
func (p *Pipeline) commitOne(ctx context.Context, hash [32]byte, metadata []byte) ([]byte, int64, error) {
	index, err := p.log.Queue(ctx, hash)
	if err != nil {
		return nil, 0, fmt.Errorf("queue: %w", err)
	}

	root, err := p.pollRoot(ctx, index)
	if err != nil {
		return nil, 0, fmt.Errorf("current_root: %w", err)
	}

	proof, err := p.log.InclusionProof(ctx, index, root.TreeSize)
	if err != nil {
		return nil, 0, fmt.Errorf("inclusion_proof: %w", err)
	}

	receipt, err := p.signer.Sign(hash[:], index, root.RootHash, proof, metadata)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrSignerBadMetadata, err)
	}

	rec := store.Record{
		LeafHash:   hash[:],
		LeafIndex:  index,
		RootHash:   root.RootHash,
		Context:    metadata,
		ReceiptJWT: receipt,
	}
	if err := p.store.Insert(ctx, rec); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrStoreWriteFailed, err)
	}

	if p.bus != nil {
		if err := p.bus.Publish(ctx, hash[:], receipt); err != nil {
			return nil, 0, fmt.Errorf("publish: %w", err)
		}
	}

	return receipt, index, nil
}

// pollRoot fetches the current signed root, retrying briefly if the
// returned tree_size does not yet cover leafIndex (spec.md §9 Open
// Question 6). It returns the last observed root even if the race was
// never resolved within the poll budget — the inclusion-proof request
// downstream then fails on its own terms (Log.NoProof) rather than this
// function inventing a different error.
func (p *Pipeline) pollRoot(ctx context.Context, leafIndex int64) (logclient.SignedRoot, error) {
	var root logclient.SignedRoot
	var err error
	for attempt := 0; attempt < rootPollAttempts; attempt++ {
		root, err = p.log.CurrentRoot(ctx)
		if err != nil {
			return logclient.SignedRoot{}, err
		}
		if root.TreeSize > leafIndex {
			return root, nil
		}
		select {
		case <-ctx.Done():
			return root, nil
		case <-time.After(rootPollInterval):
		}
	}
	return root, nil
}
