package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/avaheights/society-portal/internal/domain/providers"
	apperrors "github.com/avaheights/society-portal/pkg/errors"
)

// Option configures a record store.
type Option func(*options)

type options struct {
	latency time.Duration
	clock   func() time.Time
}

// WithLatency sets the fixed delay applied before every mutating operation,
// modeling a network round trip. The wait honors ctx; once it elapses the
// mutation always completes.
func WithLatency(d time.Duration) Option {
	return func(o *options) { o.latency = d }
}

// WithClock overrides the id/timestamp clock. Tests use this to pin ids.
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

func buildOptions(opts []Option) options {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// collection is the manager behind every record collection: an in-memory
// slice in insertion order (newest first) kept in write-through agreement
// with one durable snapshot slot. All operations of one collection
// serialize behind its mutex.
type collection[T any] struct {
	mu        sync.Mutex
	slot      string
	idPrefix  string
	snapshots providers.SnapshotStore
	records   []*T
	idOf      func(*T) string
	setID     func(*T, string)
	lastID    int64
	opts      options
}

func newCollection[T any](
	ctx context.Context,
	snapshots providers.SnapshotStore,
	slot, idPrefix string,
	idOf func(*T) string,
	setID func(*T, string),
	seed []*T,
	opts options,
) (*collection[T], error) {
	c := &collection[T]{
		slot:      slot,
		idPrefix:  idPrefix,
		snapshots: snapshots,
		idOf:      idOf,
		setID:     setID,
		opts:      opts,
	}

	data, ok, err := snapshots.Load(ctx, slot)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load snapshot "+slot, err)
	}

	restored := false
	if ok {
		var records []*T
		if err := json.Unmarshal(data, &records); err != nil {
			// A corrupt snapshot is treated as an absent one rather than
			// failing startup.
			log.Warn().Err(err).Str("slot", slot).Msg("discarding corrupt snapshot")
		} else {
			c.records = records
			restored = true
		}
	}

	if !restored && len(seed) > 0 {
		c.records = seed
		if err := c.persistLocked(ctx); err != nil {
			return nil, err
		}
	}

	for _, r := range c.records {
		if n := idSuffix(c.idOf(r), idPrefix); n > c.lastID {
			c.lastID = n
		}
	}

	return c, nil
}

// idSuffix extracts the numeric tail of "<prefix>-<n>" ids so monotonic id
// generation resumes past everything already issued.
func idSuffix(id, prefix string) int64 {
	tail, ok := strings.CutPrefix(id, prefix+"-")
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(tail, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// wait applies the simulated round-trip delay. Cancellation here aborts the
// operation before any state changes; past this point it runs to completion.
func (c *collection[T]) wait(ctx context.Context) error {
	if c.opts.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(c.opts.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// nextIDLocked issues a time-derived id, bumping past the last issued one so
// ids stay strictly monotonic within the collection and are never reused.
func (c *collection[T]) nextIDLocked() string {
	ms := c.opts.clock().UnixMilli()
	if ms <= c.lastID {
		ms = c.lastID + 1
	}
	c.lastID = ms
	return fmt.Sprintf("%s-%d", c.idPrefix, ms)
}

func (c *collection[T]) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(c.records)
	if err != nil {
		return apperrors.NewInternalError("failed to encode snapshot "+c.slot, err)
	}
	if err := c.snapshots.Save(ctx, c.slot, data); err != nil {
		return apperrors.NewInternalError("failed to persist snapshot "+c.slot, err)
	}
	return nil
}

// add assigns a fresh id, prepends the record and persists the snapshot. If
// persistence fails the record is not kept, so memory and durable state stay
// in agreement either way.
func (c *collection[T]) add(ctx context.Context, record *T) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.setID(record, c.nextIDLocked())
	c.records = append([]*T{record}, c.records...)
	if err := c.persistLocked(ctx); err != nil {
		c.records = c.records[1:]
		return err
	}
	return nil
}

// list returns copies of the records in stored (insertion) order. Callers
// sort their copy; the stored order is never mutated.
func (c *collection[T]) list() []*T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*T, len(c.records))
	for i, r := range c.records {
		clone := *r
		out[i] = &clone
	}
	return out
}

// update locates the record by id and applies fn to it, persisting the
// result. Unknown ids yield a NotFound error.
func (c *collection[T]) update(ctx context.Context, id string, fn func(*T)) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range c.records {
		if c.idOf(r) != id {
			continue
		}
		prev := *r
		fn(r)
		if err := c.persistLocked(ctx); err != nil {
			*r = prev
			return err
		}
		return nil
	}
	return apperrors.NewNotFoundError("no record with id " + id)
}
