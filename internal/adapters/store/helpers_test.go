package store_test

import (
	"context"
	"errors"
	"time"

	"github.com/avaheights/society-portal/internal/domain/providers"
	"github.com/avaheights/society-portal/internal/infrastructure/snapshot"
)

// flakySnapshots wraps a memory store and fails Save on demand, to exercise
// the rollback paths.
type flakySnapshots struct {
	inner    *snapshot.MemoryStore
	failSave bool
}

func newFlakySnapshots() *flakySnapshots {
	return &flakySnapshots{inner: snapshot.NewMemoryStore()}
}

func (f *flakySnapshots) Load(ctx context.Context, slot string) ([]byte, bool, error) {
	return f.inner.Load(ctx, slot)
}

func (f *flakySnapshots) Save(ctx context.Context, slot string, data []byte) error {
	if f.failSave {
		return errors.New("snapshot backend unavailable")
	}
	return f.inner.Save(ctx, slot, data)
}

func (f *flakySnapshots) Delete(ctx context.Context, slot string) error {
	return f.inner.Delete(ctx, slot)
}

var _ providers.SnapshotStore = (*flakySnapshots)(nil)

// fixedClock returns a clock pinned to t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
