package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avaheights/society-portal/internal/adapters/store"
	"github.com/avaheights/society-portal/internal/domain/entities"
	"github.com/avaheights/society-portal/internal/domain/providers"
	"github.com/avaheights/society-portal/internal/infrastructure/snapshot"
)

func TestSessionStore_StartsAnonymous(t *testing.T) {
	s, err := store.NewSessionStore(context.Background(), snapshot.NewMemoryStore())
	require.NoError(t, err)

	assert.Nil(t, s.Current())
}

func TestSessionStore_SaveAndRestore(t *testing.T) {
	ctx := context.Background()
	snapshots := snapshot.NewMemoryStore()

	s, err := store.NewSessionStore(ctx, snapshots)
	require.NoError(t, err)

	identity := &entities.Identity{ID: "user-abc", Username: "ramesh", Role: entities.RoleTenant}
	require.NoError(t, s.Save(ctx, identity))
	require.Equal(t, "ramesh", s.Current().Username)

	// The identity survives a restart
	reopened, err := store.NewSessionStore(ctx, snapshots)
	require.NoError(t, err)
	restored := reopened.Current()
	require.NotNil(t, restored)
	assert.Equal(t, "user-abc", restored.ID)
	assert.Equal(t, entities.RoleTenant, restored.Role)
}

func TestSessionStore_ClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	snapshots := snapshot.NewMemoryStore()

	s, err := store.NewSessionStore(ctx, snapshots)
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, &entities.Identity{ID: "user-abc", Username: "ramesh", Role: entities.RoleTenant}))
	require.NoError(t, s.Clear(ctx))
	assert.Nil(t, s.Current())

	// Clearing an already-anonymous session is fine
	require.NoError(t, s.Clear(ctx))

	reopened, err := store.NewSessionStore(ctx, snapshots)
	require.NoError(t, err)
	assert.Nil(t, reopened.Current())
}

func TestSessionStore_CorruptSnapshotMeansAnonymous(t *testing.T) {
	ctx := context.Background()
	snapshots := snapshot.NewMemoryStore()
	require.NoError(t, snapshots.Save(ctx, providers.SlotIdentity, []byte("][")))

	s, err := store.NewSessionStore(ctx, snapshots)
	require.NoError(t, err)
	assert.Nil(t, s.Current())
}

func TestSessionStore_CurrentReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewSessionStore(ctx, snapshot.NewMemoryStore())
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, &entities.Identity{ID: "user-abc", Username: "ramesh", Role: entities.RoleTenant}))

	got := s.Current()
	got.Username = "tampered"
	assert.Equal(t, "ramesh", s.Current().Username)
}
