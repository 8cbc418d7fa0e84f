package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avaheights/society-portal/internal/adapters/store"
	"github.com/avaheights/society-portal/internal/application/services"
	"github.com/avaheights/society-portal/internal/domain/entities"
	"github.com/avaheights/society-portal/internal/infrastructure/snapshot"
)

func newSessionService(t *testing.T) (*services.SessionService, *snapshot.MemoryStore) {
	t.Helper()
	snapshots := snapshot.NewMemoryStore()
	repo, err := store.NewSessionStore(context.Background(), snapshots)
	require.NoError(t, err)
	return services.NewSessionService(repo, 0), snapshots
}

func TestSessionService_SignIn(t *testing.T) {
	service, _ := newSessionService(t)

	identity, err := service.SignIn(context.Background(), "ramesh", entities.RoleTenant)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(identity.ID, "user-"))
	assert.Equal(t, "ramesh", identity.Username)
	assert.Equal(t, entities.RoleTenant, identity.Role)
	assert.True(t, service.IsAuthenticated())
	assert.False(t, service.IsAdmin())
}

func TestSessionService_SignInReplacesIdentity(t *testing.T) {
	service, _ := newSessionService(t)

	_, err := service.SignIn(context.Background(), "ramesh", entities.RoleTenant)
	require.NoError(t, err)

	admin, err := service.SignIn(context.Background(), "secretary", entities.RoleAdmin)
	require.NoError(t, err)

	current := service.Current()
	require.NotNil(t, current)
	assert.Equal(t, admin.ID, current.ID)
	assert.True(t, service.IsAdmin())
}

func TestSessionService_SignOut(t *testing.T) {
	service, _ := newSessionService(t)

	_, err := service.SignIn(context.Background(), "ramesh", entities.RoleTenant)
	require.NoError(t, err)

	require.NoError(t, service.SignOut(context.Background()))
	assert.Nil(t, service.Current())
	assert.False(t, service.IsAuthenticated())
	assert.False(t, service.IsAdmin())

	// Signing out again is harmless
	require.NoError(t, service.SignOut(context.Background()))
}

func TestSessionService_Authenticate(t *testing.T) {
	service, _ := newSessionService(t)

	identity, err := service.SignIn(context.Background(), "ramesh", entities.RoleTenant)
	require.NoError(t, err)

	assert.NotNil(t, service.Authenticate(identity.ID))
	assert.Nil(t, service.Authenticate(""))
	assert.Nil(t, service.Authenticate("user-someone-else"))

	// A replaced session invalidates the old token
	replacement, err := service.SignIn(context.Background(), "secretary", entities.RoleAdmin)
	require.NoError(t, err)
	assert.Nil(t, service.Authenticate(identity.ID))
	assert.NotNil(t, service.Authenticate(replacement.ID))
}

func TestSessionService_TokenSurvivesRestart(t *testing.T) {
	snapshots := snapshot.NewMemoryStore()
	repo, err := store.NewSessionStore(context.Background(), snapshots)
	require.NoError(t, err)
	service := services.NewSessionService(repo, 0)

	identity, err := service.SignIn(context.Background(), "ramesh", entities.RoleTenant)
	require.NoError(t, err)

	// New repo and service over the same backend models a restart
	reopened, err := store.NewSessionStore(context.Background(), snapshots)
	require.NoError(t, err)
	restarted := services.NewSessionService(reopened, 0)

	restored := restarted.Authenticate(identity.ID)
	require.NotNil(t, restored)
	assert.Equal(t, "ramesh", restored.Username)
}

func TestSessionService_SignInLatencyHonorsContext(t *testing.T) {
	snapshots := snapshot.NewMemoryStore()
	repo, err := store.NewSessionStore(context.Background(), snapshots)
	require.NoError(t, err)
	service := services.NewSessionService(repo, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = service.SignIn(ctx, "ramesh", entities.RoleTenant)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, service.Current())
}
