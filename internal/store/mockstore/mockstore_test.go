package mockstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/isfdyt26/portal-api/pkg/config"
)

func newMock(t *testing.T) *Mock {
	t.Helper()
	m := New(config.MockConfig{}, NewCourseCatalog(), zap.NewNop())
	require.NoError(t, m.Initialize(context.Background()))
	return m
}

func TestInitializeSeedsCollections(t *testing.T) {
	m := newMock(t)

	users, err := m.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 5)

	careers, err := m.ListCareers(context.Background())
	require.NoError(t, err)
	assert.Len(t, careers, 5)
	assert.Equal(t, "Tecnicatura Superior en Desarrollo de Software", careers[0].Name)

	events, err := m.ListEvents(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 4)

	rooms, err := m.ListClassrooms(context.Background())
	require.NoError(t, err)
	assert.Len(t, rooms, 3)
}

func TestSnapshotRoundTrip(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "mock-data.json")
	cfg := config.MockConfig{DataFile: dataFile}

	first := New(cfg, NewCourseCatalog(), zap.NewNop())
	require.NoError(t, first.Initialize(context.Background()))
	require.NoError(t, first.DeleteUser(context.Background(), "3"))

	// A fresh instance on the same file must see the deletion instead of
	// reseeding: the users key is present, so the seed is skipped.
	second := New(cfg, NewCourseCatalog(), zap.NewNop())
	require.NoError(t, second.Initialize(context.Background()))

	users, err := second.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 4)
	for _, u := range users {
		assert.NotEqual(t, "3", u.ID)
	}
}

func TestSeedRespectsEmptyCollections(t *testing.T) {
	m := New(config.MockConfig{}, NewCourseCatalog(), zap.NewNop())
	m.docs[keyEvents] = []byte("[]")
	require.NoError(t, m.Initialize(context.Background()))

	events, err := m.ListEvents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}
