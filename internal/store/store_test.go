package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/isfdyt26/portal-api/internal/store/mockstore"
	"github.com/isfdyt26/portal-api/pkg/config"
)

func TestNewFallsBackToMock(t *testing.T) {
	cases := []struct {
		name   string
		remote config.RemoteConfig
	}{
		{name: "nothing configured", remote: config.RemoteConfig{}},
		{name: "url without key", remote: config.RemoteConfig{URL: "host=db dbname=portal user=portal"}},
		{name: "key without url", remote: config.RemoteConfig{Key: "s3cret"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, err := New(&config.Config{Remote: tc.remote}, zap.NewNop())
			require.NoError(t, err)
			assert.IsType(t, &mockstore.Mock{}, st)
		})
	}
}

func TestRemoteConfigured(t *testing.T) {
	assert.False(t, config.RemoteConfig{}.Configured())
	assert.False(t, config.RemoteConfig{URL: "host=db"}.Configured())
	assert.False(t, config.RemoteConfig{Key: "k"}.Configured())
	assert.True(t, config.RemoteConfig{URL: "host=db", Key: "k"}.Configured())
}
