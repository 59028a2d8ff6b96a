package artifactoryclient_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/artifactory/pkg/artifactory"
	"github.com/fivetwenty-io/artifactory/pkg/artifactoryclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := artifactoryclient.New(nil)
		require.ErrorIs(t, err, artifactory.ErrConfigRequired)
	})

	t.Run("missing base URL", func(t *testing.T) {
		t.Parallel()

		_, err := artifactoryclient.New(&artifactory.Config{})
		require.ErrorIs(t, err, artifactory.ErrBaseURLRequired)
	})

	t.Run("client cert without key", func(t *testing.T) {
		t.Parallel()

		_, err := artifactoryclient.New(&artifactory.Config{
			BaseURL:    "https://artifactory.example.com",
			VerifyTLS:  true,
			ClientCert: "/path/to/cert.pem",
		})
		require.ErrorIs(t, err, artifactory.ErrClientCertKeyIncomplete)
	})

	t.Run("client key without cert", func(t *testing.T) {
		t.Parallel()

		_, err := artifactoryclient.New(&artifactory.Config{
			BaseURL:   "https://artifactory.example.com",
			VerifyTLS: true,
			ClientKey: "/path/to/key.pem",
		})
		require.ErrorIs(t, err, artifactory.ErrClientCertKeyIncomplete)
	})

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		apiClient, err := artifactoryclient.New(&artifactory.Config{
			BaseURL:  "https://artifactory.example.com/artifactory",
			Username: "admin",
			Password: "secret",
		})
		require.NoError(t, err)
		require.NotNil(t, apiClient)
		assert.NotNil(t, apiClient.Users())
		assert.NotNil(t, apiClient.Groups())
		assert.NotNil(t, apiClient.Permissions())
		assert.NotNil(t, apiClient.Repositories())
		assert.NotNil(t, apiClient.Artifacts())
		assert.NotNil(t, apiClient.Security())
		assert.NotNil(t, apiClient.Aql())
	})
}

func TestNew_EndToEnd(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/api/security/users/alice", r.URL.Path)

		username, password, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "admin", username)
		assert.Equal(t, "secret", password)

		_, _ = w.Write([]byte(`{"name": "alice", "email": "alice@example.com"}`))
	}))
	defer server.Close()

	apiClient, err := artifactoryclient.New(&artifactory.Config{
		BaseURL:   server.URL + "/",
		Username:  "admin",
		Password:  "secret",
		VerifyTLS: true,
	})
	require.NoError(t, err)

	user, err := apiClient.Users().Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
}
