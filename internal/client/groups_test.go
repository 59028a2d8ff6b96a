package client_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/artifactory/internal/client"
	internalhttp "github.com/fivetwenty-io/artifactory/internal/http"
	"github.com/fivetwenty-io/artifactory/pkg/artifactory"
)

func newGroupsClient(t *testing.T, handler nethttp.Handler) *client.GroupsClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return client.NewGroupsClient(internalhttp.NewClient(server.URL), nil)
}

func TestGroupsClient_Get(t *testing.T) {
	t.Parallel()

	t.Run("requests members along with the group", func(t *testing.T) {
		t.Parallel()

		groupsClient := newGroupsClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			assert.Equal(t, "/api/security/groups/devs", r.URL.Path)
			assert.Equal(t, "true", r.URL.Query().Get("includeUsers"))

			_, _ = w.Write([]byte(`{
				"name": "devs",
				"description": "developers",
				"autoJoin": true,
				"realm": "internal",
				"userNames": ["alice", "bob"]
			}`))
		}))

		group, err := groupsClient.Get(context.Background(), "devs")
		require.NoError(t, err)
		assert.Equal(t, "devs", group.Name)
		assert.True(t, group.AutoJoin)
		assert.Equal(t, []string{"alice", "bob"}, group.UserNames)
	})

	t.Run("missing group maps to not found", func(t *testing.T) {
		t.Parallel()

		groupsClient := newGroupsClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusNotFound)
		}))

		_, err := groupsClient.Get(context.Background(), "ghost")
		require.Error(t, err)

		var notFound *artifactory.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "group", notFound.Kind)
	})
}

func TestGroupsClient_List(t *testing.T) {
	t.Parallel()

	groupsClient := newGroupsClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/api/security/groups", r.URL.Path)
		_, _ = w.Write([]byte(`[{"name": "devs"}, {"name": "ops"}]`))
	}))

	groups, err := groupsClient.List(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "ops", groups[1].Name)
}

func TestGroupsClient_Create(t *testing.T) {
	t.Parallel()

	t.Run("creates when absent", func(t *testing.T) {
		t.Parallel()

		var created atomic.Bool

		groupsClient := newGroupsClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			switch r.Method {
			case nethttp.MethodGet:
				if !created.Load() {
					w.WriteHeader(nethttp.StatusNotFound)
					return
				}

				_, _ = w.Write([]byte(`{"name": "devs"}`))
			case nethttp.MethodPut:
				created.Store(true)
				w.WriteHeader(nethttp.StatusCreated)
			}
		}))

		group, err := groupsClient.Create(context.Background(), &artifactory.Group{Name: "devs"})
		require.NoError(t, err)
		assert.Equal(t, "devs", group.Name)
	})

	t.Run("rejects existing group", func(t *testing.T) {
		t.Parallel()

		groupsClient := newGroupsClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			if r.Method != nethttp.MethodGet {
				t.Errorf("unexpected write %s", r.Method)
			}

			_, _ = w.Write([]byte(`{"name": "devs"}`))
		}))

		_, err := groupsClient.Create(context.Background(), &artifactory.Group{Name: "devs"})
		assert.True(t, artifactory.IsAlreadyExists(err))
	})
}

func TestGroupsClient_Update(t *testing.T) {
	t.Parallel()

	t.Run("missing group propagates not found", func(t *testing.T) {
		t.Parallel()

		groupsClient := newGroupsClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			if r.Method != nethttp.MethodGet {
				t.Errorf("unexpected write %s", r.Method)
			}

			w.WriteHeader(nethttp.StatusNotFound)
		}))

		_, err := groupsClient.Update(context.Background(), &artifactory.Group{Name: "ghost"})
		assert.True(t, artifactory.IsNotFound(err))
	})

	t.Run("posts and returns refreshed group", func(t *testing.T) {
		t.Parallel()

		var updated atomic.Bool

		groupsClient := newGroupsClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			switch r.Method {
			case nethttp.MethodGet:
				desc := "old"
				if updated.Load() {
					desc = "new"
				}

				_, _ = w.Write([]byte(`{"name": "devs", "description": "` + desc + `"}`))
			case nethttp.MethodPost:
				updated.Store(true)
				w.WriteHeader(nethttp.StatusOK)
			}
		}))

		group, err := groupsClient.Update(context.Background(), &artifactory.Group{
			Name:        "devs",
			Description: "new",
		})
		require.NoError(t, err)
		assert.Equal(t, "new", group.Description)
	})
}

func TestGroupsClient_Delete(t *testing.T) {
	t.Parallel()

	var deleted atomic.Bool

	groupsClient := newGroupsClient(t, nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		switch r.Method {
		case nethttp.MethodGet:
			_, _ = w.Write([]byte(`{"name": "devs"}`))
		case nethttp.MethodDelete:
			assert.Equal(t, "/api/security/groups/devs", r.URL.Path)
			deleted.Store(true)
			w.WriteHeader(nethttp.StatusOK)
		}
	}))

	require.NoError(t, groupsClient.Delete(context.Background(), "devs"))
	assert.True(t, deleted.Load())
}
