package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/artifactory/internal/http"
	"github.com/fivetwenty-io/artifactory/pkg/artifactory"
)

func TestClient_Do(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/api/security/users/alice", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		username, password, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "admin", username)
		assert.Equal(t, "secret", password)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "alice"}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, internalhttp.WithBasicAuth("admin", "secret"))

	resp, err := client.Get(context.Background(), "/api/security/users/alice", nil)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"name": "alice"}`, string(resp.Body))
}

func TestClient_Do_QueryParameters(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("includeUsers"))
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL)

	query := url.Values{}
	query.Set("includeUsers", "true")

	_, err := client.Get(context.Background(), "api/security/groups/devs", query)
	require.NoError(t, err)
}

func TestClient_Do_JSONBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "alice", payload["name"])

		w.WriteHeader(nethttp.StatusCreated)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL)

	resp, err := client.Put(context.Background(), "api/security/users/alice", map[string]string{"name": "alice"})
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusCreated, resp.StatusCode)
}

func TestClient_Do_RawBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "text/plain", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, `items.find()`, string(body))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL)

	_, err := client.Do(context.Background(), &internalhttp.Request{
		Method:      nethttp.MethodPost,
		Path:        "api/search/aql",
		RawBody:     strings.NewReader("items.find()"),
		ContentType: "text/plain",
	})
	require.NoError(t, err)
}

func TestClient_Do_CustomHeaders(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "abc123", r.Header.Get("X-Checksum-Sha1"))
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL)

	_, err := client.Do(context.Background(), &internalhttp.Request{
		Method:  nethttp.MethodPut,
		Path:    "repo/app.jar",
		Headers: map[string]string{"X-Checksum-Sha1": "abc123"},
	})
	require.NoError(t, err)
}

func TestClient_Do_UserAgent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "deploy-bot/1.0", r.Header.Get("User-Agent"))
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, internalhttp.WithUserAgent("deploy-bot/1.0"))

	_, err := client.Get(context.Background(), "api/repositories", nil)
	require.NoError(t, err)
}

func TestClient_Do_ErrorTranslation(t *testing.T) {
	t.Parallel()

	t.Run("errors array becomes ResponseError", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors": [{"status": 404, "message": "Unable to find item"}]}`))
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL)

		resp, err := client.Get(context.Background(), "api/storage/repo/missing", nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)

		var respErr *artifactory.ResponseError
		require.ErrorAs(t, err, &respErr)
		assert.Equal(t, 404, respErr.Errors[0].Status)
		assert.Equal(t, "Unable to find item", respErr.Errors[0].Message)
	})

	t.Run("plain body becomes APIError", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusForbidden)
			_, _ = w.Write([]byte("permission denied\n"))
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL)

		resp, err := client.Get(context.Background(), "api/repositories/private", nil)
		require.Error(t, err)
		require.NotNil(t, resp)

		var apiErr *artifactory.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, nethttp.StatusForbidden, apiErr.Status)
		assert.Equal(t, "permission denied", apiErr.Message)
	})

	t.Run("empty body falls back to status text", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusUnauthorized)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL)

		_, err := client.Get(context.Background(), "api/security/users", nil)
		require.Error(t, err)

		var apiErr *artifactory.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Unauthorized", apiErr.Message)
	})
}

func TestClient_Retry(t *testing.T) {
	t.Parallel()

	t.Run("retries transient failures", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			if atomic.AddInt32(&attempts, 1) < 3 {
				w.WriteHeader(nethttp.StatusServiceUnavailable)
				return
			}

			w.WriteHeader(nethttp.StatusOK)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL,
			internalhttp.WithRetryConfig(3, time.Millisecond, 5*time.Millisecond))

		resp, err := client.Get(context.Background(), "api/repositories", nil)
		require.NoError(t, err)
		assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			atomic.AddInt32(&attempts, 1)
			w.WriteHeader(nethttp.StatusBadRequest)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL,
			internalhttp.WithRetryConfig(3, time.Millisecond, 5*time.Millisecond))

		_, err := client.Get(context.Background(), "api/repositories", nil)
		require.Error(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
	})
}

func TestClient_DoStream(t *testing.T) {
	t.Parallel()

	t.Run("success leaves body open", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			_, _ = w.Write([]byte("artifact bytes"))
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL)

		stream, err := client.DoStream(context.Background(), &internalhttp.Request{
			Method: nethttp.MethodGet,
			Path:   "repo/app.jar",
		})
		require.NoError(t, err)

		defer func() { _ = stream.Body.Close() }()

		body, err := io.ReadAll(stream.Body)
		require.NoError(t, err)
		assert.Equal(t, "artifact bytes", string(body))
	})

	t.Run("error status returns translated error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusNotFound)
			_, _ = w.Write([]byte("not found"))
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL)

		stream, err := client.DoStream(context.Background(), &internalhttp.Request{
			Method: nethttp.MethodGet,
			Path:   "repo/missing.jar",
		})
		require.Error(t, err)
		require.NotNil(t, stream)
		assert.Equal(t, nethttp.StatusNotFound, stream.StatusCode)
		assert.Nil(t, stream.Body)
	})
}

func TestClient_PostForm(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "alice", r.PostForm.Get("username"))
		assert.Equal(t, "3600", r.PostForm.Get("expires_in"))

		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL)

	form := url.Values{}
	form.Set("username", "alice")
	form.Set("expires_in", "3600")

	_, err := client.PostForm(context.Background(), "api/security/token", form)
	require.NoError(t, err)
}

func TestClient_VerbHelpers(t *testing.T) {
	t.Parallel()

	var method atomic.Value

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		method.Store(r.Method)
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL)
	ctx := context.Background()

	_, err := client.Post(ctx, "api/security/users/alice", map[string]string{"email": "a@example.com"})
	require.NoError(t, err)
	assert.Equal(t, nethttp.MethodPost, method.Load())

	_, err = client.Delete(ctx, "api/security/users/alice")
	require.NoError(t, err)
	assert.Equal(t, nethttp.MethodDelete, method.Load())
}

func TestClient_DebugLogging(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	var buf bytes.Buffer

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "test",
		Level:  hclog.Debug,
		Output: &buf,
	})

	client := internalhttp.NewClient(server.URL,
		internalhttp.WithLogger(logger),
		internalhttp.WithDebug(true))

	_, err := client.Get(context.Background(), "api/repositories", nil)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "HTTP Request")
	assert.Contains(t, buf.String(), "HTTP Response")
}
