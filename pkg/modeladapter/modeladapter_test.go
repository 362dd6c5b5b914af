package modeladapter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/germanamz/promptour/pkg/chats/chat"
	"github.com/germanamz/promptour/pkg/modeladapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdapter(baseURL string) *modeladapter.ModelAdapter {
	return &modeladapter.ModelAdapter{
		BaseURL: baseURL,
		Auth:    modeladapter.Auth{Key: "test-key"},
	}
}

func TestPostJSONAppliesAuthAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/test", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "custom", r.Header.Get("X-Custom"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)

	a := newAdapter(srv.URL)
	a.Headers = map[string]string{"X-Custom": "custom"}

	var dest struct {
		OK bool `json:"ok"`
	}
	err := a.PostJSON(context.Background(), "/v1/test", map[string]string{"q": "x"}, &dest)
	require.NoError(t, err)
	assert.True(t, dest.OK)
}

func TestPostJSONCustomAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	a := newAdapter(srv.URL)
	a.Auth.Header = "x-api-key"

	require.NoError(t, a.PostJSON(context.Background(), "/", struct{}{}, nil))
}

func TestPostJSONMissingKeyFailsBeforeNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	a := newAdapter(srv.URL)
	a.Auth.Key = ""

	err := a.PostJSON(context.Background(), "/", struct{}{}, nil)
	require.Error(t, err)

	var authErr *modeladapter.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Zero(t, authErr.StatusCode)
	assert.False(t, called, "no request must be sent without a key")
}

func TestPostJSONUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	err := newAdapter(srv.URL).PostJSON(context.Background(), "/", struct{}{}, nil)

	var authErr *modeladapter.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
	assert.Contains(t, authErr.Reason, "invalid api key")
}

func TestPostJSONUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	err := newAdapter(srv.URL).PostJSON(context.Background(), "/", struct{}{}, nil)

	var netErr *modeladapter.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, http.StatusServiceUnavailable, netErr.StatusCode)
	assert.Contains(t, netErr.Body, "overloaded")
}

func TestPostJSONTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	err := newAdapter(srv.URL).PostJSON(context.Background(), "/", struct{}{}, nil)

	var netErr *modeladapter.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "do request", netErr.Op)
	assert.Error(t, netErr.Unwrap())
}

func TestCompleteStub(t *testing.T) {
	var a modeladapter.ModelAdapter

	_, err := a.Complete(context.Background(), chat.New())
	require.Error(t, err)
}
