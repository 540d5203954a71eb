package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"golang-stock-screener/internal/screener/config"
	"golang-stock-screener/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKV mimics the Upstash REST API: the POST body is stored verbatim and
// returned as a JSON string under "result".
type fakeKV struct {
	mu     sync.Mutex
	token  string
	values map[string]string
}

func (f *fakeKV) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+f.token {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/get/"):
		key := strings.TrimPrefix(r.URL.Path, "/get/")
		value, ok := f.values[key]
		if !ok {
			_, _ = w.Write([]byte(`{"result":null}`))
			return
		}
		body, _ := json.Marshal(map[string]string{"result": value})
		_, _ = w.Write(body)
	case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/set/"):
		key := strings.TrimPrefix(r.URL.Path, "/set/")
		body, _ := io.ReadAll(r.Body)
		f.values[key] = string(body)
		_, _ = w.Write([]byte(`{"result":"OK"}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestKVRest(t *testing.T, handler http.Handler, token string) SnapshotStore {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewKVRestRepository(config.KV{
		RestAPIURL:   srv.URL + "/",
		RestAPIToken: token,
		Timeout:      5 * time.Second,
	}, logger.NewNop())
}

func TestKVRestSetThenGet(t *testing.T) {
	kv := &fakeKV{token: "secret", values: map[string]string{}}
	store := newTestKVRest(t, kv, "secret")
	ctx := context.Background()

	_, found, err := store.Get(ctx, "latest_scan")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "latest_scan", `"{\"a\":1}"`))
	assert.Equal(t, `"{\"a\":1}"`, kv.values["latest_scan"])

	value, found, err := store.Get(ctx, "latest_scan")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `"{\"a\":1}"`, value)
}

func TestKVRestUnauthorized(t *testing.T) {
	kv := &fakeKV{token: "secret", values: map[string]string{}}
	store := newTestKVRest(t, kv, "wrong")

	_, _, err := store.Get(context.Background(), "latest_scan")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)

	err = store.Set(context.Background(), "latest_scan", `"x"`)
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "kv set", statusErr.Op)
}

func TestKVRestNonStringResult(t *testing.T) {
	store := newTestKVRest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":{"timestamp":1}}`))
	}), "t")

	value, found, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"timestamp":1}`, value)
}

func TestNewSnapshotStoreWithoutCredentials(t *testing.T) {
	store, err := NewSnapshotStore(config.KV{Backend: "rest"}, logger.NewNop())
	require.NoError(t, err)

	_, _, err = store.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrStoreNotConfigured)
	assert.ErrorIs(t, store.Set(context.Background(), "k", "v"), ErrStoreNotConfigured)
}
