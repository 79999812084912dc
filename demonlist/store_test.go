package demonlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore serves raw JSON documents from memory.
type memStore struct {
	docs map[string]string
}

func (s memStore) Get(_ context.Context, key string, v any) error {
	raw, ok := s.docs[key]
	if !ok {
		return fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "_list.json"), []byte(`["a","b"]`), 0o644))
	store := NewFileStore(dir)

	var keys []string
	require.NoError(t, store.Get(context.Background(), "_list", &keys))
	assert.Equal(t, []string{"a", "b"}, keys)

	err := store.Get(context.Background(), "_packs", &keys)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFileStoreParseError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{`), 0o644))
	store := NewFileStore(dir)

	var v map[string]any
	err := store.Get(context.Background(), "broken", &v)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestHTTPStore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/_list.json":
			_, _ = w.Write([]byte(`["levela"]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()
	store := NewHTTPStore(server.URL)

	var keys []string
	require.NoError(t, store.Get(context.Background(), "_list", &keys))
	assert.Equal(t, []string{"levela"}, keys)

	err := store.Get(context.Background(), "missing", &keys)
	assert.True(t, errors.Is(err, ErrNotFound))
}
