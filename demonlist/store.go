package demonlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrNotFound is returned by a Store when the requested document does not
// exist. Callers distinguish it from parse failures to decide whether a
// resource is merely absent (packs, editors) or broken.
var ErrNotFound = errors.New("document not found")

// Store is the read-only JSON document source every loader works against.
// Keys are bare document names without the .json suffix, e.g. "_list".
type Store interface {
	Get(ctx context.Context, key string, v any) error
}

// HTTPStore fetches documents from a static file host.
type HTTPStore struct {
	BaseURL string
	client  *retryablehttp.Client
}

func NewHTTPStore(baseURL string) *HTTPStore {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.Logger = nil
	return &HTTPStore{BaseURL: baseURL, client: client}
}

func (s *HTTPStore) Get(ctx context.Context, key string, v any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s.json", s.BaseURL, key), nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", key, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

// FileStore reads documents from a local data directory, covering locally
// checked out /data trees and tests without a file host.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (s *FileStore) Get(_ context.Context, key string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.Dir, key+".json"))
	if os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}
