package cdl

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"CDL/demonlist"

	"github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *echo.Echo {
	t.Helper()
	dir := t.TempDir()
	docs := map[string]string{
		"_list":  `["levela", "levelb"]`,
		"levela": `{"name": "Level A", "id": 101, "verifier": "Bob", "verification": "https://example.com/a", "percentToQualify": 100, "records": [{"user": "Carol", "percent": 100, "link": "https://example.com/c"}]}`,
		"levelb": `{"name": "Level B", "verifier": "Carol", "percentToQualify": 90, "records": [{"user": "Dan", "percent": 95, "link": "https://example.com/d"}]}`,
		"_packs": `[{"name": "Duo Pack", "color": "#abcdef", "levels": ["Level A", "Level B"]}]`,
		"_editors": `[{"name": "Bob", "role": "owner"}]`,
	}
	for key, doc := range docs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, key+".json"), []byte(doc), 0o644))
	}

	e := echo.New()
	require.NoError(t, RegisterEndpoints(e, Env{
		Store:    demonlist.NewFileStore(dir),
		ListData: demonlist.Cdl(),
	}))
	return e
}

func get(t *testing.T, e *echo.Echo, path string, result any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if result != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), result))
	}
	return rec
}

func TestLevelsEndpoint(t *testing.T) {
	e := testServer(t)
	var list []ListEntry
	rec := get(t, e, "/api/cdl/levels", &list)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].Position)
	assert.Equal(t, "Level A", list[0].Name)
	assert.Positive(t, list[0].Points)
	assert.Greater(t, list[0].Points, list[1].Points)
}

func TestLevelEndpoint(t *testing.T) {
	e := testServer(t)
	var detail LevelDetail
	rec := get(t, e, "/api/cdl/levels/levelb", &detail)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Level B", detail.Name)
	assert.Equal(t, 2, detail.Rank)
	assert.Positive(t, detail.Points)

	rec = get(t, e, "/api/cdl/levels/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeaderboardEndpoint(t *testing.T) {
	e := testServer(t)
	var leaderboard Leaderboard
	rec := get(t, e, "/api/cdl/leaderboard", &leaderboard)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, leaderboard.List, 3)
	assert.Equal(t, 1, leaderboard.List[0].Rank)
	assert.Equal(t, "Carol", leaderboard.List[0].User)

	// paging keeps the global rank numbers
	rec = get(t, e, "/api/cdl/leaderboard?per_page=1&page=2", &leaderboard)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, leaderboard.List, 1)
	assert.Equal(t, 2, leaderboard.List[0].Rank)
	assert.Equal(t, 3, leaderboard.Pages)

	rec = get(t, e, "/api/cdl/leaderboard?name_filter=car", &leaderboard)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, leaderboard.List, 1)
	assert.Equal(t, "Carol", leaderboard.List[0].User)

	rec = get(t, e, "/api/cdl/leaderboard?per_page=0", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPacksEndpoint(t *testing.T) {
	e := testServer(t)
	var packs []demonlist.Pack
	rec := get(t, e, "/api/cdl/packs", &packs)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, packs, 1)
	assert.Equal(t, "Duo Pack", packs[0].Name)
	assert.Positive(t, packs[0].Reward)
	assert.Len(t, packs[0].Levels, 2)
}

func TestEditorsEndpoint(t *testing.T) {
	e := testServer(t)
	var editors []demonlist.Editor
	rec := get(t, e, "/api/cdl/editors", &editors)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, editors, 1)
	assert.Equal(t, "owner", editors[0].Role)
}
