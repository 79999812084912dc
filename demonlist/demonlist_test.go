package demonlist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSnapshot(t *testing.T) {
	store := memStore{docs: map[string]string{
		"_list":  `["levela", "levelb"]`,
		"levela": `{"name": "Level A", "verifier": "Bob", "verification": "https://example.com/a", "percentToQualify": 100, "records": [{"user": "Carol", "percent": 100, "link": "https://example.com/c"}]}`,
		"levelb": `{"name": "Level B", "verifier": "Carol", "percentToQualify": 90, "records": [{"user": "Dan", "percent": 95, "link": "https://example.com/d"}]}`,
		"_packs": `[{"name": "Duo Pack", "levels": ["Level A", "Level B"]}]`,
	}}

	snapshot, err := LoadSnapshot(context.Background(), store, Cdl())
	require.NoError(t, err)
	require.Len(t, snapshot.List, 2)
	require.True(t, snapshot.Packs.Available)
	require.Len(t, snapshot.Packs.Packs, 1)

	leaderboard, errs := snapshot.Leaderboard()
	assert.Empty(t, errs)
	require.Len(t, leaderboard, 3)

	// Carol cleared both levels (completion + verification) and earns the
	// pack bonus on top
	assert.Equal(t, "Carol", leaderboard[0].User)
	require.Len(t, leaderboard[0].PacksCompleted, 1)
	assert.Equal(t, "Duo Pack", leaderboard[0].PacksCompleted[0].Name)
	assert.Greater(t, leaderboard[0].Total, leaderboard[1].Total)
}

func TestLoadSnapshotListUnavailable(t *testing.T) {
	_, err := LoadSnapshot(context.Background(), memStore{docs: map[string]string{}}, Cdl())
	assert.True(t, errors.Is(err, ErrListUnavailable))
}

func TestLoadSnapshotScalesPointTableToList(t *testing.T) {
	listData := Cdl()
	listData.GenerateTo = 1
	store := memStore{docs: map[string]string{
		"_list":  `["levela", "levelb"]`,
		"levela": `{"name": "Level A", "verifier": "Bob", "percentToQualify": 100, "records": []}`,
		"levelb": `{"name": "Level B", "verifier": "Carol", "percentToQualify": 100, "records": []}`,
	}}

	snapshot, err := LoadSnapshot(context.Background(), store, listData)
	require.NoError(t, err)
	// the table always covers every loaded level
	assert.Positive(t, snapshot.Scorer.BasePoints(2))
}
