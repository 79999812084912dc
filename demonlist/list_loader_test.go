package demonlist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadList(t *testing.T) {
	store := memStore{docs: map[string]string{
		"_list":  `["levela", "levelb", "levelc"]`,
		"levela": `{"name": "Level A", "id": 101, "verifier": "Bob", "verification": "https://example.com/a", "percentToQualify": 100, "records": []}`,
		"levelb": `{broken`,
		"levelc": `{"name": "Level C", "id": 103, "verifier": "Carol", "percentToQualify": 90, "records": [
			{"user": "Dan", "percent": 95, "link": "https://example.com/d"},
			{"user": "Erin", "percent": 100, "link": "https://example.com/e"},
			{"user": "Frank", "percent": 97, "link": "https://example.com/f"}
		]}`,
	}}

	list, err := LoadList(context.Background(), store, Cdl())
	require.NoError(t, err)
	require.Len(t, list, 3)

	require.NotNil(t, list[0].Level)
	assert.Equal(t, "Level A", list[0].Level.Name)
	assert.Equal(t, "levela", list[0].Level.Path)
	assert.Equal(t, 1, list[0].Level.Rank)
	assert.False(t, list[0].Level.Legacy)

	// broken level keeps its slot so ranks after it stay correct
	assert.Nil(t, list[1].Level)
	assert.Equal(t, "levelb", list[1].Err)

	require.NotNil(t, list[2].Level)
	assert.Equal(t, 3, list[2].Level.Rank)

	// records are sorted by descending percent
	percents := make([]int, 0, 3)
	for _, record := range list[2].Level.Records {
		percents = append(percents, record.Percent)
	}
	assert.Equal(t, []int{100, 97, 95}, percents)
}

func TestLoadListIndexUnavailable(t *testing.T) {
	list, err := LoadList(context.Background(), memStore{docs: map[string]string{}}, Cdl())
	assert.Nil(t, list)
	assert.True(t, errors.Is(err, ErrListUnavailable))
}

func TestLoadListRejectsInvalidLevel(t *testing.T) {
	store := memStore{docs: map[string]string{
		"_list": `["levela"]`,
		// percentToQualify out of range
		"levela": `{"name": "Level A", "verifier": "Bob", "percentToQualify": 0, "records": []}`,
	}}

	list, err := LoadList(context.Background(), store, Cdl())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Level)
	assert.Equal(t, "levela", list[0].Err)
}

func TestLoadListMarksLegacyLevels(t *testing.T) {
	listData := Cdl()
	listData.LegacyCutoff = 1
	store := memStore{docs: map[string]string{
		"_list":  `["levela", "levelb"]`,
		"levela": `{"name": "Level A", "verifier": "Bob", "percentToQualify": 100, "records": []}`,
		"levelb": `{"name": "Level B", "verifier": "Carol", "percentToQualify": 100, "records": []}`,
	}}

	list, err := LoadList(context.Background(), store, listData)
	require.NoError(t, err)
	assert.False(t, list[0].Level.Legacy)
	assert.True(t, list[1].Level.Legacy)
}
