package demonlist

import (
	"context"

	"modernc.org/mathutil"
)

// Snapshot is one full fetch-and-compute cycle over the store. Every view
// builds its own snapshot; nothing is cached between cycles.
type Snapshot struct {
	ListData ListData
	List     List
	Packs    PackList
	Scorer   *Scorer
}

// LoadSnapshot loads the list first (it defines rank order), builds the
// scorer from the configured point formula, then resolves pack rewards
// against the loaded list.
func LoadSnapshot(ctx context.Context, store Store, listData ListData) (*Snapshot, error) {
	list, err := LoadList(ctx, store, listData)
	if err != nil {
		return nil, err
	}
	scorer, err := NewScorer(listData.PointFormula, mathutil.Max(listData.GenerateTo, len(list)))
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		ListData: listData,
		List:     list,
		Packs:    LoadPacks(ctx, store, listData, list, scorer),
		Scorer:   scorer,
	}, nil
}

// Leaderboard aggregates the snapshot into the ranked per-user view.
func (s *Snapshot) Leaderboard() ([]UserScoreEntry, []string) {
	return BuildLeaderboard(s.List, s.Packs.Packs, s.Scorer)
}
