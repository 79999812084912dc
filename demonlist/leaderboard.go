package demonlist

import (
	"sort"

	"CDL/util"
)

// ScoredLevel is one verified or completed level on a user's profile.
type ScoredLevel struct {
	Rank  int     `json:"rank"`
	Level string  `json:"level"`
	Score float64 `json:"score"`
	Link  string  `json:"link"`
}

// ProgressedLevel is a partial completion above the qualify threshold.
type ProgressedLevel struct {
	Rank    int     `json:"rank"`
	Level   string  `json:"level"`
	Percent int     `json:"percent"`
	Score   float64 `json:"score"`
	Link    string  `json:"link"`
}

// PackBadge marks a fully cleared pack on a user's profile.
type PackBadge struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// UserScoreEntry is one row of the leaderboard.
type UserScoreEntry struct {
	User           string            `json:"user"`
	Total          float64           `json:"total"`
	Verified       []ScoredLevel     `json:"verified"`
	Completed      []ScoredLevel     `json:"completed"`
	Progressed     []ProgressedLevel `json:"progressed"`
	PacksCompleted []PackBadge       `json:"packsCompleted"`
}

// BuildLeaderboard folds the loaded list and packs into per-user score
// entries sorted by descending total. Slots that failed to load contribute
// their key to the returned error list and nothing else; users with equal
// totals keep the order they were first encountered in.
func BuildLeaderboard(list List, packs []Pack, scorer *Scorer) ([]UserScoreEntry, []string) {
	ids := newIdentities()
	entryByUser := make(map[string]*UserScoreEntry)
	order := make([]string, 0)
	errs := make([]string, 0)

	resolve := func(name string) *UserScoreEntry {
		user := ids.Resolve(name)
		entry, ok := entryByUser[user]
		if !ok {
			entry = &UserScoreEntry{User: user}
			entryByUser[user] = entry
			order = append(order, user)
		}
		return entry
	}

	for _, slot := range list {
		if slot.Err != "" {
			errs = append(errs, slot.Err)
			continue
		}
		level := slot.Level
		verifier := resolve(level.Verifier)
		verifier.Verified = append(verifier.Verified, ScoredLevel{
			Rank:  level.Rank,
			Level: level.Name,
			Score: scorer.Score(level.Rank, 100, level.PercentToQualify),
			Link:  level.Verification,
		})
		for _, record := range level.Records {
			owner := resolve(record.User)
			if record.Percent == 100 {
				owner.Completed = append(owner.Completed, ScoredLevel{
					Rank:  level.Rank,
					Level: level.Name,
					Score: scorer.Score(level.Rank, 100, level.PercentToQualify),
					Link:  record.Link,
				})
			} else {
				owner.Progressed = append(owner.Progressed, ProgressedLevel{
					Rank:    level.Rank,
					Level:   level.Name,
					Percent: record.Percent,
					Score:   scorer.Score(level.Rank, record.Percent, level.PercentToQualify),
					Link:    record.Link,
				})
			}
		}
	}

	leaderboard := make([]UserScoreEntry, 0, len(order))
	for _, user := range order {
		entry := entryByUser[user]
		total := 0.0
		cleared := make(map[string]bool)
		for _, scored := range entry.Verified {
			total += scored.Score
			cleared[scored.Level] = true
		}
		for _, scored := range entry.Completed {
			total += scored.Score
			cleared[scored.Level] = true
		}
		for _, progressed := range entry.Progressed {
			total += progressed.Score
		}
		for _, pack := range packs {
			if !packCompleted(pack, cleared) {
				continue
			}
			entry.PacksCompleted = append(entry.PacksCompleted, PackBadge{Name: pack.Name, Color: pack.Color})
			if pack.Reward > 0 {
				total += pack.Reward
			}
		}
		entry.Total = util.Round(total)
		leaderboard = append(leaderboard, *entry)
	}

	sort.SliceStable(leaderboard, func(a, b int) bool {
		return leaderboard[a].Total > leaderboard[b].Total
	})
	return leaderboard, errs
}

// packCompleted reports whether every resolved member of the pack is in the
// user's cleared set. Verifications count as clearance. Packs with no
// resolved members never count as completed.
func packCompleted(pack Pack, cleared map[string]bool) bool {
	if len(pack.Levels) == 0 {
		return false
	}
	for _, level := range pack.Levels {
		if !cleared[level.Name] {
			return false
		}
	}
	return true
}
