package demonlist

import (
	"context"
	"errors"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrListUnavailable means the list index itself could not be fetched or
// parsed. Unlike a single broken level this fails the whole load.
var ErrListUnavailable = errors.New("list unavailable")

// Record is one submitted run on a level.
type Record struct {
	User    string `json:"user"`
	Percent int    `json:"percent"`
	Link    string `json:"link"`
	Mobile  bool   `json:"mobile"`
}

func (r Record) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.User, validation.Required),
		validation.Field(&r.Percent, validation.Required, validation.Min(1), validation.Max(100)),
	)
}

// Level is one placed level. Rank and Legacy are not stored fields, they are
// derived from the level's slot in the list index.
type Level struct {
	Path             string   `json:"path"`
	Id               int      `json:"id"`
	Name             string   `json:"name"`
	Verifier         string   `json:"verifier"`
	Verification     string   `json:"verification"`
	PercentToQualify int      `json:"percentToQualify"`
	Creators         []string `json:"creators"`
	Tags             []string `json:"tags"`
	Showcase         string   `json:"showcase"`
	Records          []Record `json:"records"`
	Rank             int      `json:"rank"`
	Legacy           bool     `json:"legacy"`
}

func (l Level) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Name, validation.Required),
		validation.Field(&l.Verifier, validation.Required),
		validation.Field(&l.PercentToQualify, validation.Required, validation.Min(1), validation.Max(100)),
		validation.Field(&l.Records),
	)
}

// LevelEntry is one slot of the loaded list. Exactly one of Level and Err is
// set; a failed slot keeps its position so ranks of the remaining levels stay
// correct.
type LevelEntry struct {
	Level *Level `json:"level,omitempty"`
	Err   string `json:"error,omitempty"`
}

type List []LevelEntry

// LoadList fetches the list index and then every level document concurrently.
// A level that fails to fetch, parse or validate only poisons its own slot.
func LoadList(ctx context.Context, store Store, listData ListData) (List, error) {
	var keys []string
	if err := store.Get(ctx, listData.ListKey, &keys); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListUnavailable, err)
	}
	entries := make(List, len(keys))
	group, ctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		i, key := i, key
		group.Go(func() error {
			rank := i + 1
			var level Level
			if err := store.Get(ctx, key, &level); err != nil {
				logrus.WithField("level", key).WithField("rank", rank).WithError(err).Warn("Failed to load level")
				entries[i] = LevelEntry{Err: key}
				return nil
			}
			if err := level.Validate(); err != nil {
				logrus.WithField("level", key).WithField("rank", rank).WithError(err).Warn("Rejected invalid level data")
				entries[i] = LevelEntry{Err: key}
				return nil
			}
			level.Path = key
			level.Rank = rank
			level.Legacy = rank > listData.LegacyCutoff
			sort.SliceStable(level.Records, func(a, b int) bool {
				return level.Records[a].Percent > level.Records[b].Percent
			})
			entries[i] = LevelEntry{Level: &level}
			return nil
		})
	}
	// Slot failures are reported in place, so the group never errors.
	_ = group.Wait()
	return entries, nil
}
