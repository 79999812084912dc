package demonlist

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"CDL/util"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/sirupsen/logrus"
	"modernc.org/mathutil"
)

// DefaultPackColor is used for packs whose definition carries no color.
const DefaultPackColor = "var(--color-primary)"

// PackDef is a pack as authored in the store. Levels holds references that
// still need resolving against the list, either a level id or a name.
type PackDef struct {
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
	Levels      []string `json:"levels"`
}

func (p PackDef) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
	)
}

// PackLevel is a resolved pack member.
type PackLevel struct {
	Path         string  `json:"path"`
	Id           int     `json:"id"`
	Name         string  `json:"name"`
	Rank         int     `json:"rank"`
	Points       float64 `json:"points"`
	Verification string  `json:"verification,omitempty"`
}

// Pack is a pack with its reward computed against the current list. Levels
// only contains members that resolved; references to unknown levels are
// logged and dropped, they neither score nor count towards completion.
type Pack struct {
	Name        string      `json:"name"`
	Color       string      `json:"color"`
	Description string      `json:"description,omitempty"`
	Reward      float64     `json:"reward"`
	Warning     string      `json:"warning,omitempty"`
	Levels      []PackLevel `json:"levels"`
}

// PackList carries the packs together with an explicit availability marker,
// so "the packs document does not exist" is data rather than an error path.
type PackList struct {
	Packs     []Pack
	Available bool
}

// LoadPacks fetches the pack definitions and computes their rewards. A
// missing or broken packs document degrades to an unavailable PackList, it
// never fails the caller.
func LoadPacks(ctx context.Context, store Store, listData ListData, list List, scorer *Scorer) PackList {
	var defs []PackDef
	if err := store.Get(ctx, listData.Packs.Key, &defs); err != nil {
		logrus.WithField("key", listData.Packs.Key).WithError(err).Warn("Packs unavailable, skipping pack rewards")
		return PackList{Available: false}
	}
	return PackList{Packs: ResolvePackRewards(defs, list, scorer, listData.Packs), Available: true}
}

// ResolvePackRewards resolves every pack's member references against the list
// and derives its reward. A pack containing any member beyond the rank cutoff
// is disqualified: zero reward plus a warning. Otherwise the reward is the
// sum of the members' completion scores weighted by a multiplier tier picked
// from the average member rank, harder packs earning a higher multiplier.
func ResolvePackRewards(defs []PackDef, list List, scorer *Scorer, packData PackData) []Pack {
	packs := make([]Pack, 0, len(defs))
	for _, def := range defs {
		if err := def.Validate(); err != nil {
			logrus.WithField("pack", def.Name).WithError(err).Warn("Rejected invalid pack definition")
			continue
		}
		pack := Pack{
			Name:        def.Name,
			Color:       def.Color,
			Description: def.Description,
		}
		if pack.Color == "" {
			pack.Color = DefaultPackColor
		}
		maxRank := 0
		rankSum := 0
		rawTotal := 0.0
		for _, ref := range def.Levels {
			level := resolveLevel(list, ref)
			if level == nil {
				logrus.WithField("pack", def.Name).WithField("level", ref).Warn("Level not found in list")
				continue
			}
			points := scorer.Score(level.Rank, 100, level.PercentToQualify)
			pack.Levels = append(pack.Levels, PackLevel{
				Path:         level.Path,
				Id:           level.Id,
				Name:         level.Name,
				Rank:         level.Rank,
				Points:       points,
				Verification: level.Verification,
			})
			maxRank = mathutil.Max(maxRank, level.Rank)
			rankSum += level.Rank
			rawTotal += points
		}
		sort.SliceStable(pack.Levels, func(a, b int) bool {
			return pack.Levels[a].Rank < pack.Levels[b].Rank
		})
		if maxRank > packData.RankCutoff {
			pack.Reward = 0
			pack.Warning = fmt.Sprintf("pack contains a level beyond rank %d and does not grant points", packData.RankCutoff)
			packs = append(packs, pack)
			continue
		}
		pack.Reward = util.Round(rawTotal * rewardMultiplier(pack.Levels, rankSum, packData.RewardTiers))
		packs = append(packs, pack)
	}
	return packs
}

func rewardMultiplier(levels []PackLevel, rankSum int, tiers []RewardTier) float64 {
	if len(levels) == 0 {
		return FallbackMultiplier
	}
	avgRank := float64(rankSum) / float64(len(levels))
	for _, tier := range tiers {
		if avgRank <= tier.MaxAvgRank {
			return tier.Multiplier
		}
	}
	return FallbackMultiplier
}

func resolveLevel(list List, ref string) *Level {
	for _, entry := range list {
		if entry.Level == nil {
			continue
		}
		if strconv.Itoa(entry.Level.Id) == ref || strings.EqualFold(entry.Level.Name, ref) {
			return entry.Level
		}
	}
	return nil
}
