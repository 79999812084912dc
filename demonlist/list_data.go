package demonlist

// RewardTier maps a pack difficulty band to its reward multiplier. A pack
// falls into the first tier whose MaxAvgRank is not exceeded by the average
// rank of its member levels.
type RewardTier struct {
	MaxAvgRank float64
	Multiplier float64
}

type PackData struct {
	Key         string
	RankCutoff  int
	RewardTiers []RewardTier
}

// ListData parameterizes one list: where its documents live in the store and
// which point and pack policies apply to it.
type ListData struct {
	Name         string
	ListKey      string
	EditorsKey   string
	LegacyCutoff int
	PointFormula string
	GenerateTo   int
	Packs        PackData
}

func Cdl() ListData {
	return ListData{
		Name:         "cdl",
		ListKey:      "_list",
		EditorsKey:   "_editors",
		LegacyCutoff: 75,
		PointFormula: "100 / sqrt((x - 1) / 50 + 0.444444) - 50",
		GenerateTo:   200,
		Packs: PackData{
			Key:        "_packs",
			RankCutoff: 200,
			RewardTiers: []RewardTier{
				{MaxAvgRank: 25, Multiplier: 0.5},
				{MaxAvgRank: 50, Multiplier: 0.4},
				{MaxAvgRank: 75, Multiplier: 0.3},
				{MaxAvgRank: 150, Multiplier: 0.2},
			},
		},
	}
}

// FallbackMultiplier applies when the average rank is beyond every tier, or
// when a pack resolved no members at all.
const FallbackMultiplier = 0.1
