package analytics

import (
	"math"
	"sort"

	"github.com/mlachapelle/creatorlens/internal/model"
)

// Composite score weights. A fixed business weighting; the four components
// must sum to 1.0 (checked in tests). Do not tune.
const (
	weightSubscribers = 0.30
	weightEngagement  = 0.30
	weightViewRatio   = 0.20
	weightVolume      = 0.20
)

// PercentileRank returns the rank-based percentile of value within
// population as an integer 0-100: the share of population values strictly
// smaller than value, rounded. Ties all receive the same rank, and the
// maximum of n distinct values scores round((n-1)/n*100), not 100. This is
// deliberately not an interpolated percentile; the discrete rank semantics
// shape the score distribution.
func PercentileRank(value float64, population []float64) int {
	if len(population) == 0 {
		return 0
	}
	sorted := make([]float64, len(population))
	copy(sorted, population)
	sort.Float64s(sorted)

	rank := 0
	for _, v := range sorted {
		if v >= value {
			break
		}
		rank++
	}
	return int(math.Round(float64(rank) / float64(len(sorted)) * 100))
}

// ComputeScores ranks every creator by a weighted blend of four percentile
// ranks against the full population: subscribers and engagement at 30%
// each, views:subscriber ratio and video volume at 20% each. Engagement is
// sourced from the derived VideoStats; creators with no engagement signal
// enter the population as 0. Rows come back sorted by total descending,
// ties broken by channel id for determinism.
func ComputeScores(creators []model.Creator, stats map[string]*model.VideoStats) []model.ScoreRow {
	if len(creators) == 0 {
		return []model.ScoreRow{}
	}

	subs := make([]float64, len(creators))
	engagement := make([]float64, len(creators))
	ratios := make([]float64, len(creators))
	volumes := make([]float64, len(creators))

	for i, c := range creators {
		subs[i] = float64(c.Subscribers)
		engagement[i] = creatorEngagement(c, stats)
		ratios[i] = c.ViewsToSubRatio
		volumes[i] = creatorVolume(c, stats)
	}

	rows := make([]model.ScoreRow, len(creators))
	for i, c := range creators {
		subPct := float64(PercentileRank(subs[i], subs))
		engPct := float64(PercentileRank(engagement[i], engagement))
		ratioPct := float64(PercentileRank(ratios[i], ratios))
		volPct := float64(PercentileRank(volumes[i], volumes))

		total := weightSubscribers*subPct + weightEngagement*engPct +
			weightViewRatio*ratioPct + weightVolume*volPct

		rows[i] = model.ScoreRow{
			ChannelID:       c.ChannelID,
			Name:            creatorName(c),
			SubscriberScore: round1(weightSubscribers * subPct),
			EngagementScore: round1(weightEngagement * engPct),
			RatioScore:      round1(weightViewRatio * ratioPct),
			VolumeScore:     round1(weightVolume * volPct),
			Total:           round1(total),
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].ChannelID < rows[j].ChannelID
	})
	return rows
}

// creatorEngagement reads a creator's average engagement from the derived
// stats, 0 when there is no signal.
func creatorEngagement(c model.Creator, stats map[string]*model.VideoStats) float64 {
	if s, ok := stats[c.ChannelID]; ok && s.AvgEngagement != nil {
		return *s.AvgEngagement
	}
	return 0
}

// creatorVolume prefers the store's precomputed video count on the creator
// row and falls back to the count derived from raw video rows.
func creatorVolume(c model.Creator, stats map[string]*model.VideoStats) float64 {
	if c.VideoCount > 0 {
		return float64(c.VideoCount)
	}
	if s, ok := stats[c.ChannelID]; ok {
		return float64(s.VideoCount)
	}
	return 0
}

func creatorName(c model.Creator) string {
	if c.ChannelName != "" {
		return c.ChannelName
	}
	return c.ChannelID
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
