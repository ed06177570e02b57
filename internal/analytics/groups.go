package analytics

import (
	"sort"

	"github.com/mlachapelle/creatorlens/internal/model"
)

// GroupDimension selects which categorical key partitions the creators.
type GroupDimension string

const (
	GroupByCadence GroupDimension = "cadence"
	GroupByNiche   GroupDimension = "niche"
	GroupByRevenue GroupDimension = "revenue"
)

// cadenceGroupOrder is the fixed display order for the cadence dimension.
var cadenceGroupOrder = []string{
	CadenceDaily,
	Cadence3to4Wk,
	Cadence2xWk,
	CadenceWeekly,
	CadenceBiWeekly,
	CadenceMonthly,
	CadenceIrregular,
}

// GroupComparison partitions creators by the given dimension, averages
// subscribers, engagement and video count per group, and rescales each
// metric to raw/max*100 against the best group so all three land on a
// common 0-100 axis. Creators with a missing or unrecognized key for the
// dimension are excluded from that grouping only.
//
// Cadence and revenue groups come back in their declared category order;
// niche groups by descending raw subscriber average.
func GroupComparison(dim GroupDimension, creators []model.Creator, stats map[string]*model.VideoStats) []model.GroupRow {
	type accum struct {
		count  int
		subs   float64
		eng    float64
		videos float64
	}
	groups := make(map[string]*accum)

	for _, c := range creators {
		key, ok := groupKey(dim, c)
		if !ok {
			continue
		}
		g := groups[key]
		if g == nil {
			g = &accum{}
			groups[key] = g
		}
		g.count++
		g.subs += float64(c.Subscribers)
		g.eng += creatorEngagement(c, stats)
		g.videos += creatorVolume(c, stats)
	}

	rows := make([]model.GroupRow, 0, len(groups))
	for key, g := range groups {
		row := model.GroupRow{Key: key, Creators: g.count}
		if g.count > 0 {
			n := float64(g.count)
			row.AvgSubscribers = g.subs / n
			row.AvgEngagement = g.eng / n
			row.AvgVideoCount = g.videos / n
		}
		rows = append(rows, row)
	}

	normalize(rows)
	orderGroups(dim, rows)
	return rows
}

// groupKey extracts the categorical key for a creator on the given
// dimension. ok is false when the key is absent or, for the revenue
// dimension, not one of the five declared tiers.
func groupKey(dim GroupDimension, c model.Creator) (string, bool) {
	switch dim {
	case GroupByCadence:
		if c.UploadFrequency == nil || *c.UploadFrequency == "" {
			return "", false
		}
		return *c.UploadFrequency, true
	case GroupByNiche:
		if c.TopContentType == nil || *c.TopContentType == "" {
			return "", false
		}
		return *c.TopContentType, true
	case GroupByRevenue:
		if c.EstRevenueRange == nil || RevenueTierOrdinal(*c.EstRevenueRange) == 0 {
			return "", false
		}
		return *c.EstRevenueRange, true
	default:
		return "", false
	}
}

// normalize rescales each metric to 0-100 against the maximum raw average
// across groups, per metric independently. An all-zero metric stays 0 for
// every group; there is never a divide by zero.
func normalize(rows []model.GroupRow) {
	var maxSubs, maxEng, maxVideos float64
	for _, r := range rows {
		maxSubs = maxOf(maxSubs, r.AvgSubscribers)
		maxEng = maxOf(maxEng, r.AvgEngagement)
		maxVideos = maxOf(maxVideos, r.AvgVideoCount)
	}
	for i := range rows {
		rows[i].SubscriberIndex = scaleTo100(rows[i].AvgSubscribers, maxSubs)
		rows[i].EngagementIndex = scaleTo100(rows[i].AvgEngagement, maxEng)
		rows[i].VideoCountIndex = scaleTo100(rows[i].AvgVideoCount, maxVideos)
	}
}

func orderGroups(dim GroupDimension, rows []model.GroupRow) {
	switch dim {
	case GroupByCadence:
		sortByDeclaredOrder(rows, cadenceGroupOrder)
	case GroupByRevenue:
		sort.Slice(rows, func(i, j int) bool {
			return RevenueTierOrdinal(rows[i].Key) < RevenueTierOrdinal(rows[j].Key)
		})
	default:
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].AvgSubscribers != rows[j].AvgSubscribers {
				return rows[i].AvgSubscribers > rows[j].AvgSubscribers
			}
			return rows[i].Key < rows[j].Key
		})
	}
}

// sortByDeclaredOrder sorts rows by position in the declared key list;
// unknown keys sort last, alphabetically.
func sortByDeclaredOrder(rows []model.GroupRow, order []string) {
	pos := make(map[string]int, len(order))
	for i, key := range order {
		pos[key] = i
	}
	sort.Slice(rows, func(i, j int) bool {
		pi, iOK := pos[rows[i].Key]
		pj, jOK := pos[rows[j].Key]
		switch {
		case iOK && jOK:
			return pi < pj
		case iOK:
			return true
		case jOK:
			return false
		default:
			return rows[i].Key < rows[j].Key
		}
	})
}

func scaleTo100(raw, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return raw / max * 100
}

func maxOf(a, b float64) float64 {
	if b > a {
		return b
	}
	return a
}
