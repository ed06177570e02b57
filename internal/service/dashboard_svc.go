package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"github.com/mlachapelle/creatorlens/internal/analytics"
	"github.com/mlachapelle/creatorlens/internal/model"
)

// Dashboard section names, used in cache keys and routes.
const (
	SectionCreators   = "creators"
	SectionScores     = "scores"
	SectionRegression = "regression"
	SectionHistogram  = "histogram"
)

// ErrNoSnapshot is returned before the first successful refresh.
var ErrNoSnapshot = errors.New("no snapshot loaded yet")

// Derived is the complete set of render-ready structures computed from one
// snapshot. It is built fresh on every refresh and swapped in atomically;
// nothing ever mutates a published Derived.
type Derived struct {
	Version     string
	GeneratedAt time.Time
	SnapshotAt  time.Time

	Creators  []model.CreatorResponse
	Stats     map[string]*model.VideoStats
	Scores    []model.ScoreRow
	Line      []model.RegressionPoint
	Groups    map[analytics.GroupDimension][]model.GroupRow
	Histogram []model.HistogramRow
}

// DashboardService owns the current derived set and serves cached JSON
// renditions of its sections.
type DashboardService struct {
	cache   *CacheService
	current atomic.Pointer[Derived]

	// onCacheEvent, when set, observes cache hits and misses (for metrics).
	onCacheEvent func(hit bool)
}

func NewDashboardService(cache *CacheService) *DashboardService {
	return &DashboardService{cache: cache}
}

// OnCacheEvent registers a cache hit/miss observer. Call before serving.
func (s *DashboardService) OnCacheEvent(fn func(hit bool)) {
	s.onCacheEvent = fn
}

// Compute derives every dashboard structure from one snapshot. Pure with
// respect to the snapshot: no service state is read or written, so a caller
// may compute from several snapshots concurrently and swap in whichever
// finished last.
func (s *DashboardService) Compute(snap *analytics.Snapshot) *Derived {
	stats := analytics.ComputeVideoStats(snap.Videos)
	scores := analytics.ComputeScores(snap.Creators, stats)

	totals := make(map[string]float64, len(scores))
	for _, row := range scores {
		totals[row.ChannelID] = row.Total
	}
	creators := make([]model.CreatorResponse, 0, len(snap.Creators))
	for _, c := range snap.Creators {
		creators = append(creators, model.CreatorResponse{
			Creator:        c,
			CompositeScore: totals[c.ChannelID],
		})
	}

	points := make([]analytics.RegressionInput, 0, len(snap.Creators))
	for _, c := range snap.Creators {
		points = append(points, analytics.RegressionInput{
			TotalViews:  snap.ChannelTotalViews(c.ChannelID),
			Subscribers: float64(c.Subscribers),
		})
	}

	groups := map[analytics.GroupDimension][]model.GroupRow{
		analytics.GroupByCadence: analytics.GroupComparison(analytics.GroupByCadence, snap.Creators, stats),
		analytics.GroupByNiche:   analytics.GroupComparison(analytics.GroupByNiche, snap.Creators, stats),
		analytics.GroupByRevenue: analytics.GroupComparison(analytics.GroupByRevenue, snap.Creators, stats),
	}

	return &Derived{
		Version:     snap.Version(),
		GeneratedAt: time.Now().UTC(),
		SnapshotAt:  snap.FetchedAt,
		Creators:    creators,
		Stats:       stats,
		Scores:      scores,
		Line:        analytics.FitPowerLaw(points),
		Groups:      groups,
		Histogram: analytics.DensifyHistogram(
			snap.DurationHistogram(),
			analytics.DurationBucketMin,
			analytics.DurationBucketMax,
			analytics.DurationBucketLabel,
		),
	}
}

// Swap publishes a newly computed derived set. A candidate built from an
// older snapshot than the current one is discarded: the stale result loses.
func (s *DashboardService) Swap(d *Derived) bool {
	for {
		cur := s.current.Load()
		if cur != nil && !d.SnapshotAt.After(cur.SnapshotAt) {
			return false
		}
		if s.current.CompareAndSwap(cur, d) {
			return true
		}
	}
}

// Current returns the latest published derived set, or ErrNoSnapshot before
// the first refresh completes.
func (s *DashboardService) Current() (*Derived, error) {
	d := s.current.Load()
	if d == nil {
		return nil, ErrNoSnapshot
	}
	return d, nil
}

// SectionJSON returns the rendered JSON payload for a dashboard section,
// cache-aside against Redis keyed by section and snapshot version.
func (s *DashboardService) SectionJSON(ctx context.Context, section string) ([]byte, error) {
	d, err := s.Current()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, err := s.cache.GetSection(ctx, section, d.Version)
		if err != nil {
			log.Printf("cache: section %s get error: %v", section, err)
		} else if cached != nil {
			if s.onCacheEvent != nil {
				s.onCacheEvent(true)
			}
			return cached, nil
		}
		if s.onCacheEvent != nil {
			s.onCacheEvent(false)
		}
	}

	payload, err := s.renderSection(d, section)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetSection(ctx, section, d.Version, payload); err != nil {
			log.Printf("cache: section %s set error: %v", section, err)
		}
	}
	return payload, nil
}

// GroupJSON is SectionJSON for one grouping dimension.
func (s *DashboardService) GroupJSON(ctx context.Context, dim analytics.GroupDimension) ([]byte, error) {
	return s.SectionJSON(ctx, "groups:"+string(dim))
}

// ChannelStats returns the derived VideoStats for one channel; ok is false
// when the channel has no videos in the current snapshot.
func (s *DashboardService) ChannelStats(channelID string) (*model.VideoStats, bool, error) {
	d, err := s.Current()
	if err != nil {
		return nil, false, err
	}
	stats, ok := d.Stats[channelID]
	return stats, ok, nil
}

func (s *DashboardService) renderSection(d *Derived, section string) ([]byte, error) {
	switch section {
	case SectionCreators:
		return json.Marshal(d.Creators)
	case SectionScores:
		return json.Marshal(d.Scores)
	case SectionRegression:
		return json.Marshal(d.Line)
	case SectionHistogram:
		return json.Marshal(d.Histogram)
	case "groups:" + string(analytics.GroupByCadence):
		return json.Marshal(d.Groups[analytics.GroupByCadence])
	case "groups:" + string(analytics.GroupByNiche):
		return json.Marshal(d.Groups[analytics.GroupByNiche])
	case "groups:" + string(analytics.GroupByRevenue):
		return json.Marshal(d.Groups[analytics.GroupByRevenue])
	default:
		return nil, errors.New("unknown dashboard section: " + section)
	}
}
