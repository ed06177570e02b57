package analytics

import (
	"fmt"
	"time"

	"github.com/mlachapelle/creatorlens/internal/model"
	"github.com/mlachapelle/creatorlens/pkg/hash"
)

// Precomputed carries store-side aggregates delivered alongside the raw
// rows. When a statistic is present here it is preferred over deriving the
// same number from raw video rows; derivation is the fallback, not the
// default.
type Precomputed struct {
	// ChannelTotalViews maps channel id to the store's summed view count.
	ChannelTotalViews map[string]int64
	// DurationHistogram is the store's sparse duration bucket counts.
	DurationHistogram map[int]int
}

// Snapshot is one immutable load of the input set. Every derived structure
// is a pure function of a snapshot; a new load replaces the whole thing and
// everything downstream is rebuilt from scratch.
type Snapshot struct {
	Creators    []model.Creator
	Videos      []model.Video
	Precomputed Precomputed
	FetchedAt   time.Time
}

// Version returns a short identity hash for the snapshot, used as the cache
// key component for derived payloads. Two loads at different times are
// distinct versions even if the row counts happen to match.
func (s *Snapshot) Version() string {
	seed := fmt.Sprintf("%d:%d:%d", len(s.Creators), len(s.Videos), s.FetchedAt.UnixNano())
	return hash.SHA256Hex(seed)[:16]
}

// ChannelTotalViews returns the total view count for a channel, preferring
// the store's precomputed aggregate and falling back to summing that
// channel's raw video rows only when the aggregate is absent.
func (s *Snapshot) ChannelTotalViews(channelID string) float64 {
	if total, ok := s.Precomputed.ChannelTotalViews[channelID]; ok {
		return float64(total)
	}
	var sum float64
	for _, v := range s.Videos {
		if v.ChannelID != nil && *v.ChannelID == channelID {
			sum += ToNum(v.Views)
		}
	}
	return sum
}

// DurationHistogram returns the sparse duration distribution, preferring the
// store's precomputed buckets over deriving them from raw rows.
func (s *Snapshot) DurationHistogram() map[int]int {
	if len(s.Precomputed.DurationHistogram) > 0 {
		return s.Precomputed.DurationHistogram
	}
	return DurationHistogramFromVideos(s.Videos)
}
