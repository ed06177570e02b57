package analytics

import (
	"testing"
	"time"

	"github.com/mlachapelle/creatorlens/internal/model"
)

func video(channelID string, views, likes, comments int64) model.Video {
	return model.Video{
		VideoID:   "v",
		ChannelID: &channelID,
		Views:     views,
		Likes:     likes,
		Comments:  comments,
	}
}

func TestComputeVideoStats_EmptyInput(t *testing.T) {
	stats := ComputeVideoStats(nil)
	if len(stats) != 0 {
		t.Errorf("expected no stats for empty input, got %d entries", len(stats))
	}
}

func TestComputeVideoStats_SkipsVideosWithoutChannel(t *testing.T) {
	empty := ""
	videos := []model.Video{
		{VideoID: "orphan-nil", Views: 100},
		{VideoID: "orphan-empty", ChannelID: &empty, Views: 100},
		video("UC1", 50, 5, 1),
	}
	stats := ComputeVideoStats(videos)
	if len(stats) != 1 {
		t.Fatalf("got %d channels, want 1", len(stats))
	}
	if stats["UC1"].VideoCount != 1 {
		t.Errorf("UC1 video count = %d, want 1", stats["UC1"].VideoCount)
	}
}

func TestComputeVideoStats_ZeroViewVideoExcludedFromEngagement(t *testing.T) {
	// One viewed video, one dead one. Likes/comments pcts
	// are ratio-of-sums; the zero-view video is excluded from the
	// per-video engagement mean entirely, not averaged in as 0%.
	videos := []model.Video{
		video("UC1", 100, 20, 10),
		video("UC1", 0, 0, 0),
	}
	s := ComputeVideoStats(videos)["UC1"]

	if s.AvgLikesPct == nil || !almostEqual(*s.AvgLikesPct, 20, 1e-9) {
		t.Errorf("avgLikesPct = %v, want 20", deref(s.AvgLikesPct))
	}
	if s.AvgCommentsPct == nil || !almostEqual(*s.AvgCommentsPct, 10, 1e-9) {
		t.Errorf("avgCommentsPct = %v, want 10", deref(s.AvgCommentsPct))
	}
	// (20+10)/100*100 = 30 from the single viewed video
	if s.AvgEngagement == nil || !almostEqual(*s.AvgEngagement, 30, 1e-9) {
		t.Errorf("avgEngagement = %v, want 30 (zero-view video excluded)", deref(s.AvgEngagement))
	}
}

func TestComputeVideoStats_AllZeroViewsYieldsNil(t *testing.T) {
	videos := []model.Video{
		video("UC1", 0, 0, 0),
		video("UC1", 0, 3, 1),
	}
	s := ComputeVideoStats(videos)["UC1"]

	if s.AvgEngagement != nil {
		t.Errorf("avgEngagement = %v, want nil when no video has views", *s.AvgEngagement)
	}
	if s.AvgLikesPct != nil {
		t.Errorf("avgLikesPct = %v, want nil when sum(views) == 0", *s.AvgLikesPct)
	}
	if s.AvgCommentsPct != nil {
		t.Errorf("avgCommentsPct = %v, want nil when sum(views) == 0", *s.AvgCommentsPct)
	}
}

func TestComputeVideoStats_ShortFullSplit(t *testing.T) {
	dur := func(m float64) *float64 { return &m }
	ch := "UC1"
	videos := []model.Video{
		{ChannelID: &ch, Views: 1000, DurationType: model.DurationShort, Duration: dur(0.5)},
		{ChannelID: &ch, Views: 3000, DurationType: model.DurationShort, Duration: dur(1)},
		{ChannelID: &ch, Views: 200, DurationType: model.DurationFull, Duration: dur(12)},
		// Unlabeled duration type lands in the full partition
		{ChannelID: &ch, Views: 400, Duration: dur(8)},
	}
	s := ComputeVideoStats(videos)["UC1"]

	if s.VideoCount != 4 {
		t.Errorf("videoCount = %d, want 4", s.VideoCount)
	}
	if s.AvgViewsShort == nil || *s.AvgViewsShort != 2000 {
		t.Errorf("avgViewsShort = %v, want 2000", deref(s.AvgViewsShort))
	}
	if s.AvgViewsFull == nil || *s.AvgViewsFull != 300 {
		t.Errorf("avgViewsFull = %v, want 300", deref(s.AvgViewsFull))
	}
	if s.AvgDurationShort == nil || !almostEqual(*s.AvgDurationShort, 0.75, 1e-9) {
		t.Errorf("avgDurationShort = %v, want 0.75", deref(s.AvgDurationShort))
	}
	if s.AvgDurationFull == nil || !almostEqual(*s.AvgDurationFull, 10, 1e-9) {
		t.Errorf("avgDurationFull = %v, want 10", deref(s.AvgDurationFull))
	}
}

func TestComputeVideoStats_EmptyPartitionIsNil(t *testing.T) {
	ch := "UC1"
	videos := []model.Video{
		{ChannelID: &ch, Views: 100, DurationType: model.DurationFull},
	}
	s := ComputeVideoStats(videos)["UC1"]

	if s.AvgViewsShort != nil {
		t.Errorf("avgViewsShort = %v, want nil for empty short partition", *s.AvgViewsShort)
	}
	if s.FreqShort != nil {
		t.Errorf("freqShort = %v, want nil for empty short partition", *s.FreqShort)
	}
}

func TestComputeVideoStats_PartitionCadence(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ch := "UC1"
	at := func(days int) *time.Time {
		d := base.AddDate(0, 0, days)
		return &d
	}
	// 3 full-length uploads across 14 days → 1.5/wk → "2x/wk"
	videos := []model.Video{
		{ChannelID: &ch, Views: 10, DurationType: model.DurationFull, PublishedDate: at(0)},
		{ChannelID: &ch, Views: 10, DurationType: model.DurationFull, PublishedDate: at(7)},
		{ChannelID: &ch, Views: 10, DurationType: model.DurationFull, PublishedDate: at(14)},
		// Lone short upload: insufficient for classification
		{ChannelID: &ch, Views: 10, DurationType: model.DurationShort, PublishedDate: at(3)},
	}
	s := ComputeVideoStats(videos)["UC1"]

	if s.FreqFull == nil || *s.FreqFull != Cadence2xWk {
		t.Errorf("freqFull = %v, want %q", deref2(s.FreqFull), Cadence2xWk)
	}
	if s.FreqShort != nil {
		t.Errorf("freqShort = %v, want nil for a single upload", *s.FreqShort)
	}
}

func deref(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func deref2(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
