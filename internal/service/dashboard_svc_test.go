package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mlachapelle/creatorlens/internal/analytics"
	"github.com/mlachapelle/creatorlens/internal/model"
)

func testSnapshot(fetchedAt time.Time) *analytics.Snapshot {
	ch1, ch2 := "UC1", "UC2"
	dur := func(m float64) *float64 { return &m }
	return &analytics.Snapshot{
		Creators: []model.Creator{
			{ChannelID: ch1, ChannelName: "Alpha", Subscribers: 1000, ViewsToSubRatio: 3, VideoCount: 2},
			{ChannelID: ch2, ChannelName: "Beta", Subscribers: 50_000, ViewsToSubRatio: 8, VideoCount: 2},
		},
		Videos: []model.Video{
			{VideoID: "a1", ChannelID: &ch1, Views: 500, Likes: 50, Comments: 10, Duration: dur(3)},
			{VideoID: "a2", ChannelID: &ch1, Views: 1500, Likes: 30, Comments: 5, Duration: dur(12)},
			{VideoID: "b1", ChannelID: &ch2, Views: 90_000, Likes: 4000, Comments: 900, Duration: dur(8)},
			{VideoID: "b2", ChannelID: &ch2, Views: 110_000, Likes: 6000, Comments: 1100, Duration: dur(45)},
		},
		FetchedAt: fetchedAt,
	}
}

func TestCompute_DerivesAllSections(t *testing.T) {
	svc := NewDashboardService(nil)
	d := svc.Compute(testSnapshot(time.Now()))

	if len(d.Stats) != 2 {
		t.Errorf("stats for %d channels, want 2", len(d.Stats))
	}
	if len(d.Scores) != 2 {
		t.Errorf("%d score rows, want 2", len(d.Scores))
	}
	if d.Scores[0].ChannelID != "UC2" {
		t.Errorf("top score = %q, want UC2 (leads on subscribers and ratio)", d.Scores[0].ChannelID)
	}
	if len(d.Line) != 51 {
		t.Errorf("regression line has %d points, want 51", len(d.Line))
	}
	if len(d.Histogram) != analytics.DurationBucketMax {
		t.Errorf("histogram has %d buckets, want %d", len(d.Histogram), analytics.DurationBucketMax)
	}
	if len(d.Groups) != 3 {
		t.Errorf("%d group dimensions, want 3", len(d.Groups))
	}
	if d.Version == "" {
		t.Error("derived set has no version")
	}
}

func TestCompute_PrefersPrecomputedHistogram(t *testing.T) {
	snap := testSnapshot(time.Now())
	// Store-side histogram disagrees with what raw rows would produce;
	// the precomputed numbers must win.
	snap.Precomputed.DurationHistogram = map[int]int{5: 99}

	d := NewDashboardService(nil).Compute(snap)

	var bucket5 model.HistogramRow
	for _, row := range d.Histogram {
		if row.Bucket == "5" {
			bucket5 = row
		}
	}
	if bucket5.Count != 99 {
		t.Errorf("bucket 5 count = %d, want 99 (precomputed preferred)", bucket5.Count)
	}
}

func TestCompute_DerivesHistogramWhenPrecomputedAbsent(t *testing.T) {
	d := NewDashboardService(nil).Compute(testSnapshot(time.Now()))

	// Raw durations 3, 12, 8, 45 → buckets 3, 12, 8, 21+.
	counts := make(map[string]int)
	for _, row := range d.Histogram {
		counts[row.Bucket] = row.Count
	}
	for _, bucket := range []string{"3", "8", "12", "21+"} {
		if counts[bucket] != 1 {
			t.Errorf("bucket %s count = %d, want 1 (derived from raw rows)", bucket, counts[bucket])
		}
	}
}

func TestCompute_PrefersPrecomputedTotalViews(t *testing.T) {
	snap := testSnapshot(time.Now())
	if got := snap.ChannelTotalViews("UC1"); got != 2000 {
		t.Fatalf("derived total views = %v, want 2000", got)
	}

	snap.Precomputed.ChannelTotalViews = map[string]int64{"UC1": 777}
	if got := snap.ChannelTotalViews("UC1"); got != 777 {
		t.Errorf("total views = %v, want precomputed 777", got)
	}
	// UC2 is absent from the precomputed map and still derives.
	if got := snap.ChannelTotalViews("UC2"); got != 200_000 {
		t.Errorf("UC2 total views = %v, want derived 200000", got)
	}
}

func TestSwap_StaleResultDiscarded(t *testing.T) {
	svc := NewDashboardService(nil)
	now := time.Now()

	newer := svc.Compute(testSnapshot(now))
	older := svc.Compute(testSnapshot(now.Add(-time.Minute)))

	if !svc.Swap(newer) {
		t.Fatal("first publish should succeed")
	}
	if svc.Swap(older) {
		t.Error("stale derived set should be discarded")
	}

	current, err := svc.Current()
	if err != nil {
		t.Fatal(err)
	}
	if current != newer {
		t.Error("current should still be the newer derived set")
	}
}

func TestCurrent_BeforeFirstRefresh(t *testing.T) {
	svc := NewDashboardService(nil)
	if _, err := svc.Current(); err != ErrNoSnapshot {
		t.Errorf("err = %v, want ErrNoSnapshot", err)
	}
}

func TestSectionJSON_RendersWithoutCache(t *testing.T) {
	// Cache disabled (nil client); SectionJSON must still render.
	svc := NewDashboardService(NewCacheService(""))
	svc.Swap(svc.Compute(testSnapshot(time.Now())))

	payload, err := svc.SectionJSON(context.Background(), SectionScores)
	if err != nil {
		t.Fatal(err)
	}

	var rows []model.ScoreRow
	if err := json.Unmarshal(payload, &rows); err != nil {
		t.Fatalf("payload is not valid score JSON: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("%d rows in payload, want 2", len(rows))
	}
}

func TestSectionJSON_UnknownSection(t *testing.T) {
	svc := NewDashboardService(nil)
	svc.Swap(svc.Compute(testSnapshot(time.Now())))

	if _, err := svc.SectionJSON(context.Background(), "bogus"); err == nil {
		t.Error("expected error for unknown section")
	}
}
