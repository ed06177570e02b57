package analytics

import (
	"time"

	"github.com/mlachapelle/creatorlens/internal/model"
)

// ComputeVideoStats groups video rows by channel and derives the per-creator
// split statistics. Videos without a channel reference are skipped; a
// channel id that matches no creator row still gets an entry here, since
// the join against creators happens downstream and orphans fall out there.
func ComputeVideoStats(videos []model.Video) map[string]*model.VideoStats {
	groups := make(map[string][]model.Video)
	for _, v := range videos {
		if v.ChannelID == nil || *v.ChannelID == "" {
			continue
		}
		groups[*v.ChannelID] = append(groups[*v.ChannelID], v)
	}

	stats := make(map[string]*model.VideoStats, len(groups))
	for channelID, group := range groups {
		stats[channelID] = computeChannelStats(group)
	}
	return stats
}

// computeChannelStats derives one creator's VideoStats from its video group.
func computeChannelStats(group []model.Video) *model.VideoStats {
	var shorts, fulls []model.Video
	for _, v := range group {
		if v.IsShort() {
			shorts = append(shorts, v)
		} else {
			fulls = append(fulls, v)
		}
	}

	s := &model.VideoStats{VideoCount: len(group)}

	s.AvgViewsShort = meanViews(shorts)
	s.AvgViewsFull = meanViews(fulls)
	s.AvgDurationShort = meanDuration(shorts)
	s.AvgDurationFull = meanDuration(fulls)

	// Per-video engagement: only videos that actually have views count.
	// A zero-view video carries no engagement signal; it is excluded,
	// not treated as 0%.
	var engSum float64
	var engCount int
	for _, v := range group {
		views := ToNum(v.Views)
		if views <= 0 {
			continue
		}
		engSum += (ToNum(v.Likes) + ToNum(v.Comments)) / views * 100
		engCount++
	}
	if engCount > 0 {
		s.AvgEngagement = ptr(engSum / float64(engCount))
	}

	// Likes/comments percentages are ratio-of-sums across the whole group.
	var viewSum, likeSum, commentSum float64
	for _, v := range group {
		viewSum += ToNum(v.Views)
		likeSum += ToNum(v.Likes)
		commentSum += ToNum(v.Comments)
	}
	if viewSum > 0 {
		s.AvgLikesPct = ptr(likeSum / viewSum * 100)
		s.AvgCommentsPct = ptr(commentSum / viewSum * 100)
	}

	s.FreqShort = partitionCadence(shorts)
	s.FreqFull = partitionCadence(fulls)

	return s
}

func meanViews(part []model.Video) *float64 {
	if len(part) == 0 {
		return nil
	}
	var sum float64
	for _, v := range part {
		sum += ToNum(v.Views)
	}
	return ptr(sum / float64(len(part)))
}

func meanDuration(part []model.Video) *float64 {
	if len(part) == 0 {
		return nil
	}
	var sum float64
	for _, v := range part {
		if v.Duration != nil {
			sum += ToNum(*v.Duration)
		}
	}
	return ptr(sum / float64(len(part)))
}

// partitionCadence classifies one partition's upload cadence from its size
// and publish-date span.
func partitionCadence(part []model.Video) *string {
	var minDate, maxDate *time.Time
	for _, v := range part {
		if v.PublishedDate == nil {
			continue
		}
		d := *v.PublishedDate
		if minDate == nil || d.Before(*minDate) {
			minDate = &d
		}
		if maxDate == nil || d.After(*maxDate) {
			maxDate = &d
		}
	}
	return ClassifyCadence(len(part), minDate, maxDate)
}

func ptr[T any](v T) *T {
	return &v
}
