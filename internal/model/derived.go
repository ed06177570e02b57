package model

// VideoStats holds the per-creator split statistics derived from that
// creator's video rows. Pointer fields distinguish "no data" from a genuine
// zero: an empty partition or a creator with no viewed videos yields nil,
// never 0.
type VideoStats struct {
	VideoCount       int      `json:"videoCount"`
	AvgViewsShort    *float64 `json:"avgViewsShort,omitempty"`
	AvgViewsFull     *float64 `json:"avgViewsFull,omitempty"`
	AvgEngagement    *float64 `json:"avgEngagement,omitempty"`
	AvgLikesPct      *float64 `json:"avgLikesPct,omitempty"`
	AvgCommentsPct   *float64 `json:"avgCommentsPct,omitempty"`
	FreqShort        *string  `json:"freqShort,omitempty"`
	FreqFull         *string  `json:"freqFull,omitempty"`
	AvgDurationShort *float64 `json:"avgDurationShort,omitempty"`
	AvgDurationFull  *float64 `json:"avgDurationFull,omitempty"`
}

// ScoreRow is one creator's composite ranking entry. Each component is the
// creator's percentile rank on that metric already multiplied by its weight
// and rounded to one decimal; Total is the weighted sum rounded to one
// decimal. Rows are ephemeral and rebuilt on every snapshot.
type ScoreRow struct {
	ChannelID       string  `json:"channelId"`
	Name            string  `json:"name"`
	SubscriberScore float64 `json:"subscriberScore"`
	EngagementScore float64 `json:"engagementScore"`
	RatioScore      float64 `json:"ratioScore"`
	VolumeScore     float64 `json:"volumeScore"`
	Total           float64 `json:"total"`
}

// HistogramRow is one bucket of a dense, gap-free distribution.
type HistogramRow struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

// RegressionPoint is one sample of the fitted subscriber/views overlay line.
type RegressionPoint struct {
	TotalViews  float64 `json:"totalViews"`
	Subscribers float64 `json:"subscribers"`
}

// GroupRow is one categorical group's comparison entry. The Avg* fields are
// raw group means; the *Index fields are the same means rescaled to 0-100
// against the best group for each metric independently.
type GroupRow struct {
	Key             string  `json:"key"`
	Creators        int     `json:"creators"`
	AvgSubscribers  float64 `json:"avgSubscribers"`
	AvgEngagement   float64 `json:"avgEngagement"`
	AvgVideoCount   float64 `json:"avgVideoCount"`
	SubscriberIndex float64 `json:"subscriberIndex"`
	EngagementIndex float64 `json:"engagementIndex"`
	VideoCountIndex float64 `json:"videoCountIndex"`
}
