package model

import "time"

// Duration type values as stored upstream. Anything that is not Short is
// treated as full-length by the aggregator.
const (
	DurationShort = "Short"
	DurationFull  = "Full"
)

// Video represents a single content item belonging to one creator.
// ChannelID is a soft reference: videos pointing at unknown channels are
// simply ignored by aggregation, never an error.
type Video struct {
	VideoID       string     `json:"videoId"`
	ChannelID     *string    `json:"channelId,omitempty"`
	Title         *string    `json:"title,omitempty"`
	Views         int64      `json:"views"`
	Likes         int64      `json:"likes"`
	Comments      int64      `json:"comments"`
	Duration      *float64   `json:"duration,omitempty"` // minutes
	DurationType  string     `json:"durationType,omitempty"`
	HasTranscript bool       `json:"hasTranscript"`
	HasSummary    bool       `json:"hasSummary"`
	PublishedDate *time.Time `json:"publishedDate,omitempty"`
}

// IsShort reports whether the video falls into the short-form partition.
func (v *Video) IsShort() bool {
	return v.DurationType == DurationShort
}
