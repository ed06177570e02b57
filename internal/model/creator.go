package model

// Creator represents a tracked channel with the aggregate attributes the
// research dashboard compares creators on. Rows are loaded as an immutable
// snapshot per refresh; nothing in this service mutates them.
type Creator struct {
	ChannelID         string   `json:"channelId"`
	ChannelName       string   `json:"channelName,omitempty"`
	Subscribers       int64    `json:"subscribers"`
	TotalViews        int64    `json:"totalViews"`
	VideoCount        int      `json:"videoCount"`
	ViewsToSubRatio   float64  `json:"viewsToSubRatio"`
	AvgViewsPerVideo  float64  `json:"avgViewsPerVideo"`
	UploadFrequency   *string  `json:"uploadFrequency,omitempty"`
	TopContentType    *string  `json:"topContentType,omitempty"`
	EstRevenueRange   *string  `json:"estRevenueRange,omitempty"`
	Monetization      []string `json:"monetization,omitempty"`
	CompetitiveThreat *string  `json:"competitiveThreat,omitempty"`
	Status            string   `json:"status,omitempty"`
}

// CreatorResponse is the API response for creator listings: the raw row plus
// the derived composite ranking score.
type CreatorResponse struct {
	Creator
	CompositeScore float64 `json:"compositeScore"`
}
