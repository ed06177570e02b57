package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mlachapelle/creatorlens/internal/model"
)

type CreatorRepo struct {
	pool *pgxpool.Pool
}

func NewCreatorRepo(pool *pgxpool.Pool) *CreatorRepo {
	return &CreatorRepo{pool: pool}
}

// ListAll returns every active creator row. The dashboard recomputes from
// whole snapshots, so there is no pagination here by design.
func (r *CreatorRepo) ListAll(ctx context.Context) ([]model.Creator, error) {
	query := `
		SELECT channel_id, channel_name, subscribers, total_views, video_count,
		       views_to_sub_ratio, avg_views_per_video, upload_frequency,
		       top_content_type, est_revenue_range, monetization,
		       competitive_threat, status
		FROM creators
		WHERE status != 'archived'
		ORDER BY channel_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creators []model.Creator
	for rows.Next() {
		var c model.Creator
		err := rows.Scan(
			&c.ChannelID, &c.ChannelName, &c.Subscribers, &c.TotalViews, &c.VideoCount,
			&c.ViewsToSubRatio, &c.AvgViewsPerVideo, &c.UploadFrequency,
			&c.TopContentType, &c.EstRevenueRange, &c.Monetization,
			&c.CompetitiveThreat, &c.Status,
		)
		if err != nil {
			return nil, err
		}
		creators = append(creators, c)
	}
	return creators, rows.Err()
}

// ChannelTotalViews returns the store-side per-channel view sums. This is
// the precomputed path; when the query fails or comes back empty the caller
// derives the same numbers from raw video rows instead.
func (r *CreatorRepo) ChannelTotalViews(ctx context.Context) (map[string]int64, error) {
	query := `
		SELECT channel_id, COALESCE(SUM(views), 0) AS total_views
		FROM videos
		WHERE channel_id IS NOT NULL
		GROUP BY channel_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int64)
	for rows.Next() {
		var channelID string
		var total int64
		if err := rows.Scan(&channelID, &total); err != nil {
			return nil, err
		}
		totals[channelID] = total
	}
	return totals, rows.Err()
}
