package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mlachapelle/creatorlens/internal/analytics"
	"github.com/mlachapelle/creatorlens/internal/model"
)

type VideoRepo struct {
	pool *pgxpool.Pool
}

func NewVideoRepo(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pool: pool}
}

// ListAll returns every video row for the snapshot. Orphan channel
// references are kept as-is; aggregation ignores them.
func (r *VideoRepo) ListAll(ctx context.Context) ([]model.Video, error) {
	query := `
		SELECT video_id, channel_id, title, views, likes, comments,
		       duration, duration_type, has_transcript, has_summary, published_date
		FROM videos
		ORDER BY video_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []model.Video
	for rows.Next() {
		var v model.Video
		err := rows.Scan(
			&v.VideoID, &v.ChannelID, &v.Title, &v.Views, &v.Likes, &v.Comments,
			&v.Duration, &v.DurationType, &v.HasTranscript, &v.HasSummary, &v.PublishedDate,
		)
		if err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// DurationHistogram returns the store-side sparse duration bucket counts;
// the database does the binning. Bucket keys follow the declared dashboard
// range: minutes 1..21 with 21 as overflow.
// This is the precomputed path; absence falls back to deriving the same
// buckets from raw rows.
func (r *VideoRepo) DurationHistogram(ctx context.Context) (map[int]int, error) {
	query := `
		SELECT LEAST(GREATEST(CEIL(duration)::int, $1), $2) AS bucket, COUNT(*)
		FROM videos
		WHERE duration IS NOT NULL AND duration > 0
		GROUP BY bucket`

	rows, err := r.pool.Query(ctx, query, analytics.DurationBucketMin, analytics.DurationBucketMax)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sparse := make(map[int]int)
	for rows.Next() {
		var bucket, count int
		if err := rows.Scan(&bucket, &count); err != nil {
			return nil, err
		}
		sparse[bucket] = count
	}
	return sparse, rows.Err()
}
