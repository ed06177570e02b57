package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mlachapelle/creatorlens/internal/analytics"
	"github.com/mlachapelle/creatorlens/internal/repository"
)

// SnapshotService loads whole input snapshots from the backing store. Every
// load replaces the entire set; there is no delta path.
type SnapshotService struct {
	creators *repository.CreatorRepo
	videos   *repository.VideoRepo
}

func NewSnapshotService(creators *repository.CreatorRepo, videos *repository.VideoRepo) *SnapshotService {
	return &SnapshotService{creators: creators, videos: videos}
}

// Load fetches creator and video rows plus whatever precomputed aggregates
// the store can supply. Aggregate queries failing is not fatal: the
// analytics layer derives the same statistics from raw rows when the
// precomputed maps are empty.
func (s *SnapshotService) Load(ctx context.Context) (*analytics.Snapshot, error) {
	creators, err := s.creators.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load creators: %w", err)
	}

	videos, err := s.videos.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load videos: %w", err)
	}

	snap := &analytics.Snapshot{
		Creators:  creators,
		Videos:    videos,
		FetchedAt: time.Now().UTC(),
	}

	totals, err := s.creators.ChannelTotalViews(ctx)
	if err != nil {
		log.Printf("snapshot: precomputed totals unavailable, will derive from raw rows: %v", err)
	} else {
		snap.Precomputed.ChannelTotalViews = totals
	}

	histogram, err := s.videos.DurationHistogram(ctx)
	if err != nil {
		log.Printf("snapshot: precomputed histogram unavailable, will derive from raw rows: %v", err)
	} else {
		snap.Precomputed.DurationHistogram = histogram
	}

	return snap, nil
}
