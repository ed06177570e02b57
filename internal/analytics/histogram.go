package analytics

import (
	"math"
	"strconv"

	"github.com/mlachapelle/creatorlens/internal/model"
)

// Duration histogram bucket range in minutes. The final bucket absorbs
// everything at or beyond 21 minutes.
const (
	DurationBucketMin = 1
	DurationBucketMax = 21
)

// DensifyHistogram fills a sparse bucket count map into a complete ordered
// sequence over [minKey, maxKey]. Every declared key appears exactly once;
// missing keys get count 0. Downstream chart consumers assume a dense,
// gap-free axis and are never handed one with holes.
func DensifyHistogram(sparse map[int]int, minKey, maxKey int, label func(int) string) []model.HistogramRow {
	if maxKey < minKey {
		return []model.HistogramRow{}
	}
	rows := make([]model.HistogramRow, 0, maxKey-minKey+1)
	for key := minKey; key <= maxKey; key++ {
		rows = append(rows, model.HistogramRow{
			Bucket: label(key),
			Count:  sparse[key],
		})
	}
	return rows
}

// DurationBucketLabel renders a duration bucket key, with the overflow
// bucket shown as "21+".
func DurationBucketLabel(key int) string {
	if key >= DurationBucketMax {
		return strconv.Itoa(DurationBucketMax) + "+"
	}
	return strconv.Itoa(key)
}

// DurationHistogramFromVideos derives the sparse duration distribution from
// raw video rows: bucket k covers durations in (k-1, k] minutes, clamped
// into [1, 21]. Used only when the store's precomputed histogram is absent.
func DurationHistogramFromVideos(videos []model.Video) map[int]int {
	sparse := make(map[int]int)
	for _, v := range videos {
		if v.Duration == nil {
			continue
		}
		minutes := ToNum(*v.Duration)
		if minutes <= 0 {
			continue
		}
		bucket := int(math.Ceil(minutes))
		if bucket < DurationBucketMin {
			bucket = DurationBucketMin
		}
		if bucket > DurationBucketMax {
			bucket = DurationBucketMax
		}
		sparse[bucket]++
	}
	return sparse
}
