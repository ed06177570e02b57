package analytics

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ToNum coerces a raw wire value to a float64. Upstream rows arrive with
// numeric fields that may be null, a number, or a string depending on which
// query produced them; every read goes through here before arithmetic so
// NaN/Inf can never propagate into derived statistics.
//
// nil, unparsable strings, and non-finite values all coerce to 0. ToNum
// never panics.
func ToNum(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finiteOrZero(n)
	case float32:
		return finiteOrZero(float64(n))
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return finiteOrZero(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return finiteOrZero(f)
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
