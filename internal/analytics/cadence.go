package analytics

import "time"

// Upload cadence labels, most to least frequent. The classifier emits the
// first six; Irregular only arrives on creator rows from the upstream store
// and participates in grouping and ordering, never in classification.
const (
	CadenceDaily     = "Daily"
	Cadence3to4Wk    = "3-4x/wk"
	Cadence2xWk      = "2x/wk"
	CadenceWeekly    = "Weekly"
	CadenceBiWeekly  = "Bi-Weekly"
	CadenceMonthly   = "Monthly"
	CadenceIrregular = "Irregular"
)

// Classification thresholds in uploads per week. First match wins, bounds
// inclusive. These are fixed business constants; do not tune.
const (
	dailyPerWeek     = 5.0
	threeFourPerWeek = 3.0
	twicePerWeek     = 1.5
	weeklyPerWeek    = 0.8
	biWeeklyPerWeek  = 0.4
)

// ClassifyCadence converts a partition's video count and publish-date span
// into a cadence label. Returns nil for insufficient data: fewer than two
// videos, a missing date, or a non-positive span. That is "unknown", not an
// error.
func ClassifyCadence(count int, minDate, maxDate *time.Time) *string {
	if count < 2 || minDate == nil || maxDate == nil {
		return nil
	}
	days := maxDate.Sub(*minDate).Hours() / 24
	if days <= 0 {
		return nil
	}

	perWeek := float64(count) / days * 7

	var label string
	switch {
	case perWeek >= dailyPerWeek:
		label = CadenceDaily
	case perWeek >= threeFourPerWeek:
		label = Cadence3to4Wk
	case perWeek >= twicePerWeek:
		label = Cadence2xWk
	case perWeek >= weeklyPerWeek:
		label = CadenceWeekly
	case perWeek >= biWeeklyPerWeek:
		label = CadenceBiWeekly
	default:
		label = CadenceMonthly
	}
	return &label
}

// cadenceOrdinals maps the six classifier labels to ordinals 1 (least
// frequent) through 6 (most frequent). Exact string match only; anything
// else, including Irregular, is 0.
var cadenceOrdinals = map[string]int{
	CadenceMonthly:  1,
	CadenceBiWeekly: 2,
	CadenceWeekly:   3,
	Cadence2xWk:     4,
	Cadence3to4Wk:   5,
	CadenceDaily:    6,
}

// CadenceOrdinal returns the ordinal for a cadence label, 0 when unknown.
func CadenceOrdinal(label string) int {
	return cadenceOrdinals[label]
}

// ConsistencyScore maps a cadence label onto a 0-100 axis for radar charts:
// ordinal/6*100, so Daily scores 100 and an unknown label 0.
func ConsistencyScore(label string) float64 {
	return float64(CadenceOrdinal(label)) / 6 * 100
}

// Estimated monthly revenue tiers, low to high. The set is fixed at five
// labels; matching is exact.
var RevenueTiers = []string{
	"$0-$100/mo",
	"$100-$1K/mo",
	"$1K-$10K/mo",
	"$10K-$100K/mo",
	"$100K+/mo",
}

var revenueTierOrdinals = func() map[string]int {
	m := make(map[string]int, len(RevenueTiers))
	for i, tier := range RevenueTiers {
		m[tier] = i + 1
	}
	return m
}()

// RevenueTierOrdinal returns 1-5 for a known tier label, 0 otherwise.
func RevenueTierOrdinal(label string) int {
	return revenueTierOrdinals[label]
}

// RevenueTierLabel is the inverse mapping; empty string for ordinals
// outside 1-5.
func RevenueTierLabel(ordinal int) string {
	if ordinal < 1 || ordinal > len(RevenueTiers) {
		return ""
	}
	return RevenueTiers[ordinal-1]
}
