package analytics

import (
	"testing"
	"time"
)

func dateOffset(base time.Time, days int) *time.Time {
	d := base.AddDate(0, 0, days)
	return &d
}

func TestClassifyCadence_InsufficientData(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	if got := ClassifyCadence(1, dateOffset(base, 0), dateOffset(base, 30)); got != nil {
		t.Errorf("count=1 should classify as nil, got %q", *got)
	}
	if got := ClassifyCadence(5, nil, dateOffset(base, 30)); got != nil {
		t.Errorf("missing minDate should classify as nil, got %q", *got)
	}
	if got := ClassifyCadence(5, dateOffset(base, 0), nil); got != nil {
		t.Errorf("missing maxDate should classify as nil, got %q", *got)
	}
	// Same-day uploads: zero span
	if got := ClassifyCadence(5, dateOffset(base, 0), dateOffset(base, 0)); got != nil {
		t.Errorf("zero span should classify as nil, got %q", *got)
	}
}

func TestClassifyCadence_Thresholds(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		count int
		days  int
		want  string
	}{
		// perWeek = count/days*7
		{"daily: 10 in 7 days", 10, 7, CadenceDaily},
		{"3-4x: 4 in 7 days", 4, 7, Cadence3to4Wk},
		{"2x boundary inclusive: 3 in 14 days = 1.5/wk", 3, 14, Cadence2xWk},
		{"weekly: 4 in 28 days = 1/wk", 4, 28, CadenceWeekly},
		{"bi-weekly: 2 in 28 days = 0.5/wk", 2, 28, CadenceBiWeekly},
		{"monthly: 2 in 60 days", 2, 60, CadenceMonthly},
		{"daily boundary inclusive: 5 in 7 days", 5, 7, CadenceDaily},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyCadence(tt.count, dateOffset(base, 0), dateOffset(base, tt.days))
			if got == nil {
				t.Fatalf("got nil, want %q", tt.want)
			}
			if *got != tt.want {
				t.Errorf("got %q, want %q", *got, tt.want)
			}
		})
	}
}

func TestCadenceOrdinal(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{CadenceMonthly, 1},
		{CadenceBiWeekly, 2},
		{CadenceWeekly, 3},
		{Cadence2xWk, 4},
		{Cadence3to4Wk, 5},
		{CadenceDaily, 6},
		{CadenceIrregular, 0},
		{"", 0},
		{"daily", 0}, // exact match only, no fuzzy casing
	}
	for _, tt := range tests {
		if got := CadenceOrdinal(tt.label); got != tt.want {
			t.Errorf("CadenceOrdinal(%q) = %d, want %d", tt.label, got, tt.want)
		}
	}
}

func TestConsistencyScore(t *testing.T) {
	if got := ConsistencyScore(CadenceDaily); got != 100 {
		t.Errorf("Daily consistency = %v, want 100", got)
	}
	if got := ConsistencyScore(CadenceMonthly); !almostEqual(got, 100.0/6, 1e-9) {
		t.Errorf("Monthly consistency = %v, want %v", got, 100.0/6)
	}
	if got := ConsistencyScore("unknown"); got != 0 {
		t.Errorf("unknown consistency = %v, want 0", got)
	}
}

func TestRevenueTierOrdinals_Bidirectional(t *testing.T) {
	for i, tier := range RevenueTiers {
		want := i + 1
		if got := RevenueTierOrdinal(tier); got != want {
			t.Errorf("RevenueTierOrdinal(%q) = %d, want %d", tier, got, want)
		}
		if got := RevenueTierLabel(want); got != tier {
			t.Errorf("RevenueTierLabel(%d) = %q, want %q", want, got, tier)
		}
	}

	if got := RevenueTierOrdinal("$5-$50/mo"); got != 0 {
		t.Errorf("unknown tier ordinal = %d, want 0", got)
	}
	if got := RevenueTierLabel(0); got != "" {
		t.Errorf("RevenueTierLabel(0) = %q, want empty", got)
	}
	if got := RevenueTierLabel(6); got != "" {
		t.Errorf("RevenueTierLabel(6) = %q, want empty", got)
	}
}
