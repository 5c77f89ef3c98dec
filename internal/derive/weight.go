package derive

import (
	"sort"

	"github.com/fittrack/fittrack-cli/internal/model"
)

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Weight changes smaller than this are reported as stable.
const trendThreshold = 0.5

// weightBearing returns stats that carry a weight, sorted by date
// descending. The sort is stable over insertion order, so among stats
// sharing the most recent date the last-inserted one wins.
func weightBearing(stats []model.BodyStat) []model.BodyStat {
	out := make([]model.BodyStat, 0, len(stats))
	for i := len(stats) - 1; i >= 0; i-- {
		if stats[i].Weight != nil {
			out = append(out, stats[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// LatestWeight reports the most recently dated weight measurement.
func LatestWeight(stats []model.BodyStat) (float64, bool) {
	sorted := weightBearing(stats)
	if len(sorted) == 0 {
		return 0, false
	}
	return *sorted[0].Weight, true
}

// WeightTrend classifies the difference between the two most recent weight
// measurements. Fewer than two measurements is stable by definition.
func WeightTrend(stats []model.BodyStat) Trend {
	sorted := weightBearing(stats)
	if len(sorted) < 2 {
		return TrendStable
	}
	diff := *sorted[0].Weight - *sorted[1].Weight
	if diff >= trendThreshold {
		return TrendUp
	}
	if diff <= -trendThreshold {
		return TrendDown
	}
	return TrendStable
}
