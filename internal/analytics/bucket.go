// Package analytics buckets timestamped sentiment records into the three
// reporting windows (today, week, month) and computes null-safe averages.
// Everything here is pure: callers fetch records, this package only shapes
// them, so identical inputs always produce identical reports.
package analytics

import "math"

// bucket accumulates raw (sum, count) for one time slice. It is never
// exposed directly; callers only ever see the null-safe average.
type bucket struct {
	sum   float64
	count int
}

func (b *bucket) add(score float64) {
	b.sum += score
	b.count++
}

// avg is the null-safe average: nil when nothing contributed, never 0 or NaN.
func (b bucket) avg() *float64 {
	if b.count == 0 {
		return nil
	}
	v := round2(b.sum / float64(b.count))
	return &v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// weightedAvg pools raw sums and counts across buckets, so every record
// weighs equally regardless of how it was sub-bucketed. Used for the period
// sentiment of a day or a month.
func weightedAvg(bs []bucket) *float64 {
	var total bucket
	for _, b := range bs {
		total.sum += b.sum
		total.count += b.count
	}
	return total.avg()
}

// periodAverage is the unweighted mean of the non-nil entries of vals[lo:hi).
// It deliberately averages the already-rounded per-slice averages; the
// morning/afternoon/evening rollups use it in every window.
func periodAverage(vals []*float64, lo, hi int) *float64 {
	var sum float64
	var n int
	for _, v := range vals[lo:hi] {
		if v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	r := round2(sum / float64(n))
	return &r
}

const (
	morningStart   = 6
	afternoonStart = 12
	eveningStart   = 18
	dayEnd         = 24
)
