// utils/timerange.go
package utils

import (
	"fmt"
	"sort"
)

// TimeRange is a half-open [Start, End) interval in minutes of day.
type TimeRange struct {
	Start int
	End   int
}

// ParseClock converts a zero-padded "HH:MM" string into minutes of day.
// Interval arithmetic always runs on integers; comparing clock strings
// lexicographically breaks at hour boundaries ("9:00" vs "10:00").
func ParseClock(clock string) (int, error) {
	if !ValidateClock(clock) {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}
	var h, m int
	fmt.Sscanf(clock, "%d:%d", &h, &m)
	return h*60 + m, nil
}

// FormatClock converts minutes of day back into "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MergeRanges returns the union of the given ranges as a sorted list of
// disjoint ranges. Overlapping and exactly adjacent ranges are merged, so
// overlapping schedule blocks behave as one continuous window.
func MergeRanges(ranges []TimeRange) []TimeRange {
	valid := make([]TimeRange, 0, len(ranges))
	for _, r := range ranges {
		if r.End > r.Start {
			valid = append(valid, r)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	sort.Slice(valid, func(i, j int) bool {
		if valid[i].Start != valid[j].Start {
			return valid[i].Start < valid[j].Start
		}
		return valid[i].End < valid[j].End
	})

	merged := []TimeRange{valid[0]}
	for _, r := range valid[1:] {
		last := &merged[len(merged)-1]
		if r.Start <= last.End {
			if r.End > last.End {
				last.End = r.End
			}
		} else {
			merged = append(merged, r)
		}
	}
	return merged
}

// SubtractRange removes a blocked interval from each range. A range fully
// inside the block disappears; a block in the middle splits the range in two.
// Ranges touching the block only at a boundary are untouched (half-open
// semantics: a block ending at 12:00 does not consume the 12:00 instant).
func SubtractRange(ranges []TimeRange, block TimeRange) []TimeRange {
	if block.End <= block.Start {
		return ranges
	}

	var out []TimeRange
	for _, r := range ranges {
		if block.Start >= r.End || block.End <= r.Start {
			out = append(out, r)
			continue
		}
		if block.Start > r.Start {
			out = append(out, TimeRange{Start: r.Start, End: block.Start})
		}
		if block.End < r.End {
			out = append(out, TimeRange{Start: block.End, End: r.End})
		}
	}
	return out
}

// SubtractRanges applies SubtractRange for every block.
func SubtractRanges(ranges []TimeRange, blocks []TimeRange) []TimeRange {
	for _, b := range blocks {
		ranges = SubtractRange(ranges, b)
	}
	return ranges
}

// SlotStarts discretizes a range into slot start times, walking from the
// range start in fixed steps of the slot duration. A slot whose end would
// exceed the range is discarded.
func SlotStarts(r TimeRange, durationMinutes int) []int {
	if durationMinutes <= 0 {
		return nil
	}
	var starts []int
	for t := r.Start; t+durationMinutes <= r.End; t += durationMinutes {
		starts = append(starts, t)
	}
	return starts
}
