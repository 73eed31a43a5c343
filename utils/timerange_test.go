package utils

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"9:30", 0, true},  // must be zero padded
		{"24:00", 0, true},
		{"10:60", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(570); got != "09:30" {
		t.Errorf("FormatClock(570) = %q, want 09:30", got)
	}
	if got := FormatClock(0); got != "00:00" {
		t.Errorf("FormatClock(0) = %q, want 00:00", got)
	}
}

func TestMergeRanges_Overlapping(t *testing.T) {
	// [9:00,11:00) and [10:00,12:00) behave as one [9:00,12:00) window
	merged := MergeRanges([]TimeRange{
		{Start: 540, End: 660},
		{Start: 600, End: 720},
	})
	if len(merged) != 1 {
		t.Fatalf("expected 1 merged range, got %d", len(merged))
	}
	if merged[0].Start != 540 || merged[0].End != 720 {
		t.Errorf("merged = %+v, want [540,720)", merged[0])
	}
}

func TestMergeRanges_AdjacentAndDisjoint(t *testing.T) {
	merged := MergeRanges([]TimeRange{
		{Start: 840, End: 900},
		{Start: 540, End: 600},
		{Start: 600, End: 660}, // adjacent to the first block
	})
	if len(merged) != 2 {
		t.Fatalf("expected 2 ranges, got %d: %+v", len(merged), merged)
	}
	if merged[0].Start != 540 || merged[0].End != 660 {
		t.Errorf("first = %+v, want [540,660)", merged[0])
	}
	if merged[1].Start != 840 || merged[1].End != 900 {
		t.Errorf("second = %+v, want [840,900)", merged[1])
	}
}

func TestMergeRanges_DropsEmpty(t *testing.T) {
	merged := MergeRanges([]TimeRange{{Start: 600, End: 600}, {Start: 700, End: 650}})
	if merged != nil {
		t.Errorf("expected nil, got %+v", merged)
	}
}

func TestSubtractRange_SplitsMiddle(t *testing.T) {
	// schedule [9:00,17:00), exception [12:00,13:00)
	out := SubtractRange([]TimeRange{{Start: 540, End: 1020}}, TimeRange{Start: 720, End: 780})
	if len(out) != 2 {
		t.Fatalf("expected 2 ranges, got %d: %+v", len(out), out)
	}
	if out[0].Start != 540 || out[0].End != 720 {
		t.Errorf("first = %+v, want [540,720)", out[0])
	}
	if out[1].Start != 780 || out[1].End != 1020 {
		t.Errorf("second = %+v, want [780,1020)", out[1])
	}
}

func TestSubtractRange_BoundaryTouchIsNotOverlap(t *testing.T) {
	// block ending exactly where the range starts leaves it untouched
	out := SubtractRange([]TimeRange{{Start: 600, End: 660}}, TimeRange{Start: 540, End: 600})
	if len(out) != 1 || out[0] != (TimeRange{Start: 600, End: 660}) {
		t.Errorf("expected untouched range, got %+v", out)
	}

	out = SubtractRange([]TimeRange{{Start: 600, End: 660}}, TimeRange{Start: 660, End: 720})
	if len(out) != 1 || out[0] != (TimeRange{Start: 600, End: 660}) {
		t.Errorf("expected untouched range, got %+v", out)
	}
}

func TestSubtractRange_SwallowsWholeRange(t *testing.T) {
	out := SubtractRange([]TimeRange{{Start: 600, End: 660}}, TimeRange{Start: 540, End: 720})
	if len(out) != 0 {
		t.Errorf("expected empty, got %+v", out)
	}
}

func TestSlotStarts(t *testing.T) {
	// [9:00,10:00) with 30 minute slots gives 09:00 and 09:30 exactly
	starts := SlotStarts(TimeRange{Start: 540, End: 600}, 30)
	if len(starts) != 2 || starts[0] != 540 || starts[1] != 570 {
		t.Errorf("starts = %v, want [540 570]", starts)
	}
}

func TestSlotStarts_DiscardsOverflowingSlot(t *testing.T) {
	// a 45 minute slot at 09:30 would end past 10:00
	starts := SlotStarts(TimeRange{Start: 540, End: 600}, 45)
	if len(starts) != 1 || starts[0] != 540 {
		t.Errorf("starts = %v, want [540]", starts)
	}
}

func TestSlotStarts_InvalidDuration(t *testing.T) {
	if got := SlotStarts(TimeRange{Start: 540, End: 600}, 0); got != nil {
		t.Errorf("expected nil for zero duration, got %v", got)
	}
}
