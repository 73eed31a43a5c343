package services

import (
	"errors"
	"reflect"
	"testing"

	"citaflow-backend/models"
	"citaflow-backend/utils"

	"github.com/google/uuid"
)

func schedule(day int, start, end string) models.AvailabilitySchedule {
	return models.AvailabilitySchedule{DayOfWeek: day, StartTime: start, EndTime: end, IsActive: true}
}

func strPtr(s string) *string { return &s }

func slotTimes(ranges []utils.TimeRange, duration int) []string {
	var out []string
	for _, r := range ranges {
		for _, start := range utils.SlotStarts(r, duration) {
			out = append(out, utils.FormatClock(start))
		}
	}
	return out
}

func TestOpenRanges_UnionOfOverlappingSchedules(t *testing.T) {
	open, err := OpenRanges([]models.AvailabilitySchedule{
		schedule(1, "09:00", "11:00"),
		schedule(1, "10:00", "12:00"),
	}, nil, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(open) != 1 {
		t.Fatalf("expected one merged window, got %+v", open)
	}
	if open[0].Start != 9*60 || open[0].End != 12*60 {
		t.Errorf("window = %+v, want [09:00,12:00)", open[0])
	}
}

func TestOpenRanges_FullDayExceptionEmptiesDay(t *testing.T) {
	open, err := OpenRanges([]models.AvailabilitySchedule{
		schedule(1, "09:00", "17:00"),
	}, []models.ScheduleException{
		{ExceptionDate: "2026-03-09", StartTime: nil},
	}, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(open) != 0 {
		t.Errorf("expected no open ranges, got %+v", open)
	}
}

func TestOpenRanges_PartialExceptionCarveOut(t *testing.T) {
	// schedule [9:00,17:00), exception [12:00,13:00): no slot may intersect the block
	open, err := OpenRanges([]models.AvailabilitySchedule{
		schedule(1, "09:00", "17:00"),
	}, []models.ScheduleException{
		{ExceptionDate: "2026-03-09", StartTime: strPtr("12:00"), EndTime: strPtr("13:00")},
	}, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, clock := range slotTimes(open, 30) {
		start, _ := utils.ParseClock(clock)
		if start < 13*60 && start+30 > 12*60 {
			t.Errorf("slot %s intersects the blocked hour", clock)
		}
	}
}

func TestOpenRanges_SingleSlotException(t *testing.T) {
	// start set without an end blocks exactly one slot of the effective duration
	open, err := OpenRanges([]models.AvailabilitySchedule{
		schedule(1, "09:00", "10:00"),
	}, []models.ScheduleException{
		{ExceptionDate: "2026-03-09", StartTime: strPtr("09:00")},
	}, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := slotTimes(open, 30)
	want := []string{"09:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("slots = %v, want %v", got, want)
	}
}

func TestOpenRanges_ExceptionTouchingBoundaryKeepsAdjacentSlot(t *testing.T) {
	// exception ending at 10:00 must not consume the [10:00,10:30) slot
	open, err := OpenRanges([]models.AvailabilitySchedule{
		schedule(1, "09:00", "11:00"),
	}, []models.ScheduleException{
		{ExceptionDate: "2026-03-09", StartTime: strPtr("09:00"), EndTime: strPtr("10:00")},
	}, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := slotTimes(open, 30)
	want := []string{"10:00", "10:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("slots = %v, want %v", got, want)
	}
}

func TestOpenRanges_Deterministic(t *testing.T) {
	schedules := []models.AvailabilitySchedule{
		schedule(1, "14:00", "18:00"),
		schedule(1, "09:00", "12:00"),
	}
	exceptions := []models.ScheduleException{
		{ExceptionDate: "2026-03-09", StartTime: strPtr("10:00"), EndTime: strPtr("10:30")},
	}

	first, err := OpenRanges(schedules, exceptions, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := OpenRanges(schedules, exceptions, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(slotTimes(first, 30), slotTimes(second, 30)) {
		t.Error("same inputs must yield the same ordered slots")
	}
}

func TestOpenRanges_TwoSlotScenario(t *testing.T) {
	// Monday [09:00,10:00), 30 minute duration: exactly 09:00 and 09:30
	open, err := OpenRanges([]models.AvailabilitySchedule{
		schedule(1, "09:00", "10:00"),
	}, nil, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := slotTimes(open, 30)
	want := []string{"09:00", "09:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("slots = %v, want %v", got, want)
	}
}

func TestExceptionBlocks_MalformedTime(t *testing.T) {
	_, _, err := ExceptionBlocks([]models.ScheduleException{
		{ExceptionDate: "2026-03-09", StartTime: strPtr("9am")},
	}, 30)
	if err == nil {
		t.Error("expected error for malformed exception time")
	}
}

func TestEffectiveDuration(t *testing.T) {
	thirty, ninety := 30, 90

	service := models.Service{DurationMinutes: &thirty}
	if got := EffectiveDuration(&service, nil); got != 30 {
		t.Errorf("service duration: got %d, want 30", got)
	}

	variant := models.ServiceVariant{DurationMinutes: &ninety}
	if got := EffectiveDuration(&service, &variant); got != 90 {
		t.Errorf("variant override: got %d, want 90", got)
	}

	bare := models.Service{}
	if got := EffectiveDuration(&bare, nil); got != DefaultSlotMinutes {
		t.Errorf("default duration: got %d, want %d", got, DefaultSlotMinutes)
	}
}

func countAtFixed(counts map[string]int64) SlotCounter {
	return func(_ uuid.UUID, _ string, clock string) (int64, error) {
		return counts[clock], nil
	}
}

func TestResolveSlots_ExcludesExhaustedSlot(t *testing.T) {
	// two active bookings at 10:00 with a limit of two: the slot disappears
	service := models.Service{ID: uuid.New(), MaxSimultaneousBookings: 2}
	slots, err := ResolveSlots(&service, []models.AvailabilitySchedule{
		schedule(1, "09:00", "11:00"),
	}, nil, "2026-03-09", 60, countAtFixed(map[string]int64{"10:00": 2}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Slot{{Time: "09:00", RemainingCapacity: 2}}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("slots = %+v, want %+v", slots, want)
	}
}

func TestResolveSlots_FullFirstSlotLeavesSecond(t *testing.T) {
	// [09:00,10:00) window, 30 minute slots, capacity 1, 09:00 already taken
	service := models.Service{ID: uuid.New(), MaxSimultaneousBookings: 1}
	slots, err := ResolveSlots(&service, []models.AvailabilitySchedule{
		schedule(1, "09:00", "10:00"),
	}, nil, "2026-03-09", 30, countAtFixed(map[string]int64{"09:00": 1}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Slot{{Time: "09:30", RemainingCapacity: 1}}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("slots = %+v, want %+v", slots, want)
	}
}

func TestResolveSlots_ThirdBookingIsRejected(t *testing.T) {
	service := models.Service{ID: uuid.New(), MaxSimultaneousBookings: 2}
	schedules := []models.AvailabilitySchedule{schedule(1, "10:00", "11:00")}

	booked := map[string]int64{}
	counter := func(_ uuid.UUID, _ string, clock string) (int64, error) {
		return booked[clock], nil
	}

	for i := 1; i <= 2; i++ {
		slots, err := ResolveSlots(&service, schedules, nil, "2026-03-09", 60, counter)
		if err != nil {
			t.Fatalf("booking %d: unexpected error: %v", i, err)
		}
		if len(slots) != 1 || slots[0].Time != "10:00" {
			t.Fatalf("booking %d: slots = %+v, want the 10:00 slot", i, slots)
		}
		if err := CheckSlotCapacity(service.MaxSimultaneousBookings, booked["10:00"]); err != nil {
			t.Fatalf("booking %d rejected: %v", i, err)
		}
		booked["10:00"]++
	}

	slots, err := ResolveSlots(&service, schedules, nil, "2026-03-09", 60, counter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("exhausted slot still offered: %+v", slots)
	}
	if err := CheckSlotCapacity(service.MaxSimultaneousBookings, booked["10:00"]); !errors.Is(err, ErrSlotExhausted) {
		t.Errorf("expected ErrSlotExhausted, got %v", err)
	}
}

func TestResolveSlots_IgnoresForeignExceptions(t *testing.T) {
	service := models.Service{ID: uuid.New(), MaxSimultaneousBookings: 1}
	otherID := uuid.New()

	// full-day blocks for another date and another service must not apply
	slots, err := ResolveSlots(&service, []models.AvailabilitySchedule{
		schedule(1, "09:00", "10:00"),
	}, []models.ScheduleException{
		{ExceptionDate: "2026-03-10"},
		{ExceptionDate: "2026-03-09", ServiceID: &otherID},
	}, "2026-03-09", 30, countAtFixed(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Slot{
		{Time: "09:00", RemainingCapacity: 1},
		{Time: "09:30", RemainingCapacity: 1},
	}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("slots = %+v, want %+v", slots, want)
	}
}

func TestScheduleExceptionAppliesTo(t *testing.T) {
	serviceID := uuid.New()
	otherID := uuid.New()

	tenantWide := models.ScheduleException{ExceptionDate: "2026-03-09"}
	if !tenantWide.AppliesTo(serviceID, "2026-03-09") {
		t.Error("tenant-wide exception must apply to every service")
	}
	if tenantWide.AppliesTo(serviceID, "2026-03-10") {
		t.Error("exception must not apply to another date")
	}

	scoped := models.ScheduleException{ExceptionDate: "2026-03-09", ServiceID: &otherID}
	if scoped.AppliesTo(serviceID, "2026-03-09") {
		t.Error("service-scoped exception must not apply to another service")
	}
	if !scoped.AppliesTo(otherID, "2026-03-09") {
		t.Error("service-scoped exception must apply to its own service")
	}
}
