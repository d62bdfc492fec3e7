package models

import "testing"

func TestParseTimeSlot(t *testing.T) {
	for _, slot := range AllTimeSlots {
		parsed, err := ParseTimeSlot(string(slot))
		if err != nil {
			t.Fatalf("expected %q to parse, got %v", slot, err)
		}
		if parsed != slot {
			t.Fatalf("expected %q, got %q", slot, parsed)
		}
	}
}

func TestParseTimeSlotRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "breakfast", "Dinner", "LUNCH", "Midnight"} {
		if _, err := ParseTimeSlot(raw); err == nil {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestFinalQuantity(t *testing.T) {
	entry := ProductionPlanEntry{ForecastQuantity: 8}
	if entry.FinalQuantity() != 8 {
		t.Fatalf("expected forecast quantity without override")
	}

	adjusted := 5
	entry.AdjustedQuantity = &adjusted
	if entry.FinalQuantity() != 5 {
		t.Fatalf("expected adjusted quantity to win")
	}
}
