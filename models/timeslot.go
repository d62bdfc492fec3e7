package models

import "fmt"

// TimeSlot is a named portion of the business day used to bucket both sales
// and waste observations. The set is fixed business logic, not user data.
type TimeSlot string

const (
	SlotBreakfast TimeSlot = "Breakfast"
	SlotLunch     TimeSlot = "Lunch"
	SlotAfternoon TimeSlot = "Afternoon"
)

// AllTimeSlots lists the slots in business-day order.
var AllTimeSlots = []TimeSlot{SlotBreakfast, SlotLunch, SlotAfternoon}

// ParseTimeSlot validates a raw string against the closed slot set.
func ParseTimeSlot(s string) (TimeSlot, error) {
	slot := TimeSlot(s)
	if !slot.Valid() {
		return "", fmt.Errorf("invalid time slot %q", s)
	}
	return slot, nil
}

// Valid reports whether the slot is one of the defined values.
func (t TimeSlot) Valid() bool {
	switch t {
	case SlotBreakfast, SlotLunch, SlotAfternoon:
		return true
	}
	return false
}

func (t TimeSlot) String() string {
	return string(t)
}
