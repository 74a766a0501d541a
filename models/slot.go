package models

import "time"

// SlotStatus is the computed bookability of a single calendar slot.
type SlotStatus string

const (
	SlotAvailable   SlotStatus = "AVAILABLE"   // selectable for booking
	SlotBooked      SlotStatus = "BOOKED"      // inert, a confirmed appointment covers it
	SlotConflict    SlotStatus = "CONFLICT"    // selectable, requires an explicit override
	SlotUnavailable SlotStatus = "UNAVAILABLE" // inert, outside working hours or blocked
)

// Slot is a derived time unit, computed per request for a given provider and
// date. Slots are never persisted.
type Slot struct {
	Time        time.Time  `json:"time"`
	DisplayTime string     `json:"displayTime"` // e.g. "14:00"
	Status      SlotStatus `json:"status"`
}
