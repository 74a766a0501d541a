package models

// BlockedSlot is a single slot a provider has taken off their calendar.
type BlockedSlot struct {
	Date        string `bson:"date" json:"date"`               // "2006-01-02"
	StartMinute int    `bson:"start_minute" json:"startMinute"` // minutes from midnight
	Reason      string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// ProviderSchedule declares a provider's bookable window and any explicitly
// blocked slots. Providers without a stored schedule fall back to the
// configured business-hours window.
type ProviderSchedule struct {
	ProviderID   string        `bson:"provider_id" json:"providerId"`
	ProviderRole Role          `bson:"provider_role" json:"providerRole"`
	WorkStartMin int           `bson:"work_start_min" json:"workStartMin"` // minutes from midnight, e.g. 540 for 9:00
	WorkEndMin   int           `bson:"work_end_min" json:"workEndMin"`     // e.g. 1020 for 17:00
	Blocked      []BlockedSlot `bson:"blocked,omitempty" json:"blocked,omitempty"`
}

// IsBlocked reports whether the given date and start minute is blocked.
func (s ProviderSchedule) IsBlocked(date string, startMinute int) bool {
	for _, b := range s.Blocked {
		if b.Date == date && b.StartMinute == startMinute {
			return true
		}
	}
	return false
}
