package scheduleRepo

import (
	"context"

	"legalaid/models"
)

// ScheduleRepository persists provider-declared working windows and blocks.
type ScheduleRepository interface {
	// GetByProviderID returns the provider's schedule, or nil when the
	// provider has never declared one.
	GetByProviderID(ctx context.Context, providerID string) (*models.ProviderSchedule, error)
	Upsert(ctx context.Context, schedule *models.ProviderSchedule) error
	BlockSlot(ctx context.Context, providerID string, blocked models.BlockedSlot) error
	UnblockSlot(ctx context.Context, providerID, date string, startMinute int) error
}
