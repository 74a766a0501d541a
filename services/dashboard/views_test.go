package dashboard

import (
	"context"
	"errors"
	"testing"

	"legalaid/services/events"
)

// countingView records refresh calls.
type countingView struct {
	name     string
	refreshs int
	err      error
}

func (v *countingView) Name() string { return v.name }

func (v *countingView) Refresh(ctx context.Context) error {
	v.refreshs++
	return v.err
}

func TestRegistryFansOutToAllViews(t *testing.T) {
	bus := events.NewBus()
	registry := NewRegistry(bus)

	calendar := &countingView{name: "calendar"}
	agenda := &countingView{name: "agenda"}

	ctx := context.Background()
	detachCalendar := registry.Attach(ctx, calendar)
	detachAgenda := registry.Attach(ctx, agenda)
	defer detachAgenda()

	bus.PublishAppointmentUpdated("appt-1")
	if calendar.refreshs != 1 || agenda.refreshs != 1 {
		t.Fatalf("refreshes = %d, %d; want 1, 1", calendar.refreshs, agenda.refreshs)
	}

	detachCalendar()
	bus.PublishAppointmentUpdated("appt-2")
	if calendar.refreshs != 1 {
		t.Errorf("detached view refreshed %d times, want 1", calendar.refreshs)
	}
	if agenda.refreshs != 2 {
		t.Errorf("attached view refreshed %d times, want 2", agenda.refreshs)
	}
}

func TestRegistryStopsOnContextCancel(t *testing.T) {
	bus := events.NewBus()
	registry := NewRegistry(bus)

	view := &countingView{name: "calendar"}
	ctx, cancel := context.WithCancel(context.Background())
	detach := registry.Attach(ctx, view)
	defer detach()

	bus.PublishAppointmentUpdated("appt-1")
	cancel()
	bus.PublishAppointmentUpdated("appt-2")

	if view.refreshs != 1 {
		t.Errorf("refreshes after cancel = %d, want 1", view.refreshs)
	}
}

func TestRegistryFailedRefreshDoesNotBlockOthers(t *testing.T) {
	bus := events.NewBus()
	registry := NewRegistry(bus)

	broken := &countingView{name: "broken", err: errors.New("fetch failed")}
	healthy := &countingView{name: "healthy"}

	ctx := context.Background()
	defer registry.Attach(ctx, broken)()
	defer registry.Attach(ctx, healthy)()

	bus.PublishAppointmentUpdated("appt-1")
	bus.PublishAppointmentUpdated("appt-2")

	if broken.refreshs != 2 {
		t.Errorf("failing view refreshed %d times, want 2 (retried per broadcast)", broken.refreshs)
	}
	if healthy.refreshs != 2 {
		t.Errorf("healthy view refreshed %d times, want 2", healthy.refreshs)
	}
}
