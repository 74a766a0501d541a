package dashboard

import (
	"context"

	"legalaid/services/events"
	"legalaid/utils"

	"go.uber.org/zap"
)

// View is any dashboard surface holding appointment or availability data: a
// calendar, an agenda feed, the notification panel, an analytics snapshot.
// Refresh re-fetches the view's own slice of server-side state.
type View interface {
	Name() string
	Refresh(ctx context.Context) error
}

// Registry fans the appointment-updated broadcast out to every mounted view.
// Views refetch independently; a failed refresh is logged and left for the
// next broadcast or poll cycle, never retried inline.
type Registry struct {
	bus *events.Bus
}

func NewRegistry(bus *events.Bus) *Registry {
	return &Registry{bus: bus}
}

// Attach subscribes the view to the broadcast channel until detach is called
// or ctx is cancelled. A broadcast arriving after detach never reaches the
// view, and a refresh resolving after cancellation must not apply state (the
// view checks its context).
func (r *Registry) Attach(ctx context.Context, v View) (detach func()) {
	logger := utils.GetLogger()

	unsubscribe := r.bus.Subscribe(func(evt events.Event) {
		if ctx.Err() != nil {
			return
		}
		if err := v.Refresh(ctx); err != nil && ctx.Err() == nil {
			logger.Warn("view refresh failed",
				zap.String("view", v.Name()),
				zap.String("appointmentID", evt.AppointmentID),
				zap.Error(err))
		}
	})

	stop := context.AfterFunc(ctx, unsubscribe)
	return func() {
		stop()
		unsubscribe()
	}
}
