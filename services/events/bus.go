package events

import (
	"sync"
	"time"
)

// Kind enumerates bus event kinds. The scheduling subsystem emits a single
// kind: subscribers always re-fetch their own slice of state, so no payload
// beyond the appointment ID is carried.
type Kind string

// AppointmentUpdated is broadcast after any successful appointment mutation
// (creation or status change).
const AppointmentUpdated Kind = "appointment.updated"

// Event is the typed message delivered to every subscriber.
type Event struct {
	Kind          Kind
	AppointmentID string
	At            time.Time
}

// Handler receives bus events. Handlers run synchronously on the publishing
// goroutine; keep them short and push slow work behind their own contexts.
type Handler func(Event)

// Bus is an in-process publish/subscribe channel. It tolerates any number of
// simultaneous subscribers and guarantees that all subscribers present at
// publish time observe the event within the same broadcast cycle.
type Bus struct {
	mu   sync.RWMutex
	next int
	subs map[int]Handler
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]Handler)}
}

// Subscribe registers a handler and returns a function that removes it.
// Unsubscribing during a broadcast does not affect that broadcast.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = h
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish delivers the event to every current subscriber, synchronously.
func (b *Bus) Publish(evt Event) {
	if evt.At.IsZero() {
		evt.At = time.Now()
	}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs))
	for _, h := range b.subs {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(evt)
	}
}

// PublishAppointmentUpdated is shorthand for the single event kind the
// scheduling subsystem broadcasts.
func (b *Bus) PublishAppointmentUpdated(appointmentID string) {
	b.Publish(Event{Kind: AppointmentUpdated, AppointmentID: appointmentID})
}
