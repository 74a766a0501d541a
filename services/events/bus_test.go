package events

import (
	"sync"
	"testing"
	"time"
)

func TestBusDeliversToAllSubscribers(t *testing.T) {
	bus := NewBus()

	var got [3][]Event
	for i := 0; i < 3; i++ {
		i := i
		bus.Subscribe(func(evt Event) {
			got[i] = append(got[i], evt)
		})
	}

	bus.PublishAppointmentUpdated("appt-1")
	bus.PublishAppointmentUpdated("appt-2")

	for i, events := range got {
		if len(events) != 2 {
			t.Fatalf("subscriber %d received %d events, want 2", i, len(events))
		}
		if events[0].AppointmentID != "appt-1" || events[1].AppointmentID != "appt-2" {
			t.Errorf("subscriber %d events = %+v, want appt-1 then appt-2", i, events)
		}
		for _, evt := range events {
			if evt.Kind != AppointmentUpdated {
				t.Errorf("subscriber %d kind = %q, want %q", i, evt.Kind, AppointmentUpdated)
			}
			if evt.At.IsZero() {
				t.Errorf("subscriber %d event has zero timestamp", i)
			}
		}
	}
}

func TestBusUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()

	var first, second int
	unsubscribe := bus.Subscribe(func(Event) { first++ })
	bus.Subscribe(func(Event) { second++ })

	bus.PublishAppointmentUpdated("appt-1")
	unsubscribe()
	bus.PublishAppointmentUpdated("appt-2")

	if first != 1 {
		t.Errorf("unsubscribed handler called %d times, want 1", first)
	}
	if second != 2 {
		t.Errorf("remaining handler called %d times, want 2", second)
	}
}

func TestBusUnsubscribeIsIdempotent(t *testing.T) {
	bus := NewBus()

	var calls int
	unsubscribe := bus.Subscribe(func(Event) { calls++ })
	unsubscribe()
	unsubscribe()

	bus.PublishAppointmentUpdated("appt-1")
	if calls != 0 {
		t.Errorf("handler called %d times after unsubscribe, want 0", calls)
	}
}

func TestBusConcurrentPublishAndSubscribe(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	var delivered int
	bus.Subscribe(func(Event) {
		mu.Lock()
		delivered++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				bus.PublishAppointmentUpdated("appt")
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			unsubscribe := bus.Subscribe(func(Event) {})
			unsubscribe()
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if delivered != 8*50 {
		t.Errorf("delivered = %d, want %d", delivered, 8*50)
	}
}

func TestBusPublishKeepsExplicitTimestamp(t *testing.T) {
	bus := NewBus()

	at := time.Date(2026, time.February, 10, 14, 0, 0, 0, time.UTC)
	var got Event
	bus.Subscribe(func(evt Event) { got = evt })

	bus.Publish(Event{Kind: AppointmentUpdated, AppointmentID: "appt-1", At: at})
	if !got.At.Equal(at) {
		t.Errorf("At = %v, want %v preserved", got.At, at)
	}
}
