package websocket

import (
	"testing"
	"time"

	"github.com/lataberna/reservations-backend/models"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{Send: make(chan Event, 10)}
	hub.register <- client

	reservation := &models.Reservation{ID: "res-1", Name: "Ana", Date: "2026-09-08", Time: "19:00"}
	hub.Broadcast(Event{Type: EventReservationCreated, Reservation: reservation})

	select {
	case got := <-client.Send:
		if got.Type != EventReservationCreated {
			t.Fatalf("event type = %s, want %s", got.Type, EventReservationCreated)
		}
		if got.Reservation == nil || got.Reservation.ID != "res-1" {
			t.Fatalf("event reservation = %+v", got.Reservation)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for event")
	}

	hub.unregister <- client

	select {
	case _, open := <-client.Send:
		if open {
			t.Fatal("send channel should be closed after unregister")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for channel close")
	}
}

func TestHubDeleteEventCarriesID(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{Send: make(chan Event, 10)}
	hub.register <- client

	hub.Broadcast(Event{Type: EventReservationDeleted, ID: "res-9"})

	select {
	case got := <-client.Send:
		if got.Type != EventReservationDeleted || got.ID != "res-9" {
			t.Fatalf("event = %+v", got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestHubStoppedHubRejectsClients(t *testing.T) {
	hub := NewHub()
	hub.Stop()

	client := &Client{Send: make(chan Event, 10)}

	done := make(chan bool, 1)
	go func() {
		done <- hub.add(client)
	}()

	select {
	case accepted := <-done:
		if accepted {
			t.Fatal("stopped hub accepted a client")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("add blocked on a stopped hub")
	}

	removed := make(chan struct{})
	go func() {
		hub.remove(client)
		close(removed)
	}()

	select {
	case <-removed:
	case <-time.After(1 * time.Second):
		t.Fatal("remove blocked on a stopped hub")
	}
}
