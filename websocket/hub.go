package websocket

import (
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/lataberna/reservations-backend/models"
)

// Event is pushed to connected admin panels whenever the reservation book
// changes.
type Event struct {
	Type        string              `json:"type"`
	Reservation *models.Reservation `json:"reservation,omitempty"`
	ID          string              `json:"id,omitempty"`
}

const (
	EventReservationCreated = "reservation_created"
	EventReservationUpdated = "reservation_updated"
	EventReservationDeleted = "reservation_deleted"
)

type Client struct {
	Conn *websocket.Conn
	Send chan Event
}

// Hub fans reservation events out to connected staff clients.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
	done       chan struct{}
	clients    map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 16),
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
		case event := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.Send <- event:
				default:
					// Slow client, drop it.
					delete(h.clients, client)
					close(client.Send)
				}
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// Broadcast queues an event without blocking the caller.
func (h *Hub) Broadcast(event Event) {
	select {
	case h.broadcast <- event:
	default:
		log.Println("⚠️ Websocket broadcast queue full, dropping event")
	}
}

// add registers a client unless the hub has already been stopped.
func (h *Hub) add(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// ServeWs handles one admin panel connection. The write pump drains the
// client's send channel; the read loop only watches for the close.
func (h *Hub) ServeWs(conn *websocket.Conn) {
	client := &Client{Conn: conn, Send: make(chan Event, 16)}
	if !h.add(client) {
		conn.Close()
		return
	}

	go func() {
		for event := range client.Send {
			if err := conn.WriteJSON(event); err != nil {
				log.Printf("Error writing to admin client: %v", err)
				break
			}
		}
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.remove(client)
}
