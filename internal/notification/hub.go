package notification

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"campusjobs-backend/internal/model"
)

// EventNew is the stream event name of a newly created notification
const EventNew = "notification:new"

// Message is what a subscriber receives
type Message struct {
	Event        string             `json:"event"`
	Notification model.Notification `json:"data"`
}

// Hub keeps one room of subscriber channels per user and delivers
// notifications to the room of their recipient.
type Hub struct {
	mu    sync.Mutex
	rooms map[uuid.UUID]map[chan Message]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[uuid.UUID]map[chan Message]struct{})}
}

// Subscribe joins the room of userID.
func (h *Hub) Subscribe(userID uuid.UUID) chan Message {
	ch := make(chan Message, 10)
	h.mu.Lock()
	room, ok := h.rooms[userID]
	if !ok {
		room = make(map[chan Message]struct{})
		h.rooms[userID] = room
	}
	room[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe leaves the room and closes ch.
func (h *Hub) Unsubscribe(userID uuid.UUID, ch chan Message) {
	h.mu.Lock()
	if room, ok := h.rooms[userID]; ok {
		delete(room, ch)
		if len(room) == 0 {
			delete(h.rooms, userID)
		}
	}
	h.mu.Unlock()
	close(ch)
}

// Subscribers returns the number of open subscriptions of userID.
func (h *Hub) Subscribers(userID uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[userID])
}

// Dispatch delivers n to every subscriber of its recipient. Slow subscribers
// miss the message.
func (h *Hub) Dispatch(_ context.Context, n model.Notification) error {
	msg := Message{Event: EventNew, Notification: n}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.rooms[n.UserID] {
		select {
		case ch <- msg:
		default:
			// drop if slow
		}
	}
	return nil
}
