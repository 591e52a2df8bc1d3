package service

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Subscriber is a live chat connection that can receive room events.
type Subscriber interface {
	Send(payload interface{}) error
}

// ChatPeer wraps a websocket connection behind a mutex so that broadcast
// and reply writes never interleave. Gorilla connections support one
// concurrent writer.
type ChatPeer struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func NewChatPeer(conn *websocket.Conn) *ChatPeer {
	return &ChatPeer{conn: conn}
}

func (p *ChatPeer) Send(payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conn.WriteJSON(payload)
}

// ChatHub tracks which subscribers are attached to which room and fans out
// messages. Delivery is best effort: messages are persisted before they
// reach the hub, so a failed send only costs that subscriber the live
// update and drops it from the room.
type ChatHub struct {
	mu    sync.Mutex
	log   *logrus.Logger
	rooms map[int64]map[Subscriber]struct{}
}

func NewChatHub(log *logrus.Logger) *ChatHub {
	return &ChatHub{
		log:   log,
		rooms: make(map[int64]map[Subscriber]struct{}),
	}
}

func (h *ChatHub) Join(roomID int64, sub Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[roomID]
	if !ok {
		room = make(map[Subscriber]struct{})
		h.rooms[roomID] = room
	}
	room[sub] = struct{}{}
}

func (h *ChatHub) Leave(roomID int64, sub Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[roomID]
	if !ok {
		return
	}
	delete(room, sub)
	if len(room) == 0 {
		delete(h.rooms, roomID)
	}
}

// Broadcast sends payload to every subscriber in the room. Subscribers
// whose send fails are evicted.
func (h *ChatHub) Broadcast(roomID int64, payload interface{}) {
	h.mu.Lock()
	subscribers := make([]Subscriber, 0, len(h.rooms[roomID]))
	for sub := range h.rooms[roomID] {
		subscribers = append(subscribers, sub)
	}
	h.mu.Unlock()

	for _, sub := range subscribers {
		if err := sub.Send(payload); err != nil {
			h.log.Warnf("Failed to deliver chat message to subscriber: %+v", err)
			h.Leave(roomID, sub)
		}
	}
}

// RoomSize reports the live subscriber count for a room.
func (h *ChatHub) RoomSize(roomID int64) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[roomID])
}
