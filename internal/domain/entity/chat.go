package entity

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

// ChatRoom is a two-party conversation. The pair is stored canonically
// with the lower uuid first so a pair of users always maps to one room.
type ChatRoom struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Participant1ID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_room_pair" json:"participant1_id"`
	Participant2ID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_room_pair" json:"participant2_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Participant1 User      `gorm:"foreignKey:Participant1ID" json:"participant1,omitempty"`
	Participant2 User      `gorm:"foreignKey:Participant2ID" json:"participant2,omitempty"`
	Messages     []Message `gorm:"foreignKey:RoomID" json:"messages,omitempty"`
}

func (ChatRoom) TableName() string {
	return "chat_rooms"
}

// NormalizeRoomPair orders two participant ids canonically (lower uuid
// bytes first) so that a given pair of users always maps to one room.
func NormalizeRoomPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if bytes.Compare(a[:], b[:]) > 0 {
		return b, a
	}
	return a, b
}

// HasParticipant reports whether userID belongs to the room.
func (r *ChatRoom) HasParticipant(userID uuid.UUID) bool {
	return r.Participant1ID == userID || r.Participant2ID == userID
}

// OtherParticipant returns the participant opposite to userID.
func (r *ChatRoom) OtherParticipant(userID uuid.UUID) uuid.UUID {
	if r.Participant1ID == userID {
		return r.Participant2ID
	}
	return r.Participant1ID
}

// Message is a single chat message. Messages are immutable once created
// and totally ordered within a room by creation time.
type Message struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomID     int64     `gorm:"not null;index" json:"room_id"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null" json:"sender_id"`
	ReceiverID uuid.UUID `gorm:"type:uuid;not null" json:"receiver_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Room     ChatRoom `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Sender   User     `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver User     `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}

func (Message) TableName() string {
	return "messages"
}
