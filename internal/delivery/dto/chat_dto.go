package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type OpenRoomRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// SendMessageRequest is the inbound WebSocket payload.
type SendMessageRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

// Response DTOs

type ChatUserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role,omitempty"`
}

type MessageResponse struct {
	ID         int64     `json:"id"`
	RoomID     int64     `json:"room_id"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type ChatRoomResponse struct {
	ID          int64            `json:"id"`
	OtherUser   ChatUserResponse `json:"other_user"`
	LastMessage *MessageResponse `json:"last_message,omitempty"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type ChatRoomListResponse struct {
	Rooms []ChatRoomResponse `json:"rooms"`
	Total int                `json:"total"`
}

type ChatRoomDetailResponse struct {
	ID        int64             `json:"id"`
	OtherUser ChatUserResponse  `json:"other_user"`
	Messages  []MessageResponse `json:"messages"`
}
