package repository

import (
	"lifelink/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatRoomRepository interface {
	Create(db *gorm.DB, room *entity.ChatRoom) error
	FindByID(db *gorm.DB, id int64) (*entity.ChatRoom, error)
	// FindByPair expects the canonical (lower uuid first) ordering.
	FindByPair(db *gorm.DB, participant1, participant2 uuid.UUID) (*entity.ChatRoom, error)
	FindByParticipant(db *gorm.DB, userID uuid.UUID) ([]entity.ChatRoom, error)
	Touch(db *gorm.DB, id int64) error
}

type MessageRepository interface {
	Create(db *gorm.DB, message *entity.Message) error
	FindByRoom(db *gorm.DB, roomID int64) ([]entity.Message, error)
	FindLastByRoom(db *gorm.DB, roomID int64) (*entity.Message, error)
}
