package repository

import (
	"errors"

	"lifelink/internal/domain/entity"
	domainRepo "lifelink/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type chatRoomRepository struct{}

func NewChatRoomRepository() domainRepo.ChatRoomRepository {
	return &chatRoomRepository{}
}

func (r *chatRoomRepository) Create(db *gorm.DB, room *entity.ChatRoom) error {
	return db.Create(room).Error
}

func (r *chatRoomRepository) FindByID(db *gorm.DB, id int64) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	err := db.Preload("Participant1").Preload("Participant2").
		Where("id = ?", id).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *chatRoomRepository) FindByPair(db *gorm.DB, participant1, participant2 uuid.UUID) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	err := db.Where("participant1_id = ? AND participant2_id = ?", participant1, participant2).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *chatRoomRepository) FindByParticipant(db *gorm.DB, userID uuid.UUID) ([]entity.ChatRoom, error) {
	var rooms []entity.ChatRoom
	err := db.Preload("Participant1").Preload("Participant2").
		Where("participant1_id = ? OR participant2_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *chatRoomRepository) Touch(db *gorm.DB, id int64) error {
	return db.Model(&entity.ChatRoom{}).
		Where("id = ?", id).
		Update("updated_at", gorm.Expr("now()")).Error
}

type messageRepository struct{}

func NewMessageRepository() domainRepo.MessageRepository {
	return &messageRepository{}
}

func (r *messageRepository) Create(db *gorm.DB, message *entity.Message) error {
	return db.Create(message).Error
}

func (r *messageRepository) FindByRoom(db *gorm.DB, roomID int64) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.Where("room_id = ?", roomID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) FindLastByRoom(db *gorm.DB, roomID int64) (*entity.Message, error) {
	var message entity.Message
	err := db.Where("room_id = ?", roomID).
		Order("created_at DESC").
		First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}
