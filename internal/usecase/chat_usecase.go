package usecase

import (
	"context"
	"errors"
	"strings"

	"lifelink/internal/converter"
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
	"lifelink/internal/domain/repository"
	"lifelink/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrChatRoomNotFound = errors.New("chat room not found")
	ErrChatWithSelf     = errors.New("cannot open a chat with yourself")
	ErrRoomAccessDenied = errors.New("not a participant of this room")
	ErrEmptyMessage     = errors.New("message content is empty")
)

type ChatUsecase interface {
	ListRooms(ctx context.Context, userID uuid.UUID) (*dto.ChatRoomListResponse, error)
	OpenRoom(ctx context.Context, userID, otherUserID uuid.UUID) (*dto.ChatRoomDetailResponse, error)
	RoomDetail(ctx context.Context, userID uuid.UUID, roomID int64) (*dto.ChatRoomDetailResponse, error)
	SendMessage(ctx context.Context, userID uuid.UUID, roomID int64, content string) (*dto.MessageResponse, error)
	// AuthorizeRoom checks room membership before a live connection is
	// attached to the hub.
	AuthorizeRoom(ctx context.Context, userID uuid.UUID, roomID int64) (*entity.ChatRoom, error)
}

type chatUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	roomRepo    repository.ChatRoomRepository
	messageRepo repository.MessageRepository
	hub         *service.ChatHub
}

func NewChatUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roomRepo repository.ChatRoomRepository,
	messageRepo repository.MessageRepository,
	hub *service.ChatHub,
) ChatUsecase {
	return &chatUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		roomRepo:    roomRepo,
		messageRepo: messageRepo,
		hub:         hub,
	}
}

// ListRooms returns the user's conversations, most recently active first,
// each annotated with the other participant and the last message.
func (u *chatUsecase) ListRooms(ctx context.Context, userID uuid.UUID) (*dto.ChatRoomListResponse, error) {
	db := u.db.WithContext(ctx)

	rooms, err := u.roomRepo.FindByParticipant(db, userID)
	if err != nil {
		u.log.Warnf("Failed to list chat rooms: %+v", err)
		return nil, err
	}

	responses := make([]dto.ChatRoomResponse, 0, len(rooms))
	for i := range rooms {
		room := &rooms[i]

		other := room.Participant1
		if room.Participant1ID == userID {
			other = room.Participant2
		}

		last, err := u.messageRepo.FindLastByRoom(db, room.ID)
		if err != nil {
			u.log.Warnf("Failed to find last message: %+v", err)
			return nil, err
		}

		responses = append(responses, dto.ChatRoomResponse{
			ID:          room.ID,
			OtherUser:   converter.ChatUserToResponse(&other),
			LastMessage: converter.MessageToResponse(last),
			UpdatedAt:   room.UpdatedAt,
		})
	}

	return &dto.ChatRoomListResponse{
		Rooms: responses,
		Total: len(responses),
	}, nil
}

// OpenRoom finds or creates the room between the caller and another user.
// The pair is stored canonically, so opening from either side lands on the
// same room.
func (u *chatUsecase) OpenRoom(ctx context.Context, userID, otherUserID uuid.UUID) (*dto.ChatRoomDetailResponse, error) {
	if userID == otherUserID {
		return nil, ErrChatWithSelf
	}

	db := u.db.WithContext(ctx)

	other, err := u.userRepo.FindByID(db, otherUserID)
	if err != nil {
		u.log.Warnf("Failed to find chat target: %+v", err)
		return nil, err
	}
	if other == nil {
		return nil, ErrUserNotFound
	}

	p1, p2 := entity.NormalizeRoomPair(userID, otherUserID)
	room, err := u.roomRepo.FindByPair(db, p1, p2)
	if err != nil {
		u.log.Warnf("Failed to find chat room: %+v", err)
		return nil, err
	}

	if room == nil {
		room = &entity.ChatRoom{Participant1ID: p1, Participant2ID: p2}
		if err := u.roomRepo.Create(db, room); err != nil {
			// A concurrent open from the other side may have created the
			// room first; fall back to it.
			if isDuplicateKeyError(err, "ux_room_pair") {
				room, err = u.roomRepo.FindByPair(db, p1, p2)
				if err != nil {
					return nil, err
				}
			} else {
				u.log.Warnf("Failed to create chat room: %+v", err)
				return nil, err
			}
		}
	}

	messages, err := u.messageRepo.FindByRoom(db, room.ID)
	if err != nil {
		u.log.Warnf("Failed to list room messages: %+v", err)
		return nil, err
	}

	return &dto.ChatRoomDetailResponse{
		ID:        room.ID,
		OtherUser: converter.ChatUserToResponse(other),
		Messages:  converter.MessagesToResponses(messages),
	}, nil
}

func (u *chatUsecase) RoomDetail(ctx context.Context, userID uuid.UUID, roomID int64) (*dto.ChatRoomDetailResponse, error) {
	db := u.db.WithContext(ctx)

	room, err := u.AuthorizeRoom(ctx, userID, roomID)
	if err != nil {
		return nil, err
	}

	other, err := u.userRepo.FindByID(db, room.OtherParticipant(userID))
	if err != nil {
		u.log.Warnf("Failed to find other participant: %+v", err)
		return nil, err
	}

	messages, err := u.messageRepo.FindByRoom(db, room.ID)
	if err != nil {
		u.log.Warnf("Failed to list room messages: %+v", err)
		return nil, err
	}

	return &dto.ChatRoomDetailResponse{
		ID:        room.ID,
		OtherUser: converter.ChatUserToResponse(other),
		Messages:  converter.MessagesToResponses(messages),
	}, nil
}

// SendMessage persists the message and then notifies live subscribers. The
// write is the source of truth; a failed live delivery is only logged.
func (u *chatUsecase) SendMessage(ctx context.Context, userID uuid.UUID, roomID int64, content string) (*dto.MessageResponse, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	db := u.db.WithContext(ctx)

	room, err := u.AuthorizeRoom(ctx, userID, roomID)
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		RoomID:     room.ID,
		SenderID:   userID,
		ReceiverID: room.OtherParticipant(userID),
		Content:    content,
	}

	if err := u.messageRepo.Create(db, message); err != nil {
		u.log.Warnf("Failed to create message: %+v", err)
		return nil, err
	}

	// Bump the room so conversation lists sort by latest activity
	if err := u.roomRepo.Touch(db, room.ID); err != nil {
		u.log.Warnf("Failed to touch chat room: %+v", err)
	}

	response := converter.MessageToResponse(message)
	u.hub.Broadcast(room.ID, response)
	return response, nil
}

func (u *chatUsecase) AuthorizeRoom(ctx context.Context, userID uuid.UUID, roomID int64) (*entity.ChatRoom, error) {
	room, err := u.roomRepo.FindByID(u.db.WithContext(ctx), roomID)
	if err != nil {
		u.log.Warnf("Failed to find chat room: %+v", err)
		return nil, err
	}
	if room == nil {
		return nil, ErrChatRoomNotFound
	}
	if !room.HasParticipant(userID) {
		return nil, ErrRoomAccessDenied
	}
	return room, nil
}
