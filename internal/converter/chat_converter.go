package converter

import (
	"lifelink/internal/delivery/dto"
	"lifelink/internal/domain/entity"
)

// MessageToResponse converts a Message entity to its DTO.
func MessageToResponse(message *entity.Message) *dto.MessageResponse {
	if message == nil {
		return nil
	}

	return &dto.MessageResponse{
		ID:         message.ID,
		RoomID:     message.RoomID,
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
		Content:    message.Content,
		CreatedAt:  message.CreatedAt,
	}
}

// MessagesToResponses converts a slice of messages.
func MessagesToResponses(messages []entity.Message) []dto.MessageResponse {
	responses := make([]dto.MessageResponse, len(messages))
	for i, message := range messages {
		responses[i] = *MessageToResponse(&message)
	}
	return responses
}

// ChatUserToResponse converts a User entity to the compact chat DTO.
func ChatUserToResponse(user *entity.User) dto.ChatUserResponse {
	if user == nil {
		return dto.ChatUserResponse{}
	}

	return dto.ChatUserResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     entity.RoleNameByID[user.RoleID],
	}
}
