package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"lifelink/internal/delivery/dto"
	"lifelink/internal/delivery/http/middleware"
	"lifelink/internal/service"
	"lifelink/internal/usecase"
	"lifelink/pkg/response"
	"lifelink/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	chatUsecase usecase.ChatUsecase
	hub         *service.ChatHub
	validator   *validator.CustomValidator
	log         *logrus.Logger
	upgrader    websocket.Upgrader
}

func NewChatHandler(
	chatUsecase usecase.ChatUsecase,
	hub *service.ChatHub,
	validator *validator.CustomValidator,
	log *logrus.Logger,
) *ChatHandler {
	return &ChatHandler{
		chatUsecase: chatUsecase,
		hub:         hub,
		validator:   validator,
		log:         log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (h *ChatHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	rooms, err := h.chatUsecase.ListRooms(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list chat rooms")
		return
	}

	response.Success(w, http.StatusOK, "Chat rooms retrieved successfully", rooms)
}

// OpenRoom finds or creates the conversation with another user
func (h *ChatHandler) OpenRoom(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.OpenRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	room, err := h.chatUsecase.OpenRoom(r.Context(), userID, req.UserID)
	if err != nil {
		switch err {
		case usecase.ErrChatWithSelf:
			response.Error(w, http.StatusBadRequest, "Cannot open a chat with yourself", nil)
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to open chat room")
		}
		return
	}

	response.Success(w, http.StatusOK, "Chat room opened successfully", room)
}

func (h *ChatHandler) RoomDetail(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	roomID, err := parseRoomID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	room, err := h.chatUsecase.RoomDetail(r.Context(), userID, roomID)
	if err != nil {
		switch err {
		case usecase.ErrChatRoomNotFound:
			response.NotFound(w, "Chat room not found")
		case usecase.ErrRoomAccessDenied:
			response.Forbidden(w, "Not a participant of this room")
		default:
			response.InternalServerError(w, "Failed to load chat room")
		}
		return
	}

	response.Success(w, http.StatusOK, "Chat room retrieved successfully", room)
}

// SendMessage posts a message over plain HTTP. Live subscribers on the
// room's WebSocket receive it as well.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	roomID, err := parseRoomID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	var req dto.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	message, err := h.chatUsecase.SendMessage(r.Context(), userID, roomID, req.Content)
	if err != nil {
		switch err {
		case usecase.ErrChatRoomNotFound:
			response.NotFound(w, "Chat room not found")
		case usecase.ErrRoomAccessDenied:
			response.Forbidden(w, "Not a participant of this room")
		case usecase.ErrEmptyMessage:
			response.Error(w, http.StatusBadRequest, "Message content is empty", nil)
		default:
			response.InternalServerError(w, "Failed to send message")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Message sent successfully", message)
}

// ServeWS upgrades the connection and attaches it to the room. Every
// message read from the socket is persisted and fanned out to the room's
// live subscribers, including the sender.
func (h *ChatHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	roomID, err := parseRoomID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	if _, err := h.chatUsecase.AuthorizeRoom(r.Context(), userID, roomID); err != nil {
		switch err {
		case usecase.ErrChatRoomNotFound:
			response.NotFound(w, "Chat room not found")
		case usecase.ErrRoomAccessDenied:
			response.Forbidden(w, "Not a participant of this room")
		default:
			response.InternalServerError(w, "Failed to join chat room")
		}
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnf("Failed to upgrade websocket: %+v", err)
		return
	}
	defer conn.Close()

	peer := service.NewChatPeer(conn)
	h.hub.Join(roomID, peer)
	defer h.hub.Leave(roomID, peer)

	for {
		var req dto.SendMessageRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warnf("Websocket read error: %+v", err)
			}
			return
		}

		if _, err := h.chatUsecase.SendMessage(r.Context(), userID, roomID, req.Content); err != nil {
			// Report the failure to the sender only; the socket stays open
			if sendErr := peer.Send(response.Response{Success: false, Message: err.Error()}); sendErr != nil {
				return
			}
		}
	}
}

func parseRoomID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
