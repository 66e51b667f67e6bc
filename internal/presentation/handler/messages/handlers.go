package messages

import (
	"errors"
	"log"
	"net/http"

	"github.com/dmartinrc/salachat/internal/domain"
	"github.com/dmartinrc/salachat/internal/infrastructure/events"
	"github.com/dmartinrc/salachat/internal/infrastructure/json"
	"github.com/dmartinrc/salachat/internal/infrastructure/metrics"
	"github.com/dmartinrc/salachat/internal/infrastructure/profanity"
	"github.com/dmartinrc/salachat/internal/infrastructure/validate"
	"github.com/dmartinrc/salachat/internal/presentation/utils"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const msgProfanity = "El mensaje contiene lenguaje inapropiado"

var (
	validateText = validate.Field("mensaje",
		validate.Required(),
		validate.MaxLength(1000),
	)
	validateRoomID = validate.Field("salaId", validate.HexObjectID())
)

type Handler struct {
	roomRepository    domain.RoomRepository
	messageRepository domain.MessageRepository
	filter            *profanity.Filter
	roomPublisher     *events.RoomPublisher
}

func NewHandler(
	roomRepository domain.RoomRepository,
	messageRepository domain.MessageRepository,
	filter *profanity.Filter,
	roomPublisher *events.RoomPublisher,
) *Handler {
	return &Handler{
		roomRepository:    roomRepository,
		messageRepository: messageRepository,
		filter:            filter,
		roomPublisher:     roomPublisher,
	}
}

// PostMessageHandler godoc
// @Summary      Record a message in a room
// @Description  Stores the message and attaches its reference to the room, returning the updated room document
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        request body postMessageRequest true "Message and target room"
// @Success      200 {object} roomDocEnvelope "Updated room"
// @Failure      400 {object} json.ErrorResponse "Validation error"
// @Failure      401 {object} json.ErrorResponse "Missing identity"
// @Failure      404 {object} json.ErrorResponse "Room not found"
// @Failure      500 {object} json.ErrorResponse "Internal server error"
// @Security     UserAuth
// @Router       /rooms/messages [post]
func (h *Handler) PostMessageHandler(w http.ResponseWriter, r *http.Request) {
	var req postMessageRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	if err := validateText(req.Text); err != nil {
		json.WriteValidationError(w, err)
		return
	}
	if err := validateRoomID(req.RoomID); err != nil {
		json.WriteValidationError(w, err)
		return
	}
	if h.filter.ContainsProfanity(req.Text) {
		json.WriteError(w, http.StatusBadRequest, msgProfanity)
		return
	}

	uid, err := utils.GetUserID(r)
	if err != nil {
		if errors.Is(err, utils.ErrMissingIdentity) {
			json.WriteUnauthorized(w)
			return
		}
		json.WriteValidationError(w, err)
		return
	}

	roomID, err := primitive.ObjectIDFromHex(req.RoomID)
	if err != nil {
		json.WriteValidationError(w, err)
		return
	}

	ctx := r.Context()

	// Resolve the room before inserting so a bad room id never leaves an
	// orphan message behind.
	if _, err := h.roomRepository.GetByID(ctx, roomID); err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound):
			json.WriteNotFound(w)
		default:
			log.Printf("Failed to find room %s: %v", req.RoomID, err)
			json.WriteInternalError(w, err)
		}
		return
	}

	message := domain.NewMessage(req.Text, uid)
	messageID, err := h.messageRepository.Create(ctx, message)
	if err != nil {
		log.Printf("Failed to store message for room %s: %v", req.RoomID, err)
		json.WriteInternalError(w, err)
		return
	}

	if err := h.roomRepository.AttachMessage(ctx, roomID, messageID); err != nil {
		// The message exists but the room never saw it. Remove the orphan so
		// the collections stay consistent.
		if delErr := h.messageRepository.Delete(ctx, messageID); delErr != nil {
			log.Printf("Failed to clean up orphan message %s: %v", messageID.Hex(), delErr)
		}

		switch {
		case errors.Is(err, domain.ErrRoomNotFound):
			json.WriteNotFound(w)
		default:
			log.Printf("Failed to attach message %s to room %s: %v", messageID.Hex(), req.RoomID, err)
			json.WriteInternalError(w, err)
		}
		return
	}

	room, err := h.roomRepository.GetByID(ctx, roomID)
	if err != nil {
		log.Printf("Failed to reload room %s: %v", req.RoomID, err)
		json.WriteInternalError(w, err)
		return
	}

	metrics.MessagesPosted.Inc()

	if err := h.roomPublisher.PublishMessageSent(ctx, roomID.Hex(), messageID.Hex()); err != nil {
		log.Printf("Error publishing message sent: %v", err)
	}

	json.Write(w, http.StatusOK, roomDocEnvelope{OK: true, Sala: room})
}

// GetMessagesByCodeHandler godoc
// @Summary      Get a room's messages by code
// @Description  Resolves the room by its code and returns the message history in order
// @Tags         messages
// @Produce      json
// @Param        code path string true "Room code"
// @Success      200 {object} messagesEnvelope "Message history"
// @Failure      404 {object} json.ErrorResponse "Room not found"
// @Failure      500 {object} json.ErrorResponse "Internal server error"
// @Router       /rooms/code/{code}/messages [get]
func (h *Handler) GetMessagesByCodeHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	sala, err := h.roomRepository.GetByCodeWithMessages(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound):
			json.WriteNotFound(w)
		default:
			log.Printf("Failed to load messages for code %s: %v", code, err)
			json.WriteInternalError(w, err)
		}
		return
	}

	json.Write(w, http.StatusOK, messagesEnvelope{OK: true, Mensajes: sala.Messages})
}

// GetRoomDetailHandler godoc
// @Summary      Get a room with members and messages resolved
// @Description  Returns the room with both member and message references expanded to full documents
// @Tags         messages
// @Produce      json
// @Param        roomId path string true "Room id"
// @Success      200 {object} roomDetailEnvelope "Resolved room"
// @Failure      400 {object} json.ErrorResponse "Invalid room id"
// @Failure      404 {object} json.ErrorResponse "Room not found"
// @Failure      500 {object} json.ErrorResponse "Internal server error"
// @Router       /rooms/{roomId} [get]
func (h *Handler) GetRoomDetailHandler(w http.ResponseWriter, r *http.Request) {
	roomID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "roomId"))
	if err != nil {
		json.WriteValidationError(w, err)
		return
	}

	sala, err := h.roomRepository.GetByIDResolved(r.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound):
			json.WriteNotFound(w)
		default:
			log.Printf("Failed to resolve room %s: %v", roomID.Hex(), err)
			json.WriteInternalError(w, err)
		}
		return
	}

	json.Write(w, http.StatusOK, roomDetailEnvelope{OK: true, Sala: sala})
}

// GetRoomMessagesHandler godoc
// @Summary      Get a room with its messages by id
// @Description  Returns the room with message references expanded, members left as ids
// @Tags         messages
// @Produce      json
// @Param        roomId path string true "Room id"
// @Success      200 {object} roomWithMessagesEnvelope "Room with messages"
// @Failure      400 {object} json.ErrorResponse "Invalid room id"
// @Failure      404 {object} json.ErrorResponse "Room not found"
// @Failure      500 {object} json.ErrorResponse "Internal server error"
// @Router       /rooms/{roomId}/messages [get]
func (h *Handler) GetRoomMessagesHandler(w http.ResponseWriter, r *http.Request) {
	roomID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "roomId"))
	if err != nil {
		json.WriteValidationError(w, err)
		return
	}

	sala, err := h.roomRepository.GetByIDWithMessages(r.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound):
			json.WriteNotFound(w)
		default:
			log.Printf("Failed to load messages for room %s: %v", roomID.Hex(), err)
			json.WriteInternalError(w, err)
		}
		return
	}

	json.Write(w, http.StatusOK, roomWithMessagesEnvelope{OK: true, Sala: sala})
}
