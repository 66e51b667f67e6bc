package rooms

import (
	"errors"
	"log"
	"net/http"

	"github.com/dmartinrc/salachat/internal/domain"
	"github.com/dmartinrc/salachat/internal/infrastructure/events"
	"github.com/dmartinrc/salachat/internal/infrastructure/json"
	"github.com/dmartinrc/salachat/internal/infrastructure/metrics"
	"github.com/dmartinrc/salachat/internal/infrastructure/validate"
	"github.com/dmartinrc/salachat/internal/presentation/utils"
)

// maxCodeAttempts bounds the regenerate-and-retry loop when a freshly
// generated room code collides with an existing one.
const maxCodeAttempts = 5

var (
	validateName = validate.Field("nombre",
		validate.Required(),
		validate.MaxLength(100),
	)
	validateCode = validate.Field("codigo",
		validate.Required(),
		validate.Length(domain.CodeLength),
		validate.Uppercase(),
	)
)

type Handler struct {
	roomRepository domain.RoomRepository
	roomPublisher  *events.RoomPublisher
}

func NewHandler(
	roomRepository domain.RoomRepository,
	roomPublisher *events.RoomPublisher,
) *Handler {
	return &Handler{
		roomRepository: roomRepository,
		roomPublisher:  roomPublisher,
	}
}

// CreateRoomHandler godoc
// @Summary      Create a new chat room
// @Description  Creates a room with a generated unique code and color, with the caller as first member
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        request body createRoomRequest true "Room creation parameters"
// @Success      201 {object} roomEnvelope "Room created"
// @Failure      400 {object} json.ErrorResponse "Validation error"
// @Failure      401 {object} json.ErrorResponse "Missing identity"
// @Failure      500 {object} json.ErrorResponse "Internal server error"
// @Security     UserAuth
// @Router       /rooms [post]
func (h *Handler) CreateRoomHandler(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	if err := validateName(req.Name); err != nil {
		json.WriteValidationError(w, err)
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

	ctx := r.Context()

	var room *domain.Room
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := domain.NewRoomCode()
		if err != nil {
			json.WriteInternalError(w, err)
			return
		}

		candidate := domain.NewRoom(req.Name, code, domain.NewRoomColor(), uid)
		err = h.roomRepository.Create(ctx, candidate)
		if err == nil {
			room = candidate
			break
		}
		if errors.Is(err, domain.ErrCodeTaken) {
			metrics.CodeRetries.Inc()
			continue
		}

		json.WriteInternalError(w, err)
		return
	}

	if room == nil {
		json.WriteInternalError(w, domain.ErrCodeTaken)
		return
	}

	metrics.RoomsCreated.Inc()

	if err := h.roomPublisher.PublishRoomCreated(ctx, *room); err != nil {
		log.Printf("Error publishing room created: %v", err)
	}

	json.Write(w, http.StatusCreated, roomEnvelope{
		OK: true,
		Sala: salaResponse{
			Name:  room.Name,
			Code:  room.Code,
			Color: room.Color,
			UID:   uid.Hex(),
		},
	})
}

// JoinRoomHandler godoc
// @Summary      Join a room by code
// @Description  Adds the caller to the member list of the room holding the given code
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        request body joinRoomRequest true "Room code"
// @Success      200 {object} roomEnvelope "Joined"
// @Failure      400 {object} json.ErrorResponse "Validation error"
// @Failure      401 {object} json.ErrorResponse "Missing identity"
// @Failure      404 {object} json.ErrorResponse "Room not found"
// @Failure      500 {object} json.ErrorResponse "Internal server error"
// @Security     UserAuth
// @Router       /rooms/join [post]
func (h *Handler) JoinRoomHandler(w http.ResponseWriter, r *http.Request) {
	var req joinRoomRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	if err := validateCode(req.Code); err != nil {
		json.WriteValidationError(w, err)
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

	ctx := r.Context()

	room, err := h.roomRepository.GetByCode(ctx, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound):
			json.WriteNotFound(w)
		default:
			log.Printf("Failed to find room by code: %v", err)
			json.WriteInternalError(w, err)
		}
		return
	}

	if err := h.roomRepository.AddMember(ctx, room.ID, uid); err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound):
			json.WriteNotFound(w)
		default:
			log.Printf("Failed to add member to room %s: %v", room.ID.Hex(), err)
			json.WriteInternalError(w, err)
		}
		return
	}

	room.AddMember(uid)
	if err := h.roomPublisher.PublishMemberJoined(ctx, *room); err != nil {
		log.Printf("Error publishing member joined: %v", err)
	}

	json.Write(w, http.StatusOK, roomEnvelope{
		OK: true,
		Sala: salaResponse{
			Name:  room.Name,
			Code:  room.Code,
			Color: room.Color,
			UID:   uid.Hex(),
		},
	})
}

// GetRoomsHandler godoc
// @Summary      List all rooms
// @Description  Returns every room projected to name, code, color and member ids
// @Tags         rooms
// @Produce      json
// @Success      200 {object} roomListEnvelope "Room listing"
// @Failure      500 {object} json.ErrorResponse "Internal server error"
// @Router       /rooms [get]
func (h *Handler) GetRoomsHandler(w http.ResponseWriter, r *http.Request) {
	salas, err := h.roomRepository.GetAll(r.Context())
	if err != nil {
		log.Printf("Failed to list rooms: %v", err)
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusOK, roomListEnvelope{OK: true, Salas: salas})
}

// GetMyRoomsHandler godoc
// @Summary      List the caller's rooms with messages
// @Description  Returns every room the caller belongs to, with message references resolved
// @Tags         rooms
// @Produce      json
// @Success      200 {object} roomsWithMessagesEnvelope "Rooms with messages"
// @Failure      400 {object} json.ErrorResponse "Invalid identity"
// @Failure      401 {object} json.ErrorResponse "Missing identity"
// @Failure      500 {object} json.ErrorResponse "Internal server error"
// @Security     UserAuth
// @Router       /rooms/mine [get]
func (h *Handler) GetMyRoomsHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := utils.GetUserID(r)
	if err != nil {
		if errors.Is(err, utils.ErrMissingIdentity) {
			json.WriteUnauthorized(w)
			return
		}
		json.WriteValidationError(w, err)
		return
	}

	salas, err := h.roomRepository.GetByMemberWithMessages(r.Context(), uid)
	if err != nil {
		log.Printf("Failed to list rooms for member %s: %v", uid.Hex(), err)
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusOK, roomsWithMessagesEnvelope{OK: true, Salas: salas})
}

// GetMyRoomsSummaryHandler godoc
// @Summary      Summarize the caller's rooms
// @Description  Returns the caller's rooms projected to name, code and color, plus the membership count
// @Tags         rooms
// @Produce      json
// @Success      200 {object} memberSummaryEnvelope "Room summaries"
// @Failure      400 {object} json.ErrorResponse "Invalid identity"
// @Failure      401 {object} json.ErrorResponse "Missing identity"
// @Failure      500 {object} json.ErrorResponse "Internal server error"
// @Security     UserAuth
// @Router       /rooms/mine/summary [get]
func (h *Handler) GetMyRoomsSummaryHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := utils.GetUserID(r)
	if err != nil {
		if errors.Is(err, utils.ErrMissingIdentity) {
			json.WriteUnauthorized(w)
			return
		}
		json.WriteValidationError(w, err)
		return
	}

	ctx := r.Context()

	salas, err := h.roomRepository.GetByMember(ctx, uid)
	if err != nil {
		log.Printf("Failed to summarize rooms for member %s: %v", uid.Hex(), err)
		json.WriteInternalError(w, err)
		return
	}

	total, err := h.roomRepository.CountByMember(ctx, uid)
	if err != nil {
		log.Printf("Failed to count rooms for member %s: %v", uid.Hex(), err)
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusOK, memberSummaryEnvelope{
		OK:            true,
		Salas:         salas,
		TotalUsuarios: total,
	})
}
