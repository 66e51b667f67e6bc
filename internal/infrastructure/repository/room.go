package repository

import (
	"context"
	"sync"

	"github.com/dmartinrc/salachat/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoomRepository is an in-memory domain.RoomRepository. It mirrors the
// storage-backed repository's contract, including code uniqueness on Create
// and idempotent message attachment, so handlers behave identically under the
// memory driver.
type RoomRepository struct {
	mu       sync.RWMutex
	rooms    map[primitive.ObjectID]*domain.Room
	codes    map[string]primitive.ObjectID
	users    map[primitive.ObjectID]domain.User
	messages *MessageRepository
}

func NewRoomRepository(messages *MessageRepository) *RoomRepository {
	return &RoomRepository{
		rooms:    make(map[primitive.ObjectID]*domain.Room),
		codes:    make(map[string]primitive.ObjectID),
		users:    make(map[primitive.ObjectID]domain.User),
		messages: messages,
	}
}

// SeedUser registers a user document for member resolution.
func (r *RoomRepository) SeedUser(user domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = user
}

func (r *RoomRepository) Create(_ context.Context, room *domain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.codes[room.Code]; taken {
		return domain.ErrCodeTaken
	}

	if room.ID.IsZero() {
		room.ID = primitive.NewObjectID()
	}

	clone := cloneRoom(room)
	r.rooms[clone.ID] = clone
	r.codes[clone.Code] = clone.ID

	return nil
}

func (r *RoomRepository) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	return cloneRoom(room), nil
}

func (r *RoomRepository) GetByCode(_ context.Context, code string) (*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.codes[code]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	return cloneRoom(r.rooms[id]), nil
}

func (r *RoomRepository) GetAll(_ context.Context) ([]domain.RoomSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := []domain.RoomSummary{}
	for _, room := range r.rooms {
		summaries = append(summaries, domain.RoomSummary{
			ID:      room.ID,
			Name:    room.Name,
			Code:    room.Code,
			Color:   room.Color,
			Members: append([]primitive.ObjectID{}, room.Members...),
		})
	}

	return summaries, nil
}

func (r *RoomRepository) GetByMember(_ context.Context, uid primitive.ObjectID) ([]domain.RoomSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := []domain.RoomSummary{}
	for _, room := range r.rooms {
		if room.HasMember(uid) {
			summaries = append(summaries, domain.RoomSummary{
				ID:    room.ID,
				Name:  room.Name,
				Code:  room.Code,
				Color: room.Color,
			})
		}
	}

	return summaries, nil
}

func (r *RoomRepository) GetByMemberWithMessages(_ context.Context, uid primitive.ObjectID) ([]domain.RoomWithMessages, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := []domain.RoomWithMessages{}
	for _, room := range r.rooms {
		if room.HasMember(uid) {
			rooms = append(rooms, r.resolveMessages(room))
		}
	}

	return rooms, nil
}

func (r *RoomRepository) CountByMember(_ context.Context, uid primitive.ObjectID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, room := range r.rooms {
		if room.HasMember(uid) {
			count++
		}
	}

	return count, nil
}

func (r *RoomRepository) AddMember(_ context.Context, roomID, uid primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return domain.ErrRoomNotFound
	}
	room.AddMember(uid)

	return nil
}

func (r *RoomRepository) AttachMessage(_ context.Context, roomID, messageID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		return domain.ErrRoomNotFound
	}

	for _, existing := range room.Messages {
		if existing == messageID {
			return nil
		}
	}
	room.Messages = append(room.Messages, messageID)

	return nil
}

func (r *RoomRepository) GetByCodeWithMessages(_ context.Context, code string) (*domain.RoomWithMessages, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.codes[code]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	resolved := r.resolveMessages(r.rooms[id])
	return &resolved, nil
}

func (r *RoomRepository) GetByIDWithMessages(_ context.Context, id primitive.ObjectID) (*domain.RoomWithMessages, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	resolved := r.resolveMessages(room)
	return &resolved, nil
}

func (r *RoomRepository) GetByIDResolved(_ context.Context, id primitive.ObjectID) (*domain.RoomDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	members := []domain.User{}
	for _, uid := range room.Members {
		if user, found := r.users[uid]; found {
			members = append(members, user)
		}
	}

	return &domain.RoomDetail{
		ID:       room.ID,
		Name:     room.Name,
		Code:     room.Code,
		Color:    room.Color,
		Members:  members,
		Messages: r.messages.getMany(room.Messages),
	}, nil
}

func (r *RoomRepository) EnsureIndexes(_ context.Context) error {
	return nil
}

func (r *RoomRepository) resolveMessages(room *domain.Room) domain.RoomWithMessages {
	return domain.RoomWithMessages{
		ID:       room.ID,
		Name:     room.Name,
		Code:     room.Code,
		Color:    room.Color,
		Members:  append([]primitive.ObjectID{}, room.Members...),
		Messages: r.messages.getMany(room.Messages),
	}
}

func cloneRoom(room *domain.Room) *domain.Room {
	return &domain.Room{
		ID:       room.ID,
		Name:     room.Name,
		Code:     room.Code,
		Color:    room.Color,
		Members:  append([]primitive.ObjectID{}, room.Members...),
		Messages: append([]primitive.ObjectID{}, room.Messages...),
	}
}
