package domain

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrCodeTaken    = errors.New("room code already taken")
	ErrInvalidID    = errors.New("invalid object id")
	ErrInvalidInput = errors.New("invalid input")
)

// Room is the stored chat-room document. The bson field names mirror the
// legacy collection schema, which is shared with the auth service.
type Room struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name     string               `bson:"nombre" json:"nombre"`
	Code     string               `bson:"codigo" json:"codigo"`
	Color    string               `bson:"color" json:"color"`
	Members  []primitive.ObjectID `bson:"usuarios" json:"usuarios"`
	Messages []primitive.ObjectID `bson:"mensajes" json:"mensajes"`
}

// RoomSummary is the projection returned by listings. Fields absent from a
// given projection stay zero and are dropped from the JSON payload.
type RoomSummary struct {
	ID      primitive.ObjectID   `bson:"_id" json:"id"`
	Name    string               `bson:"nombre" json:"nombre"`
	Code    string               `bson:"codigo" json:"codigo"`
	Color   string               `bson:"color" json:"color"`
	Members []primitive.ObjectID `bson:"usuarios,omitempty" json:"usuarios,omitempty"`
}

// RoomWithMessages is a room with its message references resolved to full
// message documents, in insertion (chronological) order.
type RoomWithMessages struct {
	ID       primitive.ObjectID   `bson:"_id" json:"id"`
	Name     string               `bson:"nombre" json:"nombre"`
	Code     string               `bson:"codigo" json:"codigo"`
	Color    string               `bson:"color" json:"color"`
	Members  []primitive.ObjectID `bson:"usuarios" json:"usuarios"`
	Messages []Message            `bson:"mensajes" json:"mensajes"`
}

// RoomDetail resolves both message and member references.
type RoomDetail struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Name     string             `bson:"nombre" json:"nombre"`
	Code     string             `bson:"codigo" json:"codigo"`
	Color    string             `bson:"color" json:"color"`
	Members  []User             `bson:"usuarios" json:"usuarios"`
	Messages []Message          `bson:"mensajes" json:"mensajes"`
}

type RoomRepository interface {
	// Create inserts the room. ErrCodeTaken is returned when another room
	// already holds the same code; callers regenerate and retry.
	Create(ctx context.Context, room *Room) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Room, error)
	GetByCode(ctx context.Context, code string) (*Room, error)
	GetAll(ctx context.Context) ([]RoomSummary, error)
	GetByMember(ctx context.Context, uid primitive.ObjectID) ([]RoomSummary, error)
	GetByMemberWithMessages(ctx context.Context, uid primitive.ObjectID) ([]RoomWithMessages, error)
	CountByMember(ctx context.Context, uid primitive.ObjectID) (int64, error)
	AddMember(ctx context.Context, roomID, uid primitive.ObjectID) error
	// AttachMessage appends a message reference to the room. The operation is
	// idempotent so a failed attach can be retried without duplicating the
	// reference.
	AttachMessage(ctx context.Context, roomID, messageID primitive.ObjectID) error
	GetByCodeWithMessages(ctx context.Context, code string) (*RoomWithMessages, error)
	GetByIDWithMessages(ctx context.Context, id primitive.ObjectID) (*RoomWithMessages, error)
	GetByIDResolved(ctx context.Context, id primitive.ObjectID) (*RoomDetail, error)
	EnsureIndexes(ctx context.Context) error
}

// NewRoom builds a room with the creator as its first member.
func NewRoom(name, code, color string, creator primitive.ObjectID) *Room {
	return &Room{
		Name:     name,
		Code:     code,
		Color:    color,
		Members:  []primitive.ObjectID{creator},
		Messages: []primitive.ObjectID{},
	}
}

// AddMember appends a member. Duplicates are permitted: the member list keeps
// one entry per join, matching the legacy behavior.
func (r *Room) AddMember(uid primitive.ObjectID) {
	r.Members = append(r.Members, uid)
}

// HasMember reports whether uid appears in the member list.
func (r *Room) HasMember(uid primitive.ObjectID) bool {
	for _, m := range r.Members {
		if m == uid {
			return true
		}
	}
	return false
}
