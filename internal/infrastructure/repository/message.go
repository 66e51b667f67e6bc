package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/dmartinrc/salachat/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageRepository is an in-memory domain.MessageRepository used by the
// memory storage driver and by tests.
type MessageRepository struct {
	mu       sync.RWMutex
	messages map[primitive.ObjectID]domain.Message
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{
		messages: make(map[primitive.ObjectID]domain.Message),
	}
}

func (r *MessageRepository) Create(_ context.Context, message *domain.Message) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if message.ID.IsZero() {
		message.ID = primitive.NewObjectID()
	}
	r.messages[message.ID] = *message

	return message.ID, nil
}

func (r *MessageRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.messages, id)
	return nil
}

// getMany resolves ids to stored messages, skipping ids that no longer exist,
// ordered by id so resolution matches the storage-backed behavior.
func (r *MessageRepository) getMany(ids []primitive.ObjectID) []domain.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make([]domain.Message, 0, len(ids))
	for _, id := range ids {
		if msg, ok := r.messages[id]; ok {
			messages = append(messages, msg)
		}
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].ID.Hex() < messages[j].ID.Hex()
	})

	return messages
}
