package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is an immutable text record authored by one user. It is referenced
// by exactly one room but stored in its own collection.
type Message struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Text   string             `bson:"mensaje" json:"mensaje"`
	Author primitive.ObjectID `bson:"usuario" json:"usuario"`
}

type MessageRepository interface {
	// Create inserts the message and returns its generated identity.
	Create(ctx context.Context, message *Message) (primitive.ObjectID, error)
	// Delete removes a message. Used to clean up an orphan when attaching the
	// reference to its room fails.
	Delete(ctx context.Context, id primitive.ObjectID) error
}

func NewMessage(text string, author primitive.ObjectID) *Message {
	return &Message{
		Text:   text,
		Author: author,
	}
}
