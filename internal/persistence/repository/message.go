package repository

import (
	"context"

	"github.com/dmartinrc/salachat/internal/domain"
	"github.com/dmartinrc/salachat/internal/persistence/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type messageRepository struct {
	db *mongo.Database
}

func NewMessageRepository(database *mongo.Database) domain.MessageRepository {
	return &messageRepository{
		db: database,
	}
}

func (r *messageRepository) collection() *mongo.Collection {
	return r.db.Collection(db.MessagesCollection)
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) (primitive.ObjectID, error) {
	res, err := r.collection().InsertOne(ctx, message)
	if err != nil {
		return primitive.NilObjectID, err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	message.ID = oid

	return oid, nil
}

func (r *messageRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	return err
}
