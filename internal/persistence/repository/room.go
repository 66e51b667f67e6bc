package repository

import (
	"context"
	"errors"

	"github.com/dmartinrc/salachat/internal/domain"
	"github.com/dmartinrc/salachat/internal/persistence/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type roomRepository struct {
	db *mongo.Database
}

func NewRoomRepository(database *mongo.Database) domain.RoomRepository {
	return &roomRepository{
		db: database,
	}
}

func (r *roomRepository) collection() *mongo.Collection {
	return r.db.Collection(db.RoomsCollection)
}

// Create inserts the room. The unique index on "codigo" is the authority on
// code uniqueness: a duplicate-key error maps to ErrCodeTaken and the caller
// retries with a fresh code.
func (r *roomRepository) Create(ctx context.Context, room *domain.Room) error {
	res, err := r.collection().InsertOne(ctx, room)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrCodeTaken
		}
		return err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		room.ID = oid
	}

	return nil
}

func (r *roomRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Room, error) {
	var room domain.Room
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&room)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}

	return &room, nil
}

func (r *roomRepository) GetByCode(ctx context.Context, code string) (*domain.Room, error) {
	var room domain.Room
	err := r.collection().FindOne(ctx, bson.M{"codigo": code}).Decode(&room)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}

	return &room, nil
}

func (r *roomRepository) GetAll(ctx context.Context) ([]domain.RoomSummary, error) {
	opts := options.Find().SetProjection(bson.M{
		"nombre":   1,
		"codigo":   1,
		"usuarios": 1,
		"color":    1,
	})

	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rooms := []domain.RoomSummary{}
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *roomRepository) GetByMember(ctx context.Context, uid primitive.ObjectID) ([]domain.RoomSummary, error) {
	opts := options.Find().SetProjection(bson.M{
		"nombre": 1,
		"codigo": 1,
		"color":  1,
	})

	cursor, err := r.collection().Find(ctx, bson.M{"usuarios": uid}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rooms := []domain.RoomSummary{}
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *roomRepository) GetByMemberWithMessages(ctx context.Context, uid primitive.ObjectID) ([]domain.RoomWithMessages, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"usuarios": uid}}},
		lookupMessagesStage(),
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rooms := []domain.RoomWithMessages{}
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *roomRepository) CountByMember(ctx context.Context, uid primitive.ObjectID) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{"usuarios": uid})
}

func (r *roomRepository) AddMember(ctx context.Context, roomID, uid primitive.ObjectID) error {
	res, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": roomID},
		bson.M{"$push": bson.M{"usuarios": uid}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrRoomNotFound
	}

	return nil
}

func (r *roomRepository) AttachMessage(ctx context.Context, roomID, messageID primitive.ObjectID) error {
	// $addToSet keeps the attach idempotent: retrying after a transient
	// failure cannot duplicate the reference.
	res, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": roomID},
		bson.M{"$addToSet": bson.M{"mensajes": messageID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrRoomNotFound
	}

	return nil
}

func (r *roomRepository) GetByCodeWithMessages(ctx context.Context, code string) (*domain.RoomWithMessages, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"codigo": code}}},
		lookupMessagesStage(),
	}

	return r.aggregateOneWithMessages(ctx, pipeline)
}

func (r *roomRepository) GetByIDWithMessages(ctx context.Context, id primitive.ObjectID) (*domain.RoomWithMessages, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		lookupMessagesStage(),
	}

	return r.aggregateOneWithMessages(ctx, pipeline)
}

func (r *roomRepository) GetByIDResolved(ctx context.Context, id primitive.ObjectID) (*domain.RoomDetail, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		lookupMessagesStage(),
		{{Key: "$lookup", Value: bson.M{
			"from":         db.UsersCollection,
			"localField":   "usuarios",
			"foreignField": "_id",
			"as":           "usuarios",
		}}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rooms []domain.RoomDetail
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, domain.ErrRoomNotFound
	}

	return &rooms[0], nil
}

func (r *roomRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			// Storage-level uniqueness guarantee for room codes.
			Keys:    bson.D{{Key: "codigo", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "usuarios", Value: 1}},
		},
	}

	_, err := r.collection().Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *roomRepository) aggregateOneWithMessages(ctx context.Context, pipeline mongo.Pipeline) (*domain.RoomWithMessages, error) {
	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rooms []domain.RoomWithMessages
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, domain.ErrRoomNotFound
	}

	return &rooms[0], nil
}

// lookupMessagesStage resolves the "mensajes" reference array into full
// message documents, sorted by _id so insertion order is preserved.
func lookupMessagesStage() bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from": db.MessagesCollection,
		"let":  bson.M{"ids": "$mensajes"},
		"pipeline": []bson.M{
			{"$match": bson.M{"$expr": bson.M{"$in": bson.A{"$_id", "$$ids"}}}},
			{"$sort": bson.M{"_id": 1}},
		},
		"as": "mensajes",
	}}}
}
