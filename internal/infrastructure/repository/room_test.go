package repository

import (
	"context"
	"testing"

	"github.com/dmartinrc/salachat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newRepos() (*RoomRepository, *MessageRepository) {
	messages := NewMessageRepository()
	return NewRoomRepository(messages), messages
}

func TestCreateRejectsDuplicateCode(t *testing.T) {
	rooms, _ := newRepos()
	ctx := context.Background()
	uid := primitive.NewObjectID()

	first := domain.NewRoom("Uno", "K7KQ2M", "1fa3c9", uid)
	require.NoError(t, rooms.Create(ctx, first))
	assert.False(t, first.ID.IsZero())

	second := domain.NewRoom("Dos", "K7KQ2M", "aabbcc", uid)
	err := rooms.Create(ctx, second)
	assert.ErrorIs(t, err, domain.ErrCodeTaken)
}

func TestGetByCodeNotFound(t *testing.T) {
	rooms, _ := newRepos()

	_, err := rooms.GetByCode(context.Background(), "ZZZZZZ")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestAttachMessageIsIdempotent(t *testing.T) {
	rooms, messages := newRepos()
	ctx := context.Background()
	uid := primitive.NewObjectID()

	room := domain.NewRoom("General", "K7KQ2M", "1fa3c9", uid)
	require.NoError(t, rooms.Create(ctx, room))

	msg := domain.NewMessage("hola", uid)
	msgID, err := messages.Create(ctx, msg)
	require.NoError(t, err)

	require.NoError(t, rooms.AttachMessage(ctx, room.ID, msgID))
	require.NoError(t, rooms.AttachMessage(ctx, room.ID, msgID))

	got, err := rooms.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Len(t, got.Messages, 1)
}

func TestAttachMessageUnknownRoom(t *testing.T) {
	rooms, _ := newRepos()

	err := rooms.AttachMessage(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestGetByMemberWithMessages(t *testing.T) {
	rooms, messages := newRepos()
	ctx := context.Background()
	member := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	mine := domain.NewRoom("Mia", "AAAAAA", "1fa3c9", member)
	require.NoError(t, rooms.Create(ctx, mine))

	other := domain.NewRoom("Ajena", "BBBBBB", "aabbcc", stranger)
	require.NoError(t, rooms.Create(ctx, other))

	msgID, err := messages.Create(ctx, domain.NewMessage("hola", member))
	require.NoError(t, err)
	require.NoError(t, rooms.AttachMessage(ctx, mine.ID, msgID))

	got, err := rooms.GetByMemberWithMessages(ctx, member)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Mia", got[0].Name)
	require.Len(t, got[0].Messages, 1)
	assert.Equal(t, "hola", got[0].Messages[0].Text)
}

func TestCountByMember(t *testing.T) {
	rooms, _ := newRepos()
	ctx := context.Background()
	member := primitive.NewObjectID()

	require.NoError(t, rooms.Create(ctx, domain.NewRoom("Uno", "AAAAAA", "1fa3c9", member)))
	require.NoError(t, rooms.Create(ctx, domain.NewRoom("Dos", "BBBBBB", "aabbcc", member)))

	count, err := rooms.CountByMember(ctx, member)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
