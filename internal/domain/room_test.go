package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewRoom(t *testing.T) {
	creator := primitive.NewObjectID()
	room := NewRoom("General", "K7KQ2M", "1fa3c9", creator)

	require.NotNil(t, room)
	assert.Equal(t, "General", room.Name)
	assert.Equal(t, "K7KQ2M", room.Code)
	assert.Equal(t, "1fa3c9", room.Color)
	assert.Equal(t, []primitive.ObjectID{creator}, room.Members)
	assert.NotNil(t, room.Messages)
	assert.Empty(t, room.Messages)
}

func TestRoomAddMemberKeepsDuplicates(t *testing.T) {
	creator := primitive.NewObjectID()
	room := NewRoom("General", "K7KQ2M", "1fa3c9", creator)

	room.AddMember(creator)
	room.AddMember(creator)

	// One entry per join, duplicates included.
	assert.Len(t, room.Members, 3)
}

func TestRoomHasMember(t *testing.T) {
	creator := primitive.NewObjectID()
	other := primitive.NewObjectID()
	room := NewRoom("General", "K7KQ2M", "1fa3c9", creator)

	assert.True(t, room.HasMember(creator))
	assert.False(t, room.HasMember(other))
}
