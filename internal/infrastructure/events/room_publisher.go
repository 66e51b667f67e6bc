package events

import (
	"context"
	"encoding/json"

	"github.com/dmartinrc/salachat/internal/domain"
	"github.com/dmartinrc/salachat/internal/infrastructure/contracts"
	"github.com/dmartinrc/salachat/internal/infrastructure/messaging"
)

// RoomPublisher emits room lifecycle events. Publishing is best effort: the
// request succeeds even when the broker is down, callers only log the error.
type RoomPublisher struct {
	rabbitmq *messaging.RabbitMQ
}

func NewRoomPublisher(rabbitmq *messaging.RabbitMQ) *RoomPublisher {
	return &RoomPublisher{
		rabbitmq: rabbitmq,
	}
}

func (p *RoomPublisher) PublishRoomCreated(ctx context.Context, room domain.Room) error {
	return p.publishRoomEvent(ctx, contracts.EventRoomCreated, room)
}

func (p *RoomPublisher) PublishMemberJoined(ctx context.Context, room domain.Room) error {
	return p.publishRoomEvent(ctx, contracts.EventMemberJoined, room)
}

func (p *RoomPublisher) PublishMessageSent(ctx context.Context, roomID, messageID string) error {
	if p == nil || p.rabbitmq == nil {
		return nil
	}

	payload := messaging.MessageEventData{
		RoomID:    roomID,
		MessageID: messageID,
	}

	eventJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.rabbitmq.PublishMessage(ctx, contracts.EventMessageSent, contracts.AmqpMessage{
		RoomID: roomID,
		Data:   eventJSON,
	})
}

func (p *RoomPublisher) publishRoomEvent(ctx context.Context, routingKey string, room domain.Room) error {
	if p == nil || p.rabbitmq == nil {
		return nil
	}

	payload := messaging.RoomEventData{
		Room: room,
	}

	roomEventJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.rabbitmq.PublishMessage(ctx, routingKey, contracts.AmqpMessage{
		RoomID: room.ID.Hex(),
		Data:   roomEventJSON,
	})
}
