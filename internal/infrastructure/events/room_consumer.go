package events

import (
	"context"
	"encoding/json"
	"log"

	"github.com/dmartinrc/salachat/internal/domain"
	"github.com/dmartinrc/salachat/internal/infrastructure/contracts"
	"github.com/dmartinrc/salachat/internal/infrastructure/messaging"
	"github.com/rabbitmq/amqp091-go"
)

// roomConsumer drains the audit queue and persists one audit document per
// event, off the request path.
type roomConsumer struct {
	rabbitmq  *messaging.RabbitMQ
	auditRepo domain.RoomAuditRepository
}

func NewRoomConsumer(rabbitmq *messaging.RabbitMQ, auditRepo domain.RoomAuditRepository) *roomConsumer {
	return &roomConsumer{
		rabbitmq:  rabbitmq,
		auditRepo: auditRepo,
	}
}

func (c *roomConsumer) Listen() error {
	return c.rabbitmq.ConsumeMessages(messaging.AuditQueue, func(ctx context.Context, msg amqp091.Delivery) error {
		var message contracts.AmqpMessage
		if err := json.Unmarshal(msg.Body, &message); err != nil {
			log.Printf("Failed to unmarshal message: %v", err)
			return err
		}

		auditLog, err := c.buildAuditLog(msg.RoutingKey, message)
		if err != nil {
			log.Printf("Failed to build audit log: %v", err)
			return err
		}

		return c.auditRepo.Log(ctx, auditLog)
	})
}

func (c *roomConsumer) buildAuditLog(routingKey string, message contracts.AmqpMessage) (*domain.RoomAuditLog, error) {
	switch routingKey {
	case contracts.EventMessageSent:
		var payload messaging.MessageEventData
		if err := json.Unmarshal(message.Data, &payload); err != nil {
			return nil, err
		}
		return domain.NewMessageSentLog(payload.RoomID, payload.MessageID), nil

	case contracts.EventMemberJoined:
		var payload messaging.RoomEventData
		if err := json.Unmarshal(message.Data, &payload); err != nil {
			return nil, err
		}
		return domain.NewMemberJoinedLog(payload.Room.ID.Hex(), len(payload.Room.Members)), nil

	default: // contracts.EventRoomCreated
		var payload messaging.RoomEventData
		if err := json.Unmarshal(message.Data, &payload); err != nil {
			return nil, err
		}
		return domain.NewRoomCreatedLog(payload.Room.ID.Hex(), payload.Room.Code, len(payload.Room.Members)), nil
	}
}
