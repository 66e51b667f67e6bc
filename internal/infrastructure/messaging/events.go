package messaging

import "github.com/dmartinrc/salachat/internal/domain"

const (
	AuditQueue      = "room_audit"
	DeadLetterQueue = "dead_letter_queue"
)

type RoomEventData struct {
	Room domain.Room `json:"room"`
}

type MessageEventData struct {
	RoomID    string `json:"roomId"`
	MessageID string `json:"messageId"`
}
