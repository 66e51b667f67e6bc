package messages

import "github.com/dmartinrc/salachat/internal/domain"

// postMessageRequest represents the request to record a message in a room
type postMessageRequest struct {
	Text   string `json:"mensaje" example:"hola a todos" minLength:"1"` // Message body
	RoomID string `json:"salaId" example:"64f1c0a9e13b2a5d8c3f0a22"`    // Target room id
}

// roomDocEnvelope wraps the full stored room document
type roomDocEnvelope struct {
	OK   bool         `json:"ok"`
	Sala *domain.Room `json:"sala"`
}

// messagesEnvelope wraps a room's resolved message list
type messagesEnvelope struct {
	OK       bool             `json:"ok"`
	Mensajes []domain.Message `json:"mensajes"`
}

// roomWithMessagesEnvelope wraps a room with messages resolved
type roomWithMessagesEnvelope struct {
	OK   bool                     `json:"ok"`
	Sala *domain.RoomWithMessages `json:"sala"`
}

// roomDetailEnvelope wraps a room with both messages and members resolved
type roomDetailEnvelope struct {
	OK   bool               `json:"ok"`
	Sala *domain.RoomDetail `json:"sala"`
}
