package rooms

import "github.com/dmartinrc/salachat/internal/domain"

// createRoomRequest represents the request to create a new chat room
type createRoomRequest struct {
	Name string `json:"nombre" example:"Equipo backend" minLength:"1"` // Display name for the room
}

// joinRoomRequest represents the request to join an existing room by code
type joinRoomRequest struct {
	Code string `json:"codigo" example:"K7KQ2M"` // Room code shared out of band
}

// salaResponse is the reduced room payload returned by create and join,
// echoing the caller's uid alongside the room fields.
type salaResponse struct {
	Name  string `json:"nombre" example:"Equipo backend"`
	Code  string `json:"codigo" example:"K7KQ2M"`
	Color string `json:"color" example:"1fa3c9"`
	UID   string `json:"uid" example:"64f1c0a9e13b2a5d8c3f0a11"`
}

// roomEnvelope wraps a single reduced room
type roomEnvelope struct {
	OK   bool         `json:"ok"`
	Sala salaResponse `json:"sala"`
}

// roomListEnvelope wraps a room listing
type roomListEnvelope struct {
	OK    bool                 `json:"ok"`
	Salas []domain.RoomSummary `json:"salas"`
}

// roomsWithMessagesEnvelope wraps the caller's rooms with messages resolved
type roomsWithMessagesEnvelope struct {
	OK    bool                      `json:"ok"`
	Salas []domain.RoomWithMessages `json:"salas"`
}

// memberSummaryEnvelope wraps the caller's room summaries plus the count of
// rooms they belong to
type memberSummaryEnvelope struct {
	OK            bool                 `json:"ok"`
	Salas         []domain.RoomSummary `json:"salas"`
	TotalUsuarios int64                `json:"totalUsuarios"`
}
