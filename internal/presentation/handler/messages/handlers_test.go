package messages

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmartinrc/salachat/internal/domain"
	"github.com/dmartinrc/salachat/internal/infrastructure/events"
	"github.com/dmartinrc/salachat/internal/infrastructure/profanity"
	memrepo "github.com/dmartinrc/salachat/internal/infrastructure/repository"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testEnv struct {
	router   *chi.Mux
	roomRepo *memrepo.RoomRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	messageRepo := memrepo.NewMessageRepository()
	roomRepo := memrepo.NewRoomRepository(messageRepo)
	h := NewHandler(roomRepo, messageRepo, profanity.NewFilter(), events.NewRoomPublisher(nil))

	r := chi.NewRouter()
	r.Route("/api/rooms", func(r chi.Router) {
		r.Post("/messages", h.PostMessageHandler)
		r.Get("/code/{code}/messages", h.GetMessagesByCodeHandler)
		r.Get("/{roomId}", h.GetRoomDetailHandler)
		r.Get("/{roomId}/messages", h.GetRoomMessagesHandler)
	})

	return &testEnv{router: r, roomRepo: roomRepo}
}

func (e *testEnv) seedRoom(t *testing.T, name, code string, members ...primitive.ObjectID) *domain.Room {
	t.Helper()

	require.NotEmpty(t, members)
	room := domain.NewRoom(name, code, "1fa3c9", members[0])
	for _, m := range members[1:] {
		room.AddMember(m)
	}
	require.NoError(t, e.roomRepo.Create(context.Background(), room))
	return room
}

func (e *testEnv) do(t *testing.T, method, target, uid, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if uid != "" {
		req.Header.Set("X-Uid", uid)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestPostMessage(t *testing.T) {
	env := newTestEnv(t)
	uid := primitive.NewObjectID()
	room := env.seedRoom(t, "General", "K7KQ2M", uid)

	rec := env.do(t, http.MethodPost, "/api/rooms/messages", uid.Hex(),
		`{"mensaje":"hola a todos","salaId":"`+room.ID.Hex()+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp roomDocEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.OK)
	require.NotNil(t, resp.Sala)
	assert.Equal(t, room.ID, resp.Sala.ID)
	require.Len(t, resp.Sala.Messages, 1)
}

func TestPostMessageUnknownRoom(t *testing.T) {
	env := newTestEnv(t)
	uid := primitive.NewObjectID().Hex()

	rec := env.do(t, http.MethodPost, "/api/rooms/messages", uid,
		`{"mensaje":"hola","salaId":"`+primitive.NewObjectID().Hex()+`"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp struct {
		OK  bool   `json:"ok"`
		Msg string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, "Sala no encontrada", resp.Msg)
}

func TestPostMessageValidation(t *testing.T) {
	env := newTestEnv(t)
	uid := primitive.NewObjectID()
	room := env.seedRoom(t, "General", "K7KQ2M", uid)

	for name, body := range map[string]string{
		"empty message": `{"mensaje":"","salaId":"` + room.ID.Hex() + `"}`,
		"bad room id":   `{"mensaje":"hola","salaId":"nope"}`,
		"profanity":     `{"mensaje":"vete a la mierda","salaId":"` + room.ID.Hex() + `"}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/rooms/messages", uid.Hex(), body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetMessagesByCode(t *testing.T) {
	env := newTestEnv(t)
	uid := primitive.NewObjectID()
	room := env.seedRoom(t, "General", "K7KQ2M", uid)

	for _, text := range []string{"primero", "segundo", "tercero"} {
		rec := env.do(t, http.MethodPost, "/api/rooms/messages", uid.Hex(),
			`{"mensaje":"`+text+`","salaId":"`+room.ID.Hex()+`"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := env.do(t, http.MethodGet, "/api/rooms/code/K7KQ2M/messages", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp messagesEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.OK)
	require.Len(t, resp.Mensajes, 3)

	// History preserves posting order.
	texts := make([]string, 0, len(resp.Mensajes))
	for _, m := range resp.Mensajes {
		texts = append(texts, m.Text)
		assert.Equal(t, uid, m.Author)
	}
	assert.Equal(t, []string{"primero", "segundo", "tercero"}, texts)
}

func TestGetMessagesByCodeUnknown(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/rooms/code/ZZZZZZ/messages", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRoomDetailResolvesMembers(t *testing.T) {
	env := newTestEnv(t)
	uid := primitive.NewObjectID()
	room := env.seedRoom(t, "General", "K7KQ2M", uid)
	env.roomRepo.SeedUser(domain.User{ID: uid, Name: "Diego"})

	rec := env.do(t, http.MethodPost, "/api/rooms/messages", uid.Hex(),
		`{"mensaje":"hola","salaId":"`+room.ID.Hex()+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/rooms/"+room.ID.Hex(), "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp roomDetailEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.OK)
	require.NotNil(t, resp.Sala)
	require.Len(t, resp.Sala.Members, 1)
	assert.Equal(t, "Diego", resp.Sala.Members[0].Name)
	require.Len(t, resp.Sala.Messages, 1)
	assert.Equal(t, "hola", resp.Sala.Messages[0].Text)
}

func TestGetRoomMessagesByID(t *testing.T) {
	env := newTestEnv(t)
	uid := primitive.NewObjectID()
	room := env.seedRoom(t, "General", "K7KQ2M", uid)

	rec := env.do(t, http.MethodGet, "/api/rooms/"+room.ID.Hex()+"/messages", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp roomWithMessagesEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	require.NotNil(t, resp.Sala)
	assert.Equal(t, "K7KQ2M", resp.Sala.Code)
	assert.Empty(t, resp.Sala.Messages)
}

func TestGetRoomDetailBadID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/rooms/not-an-id", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/rooms/"+primitive.NewObjectID().Hex(), "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
