package rooms

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmartinrc/salachat/internal/domain"
	"github.com/dmartinrc/salachat/internal/infrastructure/events"
	memrepo "github.com/dmartinrc/salachat/internal/infrastructure/repository"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// collidingRoomRepo fails Create with ErrCodeTaken a fixed number of times
// before delegating, recording every attempted code.
type collidingRoomRepo struct {
	*memrepo.RoomRepository
	collisions int
	attempts   int
	codes      []string
}

func (r *collidingRoomRepo) Create(ctx context.Context, room *domain.Room) error {
	r.attempts++
	r.codes = append(r.codes, room.Code)
	if r.attempts <= r.collisions {
		return domain.ErrCodeTaken
	}
	return r.RoomRepository.Create(ctx, room)
}

func newTestRouter(t *testing.T) (*chi.Mux, *memrepo.RoomRepository) {
	t.Helper()

	messages := memrepo.NewMessageRepository()
	roomRepo := memrepo.NewRoomRepository(messages)
	h := NewHandler(roomRepo, events.NewRoomPublisher(nil))

	r := chi.NewRouter()
	r.Route("/api/rooms", func(r chi.Router) {
		r.Post("/", h.CreateRoomHandler)
		r.Get("/", h.GetRoomsHandler)
		r.Get("/mine", h.GetMyRoomsHandler)
		r.Get("/mine/summary", h.GetMyRoomsSummaryHandler)
		r.Post("/join", h.JoinRoomHandler)
	})

	return r, roomRepo
}

func doJSON(t *testing.T, router http.Handler, method, target, uid, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if uid != "" {
		req.Header.Set("X-Uid", uid)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateRoom(t *testing.T) {
	router, roomRepo := newTestRouter(t)
	uid := primitive.NewObjectID()

	rec := doJSON(t, router, http.MethodPost, "/api/rooms", uid.Hex(), `{"nombre":"General"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp roomEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.OK)
	assert.Equal(t, "General", resp.Sala.Name)
	assert.Len(t, resp.Sala.Code, domain.CodeLength)
	assert.Regexp(t, `^[0-9a-f]{6}$`, resp.Sala.Color)
	assert.Equal(t, uid.Hex(), resp.Sala.UID)

	// The creator is the room's first member.
	room, err := roomRepo.GetByCode(context.Background(), resp.Sala.Code)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{uid}, room.Members)
}

func TestCreateRoomRetriesOnCodeCollision(t *testing.T) {
	messages := memrepo.NewMessageRepository()
	repo := &collidingRoomRepo{
		RoomRepository: memrepo.NewRoomRepository(messages),
		collisions:     3,
	}
	h := NewHandler(repo, events.NewRoomPublisher(nil))
	uid := primitive.NewObjectID()

	req := httptest.NewRequest(http.MethodPost, "/api/rooms", bytes.NewBufferString(`{"nombre":"General"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Uid", uid.Hex())

	rec := httptest.NewRecorder()
	h.CreateRoomHandler(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 4, repo.attempts, "three collisions then one success")

	// A fresh code is generated for every attempt.
	seen := make(map[string]struct{})
	for _, code := range repo.codes {
		assert.Len(t, code, domain.CodeLength)
		seen[code] = struct{}{}
	}
	assert.Len(t, seen, 4)

	var resp roomEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, repo.codes[len(repo.codes)-1], resp.Sala.Code)
}

func TestCreateRoomFailsWhenCodesKeepColliding(t *testing.T) {
	messages := memrepo.NewMessageRepository()
	repo := &collidingRoomRepo{
		RoomRepository: memrepo.NewRoomRepository(messages),
		collisions:     maxCodeAttempts,
	}
	h := NewHandler(repo, events.NewRoomPublisher(nil))

	req := httptest.NewRequest(http.MethodPost, "/api/rooms", bytes.NewBufferString(`{"nombre":"General"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Uid", primitive.NewObjectID().Hex())

	rec := httptest.NewRecorder()
	h.CreateRoomHandler(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, maxCodeAttempts, repo.attempts)

	var resp struct {
		OK  bool   `json:"ok"`
		Msg string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, "Por favor hable con el administrador", resp.Msg)
}

func TestCreateRoomWithoutIdentity(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/rooms", "", `{"nombre":"General"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp struct {
		OK  bool   `json:"ok"`
		Msg string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, "No autorizado", resp.Msg)
}

func TestCreateRoomValidation(t *testing.T) {
	router, _ := newTestRouter(t)
	uid := primitive.NewObjectID().Hex()

	for name, body := range map[string]string{
		"empty name":    `{"nombre":""}`,
		"missing name":  `{}`,
		"name too long": `{"nombre":"` + strings.Repeat("a", 101) + `"}`,
		"bad json":      `{`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/api/rooms", uid, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestJoinRoomUnknownCode(t *testing.T) {
	router, _ := newTestRouter(t)
	uid := primitive.NewObjectID().Hex()

	rec := doJSON(t, router, http.MethodPost, "/api/rooms/join", uid, `{"codigo":"ZZZZZZ"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp struct {
		OK  bool   `json:"ok"`
		Msg string `json:"msg"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, "Sala no encontrada", resp.Msg)
}

func TestJoinRoomAppendsMember(t *testing.T) {
	router, roomRepo := newTestRouter(t)
	creator := primitive.NewObjectID()
	joiner := primitive.NewObjectID()

	rec := doJSON(t, router, http.MethodPost, "/api/rooms", creator.Hex(), `{"nombre":"General"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created roomEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, router, http.MethodPost, "/api/rooms/join", joiner.Hex(), `{"codigo":"`+created.Sala.Code+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var joined roomEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &joined))
	assert.True(t, joined.OK)
	assert.Equal(t, created.Sala.Code, joined.Sala.Code)
	assert.Equal(t, joiner.Hex(), joined.Sala.UID)

	room, err := roomRepo.GetByCode(context.Background(), created.Sala.Code)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{creator, joiner}, room.Members)
}

func TestGetRooms(t *testing.T) {
	router, _ := newTestRouter(t)
	uid := primitive.NewObjectID().Hex()

	for _, name := range []string{"Uno", "Dos", "Tres"} {
		rec := doJSON(t, router, http.MethodPost, "/api/rooms", uid, `{"nombre":"`+name+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, router, http.MethodGet, "/api/rooms", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp roomListEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Len(t, resp.Salas, 3)
	for _, sala := range resp.Salas {
		assert.NotEmpty(t, sala.Name)
		assert.Len(t, sala.Code, domain.CodeLength)
		assert.Len(t, sala.Members, 1)
	}
}

func TestGetMyRoomsSummary(t *testing.T) {
	router, _ := newTestRouter(t)
	mine := primitive.NewObjectID()
	other := primitive.NewObjectID()

	rec := doJSON(t, router, http.MethodPost, "/api/rooms", mine.Hex(), `{"nombre":"Mia"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/api/rooms", mine.Hex(), `{"nombre":"Tambien mia"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/api/rooms", other.Hex(), `{"nombre":"Ajena"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/rooms/mine/summary", mine.Hex(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp memberSummaryEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Len(t, resp.Salas, 2)
	assert.Equal(t, int64(2), resp.TotalUsuarios)

	// Summaries carry no member ids.
	for _, sala := range resp.Salas {
		assert.Empty(t, sala.Members)
	}
}

func TestGetMyRoomsInvalidIdentity(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/rooms/mine", "not-an-object-id", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/rooms/mine", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
