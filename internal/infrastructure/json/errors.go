package json

import (
	"log"
	"net/http"
)

// User-facing messages. Internal detail never reaches the client: unexpected
// failures all collapse into MsgInternal and are logged separately.
const (
	MsgInternal     = "Por favor hable con el administrador"
	MsgRoomNotFound = "Sala no encontrada"
	MsgUnauthorized = "No autorizado"
)

// ErrorResponse is the error envelope shared by every endpoint.
type ErrorResponse struct {
	OK  bool   `json:"ok"`
	Msg string `json:"msg"`
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	Write(w, status, ErrorResponse{OK: false, Msg: msg})
}

func WriteValidationError(w http.ResponseWriter, err error) {
	WriteError(w, http.StatusBadRequest, err.Error())
}

func WriteNotFound(w http.ResponseWriter) {
	WriteError(w, http.StatusNotFound, MsgRoomNotFound)
}

func WriteUnauthorized(w http.ResponseWriter) {
	WriteError(w, http.StatusUnauthorized, MsgUnauthorized)
}

func WriteInternalError(w http.ResponseWriter, err error) {
	log.Printf("Internal error: %v", err)
	WriteError(w, http.StatusInternalServerError, MsgInternal)
}
