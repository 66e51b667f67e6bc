package utils

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// HeaderUID carries the authenticated user's id, set by the auth gateway
	// in front of this service.
	HeaderUID = "X-Uid"

	// CookieNameUID is the fallback for browser clients that carry identity
	// in a session cookie instead of a header.
	CookieNameUID = "uid"
)

var ErrMissingIdentity = errors.New("missing user identity")

// GetUserID extracts the caller's user id from the request. The header wins;
// the cookie is only consulted when the header is absent.
func GetUserID(r *http.Request) (primitive.ObjectID, error) {
	raw := r.Header.Get(HeaderUID)
	if raw == "" {
		if cookie, err := r.Cookie(CookieNameUID); err == nil {
			raw = cookie.Value
		}
	}

	if raw == "" {
		return primitive.NilObjectID, ErrMissingIdentity
	}

	uid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, err
	}

	return uid, nil
}
