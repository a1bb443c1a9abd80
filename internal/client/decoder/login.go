package decoder

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/iisclient/internal/client/models"
)

const (
	// SessionTokenType marks tokens synthesised for the cookie-based upstream.
	SessionTokenType = "Session"
	// DefaultSessionTTL is the lifetime in seconds assumed for a new session.
	DefaultSessionTTL int64 = 3600

	sessionMarkerPrefix = "session-"
)

type loginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe,omitempty"`
}

// BuildLoginRequest serialises credentials into the /auth/login request body.
// rememberMe is only emitted when set.
func BuildLoginRequest(studentNumber, password string, rememberMe bool) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// encoding a struct of strings and a bool cannot fail
	_ = enc.Encode(loginRequest{Username: studentNumber, Password: password, RememberMe: rememberMe})
	return strings.TrimRight(buf.String(), "\n")
}

// NewSessionMarker returns an opaque access token identifying a cookie
// session. It carries no upstream meaning.
func NewSessionMarker() string {
	return sessionMarkerPrefix + uuid.NewString()
}

// ParseLoginResponse projects a successful login body into a session and an
// identity. The upstream does not issue tokens, so the session is a freshly
// minted marker valid for DefaultSessionTTL seconds from now.
func ParseLoginResponse(body string, now time.Time) (models.LoginResponse, bool) {
	obj := ParseObject(body)
	if len(obj) == 0 {
		return models.LoginResponse{}, false
	}

	identity := models.UserIdentity{
		UserID:        models.PlaceholderUserID,
		StudentNumber: firstOf(obj, "username", "studentNumber", "login"),
	}
	if id, ok := ParseOptionalInt(firstOf(obj, "id", "userId")); ok {
		identity.UserID = id
	}
	identity.LastName, identity.FirstName, identity.MiddleName = splitFullName(firstOf(obj, "fio", "fullName"))

	return models.LoginResponse{
		Session: models.Session{
			AccessToken:      NewSessionMarker(),
			TokenType:        SessionTokenType,
			IssuedAt:         now,
			ExpiresInSeconds: DefaultSessionTTL,
		},
		Identity: identity,
	}, true
}

// splitFullName splits "Last First Middle..." on whitespace. Everything after
// the second token is the middle name.
func splitFullName(fio string) (last, first, middle string) {
	parts := strings.Fields(fio)
	switch len(parts) {
	case 0:
		return "", "", ""
	case 1:
		return parts[0], "", ""
	case 2:
		return parts[0], parts[1], ""
	default:
		return parts[0], parts[1], strings.Join(parts[2:], " ")
	}
}
