package models

import "time"

// PlaceholderUserID is used when the login response carries no numeric id.
const PlaceholderUserID = 1

// Credentials exist only for the duration of a login call. They are never
// persisted or logged.
type Credentials struct {
	StudentNumber string
	Password      string
	RememberMe    bool
}

// Session describes the tokens held by the vault. Only the vault creates and
// mutates it; callers receive copies.
type Session struct {
	AccessToken      string
	RefreshToken     string
	TokenType        string
	IssuedAt         time.Time
	ExpiresInSeconds int64
}

// ExpiresAt returns the absolute expiry instant.
func (s Session) ExpiresAt() time.Time {
	return s.IssuedAt.Add(time.Duration(s.ExpiresInSeconds) * time.Second)
}

// UserIdentity is produced once at login.
type UserIdentity struct {
	UserID        int    `json:"userId"`
	StudentNumber string `json:"studentNumber"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	MiddleName    string `json:"middleName"`
}

// FullName joins the name parts in surname-first order, skipping empty ones.
func (u UserIdentity) FullName() string {
	return joinNonEmpty(u.LastName, u.FirstName, u.MiddleName)
}

// LoginResponse is the decoded login call: the synthesized session plus the
// identity returned by the upstream.
type LoginResponse struct {
	Session  Session      `json:"-"`
	Identity UserIdentity `json:"identity"`
}

// PersonalInfo is fetched on demand and never cached between calls.
type PersonalInfo struct {
	UserIdentity
	BirthDate  string `json:"birthDate"`
	Course     int    `json:"course"`
	Faculty    string `json:"faculty"`
	Speciality string `json:"speciality"`
	Group      string `json:"group"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += p
	}
	return out
}
