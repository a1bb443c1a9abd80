package models

// Curator is owned by its GroupInfo.
type Curator struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	ProfileURL string `json:"profileUrl"`
}

// GroupStudent is one roster line; Number is the position in the roster.
type GroupStudent struct {
	Number   int    `json:"number"`
	FullName string `json:"fullName"`
}

// GroupInfo describes the student's group. Number is a string because group
// codes may be alphanumeric.
type GroupInfo struct {
	Number   string         `json:"number"`
	Faculty  string         `json:"faculty"`
	Course   int            `json:"course"`
	Curator  Curator        `json:"curator"`
	Students []GroupStudent `json:"students"`
}
