// Package models defines the value records exchanged with the IIS API:
// the authenticated identity, personal information, the markbook and group
// data. All records are request scoped; once returned to the caller they are
// owned by the caller.
package models
