package model

import "github.com/google/uuid"

// Follow is a directed edge: UserID follows AuthorID. The reverse edge is a
// separate row.
type Follow struct {
	UserID   uuid.UUID `json:"user_id"`
	AuthorID uuid.UUID `json:"author_id"`
}
