package model

import "time"

// Note represents a note in the database. A note belongs to exactly one owner.
type Note struct {
	ID        int64
	OwnerID   int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateNoteRequest represents a note creation request.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteRequest represents a partial note update. Nil fields keep the
// existing value.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// NoteResponse represents a note in API responses. The owner is implied by
// the authenticated caller and never serialized.
type NoteResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteToResponse converts a Note to its API representation.
func NoteToResponse(n *Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// NotesToResponse converts a slice of Note to a slice of NoteResponse.
func NotesToResponse(notes []Note) []NoteResponse {
	result := make([]NoteResponse, len(notes))
	for i := range notes {
		result[i] = NoteToResponse(&notes[i])
	}
	return result
}
