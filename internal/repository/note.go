package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/notesstudio/notes-go/internal/model"
)

var ErrNoteNotFound = errors.New("note not found")

// NoteRepository handles note persistence operations. Every read and write
// filters by (id, owner_id) jointly, so a note owned by someone else is
// indistinguishable from a note that does not exist.
type NoteRepository struct {
	db *sql.DB
}

// NewNoteRepository creates a new NoteRepository.
func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

const insertNoteQuery = `INSERT INTO notes (owner_id, title, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`

// Create inserts a new note and sets the generated ID on the note struct.
func (r *NoteRepository) Create(ctx context.Context, note *model.Note) error {
	return r.create(ctx, r.db, note)
}

// CreateTx inserts a new note within the provided transaction.
func (r *NoteRepository) CreateTx(ctx context.Context, tx *sql.Tx, note *model.Note) error {
	return r.create(ctx, tx, note)
}

func (r *NoteRepository) create(ctx context.Context, ex execer, note *model.Note) error {
	result, err := ex.ExecContext(ctx, insertNoteQuery,
		note.OwnerID, note.Title, note.Content, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	note.ID = id
	return nil
}

// GetByIDAndOwner retrieves a note by ID scoped to its owner. This is the
// sole authorization check for single-note access.
func (r *NoteRepository) GetByIDAndOwner(ctx context.Context, noteID, ownerID int64) (*model.Note, error) {
	query := `SELECT id, owner_id, title, content, created_at, updated_at
		FROM notes WHERE id = ? AND owner_id = ?`

	note := &model.Note{}
	err := r.db.QueryRowContext(ctx, query, noteID, ownerID).Scan(
		&note.ID, &note.OwnerID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}

	return note, nil
}

// ListByOwner retrieves all notes for an owner, most recently updated first.
// Ties on updated_at break by id descending for a deterministic order.
func (r *NoteRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Note, error) {
	query := `SELECT id, owner_id, title, content, created_at, updated_at
		FROM notes WHERE owner_id = ? ORDER BY updated_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(
			&n.ID, &n.OwnerID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt,
		); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}

// Update persists a note's title, content, and updated_at, scoped to its owner.
func (r *NoteRepository) Update(ctx context.Context, note *model.Note) error {
	query := `UPDATE notes SET title = ?, content = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?`

	result, err := r.db.ExecContext(ctx, query,
		note.Title, note.Content, note.UpdatedAt, note.ID, note.OwnerID)
	if err != nil {
		return err
	}

	return requireRowsAffected(result)
}

// Delete removes a note scoped to its owner.
func (r *NoteRepository) Delete(ctx context.Context, noteID, ownerID int64) error {
	query := `DELETE FROM notes WHERE id = ? AND owner_id = ?`

	result, err := r.db.ExecContext(ctx, query, noteID, ownerID)
	if err != nil {
		return err
	}

	return requireRowsAffected(result)
}

func requireRowsAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}
