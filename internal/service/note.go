package service

import (
	"context"
	"errors"
	"time"

	"github.com/notesstudio/notes-go/internal/model"
	"github.com/notesstudio/notes-go/internal/repository"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrNoteNotFound  = errors.New("note not found")
)

// NoteService handles ownership-checked note CRUD. Every operation takes the
// authenticated caller's user ID; a note owned by someone else surfaces as
// ErrNoteNotFound, never as a distinct forbidden error.
type NoteService struct {
	repo *repository.NoteRepository
}

// NewNoteService creates a new NoteService.
func NewNoteService(repo *repository.NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// List returns the caller's notes, most recently updated first.
func (s *NoteService) List(ctx context.Context, userID int64) ([]model.NoteResponse, error) {
	notes, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	return model.NotesToResponse(notes), nil
}

// Get returns a single note owned by the caller.
func (s *NoteService) Get(ctx context.Context, userID, noteID int64) (model.NoteResponse, error) {
	note, err := s.resolve(ctx, userID, noteID)
	if err != nil {
		return model.NoteResponse{}, err
	}

	return model.NoteToResponse(note), nil
}

// Create creates a new note for the caller.
func (s *NoteService) Create(ctx context.Context, userID int64, req model.CreateNoteRequest) (model.NoteResponse, error) {
	if req.Title == "" {
		return model.NoteResponse{}, ErrTitleRequired
	}

	now := time.Now().UTC()
	note := &model.Note{
		OwnerID:   userID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, note); err != nil {
		return model.NoteResponse{}, err
	}

	return model.NoteToResponse(note), nil
}

// Update applies a partial patch to a note owned by the caller. Absent fields
// keep their value; updated_at is refreshed on every call.
func (s *NoteService) Update(ctx context.Context, userID, noteID int64, req model.UpdateNoteRequest) (model.NoteResponse, error) {
	if req.Title != nil && *req.Title == "" {
		return model.NoteResponse{}, ErrTitleRequired
	}

	note, err := s.resolve(ctx, userID, noteID)
	if err != nil {
		return model.NoteResponse{}, err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	note.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, note); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return model.NoteResponse{}, ErrNoteNotFound
		}
		return model.NoteResponse{}, err
	}

	return model.NoteToResponse(note), nil
}

// Delete removes a note owned by the caller.
func (s *NoteService) Delete(ctx context.Context, userID, noteID int64) error {
	if _, err := s.resolve(ctx, userID, noteID); err != nil {
		return err
	}

	err := s.repo.Delete(ctx, noteID, userID)
	if errors.Is(err, repository.ErrNoteNotFound) {
		return ErrNoteNotFound
	}
	return err
}

func (s *NoteService) resolve(ctx context.Context, userID, noteID int64) (*model.Note, error) {
	note, err := s.repo.GetByIDAndOwner(ctx, noteID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}
