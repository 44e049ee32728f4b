package service

import (
	"context"
	"errors"
	"time"

	"github.com/notesstudio/notes-go/internal/crypto"
	"github.com/notesstudio/notes-go/internal/model"
	"github.com/notesstudio/notes-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmailTaken         = errors.New("email already registered")
)

// AuthService handles signup and login.
type AuthService struct {
	users     *repository.UserRepository
	notes     *repository.NoteRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *repository.UserRepository, notes *repository.NoteRepository, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		notes:     notes,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Signup creates a new user account, seeds its default welcome note, and
// returns an access token. The user and note inserts share one transaction
// so a failed seed never leaves a half-created account.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (model.AuthResponse, error) {
	if req.Email == "" {
		return model.AuthResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	now := time.Now().UTC()
	user := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		CreatedAt:    now,
	}

	tx, err := s.users.BeginTx(ctx)
	if err != nil {
		return model.AuthResponse{}, err
	}
	defer tx.Rollback()

	if err := s.users.CreateTx(ctx, tx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	welcome := &model.Note{
		OwnerID:   user.ID,
		Title:     DefaultNoteTitle,
		Content:   DefaultNoteContent,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.notes.CreateTx(ctx, tx, welcome); err != nil {
		return model.AuthResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.AuthResponse{}, err
	}

	return s.authResponse(user)
}

// Login authenticates a user and returns an access token. Unknown email and
// wrong password fail identically, so the response never reveals whether an
// email is registered.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// Me retrieves the authenticated caller's profile.
func (s *AuthService) Me(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}

	return model.UserToResponse(user), nil
}

func (s *AuthService) authResponse(user *model.User) (model.AuthResponse, error) {
	token, err := crypto.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        model.UserToResponse(user),
	}, nil
}
