package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/roshanls1997/chai-backend/internal/model"
	"github.com/roshanls1997/chai-backend/internal/shared"
	"github.com/roshanls1997/chai-backend/internal/storage"
)

type UserService struct {
	Store  storage.Store
	Tokens TokenConfig
}

func NewUserService(store storage.Store, tokens TokenConfig) *UserService {
	return &UserService{Store: store, Tokens: tokens}
}

// checkPassword is the credential verifier: a one-way comparison of the
// plaintext against the stored bcrypt hash.
func checkPassword(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// RegisterInput carries the register form fields plus the already-uploaded
// media URLs.
type RegisterInput struct {
	UserName   string
	Email      string
	FullName   string
	Password   string
	Avatar     string
	CoverImage string
}

// CheckRegistration validates the text fields and verifies that the username
// and email are still free. Callers run this before uploading any media so a
// rejected registration never leaves an orphaned object on the media host.
// CreateUser's unique constraints remain the authority under concurrency.
func (s *UserService) CheckRegistration(ctx context.Context, in RegisterInput) error {
	for _, field := range []string{in.UserName, in.Email, in.FullName, in.Password} {
		if strings.TrimSpace(field) == "" {
			return shared.ErrValidation
		}
	}

	username := strings.ToLower(strings.TrimSpace(in.UserName))
	if _, err := s.Store.GetUserByUsername(ctx, username); err == nil {
		return shared.ErrConflict
	} else if !errors.Is(err, shared.ErrNotFound) {
		return err
	}
	if _, err := s.Store.GetUserByLogin(ctx, strings.TrimSpace(in.Email)); err == nil {
		return shared.ErrConflict
	} else if !errors.Is(err, shared.ErrNotFound) {
		return err
	}
	return nil
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	for _, field := range []string{in.UserName, in.Email, in.FullName, in.Password} {
		if strings.TrimSpace(field) == "" {
			return nil, shared.ErrValidation
		}
	}
	if in.Avatar == "" {
		return nil, shared.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.Store.CreateUser(ctx, model.User{
		UserName:   strings.ToLower(strings.TrimSpace(in.UserName)),
		Email:      strings.TrimSpace(in.Email),
		FullName:   strings.TrimSpace(in.FullName),
		Password:   string(hash),
		Avatar:     in.Avatar,
		CoverImage: in.CoverImage,
	})
	if err != nil {
		return nil, err
	}
	sanitized := created.Sanitized()
	return &sanitized, nil
}

// Login verifies the identifier+secret pair and issues a fresh token pair.
// The new refresh token overwrites whatever was stored before, which is how
// an earlier session gets revoked.
func (s *UserService) Login(ctx context.Context, identifier, password string) (*model.User, string, string, error) {
	if identifier == "" || password == "" {
		return nil, "", "", shared.ErrValidation
	}
	user, err := s.Store.GetUserByLogin(ctx, identifier)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, "", "", shared.ErrNotFound
		}
		return nil, "", "", err
	}
	if !checkPassword(user.Password, password) {
		return nil, "", "", shared.ErrInvalidCredentials
	}

	access, refresh, err := s.Tokens.IssueTokenPair(user.ID)
	if err != nil {
		return nil, "", "", err
	}
	if err := s.Store.UpdateRefreshToken(ctx, user.ID, refresh); err != nil {
		return nil, "", "", err
	}

	sanitized := user.Sanitized()
	return &sanitized, access, refresh, nil
}

// Refresh validates the presented refresh token and rotates it. The stored
// token must match exactly; anything else is a rotated-out token being
// replayed. The swap itself is a compare-and-swap so concurrent refreshes
// cannot both win.
func (s *UserService) Refresh(ctx context.Context, presented string) (string, string, error) {
	if presented == "" {
		return "", "", shared.ErrUnauthenticated
	}
	userID, err := s.Tokens.ParseRefreshToken(presented)
	if err != nil {
		return "", "", shared.ErrInvalidToken
	}
	user, err := s.Store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return "", "", shared.ErrInvalidToken
		}
		return "", "", err
	}
	if user.RefreshToken != presented {
		return "", "", shared.ErrTokenReused
	}

	access, refresh, err := s.Tokens.IssueTokenPair(user.ID)
	if err != nil {
		return "", "", err
	}
	if err := s.Store.RotateRefreshToken(ctx, user.ID, presented, refresh); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Logout drops the stored refresh token; every previously issued refresh
// token for the identity is dead from here on.
func (s *UserService) Logout(ctx context.Context, userID uuid.UUID) error {
	return s.Store.ClearRefreshToken(ctx, userID)
}

// GetCurrentUser resolves an access token into the identity it references,
// without the secret fields.
func (s *UserService) GetCurrentUser(ctx context.Context, accessToken string) (*model.User, error) {
	userID, err := s.Tokens.ParseAccessToken(accessToken)
	if err != nil {
		return nil, shared.ErrInvalidToken
	}
	user, err := s.Store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidToken
		}
		return nil, err
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return shared.ErrValidation
	}
	user, err := s.Store.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !checkPassword(user.Password, currentPassword) {
		return shared.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Store.UpdatePassword(ctx, userID, string(hash))
}

func (s *UserService) UpdateDetails(ctx context.Context, userID uuid.UUID, fullname, email string) (*model.User, error) {
	if strings.TrimSpace(fullname) == "" || strings.TrimSpace(email) == "" {
		return nil, shared.ErrValidation
	}
	user, err := s.Store.UpdateUserDetails(ctx, userID, strings.TrimSpace(fullname), strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// UserFileType enumerates the only two media fields a client may replace.
type UserFileType string

const (
	UserFileAvatar     UserFileType = "avatar"
	UserFileCoverImage UserFileType = "coverImage"
)

// UpdateFile replaces the avatar or cover image URL. The target field is an
// explicit enum; client input never selects a column by name.
func (s *UserService) UpdateFile(ctx context.Context, userID uuid.UUID, fileType UserFileType, url string) (*model.User, error) {
	if url == "" {
		return nil, shared.ErrValidation
	}
	var (
		user *model.User
		err  error
	)
	switch fileType {
	case UserFileAvatar:
		user, err = s.Store.UpdateAvatar(ctx, userID, url)
	case UserFileCoverImage:
		user, err = s.Store.UpdateCoverImage(ctx, userID, url)
	default:
		return nil, shared.ErrValidation
	}
	if err != nil {
		return nil, err
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}
