package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/roshanls1997/chai-backend/internal/model"
	"github.com/roshanls1997/chai-backend/internal/shared"
)

const userColumns = `id, username, email, fullname, password, avatar, cover_image,
		 COALESCE(refresh_token, ''), created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.UserName, &u.Email, &u.FullName, &u.Password,
		&u.Avatar, &u.CoverImage, &u.RefreshToken, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func mapConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return shared.ErrConflict
	}
	return err
}

func (s *Storage) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	row := s.DB.QueryRow(ctx,
		`INSERT INTO users (username, email, fullname, password, avatar, cover_image)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+userColumns,
		user.UserName, user.Email, user.FullName, user.Password, user.Avatar, user.CoverImage)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapConflict(err)
	}
	return u, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE id=$1`,
		id)
	return scanUser(row)
}

func (s *Storage) GetUserByLogin(ctx context.Context, identifier string) (*model.User, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE email=$1 OR username=$1`,
		identifier)
	return scanUser(row)
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	row := s.DB.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE username=$1`,
		username)
	return scanUser(row)
}

func (s *Storage) UpdateRefreshToken(ctx context.Context, id uuid.UUID, refreshToken string) error {
	res, err := s.DB.Exec(ctx,
		`UPDATE users
		 SET refresh_token=$1, updated_at=now()
		 WHERE id=$2`,
		refreshToken, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// RotateRefreshToken swaps the stored refresh token only when it still equals
// oldToken. A zero-row update means the presented token was already rotated
// out (or cleared by logout) and is treated as reuse.
func (s *Storage) RotateRefreshToken(ctx context.Context, id uuid.UUID, oldToken, newToken string) error {
	res, err := s.DB.Exec(ctx,
		`UPDATE users
		 SET refresh_token=$1, updated_at=now()
		 WHERE id=$2 AND refresh_token=$3`,
		newToken, id, oldToken)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return shared.ErrTokenReused
	}
	return nil
}

func (s *Storage) ClearRefreshToken(ctx context.Context, id uuid.UUID) error {
	_, err := s.DB.Exec(ctx,
		`UPDATE users
		 SET refresh_token=NULL, updated_at=now()
		 WHERE id=$1`,
		id)
	return err
}

func (s *Storage) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	res, err := s.DB.Exec(ctx,
		`UPDATE users
		 SET password=$1, updated_at=now()
		 WHERE id=$2`,
		passwordHash, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (s *Storage) UpdateUserDetails(ctx context.Context, id uuid.UUID, fullname, email string) (*model.User, error) {
	row := s.DB.QueryRow(ctx,
		`UPDATE users
		 SET fullname=$1, email=$2, updated_at=now()
		 WHERE id=$3
		 RETURNING `+userColumns,
		fullname, email, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapConflict(err)
	}
	return u, nil
}

func (s *Storage) UpdateAvatar(ctx context.Context, id uuid.UUID, url string) (*model.User, error) {
	row := s.DB.QueryRow(ctx,
		`UPDATE users
		 SET avatar=$1, updated_at=now()
		 WHERE id=$2
		 RETURNING `+userColumns,
		url, id)
	return scanUser(row)
}

func (s *Storage) UpdateCoverImage(ctx context.Context, id uuid.UUID, url string) (*model.User, error) {
	row := s.DB.QueryRow(ctx,
		`UPDATE users
		 SET cover_image=$1, updated_at=now()
		 WHERE id=$2
		 RETURNING `+userColumns,
		url, id)
	return scanUser(row)
}
