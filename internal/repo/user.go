package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

const usersTable = "users"

var userColumns = []string{"id", "username", "email", "password", "createdAt"}

// User backs the operator login stub. It is not used by the waitlist flow.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateUserInput struct {
	Username     string
	Email        string
	PasswordHash string
}

type UserRepo struct {
	conn *sql.DB
	now  func() time.Time
}

func (r *UserRepo) Create(ctx context.Context, in CreateUserInput) (*User, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("%w: generate id: %w", ErrStorage, err)
	}

	query, args := builder().Insert(usersTable).
		Columns(userColumns...).
		Values(id.String(), in.Username, in.Email, in.PasswordHash, formatTime(r.now())).
		Query()

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("%w: insert user: %w", ErrStorage, err)
	}

	return r.Get(ctx, id.String())
}

func (r *UserRepo) Get(ctx context.Context, id string) (*User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	return r.getBy(ctx, "username", username)
}

func (r *UserRepo) getBy(ctx context.Context, column, value string) (*User, error) {
	query, args := builder().Select(userColumns...).
		From(entsql.Table(usersTable)).
		Where(entsql.EQ(column, value)).
		Query()

	var (
		u         User
		createdAt string
	)
	err := r.conn.QueryRowContext(ctx, query, args...).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: select user: %w", ErrStorage, err)
	}

	ts, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s createdAt: %w", ErrStorage, u.ID, err)
	}
	u.CreatedAt = ts
	return &u, nil
}
