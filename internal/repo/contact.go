package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/Alijeyrad/glider_backend/pkg/constants"
)

const contactsTable = "contacts"

var contactColumns = []string{"id", "type", "name", "email", "message", "data", "createdAt"}

// Contact is one waitlist/contact submission. Entries are never updated.
type Contact struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Name      string         `json:"name,omitempty"`
	Email     string         `json:"email"`
	Message   string         `json:"message,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

type CreateContactInput struct {
	Type    string
	Name    string
	Email   string
	Message string
	Data    map[string]any
}

// ContactFilter narrows GetAll. The zero value returns every entry.
type ContactFilter struct {
	Type string
}

type ContactRepo struct {
	conn *sql.DB
	now  func() time.Time
}

// Create stores a new entry and returns it as read back from the store.
func (r *ContactRepo) Create(ctx context.Context, in CreateContactInput) (*Contact, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("%w: generate id: %w", ErrStorage, err)
	}

	typ := strings.TrimSpace(in.Type)
	if typ == "" {
		typ = constants.DefaultContactType
	}

	var data sql.NullString
	if in.Data != nil {
		b, err := json.Marshal(in.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: encode data: %w", ErrStorage, err)
		}
		data = sql.NullString{String: string(b), Valid: true}
	}

	query, args := builder().Insert(contactsTable).
		Columns(contactColumns...).
		Values(id.String(), typ, nullString(in.Name), in.Email, nullString(in.Message), data, formatTime(r.now())).
		Query()

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: insert contact: %w", ErrStorage, err)
	}

	c, err := r.Get(ctx, id.String())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: contact %s missing after insert", ErrStorage, id)
		}
		return nil, err
	}
	return c, nil
}

// Get returns a single entry by id.
func (r *ContactRepo) Get(ctx context.Context, id string) (*Contact, error) {
	query, args := builder().Select(contactColumns...).
		From(entsql.Table(contactsTable)).
		Where(entsql.EQ("id", id)).
		Query()

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: select contact: %w", ErrStorage, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%w: select contact: %w", ErrStorage, err)
		}
		return nil, ErrNotFound
	}
	return scanContact(rows)
}

// GetAll returns entries newest first. A row whose data cannot be decoded
// fails the whole call.
func (r *ContactRepo) GetAll(ctx context.Context, f ContactFilter) ([]*Contact, error) {
	query, args := listQuery(f)

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list contacts: %w", ErrStorage, err)
	}
	defer rows.Close()

	out := make([]*Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list contacts: %w", ErrStorage, err)
	}
	return out, nil
}

// listQuery orders by insertion rowid within one timestamp.
func listQuery(f ContactFilter) (string, []any) {
	sel := builder().Select(contactColumns...).
		From(entsql.Table(contactsTable)).
		OrderBy(entsql.Desc("createdAt"), entsql.Desc("rowid"))
	if f.Type != "" {
		sel.Where(entsql.EQ("type", f.Type))
	}
	return sel.Query()
}

// Count returns the number of stored entries.
func (r *ContactRepo) Count(ctx context.Context) (int, error) {
	query, args := builder().Select(entsql.Count("*")).
		From(entsql.Table(contactsTable)).
		Query()

	var n int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: count contacts: %w", ErrStorage, err)
	}
	return n, nil
}

func scanContact(rows *sql.Rows) (*Contact, error) {
	var (
		c         Contact
		name      sql.NullString
		message   sql.NullString
		data      sql.NullString
		createdAt string
	)
	if err := rows.Scan(&c.ID, &c.Type, &name, &c.Email, &message, &data, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: scan contact: %w", ErrStorage, err)
	}
	c.Name = name.String
	c.Message = message.String

	ts, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: contact %s createdAt: %w", ErrStorage, c.ID, err)
	}
	c.CreatedAt = ts

	if data.Valid && data.String != "" {
		if err := json.Unmarshal([]byte(data.String), &c.Data); err != nil {
			return nil, fmt.Errorf("%w: contact %s data: %w", ErrStorage, c.ID, err)
		}
	}
	return &c, nil
}

func nullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}
