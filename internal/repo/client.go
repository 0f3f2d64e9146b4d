package repo

import (
	"context"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/Alijeyrad/glider_backend/pkg/database"
)

// timeLayout matches the ISO-8601 strings earlier versions of the site wrote,
// fixed width so that text ordering equals time ordering.
const timeLayout = "2006-01-02T15:04:05.000Z"

// Client groups the table repositories over one store.
type Client struct {
	Contact *ContactRepo
	User    *UserRepo

	db *database.DB
}

func NewClient(db *database.DB) *Client {
	conn := db.GetConnection()
	return &Client{
		Contact: &ContactRepo{conn: conn, now: time.Now},
		User:    &UserRepo{conn: conn, now: time.Now},
		db:      db,
	}
}

// Ping reports whether the underlying store answers.
func (c *Client) Ping(ctx context.Context) error {
	return c.db.Ping(ctx)
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
