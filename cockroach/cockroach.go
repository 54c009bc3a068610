package cockroach

import (
	"context"
	"embed"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nicolasparada/go-db"
)

//go:embed migrations/*.sql
var MigrationsFS embed.FS

type Cockroach struct {
	db   *db.DB
	pool *pgxpool.Pool

	// afterAcceptStep lets tests inject a failure between the writes of an accept.
	afterAcceptStep func(step acceptStep) error
}

func New(pool *pgxpool.Pool) *Cockroach {
	return &Cockroach{
		db:   db.New(pool),
		pool: pool,
	}
}

func (c *Cockroach) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

func where(filters []string) string {
	if len(filters) == 0 {
		return ""
	}

	return " WHERE " + strings.Join(filters, " AND ") + " "
}
