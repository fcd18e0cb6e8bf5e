package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
)

// ConnGetter returns the connection bound to the current request.
// A nil connection means the caller is outside a request and the pool is used.
type ConnGetter func(ctx context.Context) (*sqlx.Conn, error)

// executor is the subset of *sqlx.DB and *sqlx.Conn used by the repositories.
type executor interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
}

func pick(ctx context.Context, db *sqlx.DB, connGetter ConnGetter) (executor, error) {
	if connGetter != nil {
		conn, err := connGetter(ctx)
		if err != nil {
			return nil, err
		}
		if conn != nil {
			return conn, nil
		}
	}
	return db, nil
}

// oneLine collapses a query for logging.
func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
