package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/van-rental-manager/internal/logger"
)

// lazyConn holds the connection of a single request.
// It is only touched by the goroutine serving that request.
type lazyConn struct {
	db   *sqlx.DB
	conn *sqlx.Conn
}

func (c *lazyConn) get(ctx context.Context) (*sqlx.Conn, error) {
	if c.conn != nil {
		return c.conn, nil
	}
	conn, err := c.db.Connx(ctx)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	return conn, nil
}

func (c *lazyConn) close() {
	if c.conn == nil {
		return
	}
	if err := c.conn.Close(); err != nil {
		logger.Log.Errorw("failed to release connection", "error", err)
	}
	c.conn = nil
}

// ConnMiddleware gives every request its own database connection.
// The connection is taken from the pool on first use and released when the
// handler returns, panics included.
func ConnMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lc := &lazyConn{db: db}
			defer lc.close()

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), connKey, lc)))
		})
	}
}

type connContextKey struct{}

var connKey = connContextKey{}

// GetConnFromContext returns the connection of the current request, acquiring it
// on first call. Returns nil, nil outside ConnMiddleware.
func GetConnFromContext(ctx context.Context) (*sqlx.Conn, error) {
	lc, ok := ctx.Value(connKey).(*lazyConn)
	if !ok {
		return nil, nil
	}
	return lc.get(ctx)
}
