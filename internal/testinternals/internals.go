// Package testinternals holds helpers shared by the integration tests of
// the repositories. They expect a reachable postgres, see POSTGRES_HOST.
package testinternals

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/xtrack/server/internal/db"
)

const testDBName = "xtrack"

// NewTestDB connects to the test database and applies the schema.
// The pool is closed when the test ends.
func NewTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}
	t.Logf("using postgres host: %s:%s", host, port)

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         host,
		DBPort:         port,
		DBName:         testDBName,
		DBPassword:     os.Getenv("POSTGRES_PASSWORD"),
		TracingEnabled: false,
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx, pool))

	t.Cleanup(pool.Close)
	return pool
}

// CreateUser inserts a throwaway user and removes it, with all of its
// records, when the test ends.
func CreateUser(t *testing.T, pool *pgxpool.Pool) string {
	t.Helper()

	id := uuid.NewString()
	_, err := pool.Exec(
		context.Background(),
		`INSERT INTO app_user (id, email, display_name, password_hash) VALUES ($1, $2, $3, $4)`,
		id, fmt.Sprintf("%s+%s", id[:8], gofakeit.Email()), gofakeit.Name(), "not-a-hash",
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_, err := pool.Exec(context.Background(), `DELETE FROM app_user WHERE id = $1`, id)
		if err != nil {
			t.Logf("cleanup user %s: %s", id, err)
		}
	})
	return id
}
