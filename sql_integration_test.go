package aic

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// TestPostgresRoundTrip stores and retrieves codes through a real Postgres
// to exercise the driver.Valuer / sql.Scanner implementations end to end.
func TestPostgresRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("aic"),
		postgres.WithUsername("aic"),
		postgres.WithPassword("aic"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx, `
		CREATE TABLE products (
			aic        integer PRIMARY KEY,
			name       text NOT NULL,
			parent_aic integer
		)`)
	require.NoError(t, err)

	code := Must(Parse("009CVD"))
	generic := Must(New(446589))

	_, err = db.ExecContext(ctx,
		`INSERT INTO products (aic, name, parent_aic) VALUES ($1, $2, $3), ($4, $5, $6)`,
		code, "reference product", NullCode{},
		generic, "generic product", NullCode{Code: code, Valid: true},
	)
	require.NoError(t, err)

	var got Code
	var name string
	var parent NullCode
	err = db.QueryRowContext(ctx,
		`SELECT aic, name, parent_aic FROM products WHERE aic = $1`, generic,
	).Scan(&got, &name, &parent)
	require.NoError(t, err)

	require.Equal(t, generic, got)
	require.Equal(t, "generic product", name)
	require.True(t, parent.Valid)
	require.Equal(t, code, parent.Code)

	err = db.QueryRowContext(ctx,
		`SELECT parent_aic FROM products WHERE aic = $1`, code,
	).Scan(&parent)
	require.NoError(t, err)
	require.False(t, parent.Valid)
}
