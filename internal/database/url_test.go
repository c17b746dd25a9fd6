package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	cases := []struct {
		raw     string
		backend string
		dsn     string
	}{
		{"postgres://u:p@localhost:5432/app?sslmode=disable", BackendPostgres, "postgres://u:p@localhost:5432/app?sslmode=disable"},
		{"postgresql://localhost/app", BackendPostgres, "postgresql://localhost/app"},
		{"sqlite://users.db", BackendSQLite, "users.db"},
		{"sqlite://file:x?mode=memory&cache=shared", BackendSQLite, "file:x?mode=memory&cache=shared"},
		{"file:users.db?_busy_timeout=5000", BackendSQLite, "file:users.db?_busy_timeout=5000"},
	}
	for _, tc := range cases {
		backend, dsn, err := ParseURL(tc.raw)
		require.NoError(t, err, tc.raw)
		require.Equal(t, tc.backend, backend, tc.raw)
		require.Equal(t, tc.dsn, dsn, tc.raw)
	}

	for _, raw := range []string{"", "mysql://localhost/app", "sqlite://"} {
		_, _, err := ParseURL(raw)
		require.ErrorIs(t, err, ErrUnsupportedURL, raw)
	}
}
