// Package testutil starts a throwaway Postgres for integration tests.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "github.com/lib/pq" // Import postgres driver
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// DatabaseURLEnv points the integration tests at an existing database instead
// of a container. The database is wiped by Reset.
const DatabaseURLEnv = "TEST_DATABASE_URL"

const schema = `
	CREATE TABLE IF NOT EXISTS teams (
		id   SERIAL PRIMARY KEY,
		name VARCHAR NOT NULL
	);

	CREATE TABLE IF NOT EXISTS members (
		id        SERIAL PRIMARY KEY,
		name      VARCHAR NOT NULL,
		knockouts INTEGER NOT NULL DEFAULT 0,
		team_id   INTEGER NOT NULL REFERENCES teams (id)
	);

	CREATE INDEX IF NOT EXISTS idx_members_team_id ON members (team_id);
`

// StartPostgres returns the DSN of an empty database with the roster tables.
// The test is skipped when neither TEST_DATABASE_URL nor docker is available.
func StartPostgres(t *testing.T) string {
	t.Helper()

	dsn := os.Getenv(DatabaseURLEnv)
	if dsn == "" {
		dsn = startContainer(t)
	}

	sqlDB := Open(t, dsn)
	_, err := sqlDB.Exec(schema)
	require.NoError(t, err)

	return dsn
}

// Open returns a plain handle closed at test cleanup.
func Open(t *testing.T, dsn string) *sql.DB {
	t.Helper()

	sqlDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.Eventually(t, func() bool {
		return sqlDB.Ping() == nil
	}, time.Minute, time.Second)

	return sqlDB
}

// Reset empties both tables and restarts their id sequences.
func Reset(t *testing.T, sqlDB *sql.DB) {
	t.Helper()

	_, err := sqlDB.Exec(`TRUNCATE members, teams RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

// SeedTeams inserts teams with the given names and returns their ids in order.
func SeedTeams(t *testing.T, sqlDB *sql.DB, names ...string) []int32 {
	t.Helper()

	ids := make([]int32, 0, len(names))
	for _, name := range names {
		var id int32
		err := sqlDB.QueryRow(`INSERT INTO teams (name) VALUES ($1) RETURNING id`, name).Scan(&id)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

// SeedMembers inserts n members of teamID named "<prefix>-<i>".
func SeedMembers(t *testing.T, sqlDB *sql.DB, teamID int32, prefix string, n int) {
	t.Helper()

	_, err := sqlDB.Exec(`
		INSERT INTO members (name, knockouts, team_id)
		SELECT $1::text || '-' || g::text, g % 7, $2::int
		FROM generate_series(1, $3::int) AS g`, prefix, teamID, n)
	require.NoError(t, err)
}

func startContainer(t *testing.T) string {
	t.Helper()
	requireDocker(t)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "roster",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		).WithDeadline(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://postgres:postgres@%s:%s/roster?sslmode=disable", host, port.Port())
}

func requireDocker(t *testing.T) {
	t.Helper()

	paths := []string{
		"/var/run/docker.sock",
		filepath.Join(os.Getenv("HOME"), ".docker/run/docker.sock"),
	}
	if host := os.Getenv("DOCKER_HOST"); strings.HasPrefix(host, "unix://") {
		paths = append(paths, strings.TrimPrefix(host, "unix://"))
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			conn, dialErr := net.DialTimeout("unix", p, time.Second)
			if dialErr == nil {
				_ = conn.Close()
				return
			}
		}
	}
	t.Skip("docker socket not available")
}
