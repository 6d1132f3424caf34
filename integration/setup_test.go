package integration

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

func setupPQ(t *testing.T) *sql.DB {
	t.Helper()

	var db *sql.DB
	setupDatabase(t, func(dsn string) error {
		var err error
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
		defer cancel()
		return db.PingContext(ctx)
	})
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func setupPGX(t *testing.T) *pgxpool.Pool {
	t.Helper()

	var db *pgxpool.Pool
	setupDatabase(t, func(dsn string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
		defer cancel()
		var err error
		db, err = pgxpool.New(ctx, dsn)
		if err != nil {
			return err
		}
		return db.Ping(ctx)
	})
	t.Cleanup(func() {
		db.Close() //nolint:errcheck
	})

	return db
}

func setupSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		db.Close()
	})
	if err := db.Ping(); err != nil {
		t.Fatal(err)
	}
	return db
}

func setupDatabase(t *testing.T, connect func(string) error) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("Could not construct pool: %s", err)
	}

	err = pool.Client.Ping()
	if err != nil {
		t.Fatalf("Could not connect to Docker: %s", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=test",
			"POSTGRES_USER=test",
			"POSTGRES_DB=test",
			"listen_addresses='*'",
			"fsync='off'",
			"full_page_writes='off'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(120) //nolint:errcheck

	dsn := fmt.Sprintf("postgres://test:test@%s/test?sslmode=disable", resource.GetHostPort("5432/tcp"))

	pool.MaxWait = 120 * time.Second
	if err = pool.Retry(func() error {
		return connect(dsn)
	}); err != nil {
		t.Fatalf("Could not connect to docker: %s", err)
	}

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Fatalf("Could not purge resource: %s", err)
		}
	})
}

// fixture creates a guild table with 5 guilds and a players table with 10
// players. The statements run on PostgreSQL and SQLite.
var fixture = []string{
	`CREATE TABLE guild (
		"id" integer PRIMARY KEY,
		"title" text
	)`,
	`INSERT INTO guild ("id", "title") VALUES
		(20, 'Knights'),
		(30, 'Rogues'),
		(40, 'Mages'),
		(50, 'Dragons'),
		(60, 'Phoenix')`,
	`CREATE TABLE players (
		"id" integer PRIMARY KEY,
		"name" text,
		"level" integer,
		"class" text,
		"mount" text,
		"guild_id" integer,
		"active" boolean,
		"score" double precision,
		"joined_at" timestamp
	)`,
	`INSERT INTO players
		("id", "name",          "level", "class",   "mount",   "guild_id", "active", "score", "joined_at") VALUES
		(1,    'Alice',         10,      'warrior', 'horse',   20,         TRUE,     1.5,     '2020-01-01 00:00:00'),
		(2,    'Bob',           20,      'mage',    'horse',   20,         FALSE,    2.5,     '2020-02-01 00:00:00'),
		(3,    'Charlie',       30,      'rogue',   NULL,      30,         TRUE,     3.5,     '2020-03-01 00:00:00'),
		(4,    'David',         40,      'warrior', NULL,      30,         TRUE,     4.5,     '2020-04-01 00:00:00'),
		(5,    'Eve',           50,      'mage',    'griffon', 40,         FALSE,    5.5,     '2020-05-01 00:00:00'),
		(6,    'Frank',         60,      'rogue',   'griffon', 40,         TRUE,     6.5,     '2020-06-01 00:00:00'),
		(7,    'Grace',         70,      'warrior', 'dragon',  50,         TRUE,     7.5,     '2020-07-01 00:00:00'),
		(8,    'Hank',          80,      'mage',    'dragon',  50,         FALSE,    8.5,     '2020-08-01 00:00:00'),
		(9,    'Ivy',           90,      'rogue',   'phoenix', NULL,       TRUE,     9.5,     '2020-09-01 00:00:00'),
		(10,   'Jack O''Neil',  100,     'warrior', 'phoenix', 60,         TRUE,     10.5,    '2020-10-01 00:00:00')`,
}

// createPlayersTable runs the fixture through exec.
func createPlayersTable(t *testing.T, exec func(string) error) {
	t.Helper()

	for _, statement := range fixture {
		if err := exec(statement); err != nil {
			t.Fatal(err)
		}
	}
}

func sqlExec(db *sql.DB) func(string) error {
	return func(statement string) error {
		_, err := db.Exec(statement)
		return err
	}
}

// scanIDs reads a single integer column.
func scanIDs(t *testing.T, rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) []int {
	t.Helper()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		t.Fatal(err)
	}
	return ids
}
