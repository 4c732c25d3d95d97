package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/GildedRose_Go/internal/testing/leaktest"
)

var (
	testDBConnString string
)

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()

	if !testing.Short() {
		ctx := context.Background()
		var connStr string
		connStr, terminate = setupContainer(ctx)
		testDBConnString = connStr
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}

	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	// Handle potential panics from testcontainers
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

// requirePool skips without a container and returns a pool closed at test end
func requirePool(t *testing.T, maxConns int) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	pool, err := NewPool(testDBConnString, maxConns, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestPool_ReleasesConnections(t *testing.T) {
	pool := requirePool(t, 5)
	ctx := context.Background()

	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{"successful query", "SELECT 1", false},
		{"failing query", "SELECT * FROM nonexistent_table_xyz", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 10; i++ {
				conn, err := pool.Acquire(ctx)
				require.NoError(t, err, "acquire on iteration %d", i)

				var result int
				err = conn.QueryRow(ctx, tt.query).Scan(&result)
				if tt.wantErr {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
				conn.Release()
			}

			assert.Equal(t, int32(0), pool.Stat().AcquiredConns())
		})
	}
}

func TestPool_MaxConnsEnforced(t *testing.T) {
	const maxConns = 3
	pool := requirePool(t, maxConns)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	conns := make([]*pgxpool.Conn, maxConns)
	for i := range conns {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err)
		conns[i] = conn
	}
	assert.Equal(t, int32(maxConns), pool.Stat().AcquiredConns())

	shortCtx, shortCancel := context.WithTimeout(ctx, 100*time.Millisecond)
	_, err := pool.Acquire(shortCtx)
	shortCancel()
	assert.Error(t, err, "acquire must fail while the pool is exhausted")

	conns[0].Release()
	conn, err := pool.Acquire(ctx)
	require.NoError(t, err)
	conn.Release()

	for _, c := range conns[1:] {
		c.Release()
	}
}

func TestPool_ConcurrentAccess(t *testing.T) {
	pool := requirePool(t, 10)
	checker := leaktest.NewGoroutineChecker(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			var result int
			if err := pool.QueryRow(context.Background(), "SELECT $1::int", id).Scan(&result); err != nil {
				t.Errorf("worker %d: %v", id, err)
				return
			}
			if result != id {
				t.Errorf("worker %d got %d", id, result)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns())
	// pgxpool keeps a health-check goroutine per pool
	checker.Check(2)
}

func TestPool_SetsApplicationName(t *testing.T) {
	pool := requirePool(t, 2)

	var name string
	require.NoError(t, pool.QueryRow(context.Background(), "SHOW application_name").Scan(&name))
	assert.Equal(t, ApplicationName, name)
}

// TestMigrate_AppliesSchema runs the embedded migrations twice against a fresh database
func TestMigrate_AppliesSchema(t *testing.T) {
	pool := requirePool(t, 5)
	ctx := context.Background()

	version, err := Migrate(ctx, pool)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	// Second run is a no-op
	again, err := Migrate(ctx, pool)
	require.NoError(t, err)
	assert.Equal(t, version, again)

	for _, table := range []string{"stock_items", "tick_runs", "sync_metadata"} {
		var exists bool
		err := pool.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)", table).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "table %s should exist", table)
	}
}

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool("://not a url", 5, time.Minute, time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestPoolConfig(t *testing.T) {
	tests := []struct {
		name        string
		connString  string
		maxConns    int
		wantMax     int32
		wantMin     int32
		wantAppName string
	}{
		{"defaults application name", "postgres://u:p@localhost:5432/db", 10, 10, DefaultMinConnections, ApplicationName},
		{"min capped by max", "postgres://u:p@localhost:5432/db", 1, 1, 1, ApplicationName},
		{"non-positive max becomes one", "postgres://u:p@localhost:5432/db", 0, 1, 1, ApplicationName},
		{"explicit application name kept", "postgres://u:p@localhost:5432/db?application_name=ops", 4, 4, DefaultMinConnections, "ops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := poolConfig(tt.connString, tt.maxConns, time.Minute, time.Hour)
			require.NoError(t, err)

			assert.Equal(t, tt.wantMax, cfg.MaxConns)
			assert.Equal(t, tt.wantMin, cfg.MinConns)
			assert.Equal(t, time.Minute, cfg.MaxConnIdleTime)
			assert.Equal(t, time.Hour, cfg.MaxConnLifetime)
			assert.Equal(t, tt.wantAppName, cfg.ConnConfig.RuntimeParams["application_name"])
		})
	}
}
