package repository_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/limbo/frisfocus/internal/repository"
	"github.com/limbo/frisfocus/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("frisfocus"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("pgx", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		t.Fatal(err)
	}
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}

func TestAwardIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	cfg := setupTestDB(t)
	ctx := context.Background()
	pool, err := repository.Connect(ctx, cfg)
	require.NoError(t, err)
	defer pool.Close()

	var uid, friendID uuid.UUID
	err = pool.QueryRow(ctx, `INSERT INTO users (display_name, fp_total) VALUES ('ann', 100) RETURNING id;`).Scan(&uid)
	require.NoError(t, err)
	err = pool.QueryRow(ctx, `INSERT INTO users (display_name) VALUES ('bob') RETURNING id;`).Scan(&friendID)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `INSERT INTO fp_activity_log (user_id, event_type, fp_amount, description) VALUES ($1, 'seed', 100, 'Seed');`, uid)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `INSERT INTO friendships (requester_id, addressee_id, status) VALUES ($1, $2, 'accepted');`, friendID, uid)
	require.NoError(t, err)

	activity := repository.NewActivityRepoWithConn(pool)
	users := repository.NewUsersRepoWithConn(pool)
	friends := repository.NewFriendshipsRepoWithConn(pool)

	t.Run("concurrent awards keep total equal to log sum", func(t *testing.T) {
		const workers = 20
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := activity.Award(ctx, &entity.FpActivityLogEntry{
					UserID:      uid,
					EventType:   "task_completed",
					FpAmount:    2,
					Description: "Completed a task",
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
		total, err := users.GetFpTotal(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, int64(100+2*workers), total)
		drifts, err := users.FindDrifted(ctx)
		require.NoError(t, err)
		assert.Empty(t, drifts)
	})
	t.Run("concurrent windowed awards write once", func(t *testing.T) {
		const workers = 20
		since := time.Now().Add(-time.Hour)
		before, err := users.GetFpTotal(ctx, uid)
		require.NoError(t, err)
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			awarded int
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, ok, err := activity.AwardOnce(ctx, &entity.FpActivityLogEntry{
					UserID:      uid,
					EventType:   "log_day",
					FpAmount:    10,
					Description: "Logged a day",
				}, since)
				assert.NoError(t, err)
				if ok {
					mu.Lock()
					awarded++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, awarded)
		after, err := users.GetFpTotal(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, before+10, after)
	})
	t.Run("unknown user leaves no log row", func(t *testing.T) {
		ghost := uuid.New()
		_, err := activity.Award(ctx, &entity.FpActivityLogEntry{
			UserID:      ghost,
			EventType:   "log_day",
			FpAmount:    10,
			Description: "Logged a day",
		})
		require.Error(t, err)
		entries, err := activity.GetByUserID(ctx, ghost, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
	t.Run("friends and weekly board", func(t *testing.T) {
		ids, err := friends.AcceptedFriendIDs(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{friendID}, ids)

		board, err := activity.TopBySumSince(ctx, time.Now().Add(-time.Hour), []uuid.UUID{uid, friendID}, 10)
		require.NoError(t, err)
		require.Len(t, board, 1)
		assert.Equal(t, uid, board[0].UserID)
	})
	t.Run("repair drift", func(t *testing.T) {
		_, err := pool.Exec(ctx, `UPDATE users SET fp_total = fp_total + 5 WHERE id = $1;`, uid)
		require.NoError(t, err)
		drifts, err := users.FindDrifted(ctx)
		require.NoError(t, err)
		require.Len(t, drifts, 1)
		repaired, err := users.RepairFpTotal(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, drifts[0].LoggedTotal, repaired)
	})
}
