package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/frisfocus/internal/error_values"
	"github.com/limbo/frisfocus/internal/repository"
	"github.com/limbo/frisfocus/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	avatar := "https://cdn.example/u.png"
	user := entity.User{
		ID:          uuid.New(),
		DisplayName: "test_user",
		AvatarURL:   &avatar,
		FpTotal:     100,
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	query := regexp.QuoteMeta(`SELECT id, display_name, avatar_url, fp_total, created_at FROM users WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "display_name", "avatar_url", "fp_total", "created_at"}).
				AddRow(user.ID, user.DisplayName, user.AvatarURL, user.FpTotal, user.CreatedAt))
		result, err := repo.FindByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByID(ctx, user.ID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestGetFpTotal(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`SELECT fp_total FROM users WHERE id = $1;`)
	testCases := []struct {
		Desc         string
		Error        error
		Total        int64
		MockPrepFunc func()
	}{
		{
			Desc:  "found",
			Total: 110,
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"fp_total"}).AddRow(int64(110)))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs(uid).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting fp total error: db error"),
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs(uid).WillReturnError(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			total, err := repo.GetFpTotal(ctx, uid)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Total, total)
		})
	}
}

func TestTopByFpTotal(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	allQuery := regexp.QuoteMeta(`FROM users ORDER BY fp_total DESC, id ASC LIMIT $1;`)
	subsetQuery := regexp.QuoteMeta(`FROM users WHERE id = ANY($1) ORDER BY fp_total DESC, id ASC LIMIT $2;`)
	cols := []string{"id", "display_name", "avatar_url", "fp_total"}
	a, b := uuid.New(), uuid.New()
	avatar := "https://cdn.example/x.png"

	t.Run("every user", func(t *testing.T) {
		conn.ExpectQuery(allQuery).WithArgs(3).
			WillReturnRows(pgxmock.NewRows(cols).
				AddRow(a, "Ann", &avatar, int64(500)).
				AddRow(b, "Bob", &avatar, int64(20)))
		entries, err := repo.TopByFpTotal(ctx, nil, 3)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, a, entries[0].UserID)
		assert.Equal(t, int64(20), entries[1].FpTotal)
	})
	t.Run("subset", func(t *testing.T) {
		uids := []uuid.UUID{b}
		conn.ExpectQuery(subsetQuery).WithArgs(uids, 3).
			WillReturnRows(pgxmock.NewRows(cols).AddRow(b, "Bob", &avatar, int64(20)))
		entries, err := repo.TopByFpTotal(ctx, uids, 3)
		require.NoError(t, err)
		require.Len(t, entries, 1)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(allQuery).WithArgs(3).WillReturnError(errors.New("db error"))
		_, err := repo.TopByFpTotal(ctx, nil, 3)
		assert.EqualError(t, err, "getting top users by total error: db error")
	})
}

func TestFindDriftedAndRepair(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	driftQuery := regexp.QuoteMeta(`WHERE u.fp_total <> COALESCE(s.total, 0)`)
	repairQuery := regexp.QuoteMeta(`UPDATE users SET fp_total = (SELECT COALESCE(SUM(fp_amount), 0) FROM fp_activity_log WHERE user_id = $1)`)
	uid := uuid.New()

	t.Run("drift found", func(t *testing.T) {
		conn.ExpectQuery(driftQuery).
			WillReturnRows(pgxmock.NewRows([]string{"id", "fp_total", "total"}).AddRow(uid, int64(120), int64(110)))
		drifts, err := repo.FindDrifted(ctx)
		require.NoError(t, err)
		assert.Equal(t, []entity.TotalDrift{{UserID: uid, StoredTotal: 120, LoggedTotal: 110}}, drifts)
	})
	t.Run("drift query error", func(t *testing.T) {
		conn.ExpectQuery(driftQuery).WillReturnError(errors.New("db error"))
		_, err := repo.FindDrifted(ctx)
		assert.EqualError(t, err, "searching drifted totals error: db error")
	})
	t.Run("repaired", func(t *testing.T) {
		conn.ExpectQuery(repairQuery).WithArgs(uid).
			WillReturnRows(pgxmock.NewRows([]string{"fp_total"}).AddRow(int64(110)))
		total, err := repo.RepairFpTotal(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, int64(110), total)
	})
	t.Run("repair unknown user", func(t *testing.T) {
		conn.ExpectQuery(repairQuery).WithArgs(uid).WillReturnError(pgx.ErrNoRows)
		_, err := repo.RepairFpTotal(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}
