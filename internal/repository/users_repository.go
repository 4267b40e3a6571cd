package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/frisfocus/internal/error_values"
	"github.com/limbo/frisfocus/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, display_name, avatar_url, fp_total, created_at FROM users WHERE id = $1;`, uid)
	if err := row.Scan(&user.ID, &user.DisplayName, &user.AvatarURL, &user.FpTotal, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) GetFpTotal(ctx context.Context, uid uuid.UUID) (int64, error) {
	var total int64
	row := ur.conn.QueryRow(ctx, `SELECT fp_total FROM users WHERE id = $1;`, uid)
	if err := row.Scan(&total); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrUserNotFound
		}
		return 0, errors.New("getting fp total error: " + err.Error())
	}
	return total, nil
}

func (ur *UsersRepository) TopByFpTotal(ctx context.Context, uids []uuid.UUID, limit int) ([]entity.LeaderboardEntry, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if uids == nil {
		rows, err = ur.conn.Query(ctx, `SELECT id, display_name, avatar_url, fp_total FROM users
		ORDER BY fp_total DESC, id ASC LIMIT $1;`, limit)
	} else {
		rows, err = ur.conn.Query(ctx, `SELECT id, display_name, avatar_url, fp_total FROM users
		WHERE id = ANY($1) ORDER BY fp_total DESC, id ASC LIMIT $2;`, uids, limit)
	}
	if err != nil {
		return nil, errors.New("getting top users by total error: " + err.Error())
	}
	return scanLeaderboardRows(rows)
}

func (ur *UsersRepository) FindDrifted(ctx context.Context) ([]entity.TotalDrift, error) {
	rows, err := ur.conn.Query(ctx, `SELECT u.id, u.fp_total, COALESCE(s.total, 0) FROM users u
		LEFT JOIN (SELECT user_id, SUM(fp_amount) AS total FROM fp_activity_log GROUP BY user_id) s ON s.user_id = u.id
		WHERE u.fp_total <> COALESCE(s.total, 0) ORDER BY u.id;`)
	if err != nil {
		return nil, errors.New("searching drifted totals error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.TotalDrift, 0)
	for rows.Next() {
		var d entity.TotalDrift
		if err = rows.Scan(&d.UserID, &d.StoredTotal, &d.LoggedTotal); err != nil {
			return nil, errors.New("drift row parsing error: " + err.Error())
		}
		result = append(result, d)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected drift rows error: " + err.Error())
	}
	return result, nil
}

func (ur *UsersRepository) RepairFpTotal(ctx context.Context, uid uuid.UUID) (int64, error) {
	var total int64
	row := ur.conn.QueryRow(ctx, `UPDATE users SET fp_total = (SELECT COALESCE(SUM(fp_amount), 0) FROM fp_activity_log WHERE user_id = $1)
		WHERE id = $1 RETURNING fp_total;`, uid)
	if err := row.Scan(&total); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrUserNotFound
		}
		return 0, errors.New("repairing fp total error: " + err.Error())
	}
	return total, nil
}

func scanLeaderboardRows(rows pgx.Rows) ([]entity.LeaderboardEntry, error) {
	defer rows.Close()
	result := make([]entity.LeaderboardEntry, 0)
	for rows.Next() {
		var e entity.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.DisplayName, &e.AvatarURL, &e.FpTotal); err != nil {
			return nil, errors.New("leaderboard row parsing error: " + err.Error())
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected leaderboard rows error: " + err.Error())
	}
	return result, nil
}
