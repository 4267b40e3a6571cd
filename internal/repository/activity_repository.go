package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/frisfocus/internal/error_values"
	"github.com/limbo/frisfocus/pkg/entity"
)

type ActivityRepository struct {
	conn PgConnection
}

func NewActivityRepoWithConn(conn PgConnection) *ActivityRepository {
	return &ActivityRepository{
		conn: conn,
	}
}

// Award writes the log row and the total increment in one transaction so a
// reader never sees one without the other. The increment happens in SQL,
// concurrent awards for the same user queue on the row lock.
func (ar *ActivityRepository) Award(ctx context.Context, entry *entity.FpActivityLogEntry) (int64, error) {
	if entry == nil {
		return 0, errors.New("activity entry is nil")
	}
	tx, err := ar.conn.Begin(ctx)
	if err != nil {
		return 0, errors.New("beginning award transaction error: " + err.Error())
	}
	total, err := appendEntry(ctx, tx, entry)
	if err != nil {
		_ = tx.Rollback(ctx)
		return 0, err
	}
	if err = tx.Commit(ctx); err != nil {
		return 0, errors.New("committing award transaction error: " + err.Error())
	}
	return total, nil
}

// AwardOnce is Award guarded by a windowed existence check. Callers for the
// same user and event type are serialized by a transaction-scoped advisory
// lock, so at most one of them writes per window. Reports false and writes
// nothing when an entry already exists since the given moment.
func (ar *ActivityRepository) AwardOnce(ctx context.Context, entry *entity.FpActivityLogEntry, since time.Time) (int64, bool, error) {
	if entry == nil {
		return 0, false, errors.New("activity entry is nil")
	}
	tx, err := ar.conn.Begin(ctx)
	if err != nil {
		return 0, false, errors.New("beginning award transaction error: " + err.Error())
	}
	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1::text || ':' || $2::text));`,
		entry.UserID.String(),
		entry.EventType,
	)
	if err != nil {
		_ = tx.Rollback(ctx)
		return 0, false, errors.New("locking award key error: " + err.Error())
	}
	var exists bool
	row := tx.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM fp_activity_log WHERE user_id = $1 AND event_type = $2 AND created_at >= $3);`,
		entry.UserID,
		entry.EventType,
		since,
	)
	if err = row.Scan(&exists); err != nil {
		_ = tx.Rollback(ctx)
		return 0, false, errors.New("inspecting if activity exists error: " + err.Error())
	}
	if exists {
		_ = tx.Rollback(ctx)
		return 0, false, nil
	}
	total, err := appendEntry(ctx, tx, entry)
	if err != nil {
		_ = tx.Rollback(ctx)
		return 0, false, err
	}
	if err = tx.Commit(ctx); err != nil {
		return 0, false, errors.New("committing award transaction error: " + err.Error())
	}
	return total, true, nil
}

// appendEntry inserts entry and increments its owner's total inside tx.
// The caller rolls back on error.
func appendEntry(ctx context.Context, tx pgx.Tx, entry *entity.FpActivityLogEntry) (int64, error) {
	row := tx.QueryRow(ctx, `INSERT INTO fp_activity_log (user_id, event_type, fp_amount, description)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;`,
		entry.UserID,
		entry.EventType,
		entry.FpAmount,
		entry.Description,
	)
	if err := row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return 0, errorvalues.ErrUserNotFound
			}
		}
		return 0, errors.New("inserting activity entry error: " + err.Error())
	}
	var total int64
	row = tx.QueryRow(ctx, `UPDATE users SET fp_total = fp_total + $1 WHERE id = $2 RETURNING fp_total;`,
		entry.FpAmount,
		entry.UserID,
	)
	if err := row.Scan(&total); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrUserNotFound
		}
		return 0, errors.New("incrementing fp total error: " + err.Error())
	}
	return total, nil
}

func (ar *ActivityRepository) ExistsSince(ctx context.Context, uid uuid.UUID, eventType string, since time.Time) (bool, error) {
	var exists bool
	row := ar.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM fp_activity_log WHERE user_id = $1 AND event_type = $2 AND created_at >= $3);`,
		uid,
		eventType,
		since,
	)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting if activity exists error: " + err.Error())
	}
	return exists, nil
}

func (ar *ActivityRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.FpActivityLogEntry, error) {
	rows, err := ar.conn.Query(ctx, `SELECT id, user_id, event_type, fp_amount, description, created_at
		FROM fp_activity_log WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting activity by uid error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]*entity.FpActivityLogEntry, 0)
	for rows.Next() {
		e := entity.FpActivityLogEntry{}
		err = rows.Scan(&e.ID, &e.UserID, &e.EventType, &e.FpAmount, &e.Description, &e.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling activity entry error: " + err.Error())
		}
		entries = append(entries, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return entries, nil
}

func (ar *ActivityRepository) TopBySumSince(ctx context.Context, since time.Time, uids []uuid.UUID, limit int) ([]entity.LeaderboardEntry, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if uids == nil {
		rows, err = ar.conn.Query(ctx, `SELECT u.id, u.display_name, u.avatar_url, SUM(l.fp_amount) AS points
		FROM fp_activity_log l JOIN users u ON u.id = l.user_id
		WHERE l.created_at >= $1
		GROUP BY u.id, u.display_name, u.avatar_url
		ORDER BY points DESC, u.id ASC LIMIT $2;`, since, limit)
	} else {
		rows, err = ar.conn.Query(ctx, `SELECT u.id, u.display_name, u.avatar_url, SUM(l.fp_amount) AS points
		FROM fp_activity_log l JOIN users u ON u.id = l.user_id
		WHERE l.created_at >= $1 AND l.user_id = ANY($2)
		GROUP BY u.id, u.display_name, u.avatar_url
		ORDER BY points DESC, u.id ASC LIMIT $3;`, since, uids, limit)
	}
	if err != nil {
		return nil, errors.New("getting top users by period error: " + err.Error())
	}
	return scanLeaderboardRows(rows)
}
