package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type FriendshipsRepository struct {
	conn PgConnection
}

func NewFriendshipsRepoWithConn(conn PgConnection) *FriendshipsRepository {
	return &FriendshipsRepository{
		conn: conn,
	}
}

func (fr *FriendshipsRepository) AcceptedFriendIDs(ctx context.Context, uid uuid.UUID) ([]uuid.UUID, error) {
	rows, err := fr.conn.Query(ctx, `SELECT CASE WHEN requester_id = $1 THEN addressee_id ELSE requester_id END
		FROM friendships WHERE status = 'accepted' AND (requester_id = $1 OR addressee_id = $1);`, uid)
	if err != nil {
		return nil, errors.New("getting friends error: " + err.Error())
	}
	defer rows.Close()
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, errors.New("friend row parsing error: " + err.Error())
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected friend rows error: " + err.Error())
	}
	return ids, nil
}
