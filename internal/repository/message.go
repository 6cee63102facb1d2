package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/bookshare/bookshare-service/internal/errs"
	"github.com/bookshare/bookshare-service/internal/model"
)

func (r *repository) InsertMessage(ctx context.Context, requestUid, senderUid, body string) (model.Message, error) {
	q := `
insert into messages (request_id, sender_id, body)
select br.id, u.id, $3
from borrow_requests br, users u
where br.request_uid = $1 and u.user_uid = $2
returning id, created_at`

	var msg model.Message
	if err := r.db.QueryRowContext(ctx, q, requestUid, senderUid, body).Scan(&msg.ID, &msg.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Message{}, errs.ErrNotFound
		}
		return model.Message{}, err
	}
	msg.SenderUid = senderUid
	msg.Body = body
	return msg, nil
}

func (r *repository) ListMessages(ctx context.Context, requestUid string) ([]model.Message, error) {
	q, args, err := qb.Select("m.id", "u.user_uid as sender_uid", "u.username as sender_name", "m.body", "m.created_at").
		From(messagesTableName + " m").
		Join(fmt.Sprintf("%s br on br.id = m.request_id", requestsTableName)).
		Join(fmt.Sprintf("%s u on u.id = m.sender_id", usersTableName)).
		Where(sq.Eq{"br.request_uid": requestUid}).
		OrderBy("m.created_at asc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var msgs []model.Message
	if err := r.db.SelectContext(ctx, &msgs, q, args...); err != nil {
		return nil, err
	}
	return msgs, nil
}
