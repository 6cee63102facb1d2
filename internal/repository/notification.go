package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/bookshare/bookshare-service/internal/errs"
	"github.com/bookshare/bookshare-service/internal/model"
)

func (r *repository) InsertNotification(ctx context.Context, event model.NotificationEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return err
	}

	q := `
insert into notifications (user_id, kind, payload)
select u.id, $2, $3
from users u
where u.user_uid = $1
returning id`

	var id int
	if err := r.db.QueryRowContext(ctx, q, event.UserUid, event.Kind, payload).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *repository) ListNotifications(ctx context.Context, userUid string, unreadOnly bool) ([]model.Notification, error) {
	q := qb.Select("n.id", "n.kind", "n.payload", "n.read", "n.created_at").
		From(notificationsTableName + " n").
		Join(usersTableName + " u on u.id = n.user_id").
		Where(sq.Eq{"u.user_uid": userUid}).
		OrderBy("n.created_at desc").
		Limit(100)
	if unreadOnly {
		q = q.Where(sq.Eq{"n.read": false})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.Notification
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) MarkNotificationRead(ctx context.Context, userUid string, id int) error {
	q := `
update notifications n
set read = true
from users u
where n.id = $1 and u.id = n.user_id and u.user_uid = $2`

	res, err := r.db.ExecContext(ctx, q, id, userUid)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) CountUnread(ctx context.Context, userUid string) (int64, error) {
	q := `
select count(*)
from notifications n
join users u on u.id = n.user_id
where u.user_uid = $1 and not n.read`

	var count int64
	if err := r.db.QueryRowContext(ctx, q, userUid).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
