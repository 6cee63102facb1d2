package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookshare/bookshare-service/internal/errs"
	"github.com/bookshare/bookshare-service/internal/model"
)

const requestColumns = `br.id, br.request_uid, br.book_id, b.book_uid, br.borrower_id, u.user_uid as borrower_uid,
	o.user_uid as owner_uid, br.status, br.handover_method, br.return_method, br.due_date, br.message,
	br.created_at, br.updated_at`

func (r *repository) requestSelect() sq.SelectBuilder {
	return qb.Select(requestColumns).
		From(requestsTableName + " br").
		Join(fmt.Sprintf("%s b on b.id = br.book_id", booksTableName)).
		Join(fmt.Sprintf("%s u on u.id = br.borrower_id", usersTableName)).
		Join(fmt.Sprintf("%s o on o.id = b.owner_id", usersTableName))
}

func (r *repository) CreateRequest(ctx context.Context, req model.CreateBorrowRequest) (model.BorrowRequest, error) {
	q := `
insert into borrow_requests (request_uid, book_id, borrower_id, message)
select $1, b.id, u.id, $4
from books b, users u
where b.book_uid = $2 and u.user_uid = $3
returning request_uid`

	var requestUid string
	if err := r.db.QueryRowContext(ctx, q, uuid.New(), req.BookUid, req.BorrowerUid, req.Message).Scan(&requestUid); err != nil {
		r.log.Error("CreateRequest", zap.String("q", q), zap.Error(err))
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowRequest{}, errs.ErrNotFound
		}
		return model.BorrowRequest{}, wrapPgErr(err)
	}
	return r.GetRequest(ctx, requestUid)
}

func (r *repository) GetRequest(ctx context.Context, requestUid string) (model.BorrowRequest, error) {
	q, args, err := r.requestSelect().
		Where(sq.Eq{"br.request_uid": requestUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.BorrowRequest{}, err
	}

	var br model.BorrowRequest
	if err := r.db.GetContext(ctx, &br, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowRequest{}, errs.ErrNotFound
		}
		return model.BorrowRequest{}, err
	}
	return br, nil
}

func (r *repository) ListRequests(ctx context.Context, userUid, role string, status model.Status) ([]model.BorrowRequest, error) {
	q := r.requestSelect().OrderBy("br.created_at desc")

	if role == "owner" {
		q = q.Where(sq.Eq{"o.user_uid": userUid})
	} else {
		q = q.Where(sq.Eq{"u.user_uid": userUid})
	}
	if status != "" {
		q = q.Where(sq.Eq{"br.status": status})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.BorrowRequest
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// transition flips the request status with an optimistic guard on the
// expected current status. The paired book-availability flip runs in the
// same transaction, so a lost race surfaces as ErrInvalidTransition instead
// of a double approval.
func (r *repository) transition(ctx context.Context, requestUid string, from, to model.Status, sets map[string]interface{}, borrowable *bool) (model.BorrowRequest, error) {
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		upd := qb.Update(requestsTableName).
			Set("status", to).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"request_uid": requestUid}).
			Where(sq.Eq{"status": from}).
			Suffix("returning book_id")
		for col, val := range sets {
			upd = upd.Set(col, val)
		}

		q, args, err := upd.ToSql()
		if err != nil {
			return err
		}

		var bookID int
		if err := tx.QueryRowContext(ctx, q, args...).Scan(&bookID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrInvalidTransition
			}
			return err
		}

		if borrowable != nil {
			if _, err := tx.ExecContext(ctx,
				fmt.Sprintf("update %s set borrowable = $1 where id = $2", booksTableName),
				*borrowable, bookID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return model.BorrowRequest{}, err
	}
	return r.GetRequest(ctx, requestUid)
}

func (r *repository) ApproveRequest(ctx context.Context, requestUid string, dueDate time.Time, method model.Method) (model.BorrowRequest, error) {
	notBorrowable := false
	return r.transition(ctx, requestUid, model.StatusPending, model.StatusApproved, map[string]interface{}{
		"due_date":        dueDate.Format(time.DateOnly),
		"handover_method": method,
	}, &notBorrowable)
}

func (r *repository) DenyRequest(ctx context.Context, requestUid string) (model.BorrowRequest, error) {
	return r.transition(ctx, requestUid, model.StatusPending, model.StatusDenied, nil, nil)
}

func (r *repository) ConfirmHandover(ctx context.Context, requestUid string) (model.BorrowRequest, error) {
	return r.transition(ctx, requestUid, model.StatusApproved, model.StatusBorrowed, nil, nil)
}

func (r *repository) InitiateReturn(ctx context.Context, requestUid string, method model.Method) (model.BorrowRequest, error) {
	return r.transition(ctx, requestUid, model.StatusBorrowed, model.StatusReturnInitiated, map[string]interface{}{
		"return_method": method,
	}, nil)
}

func (r *repository) ConfirmReturn(ctx context.Context, requestUid string) (model.BorrowRequest, error) {
	borrowable := true
	return r.transition(ctx, requestUid, model.StatusReturnInitiated, model.StatusReturned, nil, &borrowable)
}
