package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookshare/bookshare-service/internal/errs"
	"github.com/bookshare/bookshare-service/internal/model"
)

func (r *repository) CreateReview(ctx context.Context, req model.CreateReviewRequest) (model.Review, error) {
	q := `
insert into reviews (book_id, reviewer_id, stars, body)
select b.id, u.id, $3, $4
from books b, users u
where b.book_uid = $1 and u.user_uid = $2
returning id, created_at`

	var (
		id        int
		createdAt time.Time
	)
	if err := r.db.QueryRowContext(ctx, q, req.BookUid, req.ReviewerUid, req.Stars, req.Body).Scan(&id, &createdAt); err != nil {
		r.log.Error("CreateReview", zap.String("q", q), zap.Error(err))
		if errors.Is(err, sql.ErrNoRows) {
			return model.Review{}, errs.ErrNotFound
		}
		return model.Review{}, wrapPgErr(err)
	}

	return model.Review{
		ID:          id,
		BookUid:     req.BookUid,
		ReviewerUid: req.ReviewerUid,
		Stars:       req.Stars,
		Body:        req.Body,
		CreatedAt:   createdAt,
	}, nil
}

func (r *repository) ListReviews(ctx context.Context, bookUid string) ([]model.Review, error) {
	q, args, err := qb.Select("rv.id", "b.book_uid", "u.user_uid as reviewer_uid", "u.username as reviewer", "rv.stars", "rv.body", "rv.created_at").
		From(reviewsTableName + " rv").
		Join(fmt.Sprintf("%s b on b.id = rv.book_id", booksTableName)).
		Join(fmt.Sprintf("%s u on u.id = rv.reviewer_id", usersTableName)).
		Where(sq.Eq{"b.book_uid": bookUid}).
		OrderBy("rv.created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var reviews []model.Review
	if err := r.db.SelectContext(ctx, &reviews, q, args...); err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetOwnerRating aggregates review stars across every book the user owns.
func (r *repository) GetOwnerRating(ctx context.Context, userUid string) (model.Rating, error) {
	q := `
select coalesce(avg(rv.stars), 0) as stars, count(rv.id) as count
from reviews rv
join books b on b.id = rv.book_id
join users o on o.id = b.owner_id
where o.user_uid = $1`

	var rating model.Rating
	if err := r.db.GetContext(ctx, &rating, q, userUid); err != nil {
		return model.Rating{}, err
	}
	return rating, nil
}
