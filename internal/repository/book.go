package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookshare/bookshare-service/internal/errs"
	"github.com/bookshare/bookshare-service/internal/model"
)

const bookColumns = `b.id, b.book_uid, b.owner_id, o.user_uid as owner_uid, b.title, b.author, b.genre,
	b.condition, b.description, b.cover_url, b.borrowable, c.community_uid, b.created_at`

func (r *repository) bookSelect() sq.SelectBuilder {
	return qb.Select(bookColumns).
		From(booksTableName + " b").
		Join(fmt.Sprintf("%s o on o.id = b.owner_id", usersTableName)).
		LeftJoin(fmt.Sprintf("%s c on c.id = b.community_id", communitiesTableName))
}

func (r *repository) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	ins := qb.Insert(booksTableName).
		Columns("book_uid", "owner_id", "title", "author", "genre", "condition", "description", "cover_url", "community_id").
		Values(
			uuid.New(),
			sq.Expr("(select id from users where user_uid = ?)", req.OwnerUid),
			req.Title, req.Author, req.Genre, req.Condition, req.Description, req.CoverURL,
			sq.Expr("(select id from communities where community_uid = nullif(?, '')::uuid)", req.CommunityUid),
		).
		Suffix("returning book_uid")

	q, args, err := ins.ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var bookUid string
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&bookUid); err != nil {
		r.log.Error("CreateBook", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return model.Book{}, wrapPgErr(err)
	}
	return r.GetBook(ctx, bookUid)
}

func (r *repository) GetBook(ctx context.Context, bookUid string) (model.Book, error) {
	q, args, err := r.bookSelect().
		Where(sq.Eq{"b.book_uid": bookUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error) {
	q := r.bookSelect().OrderBy("b.created_at desc")

	if filter.Genre != "" {
		q = q.Where(sq.Eq{"b.genre": filter.Genre})
	}
	if filter.OwnerUid != "" {
		q = q.Where(sq.Eq{"o.user_uid": filter.OwnerUid})
	}
	if filter.CommunityUid != "" {
		q = q.Where(sq.Eq{"c.community_uid": filter.CommunityUid})
	}
	if filter.OnlyAvailable {
		q = q.Where(sq.Eq{"b.borrowable": true})
	}
	if filter.Page != 0 && filter.Size != 0 {
		q = q.Limit(uint64(filter.Size)).Offset(uint64((filter.Page - 1) * filter.Size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return model.ListBooks{}, err
	}

	return model.ListBooks{
		Paging: model.Paging{
			Page:          filter.Page,
			PageSize:      filter.Size,
			TotalElements: len(books),
		},
		Items: books,
	}, nil
}

func (r *repository) UpdateBook(ctx context.Context, bookUid, ownerUid string, req model.UpdateBookRequest) (model.Book, error) {
	upd := qb.Update(booksTableName).
		Where(sq.Eq{"book_uid": bookUid}).
		Where(sq.Expr("owner_id = (select id from users where user_uid = ?)", ownerUid))
	if req.Title != nil {
		upd = upd.Set("title", *req.Title)
	}
	if req.Author != nil {
		upd = upd.Set("author", *req.Author)
	}
	if req.Genre != nil {
		upd = upd.Set("genre", *req.Genre)
	}
	if req.Condition != nil {
		upd = upd.Set("condition", *req.Condition)
	}
	if req.Description != nil {
		upd = upd.Set("description", *req.Description)
	}
	if req.CoverURL != nil {
		upd = upd.Set("cover_url", *req.CoverURL)
	}

	q, args, err := upd.Suffix("returning book_uid").ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var uid string
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&uid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return r.GetBook(ctx, uid)
}

func (r *repository) DeleteBook(ctx context.Context, bookUid, ownerUid string) error {
	q, args, err := qb.Delete(booksTableName).
		Where(sq.Eq{"book_uid": bookUid}).
		Where(sq.Expr("owner_id = (select id from users where user_uid = ?)", ownerUid)).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
