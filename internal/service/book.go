package service

import (
	"context"

	"github.com/bookshare/bookshare-service/internal/errs"
	"github.com/bookshare/bookshare-service/internal/model"
)

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	book, err := s.repo.CreateBook(ctx, req)
	if err != nil {
		return model.Book{}, err
	}
	s.cache.InvalidateBooks(ctx)
	return book, nil
}

func (s *Service) ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error) {
	if list, ok := s.cache.GetBooks(ctx, filter); ok {
		return list, nil
	}
	list, err := s.repo.ListBooks(ctx, filter)
	if err != nil {
		return model.ListBooks{}, err
	}
	s.cache.SetBooks(ctx, filter, list)
	return list, nil
}

func (s *Service) GetBook(ctx context.Context, bookUid string) (model.Book, error) {
	return s.repo.GetBook(ctx, bookUid)
}

func (s *Service) UpdateBook(ctx context.Context, bookUid, ownerUid string, req model.UpdateBookRequest) (model.Book, error) {
	if req.Title == nil && req.Author == nil && req.Genre == nil &&
		req.Condition == nil && req.Description == nil && req.CoverURL == nil {
		book, err := s.repo.GetBook(ctx, bookUid)
		if err != nil {
			return model.Book{}, err
		}
		if book.OwnerUid != ownerUid {
			return model.Book{}, errs.ErrNotFound
		}
		return book, nil
	}
	book, err := s.repo.UpdateBook(ctx, bookUid, ownerUid, req)
	if err != nil {
		return model.Book{}, err
	}
	s.cache.InvalidateBooks(ctx)
	return book, nil
}

func (s *Service) DeleteBook(ctx context.Context, bookUid, ownerUid string) error {
	if err := s.repo.DeleteBook(ctx, bookUid, ownerUid); err != nil {
		return err
	}
	s.cache.InvalidateBooks(ctx)
	return nil
}
