package service

import (
	"context"

	"github.com/bookshare/bookshare-service/internal/errs"
	"github.com/bookshare/bookshare-service/internal/model"
)

func (s *Service) CreateReview(ctx context.Context, req model.CreateReviewRequest) (model.Review, error) {
	book, err := s.repo.GetBook(ctx, req.BookUid)
	if err != nil {
		return model.Review{}, err
	}
	if book.OwnerUid == req.ReviewerUid {
		return model.Review{}, errs.ErrOwnBook
	}
	return s.repo.CreateReview(ctx, req)
}

func (s *Service) ListReviews(ctx context.Context, bookUid string) ([]model.Review, error) {
	if _, err := s.repo.GetBook(ctx, bookUid); err != nil {
		return nil, err
	}
	return s.repo.ListReviews(ctx, bookUid)
}

func (s *Service) GetOwnerRating(ctx context.Context, userUid string) (model.Rating, error) {
	if _, err := s.repo.GetUserByUid(ctx, userUid); err != nil {
		return model.Rating{}, err
	}
	return s.repo.GetOwnerRating(ctx, userUid)
}
