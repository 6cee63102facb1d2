package service

import (
	"context"

	"github.com/bookshare/bookshare-service/internal/model"
)

func (s *Service) ListNotifications(ctx context.Context, userUid string, unreadOnly bool) ([]model.Notification, error) {
	return s.repo.ListNotifications(ctx, userUid, unreadOnly)
}

func (s *Service) MarkNotificationRead(ctx context.Context, userUid string, id int) error {
	if err := s.repo.MarkNotificationRead(ctx, userUid, id); err != nil {
		return err
	}
	s.cache.DropUnread(ctx, userUid)
	return nil
}

func (s *Service) CountUnread(ctx context.Context, userUid string) (int64, error) {
	if n, ok := s.cache.GetUnread(ctx, userUid); ok {
		return n, nil
	}
	n, err := s.repo.CountUnread(ctx, userUid)
	if err != nil {
		return 0, err
	}
	s.cache.SetUnread(ctx, userUid, n)
	return n, nil
}
