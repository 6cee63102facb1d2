package service

import (
	"context"

	"github.com/bookshare/bookshare-service/internal/errs"
	"github.com/bookshare/bookshare-service/internal/model"
)

// SendMessage posts a chat message on a borrow request and notifies the
// other party. Only the two parties may chat.
func (s *Service) SendMessage(ctx context.Context, requestUid, senderUid, body string) (model.Message, error) {
	br, err := s.repo.GetRequest(ctx, requestUid)
	if err != nil {
		return model.Message{}, err
	}
	if br.BorrowerUid != senderUid && br.OwnerUid != senderUid {
		return model.Message{}, errs.ErrForbidden
	}

	msg, err := s.repo.InsertMessage(ctx, requestUid, senderUid, body)
	if err != nil {
		return model.Message{}, err
	}

	recipient := br.BorrowerUid
	if senderUid == br.BorrowerUid {
		recipient = br.OwnerUid
	}
	s.notify(recipient, model.KindNewMessage, map[string]any{
		"requestUid": requestUid,
		"senderUid":  senderUid,
	})
	return msg, nil
}

func (s *Service) ListMessages(ctx context.Context, requestUid, actorUid string) ([]model.Message, error) {
	br, err := s.repo.GetRequest(ctx, requestUid)
	if err != nil {
		return nil, err
	}
	if br.BorrowerUid != actorUid && br.OwnerUid != actorUid {
		return nil, errs.ErrForbidden
	}
	return s.repo.ListMessages(ctx, requestUid)
}
