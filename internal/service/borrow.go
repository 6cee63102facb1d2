package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bookshare/bookshare-service/internal/errs"
	"github.com/bookshare/bookshare-service/internal/model"
)

func (s *Service) CreateRequest(ctx context.Context, req model.CreateBorrowRequest) (model.BorrowRequest, error) {
	book, err := s.repo.GetBook(ctx, req.BookUid)
	if err != nil {
		return model.BorrowRequest{}, err
	}
	if book.OwnerUid == req.BorrowerUid {
		return model.BorrowRequest{}, errs.ErrOwnBook
	}
	if !book.Borrowable {
		return model.BorrowRequest{}, errs.ErrNotBorrowable
	}

	br, err := s.repo.CreateRequest(ctx, req)
	if err != nil {
		return model.BorrowRequest{}, err
	}

	s.notify(book.OwnerUid, model.KindRequestCreated, map[string]any{
		"requestUid":  br.RequestUid,
		"bookUid":     book.BookUid,
		"bookTitle":   book.Title,
		"borrowerUid": req.BorrowerUid,
	})
	return br, nil
}

func (s *Service) ListRequests(ctx context.Context, userUid, role string, status model.Status) ([]model.BorrowRequest, error) {
	return s.repo.ListRequests(ctx, userUid, role, status)
}

// GetRequestDetails aggregates the request with its book and both parties.
// Only the two parties may see a request.
func (s *Service) GetRequestDetails(ctx context.Context, requestUid, actorUid string) (model.RequestDetails, error) {
	br, err := s.repo.GetRequest(ctx, requestUid)
	if err != nil {
		return model.RequestDetails{}, err
	}
	if br.BorrowerUid != actorUid && br.OwnerUid != actorUid {
		return model.RequestDetails{}, errs.ErrForbidden
	}

	details := model.RequestDetails{BorrowRequest: br}
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		book, err := s.repo.GetBook(ctx, br.BookUid)
		if err != nil {
			return err
		}
		details.Book = book
		return nil
	})
	gg.Go(func() error {
		borrower, err := s.repo.GetUserByUid(ctx, br.BorrowerUid)
		if err != nil {
			return err
		}
		details.Borrower = borrower
		return nil
	})
	gg.Go(func() error {
		owner, err := s.repo.GetUserByUid(ctx, br.OwnerUid)
		if err != nil {
			return err
		}
		details.Owner = owner
		return nil
	})
	if err := gg.Wait(); err != nil {
		return model.RequestDetails{}, err
	}
	return details, nil
}

// loadForTransition fetches the request and checks the actor is the party
// allowed to drive this transition.
func (s *Service) loadForTransition(ctx context.Context, requestUid, actorUid string, ownerAction bool) (model.BorrowRequest, error) {
	br, err := s.repo.GetRequest(ctx, requestUid)
	if err != nil {
		return model.BorrowRequest{}, err
	}
	actor := br.BorrowerUid
	if ownerAction {
		actor = br.OwnerUid
	}
	if actor != actorUid {
		return model.BorrowRequest{}, errs.ErrForbidden
	}
	return br, nil
}

func (s *Service) ApproveRequest(ctx context.Context, requestUid, actorUid string, req model.ApproveRequest) (model.BorrowRequest, error) {
	br, err := s.loadForTransition(ctx, requestUid, actorUid, true)
	if err != nil {
		return model.BorrowRequest{}, err
	}

	approved, err := s.repo.ApproveRequest(ctx, requestUid, req.DueDate.Time, req.HandoverMethod)
	if err != nil {
		return model.BorrowRequest{}, err
	}
	// the book just became unavailable
	s.cache.InvalidateBooks(ctx)

	s.notify(br.BorrowerUid, model.KindRequestApproved, map[string]any{
		"requestUid":     requestUid,
		"bookUid":        br.BookUid,
		"dueDate":        req.DueDate.Format(time.DateOnly),
		"handoverMethod": req.HandoverMethod,
	})
	return approved, nil
}

func (s *Service) DenyRequest(ctx context.Context, requestUid, actorUid string) (model.BorrowRequest, error) {
	br, err := s.loadForTransition(ctx, requestUid, actorUid, true)
	if err != nil {
		return model.BorrowRequest{}, err
	}

	denied, err := s.repo.DenyRequest(ctx, requestUid)
	if err != nil {
		return model.BorrowRequest{}, err
	}

	s.notify(br.BorrowerUid, model.KindRequestDenied, map[string]any{
		"requestUid": requestUid,
		"bookUid":    br.BookUid,
	})
	return denied, nil
}

func (s *Service) ConfirmHandover(ctx context.Context, requestUid, actorUid string) (model.BorrowRequest, error) {
	br, err := s.loadForTransition(ctx, requestUid, actorUid, true)
	if err != nil {
		return model.BorrowRequest{}, err
	}

	borrowed, err := s.repo.ConfirmHandover(ctx, requestUid)
	if err != nil {
		return model.BorrowRequest{}, err
	}

	s.notify(br.BorrowerUid, model.KindHandover, map[string]any{
		"requestUid": requestUid,
		"bookUid":    br.BookUid,
	})
	return borrowed, nil
}

func (s *Service) InitiateReturn(ctx context.Context, requestUid, actorUid string, req model.InitiateReturnRequest) (model.BorrowRequest, error) {
	br, err := s.loadForTransition(ctx, requestUid, actorUid, false)
	if err != nil {
		return model.BorrowRequest{}, err
	}

	initiated, err := s.repo.InitiateReturn(ctx, requestUid, req.ReturnMethod)
	if err != nil {
		return model.BorrowRequest{}, err
	}

	s.notify(br.OwnerUid, model.KindReturnInitiated, map[string]any{
		"requestUid":   requestUid,
		"bookUid":      br.BookUid,
		"returnMethod": req.ReturnMethod,
	})
	return initiated, nil
}

func (s *Service) ConfirmReturn(ctx context.Context, requestUid, actorUid string) (model.BorrowRequest, error) {
	br, err := s.loadForTransition(ctx, requestUid, actorUid, true)
	if err != nil {
		return model.BorrowRequest{}, err
	}

	returned, err := s.repo.ConfirmReturn(ctx, requestUid)
	if err != nil {
		return model.BorrowRequest{}, err
	}
	// the book is borrowable again
	s.cache.InvalidateBooks(ctx)

	s.notify(br.BorrowerUid, model.KindReturned, map[string]any{
		"requestUid": requestUid,
		"bookUid":    br.BookUid,
	})
	return returned, nil
}
