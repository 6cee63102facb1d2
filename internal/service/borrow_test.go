package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookshare/bookshare-service/internal/errs"
	"github.com/bookshare/bookshare-service/internal/model"
	"github.com/bookshare/bookshare-service/internal/repository"
	"github.com/bookshare/bookshare-service/internal/service"
	"github.com/bookshare/bookshare-service/pkg/auth"
)

const (
	ownerUid    = "3917d2d0-7a4a-4f61-a6a5-84e106b79f78"
	borrowerUid = "e9f1a9a1-7a65-4a3e-93f5-9b4a4dbb7e41"
	bookUid     = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"
	requestUid  = "2d0e39b6-21ae-4eec-b3c4-9158dbd0ba04"
)

// repoStub overrides only the methods a test exercises; anything else
// panics through the embedded nil interface.
type repoStub struct {
	repository.Repository
	getBook        func(ctx context.Context, bookUid string) (model.Book, error)
	getRequest     func(ctx context.Context, requestUid string) (model.BorrowRequest, error)
	createRequest  func(ctx context.Context, req model.CreateBorrowRequest) (model.BorrowRequest, error)
	approveRequest func(ctx context.Context, requestUid string, dueDate time.Time, method model.Method) (model.BorrowRequest, error)
	denyRequest    func(ctx context.Context, requestUid string) (model.BorrowRequest, error)
	initiateReturn func(ctx context.Context, requestUid string, method model.Method) (model.BorrowRequest, error)
	confirmReturn  func(ctx context.Context, requestUid string) (model.BorrowRequest, error)
}

func (r *repoStub) GetBook(ctx context.Context, uid string) (model.Book, error) {
	return r.getBook(ctx, uid)
}

func (r *repoStub) GetRequest(ctx context.Context, uid string) (model.BorrowRequest, error) {
	return r.getRequest(ctx, uid)
}

func (r *repoStub) CreateRequest(ctx context.Context, req model.CreateBorrowRequest) (model.BorrowRequest, error) {
	return r.createRequest(ctx, req)
}

func (r *repoStub) ApproveRequest(ctx context.Context, uid string, dueDate time.Time, method model.Method) (model.BorrowRequest, error) {
	return r.approveRequest(ctx, uid, dueDate, method)
}

func (r *repoStub) DenyRequest(ctx context.Context, uid string) (model.BorrowRequest, error) {
	return r.denyRequest(ctx, uid)
}

func (r *repoStub) InitiateReturn(ctx context.Context, uid string, method model.Method) (model.BorrowRequest, error) {
	return r.initiateReturn(ctx, uid, method)
}

func (r *repoStub) ConfirmReturn(ctx context.Context, uid string) (model.BorrowRequest, error) {
	return r.confirmReturn(ctx, uid)
}

type enqueuerStub struct {
	events []model.NotificationEvent
}

func (e *enqueuerStub) Enqueue(topic string, v any) error {
	e.events = append(e.events, v.(model.NotificationEvent))
	return nil
}

// cacheStub counts listing invalidations; reads always miss.
type cacheStub struct {
	invalidations int
}

func (c *cacheStub) GetBooks(context.Context, model.BookFilter) (model.ListBooks, bool) {
	return model.ListBooks{}, false
}
func (c *cacheStub) SetBooks(context.Context, model.BookFilter, model.ListBooks) {}
func (c *cacheStub) InvalidateBooks(context.Context) { c.invalidations++ }
func (c *cacheStub) GetUnread(context.Context, string) (int64, bool) { return 0, false }
func (c *cacheStub) SetUnread(context.Context, string, int64) {}
func (c *cacheStub) DropUnread(context.Context, string) {}

var _ service.Cache = (*cacheStub)(nil)

func newTestService(repo repository.Repository, q service.Enqueuer) *service.Service {
	log := zap.NewExample().Named("test")
	cache := repository.NewCache(nil, log)
	return service.NewService(repo, cache, q, nil, auth.Config{Secret: "secret"}, log)
}

func newTestServiceWithCache(repo repository.Repository, q service.Enqueuer, cache service.Cache) *service.Service {
	log := zap.NewExample().Named("test")
	return service.NewService(repo, cache, q, nil, auth.Config{Secret: "secret"}, log)
}

func TestService_CreateRequest(t *testing.T) {
	t.Parallel()

	t.Run("ok notifies owner", func(t *testing.T) {
		t.Parallel()
		repo := &repoStub{
			getBook: func(_ context.Context, uid string) (model.Book, error) {
				require.Equal(t, bookUid, uid)
				return model.Book{BookUid: bookUid, OwnerUid: ownerUid, Title: "Dune", Borrowable: true}, nil
			},
			createRequest: func(_ context.Context, req model.CreateBorrowRequest) (model.BorrowRequest, error) {
				return model.BorrowRequest{
					RequestUid:  requestUid,
					BookUid:     req.BookUid,
					BorrowerUid: req.BorrowerUid,
					OwnerUid:    ownerUid,
					Status:      model.StatusPending,
				}, nil
			},
		}
		q := &enqueuerStub{}
		svc := newTestService(repo, q)

		br, err := svc.CreateRequest(context.Background(), model.CreateBorrowRequest{
			BookUid:     bookUid,
			BorrowerUid: borrowerUid,
		})
		require.NoError(t, err)
		require.Equal(t, model.StatusPending, br.Status)

		require.Len(t, q.events, 1)
		require.Equal(t, ownerUid, q.events[0].UserUid)
		require.Equal(t, model.KindRequestCreated, q.events[0].Kind)
	})

	t.Run("own book", func(t *testing.T) {
		t.Parallel()
		repo := &repoStub{
			getBook: func(context.Context, string) (model.Book, error) {
				return model.Book{BookUid: bookUid, OwnerUid: borrowerUid, Borrowable: true}, nil
			},
		}
		q := &enqueuerStub{}
		svc := newTestService(repo, q)

		_, err := svc.CreateRequest(context.Background(), model.CreateBorrowRequest{
			BookUid:     bookUid,
			BorrowerUid: borrowerUid,
		})
		require.ErrorIs(t, err, errs.ErrOwnBook)
		require.Empty(t, q.events)
	})

	t.Run("not borrowable", func(t *testing.T) {
		t.Parallel()
		repo := &repoStub{
			getBook: func(context.Context, string) (model.Book, error) {
				return model.Book{BookUid: bookUid, OwnerUid: ownerUid, Borrowable: false}, nil
			},
		}
		q := &enqueuerStub{}
		svc := newTestService(repo, q)

		_, err := svc.CreateRequest(context.Background(), model.CreateBorrowRequest{
			BookUid:     bookUid,
			BorrowerUid: borrowerUid,
		})
		require.ErrorIs(t, err, errs.ErrNotBorrowable)
		require.Empty(t, q.events)
	})
}

func TestService_ApproveRequest(t *testing.T) {
	t.Parallel()

	pending := model.BorrowRequest{
		RequestUid:  requestUid,
		BookUid:     bookUid,
		BorrowerUid: borrowerUid,
		OwnerUid:    ownerUid,
		Status:      model.StatusPending,
	}
	due := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)

	t.Run("owner approves, borrower notified", func(t *testing.T) {
		t.Parallel()
		repo := &repoStub{
			getRequest: func(context.Context, string) (model.BorrowRequest, error) {
				return pending, nil
			},
			approveRequest: func(_ context.Context, uid string, dueDate time.Time, method model.Method) (model.BorrowRequest, error) {
				require.Equal(t, requestUid, uid)
				require.Equal(t, due, dueDate)
				require.Equal(t, model.MethodMeetup, method)
				approved := pending
				approved.Status = model.StatusApproved
				return approved, nil
			},
		}
		q := &enqueuerStub{}
		svc := newTestService(repo, q)

		approved, err := svc.ApproveRequest(context.Background(), requestUid, ownerUid, model.ApproveRequest{
			DueDate:        model.Date{Time: due},
			HandoverMethod: model.MethodMeetup,
		})
		require.NoError(t, err)
		require.Equal(t, model.StatusApproved, approved.Status)

		require.Len(t, q.events, 1)
		require.Equal(t, borrowerUid, q.events[0].UserUid)
		require.Equal(t, model.KindRequestApproved, q.events[0].Kind)
	})

	t.Run("borrower cannot approve", func(t *testing.T) {
		t.Parallel()
		repo := &repoStub{
			getRequest: func(context.Context, string) (model.BorrowRequest, error) {
				return pending, nil
			},
		}
		q := &enqueuerStub{}
		svc := newTestService(repo, q)

		_, err := svc.ApproveRequest(context.Background(), requestUid, borrowerUid, model.ApproveRequest{
			DueDate:        model.Date{Time: due},
			HandoverMethod: model.MethodMeetup,
		})
		require.ErrorIs(t, err, errs.ErrForbidden)
		require.Empty(t, q.events)
	})

	t.Run("lost race surfaces conflict", func(t *testing.T) {
		t.Parallel()
		repo := &repoStub{
			getRequest: func(context.Context, string) (model.BorrowRequest, error) {
				return pending, nil
			},
			approveRequest: func(context.Context, string, time.Time, model.Method) (model.BorrowRequest, error) {
				return model.BorrowRequest{}, errs.ErrInvalidTransition
			},
		}
		q := &enqueuerStub{}
		svc := newTestService(repo, q)

		_, err := svc.ApproveRequest(context.Background(), requestUid, ownerUid, model.ApproveRequest{
			DueDate:        model.Date{Time: due},
			HandoverMethod: model.MethodMeetup,
		})
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		require.Empty(t, q.events)
	})
}

func TestService_ReturnFlow(t *testing.T) {
	t.Parallel()

	borrowed := model.BorrowRequest{
		RequestUid:  requestUid,
		BookUid:     bookUid,
		BorrowerUid: borrowerUid,
		OwnerUid:    ownerUid,
		Status:      model.StatusBorrowed,
	}

	t.Run("borrower initiates, owner notified", func(t *testing.T) {
		t.Parallel()
		repo := &repoStub{
			getRequest: func(context.Context, string) (model.BorrowRequest, error) {
				return borrowed, nil
			},
			initiateReturn: func(_ context.Context, uid string, method model.Method) (model.BorrowRequest, error) {
				require.Equal(t, model.MethodShip, method)
				initiated := borrowed
				initiated.Status = model.StatusReturnInitiated
				return initiated, nil
			},
		}
		q := &enqueuerStub{}
		svc := newTestService(repo, q)

		initiated, err := svc.InitiateReturn(context.Background(), requestUid, borrowerUid, model.InitiateReturnRequest{
			ReturnMethod: model.MethodShip,
		})
		require.NoError(t, err)
		require.Equal(t, model.StatusReturnInitiated, initiated.Status)

		require.Len(t, q.events, 1)
		require.Equal(t, ownerUid, q.events[0].UserUid)
		require.Equal(t, model.KindReturnInitiated, q.events[0].Kind)
	})

	t.Run("owner cannot initiate return", func(t *testing.T) {
		t.Parallel()
		repo := &repoStub{
			getRequest: func(context.Context, string) (model.BorrowRequest, error) {
				return borrowed, nil
			},
		}
		q := &enqueuerStub{}
		svc := newTestService(repo, q)

		_, err := svc.InitiateReturn(context.Background(), requestUid, ownerUid, model.InitiateReturnRequest{
			ReturnMethod: model.MethodShip,
		})
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("owner confirms return, borrower notified", func(t *testing.T) {
		t.Parallel()
		initiated := borrowed
		initiated.Status = model.StatusReturnInitiated
		repo := &repoStub{
			getRequest: func(context.Context, string) (model.BorrowRequest, error) {
				return initiated, nil
			},
			confirmReturn: func(context.Context, string) (model.BorrowRequest, error) {
				returned := initiated
				returned.Status = model.StatusReturned
				return returned, nil
			},
		}
		q := &enqueuerStub{}
		svc := newTestService(repo, q)

		returned, err := svc.ConfirmReturn(context.Background(), requestUid, ownerUid)
		require.NoError(t, err)
		require.Equal(t, model.StatusReturned, returned.Status)

		require.Len(t, q.events, 1)
		require.Equal(t, borrowerUid, q.events[0].UserUid)
		require.Equal(t, model.KindReturned, q.events[0].Kind)
	})
}

// Transitions that flip book availability must drop cached listings, or a
// just-approved book keeps showing up as available until the TTL expires.
func TestService_AvailabilityFlipsInvalidateBookCache(t *testing.T) {
	t.Parallel()

	pending := model.BorrowRequest{
		RequestUid:  requestUid,
		BookUid:     bookUid,
		BorrowerUid: borrowerUid,
		OwnerUid:    ownerUid,
		Status:      model.StatusPending,
	}
	due := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)

	t.Run("approve invalidates", func(t *testing.T) {
		t.Parallel()
		repo := &repoStub{
			getRequest: func(context.Context, string) (model.BorrowRequest, error) {
				return pending, nil
			},
			approveRequest: func(context.Context, string, time.Time, model.Method) (model.BorrowRequest, error) {
				approved := pending
				approved.Status = model.StatusApproved
				return approved, nil
			},
		}
		cache := &cacheStub{}
		svc := newTestServiceWithCache(repo, &enqueuerStub{}, cache)

		_, err := svc.ApproveRequest(context.Background(), requestUid, ownerUid, model.ApproveRequest{
			DueDate:        model.Date{Time: due},
			HandoverMethod: model.MethodMeetup,
		})
		require.NoError(t, err)
		require.Equal(t, 1, cache.invalidations)
	})

	t.Run("confirm return invalidates", func(t *testing.T) {
		t.Parallel()
		initiated := pending
		initiated.Status = model.StatusReturnInitiated
		repo := &repoStub{
			getRequest: func(context.Context, string) (model.BorrowRequest, error) {
				return initiated, nil
			},
			confirmReturn: func(context.Context, string) (model.BorrowRequest, error) {
				returned := initiated
				returned.Status = model.StatusReturned
				return returned, nil
			},
		}
		cache := &cacheStub{}
		svc := newTestServiceWithCache(repo, &enqueuerStub{}, cache)

		_, err := svc.ConfirmReturn(context.Background(), requestUid, ownerUid)
		require.NoError(t, err)
		require.Equal(t, 1, cache.invalidations)
	})

	t.Run("deny leaves cache alone", func(t *testing.T) {
		t.Parallel()
		repo := &repoStub{
			getRequest: func(context.Context, string) (model.BorrowRequest, error) {
				return pending, nil
			},
			denyRequest: func(context.Context, string) (model.BorrowRequest, error) {
				denied := pending
				denied.Status = model.StatusDenied
				return denied, nil
			},
		}
		cache := &cacheStub{}
		svc := newTestServiceWithCache(repo, &enqueuerStub{}, cache)

		_, err := svc.DenyRequest(context.Background(), requestUid, ownerUid)
		require.NoError(t, err)
		require.Equal(t, 0, cache.invalidations)
	})

	t.Run("failed approve does not invalidate", func(t *testing.T) {
		t.Parallel()
		repo := &repoStub{
			getRequest: func(context.Context, string) (model.BorrowRequest, error) {
				return pending, nil
			},
			approveRequest: func(context.Context, string, time.Time, model.Method) (model.BorrowRequest, error) {
				return model.BorrowRequest{}, errs.ErrInvalidTransition
			},
		}
		cache := &cacheStub{}
		svc := newTestServiceWithCache(repo, &enqueuerStub{}, cache)

		_, err := svc.ApproveRequest(context.Background(), requestUid, ownerUid, model.ApproveRequest{
			DueDate:        model.Date{Time: due},
			HandoverMethod: model.MethodMeetup,
		})
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		require.Equal(t, 0, cache.invalidations)
	})
}
