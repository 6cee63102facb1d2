package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookshare/bookshare-service/internal/errs"
	"github.com/bookshare/bookshare-service/internal/model"
)

type Repository interface {
	CreateUser(ctx context.Context, req model.RegisterRequest, passwordHash string) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	GetUserByUid(ctx context.Context, userUid string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	UpdateProfile(ctx context.Context, userUid string, req model.UpdateProfileRequest) (model.User, error)

	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error)
	GetBook(ctx context.Context, bookUid string) (model.Book, error)
	UpdateBook(ctx context.Context, bookUid, ownerUid string, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, bookUid, ownerUid string) error

	CreateRequest(ctx context.Context, req model.CreateBorrowRequest) (model.BorrowRequest, error)
	GetRequest(ctx context.Context, requestUid string) (model.BorrowRequest, error)
	ListRequests(ctx context.Context, userUid, role string, status model.Status) ([]model.BorrowRequest, error)
	ApproveRequest(ctx context.Context, requestUid string, dueDate time.Time, method model.Method) (model.BorrowRequest, error)
	DenyRequest(ctx context.Context, requestUid string) (model.BorrowRequest, error)
	ConfirmHandover(ctx context.Context, requestUid string) (model.BorrowRequest, error)
	InitiateReturn(ctx context.Context, requestUid string, method model.Method) (model.BorrowRequest, error)
	ConfirmReturn(ctx context.Context, requestUid string) (model.BorrowRequest, error)

	CreateReview(ctx context.Context, req model.CreateReviewRequest) (model.Review, error)
	ListReviews(ctx context.Context, bookUid string) ([]model.Review, error)
	GetOwnerRating(ctx context.Context, userUid string) (model.Rating, error)

	InsertNotification(ctx context.Context, event model.NotificationEvent) error
	ListNotifications(ctx context.Context, userUid string, unreadOnly bool) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, userUid string, id int) error
	CountUnread(ctx context.Context, userUid string) (int64, error)

	InsertMessage(ctx context.Context, requestUid, senderUid, body string) (model.Message, error)
	ListMessages(ctx context.Context, requestUid string) ([]model.Message, error)

	CreateCommunity(ctx context.Context, req model.CreateCommunityRequest) (model.Community, error)
	ListCommunities(ctx context.Context, userUid string) ([]model.Community, error)
	GetCommunity(ctx context.Context, communityUid string) (model.Community, error)
	ListMembers(ctx context.Context, communityUid string) ([]model.CommunityMember, error)
	IsMember(ctx context.Context, communityUid, userUid string) (bool, error)
	LeaveCommunity(ctx context.Context, communityUid, userUid string) error
	CreateInvitation(ctx context.Context, communityUid, inviterUid, inviteeEmail string) (model.CommunityInvitation, error)
	GetInvitation(ctx context.Context, token string) (model.CommunityInvitation, error)
	AcceptInvitation(ctx context.Context, token, userUid string) error
	DeclineInvitation(ctx context.Context, token string) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName         = `users`
	booksTableName         = `books`
	requestsTableName      = `borrow_requests`
	reviewsTableName       = `reviews`
	notificationsTableName = `notifications`
	messagesTableName      = `messages`
	communitiesTableName   = `communities`
	membersTableName       = `community_members`
	invitationsTableName   = `community_invitations`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// wrapPgErr maps unique-constraint violations onto the conflict sentinel so
// handlers can answer 409 instead of 500.
func wrapPgErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return errs.ErrConflict
	}
	return err
}

// inTx runs fn inside a transaction with rollback on error.
func (r *repository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Warn("tx rollback", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit()
}
