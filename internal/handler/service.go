package handler

import (
	"context"

	"github.com/bookshare/bookshare-service/internal/model"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=service_mocks

type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.User, error)
	Login(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error)
	GetProfile(ctx context.Context, userUid string) (model.User, error)
	UpdateProfile(ctx context.Context, userUid string, req model.UpdateProfileRequest) (model.User, error)
}

type BookService interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error)
	GetBook(ctx context.Context, bookUid string) (model.Book, error)
	UpdateBook(ctx context.Context, bookUid, ownerUid string, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, bookUid, ownerUid string) error
}

type BorrowService interface {
	CreateRequest(ctx context.Context, req model.CreateBorrowRequest) (model.BorrowRequest, error)
	ListRequests(ctx context.Context, userUid, role string, status model.Status) ([]model.BorrowRequest, error)
	GetRequestDetails(ctx context.Context, requestUid, actorUid string) (model.RequestDetails, error)
	ApproveRequest(ctx context.Context, requestUid, actorUid string, req model.ApproveRequest) (model.BorrowRequest, error)
	DenyRequest(ctx context.Context, requestUid, actorUid string) (model.BorrowRequest, error)
	ConfirmHandover(ctx context.Context, requestUid, actorUid string) (model.BorrowRequest, error)
	InitiateReturn(ctx context.Context, requestUid, actorUid string, req model.InitiateReturnRequest) (model.BorrowRequest, error)
	ConfirmReturn(ctx context.Context, requestUid, actorUid string) (model.BorrowRequest, error)
}

type ReviewService interface {
	CreateReview(ctx context.Context, req model.CreateReviewRequest) (model.Review, error)
	ListReviews(ctx context.Context, bookUid string) ([]model.Review, error)
	GetOwnerRating(ctx context.Context, userUid string) (model.Rating, error)
}

type NotificationService interface {
	ListNotifications(ctx context.Context, userUid string, unreadOnly bool) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, userUid string, id int) error
	CountUnread(ctx context.Context, userUid string) (int64, error)
}

type MessageService interface {
	SendMessage(ctx context.Context, requestUid, senderUid, body string) (model.Message, error)
	ListMessages(ctx context.Context, requestUid, actorUid string) ([]model.Message, error)
}

type CommunityService interface {
	CreateCommunity(ctx context.Context, req model.CreateCommunityRequest) (model.Community, error)
	ListCommunities(ctx context.Context, userUid string) ([]model.Community, error)
	GetCommunity(ctx context.Context, communityUid string) (model.Community, error)
	ListMembers(ctx context.Context, communityUid string) ([]model.CommunityMember, error)
	LeaveCommunity(ctx context.Context, communityUid, userUid string) error
	Invite(ctx context.Context, communityUid, inviterUid, inviteeEmail string) (model.CommunityInvitation, error)
	AcceptInvitation(ctx context.Context, token, userUid string) (model.Community, error)
	DeclineInvitation(ctx context.Context, token string) error
}

type MetadataService interface {
	SearchMetadata(ctx context.Context, query string, limit int) ([]model.MetadataBook, error)
}
