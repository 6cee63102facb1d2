package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/bookshare/bookshare-service/internal/errs"
	mw "github.com/bookshare/bookshare-service/pkg/middleware"
	"github.com/bookshare/bookshare-service/pkg/validate"
	_ "github.com/bookshare/bookshare-service/swagger"
)

// Services bundles the per-concern interfaces the handlers depend on.
// *service.Service satisfies all of them.
type Services struct {
	Auth          AuthService
	Books         BookService
	Borrows       BorrowService
	Reviews       ReviewService
	Notifications NotificationService
	Messages      MessageService
	Communities   CommunityService
	Metadata      MetadataService
}

type Handler struct {
	svc       Services
	jwtSecret string
	log       *zap.Logger
}

func New(svc Services, jwtSecret string, log *zap.Logger) *Handler {
	return &Handler{
		svc:       svc,
		jwtSecret: jwtSecret,
		log:       log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig()),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
	)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	api = api.Group("", mw.JwtAuthentication(h.jwtSecret))

	api.GET("/me", h.GetProfile)
	api.PATCH("/me", h.UpdateProfile)

	api.POST("/books", h.CreateBook)
	api.GET("/books", h.ListBooks)
	api.GET("/books/:bookUid", h.GetBook)
	api.PATCH("/books/:bookUid", h.UpdateBook)
	api.DELETE("/books/:bookUid", h.DeleteBook)

	api.GET("/books/:bookUid/reviews", h.ListReviews)
	api.POST("/books/:bookUid/reviews", h.CreateReview)
	api.GET("/users/:userUid/rating", h.GetOwnerRating)

	api.POST("/requests", h.CreateRequest)
	api.GET("/requests", h.ListRequests)
	api.GET("/requests/:requestUid", h.GetRequest)
	api.POST("/requests/:requestUid/approve", h.ApproveRequest)
	api.POST("/requests/:requestUid/deny", h.DenyRequest)
	api.POST("/requests/:requestUid/handover", h.ConfirmHandover)
	api.POST("/requests/:requestUid/return", h.InitiateReturn)
	api.POST("/requests/:requestUid/confirm-return", h.ConfirmReturn)

	api.GET("/requests/:requestUid/messages", h.ListMessages)
	api.POST("/requests/:requestUid/messages", h.SendMessage)

	api.GET("/notifications", h.ListNotifications)
	api.GET("/notifications/unread-count", h.CountUnread)
	api.POST("/notifications/:id/read", h.MarkNotificationRead)

	api.POST("/communities", h.CreateCommunity)
	api.GET("/communities", h.ListCommunities)
	api.GET("/communities/:communityUid", h.GetCommunity)
	api.GET("/communities/:communityUid/members", h.ListMembers)
	api.DELETE("/communities/:communityUid/members/me", h.LeaveCommunity)
	api.POST("/communities/:communityUid/invitations", h.Invite)
	api.POST("/invitations/:token/accept", h.AcceptInvitation)
	api.POST("/invitations/:token/decline", h.DeclineInvitation)

	api.GET("/metadata/search", h.SearchMetadata)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// toHTTPError maps service sentinels onto status codes.
func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrNotBorrowable),
		errors.Is(err, errs.ErrInviteResolved):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrForbidden), errors.Is(err, errs.ErrNotMember):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrOwnBook):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrInvalidCreds):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
