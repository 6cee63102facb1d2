package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookshare/bookshare-service/internal/errs"
	"github.com/bookshare/bookshare-service/internal/handler"
	service_mocks "github.com/bookshare/bookshare-service/internal/handler/mocks"
	"github.com/bookshare/bookshare-service/internal/model"
	"github.com/bookshare/bookshare-service/pkg/auth"
	"github.com/bookshare/bookshare-service/pkg/validate"
)

const testUserUid = "e9f1a9a1-7a65-4a3e-93f5-9b4a4dbb7e41"

// withUser injects the auth context the jwt middleware would normally set.
func withUser(uid string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := auth.SetAuthContext(c.Request().Context(), uid, "tester")
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func TestHandler_CreateRequest(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBorrowService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"bookUid":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","message":"please"}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					CreateRequest(gomock.Any(), model.CreateBorrowRequest{
						BookUid:     "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
						Message:     "please",
						BorrowerUid: testUserUid,
					}).
					Return(model.BorrowRequest{
						RequestUid:  "2d0e39b6-21ae-4eec-b3c4-9158dbd0ba04",
						BookUid:     "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
						BorrowerUid: testUserUid,
						OwnerUid:    "3917d2d0-7a4a-4f61-a6a5-84e106b79f78",
						Status:      model.StatusPending,
						Message:     "please",
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"requestUid":"2d0e39b6-21ae-4eec-b3c4-9158dbd0ba04","bookUid":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","borrowerUid":"e9f1a9a1-7a65-4a3e-93f5-9b4a4dbb7e41","ownerUid":"3917d2d0-7a4a-4f61-a6a5-84e106b79f78","status":"PENDING","message":"please","createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name:         "err. bookUid required",
			body:         `{"message":"please"}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name: "err. own book",
			body: `{"bookUid":"f7cdc58f-2caf-4b15-9727-f89dcc629b27"}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					CreateRequest(gomock.Any(), gomock.Any()).
					Return(model.BorrowRequest{}, errs.ErrOwnBook)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"cannot borrow own book"}`,
			},
		},
		{
			name: "err. duplicate open request",
			body: `{"bookUid":"f7cdc58f-2caf-4b15-9727-f89dcc629b27"}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					CreateRequest(gomock.Any(), gomock.Any()).
					Return(model.BorrowRequest{}, errs.ErrConflict)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"already exists"}`,
			},
		},
		{
			name: "err. not borrowable",
			body: `{"bookUid":"f7cdc58f-2caf-4b15-9727-f89dcc629b27"}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					CreateRequest(gomock.Any(), gomock.Any()).
					Return(model.BorrowRequest{}, errs.ErrNotBorrowable)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"book is not borrowable"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			borrows := service_mocks.NewMockBorrowService(c)
			tt.mockBehavior(borrows)
			log := zap.NewExample().Named("test")
			h := handler.New(handler.Services{Borrows: borrows}, "secret", log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/requests", h.CreateRequest, withUser(testUserUid))

			r := httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_ApproveRequest(t *testing.T) {
	t.Parallel()
	const requestUid = "2d0e39b6-21ae-4eec-b3c4-9158dbd0ba04"

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBorrowService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"dueDate":"2026-09-15","handoverMethod":"MEETUP"}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				due := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
				meetup := model.MethodMeetup
				r.EXPECT().
					ApproveRequest(gomock.Any(), requestUid, testUserUid, model.ApproveRequest{
						DueDate:        model.Date{Time: due},
						HandoverMethod: model.MethodMeetup,
					}).
					Return(model.BorrowRequest{
						RequestUid:     requestUid,
						BookUid:        "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
						BorrowerUid:    "3917d2d0-7a4a-4f61-a6a5-84e106b79f78",
						OwnerUid:       testUserUid,
						Status:         model.StatusApproved,
						HandoverMethod: &meetup,
						DueDate:        &due,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"requestUid":"2d0e39b6-21ae-4eec-b3c4-9158dbd0ba04","bookUid":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","borrowerUid":"3917d2d0-7a4a-4f61-a6a5-84e106b79f78","ownerUid":"e9f1a9a1-7a65-4a3e-93f5-9b4a4dbb7e41","status":"APPROVED","handoverMethod":"MEETUP","dueDate":"2026-09-15T00:00:00Z","message":"","createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name:         "err. bad handover method",
			body:         `{"dueDate":"2026-09-15","handoverMethod":"TELEPORT"}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name: "err. not pending anymore",
			body: `{"dueDate":"2026-09-15","handoverMethod":"MEETUP"}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					ApproveRequest(gomock.Any(), requestUid, testUserUid, gomock.Any()).
					Return(model.BorrowRequest{}, errs.ErrInvalidTransition)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"invalid status transition"}`,
			},
		},
		{
			name: "err. not the owner",
			body: `{"dueDate":"2026-09-15","handoverMethod":"MEETUP"}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					ApproveRequest(gomock.Any(), requestUid, testUserUid, gomock.Any()).
					Return(model.BorrowRequest{}, errs.ErrForbidden)
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"forbidden"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			borrows := service_mocks.NewMockBorrowService(c)
			tt.mockBehavior(borrows)
			log := zap.NewExample().Named("test")
			h := handler.New(handler.Services{Borrows: borrows}, "secret", log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/requests/:requestUid/approve", h.ApproveRequest, withUser(testUserUid))

			r := httptest.NewRequest(http.MethodPost, "/requests/"+requestUid+"/approve", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_ConfirmReturn(t *testing.T) {
	t.Parallel()
	const requestUid = "2d0e39b6-21ae-4eec-b3c4-9158dbd0ba04"

	tests := []struct {
		name         string
		mockBehavior func(r *service_mocks.MockBorrowService)
		expectedCode int
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					ConfirmReturn(gomock.Any(), requestUid, testUserUid).
					Return(model.BorrowRequest{
						RequestUid: requestUid,
						Status:     model.StatusReturned,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "err. return not initiated",
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					ConfirmReturn(gomock.Any(), requestUid, testUserUid).
					Return(model.BorrowRequest{}, errs.ErrInvalidTransition)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					ConfirmReturn(gomock.Any(), requestUid, testUserUid).
					Return(model.BorrowRequest{}, errors.New("db internal"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			borrows := service_mocks.NewMockBorrowService(c)
			tt.mockBehavior(borrows)
			log := zap.NewExample().Named("test")
			h := handler.New(handler.Services{Borrows: borrows}, "secret", log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/requests/:requestUid/confirm-return", h.ConfirmReturn, withUser(testUserUid))

			r := httptest.NewRequest(http.MethodPost, "/requests/"+requestUid+"/confirm-return", http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
