package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookshare/bookshare-service/internal/errs"
	"github.com/bookshare/bookshare-service/internal/handler"
	service_mocks "github.com/bookshare/bookshare-service/internal/handler/mocks"
	"github.com/bookshare/bookshare-service/internal/model"
	"github.com/bookshare/bookshare-service/pkg/validate"
)

func TestHandler_ListBooks(t *testing.T) {
	t.Parallel()
	type input struct {
		genre         string
		onlyAvailable bool
		page, size    int
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookService, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBookService, inp input) {
				r.EXPECT().
					ListBooks(gomock.Any(), model.BookFilter{
						Genre:         inp.genre,
						OnlyAvailable: inp.onlyAvailable,
						Page:          inp.page,
						Size:          inp.size,
					}).
					Return(model.ListBooks{
						Paging: model.Paging{
							Page:          inp.page,
							PageSize:      inp.size,
							TotalElements: 1,
						},
						Items: []model.Book{
							{
								BookUid:    "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
								OwnerUid:   testUserUid,
								Title:      "The Go Programming Language",
								Author:     "Donovan, Kernighan",
								Genre:      "Computing",
								Condition:  model.ConditionExcellent,
								Borrowable: true,
							},
						},
					}, nil)
			},
			input: input{genre: "Computing", onlyAvailable: true, page: 1, size: 10},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"page":1,"pageSize":10,"totalElements":1,"items":[{"bookUid":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","ownerUid":"e9f1a9a1-7a65-4a3e-93f5-9b4a4dbb7e41","title":"The Go Programming Language","author":"Donovan, Kernighan","genre":"Computing","condition":"EXCELLENT","description":"","coverUrl":"","borrowable":true,"createdAt":"0001-01-01T00:00:00Z"}]}`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockBookService, inp input) {
				r.EXPECT().
					ListBooks(gomock.Any(), gomock.Any()).
					Return(model.ListBooks{}, errors.New("db internal"))
			},
			input: input{},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			books := service_mocks.NewMockBookService(c)
			tt.mockBehavior(books, tt.input)
			log := zap.NewExample().Named("test")
			h := handler.New(handler.Services{Books: books}, "secret", log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/books", h.ListBooks)

			r := httptest.NewRequest(http.MethodGet,
				fmt.Sprintf("/books?genre=%s&onlyAvailable=%v&page=%d&size=%d",
					tt.input.genre, tt.input.onlyAvailable, tt.input.page, tt.input.size), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"title":"Dune","author":"Frank Herbert","genre":"SF","condition":"GOOD"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					CreateBook(gomock.Any(), model.CreateBookRequest{
						Title:     "Dune",
						Author:    "Frank Herbert",
						Genre:     "SF",
						Condition: model.ConditionGood,
						OwnerUid:  testUserUid,
					}).
					Return(model.Book{
						BookUid:    "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
						OwnerUid:   testUserUid,
						Title:      "Dune",
						Author:     "Frank Herbert",
						Genre:      "SF",
						Condition:  model.ConditionGood,
						Borrowable: true,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"bookUid":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","ownerUid":"e9f1a9a1-7a65-4a3e-93f5-9b4a4dbb7e41","title":"Dune","author":"Frank Herbert","genre":"SF","condition":"GOOD","description":"","coverUrl":"","borrowable":true,"createdAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name:         "err. title required",
			body:         `{"author":"Frank Herbert","condition":"GOOD"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name:         "err. bad condition",
			body:         `{"title":"Dune","author":"Frank Herbert","condition":"SHREDDED"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			books := service_mocks.NewMockBookService(c)
			tt.mockBehavior(books)
			log := zap.NewExample().Named("test")
			h := handler.New(handler.Services{Books: books}, "secret", log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/books", h.CreateBook, withUser(testUserUid))

			r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(tt.body))
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

func TestHandler_GetBook(t *testing.T) {
	t.Parallel()
	const bookUid = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"

	tests := []struct {
		name         string
		mockBehavior func(r *service_mocks.MockBookService)
		expectedCode int
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					GetBook(gomock.Any(), bookUid).
					Return(model.Book{BookUid: bookUid, Title: "Dune"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "err. not found",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					GetBook(gomock.Any(), bookUid).
					Return(model.Book{}, errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			books := service_mocks.NewMockBookService(c)
			tt.mockBehavior(books)
			log := zap.NewExample().Named("test")
			h := handler.New(handler.Services{Books: books}, "secret", log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/books/:bookUid", h.GetBook)

			r := httptest.NewRequest(http.MethodGet, "/books/"+bookUid, http.NoBody)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
