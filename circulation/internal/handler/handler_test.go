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

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/handler"
	service_mocks "github.com/Astemirdum/library-circulation/circulation/internal/handler/mocks"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/auth"
)

var created = time.Date(2024, time.May, 5, 12, 0, 0, 0, time.UTC)

type identity struct {
	userID string
	role   string
}

var (
	member = identity{userID: "7", role: auth.RoleUser}
	admin  = identity{userID: "1", role: auth.RoleAdmin}
)

type request struct {
	method, target, body string
	who                  *identity
}

type response struct {
	expectedCode int
	expectedBody string
}

func serve(t *testing.T, svc *service_mocks.MockService, req request) *httptest.ResponseRecorder {
	t.Helper()
	h := handler.New(svc, zap.NewExample().Named("test"))
	e := h.NewRouter()

	r := httptest.NewRequest(req.method, req.target, strings.NewReader(req.body))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if req.who != nil {
		r.Header.Set(auth.XUserIDHeader, req.who.userID)
		r.Header.Set(auth.XUserRoleHeader, req.who.role)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func check(t *testing.T, w *httptest.ResponseRecorder, resp response) {
	t.Helper()
	require.Equal(t, resp.expectedCode, w.Code)
	if resp.expectedBody != "" {
		require.Equal(t, resp.expectedBody, strings.Trim(w.Body.String(), "\n"))
	}
}

func TestHandler_Reserve(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockService)

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		request      request
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().Reserve(gomock.Any(), int64(7), int64(3)).Return(model.Reservation{
					ID: 1, UserID: 7, BookID: 3, CreatedAt: created, ExpiresAt: created.Add(7 * 24 * time.Hour), Status: model.ReservationActive,
				}, nil)
			},
			request: request{method: http.MethodPost, target: "/api/v1/books/3/reservations", who: &member},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"userId":7,"bookId":3,"createdAt":"2024-05-05T12:00:00Z","expiresAt":"2024-05-12T12:00:00Z","status":"Active"}`,
			},
		},
		{
			name: "err. no copy available",
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().Reserve(gomock.Any(), int64(7), int64(3)).
					Return(model.Reservation{}, errors.Wrap(errs.ErrNoCopyAvailable, "Reserve"))
			},
			request: request{method: http.MethodPost, target: "/api/v1/books/3/reservations", who: &member},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"no copy of this book is available"}`,
			},
		},
		{
			name: "err. book not found",
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().Reserve(gomock.Any(), int64(7), int64(3)).
					Return(model.Reservation{}, errors.Wrap(errs.ErrBookNotFound, "Reserve"))
			},
			request: request{method: http.MethodPost, target: "/api/v1/books/3/reservations", who: &member},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"book not found"}`,
			},
		},
		{
			name:         "err. bad book id",
			mockBehavior: func(r *service_mocks.MockService) {},
			request:      request{method: http.MethodPost, target: "/api/v1/books/abc/reservations", who: &member},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"bookId is invalid"}`,
			},
		},
		{
			name:         "err. anonymous",
			mockBehavior: func(r *service_mocks.MockService) {},
			request:      request{method: http.MethodPost, target: "/api/v1/books/3/reservations"},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"user-id is empty"}`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().Reserve(gomock.Any(), int64(7), int64(3)).Return(model.Reservation{}, errors.New("db internal"))
			},
			request: request{method: http.MethodPost, target: "/api/v1/books/3/reservations", who: &member},
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
			svc := service_mocks.NewMockService(c)
			tt.mockBehavior(svc)
			check(t, serve(t, svc, tt.request), tt.response)
		})
	}
}

func TestHandler_IssueBook(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockService)
	due := time.Date(2024, time.May, 10, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		request      request
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().IssueBook(gomock.Any(), int64(1), int64(5), due).Return(model.Rental{
					ID: 2, CopyID: 30, BookID: 3, UserID: 7, StaffID: 1, StartedAt: created, DueDate: due,
				}, nil)
			},
			request: request{method: http.MethodPost, target: "/api/v1/reservations/5/issue", body: `{"dueDate":"2024-05-10"}`, who: &admin},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":2,"copyId":30,"bookId":3,"userId":7,"staffId":1,"startedAt":"2024-05-05T12:00:00Z","dueDate":"2024-05-10T23:59:59Z"}`,
			},
		},
		{
			name:         "err. not admin",
			mockBehavior: func(r *service_mocks.MockService) {},
			request:      request{method: http.MethodPost, target: "/api/v1/reservations/5/issue", body: `{"dueDate":"2024-05-10"}`, who: &member},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"admin privileges required"}`,
			},
		},
		{
			name:         "err. due date required",
			mockBehavior: func(r *service_mocks.MockService) {},
			request:      request{method: http.MethodPost, target: "/api/v1/reservations/5/issue", body: `{}`, who: &admin},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"dueDate is required"}`,
			},
		},
		{
			name:         "err. due date format",
			mockBehavior: func(r *service_mocks.MockService) {},
			request:      request{method: http.MethodPost, target: "/api/v1/reservations/5/issue", body: `{"dueDate":"10.05.2024"}`, who: &admin},
			response:     response{expectedCode: http.StatusBadRequest},
		},
		{
			name: "err. reservation not active",
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().IssueBook(gomock.Any(), int64(1), int64(5), due).
					Return(model.Rental{}, errors.Wrap(errs.ErrReservationNotActive, "IssueBook"))
			},
			request: request{method: http.MethodPost, target: "/api/v1/reservations/5/issue", body: `{"dueDate":"2024-05-10"}`, who: &admin},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"reservation is not active"}`,
			},
		},
		{
			name: "err. due date in the past",
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().IssueBook(gomock.Any(), int64(1), int64(5), due).
					Return(model.Rental{}, errors.Wrap(errs.ErrInvalidDueDate, "IssueBook"))
			},
			request: request{method: http.MethodPost, target: "/api/v1/reservations/5/issue", body: `{"dueDate":"2024-05-10"}`, who: &admin},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"due date must be in the future"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockService(c)
			tt.mockBehavior(svc)
			check(t, serve(t, svc, tt.request), tt.response)
		})
	}
}

func TestHandler_ListReservationsScope(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		who        identity
		target     string
		wantFilter model.ReservationFilter
	}{
		{
			name:       "member sees own only",
			who:        member,
			target:     "/api/v1/reservations?userId=99&phase=Rented",
			wantFilter: model.ReservationFilter{UserID: 7, Phase: model.PhaseRented},
		},
		{
			name:       "admin sees everyone",
			who:        admin,
			target:     "/api/v1/reservations?sort=-due&status=Active",
			wantFilter: model.ReservationFilter{Status: model.ReservationActive, Sort: model.SortDueDesc},
		},
		{
			name:       "admin filters by user",
			who:        admin,
			target:     "/api/v1/reservations?userId=99&search=dune",
			wantFilter: model.ReservationFilter{UserID: 99, Search: "dune"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockService(c)
			svc.EXPECT().ListReservations(gomock.Any(), tt.wantFilter).Return([]model.ReservationView{}, nil)

			who := tt.who
			check(t, serve(t, svc, request{method: http.MethodGet, target: tt.target, who: &who}), response{
				expectedCode: http.StatusOK,
				expectedBody: `[]`,
			})
		})
	}
}

func TestHandler_ListReservationsInvalid(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockService(c)
	check(t, serve(t, svc, request{method: http.MethodGet, target: "/api/v1/reservations?phase=Lost", who: &member}), response{
		expectedCode: http.StatusBadRequest,
		expectedBody: `{"message":"phase is invalid"}`,
	})
}

func TestHandler_ListOverdue(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockService(c)
	svc.EXPECT().ListOverdue(gomock.Any()).Return(model.OverdueReport{
		ByBook: []model.OverdueBookGroup{}, ByUser: []model.OverdueUserGroup{},
	}, nil)

	check(t, serve(t, svc, request{method: http.MethodGet, target: "/api/v1/overdue", who: &admin}), response{
		expectedCode: http.StatusOK,
		expectedBody: `{"byBook":[],"byUser":[],"totalCount":0}`,
	})
	check(t, serve(t, svc, request{method: http.MethodGet, target: "/api/v1/overdue", who: &member}), response{
		expectedCode: http.StatusForbidden,
	})
}

func TestHandler_SetCopyStatus(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockService(c)
	gomock.InOrder(
		svc.EXPECT().SetCopyStatus(gomock.Any(), int64(4), model.CopyLost).
			Return(model.Copy{ID: 4, BookID: 3, Status: model.CopyLost}, nil),
		svc.EXPECT().SetCopyStatus(gomock.Any(), int64(4), model.CopyDamaged).
			Return(model.Copy{}, errors.Wrap(errs.ErrCopyBusy, "SetCopyStatus")),
	)

	check(t, serve(t, svc, request{method: http.MethodPatch, target: "/api/v1/copies/4", body: `{"status":"Lost"}`, who: &admin}), response{
		expectedCode: http.StatusOK,
		expectedBody: `{"id":4,"bookId":3,"status":"Lost"}`,
	})
	check(t, serve(t, svc, request{method: http.MethodPatch, target: "/api/v1/copies/4", body: `{"status":"Damaged"}`, who: &admin}), response{
		expectedCode: http.StatusConflict,
		expectedBody: `{"message":"copy is reserved or rented"}`,
	})
	check(t, serve(t, svc, request{method: http.MethodPatch, target: "/api/v1/copies/4", body: `{}`, who: &admin}), response{
		expectedCode: http.StatusBadRequest,
	})
}

func TestHandler_DeleteReservation(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockService(c)
	svc.EXPECT().DeleteReservation(gomock.Any(), int64(8)).Return(errors.Wrap(errs.ErrOpenRental, "DeleteReservation"))

	check(t, serve(t, svc, request{method: http.MethodDelete, target: "/api/v1/reservations/8", who: &admin}), response{
		expectedCode: http.StatusConflict,
		expectedBody: `{"message":"reservation has an open rental"}`,
	})
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	w := serve(t, service_mocks.NewMockService(c), request{method: http.MethodGet, target: "/manage/health"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}
