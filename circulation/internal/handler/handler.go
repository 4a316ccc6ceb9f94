package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/Astemirdum/library-circulation/circulation/docs"
	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	md "github.com/Astemirdum/library-circulation/pkg/middleware"
	"github.com/Astemirdum/library-circulation/pkg/validate"
)

type Handler struct {
	svc    Service
	log    *zap.Logger
	jwtKey []byte
}

type Option func(h *Handler)

// WithJWTKey makes the API verify bearer tokens instead of trusting gateway identity headers.
func WithJWTKey(key string) Option {
	return func(h *Handler) {
		if key != "" {
			h.jwtKey = []byte(key)
		}
	}
}

func New(svc Service, log *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		svc: svc,
		log: log.Named("handler"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) authentication() echo.MiddlewareFunc {
	if h.jwtKey != nil {
		return md.JwtAuthentication(h.jwtKey)
	}
	return md.AuthContext
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

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		h.authentication(),
	)

	api.GET("/books", h.ListBooks)
	api.GET("/books/:bookId", h.GetBook)
	api.POST("/books", h.CreateBook, md.AdminOnly)
	api.PUT("/books/:bookId", h.UpdateBook, md.AdminOnly)
	api.DELETE("/books/:bookId", h.DeleteBook, md.AdminOnly)
	api.GET("/books/:bookId/copies", h.ListCopies, md.AdminOnly)
	api.POST("/books/:bookId/copies", h.AddCopies, md.AdminOnly)
	api.PATCH("/copies/:copyId", h.SetCopyStatus, md.AdminOnly)

	api.POST("/books/:bookId/reservations", h.Reserve)
	api.GET("/reservations", h.ListReservations)
	api.POST("/reservations/:reservationId/cancel", h.CancelReservation)
	api.DELETE("/reservations/:reservationId", h.DeleteReservation, md.AdminOnly)
	api.PATCH("/reservations/:reservationId/dates", h.UpdateReservationDates, md.AdminOnly)
	api.POST("/reservations/:reservationId/issue", h.IssueBook, md.AdminOnly)
	api.POST("/rentals/:rentalId/return", h.ProcessReturn, md.AdminOnly)
	api.GET("/overdue", h.ListOverdue, md.AdminOnly)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// fail renders err with the status its kind maps to.
func (h *Handler) fail(err error) error {
	code := errs.HTTPStatus(err)
	if code == http.StatusInternalServerError {
		h.log.Error("request failed", zap.Error(err))
	}
	return echo.NewHTTPError(code, errs.Message(err))
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return id, nil
}
