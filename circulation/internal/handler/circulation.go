package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/auth"
)

func actor(c echo.Context) (int64, error) {
	id, err := auth.GetUserID(c.Request().Context())
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return id, nil
}

// Reserve godoc
// @Summary  Reserve a copy of the book for the caller
// @Tags     reservations
// @Produce  json
// @Param    bookId path int true "book"
// @Success  201 {object} model.Reservation
// @Failure  409 {object} model.Response
// @Router   /api/v1/books/{bookId}/reservations [post]
func (h *Handler) Reserve(c echo.Context) error {
	userID, err := actor(c)
	if err != nil {
		return err
	}
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	res, err := h.svc.Reserve(c.Request().Context(), userID, bookID)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) CancelReservation(c echo.Context) error {
	userID, err := actor(c)
	if err != nil {
		return err
	}
	reservationID, err := pathID(c, "reservationId")
	if err != nil {
		return err
	}
	res, err := h.svc.CancelReservation(c.Request().Context(), userID, reservationID)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, res)
}

// ListReservations shows the caller's reservations, or everyone's to an admin.
func (h *Handler) ListReservations(c echo.Context) error {
	ctx := c.Request().Context()
	userID, err := actor(c)
	if err != nil {
		return err
	}
	f := model.ReservationFilter{
		Status: model.ReservationStatus(c.QueryParam("status")),
		Phase:  model.Phase(c.QueryParam("phase")),
		Search: c.QueryParam("search"),
		Sort:   model.ReservationSort(c.QueryParam("sort")),
	}
	if f.Status != "" && !f.Status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "status is invalid")
	}
	if f.Phase != "" && !f.Phase.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "phase is invalid")
	}
	if f.Sort != "" && !f.Sort.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "sort is invalid")
	}
	if !auth.IsAdmin(ctx) {
		f.UserID = userID
	} else if v := c.QueryParam("userId"); v != "" {
		if f.UserID, err = strconv.ParseInt(v, 10, 64); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "userId is invalid")
		}
	}

	views, err := h.svc.ListReservations(ctx, f)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) DeleteReservation(c echo.Context) error {
	reservationID, err := pathID(c, "reservationId")
	if err != nil {
		return err
	}
	if err = h.svc.DeleteReservation(c.Request().Context(), reservationID); err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, model.Response{Message: "reservation deleted"})
}

func (h *Handler) UpdateReservationDates(c echo.Context) error {
	reservationID, err := pathID(c, "reservationId")
	if err != nil {
		return err
	}
	var req model.UpdateDatesRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err = h.svc.UpdateReservationDates(c.Request().Context(), reservationID, req); err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, model.Response{Message: "dates updated"})
}

// IssueBook godoc
// @Summary  Issue the reserved book; the due date is a calendar day
// @Tags     rentals
// @Accept   json
// @Produce  json
// @Param    reservationId path int                true "reservation"
// @Param    body          body model.IssueRequest true "due date, YYYY-MM-DD"
// @Success  201 {object} model.Rental
// @Failure  400 {object} model.Response
// @Failure  409 {object} model.Response
// @Router   /api/v1/reservations/{reservationId}/issue [post]
func (h *Handler) IssueBook(c echo.Context) error {
	staffID, err := actor(c)
	if err != nil {
		return err
	}
	reservationID, err := pathID(c, "reservationId")
	if err != nil {
		return err
	}
	var req model.IssueRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.DueDate.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "dueDate is required")
	}
	rental, err := h.svc.IssueBook(c.Request().Context(), staffID, reservationID, req.DueDate.EndOfDay())
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusCreated, rental)
}

func (h *Handler) ProcessReturn(c echo.Context) error {
	staffID, err := actor(c)
	if err != nil {
		return err
	}
	rentalID, err := pathID(c, "rentalId")
	if err != nil {
		return err
	}
	ret, err := h.svc.ProcessReturn(c.Request().Context(), staffID, rentalID)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, ret)
}

// ListOverdue godoc
// @Summary  Expired reservations and overdue rentals grouped by book and by user
// @Tags     overdue
// @Produce  json
// @Success  200 {object} model.OverdueReport
// @Router   /api/v1/overdue [get]
func (h *Handler) ListOverdue(c echo.Context) error {
	report, err := h.svc.ListOverdue(c.Request().Context())
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, report)
}
